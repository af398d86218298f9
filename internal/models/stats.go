package models

// AdminStats holds the aggregate counters shown to admins
type AdminStats struct {
	TotalUsers    int64 `json:"total_users"`
	TotalAnalyses int64 `json:"total_analyses"`
}

// Dashboard is everything the dashboard page needs for one user.
// AdminStats is nil unless the user is an admin.
type Dashboard struct {
	User           *User       `json:"user"`
	RecentAnalyses []Analysis  `json:"recent_analyses"`
	TotalAnalyses  int64       `json:"total_analyses"`
	AdminStats     *AdminStats `json:"admin_stats,omitempty"`
}
