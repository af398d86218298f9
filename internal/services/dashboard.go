package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/esophai/internal/logger"
	"github.com/sbilibin2017/esophai/internal/models"
)

//go:generate mockgen -source=dashboard.go -destination=dashboard_mock.go -package=services

// ErrUserNotFound is returned when the session refers to a user that no longer exists.
var ErrUserNotFound = errors.New("user not found")

// RecentAnalysesLimit is how many analyses the dashboard lists.
const RecentAnalysesLimit = 10

// UserProfileReader reads users for the dashboard.
type UserProfileReader interface {
	GetByID(ctx context.Context, id int64) (*models.User, error) // nil when missing
	Count(ctx context.Context) (int64, error)                    // Total registered users
}

// AnalysisReader reads stored analyses.
type AnalysisReader interface {
	ListRecentByUserID(ctx context.Context, userID int64, limit int) ([]models.Analysis, error)
	CountByUserID(ctx context.Context, userID int64) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// AdminStatsCache caches the admin counters.
type AdminStatsCache interface {
	Get(ctx context.Context) (*models.AdminStats, error)
	Set(ctx context.Context, stats models.AdminStats) error
}

// DashboardService assembles the dashboard page data.
type DashboardService struct {
	users     UserProfileReader
	analyses  AnalysisReader
	cacheRepo AdminStatsCache
}

// NewDashboardService creates a new DashboardService. cacheRepo may be nil.
func NewDashboardService(users UserProfileReader, analyses AnalysisReader, cacheRepo AdminStatsCache) *DashboardService {
	return &DashboardService{
		users:     users,
		analyses:  analyses,
		cacheRepo: cacheRepo,
	}
}

// Dashboard returns the user, the most recent analyses and counters.
// Admin counters are only filled in for admins.
func (s *DashboardService) Dashboard(ctx context.Context, userID int64) (*models.Dashboard, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	recent, err := s.analyses.ListRecentByUserID(ctx, userID, RecentAnalysesLimit)
	if err != nil {
		logger.Log.Errorw("failed to list analyses", "user_id", userID, "error", err)
		return nil, err
	}

	total, err := s.analyses.CountByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to count analyses", "user_id", userID, "error", err)
		return nil, err
	}

	dashboard := &models.Dashboard{
		User:           user,
		RecentAnalyses: recent,
		TotalAnalyses:  total,
	}

	if user.IsAdmin() {
		stats, err := s.adminStats(ctx)
		if err != nil {
			return nil, err
		}
		dashboard.AdminStats = stats
	}

	return dashboard, nil
}

// adminStats reads the counters from cache first, falling back to the database.
func (s *DashboardService) adminStats(ctx context.Context) (*models.AdminStats, error) {
	if s.cacheRepo != nil {
		if stats, err := s.cacheRepo.Get(ctx); err == nil {
			return stats, nil
		}
	}

	users, err := s.users.Count(ctx)
	if err != nil {
		logger.Log.Errorw("failed to count users", "error", err)
		return nil, err
	}
	analyses, err := s.analyses.Count(ctx)
	if err != nil {
		logger.Log.Errorw("failed to count analyses", "error", err)
		return nil, err
	}

	stats := models.AdminStats{TotalUsers: users, TotalAnalyses: analyses}

	if s.cacheRepo != nil {
		if err := s.cacheRepo.Set(ctx, stats); err != nil {
			logger.Log.Warnw("failed to cache admin stats", "error", err)
		}
	}

	return &stats, nil
}
