package models

// AnalysisEvent is published to the message broker after an analysis is stored.
type AnalysisEvent struct {
	EventID          string  `json:"event_id"`          // Unique event identifier
	UserID           int64   `json:"user_id"`           // Owner of the analysis
	OriginalFilename string  `json:"original_filename"` // Name as uploaded
	ImageFileName    string  `json:"image_file_name"`   // Stored file name
	Prediction       string  `json:"prediction"`        // Predicted label
	Confidence       float64 `json:"confidence"`        // Percentage
	Timestamp        int64   `json:"timestamp"`         // Unix seconds
}
