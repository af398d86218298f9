package models

import "time"

// Analysis represents a stored inference result
type Analysis struct {
	ID               int64     `json:"id" db:"id"`                               // Primary key
	UserID           int64     `json:"user_id" db:"user_id"`                     // Owner, references users.id
	OriginalFilename string    `json:"original_filename" db:"original_filename"` // Name as uploaded by the browser
	Prediction       string    `json:"prediction" db:"prediction"`               // Predicted label
	Confidence       float64   `json:"confidence" db:"confidence"`               // Percentage in [50, 100]
	ImagePath        string    `json:"image_path" db:"image_path"`               // Stored file name inside the upload dir
	CreatedAt        time.Time `json:"created_at" db:"created_at"`               // Creation timestamp
}

// NewAnalysis carries the columns written when an analysis is inserted.
type NewAnalysis struct {
	UserID           int64
	OriginalFilename string
	Prediction       string
	Confidence       float64
	ImagePath        string
}

// AnalysisResult is what the result page shows for one upload.
type AnalysisResult struct {
	Label         string  `json:"label"`
	Confidence    float64 `json:"confidence"`
	Probability   float64 `json:"probability"`
	ImageFileName string  `json:"image_file_name"`
}
