package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/sbilibin2017/esophai/internal/inference"
	"github.com/sbilibin2017/esophai/internal/logger"
	"github.com/sbilibin2017/esophai/internal/models"
	"github.com/sbilibin2017/esophai/internal/storage"
)

//go:generate mockgen -source=analysis.go -destination=analysis_mock.go -package=services

var (
	// ErrInvalidFileType is returned for uploads whose extension is not png, jpg, jpeg or gif.
	ErrInvalidFileType = errors.New("invalid file type")
	// ErrInvalidImage is returned when the upload cannot be decoded as an image.
	ErrInvalidImage = errors.New("invalid image file")
)

// Classifier returns the cancer probability of one preprocessed image.
type Classifier interface {
	Predict(ctx context.Context, t inference.Tensor) (float64, error)
}

// UploadStore stores uploaded files under generated names.
type UploadStore interface {
	Save(ext string, src io.Reader) (string, error) // Returns the stored file name
	Open(name string) (*os.File, error)
	Remove(name string) error
}

// AnalysisWriter persists analyses.
type AnalysisWriter interface {
	Save(ctx context.Context, analysis models.NewAnalysis) error
}

// EventPublisher announces completed analyses.
type EventPublisher interface {
	PublishAnalysis(ctx context.Context, event models.AnalysisEvent) error
}

// AnalysisService validates, stores and classifies uploads.
type AnalysisService struct {
	classifier Classifier
	store      UploadStore
	writer     AnalysisWriter
	tx         Transactor
	publisher  EventPublisher
	maxPixels  int
}

// NewAnalysisService creates a new AnalysisService. writer, tx and publisher
// may be nil when results are not persisted.
func NewAnalysisService(
	classifier Classifier,
	store UploadStore,
	writer AnalysisWriter,
	tx Transactor,
	publisher EventPublisher,
	maxPixels int,
) *AnalysisService {
	return &AnalysisService{
		classifier: classifier,
		store:      store,
		writer:     writer,
		tx:         tx,
		publisher:  publisher,
		maxPixels:  maxPixels,
	}
}

// Analyze stores src, runs the classifier once and returns the labelled result.
// With userID > 0 the result is saved as an analysis of that user; if saving
// fails the stored file is removed again.
func (s *AnalysisService) Analyze(ctx context.Context, userID int64, filename string, src io.Reader) (*models.AnalysisResult, error) {
	ext, ok := storage.AllowedExtension(filename)
	if !ok {
		return nil, ErrInvalidFileType
	}

	stored, err := s.store.Save(ext, src)
	if err != nil {
		logger.Log.Errorw("failed to store upload", "filename", filename, "error", err)
		return nil, err
	}

	result, err := s.classify(ctx, stored)
	if err == nil && userID > 0 && s.writer != nil {
		err = s.persist(ctx, userID, filename, result)
	}
	if err != nil {
		if rmErr := s.store.Remove(stored); rmErr != nil {
			logger.Log.Errorw("failed to remove upload", "file", stored, "error", rmErr)
		}
		return nil, err
	}

	if userID > 0 && s.writer != nil {
		s.publishAnalysis(ctx, userID, filename, result)
	}

	return result, nil
}

func (s *AnalysisService) classify(ctx context.Context, stored string) (*models.AnalysisResult, error) {
	f, err := s.store.Open(stored)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tensor, err := inference.Preprocess(f, s.maxPixels)
	if errors.Is(err, inference.ErrInvalidImage) {
		logger.Log.Infow("upload is not a valid image", "file", stored, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	if err != nil {
		return nil, err
	}

	p, err := s.classifier.Predict(ctx, tensor)
	if err != nil {
		logger.Log.Errorw("prediction failed", "file", stored, "error", err)
		return nil, err
	}

	prediction, err := inference.Interpret(p)
	if err != nil {
		logger.Log.Errorw("unusable model output", "file", stored, "probability", p, "error", err)
		return nil, err
	}

	logger.Log.Infow("image classified", "file", stored, "label", prediction.Label, "confidence", prediction.Confidence)

	return &models.AnalysisResult{
		Label:         prediction.Label,
		Confidence:    prediction.Confidence,
		Probability:   prediction.Probability,
		ImageFileName: stored,
	}, nil
}

func (s *AnalysisService) persist(ctx context.Context, userID int64, filename string, result *models.AnalysisResult) error {
	analysis := models.NewAnalysis{
		UserID:           userID,
		OriginalFilename: filename,
		Prediction:       result.Label,
		Confidence:       result.Confidence,
		ImagePath:        result.ImageFileName,
	}

	save := func(ctx context.Context) error {
		return s.writer.Save(ctx, analysis)
	}

	var err error
	if s.tx != nil {
		err = s.tx.WithinTx(ctx, save)
	} else {
		err = save(ctx)
	}
	if err != nil {
		logger.Log.Errorw("failed to save analysis", "user_id", userID, "file", result.ImageFileName, "error", err)
	}
	return err
}

// publishAnalysis sends the event on a best-effort basis.
func (s *AnalysisService) publishAnalysis(ctx context.Context, userID int64, filename string, result *models.AnalysisResult) {
	event := models.AnalysisEvent{
		EventID:          uuid.NewString(),
		UserID:           userID,
		OriginalFilename: filename,
		ImageFileName:    result.ImageFileName,
		Prediction:       result.Label,
		Confidence:       result.Confidence,
		Timestamp:        time.Now().Unix(),
	}

	if s.publisher == nil {
		logger.Log.Debugw("event publisher not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	if err := s.publisher.PublishAnalysis(ctx, event); err != nil {
		logger.Log.Warnw("analysis event not published", "event_id", event.EventID, "error", err)
	}
}
