package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/esophai/internal/logger"
	"github.com/sbilibin2017/esophai/internal/models"
)

// AnalysisReadRepository reads stored analyses
type AnalysisReadRepository struct {
	db *sqlx.DB
}

func NewAnalysisReadRepository(db *sqlx.DB) *AnalysisReadRepository {
	return &AnalysisReadRepository{db: db}
}

// ListRecentByUserID returns up to limit analyses of the user, newest first.
// Rows created within the same second are ordered by id.
func (r *AnalysisReadRepository) ListRecentByUserID(ctx context.Context, userID int64, limit int) ([]models.Analysis, error) {
	query := r.db.Rebind(`
		SELECT id, user_id, original_filename, prediction, confidence, image_path, created_at
		FROM analyses
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`)

	analyses := []models.Analysis{}
	err := r.db.SelectContext(ctx, &analyses, query, userID, limit)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, limit},
		"result", len(analyses),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return analyses, nil
}

// CountByUserID returns how many analyses the user has run.
func (r *AnalysisReadRepository) CountByUserID(ctx context.Context, userID int64) (int64, error) {
	query := r.db.Rebind(`SELECT COUNT(*) FROM analyses WHERE user_id = ?`)

	var total int64
	err := r.db.GetContext(ctx, &total, query, userID)

	logger.Log.Infow(
		"query", query,
		"args", []any{userID},
		"result", total,
		"error", err,
	)

	return total, err
}

// Count returns the number of analyses across all users.
func (r *AnalysisReadRepository) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM analyses`

	var total int64
	err := r.db.GetContext(ctx, &total, query)

	logger.Log.Infow(
		"query", query,
		"result", total,
		"error", err,
	)

	return total, err
}

// AnalysisWriteRepository inserts analyses, joining the transaction found in the context if any
type AnalysisWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewAnalysisWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *AnalysisWriteRepository {
	return &AnalysisWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts one analysis row.
func (r *AnalysisWriteRepository) Save(ctx context.Context, analysis models.NewAnalysis) error {
	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	query := executor.Rebind(`
		INSERT INTO analyses (user_id, original_filename, prediction, confidence, image_path)
		VALUES (?, ?, ?, ?, ?)
	`)
	args := []any{analysis.UserID, analysis.OriginalFilename, analysis.Prediction, analysis.Confidence, analysis.ImagePath}

	res, err := executor.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	// Log query, args, result, error
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}
