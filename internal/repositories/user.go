package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/esophai/internal/database"
	"github.com/sbilibin2017/esophai/internal/logger"
	"github.com/sbilibin2017/esophai/internal/models"
)

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByUsernameOrEmail returns the full user record whose username or email equals login.
// A missing user is reported as nil with no error.
func (r *UserReadRepository) GetByUsernameOrEmail(ctx context.Context, login string) (*models.UserDB, error) {
	query := r.db.Rebind(`
		SELECT id, username, email, password_hash, first_name, last_name, role, is_active, created_at
		FROM users
		WHERE username = ? OR email = ?
		LIMIT 1
	`)

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, login, login)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{login, login},
		"result", user.ID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetByID returns the public view of a user. A missing user is reported as nil with no error.
func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := r.db.Rebind(`
		SELECT id, username, email, first_name, last_name, role, created_at
		FROM users
		WHERE id = ?
	`)

	var user models.User
	err := r.db.GetContext(ctx, &user, query, id)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"result", user,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// Count returns the total number of registered users.
func (r *UserReadRepository) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM users`

	var total int64
	err := r.db.GetContext(ctx, &total, query)

	logger.Log.Infow(
		"query", query,
		"result", total,
		"error", err,
	)

	return total, err
}

type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new user. A taken username or email yields database.ErrUniqueViolation.
func (r *UserWriteRepository) Save(ctx context.Context, user models.NewUser) error {
	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	query := executor.Rebind(`
		INSERT INTO users (username, email, password_hash, first_name, last_name, role)
		VALUES (?, ?, ?, ?, ?, ?)
	`)

	res, err := executor.ExecContext(ctx, query,
		user.Username, user.Email, user.PasswordHash, user.FirstName, user.LastName, user.Role)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	// Log with query in single line, the password hash is left out
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{user.Username, user.Email, user.FirstName, user.LastName, user.Role},
		"result", rowsAffected,
		"error", err,
	)

	if database.IsUniqueViolation(err) {
		return fmt.Errorf("%w: %v", database.ErrUniqueViolation, err)
	}

	return err
}
