package services

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/esophai/internal/database"
	"github.com/sbilibin2017/esophai/internal/logger"
	"github.com/sbilibin2017/esophai/internal/models"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("username or email already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrMissingFields      = errors.New("username, email and password are required")
)

// DemoPassword is the password of the seeded demo accounts.
const DemoPassword = "password123"

var demoAccounts = []models.NewUser{
	{Username: "admin", Email: "admin@esophai.com", FirstName: "Admin", LastName: "User", Role: models.RoleAdmin},
	{Username: "user", Email: "user@esophai.com", FirstName: "Regular", LastName: "User", Role: models.RoleUser},
}

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsernameOrEmail(ctx context.Context, login string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user models.NewUser) error
}

// Transactor runs fn inside a database transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// AuthService handles registration, login and demo account seeding.
type AuthService struct {
	reader UserReader
	writer UserWriter
	tx     Transactor

	dummyOnce sync.Once
	dummyHash []byte
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, tx Transactor) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		tx:     tx,
	}
}

// Register creates a user with role "user". Uniqueness is left to the storage constraint.
func (svc *AuthService) Register(ctx context.Context, form models.RegisterForm) error {
	if !form.Valid() {
		return ErrMissingFields
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	user := models.NewUser{
		Username:     form.Username,
		Email:        form.Email,
		PasswordHash: string(hashedPassword),
		FirstName:    form.FirstName,
		LastName:     form.LastName,
		Role:         models.RoleUser,
	}

	err = svc.tx.WithinTx(ctx, func(ctx context.Context) error {
		return svc.writer.Save(ctx, user)
	})
	if errors.Is(err, database.ErrUniqueViolation) {
		logger.Log.Infow("user already exists", "username", form.Username, "email", form.Email)
		return ErrUserAlreadyExists
	}
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return err
	}

	logger.Log.Infow("user registered", "username", form.Username)
	return nil
}

// Login checks the credentials and returns the user without its password hash.
// Unknown users, wrong passwords and inactive accounts all yield ErrInvalidCredentials.
func (svc *AuthService) Login(ctx context.Context, form models.LoginForm) (*models.User, error) {
	user, err := svc.reader.GetByUsernameOrEmail(ctx, form.UsernameOrEmail)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		// keep the response time close to the one of an existing user
		_ = bcrypt.CompareHashAndPassword(svc.dummy(), []byte(form.Password))
		logger.Log.Infow("user does not exist", "login", form.UsernameOrEmail)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(form.Password)); err != nil {
		logger.Log.Infow("invalid credentials", "login", form.UsernameOrEmail)
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		logger.Log.Infow("inactive account", "login", form.UsernameOrEmail)
		return nil, ErrInvalidCredentials
	}

	return &models.User{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}, nil
}

// SeedDemoAccounts inserts the admin and user demo accounts when they are missing.
func (svc *AuthService) SeedDemoAccounts(ctx context.Context) error {
	for _, account := range demoAccounts {
		existing, err := svc.reader.GetByUsernameOrEmail(ctx, account.Username)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		account.PasswordHash = string(hash)

		err = svc.tx.WithinTx(ctx, func(ctx context.Context) error {
			return svc.writer.Save(ctx, account)
		})
		if errors.Is(err, database.ErrUniqueViolation) {
			continue
		}
		if err != nil {
			logger.Log.Errorw("failed to seed demo account", "username", account.Username, "err", err)
			return err
		}

		logger.Log.Infow("demo account created", "username", account.Username, "role", account.Role)
	}

	return nil
}

func (svc *AuthService) dummy() []byte {
	svc.dummyOnce.Do(func() {
		svc.dummyHash, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.DefaultCost)
	})
	return svc.dummyHash
}
