package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/esophai/internal/logger"
	"github.com/sbilibin2017/esophai/internal/models"
	"github.com/sbilibin2017/esophai/internal/services"
	"github.com/sbilibin2017/esophai/internal/views"
)

//go:generate mockgen -source=register.go -destination=register_mock.go -package=handlers

// Registerer defines the interface for user registration service.
type Registerer interface {
	Register(ctx context.Context, form models.RegisterForm) error
}

// NewRegisterPageHandler renders the registration form.
// @Summary Registration form
// @Tags auth
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router /register [get]
func NewRegisterPageHandler(sess Sessioner, renderer PageRenderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderer.Render(w, http.StatusOK, views.PageRegister, newPage(w, r, sess, true, "Register", nil))
	}
}

// NewRegisterHandler returns an HTTP handler that registers a new user.
// @Summary Register a new user
// @Description Creates a new account with role user. Username and email must be unique.
// @Tags auth
// @Accept x-www-form-urlencoded
// @Param username formData string true "Username"
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Param first_name formData string false "First name"
// @Param last_name formData string false "Last name"
// @Success 302 "Redirect to /login on success, /register on validation errors"
// @Failure 500 {string} string "Internal server error"
// @Router /register [post]
func NewRegisterHandler(svc Registerer, sess Sessioner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			redirectWithFlash(w, r, sess, "/register", models.FlashError, "Username, email and password are required")
			return
		}

		form := models.RegisterForm{
			Username:  r.PostForm.Get("username"),
			Email:     r.PostForm.Get("email"),
			Password:  r.PostForm.Get("password"),
			FirstName: r.PostForm.Get("first_name"),
			LastName:  r.PostForm.Get("last_name"),
		}

		if err := svc.Register(r.Context(), form); err != nil {
			switch {
			case errors.Is(err, services.ErrMissingFields):
				redirectWithFlash(w, r, sess, "/register", models.FlashError, "Username, email and password are required")
			case errors.Is(err, services.ErrUserAlreadyExists):
				redirectWithFlash(w, r, sess, "/register", models.FlashError, "Username or email already exists")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				internalError(w)
			}
			return
		}

		redirectWithFlash(w, r, sess, "/login", models.FlashSuccess, "Registration successful! Please log in.")
	}
}
