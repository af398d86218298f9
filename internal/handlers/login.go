package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/esophai/internal/logger"
	"github.com/sbilibin2017/esophai/internal/models"
	"github.com/sbilibin2017/esophai/internal/services"
	"github.com/sbilibin2017/esophai/internal/session"
	"github.com/sbilibin2017/esophai/internal/views"
)

//go:generate mockgen -source=login.go -destination=login_mock.go -package=handlers

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, form models.LoginForm) (*models.User, error)
}

// NewLoginPageHandler renders the login form.
// @Summary Login form
// @Tags auth
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router /login [get]
func NewLoginPageHandler(sess Sessioner, renderer PageRenderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderer.Render(w, http.StatusOK, views.PageLogin, newPage(w, r, sess, true, "Login", nil))
	}
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Checks the credentials and stores the user in the session cookie
// @Tags auth
// @Accept x-www-form-urlencoded
// @Param username_or_email formData string true "Username or email"
// @Param password formData string true "Password"
// @Success 302 "Redirect to /dashboard on success, /login on invalid credentials"
// @Failure 429 {string} string "Too many login attempts"
// @Failure 500 {string} string "Internal server error"
// @Router /login [post]
func NewLoginHandler(svc Loginer, sess Sessioner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			redirectWithFlash(w, r, sess, "/login", models.FlashError, "Invalid username or password")
			return
		}

		form := models.LoginForm{
			UsernameOrEmail: r.PostForm.Get("username_or_email"),
			Password:        r.PostForm.Get("password"),
		}

		user, err := svc.Login(r.Context(), form)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				redirectWithFlash(w, r, sess, "/login", models.FlashError, "Invalid username or password")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				internalError(w)
			}
			return
		}

		err = sess.Login(w, r,
			session.Identity{UserID: user.ID, Username: user.Username},
			models.Flash{Category: models.FlashSuccess, Message: "Logged in successfully"},
		)
		if err != nil {
			logger.Log.Errorw("failed to save session", "err", err)
			internalError(w)
			return
		}

		http.Redirect(w, r, "/dashboard", http.StatusFound)
	}
}

// NewLogoutHandler clears the session.
// @Summary Logout
// @Tags auth
// @Success 302 "Redirect to /login"
// @Router /logout [get]
func NewLogoutHandler(sess Sessioner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := sess.Logout(w, r, models.Flash{Category: models.FlashInfo, Message: "You have been logged out"}); err != nil {
			logger.Log.Errorw("failed to clear session", "err", err)
		}
		http.Redirect(w, r, "/login", http.StatusFound)
	}
}
