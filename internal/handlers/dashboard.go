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

//go:generate mockgen -source=dashboard.go -destination=dashboard_mock.go -package=handlers

// DashboardGetter loads the dashboard of one user.
type DashboardGetter interface {
	Dashboard(ctx context.Context, userID int64) (*models.Dashboard, error)
}

// NewDashboardHandler renders the dashboard of the logged-in user.
// @Summary Dashboard
// @Description Recent analyses and totals of the logged-in user; admins also get system totals
// @Tags pages
// @Produce html
// @Success 200 {string} string "HTML page"
// @Failure 302 "Redirect to /login without a valid session"
// @Failure 500 {string} string "Internal server error"
// @Router /dashboard [get]
func NewDashboardHandler(svc DashboardGetter, sess Sessioner, renderer PageRenderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := session.IdentityFromContext(r.Context())
		if !ok {
			redirectWithFlash(w, r, sess, "/login", models.FlashError, "Please log in to access the dashboard")
			return
		}

		dashboard, err := svc.Dashboard(r.Context(), id.UserID)
		if errors.Is(err, services.ErrUserNotFound) {
			logger.Log.Infow("session refers to a missing user", "user_id", id.UserID)
			if err := sess.Logout(w, r, models.Flash{Category: models.FlashError, Message: "Please log in to access the dashboard"}); err != nil {
				logger.Log.Errorw("failed to clear session", "err", err)
			}
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			internalError(w)
			return
		}

		renderer.Render(w, http.StatusOK, views.PageDashboard, newPage(w, r, sess, true, "Dashboard", dashboard))
	}
}
