package middlewares

import (
	"net/http"

	"github.com/sbilibin2017/esophai/internal/logger"
	"github.com/sbilibin2017/esophai/internal/models"
	"github.com/sbilibin2017/esophai/internal/session"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

// SessionReader defines the minimal session interface needed by the middleware
type SessionReader interface {
	Current(r *http.Request) (session.Identity, bool)
	AddFlash(w http.ResponseWriter, r *http.Request, flash models.Flash) error
}

// AuthMiddleware lets requests with a logged-in session through and puts the
// identity into the request context. Anonymous requests are redirected to
// /login with message flashed.
func AuthMiddleware(sess SessionReader, message string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := sess.Current(r)
			if !ok {
				if err := sess.AddFlash(w, r, models.Flash{Category: models.FlashError, Message: message}); err != nil {
					logger.Log.Errorw("failed to save flash", "err", err)
				}
				http.Redirect(w, r, "/login", http.StatusFound)
				return
			}

			next.ServeHTTP(w, r.WithContext(session.WithIdentity(r.Context(), id)))
		})
	}
}
