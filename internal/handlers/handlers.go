package handlers

import (
	"net/http"

	"github.com/sbilibin2017/esophai/internal/logger"
	"github.com/sbilibin2017/esophai/internal/models"
	"github.com/sbilibin2017/esophai/internal/session"
	"github.com/sbilibin2017/esophai/internal/views"
)

// Sessioner is the subset of the session manager used by the page handlers.
type Sessioner interface {
	Current(r *http.Request) (session.Identity, bool)
	Login(w http.ResponseWriter, r *http.Request, id session.Identity, flash models.Flash) error
	Logout(w http.ResponseWriter, r *http.Request, flash models.Flash) error
	AddFlash(w http.ResponseWriter, r *http.Request, flash models.Flash) error
	Flashes(w http.ResponseWriter, r *http.Request) []models.Flash
}

// PageRenderer renders a named HTML page.
type PageRenderer interface {
	Render(w http.ResponseWriter, status int, name string, page views.Page)
}

// redirectWithFlash queues a flash message and redirects to url.
func redirectWithFlash(w http.ResponseWriter, r *http.Request, sess Sessioner, url, category, message string) {
	if err := sess.AddFlash(w, r, models.Flash{Category: category, Message: message}); err != nil {
		logger.Log.Errorw("failed to save flash", "error", err)
	}
	http.Redirect(w, r, url, http.StatusFound)
}

// newPage pops pending flashes and fills in who is logged in.
func newPage(w http.ResponseWriter, r *http.Request, sess Sessioner, multiUser bool, title string, data any) views.Page {
	page := views.Page{
		Title:     title,
		Flashes:   sess.Flashes(w, r),
		MultiUser: multiUser,
		Data:      data,
	}
	if multiUser {
		if id, ok := sess.Current(r); ok {
			page.Username = id.Username
		}
	}
	return page
}

func internalError(w http.ResponseWriter) {
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
