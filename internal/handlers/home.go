package handlers

import (
	"net/http"

	"github.com/sbilibin2017/esophai/internal/views"
)

// NewHomeHandler redirects to the dashboard when logged in, otherwise to the login page.
// @Summary Home
// @Description Redirects to /dashboard for a logged-in session, otherwise to /login
// @Tags pages
// @Success 302 "Redirect"
// @Router / [get]
func NewHomeHandler(sess Sessioner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := sess.Current(r); ok {
			http.Redirect(w, r, "/dashboard", http.StatusFound)
			return
		}
		http.Redirect(w, r, "/login", http.StatusFound)
	}
}

// NewAnalyzePageHandler renders the upload form.
// @Summary Upload form
// @Description Renders the image upload form (served at / in single-user mode)
// @Tags pages
// @Produce html
// @Success 200 {string} string "HTML page"
// @Failure 302 "Redirect to /login without a session"
// @Router /analyze [get]
func NewAnalyzePageHandler(sess Sessioner, renderer PageRenderer, multiUser bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderer.Render(w, http.StatusOK, views.PageAnalyze, newPage(w, r, sess, multiUser, "Analyze", nil))
	}
}
