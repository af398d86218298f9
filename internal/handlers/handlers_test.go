package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/esophai/internal/models"
	"github.com/sbilibin2017/esophai/internal/session"
	"github.com/sbilibin2017/esophai/internal/views"
)

var testSecret = []byte("handlers-test-secret-0123456789ab")

func newTestSession() *session.Manager {
	return session.NewManager(testSecret, 3600)
}

func newTestRenderer(t *testing.T) *views.Renderer {
	t.Helper()
	r, err := views.NewRenderer()
	require.NoError(t, err)
	return r
}

// followUp builds a request carrying the cookies set by rec.
func followUp(rec *httptest.ResponseRecorder) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		r.AddCookie(c)
	}
	return r
}

// flashesOf returns the flash messages queued by rec.
func flashesOf(sess *session.Manager, rec *httptest.ResponseRecorder) []models.Flash {
	return sess.Flashes(httptest.NewRecorder(), followUp(rec))
}

// loggedIn returns a request that carries a valid session for id.
func loggedIn(t *testing.T, sess *session.Manager, method, target string, id session.Identity) *http.Request {
	t.Helper()

	rec := httptest.NewRecorder()
	require.NoError(t, sess.Login(rec, httptest.NewRequest(http.MethodPost, "/login", nil), id, models.Flash{}))

	// pop the login flash so it does not show up in assertions
	cleared := httptest.NewRecorder()
	sess.Flashes(cleared, followUp(rec))

	r := httptest.NewRequest(method, target, nil)
	for _, c := range cleared.Result().Cookies() {
		r.AddCookie(c)
	}
	return r
}
