// Package session keeps the logged-in identity and flash messages in a signed cookie.
package session

import (
	"context"
	"encoding/gob"
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/sbilibin2017/esophai/internal/logger"
	"github.com/sbilibin2017/esophai/internal/models"
)

// CookieName is the name of the session cookie.
const CookieName = "esophai_session"

const (
	keyUserID   = "user_id"
	keyUsername = "username"
)

func init() {
	gob.Register(models.Flash{})
}

// Identity is what the session remembers about the logged-in user.
type Identity struct {
	UserID   int64
	Username string
}

// Manager reads and writes the session cookie
type Manager struct {
	store *sessions.CookieStore
}

// NewManager creates a cookie store signed with secret. maxAge is in seconds.
func NewManager(secret []byte, maxAge int) *Manager {
	store := sessions.NewCookieStore(secret)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Manager{store: store}
}

// get never fails: a cookie that cannot be decoded yields a fresh session.
func (m *Manager) get(r *http.Request) *sessions.Session {
	sess, err := m.store.Get(r, CookieName)
	if err != nil {
		logger.Log.Warnw("discarding invalid session cookie", "error", err)
	}
	return sess
}

// Current returns the identity stored in the session, if any.
func (m *Manager) Current(r *http.Request) (Identity, bool) {
	sess := m.get(r)

	userID, ok := sess.Values[keyUserID].(int64)
	if !ok || userID <= 0 {
		return Identity{}, false
	}
	username, _ := sess.Values[keyUsername].(string)

	return Identity{UserID: userID, Username: username}, true
}

// Login stores the identity and queues flash for the next page.
func (m *Manager) Login(w http.ResponseWriter, r *http.Request, id Identity, flash models.Flash) error {
	sess := m.get(r)
	sess.Values[keyUserID] = id.UserID
	sess.Values[keyUsername] = id.Username
	sess.AddFlash(flash)
	return sess.Save(r, w)
}

// Logout drops everything in the session, then queues flash.
func (m *Manager) Logout(w http.ResponseWriter, r *http.Request, flash models.Flash) error {
	sess := m.get(r)
	for k := range sess.Values {
		delete(sess.Values, k)
	}
	sess.AddFlash(flash)
	return sess.Save(r, w)
}

// AddFlash queues a message for the next rendered page.
func (m *Manager) AddFlash(w http.ResponseWriter, r *http.Request, flash models.Flash) error {
	sess := m.get(r)
	sess.AddFlash(flash)
	return sess.Save(r, w)
}

// Flashes pops all queued messages. It must be called before anything is written to w.
func (m *Manager) Flashes(w http.ResponseWriter, r *http.Request) []models.Flash {
	sess := m.get(r)

	raw := sess.Flashes()
	if len(raw) == 0 {
		return nil
	}
	if err := sess.Save(r, w); err != nil {
		logger.Log.Errorw("failed to save session", "error", err)
	}

	flashes := make([]models.Flash, 0, len(raw))
	for _, f := range raw {
		if flash, ok := f.(models.Flash); ok {
			flashes = append(flashes, flash)
		}
	}
	return flashes
}

type contextKey struct{}

var identityKey = contextKey{}

// WithIdentity stores the identity in the context
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFromContext retrieves the identity placed by WithIdentity.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}
