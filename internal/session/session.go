package session

import (
	"context"
	"encoding/gob"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"

	"posestudio/internal/types"
)

type sessionData struct {
	User      *types.User
	CreatedAt time.Time
}

const (
	sessionKey  = "session"
	darkModeKey = "dark_mode"
)

func init() {
	gob.Register(sessionData{})
}

const sessionTTL = 12 * time.Hour

type Manager struct {
	*scs.SessionManager
	store *cacheStore
}

// NewManager returns a session manager. secure controls the cookie Secure
// flag and should follow whether the server speaks TLS.
func NewManager(secure bool) *Manager {
	store := newCacheStore(time.Minute)
	return &Manager{SessionManager: newSessionManager(store, secure), store: store}
}

func newSessionManager(store scs.Store, secure bool) *scs.SessionManager {
	manager := scs.New()
	manager.Store = store
	manager.Lifetime = sessionTTL
	manager.Cookie.Name = "ps_session"
	manager.Cookie.Path = "/"
	manager.Cookie.HttpOnly = true
	manager.Cookie.SameSite = http.SameSiteLaxMode
	manager.Cookie.Secure = secure
	return manager
}

// CreateSession stores the user that the login view handed over.
func (m *Manager) CreateSession(ctx context.Context, u *types.User) error {
	if err := m.RenewToken(ctx); err != nil {
		return err
	}
	m.Put(ctx, sessionKey, sessionData{
		User:      u,
		CreatedAt: time.Now(),
	})
	return nil
}

func (m *Manager) getSession(ctx context.Context) (sessionData, bool) {
	sess, ok := m.Get(ctx, sessionKey).(sessionData)
	if !ok || sess.User == nil {
		return sessionData{}, false
	}
	return sess, true
}

func (m *Manager) UserFromContext(ctx context.Context) (*types.User, bool) {
	if ctx == nil {
		return nil, false
	}
	if sess, ok := ctx.Value(sessionContextKey{}).(sessionData); ok && sess.User != nil {
		return sess.User, true
	}
	if sess, ok := m.getSession(ctx); ok {
		return sess.User, true
	}
	return nil, false
}

// ActiveSessions counts stored sessions that still hold a user.
func (m *Manager) ActiveSessions() int {
	sessions, err := m.store.All()
	if err != nil {
		return 0
	}
	n := 0
	for _, raw := range sessions {
		_, values, err := m.Codec.Decode(raw)
		if err != nil {
			continue
		}
		if sess, ok := values[sessionKey].(sessionData); ok && sess.User != nil {
			n++
		}
	}
	return n
}

func (m *Manager) DestroySession(ctx context.Context) error {
	return m.Destroy(ctx)
}

// DarkMode reports the theme flag. It lives in the session so it survives
// logging in and out of the same browser session.
func (m *Manager) DarkMode(ctx context.Context) bool {
	return m.GetBool(ctx, darkModeKey)
}

// ToggleDarkMode flips the theme flag and returns the new value.
func (m *Manager) ToggleDarkMode(ctx context.Context) bool {
	next := !m.GetBool(ctx, darkModeKey)
	m.Put(ctx, darkModeKey, next)
	return next
}

type sessionContextKey struct{}

func (m *Manager) SessionMiddleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		req, w := humachi.Unwrap(ctx)

		sess, ok := m.getSession(req.Context())
		if !ok {
			http.Redirect(w, req, "/login", http.StatusSeeOther)
			return
		}

		next(huma.WithValue(ctx, sessionContextKey{}, sess))
	}
}

// RequireUser is the chi counterpart of SessionMiddleware.
func (m *Manager) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := m.getSession(r.Context())
		if !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionContextKey{}, sess)))
	})
}
