package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"posestudio/internal/types"
)

func TestCreateSessionRoundTrip(t *testing.T) {
	m := NewManager(false)

	login := m.LoadAndSave(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, err := types.NewUser("admin", types.RoleAdmin)
		if err != nil {
			t.Fatalf("new user: %v", err)
		}
		if err := m.CreateSession(r.Context(), u); err != nil {
			t.Fatalf("create session: %v", err)
		}
	}))
	rec := httptest.NewRecorder()
	login.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login", nil))

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != "ps_session" {
		t.Fatalf("expected session cookie, got %v", cookies)
	}
	if cookies[0].Secure {
		t.Fatalf("expected insecure cookie when TLS is off")
	}
	if got := m.ActiveSessions(); got != 1 {
		t.Fatalf("expected one active session, got %d", got)
	}

	var gotUser *types.User
	protected := m.LoadAndSave(m.RequireUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, ok := m.UserFromContext(r.Context())
		if !ok {
			t.Fatalf("expected user in context")
		}
		gotUser = u
	})))
	req := httptest.NewRequest(http.MethodGet, "/studio", nil)
	req.AddCookie(cookies[0])
	rec = httptest.NewRecorder()
	protected.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if gotUser == nil || gotUser.Role != types.RoleAdmin {
		t.Fatalf("expected admin user, got %+v", gotUser)
	}
}

func TestRequireUserRedirectsAnonymous(t *testing.T) {
	m := NewManager(false)
	called := false
	h := m.LoadAndSave(m.RequireUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/studio", nil))

	if called {
		t.Fatalf("expected next handler not to be called")
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %q", loc)
	}
}

func TestToggleDarkMode(t *testing.T) {
	m := NewManager(true)
	var first, second, read bool
	h := m.LoadAndSave(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		first = m.ToggleDarkMode(r.Context())
		second = m.ToggleDarkMode(r.Context())
		m.ToggleDarkMode(r.Context())
		read = m.DarkMode(r.Context())
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/theme", nil))

	if !first || second || !read {
		t.Fatalf("unexpected toggle sequence: first=%v second=%v read=%v", first, second, read)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || !cookies[0].Secure {
		t.Fatalf("expected secure session cookie, got %v", cookies)
	}
}
