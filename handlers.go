package main

import (
	"context"
	"errors"
	"html/template"
	"log"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"posestudio/internal/auth"
	"posestudio/internal/i18n"
	"posestudio/internal/loginview"
	"posestudio/internal/metrics"
	"posestudio/internal/session"
	"posestudio/internal/types"
)

const (
	cacheControlValue = "no-store, no-cache, must-revalidate, max-age=0"
	pragmaValue       = "no-cache"
	expiresValue      = "0"
)

type loginHandlers struct {
	sessions    *session.Manager
	table       auth.Table
	defaultLang language.Tag
}

func (h *loginHandlers) negotiate(acceptLanguage string) language.Tag {
	return i18n.Negotiate(acceptLanguage, h.defaultLang)
}

// newView builds a login view for one request. The session manager plays
// the caller: it owns the theme flag and receives the role through onLogin.
func (h *loginHandlers) newView(ctx context.Context, lang language.Tag, onLogin func(types.Role)) *loginview.View {
	return loginview.New(h.table, lang, loginview.Props{
		OnLogin:  onLogin,
		DarkMode: h.sessions.DarkMode(ctx),
		ToggleTheme: func() {
			h.sessions.ToggleDarkMode(ctx)
		},
	})
}

// acceptRole is the role callback: it keeps the granted role in the session.
func (h *loginHandlers) acceptRole(ctx context.Context, username string, role types.Role) error {
	name, _ := auth.Normalize(username, "")
	u, err := types.NewUser(name, role)
	if err != nil {
		return err
	}
	if err := h.sessions.CreateSession(ctx, u); err != nil {
		return err
	}
	metrics.LoginSucceeded(role)
	log.Printf("login: role=%s", role)
	return nil
}

// submit runs one login attempt through the view. A mismatch is counted but
// never logged.
func (h *loginHandlers) submit(ctx context.Context, lang language.Tag, username, password string) (*loginview.View, types.Role, error) {
	var acceptErr error
	view := h.newView(ctx, lang, func(role types.Role) {
		acceptErr = h.acceptRole(ctx, username, role)
	})
	view.SetUsername(username)
	view.SetPassword(password)

	role, ok := view.Submit()
	if !ok {
		metrics.LoginFailed()
		return view, "", auth.ErrMismatch
	}
	if acceptErr != nil {
		return view, "", acceptErr
	}
	return view, role, nil
}

func (h *loginHandlers) handleLoginGet(w http.ResponseWriter, r *http.Request) {
	lang := h.negotiate(r.Header.Get("Accept-Language"))
	serveLogin(w, h.newView(r.Context(), lang, nil))
}

func (h *loginHandlers) handleLoginPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission.", http.StatusBadRequest)
		return
	}
	lang := h.negotiate(r.Header.Get("Accept-Language"))

	view, _, err := h.submit(r.Context(), lang, r.PostFormValue("username"), r.PostFormValue("password"))
	switch {
	case err == nil:
		http.Redirect(w, r, "/studio", http.StatusSeeOther)
	case errors.Is(err, auth.ErrMismatch):
		serveLogin(w, view)
	default:
		log.Printf("session create failed: %v", err)
		http.Error(w, "Login failed.", http.StatusInternalServerError)
	}
}

func (h *loginHandlers) handleTheme(w http.ResponseWriter, r *http.Request) {
	lang := h.negotiate(r.Header.Get("Accept-Language"))
	h.newView(r.Context(), lang, nil).ToggleTheme()
	http.Redirect(w, r, localReferer(r, "/login"), http.StatusSeeOther)
}

func (h *loginHandlers) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.DestroySession(r.Context()); err != nil {
		log.Printf("session destroy failed: %v", err)
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *loginHandlers) handleStudio(w http.ResponseWriter, r *http.Request) {
	u, ok := h.sessions.UserFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	lang := h.negotiate(r.Header.Get("Accept-Language"))
	setNoCacheHeaders(w)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := studioTemplate.Execute(w, studioData{
		P:        i18n.Printer(lang),
		Lang:     lang.String(),
		Role:     string(u.Role),
		DarkMode: h.sessions.DarkMode(r.Context()),
	})
	if err != nil {
		log.Printf("render studio page: %v", err)
	}
}

func serveLogin(w http.ResponseWriter, view *loginview.View) {
	setNoCacheHeaders(w)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := view.Render(w); err != nil {
		log.Printf("render login page: %v", err)
	}
}

func setNoCacheHeaders(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", cacheControlValue)
	w.Header().Set("Pragma", pragmaValue)
	w.Header().Set("Expires", expiresValue)
}

// localReferer returns the path of a same-host Referer, or fallback.
func localReferer(r *http.Request, fallback string) string {
	ref, err := url.Parse(r.Referer())
	if err != nil || !strings.HasPrefix(ref.Path, "/") || strings.HasPrefix(ref.Path, "//") {
		return fallback
	}
	if ref.Host != "" && ref.Host != r.Host {
		return fallback
	}
	return ref.Path
}

type studioData struct {
	P        *message.Printer
	Lang     string
	Role     string
	DarkMode bool
}

var studioTemplate = template.Must(template.New("studio").Funcs(template.FuncMap{
	"t": func(p *message.Printer, key string, args ...any) string { return p.Sprintf(key, args...) },
}).Parse(studioHTML))
