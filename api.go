package main

import (
	"context"
	"errors"
	"log"

	"github.com/danielgtaylor/huma/v2"

	"posestudio/internal/auth"
	"posestudio/internal/i18n"
)

type loginInput struct {
	AcceptLanguage string `header:"Accept-Language"`
	Body           struct {
		Username string `json:"username" doc:"Username, compared case-insensitively after trimming"`
		Password string `json:"password" doc:"Password, compared exactly after trimming"`
	}
}

type loginOutput struct {
	Body struct {
		Role string `json:"role" enum:"admin,user"`
	}
}

type sessionOutput struct {
	Body struct {
		Username string `json:"username"`
		Role     string `json:"role" enum:"admin,user"`
		DarkMode bool   `json:"darkMode"`
	}
}

type themeInput struct {
	AcceptLanguage string `header:"Accept-Language"`
}

type themeOutput struct {
	Body struct {
		DarkMode bool `json:"darkMode"`
	}
}

func registerAPI(api huma.API, h *loginHandlers) {
	huma.Post(api, "/api/login", func(ctx context.Context, in *loginInput) (*loginOutput, error) {
		lang := h.negotiate(in.AcceptLanguage)
		_, role, err := h.submit(ctx, lang, in.Body.Username, in.Body.Password)
		if errors.Is(err, auth.ErrMismatch) {
			return nil, huma.Error401Unauthorized(i18n.MismatchMessage(lang))
		}
		if err != nil {
			log.Printf("session create failed: %v", err)
			return nil, huma.Error500InternalServerError("Login failed.")
		}
		out := &loginOutput{}
		out.Body.Role = string(role)
		return out, nil
	})

	huma.Post(api, "/api/theme", func(ctx context.Context, in *themeInput) (*themeOutput, error) {
		h.newView(ctx, h.negotiate(in.AcceptLanguage), nil).ToggleTheme()
		out := &themeOutput{}
		out.Body.DarkMode = h.sessions.DarkMode(ctx)
		return out, nil
	})

	group := huma.NewGroup(api, "/api")
	group.UseMiddleware(h.sessions.SessionMiddleware())
	huma.Get(group, "/session", func(ctx context.Context, _ *struct{}) (*sessionOutput, error) {
		u, ok := h.sessions.UserFromContext(ctx)
		if !ok {
			return nil, huma.Error401Unauthorized("Not signed in.")
		}
		out := &sessionOutput{}
		out.Body.Username = u.GetName()
		out.Body.Role = string(u.GetRole())
		out.Body.DarkMode = h.sessions.DarkMode(ctx)
		return out, nil
	})
}
