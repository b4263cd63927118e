// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package theme

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/restaurants/internal/platform/apperr"
	requestutil "github.com/taibuivan/restaurants/internal/platform/request"
	"github.com/taibuivan/restaurants/internal/platform/respond"
)

// Handler exposes a [Preference] over HTTP.
type Handler struct {
	preference *Preference
}

// NewHandler creates a theme handler.
func NewHandler(preference *Preference) *Handler {
	return &Handler{preference: preference}
}

// Routes returns the theme routes.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.getTheme)
	router.Put("/", handler.setTheme)
	router.Post("/toggle", handler.toggleTheme)
	return router
}

type themeBody struct {
	Theme string `json:"theme"`
}

func (handler *Handler) getTheme(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, themeBody{Theme: handler.preference.Current()})
}

// setTheme rejects unknown themes; a failed write still answers with the new theme.
func (handler *Handler) setTheme(writer http.ResponseWriter, request *http.Request) {
	var input themeBody
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.preference.Set(request.Context(), input.Theme); apperr.IsAppError(err) {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, themeBody{Theme: handler.preference.Current()})
}

func (handler *Handler) toggleTheme(writer http.ResponseWriter, request *http.Request) {
	// Write failures are logged by the preference and keep the new theme.
	next, err := handler.preference.Toggle(request.Context())
	if apperr.IsAppError(err) {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, themeBody{Theme: next})
}
