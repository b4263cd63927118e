// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package directory

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/restaurants/internal/filter"
	"github.com/taibuivan/restaurants/internal/platform/apperr"
	requestutil "github.com/taibuivan/restaurants/internal/platform/request"
	"github.com/taibuivan/restaurants/internal/platform/respond"
	"github.com/taibuivan/restaurants/internal/platform/validate"
	"github.com/taibuivan/restaurants/pkg/pagination"
)

// maxSearchLength bounds the search term accepted over HTTP.
const maxSearchLength = 200

// Handler exposes a [Session] over HTTP.
type Handler struct {
	session *Session
}

// NewHandler creates a handler for session.
func NewHandler(session *Session) *Handler {
	return &Handler{session: session}
}

// RestaurantRoutes serves stateless catalog queries.
func (handler *Handler) RestaurantRoutes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.listRestaurants)
	router.Get("/options", handler.getOptions)
	router.Get("/stats", handler.getStats)
	router.Get("/{identifier}", handler.getRestaurant)
	return router
}

// SessionRoutes serves the stateful filter session.
func (handler *Handler) SessionRoutes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.getSession)
	router.Put("/filters/{field}", handler.setSelector)
	router.Delete("/filters", handler.clearFilters)
	router.Put("/search", handler.setSearch)
	router.Put("/favorites-only", handler.setFavoritesOnly)
	return router
}

// FavoriteRoutes serves the favorites set.
func (handler *Handler) FavoriteRoutes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.listFavorites)
	router.Post("/{id}/toggle", handler.toggleFavorite)
	return router
}

// # Restaurants

func (handler *Handler) listRestaurants(writer http.ResponseWriter, request *http.Request) {
	state, err := handler.stateFromQuery(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	view := handler.session.Query(state)
	if !pagination.Requested(request) {
		respond.OK(writer, view)
		return
	}

	params := pagination.FromRequest(request)
	start, end := params.Window(len(view.Restaurants))
	view.Restaurants = view.Restaurants[start:end]
	respond.Paginated(writer, view, pagination.NewMeta(params.Page, params.Limit, view.Shown))
}

// stateFromQuery builds a filter state from query parameters; absent or
// empty selectors mean All.
func (handler *Handler) stateFromQuery(request *http.Request) (filter.State, error) {
	query := request.URL.Query()
	options := handler.session.Options()
	state := filter.NewState()

	validator := &validate.Validator{}
	for _, field := range filter.Fields {
		value := query.Get(string(field))
		if value == "" {
			continue
		}
		validator.OneOf(string(field), value, options.For(field)...)
		state = state.With(field, value)
	}

	state.Search = query.Get("q")
	validator.MaxLen("q", state.Search, maxSearchLength)
	state.FavoritesOnly = requestutil.QueryBool(request, "favorites")

	return state, validator.Err()
}

func (handler *Handler) getRestaurant(writer http.ResponseWriter, request *http.Request) {
	identifier, err := url.PathUnescape(requestutil.ID(request, "identifier"))
	if err != nil {
		respond.Error(writer, request, apperr.NotFound("Restaurant"))
		return
	}

	card, err := handler.session.Card(identifier)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, card)
}

func (handler *Handler) getOptions(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.session.Options())
}

func (handler *Handler) getStats(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.session.Statistics())
}

// # Session

func (handler *Handler) getSession(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.session.View())
}

func (handler *Handler) setSelector(writer http.ResponseWriter, request *http.Request) {
	field, err := filter.ParseField(requestutil.Param(request, "field"))
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("Unknown filter field",
			apperr.FieldError{Field: "field", Message: "Must be one of: city, foodType, neighborhood, type"}))
		return
	}

	var input struct {
		Value string `json:"value"`
	}
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	if input.Value == "" {
		input.Value = filter.All
	}

	if err := filter.ValidateSelector(field, input.Value, handler.session.Options()); err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.session.SetSelector(field, input.Value)
	respond.OK(writer, handler.session.Recompute())
}

func (handler *Handler) setSearch(writer http.ResponseWriter, request *http.Request) {
	var input struct {
		Term string `json:"term"`
	}
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	if err := validator.MaxLen("term", input.Term, maxSearchLength).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.session.SetSearch(input.Term)
	respond.OK(writer, handler.session.Recompute())
}

func (handler *Handler) setFavoritesOnly(writer http.ResponseWriter, request *http.Request) {
	var input struct {
		Enabled bool `json:"enabled"`
	}
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.session.SetFavoritesOnly(input.Enabled)
	respond.OK(writer, handler.session.Recompute())
}

func (handler *Handler) clearFilters(writer http.ResponseWriter, request *http.Request) {
	handler.session.ClearFilters()
	respond.OK(writer, handler.session.Recompute())
}

// # Favorites

func (handler *Handler) listFavorites(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, map[string]any{
		"ids":         handler.session.FavoriteIDs(),
		"restaurants": handler.session.FavoriteCards(),
	})
}

func (handler *Handler) toggleFavorite(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	isFavorite, err := handler.session.ToggleFavorite(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	view := handler.session.Recompute()
	respond.OK(writer, map[string]any{
		"id":             id,
		"isFavorite":     isFavorite,
		"favoritesCount": view.FavoritesCount,
	})
}
