// Package handler exposes the catalog's HTTP handlers. The HTML pages and
// the /v1 JSON mirror share one CatalogHandler; both treat a lookup that
// matches nothing as an empty page rather than an error.
package handler

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-catalog/internal/logging"
	"github.com/iliyamo/movie-catalog/internal/model"
	"github.com/iliyamo/movie-catalog/internal/query"
	"github.com/iliyamo/movie-catalog/internal/queue"
	"github.com/iliyamo/movie-catalog/internal/render"
)

// Catalog is the read side the handlers need. *repository.CatalogRepo
// implements it.
type Catalog interface {
	ListActors(ctx context.Context) ([]model.Actor, error)
	GetActor(ctx context.Context, id string) (model.ActorDetail, error)
	ListMovies(ctx context.Context, p query.MovieListParams) (model.MovieList, error)
	GetMovie(ctx context.Context, id string) (model.MovieDetail, error)
}

// SearchRecorder receives an event for every movie search.
type SearchRecorder interface {
	PublishSearch(ctx context.Context, ev queue.SearchPerformedEvent) error
}

// CatalogHandler serves the actor and movie pages.
type CatalogHandler struct {
	Catalog Catalog
	Events  SearchRecorder // optional
}

// NewCatalogHandler wires a handler. events may be nil.
func NewCatalogHandler(catalog Catalog, events SearchRecorder) *CatalogHandler {
	return &CatalogHandler{Catalog: catalog, Events: events}
}

type actorsPage struct {
	Actors []model.Actor
}

type moviesPage struct {
	model.MovieList
	SortKeys []string
	PrevURL  string
	NextURL  string
}

type errorPage struct {
	Message string
}

// Actors renders the actor index.
func (h *CatalogHandler) Actors(c echo.Context) error {
	actors, err := h.Catalog.ListActors(c.Request().Context())
	if err != nil {
		return h.renderError(c, err)
	}
	return c.Render(http.StatusOK, render.ActorsIndex, actorsPage{Actors: actors})
}

// Actor renders one actor with the movies they appeared in.
func (h *CatalogHandler) Actor(c echo.Context) error {
	actor, err := h.Catalog.GetActor(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.renderError(c, err)
	}
	return c.Render(http.StatusOK, render.ActorsShow, actor)
}

// Movies renders one page of the movie list. Query parameters: query
// (search text), order (sort key) and page.
func (h *CatalogHandler) Movies(c echo.Context) error {
	list, err := h.listMovies(c)
	if err != nil {
		return h.renderError(c, err)
	}
	page := moviesPage{MovieList: list, SortKeys: query.SortKeys}
	if list.Page > 1 {
		page.PrevURL = moviesURL(list, list.Page-1)
	}
	if len(list.Movies) == query.PageSize {
		page.NextURL = moviesURL(list, list.Page+1)
	}
	return c.Render(http.StatusOK, render.MoviesIndex, page)
}

// Movie renders one movie with its cast.
func (h *CatalogHandler) Movie(c echo.Context) error {
	movie, err := h.Catalog.GetMovie(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.renderError(c, err)
	}
	return c.Render(http.StatusOK, render.MoviesShow, movie)
}

// HeaderResultCount carries the number of movies on a list page. It is
// stored with cached responses, so RecordSearch can read it on a cache hit.
const HeaderResultCount = "X-Result-Count"

// listMovies runs the list query for the request.
func (h *CatalogHandler) listMovies(c echo.Context) (model.MovieList, error) {
	list, err := h.Catalog.ListMovies(c.Request().Context(), query.MovieListParams{
		Search: c.QueryParam("query"),
		Order:  c.QueryParam("order"),
		Page:   c.QueryParam("page"),
	})
	if err != nil {
		return list, err
	}
	c.Response().Header().Set(HeaderResultCount, strconv.Itoa(len(list.Movies)))
	return list, nil
}

// RecordSearch publishes a search event for every successful movie list
// request that carries a search term. Register it outside the response
// cache so cached pages are recorded as well.
func (h *CatalogHandler) RecordSearch(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if h.Events == nil {
			return next(c)
		}
		if err := next(c); err != nil {
			return err
		}
		term := c.QueryParam("query")
		if term == "" || c.Response().Status != http.StatusOK {
			return nil
		}
		results, _ := strconv.Atoi(c.Response().Header().Get(HeaderResultCount))
		ctx := c.Request().Context()
		ev := queue.SearchPerformedEvent{
			Query:      term,
			Order:      query.SortKey(c.QueryParam("order")),
			Page:       query.ParsePage(c.QueryParam("page")),
			Results:    results,
			RequestID:  logging.RequestIDFromContext(ctx),
			SearchedAt: time.Now().UTC().Format(time.RFC3339),
		}
		go h.publish(context.WithoutCancel(ctx), ev)
		return nil
	}
}

func (h *CatalogHandler) publish(ctx context.Context, ev queue.SearchPerformedEvent) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := h.Events.PublishSearch(ctx, ev); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Msg("search event dropped")
	}
}

func (h *CatalogHandler) renderError(c echo.Context, err error) error {
	logging.Ctx(c.Request().Context()).Error().Err(err).Str("path", c.Request().URL.Path).Msg("catalog lookup failed")
	return c.Render(http.StatusInternalServerError, render.Error, errorPage{Message: "database error"})
}

func moviesURL(list model.MovieList, page int) string {
	v := url.Values{}
	if list.Query != "" {
		v.Set("query", list.Query)
	}
	if list.Order != query.DefaultSort {
		v.Set("order", list.Order)
	}
	v.Set("page", strconv.Itoa(page))
	return "/movies?" + v.Encode()
}
