package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-catalog/internal/logging"
	"github.com/iliyamo/movie-catalog/internal/query"
)

// APIActors returns all actors. Response JSON contains an "items" array.
func (h *CatalogHandler) APIActors(c echo.Context) error {
	actors, err := h.Catalog.ListActors(c.Request().Context())
	if err != nil {
		return h.jsonError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": actors})
}

// APIActor returns an actor's name and credits; unknown ids give an empty
// name and no movies.
func (h *CatalogHandler) APIActor(c echo.Context) error {
	actor, err := h.Catalog.GetActor(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.jsonError(c, err)
	}
	return c.JSON(http.StatusOK, actor)
}

// APIMovies returns one page of movies.
func (h *CatalogHandler) APIMovies(c echo.Context) error {
	list, err := h.listMovies(c)
	if err != nil {
		return h.jsonError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"data":      list.Movies,
		"page":      list.Page,
		"page_size": query.PageSize,
	})
}

// APIMovie returns a movie and its cast; unknown ids give {} and [].
func (h *CatalogHandler) APIMovie(c echo.Context) error {
	movie, err := h.Catalog.GetMovie(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.jsonError(c, err)
	}
	return c.JSON(http.StatusOK, movie)
}

func (h *CatalogHandler) jsonError(c echo.Context, err error) error {
	logging.Ctx(c.Request().Context()).Error().Err(err).Str("path", c.Request().URL.Path).Msg("catalog lookup failed")
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
}
