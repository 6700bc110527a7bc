package router // package router defines how HTTP routes are registered

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/iliyamo/movie-catalog/internal/handler"
)

// RegisterRoutes registers the operational endpoints: the health check used
// by load balancers and the Prometheus scrape endpoint.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

// RegisterCatalog registers the server-rendered catalog pages. The given
// middleware (rate limiter, response cache) wraps every page; the movie list
// additionally records searches ahead of it.
func RegisterCatalog(e *echo.Echo, h *handler.CatalogHandler, mw ...echo.MiddlewareFunc) {
	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "/movies")
	})

	e.GET("/actors", h.Actors, mw...)
	e.GET("/actors/:id", h.Actor, mw...)
	e.GET("/movies", h.Movies, searchChain(h, mw)...)
	e.GET("/movies/:id", h.Movie, mw...)
}

// RegisterAPI registers the JSON mirror of the catalog pages under /v1.
func RegisterAPI(e *echo.Echo, h *handler.CatalogHandler, mw ...echo.MiddlewareFunc) {
	g := e.Group("/v1")
	g.GET("/actors", h.APIActors, mw...)
	g.GET("/actors/:id", h.APIActor, mw...)
	g.GET("/movies", h.APIMovies, searchChain(h, mw)...)
	g.GET("/movies/:id", h.APIMovie, mw...)
}

// searchChain puts RecordSearch outermost so cache hits still publish.
func searchChain(h *handler.CatalogHandler, mw []echo.MiddlewareFunc) []echo.MiddlewareFunc {
	return append([]echo.MiddlewareFunc{h.RecordSearch}, mw...)
}
