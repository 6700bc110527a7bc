package main // Entry point package

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/iliyamo/movie-catalog/internal/config"
	"github.com/iliyamo/movie-catalog/internal/database"
	"github.com/iliyamo/movie-catalog/internal/handler"
	"github.com/iliyamo/movie-catalog/internal/logging"
	"github.com/iliyamo/movie-catalog/internal/middleware"
	"github.com/iliyamo/movie-catalog/internal/queue"
	"github.com/iliyamo/movie-catalog/internal/render"
	"github.com/iliyamo/movie-catalog/internal/repository"
	"github.com/iliyamo/movie-catalog/internal/router"
	queue_publisher "github.com/iliyamo/movie-catalog/internal/service"
)

func main() {
	cfg := config.Load()
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		logging.Fatal().Err(err).Str("db", cfg.DBName).Msg("database unavailable")
	}
	defer db.Close()

	renderer, err := render.New()
	if err != nil {
		logging.Fatal().Err(err).Msg("templates")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var events handler.SearchRecorder
	if cfg.SearchEvents.Enabled {
		events = queue_publisher.NewSearchPublisher(cfg.SearchEvents.URL)
		go func() {
			if err := queue.StartSearchConsumer(ctx, cfg.SearchEvents.URL, cfg.SearchEvents.LogDir); err != nil && !errors.Is(err, context.Canceled) {
				logging.Error().Err(err).Msg("search consumer stopped")
			}
		}()
	}

	// Redis is optional: without it the cache and rate limiter are no-ops.
	rdb := config.NewRedisClient(config.LoadRedisConfig())
	if rdb == nil {
		logging.Warn().Msg("redis unavailable; response cache and rate limiting disabled")
	} else {
		defer rdb.Close()
	}
	pageMW := []echo.MiddlewareFunc{
		middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb),
		middleware.NewRedisCache(config.LoadCacheConfig(), rdb),
	}

	repo := repository.NewCatalogRepo(database.NewStore(db), cfg.PageOffsetLegacy)
	h := handler.NewCatalogHandler(repo, events)

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	e.JSONSerializer = render.JSONSerializer{}
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: logging.GenerateRequestID}))
	e.Use(middleware.RequestLogger())
	e.Use(echomw.Recover())

	router.RegisterRoutes(e)
	router.RegisterCatalog(e, h, pageMW...)
	router.RegisterAPI(e, h, pageMW...)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           otelhttp.NewHandler(e, "movie-catalog"),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logging.Info().Str("addr", srv.Addr).Str("env", cfg.Env).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("shutdown")
	}
}
