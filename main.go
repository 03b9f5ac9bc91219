package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/netoar/fyyur/config"
	"github.com/netoar/fyyur/internal/handler"
	"github.com/netoar/fyyur/internal/middleware"
	"github.com/netoar/fyyur/internal/repository"
	"github.com/netoar/fyyur/internal/service"
	"github.com/netoar/fyyur/internal/view"
	"github.com/netoar/fyyur/pkg/database"
	"github.com/netoar/fyyur/pkg/logger"
	"github.com/netoar/fyyur/pkg/rabbitmq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := config.Load()

	logFile, err := logger.Setup(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		slog.Error("logger setup failed", "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgresDB(ctx, cfg.DSN(), cfg.DBConnectTimeout)
	if err != nil {
		slog.Error("database unavailable", "error", err)
		os.Exit(1)
	}

	// Domain events are optional; the directory works without a broker.
	var publisher *rabbitmq.Publisher
	if cfg.RabbitURL != "" {
		publisher, err = rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			slog.Error("failed to connect to RabbitMQ", "error", err)
			os.Exit(1)
		}
		defer publisher.Close()
	}

	// Repositories
	venueRepo := repository.NewVenueRepository(db)
	artistRepo := repository.NewArtistRepository(db)
	showRepo := repository.NewShowRepository(db)

	// Services
	venueSvc := service.NewVenueService(venueRepo, showRepo, publisher)
	artistSvc := service.NewArtistService(artistRepo, showRepo, publisher)
	showSvc := service.NewShowService(showRepo, venueRepo, artistRepo, publisher)

	sessionSecret := []byte(cfg.SessionSecret)
	if len(sessionSecret) == 0 {
		if cfg.IsProduction() {
			slog.Error("SESSION_SECRET is required in production")
			os.Exit(1)
		}
		slog.Warn("SESSION_SECRET not set; using a random key, sessions reset on restart")
		sessionSecret = securecookie.GenerateRandomKey(32)
	}

	renderer, err := view.NewRenderer()
	if err != nil {
		slog.Error("templates failed to parse", "error", err)
		os.Exit(1)
	}

	// Echo
	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Pre(echoMw.MethodOverrideWithConfig(echoMw.MethodOverrideConfig{
		Getter: echoMw.MethodFromForm("_method"),
	}))
	e.Use(echoMw.RequestIDWithConfig(echoMw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			slog.Info("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"request_id", v.RequestID,
			)
			return nil
		},
	}))
	e.Use(echoMw.Recover())
	e.Use(middleware.Sessions(sessionSecret))
	if cfg.MetricsEnabled {
		e.Use(middleware.Metrics())
		e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	}

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "service": "fyyur"})
	})

	handler.NewHomeHandler(venueSvc, artistSvc).RegisterRoutes(e)
	handler.NewVenueHandler(venueSvc).RegisterRoutes(e.Group("/venues"))
	handler.NewArtistHandler(artistSvc).RegisterRoutes(e.Group("/artists"))
	handler.NewShowHandler(showSvc).RegisterRoutes(e.Group("/shows"))

	go func() {
		slog.Info("Fyyur starting", "port", cfg.ServerPort, "env", cfg.Env)
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown", "error", err)
	}
}
