package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"

	gfshutdown "github.com/gelmium/graceful-shutdown"

	"daily-planner-api/internal/app"
	"daily-planner-api/internal/auth"
	"daily-planner-api/internal/config"
	"daily-planner-api/internal/database"
	"daily-planner-api/internal/handlers"
	"daily-planner-api/internal/realtime"
	"daily-planner-api/internal/routes"
	"daily-planner-api/internal/storage"
)

func main() {
	cfg := config.Load()
	logger := cfg.NewLogger()
	slog.SetDefault(logger)

	ctx := context.Background()

	// Open the key-value store
	store, closeStore, err := storage.Open(ctx, storage.Options{
		Driver:      cfg.StoreDriver,
		DBPath:      cfg.DBPath,
		RedisAddr:   cfg.RedisAddr,
		RedisPrefix: cfg.RedisPrefix,
		CacheTTL:    cfg.CacheTTL,
		LogLevel:    database.LogLevel(cfg.LogLevel),
		Logger:      logger,
	})
	if err != nil {
		logger.Error("failed to open store", "driver", cfg.StoreDriver, "error", err)
		os.Exit(1)
	}

	hub := realtime.NewHub()
	toaster := realtime.NewToaster(cfg.ToastDismiss)
	planner := app.New(store,
		app.WithKeys(storage.NewKeys(cfg.Namespace)),
		app.WithLogger(logger),
		app.WithNotifier(realtime.NewDispatcher(hub, toaster, logger)),
	)
	state := planner.Restore(ctx)
	if state.Identity != nil {
		logger.Info("session restored", "email", state.Identity.Email, "tasks", len(state.Tasks))
	}

	signer := auth.NewSigner(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience, 0)
	if cfg.JWTSecret == "" {
		logger.Warn("JWT_SECRET is not set, using the development secret")
	}

	// Setup the routes (public and protected routes)
	ginRoutes := routes.SetupRoutes(routes.Deps{
		Handler: handlers.New(planner, signer, hub, toaster, logger),
		Signer:  signer,
		Session: planner,
		Logger:  logger,
	})

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: ginRoutes,
	}

	go func() {
		logger.Info("server starting", "addr", srv.Addr, "store", cfg.StoreDriver)
		logger.Info("API endpoints",
			"public", []string{"GET /health", "POST /api/login"},
			"session", []string{"GET /api/session", "POST /api/logout"},
			"tasks", []string{
				"GET /api/tasks", "POST /api/tasks", "DELETE /api/tasks", "DELETE /api/tasks/completed",
				"PUT /api/tasks/:id", "PATCH /api/tasks/:id", "PATCH /api/tasks/:id/toggle", "DELETE /api/tasks/:id",
			},
			"backup", []string{"GET /api/backup", "POST /api/backup"},
			"progress", []string{"GET /api/stats", "GET /api/progress", "GET /api/themes", "PUT /api/theme", "GET /api/notifications/current"},
			"realtime", "GET /ws",
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	wait := gfshutdown.GracefulShutdown(ctx, cfg.ShutdownTimeout, map[string]gfshutdown.Operation{
		"http-server": func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
		"storage": func(ctx context.Context) error {
			return closeStore()
		},
	})
	os.Exit(<-wait)
}
