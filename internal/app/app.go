package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hr-records/internal/attachment"
	"hr-records/internal/config"
	"hr-records/internal/database"
	"hr-records/internal/handler"
	"hr-records/internal/middleware"
	"hr-records/internal/repository"
	"hr-records/internal/router"
	"hr-records/internal/service"
)

type App struct {
	server *http.Server
	db     *database.DB
}

func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.New(context.Background(), cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		return nil, fmt.Errorf("failed to build database pool: %w", err)
	}

	// An unreachable store at boot degrades availability but must not
	// take the process down; requests fail individually until the store
	// comes back and the pool reconnects on its own.
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if pingErr := db.Ping(pingCtx); pingErr != nil {
		slog.Error("database unreachable at startup; serving in degraded mode", "error", pingErr)
	} else if schemaErr := db.EnsureSchema(context.Background()); schemaErr != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure database schema: %w", schemaErr)
	}

	attachments, uploadsRoot, err := buildAttachmentStore(cfg)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize attachment store: %w", err)
	}

	userRepo := repository.NewUserRepository(db.Pool)
	employeeRepo := repository.NewEmployeeRepository(db.Pool)

	tokenService := service.NewTokenService(cfg.JWTSecret)
	authService := service.NewAuthService(userRepo, tokenService)
	employeeService := service.NewEmployeeService(employeeRepo, attachments)

	authMiddleware := middleware.NewAuthMiddleware(tokenService)
	authHandler := handler.NewAuthHandler(authService)
	employeeHandler := handler.NewEmployeeHandler(employeeService, cfg.MaxUploadSize)

	appRouter := router.New(cfg, authMiddleware, authHandler, employeeHandler, uploadsRoot)

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      appRouter,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
		IdleTimeout:  cfg.ServerIdleTimeout,
	}

	return &App{server: server, db: db}, nil
}

// buildAttachmentStore returns the configured backend; uploadsRoot is
// non-empty only for the local backend, which is also served statically.
func buildAttachmentStore(cfg *config.Config) (attachment.Store, string, error) {
	limits := attachment.NewLimits(cfg.MaxUploadSize, cfg.AllowedMIMETypes)

	switch cfg.AttachmentBackend {
	case config.AttachmentBackendS3:
		store, err := attachment.NewS3Store(context.Background(), attachment.S3Config{
			Region:       cfg.S3Region,
			Bucket:       cfg.S3Bucket,
			BaseEndpoint: cfg.S3BaseEndpoint,
			AccessKey:    cfg.S3AccessKey,
			SecretKey:    cfg.S3SecretKey,
		}, limits)
		return store, "", err
	default:
		store, err := attachment.NewLocalStore(cfg.UploadsRoot, "/uploads", limits)
		if err != nil {
			return nil, "", err
		}
		return store, store.Root(), nil
	}
}

func (a *App) Run() error {
	go func() {
		slog.Info("server starting", "addr", a.server.Addr)
		if serveErr := a.server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			slog.Error("server failed", "error", serveErr)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	a.db.Close()

	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
