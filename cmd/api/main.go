package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/flatmate-finder/internal/audit"
	"github.com/BruksfildServices01/flatmate-finder/internal/auth"
	"github.com/BruksfildServices01/flatmate-finder/internal/config"
	dbpkg "github.com/BruksfildServices01/flatmate-finder/internal/db"
	"github.com/BruksfildServices01/flatmate-finder/internal/infra/memstore"
	"github.com/BruksfildServices01/flatmate-finder/internal/logger"
	"github.com/BruksfildServices01/flatmate-finder/internal/metrics"
	"github.com/BruksfildServices01/flatmate-finder/internal/ratelimit"
	"github.com/BruksfildServices01/flatmate-finder/internal/routes"
	"github.com/BruksfildServices01/flatmate-finder/internal/storage"
	"github.com/BruksfildServices01/flatmate-finder/internal/timezone"
	"github.com/BruksfildServices01/flatmate-finder/internal/validators"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}

	err = run(cfg, log)
	if err != nil {
		log.Error("server stopped", zap.Error(err))
	}
	_ = log.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ======================================================
	// STORAGE
	// ======================================================
	var repos routes.Repositories
	if cfg.UsesMemoryStore() {
		log.Warn("using in-memory store, data is lost on restart")
		repos = routes.MemoryRepositories(memstore.New())
	} else {
		db, err := dbpkg.NewDB(ctx, cfg, log)
		if err != nil {
			return err
		}
		repos = routes.GormRepositories(db)
	}

	// ======================================================
	// REDIS (optional)
	// ======================================================
	var (
		limiter     ratelimit.Limiter
		revocations auth.Revocations
	)
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("parse REDIS_URL: %w", err)
		}
		client := redis.NewClient(opts)
		defer client.Close()

		if err := client.Ping(ctx).Err(); err != nil {
			log.Warn("redis unreachable at startup", zap.Error(err))
		}

		limiter = ratelimit.NewRedisLimiter(client, cfg.RateLimitMax, cfg.RateLimitWindow)
		revocations = auth.NewRedisRevocations(client)
	} else {
		limiter = ratelimit.NewMemoryLimiter(cfg.RateLimitMax, cfg.RateLimitWindow)
		revocations = auth.NewMemoryRevocations()
	}

	uploader, err := newUploader(cfg)
	if err != nil {
		return err
	}
	if uploader == nil {
		log.Info("image uploads disabled, no storage backend configured")
	} else {
		log.Info("image uploads enabled", zap.String("backend", uploader.Name()))
	}

	var resolver validators.Resolver
	if cfg.CheckEmailDomain {
		resolver = net.DefaultResolver
	}

	dispatcher := audit.NewDispatcher(audit.New(repos.Audit), log.Named("audit"))

	engine := routes.NewEngine(routes.Deps{
		Config:      cfg,
		Log:         log,
		Location:    timezone.Location(cfg.Timezone),
		Repos:       repos,
		Audit:       dispatcher,
		Tokens:      auth.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiresIn),
		Revocations: revocations,
		Limiter:     limiter,
		Uploader:    uploader,
		Metrics:     metrics.NewDefault(),
		Resolver:    resolver,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server running", zap.String("addr", cfg.Addr()), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		log.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown", zap.Error(err))
	}
	if err := dispatcher.Close(shutdownCtx); err != nil {
		log.Error("audit drain", zap.Error(err))
	}
	return nil
}

// newUploader prefers S3, then Cloudinary. Neither configured yields nil.
func newUploader(cfg *config.Config) (storage.Uploader, error) {
	switch {
	case cfg.S3.Enabled():
		return storage.NewS3Uploader(cfg.S3), nil
	case cfg.CloudinaryURL != "":
		u, err := storage.NewCloudinaryUploader(cfg.CloudinaryURL)
		if err != nil {
			return nil, fmt.Errorf("cloudinary: %w", err)
		}
		return u, nil
	}
	return nil, nil
}
