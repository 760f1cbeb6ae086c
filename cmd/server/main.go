package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"teenxcel/config"
	"teenxcel/internal/database"
	"teenxcel/internal/events"
	"teenxcel/internal/logger"
	"teenxcel/internal/middleware"
	"teenxcel/internal/router"
	"teenxcel/internal/service"
	"teenxcel/pkg/cloudinary"
	"teenxcel/pkg/s3store"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Log)
	defer log.Sync()

	db, err := database.NewDB(&cfg.Database, log)
	if err != nil {
		log.Fatal("database", zap.Error(err))
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal("migrate", zap.Error(err))
	}
	ctx := context.Background()
	if err := database.SeedAdmin(ctx, db, &cfg.Admin, log); err != nil {
		log.Fatal("seed admin", zap.Error(err))
	}

	if err := os.MkdirAll(cfg.Storage.TempDir, 0o755); err != nil {
		log.Fatal("upload temp dir", zap.String("path", cfg.Storage.TempDir), zap.Error(err))
	}

	proofs, err := newProofStore(ctx, cfg)
	if err != nil {
		log.Fatal("object storage", zap.String("driver", cfg.Storage.Driver), zap.Error(err))
	}

	publisher := events.New(cfg.Kafka, log)
	defer publisher.Close()

	var limiter middleware.Limiter
	if cfg.RateLimit.Driver == "redis" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RateLimit.RedisAddr,
			Password: cfg.RateLimit.RedisPassword,
			DB:       cfg.RateLimit.RedisDB,
		})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warn("redis unreachable, rate limiting will fail open", zap.Error(err))
		}
		limiter = middleware.NewRedisRateLimiter(rdb, cfg.RateLimit.Limit, cfg.RateLimit.Window)
	} else {
		mem := middleware.NewInMemoryRateLimiter(cfg.RateLimit.Limit, cfg.RateLimit.Window)
		defer mem.Close()
		limiter = mem
	}

	engine := router.Setup(cfg, router.Deps{
		DB:        db,
		Proofs:    proofs,
		Publisher: publisher,
		Limiter:   limiter,
		Log:       log,
	})
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	go func() {
		log.Info("server listening", zap.String("port", cfg.Server.Port), zap.String("env", cfg.Server.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("listen", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", zap.Error(err))
	}
	log.Info("server stopped")
}

func newProofStore(ctx context.Context, cfg *config.Config) (service.ObjectStore, error) {
	if cfg.Storage.Driver == "s3" {
		store, err := s3store.New(ctx, s3store.Config{
			Region:        cfg.S3.Region,
			Bucket:        cfg.S3.Bucket,
			AccessKey:     cfg.S3.AccessKey,
			SecretKey:     cfg.S3.SecretKey,
			PublicBaseURL: cfg.S3.PublicBaseURL,
		})
		if err != nil {
			return nil, err
		}
		return store, nil
	}
	client, err := cloudinary.NewClient(cloudinary.Config{
		CloudName: cfg.Cloudinary.CloudName,
		APIKey:    cfg.Cloudinary.APIKey,
		APISecret: cfg.Cloudinary.APISecret,
	})
	if err != nil {
		return nil, err
	}
	return client, nil
}
