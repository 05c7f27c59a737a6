package app

import (
	"context"
	"errors"
	"time"

	"go-inova/internal/config"
	"go-inova/internal/middleware"
	"go-inova/internal/shared/connection"
	"go-inova/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Infra holds the long lived connections shared by every module.
type Infra struct {
	DB     *gorm.DB
	Redis  *redis.Client
	Assets *storage.MinIOStore
}

func (i *Infra) Close() error {
	var errs []error
	if i.Redis != nil {
		errs = append(errs, i.Redis.Close())
	}
	if i.DB != nil {
		if sqlDB, err := i.DB.DB(); err == nil {
			errs = append(errs, sqlDB.Close())
		}
	}
	return errors.Join(errs...)
}

func Connect(ctx context.Context, cfg *config.Config) (*Infra, error) {
	log := zap.L().Named("app")

	db, err := connection.ConnectGORMWithRetry(
		cfg.Database.Host,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.Port,
		cfg.Database.SSLMode,
		cfg.Database.MaxRetries,
	)
	if err != nil {
		return nil, err
	}
	infra := &Infra{DB: db}

	if cfg.Database.AutoMigrate {
		if err := Migrate(db); err != nil {
			_ = infra.Close()
			return nil, err
		}
		log.Info("database schema migrated")
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.Redis.Password, cfg.Database.MaxRetries)
	if err != nil {
		_ = infra.Close()
		return nil, err
	}
	infra.Redis = rdb

	assets, err := storage.NewMinIOStore(ctx, cfg.MinIO)
	if err != nil {
		_ = infra.Close()
		return nil, err
	}
	infra.Assets = assets

	return infra, nil
}

// BuildApp connects the infrastructure and mounts every module under /api/v1.
func BuildApp(router *gin.Engine, cfg *config.Config) (*Infra, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	infra, err := Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID", "X-Client-Type", middleware.IdempotencyHeader},
		ExposeHeaders:    []string{"X-Request-ID", "Location"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(middleware.ContextLogger(zap.L()))

	if err := registerModules(router, cfg, infra); err != nil {
		_ = infra.Close()
		return nil, err
	}
	return infra, nil
}
