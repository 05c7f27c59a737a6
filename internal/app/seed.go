package app

import (
	"context"

	"go-inova/internal/administrator"
	"go-inova/internal/auth"
	"go-inova/internal/config"
	"go-inova/internal/shared/connection"
)

// CreateSuperuser seeds a superuser account, migrating the schema first when
// DB_AUTOMIGRATE is set.
func CreateSuperuser(ctx context.Context, cfg *config.Config, req auth.CreateUserRequest) (auth.UserResponse, error) {
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
		return auth.UserResponse{}, err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	if cfg.Database.AutoMigrate {
		if err := Migrate(db); err != nil {
			return auth.UserResponse{}, err
		}
	}

	svc := auth.NewService(auth.NewRepository(db), administrator.NewRepository(db), cfg.JWT, nil)
	req.IsSuperuser = true
	return svc.CreateUser(ctx, req)
}
