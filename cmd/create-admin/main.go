package main

import (
	"context"
	"flag"
	"os"
	"time"

	"go-inova/internal/app"
	"go-inova/internal/auth"
	"go-inova/internal/bootstrap"
	"go-inova/internal/config"
	"go-inova/internal/shared/apperror"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	logger, err := bootstrap.NewLogger(os.Getenv("APP_ENV"))
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	name := flag.String("name", os.Getenv("ADMIN_NAME"), "display name")
	email := flag.String("email", os.Getenv("ADMIN_EMAIL"), "login email")
	password := flag.String("password", os.Getenv("ADMIN_PASSWORD"), "password, at least 8 characters")
	flag.Parse()

	if *name == "" || *email == "" || len(*password) < 8 {
		logger.Fatal("name, email and a password of at least 8 characters are required")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config failed", zap.Error(err))
	}

	apperror.Init()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	user, err := app.CreateSuperuser(ctx, cfg, auth.CreateUserRequest{
		Name:     *name,
		Email:    *email,
		Password: *password,
	})
	if err != nil {
		logger.Fatal("create superuser failed", zap.Error(err))
	}
	logger.Info("superuser created", zap.String("user_id", user.ID), zap.String("email", user.Email))
}
