package app

import (
	"go-inova/internal/administrator"
	"go-inova/internal/auth"
	"go-inova/internal/bootstrap"
	"go-inova/internal/config"
	"go-inova/internal/formlink"
	"go-inova/internal/member"
	"go-inova/internal/messaging/kafka"
	"go-inova/internal/news"
	"go-inova/internal/project"
	"go-inova/internal/rbac"
	"go-inova/internal/rbac/infra"
	"go-inova/internal/startup"
	"go-inova/internal/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func registerModules(router *gin.Engine, cfg *config.Config, deps *Infra) error {
	logger := zap.L()
	db := deps.DB
	rdb := deps.Redis

	// --- Repositories ---
	authRepo := auth.NewRepository(db)
	adminRepo := administrator.NewRepository(db)
	startupRepo := startup.NewRepository(db)
	memberRepo := member.NewRepository(db)
	projectRepo := project.NewRepository(db)
	newsRepo := news.NewRepository(db)
	formLinkRepo := formlink.NewRepository(db)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbac.NewRepository(), enforcer, logger)
	if err := rbacService.Reload(); err != nil {
		return err
	}

	// --- Assets ---
	uploader := storage.NewUploader(deps.Assets, storage.NewImageProcessor(), deps.Assets.Bucket(), logger)

	// --- Services ---
	auditLogger := bootstrap.NewStdoutAuditLogger()
	authService := auth.NewService(authRepo, adminRepo, cfg.JWT, auditLogger, logger)
	adminService := administrator.NewService(adminRepo, startupRepo, authRepo, logger)
	startupService := startup.NewService(startupRepo, memberRepo, adminRepo, uploader, logger)
	memberService := member.NewService(memberRepo, startupRepo, uploader, logger)
	projectService := project.NewService(db, projectRepo, adminRepo, memberRepo, startupRepo, logger)
	retention := news.NewRetentionEnforcer(newsRepo, cfg.News.RetentionCap, auditLogger, logger)
	newsService := news.NewService(db, newsRepo, retention, outboxRepo, rdb, uploader, cfg.News, logger)
	formLinkService := formlink.NewService(formLinkRepo, logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(
		authService,
		cfg.App.IsProduction(),
		int(cfg.JWT.AccessExpiry.Seconds()),
		int(cfg.JWT.RefreshExpiry.Seconds()),
		logger,
	)
	adminHandler := administrator.NewHandler(adminService, logger)
	startupHandler := startup.NewHandler(startupService, logger)
	memberHandler := member.NewHandler(memberService, logger)
	projectHandler := project.NewHandler(projectService, logger)
	newsHandler := news.NewHandler(newsService, logger)
	formLinkHandler := formlink.NewHandler(formLinkService, logger)
	storageHandler := storage.NewHandler(uploader, logger)
	rbacHandler := rbac.NewHandler(rbacService, logger)

	// --- Routes Registration ---
	secret := cfg.JWT.Secret
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, secret)
		startup.RegisterRoutes(api, startupHandler, rbacService, secret)
		administrator.RegisterRoutes(api, adminHandler, secret)
		member.RegisterRoutes(api, memberHandler, rbacService, secret)
		project.RegisterRoutes(api, projectHandler, rbacService, secret)
		news.RegisterRoutes(api, newsHandler, rbacService, rdb, secret)
		formlink.RegisterRoutes(api, formLinkHandler, rbacService, secret)
		storage.RegisterRoutes(api, storageHandler, rbacService, secret)
		rbac.RegisterRoutes(api, rbacHandler, secret)
	}

	logger.Named("app").Info("modules registered",
		zap.Int("news_retention_cap", retention.Cap()),
	)
	return nil
}
