package storage

import (
	"go-inova/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService, jwtSecret string) {
	assets := r.Group("/assets")
	assets.Use(middleware.AuthMiddleware(jwtSecret))
	{
		assets.POST("/images",
			middleware.RateLimitByUser(1, 10),
			middleware.RBACAuthorize(rbacService, "asset", "upload"),
			handler.UploadImage,
		)
	}
}
