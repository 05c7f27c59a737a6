package news

import (
	"go-inova/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService, rdb *redis.Client, jwtSecret string) {
	auth := middleware.AuthMiddleware(jwtSecret)

	news := r.Group("/news")
	{
		news.GET("", middleware.RateLimitByIP(5, 20), handler.List)
		news.GET("/home", middleware.RateLimitByIP(10, 40), handler.Home)
		news.GET("/:id", middleware.RateLimitByIP(5, 20), handler.Get)

		news.POST("",
			auth,
			middleware.RBACAuthorize(rbacService, "news", "create"),
			middleware.RateLimitByUser(0.2, 2),
			middleware.Idempotency(rdb),
			handler.Create,
		)
		news.PUT("/:id",
			auth,
			middleware.RBACAuthorize(rbacService, "news", "update"),
			middleware.RateLimitByUser(0.5, 2),
			handler.Update,
		)
		news.DELETE("/:id",
			auth,
			middleware.RBACAuthorize(rbacService, "news", "delete"),
			middleware.RateLimitByUser(0.2, 2),
			handler.Delete,
		)
		news.POST("/:id/cover",
			auth,
			middleware.RBACAuthorize(rbacService, "asset", "upload"),
			middleware.RateLimitByUser(0.2, 2),
			handler.UploadCover,
		)
	}
}
