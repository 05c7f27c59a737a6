package startup

import (
	"go-inova/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService, jwtSecret string) {
	auth := middleware.AuthMiddleware(jwtSecret)

	startups := r.Group("/startups")
	{
		startups.GET("", middleware.RateLimitByIP(5, 20), handler.List)
		startups.GET("/stats", middleware.RateLimitByIP(5, 20), handler.Stats)
		startups.GET("/by-name/:name", middleware.RateLimitByIP(5, 20), handler.GetProfileByName)
		startups.GET("/:id", middleware.RateLimitByIP(5, 20), handler.GetProfile)

		startups.POST("",
			auth,
			middleware.RBACAuthorize(rbacService, "startup", "create"),
			middleware.RateLimitByUser(0.1, 1),
			handler.Create,
		)

		scoped := startups.Group("/:id",
			auth,
			middleware.RequireStartupAdmin("id"),
		)
		scoped.PUT("",
			middleware.RBACAuthorize(rbacService, "startup", "update"),
			middleware.RateLimitByUser(0.5, 2),
			handler.Update,
		)
		scoped.PUT("/contact",
			middleware.RBACAuthorize(rbacService, "startup", "update"),
			middleware.RateLimitByUser(0.5, 2),
			handler.UpdateContact,
		)
		scoped.PUT("/social-links",
			middleware.RBACAuthorize(rbacService, "startup", "update"),
			middleware.RateLimitByUser(0.5, 2),
			handler.UpdateSocialLinks,
		)
		scoped.POST("/logo",
			middleware.RBACAuthorize(rbacService, "asset", "upload"),
			middleware.RateLimitByUser(0.2, 2),
			handler.UploadLogo,
		)
		scoped.DELETE("",
			middleware.RBACAuthorize(rbacService, "startup", "delete"),
			middleware.RateLimitByUser(0.05, 1),
			handler.Delete,
		)
	}
}
