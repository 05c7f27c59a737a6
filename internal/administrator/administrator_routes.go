package administrator

import (
	"go-inova/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, jwtSecret string) {
	auth := middleware.AuthMiddleware(jwtSecret)

	admins := r.Group("/startups/:id/administrator")
	{
		admins.GET("", middleware.RateLimitByIP(5, 20), handler.Get)

		admins.POST("",
			auth,
			middleware.RequireSuperuser(),
			middleware.RateLimitByUser(0.2, 2),
			handler.Bind,
		)

		admins.PUT("",
			auth,
			middleware.RequireStartupAdmin("id"),
			middleware.RateLimitByUser(0.5, 2),
			handler.Update,
		)
	}
}
