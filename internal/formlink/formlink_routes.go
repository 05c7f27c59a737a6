package formlink

import (
	"go-inova/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService, jwtSecret string) {
	links := r.Group("/form-link")
	{
		links.GET("", middleware.RateLimitByIP(10, 40), handler.Current)
		links.GET("/history",
			middleware.AuthMiddleware(jwtSecret),
			middleware.RateLimitByUser(1, 5),
			handler.History,
		)
		links.PUT("",
			middleware.AuthMiddleware(jwtSecret),
			middleware.RBACAuthorize(rbacService, "formlink", "update"),
			middleware.RateLimitByUser(0.2, 2),
			handler.Update,
		)
	}
}
