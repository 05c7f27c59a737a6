package member

import (
	"go-inova/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService, jwtSecret string) {
	members := r.Group("/startups/:id/members")
	{
		members.GET("", middleware.RateLimitByIP(5, 20), handler.List)

		scoped := members.Group("",
			middleware.AuthMiddleware(jwtSecret),
			middleware.RBACAuthorize(rbacService, "member", "manage"),
			middleware.RequireStartupAdmin("id"),
		)
		scoped.POST("", middleware.RateLimitByUser(0.5, 3), handler.Create)
		scoped.PUT("/:memberID", middleware.RateLimitByUser(0.5, 3), handler.Update)
		scoped.DELETE("/:memberID", middleware.RateLimitByUser(0.2, 2), handler.Delete)
		scoped.POST("/:memberID/photo", middleware.RateLimitByUser(0.2, 2), handler.UploadPhoto)
	}
}
