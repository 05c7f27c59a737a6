package project

import (
	"go-inova/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService, jwtSecret string) {
	r.GET("/projects/by-name/:startupName/:projectName", middleware.RateLimitByIP(5, 20), handler.GetByNames)

	projects := r.Group("/startups/:id/projects")
	{
		projects.GET("", middleware.RateLimitByIP(5, 20), handler.List)
		projects.GET("/:projectID", middleware.RateLimitByIP(5, 20), handler.Get)

		scoped := projects.Group("",
			middleware.AuthMiddleware(jwtSecret),
			middleware.RBACAuthorize(rbacService, "project", "manage"),
			middleware.RequireStartupAdmin("id"),
		)
		scoped.POST("", middleware.RateLimitByUser(0.2, 2), handler.Create)
		scoped.PUT("/:projectID", middleware.RateLimitByUser(0.5, 2), handler.Update)
		scoped.PUT("/:projectID/members", middleware.RateLimitByUser(0.5, 2), handler.SetMembers)
		scoped.DELETE("/:projectID", middleware.RateLimitByUser(0.1, 1), handler.Delete)
	}
}
