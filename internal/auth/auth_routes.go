package auth

import (
	"go-inova/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, jwtSecret string) {
	authenticated := middleware.AuthMiddleware(jwtSecret)

	auth := r.Group("/auth")
	{
		auth.GET("/login", handler.LoginPage)
		auth.POST("/login", middleware.RateLimitByIP(0.08, 5), handler.Login)
		auth.POST("/refresh", middleware.RateLimitByIP(0.5, 5), handler.RefreshToken)
		auth.POST("/logout", handler.Logout)
		auth.GET("/me", authenticated, middleware.RateLimitByUser(2, 5), handler.Me)

		users := auth.Group("/users", authenticated, middleware.RequireSuperuser())
		users.POST("", middleware.RateLimitByUser(0.2, 2), handler.CreateUser)
		users.DELETE("/:id", middleware.RateLimitByUser(0.1, 1), handler.DeleteUser)
	}
}
