package middleware

import (
	"net/http"

	"go-inova/internal/domain"
	"go-inova/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// RBACService is declared locally so middleware does not depend on the rbac
// package.
type RBACService interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

// RBACAuthorize gates a coarse capability by role. Ownership is checked
// later by the handler.
func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := CurrentPrincipal(c)
		if !p.IsAuthenticated() {
			RedirectToLogin(c)
			return
		}

		allowed, err := service.Enforce(domain.EnforceRequest{
			Role:     RoleOf(p),
			Resource: resource,
			Action:   action,
		})
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Authorization check failed", nil)
			c.Abort()
			return
		}

		if !allowed {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You do not have permission to access this resource", gin.H{
				"required": resource + ":" + action,
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
