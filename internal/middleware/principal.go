package middleware

import (
	"go-inova/internal/domain"
	"go-inova/internal/policy"

	"github.com/gin-gonic/gin"
)

const (
	ContextPrincipal   = "principal"
	ContextUserID      = "user_id"
	ContextIsSuperuser = "is_superuser"
	ContextStartupID   = "startup_id"
)

// CurrentPrincipal returns the actor set by AuthMiddleware, or an anonymous
// actor on public routes.
func CurrentPrincipal(c *gin.Context) policy.Actor {
	if v, ok := c.Get(ContextPrincipal); ok {
		if actor, ok := v.(policy.Actor); ok {
			return actor
		}
	}
	return policy.Anonymous()
}

func RoleOf(p policy.Principal) string {
	_, bound := p.AdministratorStartupID()
	return domain.RoleFor(p.IsAuthenticated(), p.IsSuperuser(), bound)
}

func setPrincipal(c *gin.Context, actor policy.Actor) {
	c.Set(ContextPrincipal, actor)
	c.Set(ContextUserID, actor.ID.String())
	c.Set(ContextIsSuperuser, actor.Superuser)
	if id, ok := actor.AdministratorStartupID(); ok {
		c.Set(ContextStartupID, id.String())
	}
}
