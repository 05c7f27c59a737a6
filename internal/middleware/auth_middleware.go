package middleware

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"go-inova/internal/policy"
	policyerrors "go-inova/internal/policy/errors"
	"go-inova/internal/shared/apperror"
	"go-inova/internal/shared/contextutil"
	"go-inova/internal/shared/response"
	"go-inova/internal/shared/token"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	LoginPath         = "/api/v1/auth/login"
	AccessTokenCookie = "access_token"
)

// AuthMiddleware resolves the principal from a Bearer header or the
// access_token cookie. Requests without a valid access token are sent to
// the login entry point with a 303.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			raw = ""
		}
		if raw == "" {
			if cookie, err := c.Cookie(AccessTokenCookie); err == nil {
				raw = cookie
			}
		}

		if raw == "" {
			RedirectToLogin(c)
			return
		}

		claims, err := token.Parse(secret, raw)
		if err != nil || (claims.Kind != "" && claims.Kind != token.KindAccess) {
			contextutil.GetLogger(c.Request.Context(), zap.L()).
				Debug("access token rejected", zap.Error(err))
			RedirectToLogin(c)
			return
		}

		actor, err := actorFromClaims(claims)
		if err != nil {
			RedirectToLogin(c)
			return
		}

		setPrincipal(c, actor)

		ctx := contextutil.WithUserID(c.Request.Context(), claims.UserID)
		logger := contextutil.GetLogger(ctx, zap.L()).With(zap.String("user_id", claims.UserID))
		ctx = contextutil.WithLogger(ctx, logger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RedirectToLogin aborts with 303 See Other, carrying the requested path in
// ?next= so the login page can send the user back.
func RedirectToLogin(c *gin.Context) {
	q := url.Values{}
	q.Set("next", c.Request.URL.RequestURI())
	c.Redirect(http.StatusSeeOther, LoginPath+"?"+q.Encode())
	c.Abort()
}

// Deny turns an authorizer error into the HTTP contract: unauthenticated
// callers are redirected, everyone else gets the JSON error envelope.
func Deny(c *gin.Context, err error) {
	if errors.Is(err, policyerrors.ErrUnauthenticated) {
		RedirectToLogin(c)
		return
	}
	response.FromError(c, err)
	c.Abort()
}

func RequireSuperuser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := policy.RequireSuperuser(CurrentPrincipal(c)); err != nil {
			Deny(c, err)
			return
		}
		c.Next()
	}
}

// RequireStartupAdmin allows the administrator bound to the startup named by
// the route param, or a superuser.
func RequireStartupAdmin(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		startupID, err := uuid.Parse(c.Param(param))
		if err != nil {
			response.FromError(c, apperror.InvalidField(param))
			c.Abort()
			return
		}

		if err := policy.AuthorizeStartup(CurrentPrincipal(c), startupID); err != nil {
			Deny(c, err)
			return
		}
		c.Next()
	}
}

func actorFromClaims(claims token.Claims) (policy.Actor, error) {
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return policy.Actor{}, err
	}

	actor := policy.Actor{ID: userID, Superuser: claims.IsSuperuser}
	if claims.StartupID != "" {
		startupID, err := uuid.Parse(claims.StartupID)
		if err != nil {
			return policy.Actor{}, err
		}
		actor.StartupID = &startupID
	}
	return actor, nil
}
