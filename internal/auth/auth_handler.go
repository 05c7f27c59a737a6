package auth

import (
	"net/http"
	"strings"

	autherrors "go-inova/internal/auth/errors"
	"go-inova/internal/middleware"
	"go-inova/internal/shared/apperror"
	platform "go-inova/internal/shared/request"
	"go-inova/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const RefreshTokenCookie = "refresh_token"

type Handler struct {
	service       Service
	secureCookies bool
	accessMaxAge  int
	refreshMaxAge int
	logger        *zap.Logger
}

func NewHandler(s Service, secureCookies bool, accessMaxAge, refreshMaxAge int, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{
		service:       s,
		secureCookies: secureCookies,
		accessMaxAge:  accessMaxAge,
		refreshMaxAge: refreshMaxAge,
		logger:        l,
	}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("auth request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// LoginPage is where unauthenticated requests are redirected. It tells the
// client how to authenticate and echoes the page it came from.
func (h *Handler) LoginPage(c *gin.Context) {
	response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, apperror.ErrUnauthorized.Message, gin.H{
		"login": "POST " + middleware.LoginPath,
		"next":  safeNext(c.Query("next")),
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	result, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	if next := safeNext(c.Query("next")); next != "" {
		result.RedirectTo = next
	}

	if h.isWeb(c) {
		h.setTokenCookies(c, result.AccessToken, result.RefreshToken)
	}
	response.Success(c, http.StatusOK, result, nil)
}

func (h *Handler) RefreshToken(c *gin.Context) {
	isWeb := h.isWeb(c)

	var refreshToken string
	if isWeb {
		var err error
		refreshToken, err = c.Cookie(RefreshTokenCookie)
		if err != nil || refreshToken == "" {
			h.writeServiceError(c, autherrors.ErrMissingRefreshToken)
			return
		}
	} else {
		var req RefreshRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			h.writeServiceError(c, apperror.MapValidationError(err))
			return
		}
		refreshToken = req.RefreshToken
	}

	result, err := h.service.RefreshToken(c.Request.Context(), refreshToken)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	if isWeb {
		h.setTokenCookies(c, result.AccessToken, result.RefreshToken)
	}
	response.Success(c, http.StatusOK, result, nil)
}

func (h *Handler) Logout(c *gin.Context) {
	h.setCookie(c, middleware.AccessTokenCookie, "", -1)
	h.setCookie(c, RefreshTokenCookie, "", -1)
	response.Success(c, http.StatusOK, "Logout success.", nil)
}

func (h *Handler) Me(c *gin.Context) {
	principal := middleware.CurrentPrincipal(c)

	resp, err := h.service.GetMe(c.Request.Context(), principal.UserID().String())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.CreateUser(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) DeleteUser(c *gin.Context) {
	principal := middleware.CurrentPrincipal(c)

	if err := h.service.DeleteUser(c.Request.Context(), principal.UserID(), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) isWeb(c *gin.Context) bool {
	clientType := platform.ResolveClientType(c.GetHeader("X-Client-Type"), c.GetHeader("User-Agent"))
	return platform.IsWebClient(clientType)
}

func (h *Handler) setTokenCookies(c *gin.Context, access, refresh string) {
	h.setCookie(c, middleware.AccessTokenCookie, access, h.accessMaxAge)
	h.setCookie(c, RefreshTokenCookie, refresh, h.refreshMaxAge)
}

func (h *Handler) setCookie(c *gin.Context, name, value string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// safeNext only accepts same-site absolute paths.
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.Contains(next, "\\") {
		return ""
	}
	return next
}
