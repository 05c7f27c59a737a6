package auth

import (
	"context"
	"errors"
	"strings"

	"go-inova/internal/administrator"
	autherrors "go-inova/internal/auth/errors"
	"go-inova/internal/bootstrap"
	"go-inova/internal/config"
	"go-inova/internal/shared/contextutil"
	"go-inova/internal/shared/token"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	CatalogueRedirect = "/api/v1/startups"
	startupRedirect   = "/api/v1/startups/"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, email, password string) (LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (LoginResult, error)
	GetMe(ctx context.Context, userID string) (UserResponse, error)
	CreateUser(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	DeleteUser(ctx context.Context, actorID uuid.UUID, id string) error
}

type service struct {
	repo   Repository
	admins administrator.Repository
	jwt    config.JWTConfig
	audit  bootstrap.AuditLogger
	logger *zap.Logger
}

func NewService(
	repo Repository,
	admins administrator.Repository,
	jwtCfg config.JWTConfig,
	audit bootstrap.AuditLogger,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	if audit == nil {
		audit = bootstrap.NewStdoutAuditLogger()
	}
	return &service{repo: repo, admins: admins, jwt: jwtCfg, audit: audit, logger: l}
}

func (s *service) Login(ctx context.Context, email, password string) (LoginResult, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	user, err := s.repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LoginResult{}, autherrors.ErrInvalidCredentials
		}
		return LoginResult{}, err
	}
	if !user.IsActive {
		return LoginResult{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return LoginResult{}, autherrors.ErrInvalidCredentials
	}

	startupID, err := s.resolveBinding(ctx, user)
	if err != nil {
		if errors.Is(err, autherrors.ErrNoStartupAccess) {
			log.Warn("login rejected, user has no administrator binding", zap.String("user_id", user.ID.String()))
		}
		return LoginResult{}, err
	}

	log.Info("login succeeded",
		zap.String("user_id", user.ID.String()),
		zap.Bool("is_superuser", user.IsSuperuser),
		zap.String("startup_id", startupID),
	)
	return s.issue(user, startupID)
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (LoginResult, error) {
	claims, err := token.Parse(s.jwt.Secret, refreshToken)
	if err != nil || claims.Kind != token.KindRefresh {
		return LoginResult{}, autherrors.ErrInvalidRefreshToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return LoginResult{}, autherrors.ErrInvalidRefreshToken
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil || !user.IsActive {
		return LoginResult{}, autherrors.ErrInvalidRefreshToken
	}

	// the binding may have changed since the refresh token was issued
	startupID, err := s.resolveBinding(ctx, user)
	if err != nil {
		return LoginResult{}, err
	}
	return s.issue(user, startupID)
}

func (s *service) GetMe(ctx context.Context, userID string) (UserResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return UserResponse{}, autherrors.ErrInvalidUserID
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}

	startupID := ""
	admin, err := s.admins.FindByUserID(ctx, user.ID)
	if err == nil {
		startupID = admin.StartupID.String()
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return UserResponse{}, err
	}
	return mapToResponse(*user, startupID), nil
}

func (s *service) CreateUser(ctx context.Context, req CreateUserRequest) (UserResponse, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return UserResponse{}, err
	}

	user := &User{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(req.Name),
		Email:       normalizeEmail(req.Email),
		Password:    string(hashed),
		IsSuperuser: req.IsSuperuser,
		IsActive:    true,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}

	contextutil.GetLogger(ctx, s.logger).Info("user created",
		zap.String("user_id", user.ID.String()),
		zap.Bool("is_superuser", user.IsSuperuser),
	)
	return mapToResponse(*user, ""), nil
}

func (s *service) DeleteUser(ctx context.Context, actorID uuid.UUID, id string) error {
	userID, err := uuid.Parse(id)
	if err != nil {
		return autherrors.ErrInvalidUserID
	}
	if userID == actorID {
		return autherrors.ErrCannotDeleteSelf
	}

	if err := s.repo.Delete(ctx, userID); err != nil {
		return mapRepositoryError(err)
	}

	s.audit.Log(ctx, bootstrap.AuditLog{
		Action:  "USER_DELETED",
		Message: "User deleted and references cleared",
		Meta: map[string]any{
			"user_id":    userID.String(),
			"actor_id":   actorID.String(),
			"request_id": contextutil.GetRequestID(ctx),
		},
	})
	return nil
}

// resolveBinding returns the startup administered by user, or "" for an
// unbound superuser.
func (s *service) resolveBinding(ctx context.Context, user *User) (string, error) {
	admin, err := s.admins.FindByUserID(ctx, user.ID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return "", err
		}
		if !user.IsSuperuser {
			return "", autherrors.ErrNoStartupAccess
		}
		return "", nil
	}
	return admin.StartupID.String(), nil
}

func (s *service) issue(user *User, startupID string) (LoginResult, error) {
	claims := token.Claims{
		UserID:      user.ID.String(),
		IsSuperuser: user.IsSuperuser,
		StartupID:   startupID,
	}

	claims.Kind = token.KindAccess
	access, err := token.Sign(s.jwt.Secret, claims, s.jwt.AccessExpiry)
	if err != nil {
		return LoginResult{}, autherrors.ErrTokenGenerationFailed
	}

	claims.Kind = token.KindRefresh
	refresh, err := token.Sign(s.jwt.Secret, claims, s.jwt.RefreshExpiry)
	if err != nil {
		return LoginResult{}, autherrors.ErrTokenGenerationFailed
	}

	redirect := CatalogueRedirect
	if startupID != "" {
		redirect = startupRedirect + startupID
	}

	return LoginResult{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         mapToResponse(*user, startupID),
		RedirectTo:   redirect,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
