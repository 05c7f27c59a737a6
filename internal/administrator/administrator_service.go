package administrator

import (
	"context"
	"errors"
	"strings"

	administratorerrors "go-inova/internal/administrator/errors"
	"go-inova/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReferenceChecker reports whether a row with the given id exists.
type ReferenceChecker interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

//go:generate mockgen -source=administrator_service.go -destination=mock/administrator_service_mock.go -package=mock
type Service interface {
	Bind(ctx context.Context, startupID string, req BindAdministratorRequest) (AdministratorResponse, error)
	GetByStartup(ctx context.Context, startupID string) (AdministratorResponse, error)
	Update(ctx context.Context, startupID string, req UpdateAdministratorRequest) (AdministratorResponse, error)
}

type service struct {
	repo     Repository
	startups ReferenceChecker
	users    ReferenceChecker
	logger   *zap.Logger
}

func NewService(repo Repository, startups, users ReferenceChecker, logger ...*zap.Logger) Service {
	l := zap.L().Named("administrator.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("administrator.service")
	}
	return &service{repo: repo, startups: startups, users: users, logger: l}
}

func (s *service) Bind(ctx context.Context, startupID string, req BindAdministratorRequest) (AdministratorResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	sid, err := uuid.Parse(startupID)
	if err != nil {
		return AdministratorResponse{}, administratorerrors.ErrInvalidStartupID
	}
	uid, err := uuid.Parse(req.UserID)
	if err != nil {
		return AdministratorResponse{}, administratorerrors.ErrInvalidUserID
	}

	if err := s.ensureExists(ctx, s.startups, sid); err != nil {
		return AdministratorResponse{}, err
	}
	if err := s.ensureExists(ctx, s.users, uid); err != nil {
		return AdministratorResponse{}, err
	}

	if _, err := s.repo.FindByStartupID(ctx, sid); err == nil {
		return AdministratorResponse{}, administratorerrors.ErrStartupAlreadyHasAdministrator
	} else if !errors.Is(mapRepositoryError(err), administratorerrors.ErrAdministratorNotFound) {
		return AdministratorResponse{}, mapRepositoryError(err)
	}

	admin := &Administrator{
		UserID:     uid,
		StartupID:  sid,
		Name:       strings.TrimSpace(req.Name),
		Role:       strings.TrimSpace(req.Role),
		Education:  strings.TrimSpace(req.Education),
		Email:      strings.TrimSpace(req.Email),
		SocialLink: strings.TrimSpace(req.SocialLink),
	}
	if err := s.repo.Create(ctx, admin); err != nil {
		log.Warn("bind administrator failed",
			zap.String("startup_id", startupID),
			zap.String("user_id", req.UserID),
			zap.Error(err),
		)
		return AdministratorResponse{}, mapRepositoryError(err)
	}

	log.Info("administrator bound",
		zap.String("startup_id", startupID),
		zap.String("user_id", req.UserID),
	)
	return MapToResponse(*admin), nil
}

func (s *service) GetByStartup(ctx context.Context, startupID string) (AdministratorResponse, error) {
	sid, err := uuid.Parse(startupID)
	if err != nil {
		return AdministratorResponse{}, administratorerrors.ErrInvalidStartupID
	}

	admin, err := s.repo.FindByStartupID(ctx, sid)
	if err != nil {
		return AdministratorResponse{}, mapRepositoryError(err)
	}
	return MapToResponse(*admin), nil
}

func (s *service) Update(ctx context.Context, startupID string, req UpdateAdministratorRequest) (AdministratorResponse, error) {
	sid, err := uuid.Parse(startupID)
	if err != nil {
		return AdministratorResponse{}, administratorerrors.ErrInvalidStartupID
	}

	admin, err := s.repo.FindByStartupID(ctx, sid)
	if err != nil {
		return AdministratorResponse{}, mapRepositoryError(err)
	}

	if req.Name != nil {
		admin.Name = strings.TrimSpace(*req.Name)
	}
	if req.Role != nil {
		admin.Role = strings.TrimSpace(*req.Role)
	}
	if req.Education != nil {
		admin.Education = strings.TrimSpace(*req.Education)
	}
	if req.Email != nil {
		admin.Email = strings.TrimSpace(*req.Email)
	}
	if req.SocialLink != nil {
		admin.SocialLink = strings.TrimSpace(*req.SocialLink)
	}

	if err := s.repo.Update(ctx, admin); err != nil {
		return AdministratorResponse{}, mapRepositoryError(err)
	}
	return MapToResponse(*admin), nil
}

func (s *service) ensureExists(ctx context.Context, checker ReferenceChecker, id uuid.UUID) error {
	if checker == nil {
		return nil
	}
	ok, err := checker.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return administratorerrors.ErrReferenceNotFound
	}
	return nil
}
