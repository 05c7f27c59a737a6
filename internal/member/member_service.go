package member

import (
	"context"
	"strings"

	membererrors "go-inova/internal/member/errors"
	"go-inova/internal/shared/contextutil"
	"go-inova/internal/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type StartupChecker interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

//go:generate mockgen -source=member_service.go -destination=mock/member_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, startupID string) ([]MemberResponse, error)
	Create(ctx context.Context, startupID string, req CreateMemberRequest) (MemberResponse, error)
	Update(ctx context.Context, startupID, memberID string, req UpdateMemberRequest) (MemberResponse, error)
	Delete(ctx context.Context, startupID, memberID string) error
	UploadPhoto(ctx context.Context, startupID, memberID string, data []byte) (MemberResponse, error)
}

type service struct {
	repo     Repository
	startups StartupChecker
	uploader storage.ImageUploader
	logger   *zap.Logger
}

func NewService(repo Repository, startups StartupChecker, uploader storage.ImageUploader, logger ...*zap.Logger) Service {
	l := zap.L().Named("member.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("member.service")
	}
	return &service{repo: repo, startups: startups, uploader: uploader, logger: l}
}

func (s *service) List(ctx context.Context, startupID string) ([]MemberResponse, error) {
	sid, err := uuid.Parse(startupID)
	if err != nil {
		return nil, membererrors.ErrInvalidStartupID
	}

	members, err := s.repo.ListByStartup(ctx, sid)
	if err != nil {
		return nil, err
	}
	return MapToResponses(members), nil
}

func (s *service) Create(ctx context.Context, startupID string, req CreateMemberRequest) (MemberResponse, error) {
	sid, err := uuid.Parse(startupID)
	if err != nil {
		return MemberResponse{}, membererrors.ErrInvalidStartupID
	}

	ok, err := s.startups.Exists(ctx, sid)
	if err != nil {
		return MemberResponse{}, err
	}
	if !ok {
		return MemberResponse{}, membererrors.ErrStartupNotFound
	}

	m := &Member{
		StartupID: sid,
		Name:      strings.TrimSpace(req.Name),
		Role:      strings.TrimSpace(req.Role),
		PhotoURL:  strings.TrimSpace(req.PhotoURL),
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return MemberResponse{}, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("member created",
		zap.String("startup_id", startupID),
		zap.String("member_id", m.ID.String()),
	)
	return MapToResponse(*m), nil
}

func (s *service) Update(ctx context.Context, startupID, memberID string, req UpdateMemberRequest) (MemberResponse, error) {
	m, err := s.find(ctx, startupID, memberID)
	if err != nil {
		return MemberResponse{}, err
	}

	if req.Name != nil {
		m.Name = strings.TrimSpace(*req.Name)
	}
	if req.Role != nil {
		m.Role = strings.TrimSpace(*req.Role)
	}
	if req.PhotoURL != nil {
		m.PhotoURL = strings.TrimSpace(*req.PhotoURL)
	}

	if err := s.repo.Update(ctx, m); err != nil {
		return MemberResponse{}, mapRepositoryError(err)
	}
	return MapToResponse(*m), nil
}

func (s *service) Delete(ctx context.Context, startupID, memberID string) error {
	m, err := s.find(ctx, startupID, memberID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, m.StartupID, m.ID); err != nil {
		return mapRepositoryError(err)
	}
	s.removePhoto(ctx, m.PhotoURL)
	return nil
}

func (s *service) UploadPhoto(ctx context.Context, startupID, memberID string, data []byte) (MemberResponse, error) {
	m, err := s.find(ctx, startupID, memberID)
	if err != nil {
		return MemberResponse{}, err
	}

	asset, err := s.uploader.UploadImage(ctx, storage.KindMember, m.StartupID.String(), data)
	if err != nil {
		return MemberResponse{}, err
	}

	previous := m.PhotoURL
	m.PhotoURL = asset.URL
	if err := s.repo.Update(ctx, m); err != nil {
		s.removePhoto(ctx, asset.URL)
		return MemberResponse{}, mapRepositoryError(err)
	}
	s.removePhoto(ctx, previous)
	return MapToResponse(*m), nil
}

func (s *service) find(ctx context.Context, startupID, memberID string) (*Member, error) {
	sid, err := uuid.Parse(startupID)
	if err != nil {
		return nil, membererrors.ErrInvalidStartupID
	}
	mid, err := uuid.Parse(memberID)
	if err != nil {
		return nil, membererrors.ErrInvalidMemberID
	}

	m, err := s.repo.FindByID(ctx, sid, mid)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return m, nil
}

func (s *service) removePhoto(ctx context.Context, url string) {
	if url == "" || s.uploader == nil {
		return
	}
	if err := s.uploader.RemoveByURL(ctx, url); err != nil {
		contextutil.GetLogger(ctx, s.logger).Warn("remove member photo failed",
			zap.String("url", url),
			zap.Error(err),
		)
	}
}
