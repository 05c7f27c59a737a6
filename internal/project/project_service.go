package project

import (
	"context"
	"errors"
	"strings"

	"go-inova/internal/administrator"
	"go-inova/internal/member"
	projecterrors "go-inova/internal/project/errors"
	"go-inova/internal/shared/contextutil"
	"go-inova/internal/startup"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// StartupFinder is the part of startup.Repository projects need.
type StartupFinder interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	FindByName(ctx context.Context, name string) (*startup.Startup, error)
}

//go:generate mockgen -source=project_service.go -destination=mock/project_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, startupID string) ([]ProjectResponse, error)
	Get(ctx context.Context, startupID, projectID string) (ProjectResponse, error)
	GetByNames(ctx context.Context, startupName, projectName string) (ProjectResponse, error)
	Create(ctx context.Context, startupID string, req CreateProjectRequest) (ProjectResponse, error)
	Update(ctx context.Context, startupID, projectID string, req UpdateProjectRequest) (ProjectResponse, error)
	Delete(ctx context.Context, startupID, projectID string) error
	SetMembers(ctx context.Context, startupID, projectID string, req SetMembersRequest) (ProjectResponse, error)
}

type service struct {
	db       *gorm.DB
	repo     Repository
	admins   administrator.Repository
	members  member.Repository
	startups StartupFinder
	logger   *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	admins administrator.Repository,
	members member.Repository,
	startups StartupFinder,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("project.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("project.service")
	}
	return &service{db: db, repo: repo, admins: admins, members: members, startups: startups, logger: l}
}

func (s *service) List(ctx context.Context, startupID string) ([]ProjectResponse, error) {
	sid, err := uuid.Parse(startupID)
	if err != nil {
		return nil, projecterrors.ErrInvalidStartupID
	}

	projects, err := s.repo.ListByStartup(ctx, sid)
	if err != nil {
		return nil, err
	}

	out := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, mapToResponse(p, nil))
	}
	return out, nil
}

func (s *service) Get(ctx context.Context, startupID, projectID string) (ProjectResponse, error) {
	p, err := s.find(ctx, startupID, projectID)
	if err != nil {
		return ProjectResponse{}, err
	}
	return s.withMembers(ctx, p)
}

func (s *service) GetByNames(ctx context.Context, startupName, projectName string) (ProjectResponse, error) {
	st, err := s.startups.FindByName(ctx, startupName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ProjectResponse{}, projecterrors.ErrStartupNotFound
		}
		return ProjectResponse{}, err
	}

	p, err := s.repo.FindByName(ctx, st.ID, strings.TrimSpace(projectName))
	if err != nil {
		return ProjectResponse{}, mapRepositoryError(err)
	}
	return s.withMembers(ctx, p)
}

func (s *service) Create(ctx context.Context, startupID string, req CreateProjectRequest) (ProjectResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	sid, err := uuid.Parse(startupID)
	if err != nil {
		return ProjectResponse{}, projecterrors.ErrInvalidStartupID
	}

	ok, err := s.startups.Exists(ctx, sid)
	if err != nil {
		return ProjectResponse{}, err
	}
	if !ok {
		return ProjectResponse{}, projecterrors.ErrStartupNotFound
	}

	photos, err := normalizePhotos(req.Photos)
	if err != nil {
		return ProjectResponse{}, err
	}

	memberIDs, members, err := s.resolveMembers(ctx, sid, req.MemberIDs)
	if err != nil {
		return ProjectResponse{}, err
	}

	if req.CoordinatorID != nil {
		log.Debug("ignoring client supplied coordinator", zap.String("coordinator_id", *req.CoordinatorID))
	}

	p := &Project{
		StartupID:   sid,
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		VideoURL:    strings.TrimSpace(req.VideoURL),
		Photos:      photos,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		coordinator, err := deriveCoordinator(ctx, s.admins.WithTx(tx), sid)
		if err != nil {
			return err
		}
		p.CoordinatorID = &coordinator

		repo := s.repo.WithTx(tx)
		if err := repo.Create(ctx, p); err != nil {
			return err
		}
		if len(memberIDs) > 0 {
			return repo.ReplaceMembers(ctx, p.ID, memberIDs)
		}
		return nil
	})
	if err != nil {
		log.Warn("create project failed", zap.String("startup_id", startupID), zap.Error(err))
		return ProjectResponse{}, err
	}

	log.Info("project created",
		zap.String("startup_id", startupID),
		zap.String("project_id", p.ID.String()),
		zap.Stringer("coordinator_id", p.CoordinatorID),
	)
	return mapToResponse(*p, members), nil
}

func (s *service) Update(ctx context.Context, startupID, projectID string, req UpdateProjectRequest) (ProjectResponse, error) {
	p, err := s.find(ctx, startupID, projectID)
	if err != nil {
		return ProjectResponse{}, err
	}

	if req.Name != nil {
		p.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		p.Description = strings.TrimSpace(*req.Description)
	}
	if req.VideoURL != nil {
		p.VideoURL = strings.TrimSpace(*req.VideoURL)
	}
	if req.Photos != nil {
		p.Photos = *req.Photos
	}

	photos, err := normalizePhotos(p.Photos)
	if err != nil {
		return ProjectResponse{}, err
	}
	p.Photos = photos

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		coordinator, err := deriveCoordinator(ctx, s.admins.WithTx(tx), p.StartupID)
		if err != nil {
			return err
		}
		p.CoordinatorID = &coordinator
		return s.repo.WithTx(tx).Update(ctx, p)
	})
	if err != nil {
		return ProjectResponse{}, mapRepositoryError(err)
	}
	return s.withMembers(ctx, p)
}

func (s *service) Delete(ctx context.Context, startupID, projectID string) error {
	p, err := s.find(ctx, startupID, projectID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, p.StartupID, p.ID); err != nil {
		return mapRepositoryError(err)
	}

	contextutil.GetLogger(ctx, s.logger).Info("project deleted", zap.String("project_id", projectID))
	return nil
}

func (s *service) SetMembers(ctx context.Context, startupID, projectID string, req SetMembersRequest) (ProjectResponse, error) {
	p, err := s.find(ctx, startupID, projectID)
	if err != nil {
		return ProjectResponse{}, err
	}

	memberIDs, members, err := s.resolveMembers(ctx, p.StartupID, req.MemberIDs)
	if err != nil {
		return ProjectResponse{}, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.repo.WithTx(tx).ReplaceMembers(ctx, p.ID, memberIDs)
	})
	if err != nil {
		return ProjectResponse{}, err
	}
	return mapToResponse(*p, members), nil
}

func (s *service) find(ctx context.Context, startupID, projectID string) (*Project, error) {
	sid, err := uuid.Parse(startupID)
	if err != nil {
		return nil, projecterrors.ErrInvalidStartupID
	}
	pid, err := uuid.Parse(projectID)
	if err != nil {
		return nil, projecterrors.ErrInvalidProjectID
	}

	p, err := s.repo.FindByID(ctx, sid, pid)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return p, nil
}

func (s *service) withMembers(ctx context.Context, p *Project) (ProjectResponse, error) {
	ids, err := s.repo.ListMemberIDs(ctx, p.ID)
	if err != nil {
		return ProjectResponse{}, err
	}
	members, err := s.members.FindByIDs(ctx, p.StartupID, ids)
	if err != nil {
		return ProjectResponse{}, err
	}
	return mapToResponse(*p, members), nil
}

// resolveMembers parses and deduplicates raw ids and checks that each one is
// a member of startupID.
func (s *service) resolveMembers(ctx context.Context, startupID uuid.UUID, raw []string) ([]uuid.UUID, []member.Member, error) {
	if len(raw) == 0 {
		return nil, nil, nil
	}

	seen := make(map[uuid.UUID]bool, len(raw))
	ids := make([]uuid.UUID, 0, len(raw))
	for _, r := range raw {
		id, err := uuid.Parse(r)
		if err != nil {
			return nil, nil, projecterrors.ErrInvalidMemberID
		}
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	members, err := s.members.FindByIDs(ctx, startupID, ids)
	if err != nil {
		return nil, nil, err
	}
	if len(members) != len(ids) {
		return nil, nil, projecterrors.ErrMemberNotInStartup
	}
	return ids, members, nil
}
