package startup

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-inova/internal/administrator"
	"go-inova/internal/member"
	"go-inova/internal/shared/contextutil"
	startuperrors "go-inova/internal/startup/errors"
	"go-inova/internal/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	DefaultPageSize = 12
	MaxPageSize     = 100
)

//go:generate mockgen -source=startup_service.go -destination=mock/startup_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, query ListStartupsQuery) (ListResult, error)
	Stats(ctx context.Context) (Stats, error)
	GetProfile(ctx context.Context, id string) (ProfileResponse, error)
	GetProfileByName(ctx context.Context, name string) (ProfileResponse, error)
	Create(ctx context.Context, actorID uuid.UUID, req CreateStartupRequest) (StartupResponse, error)
	Update(ctx context.Context, id string, req UpdateStartupRequest) (StartupResponse, error)
	UpdateContact(ctx context.Context, id string, req ContactRequest) (ContactResponse, error)
	UpdateSocialLinks(ctx context.Context, id string, req SocialLinksRequest) (SocialLinksResponse, error)
	UploadLogo(ctx context.Context, id string, data []byte) (StartupResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo     Repository
	members  member.Repository
	admins   administrator.Repository
	uploader storage.ImageUploader
	logger   *zap.Logger
}

func NewService(
	repo Repository,
	members member.Repository,
	admins administrator.Repository,
	uploader storage.ImageUploader,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("startup.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("startup.service")
	}
	return &service{repo: repo, members: members, admins: admins, uploader: uploader, logger: l}
}

func (s *service) List(ctx context.Context, query ListStartupsQuery) (ListResult, error) {
	filter := ListFilter{
		Sector:    strings.TrimSpace(query.Sector),
		Incubator: strings.TrimSpace(query.Incubator),
		Query:     strings.TrimSpace(query.Q),
		Page:      query.Page,
		PageSize:  query.PageSize,
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = DefaultPageSize
	}
	if filter.PageSize > MaxPageSize {
		filter.PageSize = MaxPageSize
	}

	startups, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return ListResult{}, err
	}

	items := make([]StartupResponse, 0, len(startups))
	for _, st := range startups {
		items = append(items, mapToResponse(st))
	}
	return ListResult{Items: items, Total: total, Page: filter.Page, Size: filter.PageSize}, nil
}

func (s *service) Stats(ctx context.Context) (Stats, error) {
	return s.repo.Stats(ctx)
}

func (s *service) GetProfile(ctx context.Context, id string) (ProfileResponse, error) {
	st, err := s.find(ctx, id)
	if err != nil {
		return ProfileResponse{}, err
	}
	return s.profile(ctx, st)
}

func (s *service) GetProfileByName(ctx context.Context, name string) (ProfileResponse, error) {
	st, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return ProfileResponse{}, mapRepositoryError(err)
	}
	return s.profile(ctx, st)
}

func (s *service) Create(ctx context.Context, actorID uuid.UUID, req CreateStartupRequest) (StartupResponse, error) {
	if req.FoundedYear > time.Now().Year() {
		return StartupResponse{}, startuperrors.ErrInvalidFoundedYear
	}

	st := &Startup{
		Name:                strings.TrimSpace(req.Name),
		About:               strings.TrimSpace(req.About),
		HowUniversityHelped: strings.TrimSpace(req.HowUniversityHelped),
		FoundedYear:         req.FoundedYear,
		Sector:              strings.TrimSpace(req.Sector),
		TeamSize:            strings.TrimSpace(req.TeamSize),
		Incubator:           strings.TrimSpace(req.Incubator),
	}
	applyAddress(st, req.Address)
	if actorID != uuid.Nil {
		st.CreatedBy = &actorID
	}

	if err := s.repo.Create(ctx, st); err != nil {
		return StartupResponse{}, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("startup created",
		zap.String("startup_id", st.ID.String()),
		zap.String("created_by", actorID.String()),
	)
	return mapToResponse(*st), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateStartupRequest) (StartupResponse, error) {
	st, err := s.find(ctx, id)
	if err != nil {
		return StartupResponse{}, err
	}

	if req.Name != nil {
		st.Name = strings.TrimSpace(*req.Name)
	}
	if req.About != nil {
		st.About = strings.TrimSpace(*req.About)
	}
	if req.HowUniversityHelped != nil {
		st.HowUniversityHelped = strings.TrimSpace(*req.HowUniversityHelped)
	}
	if req.FoundedYear != nil {
		if *req.FoundedYear > time.Now().Year() {
			return StartupResponse{}, startuperrors.ErrInvalidFoundedYear
		}
		st.FoundedYear = *req.FoundedYear
	}
	if req.Sector != nil {
		st.Sector = strings.TrimSpace(*req.Sector)
	}
	if req.TeamSize != nil {
		st.TeamSize = strings.TrimSpace(*req.TeamSize)
	}
	if req.Incubator != nil {
		st.Incubator = strings.TrimSpace(*req.Incubator)
	}
	if req.Address != nil {
		applyAddress(st, *req.Address)
	}

	if err := s.repo.Update(ctx, st); err != nil {
		return StartupResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*st), nil
}

func (s *service) UpdateContact(ctx context.Context, id string, req ContactRequest) (ContactResponse, error) {
	st, err := s.find(ctx, id)
	if err != nil {
		return ContactResponse{}, err
	}

	c := &ContactInfo{
		StartupID: st.ID,
		Email:     strings.TrimSpace(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
		Website:   strings.TrimSpace(req.Website),
	}
	if err := s.repo.UpsertContact(ctx, c); err != nil {
		return ContactResponse{}, err
	}
	return *mapContact(*c), nil
}

func (s *service) UpdateSocialLinks(ctx context.Context, id string, req SocialLinksRequest) (SocialLinksResponse, error) {
	st, err := s.find(ctx, id)
	if err != nil {
		return SocialLinksResponse{}, err
	}

	l := &SocialLinks{
		StartupID: st.ID,
		LinkedIn:  strings.TrimSpace(req.LinkedIn),
		Facebook:  strings.TrimSpace(req.Facebook),
		Instagram: strings.TrimSpace(req.Instagram),
		Twitter:   strings.TrimSpace(req.Twitter),
	}
	if err := s.repo.UpsertSocialLinks(ctx, l); err != nil {
		return SocialLinksResponse{}, err
	}
	return *mapSocialLinks(*l), nil
}

func (s *service) UploadLogo(ctx context.Context, id string, data []byte) (StartupResponse, error) {
	st, err := s.find(ctx, id)
	if err != nil {
		return StartupResponse{}, err
	}

	asset, err := s.uploader.UploadImage(ctx, storage.KindLogo, st.ID.String(), data)
	if err != nil {
		return StartupResponse{}, err
	}

	previous := st.LogoURL
	st.LogoURL = asset.URL
	if err := s.repo.Update(ctx, st); err != nil {
		s.removeAsset(ctx, asset.URL)
		return StartupResponse{}, mapRepositoryError(err)
	}
	s.removeAsset(ctx, previous)
	return mapToResponse(*st), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	st, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	members, err := s.members.ListByStartup(ctx, st.ID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, st.ID); err != nil {
		return mapRepositoryError(err)
	}

	contextutil.GetLogger(ctx, s.logger).Info("startup deleted", zap.String("startup_id", st.ID.String()))
	s.removeAsset(ctx, st.LogoURL)
	for _, m := range members {
		s.removeAsset(ctx, m.PhotoURL)
	}
	return nil
}

func (s *service) find(ctx context.Context, id string) (*Startup, error) {
	sid, err := uuid.Parse(id)
	if err != nil {
		return nil, startuperrors.ErrInvalidStartupID
	}
	st, err := s.repo.FindByID(ctx, sid)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return st, nil
}

func (s *service) profile(ctx context.Context, st *Startup) (ProfileResponse, error) {
	members, err := s.members.ListByStartup(ctx, st.ID)
	if err != nil {
		return ProfileResponse{}, err
	}

	out := ProfileResponse{
		Startup: mapToResponse(*st),
		Members: member.MapToResponses(members),
	}

	contact, err := s.repo.FindContact(ctx, st.ID)
	switch {
	case err == nil:
		out.Contact = mapContact(*contact)
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return ProfileResponse{}, err
	}

	links, err := s.repo.FindSocialLinks(ctx, st.ID)
	switch {
	case err == nil:
		out.SocialLinks = mapSocialLinks(*links)
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return ProfileResponse{}, err
	}

	admin, err := s.admins.FindByStartupID(ctx, st.ID)
	switch {
	case err == nil:
		resp := administrator.MapToResponse(*admin)
		out.Administrator = &resp
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return ProfileResponse{}, err
	}

	return out, nil
}

func (s *service) removeAsset(ctx context.Context, url string) {
	if url == "" || s.uploader == nil {
		return
	}
	if err := s.uploader.RemoveByURL(ctx, url); err != nil {
		contextutil.GetLogger(ctx, s.logger).Warn("remove startup asset failed",
			zap.String("url", url),
			zap.Error(err),
		)
	}
}

func applyAddress(st *Startup, a AddressRequest) {
	st.Street = strings.TrimSpace(a.Street)
	st.Number = strings.TrimSpace(a.Number)
	st.District = strings.TrimSpace(a.District)
	st.City = strings.TrimSpace(a.City)
	st.State = strings.TrimSpace(a.State)
	st.PostalCode = strings.TrimSpace(a.PostalCode)
}
