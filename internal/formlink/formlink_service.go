package formlink

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"

	formlinkerrors "go-inova/internal/formlink/errors"
	"go-inova/internal/policy"
	"go-inova/internal/shared/contextutil"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const DefaultHistoryLimit = 20

//go:generate mockgen -source=formlink_service.go -destination=mock/formlink_service_mock.go -package=mock
type Service interface {
	Current(ctx context.Context) (FormLinkResponse, error)
	History(ctx context.Context) ([]FormLinkResponse, error)
	Update(ctx context.Context, principal policy.Principal, req UpdateFormLinkRequest) (FormLinkResponse, error)
}

type service struct {
	repo   Repository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("formlink.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("formlink.service")
	}
	return &service{repo: repo, now: time.Now, logger: l}
}

func (s *service) Current(ctx context.Context) (FormLinkResponse, error) {
	f, err := s.repo.Current(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return FormLinkResponse{}, formlinkerrors.ErrFormLinkNotFound
		}
		return FormLinkResponse{}, err
	}
	return mapToResponse(*f), nil
}

func (s *service) History(ctx context.Context) ([]FormLinkResponse, error) {
	items, err := s.repo.History(ctx, DefaultHistoryLimit)
	if err != nil {
		return nil, err
	}
	return mapToResponses(items), nil
}

// Update publishes a new revision stamped with the caller. Administrators of
// any startup and superusers may publish.
func (s *service) Update(ctx context.Context, principal policy.Principal, req UpdateFormLinkRequest) (FormLinkResponse, error) {
	if err := authorize(principal); err != nil {
		return FormLinkResponse{}, err
	}

	raw := strings.TrimSpace(req.URL)
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return FormLinkResponse{}, formlinkerrors.ErrInvalidURL
	}

	by := principal.UserID()
	f := &FormLink{
		URL:       raw,
		UpdatedAt: s.now().UTC(),
		UpdatedBy: &by,
	}
	if err := s.repo.Create(ctx, f); err != nil {
		return FormLinkResponse{}, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("form link updated",
		zap.String("form_link_id", f.ID.String()),
		zap.String("updated_by", by.String()),
	)
	return mapToResponse(*f), nil
}

func authorize(p policy.Principal) error {
	if p != nil && p.IsAuthenticated() {
		if _, bound := p.AdministratorStartupID(); bound {
			return nil
		}
	}
	return policy.RequireSuperuser(p)
}
