package news

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"go-inova/internal/config"
	"go-inova/internal/events"
	"go-inova/internal/messaging/kafka"
	newserrors "go-inova/internal/news/errors"
	"go-inova/internal/policy"
	"go-inova/internal/shared/contextutil"
	"go-inova/internal/storage"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const HomeCacheKey = "news:home"

//go:generate mockgen -source=news_service.go -destination=mock/news_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, query ListNewsQuery) (ListResult, error)
	GetHome(ctx context.Context) ([]NewsResponse, error)
	Get(ctx context.Context, id string) (NewsResponse, error)
	Create(ctx context.Context, principal policy.Principal, req CreateNewsRequest) (NewsResponse, error)
	Update(ctx context.Context, principal policy.Principal, id string, req UpdateNewsRequest) (NewsResponse, error)
	Delete(ctx context.Context, principal policy.Principal, id string) error
	UploadCover(ctx context.Context, principal policy.Principal, id string, data []byte) (NewsResponse, error)
	InvalidateHome(ctx context.Context) error
}

type service struct {
	db        *gorm.DB
	repo      Repository
	retention *RetentionEnforcer
	outbox    kafka.OutboxRepository
	rdb       *redis.Client
	uploader  storage.ImageUploader
	cfg       config.NewsConfig
	sf        *singleflight.Group
	logger    *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	retention *RetentionEnforcer,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	uploader storage.ImageUploader,
	cfg config.NewsConfig,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("news.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("news.service")
	}
	if cfg.PageSize < 1 {
		cfg.PageSize = 9
	}
	if cfg.HomeLimit < 1 {
		cfg.HomeLimit = 9
	}
	if cfg.HomeCacheTTL <= 0 {
		cfg.HomeCacheTTL = 10 * time.Minute
	}
	return &service{
		db:        db,
		repo:      repo,
		retention: retention,
		outbox:    outboxRepo,
		rdb:       rdb,
		uploader:  uploader,
		cfg:       cfg,
		sf:        &singleflight.Group{},
		logger:    l,
	}
}

func (s *service) List(ctx context.Context, query ListNewsQuery) (ListResult, error) {
	category := strings.ToUpper(strings.TrimSpace(query.Category))
	if category != "" && !ValidCategory(category) {
		return ListResult{}, newserrors.ErrInvalidCategory
	}
	page := query.Page
	if page < 1 {
		page = 1
	}

	items, total, err := s.repo.List(ctx, category, page, s.cfg.PageSize)
	if err != nil {
		s.logger.Error("list news failed", zap.String("category", category), zap.Error(err))
		return ListResult{}, err
	}

	return ListResult{
		Items: mapToResponses(items),
		Total: total,
		Page:  page,
		Size:  s.cfg.PageSize,
	}, nil
}

func (s *service) GetHome(ctx context.Context) ([]NewsResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, HomeCacheKey).Result(); err == nil {
			var resp []NewsResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(HomeCacheKey, func() (interface{}, error) {
		items, err := s.repo.Latest(ctx, s.cfg.HomeLimit)
		if err != nil {
			return nil, err
		}

		resp := mapToResponses(items)
		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, HomeCacheKey, jsonData, s.cfg.HomeCacheTTL)
			}
		}
		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]NewsResponse), nil
}

func (s *service) Get(ctx context.Context, id string) (NewsResponse, error) {
	n, err := s.find(ctx, id)
	if err != nil {
		return NewsResponse{}, err
	}
	return mapToResponse(*n), nil
}

func (s *service) Create(ctx context.Context, principal policy.Principal, req CreateNewsRequest) (NewsResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	log := contextutil.GetLogger(ctx, s.logger)

	if principal == nil || !principal.IsAuthenticated() {
		return NewsResponse{}, policy.AuthorizeNews(principal, nil)
	}

	category := strings.ToUpper(strings.TrimSpace(req.Category))
	if category == "" {
		category = CategoryOutros
	}
	if !ValidCategory(category) {
		return NewsResponse{}, newserrors.ErrInvalidCategory
	}

	owner := principal.UserID()
	n := &News{
		Title:    strings.TrimSpace(req.Title),
		Body:     req.Body,
		Category: category,
		CoverURL: strings.TrimSpace(req.CoverURL),
		Link:     strings.TrimSpace(req.Link),
		OwnerID:  &owner,
	}
	if req.PublishedAt != nil {
		n.PublishedAt = req.PublishedAt.UTC()
	} else {
		n.PublishedAt = time.Now().UTC()
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Create(ctx, n); err != nil {
			return err
		}
		return s.enqueue(ctx, tx, events.NewsCreated, *n)
	})
	if err != nil {
		log.Error("create news failed", zap.String("request_id", rid), zap.Error(err))
		return NewsResponse{}, err
	}

	if s.retention != nil {
		if evicted := s.retention.OnNewsCreated(ctx, n); evicted != nil {
			if err := s.enqueue(ctx, nil, events.NewsEvicted, *evicted); err != nil {
				log.Error("queue news eviction event failed",
					zap.Int64("news_id", evicted.ID),
					zap.Error(err),
				)
			}
		}
	}
	s.invalidateHome(ctx)

	log.Info("create news success",
		zap.String("request_id", rid),
		zap.Int64("news_id", n.ID),
		zap.String("owner_id", owner.String()),
	)
	return mapToResponse(*n), nil
}

func (s *service) Update(ctx context.Context, principal policy.Principal, id string, req UpdateNewsRequest) (NewsResponse, error) {
	n, err := s.find(ctx, id)
	if err != nil {
		return NewsResponse{}, err
	}
	if err := policy.AuthorizeNews(principal, n); err != nil {
		return NewsResponse{}, err
	}

	previousCover := n.CoverURL
	if req.Title != nil {
		n.Title = strings.TrimSpace(*req.Title)
	}
	if req.Body != nil {
		n.Body = *req.Body
	}
	if req.Category != nil {
		category := strings.ToUpper(strings.TrimSpace(*req.Category))
		if !ValidCategory(category) {
			return NewsResponse{}, newserrors.ErrInvalidCategory
		}
		n.Category = category
	}
	if req.CoverURL != nil {
		n.CoverURL = strings.TrimSpace(*req.CoverURL)
	}
	if req.Link != nil {
		n.Link = strings.TrimSpace(*req.Link)
	}
	if req.PublishedAt != nil {
		n.PublishedAt = req.PublishedAt.UTC()
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Update(ctx, n); err != nil {
			return err
		}
		return s.enqueue(ctx, tx, events.NewsUpdated, *n)
	})
	if err != nil {
		return NewsResponse{}, mapRepositoryError(err)
	}

	if previousCover != n.CoverURL {
		s.removeCover(ctx, previousCover)
	}
	s.invalidateHome(ctx)
	return mapToResponse(*n), nil
}

func (s *service) Delete(ctx context.Context, principal policy.Principal, id string) error {
	n, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if err := policy.AuthorizeNews(principal, n); err != nil {
		return err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		deleted, err := s.repo.WithTx(tx).DeleteByID(ctx, n.ID)
		if err != nil {
			return err
		}
		if !deleted {
			return gorm.ErrRecordNotFound
		}
		return s.enqueue(ctx, tx, events.NewsDeleted, *n)
	})
	if err != nil {
		return mapRepositoryError(err)
	}

	s.invalidateHome(ctx)
	contextutil.GetLogger(ctx, s.logger).Info("news deleted",
		zap.Int64("news_id", n.ID),
		zap.String("actor_id", principal.UserID().String()),
	)
	return nil
}

func (s *service) UploadCover(ctx context.Context, principal policy.Principal, id string, data []byte) (NewsResponse, error) {
	n, err := s.find(ctx, id)
	if err != nil {
		return NewsResponse{}, err
	}
	if err := policy.AuthorizeNews(principal, n); err != nil {
		return NewsResponse{}, err
	}

	asset, err := s.uploader.UploadImage(ctx, storage.KindNews, strconv.FormatInt(n.ID, 10), data)
	if err != nil {
		return NewsResponse{}, err
	}

	previous := n.CoverURL
	n.CoverURL = asset.URL
	if err := s.repo.Update(ctx, n); err != nil {
		s.removeCover(ctx, asset.URL)
		return NewsResponse{}, mapRepositoryError(err)
	}

	s.removeCover(ctx, previous)
	s.invalidateHome(ctx)
	return mapToResponse(*n), nil
}

func (s *service) InvalidateHome(ctx context.Context) error {
	return NewHomeCache(s.rdb).InvalidateHome(ctx)
}

func (s *service) invalidateHome(ctx context.Context) {
	if err := s.InvalidateHome(ctx); err != nil {
		s.logger.Error("failed to invalidate news home cache",
			zap.Error(err),
			zap.String("key", HomeCacheKey),
		)
	}
}

// enqueue writes a lifecycle event to the outbox. With a nil tx the event is
// written on its own.
func (s *service) enqueue(ctx context.Context, tx *gorm.DB, eventType string, n News) error {
	if s.outbox == nil {
		return nil
	}

	rid := contextutil.GetRequestID(ctx)
	event := events.NewsLifecycleEvent{
		EventType:  eventType,
		RequestID:  rid,
		NewsID:     n.ID,
		CoverURL:   n.CoverURL,
		OccurredAt: time.Now().UTC(),
	}
	if n.OwnerID != nil {
		event.OwnerID = n.OwnerID.String()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	outboxRepo := s.outbox
	if tx != nil {
		outboxRepo = s.outbox.WithTx(tx)
	}
	return outboxRepo.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "news",
		AggregateID:   strconv.FormatInt(n.ID, 10),
		EventType:     eventType,
		Topic:         events.NewsLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *service) find(ctx context.Context, id string) (*News, error) {
	nid, err := strconv.ParseInt(id, 10, 64)
	if err != nil || nid < 1 {
		return nil, newserrors.ErrInvalidNewsID
	}

	n, err := s.repo.FindByID(ctx, nid)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return n, nil
}

func (s *service) removeCover(ctx context.Context, url string) {
	if url == "" || s.uploader == nil {
		return
	}
	if err := s.uploader.RemoveByURL(ctx, url); err != nil {
		contextutil.GetLogger(ctx, s.logger).Warn("remove news cover failed",
			zap.String("url", url),
			zap.Error(err),
		)
	}
}
