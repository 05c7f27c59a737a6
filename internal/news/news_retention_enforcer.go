package news

import (
	"context"
	"errors"

	"go-inova/internal/bootstrap"
	"go-inova/internal/shared/contextutil"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RetentionEnforcer keeps the number of stored articles at or below cap by
// evicting the earliest inserted one after each creation.
type RetentionEnforcer struct {
	repo   Repository
	cap    int64
	audit  bootstrap.AuditLogger
	logger *zap.Logger
}

// NewRetentionEnforcer accepts a nil audit logger, evictions are then only
// logged.
func NewRetentionEnforcer(repo Repository, maxArticles int, audit bootstrap.AuditLogger, logger ...*zap.Logger) *RetentionEnforcer {
	l := zap.L().Named("news.retention")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("news.retention")
	}
	return &RetentionEnforcer{repo: repo, cap: int64(maxArticles), audit: audit, logger: l}
}

func (e *RetentionEnforcer) Cap() int {
	return int(e.cap)
}

// OnNewsCreated evicts at most one article when the total exceeds the cap and
// returns it, or nil when nothing was removed. Failures are logged and never
// surface to the caller.
func (e *RetentionEnforcer) OnNewsCreated(ctx context.Context, created *News) *News {
	log := contextutil.GetLogger(ctx, e.logger)
	createdID := int64(0)
	if created != nil {
		createdID = created.ID
	}

	total, err := e.repo.Count(ctx)
	if err != nil {
		log.Error("count news for retention failed",
			zap.Int64("created_id", createdID),
			zap.Error(err),
		)
		return nil
	}
	if total <= e.cap {
		return nil
	}

	oldest, err := e.repo.FindOldest(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Debug("no news left to evict", zap.Int64("created_id", createdID))
			return nil
		}
		log.Error("find oldest news failed",
			zap.Int64("created_id", createdID),
			zap.Error(err),
		)
		return nil
	}

	deleted, err := e.repo.DeleteByID(ctx, oldest.ID)
	if err != nil {
		log.Error("evict news failed",
			zap.Int64("news_id", oldest.ID),
			zap.Int64("created_id", createdID),
			zap.Error(err),
		)
		return nil
	}
	if !deleted {
		log.Debug("news already gone before eviction", zap.Int64("news_id", oldest.ID))
		return nil
	}

	log.Info("news evicted by retention",
		zap.Int64("news_id", oldest.ID),
		zap.Int64("created_id", createdID),
		zap.Int64("count", total),
		zap.Int64("cap", e.cap),
	)
	if e.audit != nil {
		e.audit.Log(ctx, bootstrap.AuditLog{
			Action:  "NEWS_EVICTED",
			Message: "news article evicted by retention cap",
			Meta: map[string]any{
				"news_id":    oldest.ID,
				"created_id": createdID,
				"cap":        e.cap,
			},
		})
	}
	return oldest
}
