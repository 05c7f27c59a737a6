package consumer

import (
	"context"
	"encoding/json"
	"time"

	"go-inova/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is satisfied by *kafkago.Reader.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

type AssetRemover interface {
	RemoveByURL(ctx context.Context, url string) error
}

type FeedInvalidator interface {
	InvalidateHome(ctx context.Context) error
}

// RetryPolicy bounds how often a failed cleanup is retried in place before
// the consumer moves past it. Attempt n waits n*Backoff, capped at MaxBackoff.
type RetryPolicy struct {
	Attempts   int
	Backoff    time.Duration
	MaxBackoff time.Duration
}

func (p RetryPolicy) delay(attempt int) time.Duration {
	d := time.Duration(attempt) * p.Backoff
	if p.MaxBackoff > 0 && d > p.MaxBackoff {
		return p.MaxBackoff
	}
	return d
}

// ConsumeNewsLifecycle removes cover assets of deleted or evicted articles
// and drops the cached home feed. Undecodable messages are committed and
// skipped. A failed cleanup is retried on the same message according to
// retry; once attempts run out the message is logged and committed.
func ConsumeNewsLifecycle(
	ctx context.Context,
	reader MessageReader,
	assets AssetRemover,
	feed FeedInvalidator,
	retry RetryPolicy,
	logger *zap.Logger,
) {
	if retry.Attempts < 1 {
		retry.Attempts = 1
	}
	log := logger.Named("kafka.consumer.news_lifecycle")
	log.Info("news lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("news lifecycle consumer stopped")
				return
			}
			log.Error("fetch news lifecycle message failed", zap.Error(err))
			continue
		}

		if err := handleWithRetry(ctx, msg, assets, feed, retry, log); err != nil {
			if ctx.Err() != nil {
				log.Info("news lifecycle consumer stopped")
				return
			}
			log.Error("news lifecycle cleanup abandoned",
				zap.Int64("offset", msg.Offset),
				zap.Int("partition", msg.Partition),
				zap.Int("attempts", retry.Attempts),
				zap.Error(err),
			)
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit news lifecycle message failed", zap.Error(err))
		}
	}
}

func handleWithRetry(
	ctx context.Context,
	msg kafkago.Message,
	assets AssetRemover,
	feed FeedInvalidator,
	retry RetryPolicy,
	log *zap.Logger,
) error {
	var err error
	for attempt := 1; attempt <= retry.Attempts; attempt++ {
		if err = HandleNewsLifecycle(ctx, msg, assets, feed, log); err == nil {
			return nil
		}
		if attempt == retry.Attempts {
			break
		}

		timer := time.NewTimer(retry.delay(attempt))
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
	return err
}

// HandleNewsLifecycle processes one message. A non-nil return means the
// cleanup failed and is worth retrying.
func HandleNewsLifecycle(
	ctx context.Context,
	msg kafkago.Message,
	assets AssetRemover,
	feed FeedInvalidator,
	log *zap.Logger,
) error {
	var event events.NewsLifecycleEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode news lifecycle event failed", zap.Error(err))
		return nil
	}

	if event.RemovesCover() && assets != nil {
		if err := assets.RemoveByURL(ctx, event.CoverURL); err != nil {
			log.Error("remove news cover failed",
				zap.Int64("news_id", event.NewsID),
				zap.String("cover_url", event.CoverURL),
				zap.Error(err),
			)
			return err
		}
	}

	if feed != nil {
		if err := feed.InvalidateHome(ctx); err != nil {
			log.Warn("invalidate home feed failed", zap.Int64("news_id", event.NewsID), zap.Error(err))
		}
	}

	log.Info("news lifecycle event handled",
		zap.String("event_type", event.EventType),
		zap.Int64("news_id", event.NewsID),
	)
	return nil
}
