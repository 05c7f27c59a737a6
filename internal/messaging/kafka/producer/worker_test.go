package producer

import (
	"context"
	"errors"
	"testing"

	"go-inova/internal/messaging/kafka"
	kafkaMock "go-inova/internal/messaging/kafka/mock"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeWriter struct {
	fail map[string]error
	sent []kafkago.Message
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		if err := w.fail[string(m.Key)]; err != nil {
			return err
		}
		w.sent = append(w.sent, m)
	}
	return nil
}

func TestProcessPendingEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := kafkaMock.NewMockOutboxRepository(ctrl)
	ctx := context.Background()

	ok := kafka.OutboxEvent{ID: "o-1", AggregateID: "1", EventType: "news_created", Topic: "t", Payload: []byte(`{}`), RequestID: "rid-1"}
	bad := kafka.OutboxEvent{ID: "o-2", AggregateID: "2", EventType: "news_evicted", Topic: "t", Payload: []byte(`{}`)}

	writer := &fakeWriter{fail: map[string]error{"2": errors.New("broker down")}}

	repo.EXPECT().ListPending(ctx, batchSize).Return([]kafka.OutboxEvent{ok, bad}, nil)
	repo.EXPECT().MarkSent(ctx, "o-1").Return(nil)
	repo.EXPECT().MarkFailed(ctx, "o-2", "broker down").Return(nil)

	err := processPendingEvents(ctx, repo, writer, zap.NewNop())

	assert.NoError(t, err)
	assert.Len(t, writer.sent, 1)
	assert.Equal(t, []byte("1"), writer.sent[0].Key)

	headers := map[string]string{}
	for _, h := range writer.sent[0].Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, "news_created", headers["event_type"])
	assert.Equal(t, "rid-1", headers["request_id"])
}

func TestProcessPendingEvents_ListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := kafkaMock.NewMockOutboxRepository(ctrl)
	ctx := context.Background()

	repo.EXPECT().ListPending(ctx, batchSize).Return(nil, errors.New("db down"))

	err := processPendingEvents(ctx, repo, &fakeWriter{}, zap.NewNop())
	assert.EqualError(t, err, "db down")
}
