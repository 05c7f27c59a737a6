package kafka_test

import (
	"context"
	"testing"

	"go-inova/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func validEvent() kafka.OutboxEvent {
	return kafka.OutboxEvent{
		ID:            "8c7e3f8e-4f0e-4bb4-9f55-2b1d1f0a7c11",
		AggregateType: "news",
		AggregateID:   "42",
		EventType:     "news_created",
		Topic:         "inova.news.lifecycle.v1",
		Payload:       []byte(`{"news_id":42}`),
		Status:        kafka.OutboxStatusPending,
	}
}

func TestValidateOutboxEvent(t *testing.T) {
	assert.NoError(t, kafka.ValidateOutboxEvent(validEvent()))

	noID := validEvent()
	noID.ID = ""
	assert.EqualError(t, kafka.ValidateOutboxEvent(noID), "outbox id is required")

	noTopic := validEvent()
	noTopic.Topic = ""
	assert.EqualError(t, kafka.ValidateOutboxEvent(noTopic), "outbox topic is required")

	noPayload := validEvent()
	noPayload.Payload = nil
	assert.EqualError(t, kafka.ValidateOutboxEvent(noPayload), "outbox payload is required")

	badStatus := validEvent()
	badStatus.Status = "queued"
	assert.EqualError(t, kafka.ValidateOutboxEvent(badStatus), "invalid outbox status: queued")
}

func TestOutboxRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	require.NoError(t, err)

	repo := kafka.NewOutboxRepository(gdb)
	e := validEvent()

	mock.ExpectExec("INSERT INTO outbox_events").
		WithArgs(e.ID, e.RequestID, e.AggregateType, e.AggregateID, e.EventType, e.Topic, e.Payload, e.Status).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Create(context.Background(), e))
	assert.NoError(t, mock.ExpectationsWereMet())

	invalid := validEvent()
	invalid.Status = ""
	assert.Error(t, repo.Create(context.Background(), invalid))
}
