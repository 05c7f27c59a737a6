package news_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-inova/internal/config"
	"go-inova/internal/events"
	"go-inova/internal/messaging/kafka"
	kafkaMock "go-inova/internal/messaging/kafka/mock"
	"go-inova/internal/news"
	newserrors "go-inova/internal/news/errors"
	newsMock "go-inova/internal/news/mock"
	"go-inova/internal/policy"
	policyerrors "go-inova/internal/policy/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type serviceDeps struct {
	sqlMock   sqlmock.Sqlmock
	redisMock redismock.ClientMock
	service   news.Service
	repo      *newsMock.MockRepository
	outbox    *kafkaMock.MockOutboxRepository
}

func setupServiceTest(t *testing.T, retentionCap int) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	require.NoError(t, err)

	rdb, redisMock := redismock.NewClientMock()

	deps := &serviceDeps{
		sqlMock:   sqlMock,
		redisMock: redisMock,
		repo:      newsMock.NewMockRepository(ctrl),
		outbox:    kafkaMock.NewMockOutboxRepository(ctrl),
	}
	enforcer := news.NewRetentionEnforcer(deps.repo, retentionCap, nil)
	deps.service = news.NewService(gdb, deps.repo, enforcer, deps.outbox, rdb, nil, config.NewsConfig{
		RetentionCap: retentionCap,
		HomeLimit:    9,
		PageSize:     9,
		HomeCacheTTL: 10 * time.Minute,
	})

	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo).AnyTimes()
	deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox).AnyTimes()
	return deps
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func decodeEvent(t *testing.T, e kafka.OutboxEvent) events.NewsLifecycleEvent {
	t.Helper()
	var event events.NewsLifecycleEvent
	require.NoError(t, json.Unmarshal(e.Payload, &event))
	return event
}

func TestNewsService_Create(t *testing.T) {
	ctx := context.Background()
	owner := policy.Actor{ID: uuid.New()}

	t.Run("owner is the caller", func(t *testing.T) {
		deps := setupServiceTest(t, 6)

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, n *news.News) error {
			n.ID = 7
			return nil
		})
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e kafka.OutboxEvent) error {
			assert.Equal(t, events.NewsCreated, e.EventType)
			assert.Equal(t, events.NewsLifecycleTopic, e.Topic)
			assert.Equal(t, "7", e.AggregateID)
			assert.Equal(t, kafka.OutboxStatusPending, e.Status)
			return nil
		})
		deps.repo.EXPECT().Count(ctx).Return(int64(3), nil)
		deps.redisMock.ExpectDel(news.HomeCacheKey).SetVal(1)

		resp, err := deps.service.Create(ctx, owner, news.CreateNewsRequest{Title: " Edital ", Body: "..."})
		require.NoError(t, err)
		assert.Equal(t, int64(7), resp.ID)
		assert.Equal(t, "Edital", resp.Title)
		assert.Equal(t, news.CategoryOutros, resp.Category)
		require.NotNil(t, resp.OwnerID)
		assert.Equal(t, owner.ID.String(), *resp.OwnerID)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("evicts the earliest article past the cap", func(t *testing.T) {
		deps := setupServiceTest(t, 4)
		cover := "http://minio/inova/news/1/a.jpg"

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, n *news.News) error {
			n.ID = 5
			return nil
		})
		gomock.InOrder(
			deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(nil),
			deps.outbox.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e kafka.OutboxEvent) error {
				event := decodeEvent(t, e)
				assert.Equal(t, events.NewsEvicted, event.EventType)
				assert.Equal(t, int64(1), event.NewsID)
				assert.Equal(t, cover, event.CoverURL)
				assert.True(t, event.RemovesCover())
				return nil
			}),
		)
		deps.repo.EXPECT().Count(ctx).Return(int64(5), nil)
		deps.repo.EXPECT().FindOldest(ctx).Return(&news.News{ID: 1, CoverURL: cover}, nil)
		deps.repo.EXPECT().DeleteByID(ctx, int64(1)).Return(true, nil)
		deps.redisMock.ExpectDel(news.HomeCacheKey).SetVal(1)

		resp, err := deps.service.Create(ctx, owner, news.CreateNewsRequest{Title: "n5", Body: "..."})
		require.NoError(t, err)
		assert.Equal(t, int64(5), resp.ID)
	})

	t.Run("eviction failure does not fail creation", func(t *testing.T) {
		deps := setupServiceTest(t, 4)

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, n *news.News) error {
			n.ID = 5
			return nil
		})
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.repo.EXPECT().Count(ctx).Return(int64(5), nil)
		deps.repo.EXPECT().FindOldest(ctx).Return(&news.News{ID: 1}, nil)
		deps.repo.EXPECT().DeleteByID(ctx, int64(1)).Return(false, errors.New("lock timeout"))
		deps.redisMock.ExpectDel(news.HomeCacheKey).SetVal(1)

		resp, err := deps.service.Create(ctx, owner, news.CreateNewsRequest{Title: "n5", Body: "..."})
		require.NoError(t, err)
		assert.Equal(t, int64(5), resp.ID)
	})

	t.Run("outbox failure rolls back", func(t *testing.T) {
		deps := setupServiceTest(t, 6)

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("insert failed"))
		deps.repo.EXPECT().Count(gomock.Any()).Times(0)

		_, err := deps.service.Create(ctx, owner, news.CreateNewsRequest{Title: "n", Body: "..."})
		assert.Error(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("anonymous", func(t *testing.T) {
		deps := setupServiceTest(t, 6)

		_, err := deps.service.Create(ctx, policy.Anonymous(), news.CreateNewsRequest{Title: "n", Body: "..."})
		assert.ErrorIs(t, err, policyerrors.ErrUnauthenticated)
	})

	t.Run("unknown category", func(t *testing.T) {
		deps := setupServiceTest(t, 6)

		_, err := deps.service.Create(ctx, owner, news.CreateNewsRequest{Title: "n", Body: "...", Category: "GOSSIP"})
		assert.ErrorIs(t, err, newserrors.ErrInvalidCategory)
	})
}

func TestNewsService_Update(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	t.Run("another user is forbidden", func(t *testing.T) {
		deps := setupServiceTest(t, 6)
		deps.repo.EXPECT().FindByID(ctx, int64(3)).Return(&news.News{ID: 3, OwnerID: &ownerID}, nil)
		deps.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)

		title := "hijack"
		_, err := deps.service.Update(ctx, policy.Actor{ID: uuid.New()}, "3", news.UpdateNewsRequest{Title: &title})
		assert.ErrorIs(t, err, policyerrors.ErrForbidden)
	})

	t.Run("superuser edits an orphaned article", func(t *testing.T) {
		deps := setupServiceTest(t, 6)
		deps.repo.EXPECT().FindByID(ctx, int64(3)).Return(&news.News{ID: 3, Title: "old"}, nil)
		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e kafka.OutboxEvent) error {
			assert.Equal(t, events.NewsUpdated, e.EventType)
			return nil
		})
		deps.redisMock.ExpectDel(news.HomeCacheKey).SetVal(1)

		title := "new"
		resp, err := deps.service.Update(ctx, policy.Actor{ID: uuid.New(), Superuser: true}, "3", news.UpdateNewsRequest{Title: &title})
		require.NoError(t, err)
		assert.Equal(t, "new", resp.Title)
		assert.Nil(t, resp.OwnerID)
	})

	t.Run("article evicted between read and write", func(t *testing.T) {
		deps := setupServiceTest(t, 6)
		deps.repo.EXPECT().FindByID(ctx, int64(3)).Return(&news.News{ID: 3, OwnerID: &ownerID}, nil)
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).Return(gorm.ErrRecordNotFound)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		title := "late edit"
		_, err := deps.service.Update(ctx, policy.Actor{ID: ownerID}, "3", news.UpdateNewsRequest{Title: &title})
		assert.ErrorIs(t, err, newserrors.ErrNewsNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("orphaned article is locked for regular users", func(t *testing.T) {
		deps := setupServiceTest(t, 6)
		deps.repo.EXPECT().FindByID(ctx, int64(3)).Return(&news.News{ID: 3}, nil)

		title := "new"
		_, err := deps.service.Update(ctx, policy.Actor{ID: ownerID}, "3", news.UpdateNewsRequest{Title: &title})
		assert.ErrorIs(t, err, policyerrors.ErrForbidden)
	})
}

func TestNewsService_Delete(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	cover := "http://minio/inova/news/3/c.jpg"

	t.Run("owner deletes and cover cleanup is queued", func(t *testing.T) {
		deps := setupServiceTest(t, 6)
		deps.repo.EXPECT().FindByID(ctx, int64(3)).Return(&news.News{ID: 3, OwnerID: &ownerID, CoverURL: cover}, nil)
		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().DeleteByID(ctx, int64(3)).Return(true, nil)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e kafka.OutboxEvent) error {
			event := decodeEvent(t, e)
			assert.Equal(t, events.NewsDeleted, event.EventType)
			assert.Equal(t, cover, event.CoverURL)
			assert.Equal(t, ownerID.String(), event.OwnerID)
			return nil
		})
		deps.redisMock.ExpectDel(news.HomeCacheKey).SetVal(1)

		require.NoError(t, deps.service.Delete(ctx, policy.Actor{ID: ownerID}, "3"))
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("concurrently removed", func(t *testing.T) {
		deps := setupServiceTest(t, 6)
		deps.repo.EXPECT().FindByID(ctx, int64(3)).Return(&news.News{ID: 3, OwnerID: &ownerID}, nil)
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().DeleteByID(ctx, int64(3)).Return(false, nil)

		err := deps.service.Delete(ctx, policy.Actor{ID: ownerID}, "3")
		assert.ErrorIs(t, err, newserrors.ErrNewsNotFound)
	})

	t.Run("invalid id", func(t *testing.T) {
		deps := setupServiceTest(t, 6)
		assert.ErrorIs(t, deps.service.Delete(ctx, policy.Actor{ID: ownerID}, "abc"), newserrors.ErrInvalidNewsID)
	})

	t.Run("missing article", func(t *testing.T) {
		deps := setupServiceTest(t, 6)
		deps.repo.EXPECT().FindByID(ctx, int64(99)).Return(nil, gorm.ErrRecordNotFound)
		assert.ErrorIs(t, deps.service.Delete(ctx, policy.Actor{ID: ownerID}, "99"), newserrors.ErrNewsNotFound)
	})
}

func TestNewsService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("filters by category", func(t *testing.T) {
		deps := setupServiceTest(t, 6)
		deps.repo.EXPECT().List(ctx, news.CategoryEvento, 2, 9).
			Return([]news.News{{ID: 4, Category: news.CategoryEvento}}, int64(10), nil)

		result, err := deps.service.List(ctx, news.ListNewsQuery{Category: "evento", Page: 2})
		require.NoError(t, err)
		assert.Len(t, result.Items, 1)
		assert.Equal(t, 9, result.Size)
		assert.Equal(t, 2, result.Page)
	})

	t.Run("unknown category", func(t *testing.T) {
		deps := setupServiceTest(t, 6)
		_, err := deps.service.List(ctx, news.ListNewsQuery{Category: "GOSSIP"})
		assert.ErrorIs(t, err, newserrors.ErrInvalidCategory)
	})
}

func TestNewsService_Home(t *testing.T) {
	ctx := context.Background()

	t.Run("served from cache", func(t *testing.T) {
		deps := setupServiceTest(t, 6)
		cached, err := json.Marshal([]news.NewsResponse{{ID: 1, Title: "cached"}})
		require.NoError(t, err)

		deps.redisMock.ExpectGet(news.HomeCacheKey).SetVal(string(cached))
		deps.repo.EXPECT().Latest(gomock.Any(), gomock.Any()).Times(0)

		resp, err := deps.service.GetHome(ctx)
		require.NoError(t, err)
		require.Len(t, resp, 1)
		assert.Equal(t, "cached", resp[0].Title)
	})

	t.Run("cache miss loads the latest articles", func(t *testing.T) {
		deps := setupServiceTest(t, 6)
		deps.redisMock.ExpectGet(news.HomeCacheKey).RedisNil()
		deps.repo.EXPECT().Latest(ctx, 9).Return([]news.News{{ID: 2}, {ID: 1}}, nil)

		resp, err := deps.service.GetHome(ctx)
		require.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, int64(2), resp[0].ID)
	})
}
