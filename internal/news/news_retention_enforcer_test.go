package news_test

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"go-inova/internal/bootstrap"
	"go-inova/internal/news"
	newsMock "go-inova/internal/news/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type recordingAudit struct {
	entries []bootstrap.AuditLog
}

func (r *recordingAudit) Log(_ context.Context, entry bootstrap.AuditLog) {
	r.entries = append(r.entries, entry)
}

// memRepository keeps articles in insertion order for multi step scenarios.
type memRepository struct {
	news.Repository
	nextID int64
	rows   []news.News
}

func (m *memRepository) Create(_ context.Context, n *news.News) error {
	m.nextID++
	n.ID = m.nextID
	m.rows = append(m.rows, *n)
	return nil
}

func (m *memRepository) Count(context.Context) (int64, error) {
	return int64(len(m.rows)), nil
}

func (m *memRepository) FindOldest(context.Context) (*news.News, error) {
	if len(m.rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	oldest := m.rows[0]
	for _, n := range m.rows[1:] {
		if n.ID < oldest.ID {
			oldest = n
		}
	}
	return &oldest, nil
}

func (m *memRepository) DeleteByID(_ context.Context, id int64) (bool, error) {
	for i, n := range m.rows {
		if n.ID == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (m *memRepository) ids() []int64 {
	ids := make([]int64, 0, len(m.rows))
	for _, n := range m.rows {
		ids = append(ids, n.ID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func TestRetentionEnforcer_Scenario(t *testing.T) {
	ctx := context.Background()
	repo := &memRepository{}
	enforcer := news.NewRetentionEnforcer(repo, 4, nil)

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var evicted []int64
	for i := 0; i < 5; i++ {
		n := &news.News{Title: "n", PublishedAt: base.AddDate(0, 0, i)}
		if i == 4 {
			// backdated: the newest row carries the oldest publication date
			n.PublishedAt = base.AddDate(-1, 0, 0)
		}
		require.NoError(t, repo.Create(ctx, n))
		if out := enforcer.OnNewsCreated(ctx, n); out != nil {
			evicted = append(evicted, out.ID)
		}
	}

	assert.Equal(t, []int64{1}, evicted)
	assert.Equal(t, []int64{2, 3, 4, 5}, repo.ids())
}

func TestRetentionEnforcer_SequenceStaysAtCap(t *testing.T) {
	ctx := context.Background()
	repo := &memRepository{}
	enforcer := news.NewRetentionEnforcer(repo, 6, nil)

	for i := 0; i < 10; i++ {
		n := &news.News{Title: "n"}
		require.NoError(t, repo.Create(ctx, n))
		enforcer.OnNewsCreated(ctx, n)

		count, _ := repo.Count(ctx)
		assert.LessOrEqual(t, count, int64(6))
	}
	assert.Equal(t, []int64{5, 6, 7, 8, 9, 10}, repo.ids())
}

func TestRetentionEnforcer_OnNewsCreated(t *testing.T) {
	ctx := context.Background()
	created := &news.News{ID: 9}

	t.Run("at cap is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := newsMock.NewMockRepository(ctrl)
		repo.EXPECT().Count(ctx).Return(int64(4), nil)
		repo.EXPECT().FindOldest(gomock.Any()).Times(0)
		repo.EXPECT().DeleteByID(gomock.Any(), gomock.Any()).Times(0)

		assert.Nil(t, news.NewRetentionEnforcer(repo, 4, nil).OnNewsCreated(ctx, created))
	})

	t.Run("evicts exactly one", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := newsMock.NewMockRepository(ctrl)
		repo.EXPECT().Count(ctx).Return(int64(8), nil)
		repo.EXPECT().FindOldest(ctx).Return(&news.News{ID: 2, CoverURL: "http://minio/inova/news/2/a.jpg"}, nil)
		repo.EXPECT().DeleteByID(ctx, int64(2)).Return(true, nil).Times(1)

		audit := &recordingAudit{}
		out := news.NewRetentionEnforcer(repo, 6, audit).OnNewsCreated(ctx, created)
		require.NotNil(t, out)
		assert.Equal(t, int64(2), out.ID)
		assert.Equal(t, "http://minio/inova/news/2/a.jpg", out.CoverURL)

		require.Len(t, audit.entries, 1)
		assert.Equal(t, "NEWS_EVICTED", audit.entries[0].Action)
		assert.Equal(t, int64(2), audit.entries[0].Meta["news_id"])
		assert.Equal(t, int64(9), audit.entries[0].Meta["created_id"])
	})

	t.Run("row vanished before delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := newsMock.NewMockRepository(ctrl)
		repo.EXPECT().Count(ctx).Return(int64(7), nil)
		repo.EXPECT().FindOldest(ctx).Return(&news.News{ID: 1}, nil)
		repo.EXPECT().DeleteByID(ctx, int64(1)).Return(false, nil)

		audit := &recordingAudit{}
		assert.Nil(t, news.NewRetentionEnforcer(repo, 6, audit).OnNewsCreated(ctx, created))
		assert.Empty(t, audit.entries)
	})

	t.Run("errors are swallowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := newsMock.NewMockRepository(ctrl)
		enforcer := news.NewRetentionEnforcer(repo, 6, nil)

		repo.EXPECT().Count(ctx).Return(int64(0), errors.New("db down"))
		assert.Nil(t, enforcer.OnNewsCreated(ctx, created))

		repo.EXPECT().Count(ctx).Return(int64(7), nil)
		repo.EXPECT().FindOldest(ctx).Return(nil, errors.New("timeout"))
		assert.Nil(t, enforcer.OnNewsCreated(ctx, created))

		repo.EXPECT().Count(ctx).Return(int64(7), nil)
		repo.EXPECT().FindOldest(ctx).Return(&news.News{ID: 1}, nil)
		repo.EXPECT().DeleteByID(ctx, int64(1)).Return(false, errors.New("deadlock"))
		assert.Nil(t, enforcer.OnNewsCreated(ctx, created))
	})

	t.Run("empty table", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := newsMock.NewMockRepository(ctrl)
		repo.EXPECT().Count(ctx).Return(int64(2), nil)
		repo.EXPECT().FindOldest(ctx).Return(nil, gorm.ErrRecordNotFound)

		assert.Nil(t, news.NewRetentionEnforcer(repo, 1, nil).OnNewsCreated(ctx, nil))
	})
}
