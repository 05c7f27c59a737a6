package news

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=news_repo.go -destination=mock/news_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, n *News) error
	FindByID(ctx context.Context, id int64) (*News, error)
	List(ctx context.Context, category string, page, size int) ([]News, int64, error)
	Latest(ctx context.Context, limit int) ([]News, error)
	Update(ctx context.Context, n *News) error
	DeleteByID(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int64, error)
	FindOldest(ctx context.Context) (*News, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, n *News) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *repository) FindByID(ctx context.Context, id int64) (*News, error) {
	var n News
	if err := r.db.WithContext(ctx).First(&n, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *repository) List(ctx context.Context, category string, page, size int) ([]News, int64, error) {
	q := r.db.WithContext(ctx).Model(&News{})
	if category != "" {
		q = q.Where("category = ?", category)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []News
	err := q.Order("published_at DESC").
		Order("id DESC").
		Limit(size).
		Offset((page - 1) * size).
		Find(&items).Error
	return items, total, err
}

func (r *repository) Latest(ctx context.Context, limit int) ([]News, error) {
	var items []News
	err := r.db.WithContext(ctx).
		Order("published_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&items).Error
	return items, err
}

// Update rewrites an existing row and reports gorm.ErrRecordNotFound when it
// no longer exists.
func (r *repository) Update(ctx context.Context, n *News) error {
	res := r.db.WithContext(ctx).Model(n).Select("*").Omit("CreatedAt").Updates(n)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteByID reports false when no row matched.
func (r *repository) DeleteByID(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).Exec("DELETE FROM news WHERE id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&News{}).Count(&total).Error
	return total, err
}

// FindOldest returns the earliest inserted article. published_at is not
// consulted, a backdated article is not older than one inserted before it.
func (r *repository) FindOldest(ctx context.Context) (*News, error) {
	var n News
	if err := r.db.WithContext(ctx).Order("id ASC").First(&n).Error; err != nil {
		return nil, err
	}
	return &n, nil
}
