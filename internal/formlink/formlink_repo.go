package formlink

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=formlink_repo.go -destination=mock/formlink_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, f *FormLink) error
	Current(ctx context.Context) (*FormLink, error)
	History(ctx context.Context, limit int) ([]FormLink, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, f *FormLink) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *repository) Current(ctx context.Context) (*FormLink, error) {
	var f FormLink
	err := r.db.WithContext(ctx).
		Order("updated_at DESC").
		Take(&f).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *repository) History(ctx context.Context, limit int) ([]FormLink, error) {
	var items []FormLink
	err := r.db.WithContext(ctx).
		Order("updated_at DESC").
		Limit(limit).
		Find(&items).Error
	return items, err
}
