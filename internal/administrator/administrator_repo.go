package administrator

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=administrator_repo.go -destination=mock/administrator_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, admin *Administrator) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*Administrator, error)
	FindByStartupID(ctx context.Context, startupID uuid.UUID) (*Administrator, error)
	Update(ctx context.Context, admin *Administrator) error
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

func (r *repository) Create(ctx context.Context, admin *Administrator) error {
	return r.db.WithContext(ctx).Create(admin).Error
}

func (r *repository) FindByUserID(ctx context.Context, userID uuid.UUID) (*Administrator, error) {
	var admin Administrator
	err := r.db.WithContext(ctx).First(&admin, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *repository) FindByStartupID(ctx context.Context, startupID uuid.UUID) (*Administrator, error) {
	var admin Administrator
	err := r.db.WithContext(ctx).First(&admin, "startup_id = ?", startupID).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *repository) Update(ctx context.Context, admin *Administrator) error {
	res := r.db.WithContext(ctx).Model(admin).Select("*").Omit("CreatedAt").Updates(admin)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
