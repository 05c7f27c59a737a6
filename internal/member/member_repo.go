package member

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=member_repo.go -destination=mock/member_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, member *Member) error
	ListByStartup(ctx context.Context, startupID uuid.UUID) ([]Member, error)
	FindByID(ctx context.Context, startupID, id uuid.UUID) (*Member, error)
	FindByIDs(ctx context.Context, startupID uuid.UUID, ids []uuid.UUID) ([]Member, error)
	Update(ctx context.Context, member *Member) error
	Delete(ctx context.Context, startupID, id uuid.UUID) error
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

func (r *repository) Create(ctx context.Context, m *Member) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *repository) ListByStartup(ctx context.Context, startupID uuid.UUID) ([]Member, error) {
	var members []Member
	err := r.db.WithContext(ctx).
		Scopes(StartupScope(startupID)).
		Order("name ASC").
		Find(&members).Error
	return members, err
}

func (r *repository) FindByID(ctx context.Context, startupID, id uuid.UUID) (*Member, error) {
	var m Member
	err := r.db.WithContext(ctx).
		Scopes(StartupScope(startupID)).
		First(&m, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FindByIDs returns the members of startupID among ids. Ids owned by another
// startup are silently left out, callers compare lengths.
func (r *repository) FindByIDs(ctx context.Context, startupID uuid.UUID, ids []uuid.UUID) ([]Member, error) {
	var members []Member
	if len(ids) == 0 {
		return members, nil
	}
	err := r.db.WithContext(ctx).
		Scopes(StartupScope(startupID)).
		Where("id IN ?", ids).
		Find(&members).Error
	return members, err
}

func (r *repository) Update(ctx context.Context, m *Member) error {
	res := r.db.WithContext(ctx).Model(m).Select("*").Omit("CreatedAt").Updates(m)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, startupID, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM project_members WHERE member_id = ?", id).Error; err != nil {
			return err
		}

		res := tx.Exec("DELETE FROM members WHERE id = ? AND startup_id = ?", id, startupID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
