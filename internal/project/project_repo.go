package project

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=project_repo.go -destination=mock/project_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, p *Project) error
	FindByID(ctx context.Context, startupID, id uuid.UUID) (*Project, error)
	FindByName(ctx context.Context, startupID uuid.UUID, name string) (*Project, error)
	ListByStartup(ctx context.Context, startupID uuid.UUID) ([]Project, error)
	Update(ctx context.Context, p *Project) error
	Delete(ctx context.Context, startupID, id uuid.UUID) error
	ListMemberIDs(ctx context.Context, projectID uuid.UUID) ([]uuid.UUID, error)
	ReplaceMembers(ctx context.Context, projectID uuid.UUID, memberIDs []uuid.UUID) error
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

func (r *repository) Create(ctx context.Context, p *Project) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) FindByID(ctx context.Context, startupID, id uuid.UUID) (*Project, error) {
	var p Project
	err := r.db.WithContext(ctx).
		Where("startup_id = ?", startupID).
		First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) FindByName(ctx context.Context, startupID uuid.UUID, name string) (*Project, error) {
	var p Project
	err := r.db.WithContext(ctx).
		Where("startup_id = ? AND LOWER(name) = LOWER(?)", startupID, name).
		Order("created_at ASC").
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) ListByStartup(ctx context.Context, startupID uuid.UUID) ([]Project, error) {
	var projects []Project
	err := r.db.WithContext(ctx).
		Where("startup_id = ?", startupID).
		Order("created_at DESC").
		Find(&projects).Error
	return projects, err
}

func (r *repository) Update(ctx context.Context, p *Project) error {
	res := r.db.WithContext(ctx).Model(p).Select("*").Omit("CreatedAt").Updates(p)
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
		if err := tx.Exec("DELETE FROM project_members WHERE project_id = ?", id).Error; err != nil {
			return err
		}

		res := tx.Exec("DELETE FROM projects WHERE id = ? AND startup_id = ?", id, startupID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *repository) ListMemberIDs(ctx context.Context, projectID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&ProjectMember{}).
		Where("project_id = ?", projectID).
		Pluck("member_id", &ids).Error
	return ids, err
}

// ReplaceMembers does not open a transaction of its own; call it on a
// repository bound with WithTx.
func (r *repository) ReplaceMembers(ctx context.Context, projectID uuid.UUID, memberIDs []uuid.UUID) error {
	db := r.db.WithContext(ctx)
	if err := db.Exec("DELETE FROM project_members WHERE project_id = ?", projectID).Error; err != nil {
		return err
	}
	if len(memberIDs) == 0 {
		return nil
	}

	rows := make([]ProjectMember, 0, len(memberIDs))
	for _, id := range memberIDs {
		rows = append(rows, ProjectMember{ProjectID: projectID, MemberID: id})
	}
	return db.Create(&rows).Error
}
