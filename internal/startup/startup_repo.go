package startup

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=startup_repo.go -destination=mock/startup_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, s *Startup) error
	FindByID(ctx context.Context, id uuid.UUID) (*Startup, error)
	FindByName(ctx context.Context, name string) (*Startup, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	List(ctx context.Context, filter ListFilter) ([]Startup, int64, error)
	Stats(ctx context.Context) (Stats, error)
	Update(ctx context.Context, s *Startup) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindContact(ctx context.Context, startupID uuid.UUID) (*ContactInfo, error)
	UpsertContact(ctx context.Context, c *ContactInfo) error
	FindSocialLinks(ctx context.Context, startupID uuid.UUID) (*SocialLinks, error)
	UpsertSocialLinks(ctx context.Context, l *SocialLinks) error
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

func (r *repository) Create(ctx context.Context, s *Startup) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Startup, error) {
	var s Startup
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// FindByName matches case-insensitively. Names are not unique, the oldest
// startup wins.
func (r *repository) FindByName(ctx context.Context, name string) (*Startup, error) {
	var s Startup
	err := r.db.WithContext(ctx).
		Where("LOWER(name) = ?", strings.ToLower(strings.TrimSpace(name))).
		Order("created_at ASC").
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Startup{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]Startup, int64, error) {
	q := r.db.WithContext(ctx).Model(&Startup{})
	if filter.Sector != "" {
		q = q.Where("sector = ?", filter.Sector)
	}
	if filter.Incubator != "" {
		q = q.Where("incubator = ?", filter.Incubator)
	}
	if filter.Query != "" {
		q = q.Where("name ILIKE ?", "%"+escapeLike(filter.Query)+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var startups []Startup
	err := q.Order("name ASC").
		Limit(filter.PageSize).
		Offset((filter.Page - 1) * filter.PageSize).
		Find(&startups).Error
	return startups, total, err
}

func (r *repository) Stats(ctx context.Context) (Stats, error) {
	var stats Stats
	err := r.db.WithContext(ctx).
		Raw(`SELECT COUNT(*) AS total_startups,
			COUNT(DISTINCT sector) AS total_sectors,
			COUNT(DISTINCT NULLIF(incubator, '')) AS total_incubators
			FROM startups`).
		Scan(&stats).Error
	return stats, err
}

func (r *repository) Update(ctx context.Context, s *Startup) error {
	res := r.db.WithContext(ctx).Model(s).Select("*").Omit("CreatedAt").Updates(s)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the startup and everything it owns.
func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cascade := []string{
			"DELETE FROM project_members WHERE project_id IN (SELECT id FROM projects WHERE startup_id = ?)",
			"DELETE FROM projects WHERE startup_id = ?",
			"DELETE FROM members WHERE startup_id = ?",
			"DELETE FROM social_links WHERE startup_id = ?",
			"DELETE FROM contact_infos WHERE startup_id = ?",
			"DELETE FROM administrators WHERE startup_id = ?",
		}
		for _, stmt := range cascade {
			if err := tx.Exec(stmt, id).Error; err != nil {
				return err
			}
		}

		res := tx.Exec("DELETE FROM startups WHERE id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *repository) FindContact(ctx context.Context, startupID uuid.UUID) (*ContactInfo, error) {
	var c ContactInfo
	if err := r.db.WithContext(ctx).First(&c, "startup_id = ?", startupID).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) UpsertContact(ctx context.Context, c *ContactInfo) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "startup_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"email", "phone", "website"}),
	}).Create(c).Error
}

func (r *repository) FindSocialLinks(ctx context.Context, startupID uuid.UUID) (*SocialLinks, error) {
	var l SocialLinks
	if err := r.db.WithContext(ctx).First(&l, "startup_id = ?", startupID).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repository) UpsertSocialLinks(ctx context.Context, l *SocialLinks) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "startup_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"linkedin", "facebook", "instagram", "twitter"}),
	}).Create(l).Error
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(strings.TrimSpace(s))
}
