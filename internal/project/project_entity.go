package project

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const (
	MinPhotos = 2
	MaxPhotos = 5
)

// Project belongs to a startup. CoordinatorID holds the id of the startup's
// administrator at the time of the last save, and is cleared when that
// administrator's user is deleted.
type Project struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StartupID     uuid.UUID      `gorm:"type:uuid;not null;index"`
	CoordinatorID *uuid.UUID     `gorm:"type:uuid;index"`
	Name          string         `gorm:"type:varchar(100);not null"`
	Description   string         `gorm:"type:text;not null"`
	VideoURL      string         `gorm:"type:varchar(500)"`
	Photos        pq.StringArray `gorm:"type:text[]"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (Project) TableName() string {
	return "projects"
}

type ProjectMember struct {
	ProjectID uuid.UUID `gorm:"type:uuid;primaryKey"`
	MemberID  uuid.UUID `gorm:"type:uuid;primaryKey"`
}

func (ProjectMember) TableName() string {
	return "project_members"
}
