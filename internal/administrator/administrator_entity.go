package administrator

import (
	"time"

	"github.com/google/uuid"
)

// Administrator binds one user to one startup. Both sides are unique, so a
// startup has at most one administrator and a user administers at most one
// startup.
type Administrator struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_administrators_user_id"`
	StartupID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_administrators_startup_id"`
	Name       string    `gorm:"type:varchar(100);not null"`
	Role       string    `gorm:"type:varchar(100)"`
	Education  string    `gorm:"type:varchar(255)"`
	Email      string    `gorm:"type:varchar(255)"`
	SocialLink string    `gorm:"type:varchar(500)"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (Administrator) TableName() string {
	return "administrators"
}
