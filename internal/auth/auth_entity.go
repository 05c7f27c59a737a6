package auth

import (
	"time"

	"github.com/google/uuid"
)

// User is the authenticated principal. Whether it may act on a startup is
// decided by its administrator binding, not by a column here.
type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Email       string    `gorm:"type:varchar(255);uniqueIndex:uq_users_email;not null"`
	Password    string    `gorm:"type:varchar(255);not null"`
	IsSuperuser bool      `gorm:"not null;default:false"`
	IsActive    bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (User) TableName() string {
	return "users"
}
