package member

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StartupScope limits a query to rows owned by one startup.
func StartupScope(startupID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("startup_id = ?", startupID)
	}
}
