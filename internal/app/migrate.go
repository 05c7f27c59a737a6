package app

import (
	"go-inova/internal/administrator"
	"go-inova/internal/auth"
	"go-inova/internal/formlink"
	"go-inova/internal/member"
	"go-inova/internal/messaging/kafka"
	"go-inova/internal/news"
	"go-inova/internal/project"
	"go-inova/internal/startup"

	"gorm.io/gorm"
)

// Migrate creates or updates every table. Parents come before the tables
// that reference them.
func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`).Error; err != nil {
		return err
	}
	return db.AutoMigrate(
		&auth.User{},
		&startup.Startup{},
		&startup.SocialLinks{},
		&startup.ContactInfo{},
		&administrator.Administrator{},
		&member.Member{},
		&project.Project{},
		&project.ProjectMember{},
		&news.News{},
		&formlink.FormLink{},
		&kafka.OutboxEvent{},
	)
}
