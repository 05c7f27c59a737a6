package startup

import (
	"time"

	"github.com/google/uuid"
)

type Startup struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name                string     `gorm:"type:varchar(100);not null;index"`
	About               string     `gorm:"type:text;not null"`
	HowUniversityHelped string     `gorm:"type:text"`
	FoundedYear         int        `gorm:"not null;default:0"`
	Sector              string     `gorm:"type:varchar(100);not null;index"`
	TeamSize            string     `gorm:"type:varchar(50)"`
	Incubator           string     `gorm:"type:varchar(100);index"`
	LogoURL             string     `gorm:"type:varchar(500)"`
	Street              string     `gorm:"type:varchar(255)"`
	Number              string     `gorm:"type:varchar(20)"`
	District            string     `gorm:"type:varchar(100)"`
	City                string     `gorm:"type:varchar(100)"`
	State               string     `gorm:"type:varchar(50)"`
	PostalCode          string     `gorm:"type:varchar(20)"`
	CreatedBy           *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (Startup) TableName() string {
	return "startups"
}

type SocialLinks struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StartupID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	LinkedIn  string    `gorm:"column:linkedin;type:varchar(500)"`
	Facebook  string    `gorm:"type:varchar(500)"`
	Instagram string    `gorm:"type:varchar(500)"`
	Twitter   string    `gorm:"type:varchar(500)"`
}

func (SocialLinks) TableName() string {
	return "social_links"
}

type ContactInfo struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StartupID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Email     string    `gorm:"type:varchar(255);not null"`
	Phone     string    `gorm:"type:varchar(20);not null"`
	Website   string    `gorm:"type:varchar(500)"`
}

func (ContactInfo) TableName() string {
	return "contact_infos"
}

// ListFilter narrows the catalogue. Zero values mean no filter.
type ListFilter struct {
	Sector    string
	Incubator string
	Query     string
	Page      int
	PageSize  int
}

type Stats struct {
	TotalStartups   int64 `json:"total_startups"`
	TotalSectors    int64 `json:"total_sectors"`
	TotalIncubators int64 `json:"total_incubators"`
}
