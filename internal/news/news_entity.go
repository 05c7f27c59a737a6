package news

import (
	"time"

	"github.com/google/uuid"
)

const (
	CategoryStartup       = "STARTUP"
	CategoryInovacao      = "INOVACAO"
	CategoryEvento        = "EVENTO"
	CategoryPesquisa      = "PESQUISA"
	CategoryTecnologia    = "TECNOLOGIA"
	CategoryInstitucional = "INSTITUCIONAL"
	CategoryOutros        = "OUTROS"
)

var categories = map[string]bool{
	CategoryStartup:       true,
	CategoryInovacao:      true,
	CategoryEvento:        true,
	CategoryPesquisa:      true,
	CategoryTecnologia:    true,
	CategoryInstitucional: true,
	CategoryOutros:        true,
}

func ValidCategory(category string) bool {
	return categories[category]
}

// News ids are assigned in insertion order; retention evicts the lowest id.
type News struct {
	ID          int64      `gorm:"primaryKey;autoIncrement"`
	Title       string     `gorm:"type:varchar(200);not null"`
	Body        string     `gorm:"type:text;not null"`
	PublishedAt time.Time  `gorm:"not null;default:now();index:idx_news_published_at"`
	Category    string     `gorm:"type:varchar(20);not null;default:'OUTROS';index"`
	CoverURL    string     `gorm:"type:varchar(500)"`
	Link        string     `gorm:"type:varchar(500)"`
	OwnerID     *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (News) TableName() string {
	return "news"
}

func (n News) OwnerUserID() *uuid.UUID {
	return n.OwnerID
}
