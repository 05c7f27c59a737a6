package formlink

import (
	"time"

	"github.com/google/uuid"
)

// FormLink is append only. Each update stores a new revision and the most
// recently updated row is the current link.
type FormLink struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	URL       string     `gorm:"type:varchar(500);not null"`
	UpdatedAt time.Time  `gorm:"not null;index:idx_form_links_updated_at"`
	UpdatedBy *uuid.UUID `gorm:"type:uuid;index"`
}

func (FormLink) TableName() string {
	return "form_links"
}
