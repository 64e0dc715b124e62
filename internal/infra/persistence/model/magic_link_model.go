package model

import (
	"time"

	"github.com/google/uuid"
)

// MagicLinkModel mirrors the 'magic_links' table. Only the bcrypt hash of the
// one-time secret is stored; the plain secret exists only in the emailed link.
type MagicLinkModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	Email      string    `gorm:"type:varchar(255);not null;index"`
	SecretHash string    `gorm:"type:varchar(255);not null"`
	ExpiresAt  time.Time `gorm:"not null"`
	ConsumedAt *time.Time
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (MagicLinkModel) TableName() string {
	return "magic_links"
}
