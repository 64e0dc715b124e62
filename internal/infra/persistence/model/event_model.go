// Package model contains the GORM persistence models mirroring the gateway schema.
package model

import (
	"time"

	"github.com/google/uuid"
)

// EventModel mirrors the 'events' table of the schedule gateway.
type EventModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title       string    `gorm:"type:varchar(255);not null"`
	StartAt     time.Time `gorm:"not null;index"`
	EndAt       time.Time `gorm:"not null"`
	Track       string    `gorm:"type:varchar(50);not null;index"`
	Venue       string    `gorm:"type:varchar(255)"`
	Description string    `gorm:"type:text"`
	SpeakerIDs  []string  `gorm:"type:jsonb;serializer:json"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (EventModel) TableName() string {
	return "events"
}
