package model

import (
	"time"

	"github.com/google/uuid"
)

// EventModel mirrors the 'events' table. The organizer FK is nullable so
// the account-deletion cascade can detach it without touching the event.
type EventModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Location    string    `gorm:"type:varchar(255)"`
	ImageURL    string    `gorm:"type:text;not null"`
	StartAt     time.Time
	EndAt       time.Time
	Price       string     `gorm:"type:varchar(32)"`
	IsFree      bool       `gorm:"not null;default:false"`
	URL         string     `gorm:"type:text"`
	CategoryID  *uuid.UUID `gorm:"type:uuid;index"`
	OrganizerID *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt   time.Time  `gorm:"index"`
	UpdatedAt   time.Time

	Category  *CategoryModel `gorm:"foreignKey:CategoryID"`
	Organizer *AccountModel  `gorm:"foreignKey:OrganizerID"`
}

// TableName explicitly sets the table name for GORM.
func (EventModel) TableName() string {
	return "events"
}
