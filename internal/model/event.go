package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Stored event workflow statuses, set by user action. Whether an event is
// upcoming or past is a separate derived axis computed from EventDate at
// query time.
const (
	EventStatusPending   = "pending"
	EventStatusConfirmed = "confirmed"
	EventStatusPast      = "past"
)

// Event is a planned dinner at a restaurant, scoped to one club. PickerID is
// the member who proposed it and holds elevated edit rights alongside club
// owners. MaxSeats nil means unbounded attendance.
type Event struct {
	ID             uuid.UUID        `json:"id" gorm:"type:char(36);primaryKey"`
	ClubID         uuid.UUID        `json:"club_id" gorm:"type:char(36);not null;index"`
	PickerID       uuid.UUID        `json:"picker_id" gorm:"type:char(36);not null;index"`
	RestaurantName string           `json:"restaurant_name" gorm:"size:255;not null"`
	Cuisine        string           `json:"cuisine" gorm:"size:100"`
	EventDate      time.Time        `json:"event_date" gorm:"not null;index"`
	Location       string           `json:"location,omitempty" gorm:"size:512"`
	Notes          string           `json:"notes,omitempty" gorm:"type:text"`
	MaxSeats       *uint            `json:"max_seats,omitempty"`
	CostPerPerson  *decimal.Decimal `json:"cost_per_person,omitempty" gorm:"type:decimal(10,2)"`
	Status         string           `json:"status" gorm:"size:16;not null;default:'pending';index"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
	DeletedAt      gorm.DeletedAt   `json:"-" gorm:"index"`
}

// BeforeCreate sets UUID before creating the record.
func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
