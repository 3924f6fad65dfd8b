package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RSVP statuses.
const (
	RSVPStatusAttending = "attending"
	RSVPStatusDeclined  = "declined"
	RSVPStatusMaybe     = "maybe"
)

// RSVP is one user's attendance record for one event. At most one row exists
// per (event, user); submitting again overwrites the status and refreshes
// RsvpAt.
type RSVP struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	EventID   uuid.UUID `json:"event_id" gorm:"type:char(36);not null;uniqueIndex:idx_event_user"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:char(36);not null;uniqueIndex:idx_event_user"`
	Status    string    `json:"status" gorm:"size:16;not null;index"`
	RsvpAt    time.Time `json:"rsvp_at" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID"`
}

// BeforeCreate sets UUID before creating the record.
func (r *RSVP) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// ValidRSVPStatus reports whether s is one of the accepted RSVP statuses.
func ValidRSVPStatus(s string) bool {
	switch s {
	case RSVPStatusAttending, RSVPStatusDeclined, RSVPStatusMaybe:
		return true
	}
	return false
}
