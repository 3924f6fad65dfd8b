package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Date poll lifecycle states. A poll is "expired" when it is still open but
// its ClosesAt has passed. Expiry gates voting but never changes Status on
// its own; only an explicit close does.
const (
	PollStatusOpen   = "open"
	PollStatusClosed = "closed"
)

// PollWindow is how long voting stays open after creation.
const PollWindow = 24 * time.Hour

// DatePoll is a per-club mini-workflow for choosing a dinner date: the
// creator proposes 3-5 candidate dates, members vote yes/no per date, and
// closing the poll computes a winner.
type DatePoll struct {
	ID             uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	ClubID         uuid.UUID  `json:"club_id" gorm:"type:char(36);not null;index"`
	CreatedByID    uuid.UUID  `json:"created_by_id" gorm:"type:char(36);not null;index"`
	Title          string     `json:"title" gorm:"size:255"`
	RestaurantName string     `json:"restaurant_name,omitempty" gorm:"size:255"`
	Status         string     `json:"status" gorm:"size:16;not null;default:'open';index"`
	ClosesAt       time.Time  `json:"closes_at" gorm:"not null"`
	ClosedByID     *uuid.UUID `json:"closed_by_id,omitempty" gorm:"type:char(36)"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	// Relations
	Options []DatePollOption `json:"-" gorm:"foreignKey:PollID"`
}

// BeforeCreate sets UUID before creating the record.
func (p *DatePoll) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Expired reports whether the poll is open but past its voting window.
func (p *DatePoll) Expired(now time.Time) bool {
	return p.Status == PollStatusOpen && now.After(p.ClosesAt)
}

// Live reports whether the poll still accepts votes and blocks new polls.
func (p *DatePoll) Live(now time.Time) bool {
	return p.Status == PollStatusOpen && !now.After(p.ClosesAt)
}

// DatePollOption is one candidate date in a poll. Options are fixed at poll
// creation and immutable afterwards. DisplayOrder is a presentation hint.
type DatePollOption struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	PollID       uuid.UUID `json:"poll_id" gorm:"type:char(36);not null;index"`
	OptionDate   time.Time `json:"option_date" gorm:"not null"`
	DisplayOrder *int      `json:"order,omitempty" gorm:"column:display_order"`
	CreatedAt    time.Time `json:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (o *DatePollOption) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// DatePollVote is one user's stance on one option. A voting submission fully
// replaces the user's rows for the poll, writing an explicit row per option
// so that "voted no" and "never voted" stay distinguishable in turnout.
type DatePollVote struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	PollID    uuid.UUID `json:"poll_id" gorm:"type:char(36);not null;index"`
	OptionID  uuid.UUID `json:"option_id" gorm:"type:char(36);not null;uniqueIndex:idx_option_user"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:char(36);not null;uniqueIndex:idx_option_user"`
	CanAttend bool      `json:"can_attend" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (v *DatePollVote) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}
