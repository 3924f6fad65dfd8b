package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Club privacy settings.
const (
	ClubPrivacyPublic  = "public"
	ClubPrivacyPrivate = "private"
)

// Membership roles within a club.
const (
	RoleOwner  = "owner"
	RoleMember = "member"
)

// Club is a named group of members that schedules dinners together.
// JoinCode is generated lazily the first time someone asks for it; a club
// carries exactly one active code at a time.
type Club struct {
	ID          uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	Name        string         `json:"name" gorm:"size:255;not null;index"`
	Privacy     string         `json:"privacy" gorm:"size:16;not null;default:'private'"`
	JoinCode    *string        `json:"join_code,omitempty" gorm:"size:8;uniqueIndex"`
	CreatedByID uuid.UUID      `json:"created_by_id" gorm:"type:char(36);not null;index"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Memberships []Membership `json:"-" gorm:"foreignKey:ClubID"`
}

// BeforeCreate sets UUID before creating the record.
func (c *Club) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// Membership links a user to a club with a role. One row per (club, user).
type Membership struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	ClubID    uuid.UUID `json:"club_id" gorm:"type:char(36);not null;uniqueIndex:idx_club_user"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:char(36);not null;uniqueIndex:idx_club_user"`
	Role      string    `json:"role" gorm:"size:16;not null;default:'member';index"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID"`
}

// BeforeCreate sets UUID before creating the record.
func (m *Membership) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
