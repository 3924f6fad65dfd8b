package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WishlistRestaurant is a restaurant a user saved for later. Purely personal;
// no invariants beyond ownership.
type WishlistRestaurant struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:char(36);not null;index"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Address   string    `json:"address,omitempty" gorm:"size:512"`
	Cuisine   string    `json:"cuisine,omitempty" gorm:"size:100"`
	PlaceID   string    `json:"place_id,omitempty" gorm:"size:255"`
	ImageURL  string    `json:"image_url,omitempty" gorm:"size:512"`
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (w *WishlistRestaurant) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}
