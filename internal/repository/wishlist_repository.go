package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dinnerclub/internal/model"
)

// WishlistRepository defines saved-restaurant persistence operations.
type WishlistRepository interface {
	Create(ctx context.Context, item *model.WishlistRestaurant) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.WishlistRestaurant, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.WishlistRestaurant, error)
}

type wishlistRepository struct {
	db *gorm.DB
}

// NewWishlistRepository creates a new wishlist repository.
func NewWishlistRepository(db *gorm.DB) WishlistRepository {
	return &wishlistRepository{db: db}
}

// Create creates a new wishlist entry.
func (r *wishlistRepository) Create(ctx context.Context, item *model.WishlistRestaurant) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// Delete removes a wishlist entry.
func (r *wishlistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.WishlistRestaurant{}).Error
}

// FindByID finds a wishlist entry by ID.
func (r *wishlistRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.WishlistRestaurant, error) {
	var item model.WishlistRestaurant
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// ListByUser returns all wishlist entries of a user, newest first.
func (r *wishlistRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.WishlistRestaurant, error) {
	var items []model.WishlistRestaurant
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
