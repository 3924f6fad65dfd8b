package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dinnerclub/internal/model"
	"dinnerclub/internal/repository"
)

// WishlistInput carries the fields of a saved restaurant.
type WishlistInput struct {
	Name     string
	Address  string
	Cuisine  string
	PlaceID  string
	ImageURL string
}

// WishlistService manages a user's saved restaurants.
type WishlistService interface {
	List(ctx context.Context, userID uuid.UUID) ([]model.WishlistRestaurant, error)
	Add(ctx context.Context, userID uuid.UUID, input WishlistInput) (*model.WishlistRestaurant, error)
	Remove(ctx context.Context, userID, itemID uuid.UUID) error
}

type wishlistService struct {
	repo repository.WishlistRepository
}

// NewWishlistService creates a new wishlist service.
func NewWishlistService(repo repository.WishlistRepository) WishlistService {
	return &wishlistService{repo: repo}
}

// List returns the user's saved restaurants, newest first.
func (s *wishlistService) List(ctx context.Context, userID uuid.UUID) ([]model.WishlistRestaurant, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Add saves a restaurant to the user's wishlist.
func (s *wishlistService) Add(ctx context.Context, userID uuid.UUID, input WishlistInput) (*model.WishlistRestaurant, error) {
	item := &model.WishlistRestaurant{
		UserID:   userID,
		Name:     input.Name,
		Address:  input.Address,
		Cuisine:  input.Cuisine,
		PlaceID:  input.PlaceID,
		ImageURL: input.ImageURL,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create wishlist item: %w", err)
	}
	return item, nil
}

// Remove deletes one of the user's saved restaurants. Removing another
// user's entry or a missing one is a silent no-op.
func (s *wishlistService) Remove(ctx context.Context, userID, itemID uuid.UUID) error {
	item, err := s.repo.FindByID(ctx, itemID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil
		}
		return fmt.Errorf("find wishlist item: %w", err)
	}
	if item.UserID != userID {
		return nil
	}
	return s.repo.Delete(ctx, itemID)
}
