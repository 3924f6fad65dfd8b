package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"dinnerclub/internal/model"
)

// MockWishlistRepository is a mock implementation of WishlistRepository.
type MockWishlistRepository struct {
	mock.Mock
}

func (m *MockWishlistRepository) Create(ctx context.Context, item *model.WishlistRestaurant) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockWishlistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockWishlistRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.WishlistRestaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.WishlistRestaurant), args.Error(1)
}

func (m *MockWishlistRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.WishlistRestaurant, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.WishlistRestaurant), args.Error(1)
}

func TestWishlistService_Remove(t *testing.T) {
	userID := uuid.New()
	itemID := uuid.New()

	t.Run("own item is deleted", func(t *testing.T) {
		mockRepo := new(MockWishlistRepository)
		mockRepo.On("FindByID", mock.Anything, itemID).Return(&model.WishlistRestaurant{ID: itemID, UserID: userID}, nil)
		mockRepo.On("Delete", mock.Anything, itemID).Return(nil)

		service := NewWishlistService(mockRepo)
		err := service.Remove(context.Background(), userID, itemID)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("someone else's item is left alone", func(t *testing.T) {
		mockRepo := new(MockWishlistRepository)
		mockRepo.On("FindByID", mock.Anything, itemID).Return(&model.WishlistRestaurant{ID: itemID, UserID: uuid.New()}, nil)

		service := NewWishlistService(mockRepo)
		err := service.Remove(context.Background(), userID, itemID)

		assert.NoError(t, err)
		// No Delete expectation: foreign rows must not be touched.
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing item is a no-op", func(t *testing.T) {
		mockRepo := new(MockWishlistRepository)
		mockRepo.On("FindByID", mock.Anything, itemID).Return(nil, gorm.ErrRecordNotFound)

		service := NewWishlistService(mockRepo)
		err := service.Remove(context.Background(), userID, itemID)

		assert.NoError(t, err)
	})
}

func TestWishlistService_Add(t *testing.T) {
	userID := uuid.New()

	mockRepo := new(MockWishlistRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.WishlistRestaurant")).Return(nil)

	service := NewWishlistService(mockRepo)
	item, err := service.Add(context.Background(), userID, WishlistInput{
		Name:    "Taqueria El Sol",
		Cuisine: "Mexican",
	})

	assert.NoError(t, err)
	assert.Equal(t, userID, item.UserID)
	assert.Equal(t, "Taqueria El Sol", item.Name)
}
