package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dinnerclub/internal/model"
)

// ClubRepository defines club persistence operations.
type ClubRepository interface {
	Create(ctx context.Context, club *model.Club) error
	Update(ctx context.Context, club *model.Club) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Club, error)
	FindByJoinCode(ctx context.Context, code string) (*model.Club, error)
}

type clubRepository struct {
	db *gorm.DB
}

// NewClubRepository creates a new club repository.
func NewClubRepository(db *gorm.DB) ClubRepository {
	return &clubRepository{db: db}
}

// Create creates a new club.
func (r *clubRepository) Create(ctx context.Context, club *model.Club) error {
	return r.db.WithContext(ctx).Create(club).Error
}

// Update updates an existing club.
func (r *clubRepository) Update(ctx context.Context, club *model.Club) error {
	return r.db.WithContext(ctx).Save(club).Error
}

// FindByID finds a club by ID.
func (r *clubRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Club, error) {
	var club model.Club
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&club).Error; err != nil {
		return nil, err
	}
	return &club, nil
}

// FindByJoinCode finds a club by its join code. Codes are stored uppercase;
// callers normalize before lookup.
func (r *clubRepository) FindByJoinCode(ctx context.Context, code string) (*model.Club, error) {
	var club model.Club
	if err := r.db.WithContext(ctx).Where("join_code = ?", code).First(&club).Error; err != nil {
		return nil, err
	}
	return &club, nil
}
