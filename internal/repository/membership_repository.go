package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dinnerclub/internal/model"
)

// MembershipRepository defines membership persistence operations. These are
// the authorization primitives every write path depends on.
type MembershipRepository interface {
	Create(ctx context.Context, membership *model.Membership) error
	Delete(ctx context.Context, clubID, userID uuid.UUID) error
	Find(ctx context.Context, clubID, userID uuid.UUID) (*model.Membership, error)
	IsMember(ctx context.Context, clubID, userID uuid.UUID) (bool, error)
	IsOwner(ctx context.Context, clubID, userID uuid.UUID) (bool, error)
	ListByClub(ctx context.Context, clubID uuid.UUID) ([]model.Membership, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Membership, error)
}

type membershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository creates a new membership repository.
func NewMembershipRepository(db *gorm.DB) MembershipRepository {
	return &membershipRepository{db: db}
}

// Create creates a new membership.
func (r *membershipRepository) Create(ctx context.Context, membership *model.Membership) error {
	return r.db.WithContext(ctx).Create(membership).Error
}

// Delete removes a membership row.
func (r *membershipRepository) Delete(ctx context.Context, clubID, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("club_id = ? AND user_id = ?", clubID, userID).
		Delete(&model.Membership{}).Error
}

// Find returns the membership row for (club, user).
func (r *membershipRepository) Find(ctx context.Context, clubID, userID uuid.UUID) (*model.Membership, error) {
	var membership model.Membership
	if err := r.db.WithContext(ctx).
		Where("club_id = ? AND user_id = ?", clubID, userID).
		First(&membership).Error; err != nil {
		return nil, err
	}
	return &membership, nil
}

// IsMember reports whether the user belongs to the club.
func (r *membershipRepository) IsMember(ctx context.Context, clubID, userID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Membership{}).
		Where("club_id = ? AND user_id = ?", clubID, userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// IsOwner reports whether the user holds the owner role in the club.
func (r *membershipRepository) IsOwner(ctx context.Context, clubID, userID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Membership{}).
		Where("club_id = ? AND user_id = ? AND role = ?", clubID, userID, model.RoleOwner).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListByClub returns all memberships of a club with user profiles preloaded.
func (r *membershipRepository) ListByClub(ctx context.Context, clubID uuid.UUID) ([]model.Membership, error) {
	var memberships []model.Membership
	if err := r.db.WithContext(ctx).Preload("User").
		Where("club_id = ?", clubID).
		Find(&memberships).Error; err != nil {
		return nil, err
	}
	return memberships, nil
}

// ListByUser returns all memberships of a user.
func (r *membershipRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Membership, error) {
	var memberships []model.Membership
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&memberships).Error; err != nil {
		return nil, err
	}
	return memberships, nil
}
