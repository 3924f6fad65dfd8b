package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dinnerclub/internal/model"
)

// RSVPRepository defines RSVP persistence operations. The capacity check
// needs the event row, an attending count, and the user's existing row read
// under one transaction, so the event lock lives here too.
type RSVPRepository interface {
	Save(ctx context.Context, rsvp *model.RSVP) error
	Find(ctx context.Context, eventID, userID uuid.UUID) (*model.RSVP, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]model.RSVP, error)
	CountAttending(ctx context.Context, eventID uuid.UUID) (int64, error)
	// FindEventForUpdate locks the parent event row so concurrent attending
	// transitions serialize on it.
	FindEventForUpdate(ctx context.Context, eventID uuid.UUID) (*model.Event, error)
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo RSVPRepository) error) error
}

type rsvpRepository struct {
	db *gorm.DB
}

// NewRSVPRepository creates a new RSVP repository.
func NewRSVPRepository(db *gorm.DB) RSVPRepository {
	return &rsvpRepository{db: db}
}

// Save creates the row or overwrites an existing one.
func (r *rsvpRepository) Save(ctx context.Context, rsvp *model.RSVP) error {
	return r.db.WithContext(ctx).Save(rsvp).Error
}

// Find returns the single RSVP row for (event, user).
func (r *rsvpRepository) Find(ctx context.Context, eventID, userID uuid.UUID) (*model.RSVP, error) {
	var rsvp model.RSVP
	if err := r.db.WithContext(ctx).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		First(&rsvp).Error; err != nil {
		return nil, err
	}
	return &rsvp, nil
}

// ListByEvent returns all RSVP rows for an event with user profiles preloaded.
func (r *rsvpRepository) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]model.RSVP, error) {
	var rsvps []model.RSVP
	if err := r.db.WithContext(ctx).Preload("User").
		Where("event_id = ?", eventID).
		Find(&rsvps).Error; err != nil {
		return nil, err
	}
	return rsvps, nil
}

// CountAttending counts rows with attending status for an event.
func (r *rsvpRepository) CountAttending(ctx context.Context, eventID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.RSVP{}).
		Where("event_id = ? AND status = ?", eventID, model.RSVPStatusAttending).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// FindEventForUpdate finds an event by ID with a row-level lock.
func (r *rsvpRepository) FindEventForUpdate(ctx context.Context, eventID uuid.UUID) (*model.Event, error) {
	var event model.Event
	if err := r.db.WithContext(ctx).Set("gorm:query_option", "FOR UPDATE").
		Where("id = ?", eventID).First(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// WithTransaction executes a function within a database transaction.
func (r *rsvpRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo RSVPRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := &rsvpRepository{db: tx}
		return fn(ctx, txRepo)
	})
}
