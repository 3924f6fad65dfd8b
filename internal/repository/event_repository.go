package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dinnerclub/internal/model"
)

// EventRepository defines event persistence operations.
type EventRepository interface {
	Create(ctx context.Context, event *model.Event) error
	Update(ctx context.Context, event *model.Event) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Event, error)
	// ListByClub splits a club's events around the cutoff instant: upcoming
	// holds events on or after it (ascending), past the rest (descending).
	ListByClub(ctx context.Context, clubID uuid.UUID, cutoff time.Time) (upcoming, past []model.Event, err error)
}

type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new event repository.
func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

// Create creates a new event.
func (r *eventRepository) Create(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

// Update updates an existing event.
func (r *eventRepository) Update(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).Save(event).Error
}

// Delete soft-deletes an event.
func (r *eventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Event{}).Error
}

// FindByID finds an event by ID.
func (r *eventRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	var event model.Event
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// ListByClub returns a club's events split into upcoming and past.
func (r *eventRepository) ListByClub(ctx context.Context, clubID uuid.UUID, cutoff time.Time) (upcoming, past []model.Event, err error) {
	if err = r.db.WithContext(ctx).
		Where("club_id = ? AND event_date >= ?", clubID, cutoff).
		Order("event_date asc").
		Find(&upcoming).Error; err != nil {
		return nil, nil, err
	}
	if err = r.db.WithContext(ctx).
		Where("club_id = ? AND event_date < ?", clubID, cutoff).
		Order("event_date desc").
		Find(&past).Error; err != nil {
		return nil, nil, err
	}
	return upcoming, past, nil
}
