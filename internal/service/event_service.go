package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"dinnerclub/internal/errors"
	"dinnerclub/internal/model"
	"dinnerclub/internal/repository"
)

// EventInput carries the mutable fields of an event. Nil pointers on update
// mean "leave unchanged".
type EventInput struct {
	RestaurantName string
	Cuisine        string
	EventDate      time.Time
	Location       string
	Notes          string
	MaxSeats       *uint
	CostPerPerson  *decimal.Decimal
	Status         string
}

// EventService handles dinner event CRUD. The member who creates an event
// becomes its picker; only the picker or a club owner may edit or delete it.
type EventService interface {
	Create(ctx context.Context, clubID, userID uuid.UUID, input EventInput) (*model.Event, error)
	Get(ctx context.Context, eventID, userID uuid.UUID) (*model.Event, error)
	Update(ctx context.Context, eventID, userID uuid.UUID, input EventInput) (*model.Event, error)
	Delete(ctx context.Context, eventID, userID uuid.UUID) error
	ListByClub(ctx context.Context, clubID, userID uuid.UUID) (upcoming, past []model.Event, err error)
}

type eventService struct {
	eventRepo      repository.EventRepository
	membershipRepo repository.MembershipRepository
}

// NewEventService creates a new event service.
func NewEventService(eventRepo repository.EventRepository, membershipRepo repository.MembershipRepository) EventService {
	return &eventService{
		eventRepo:      eventRepo,
		membershipRepo: membershipRepo,
	}
}

// Create creates an event in the club; the creator becomes the picker.
func (s *eventService) Create(ctx context.Context, clubID, userID uuid.UUID, input EventInput) (*model.Event, error) {
	if err := s.requireMember(ctx, clubID, userID); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = model.EventStatusPending
	}

	event := &model.Event{
		ClubID:         clubID,
		PickerID:       userID,
		RestaurantName: input.RestaurantName,
		Cuisine:        input.Cuisine,
		EventDate:      input.EventDate,
		Location:       input.Location,
		Notes:          input.Notes,
		MaxSeats:       input.MaxSeats,
		CostPerPerson:  input.CostPerPerson,
		Status:         status,
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

// Get returns an event to one of the club's members.
func (s *eventService) Get(ctx context.Context, eventID, userID uuid.UUID) (*model.Event, error) {
	event, err := s.findEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if err := s.requireMember(ctx, event.ClubID, userID); err != nil {
		return nil, err
	}
	return event, nil
}

// Update applies changes; picker or club owner only.
func (s *eventService) Update(ctx context.Context, eventID, userID uuid.UUID, input EventInput) (*model.Event, error) {
	event, err := s.findEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if err := s.requirePickerOrOwner(ctx, event, userID); err != nil {
		return nil, err
	}

	if input.RestaurantName != "" {
		event.RestaurantName = input.RestaurantName
	}
	if input.Cuisine != "" {
		event.Cuisine = input.Cuisine
	}
	if !input.EventDate.IsZero() {
		event.EventDate = input.EventDate
	}
	if input.Location != "" {
		event.Location = input.Location
	}
	if input.Notes != "" {
		event.Notes = input.Notes
	}
	if input.MaxSeats != nil {
		event.MaxSeats = input.MaxSeats
	}
	if input.CostPerPerson != nil {
		event.CostPerPerson = input.CostPerPerson
	}
	switch input.Status {
	case model.EventStatusPending, model.EventStatusConfirmed, model.EventStatusPast:
		event.Status = input.Status
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}
	return event, nil
}

// Delete removes an event; picker or club owner only.
func (s *eventService) Delete(ctx context.Context, eventID, userID uuid.UUID) error {
	event, err := s.findEvent(ctx, eventID)
	if err != nil {
		return err
	}
	if err := s.requirePickerOrOwner(ctx, event, userID); err != nil {
		return err
	}
	return s.eventRepo.Delete(ctx, eventID)
}

// ListByClub splits the club's events at the start of the current day. The
// split is derived from EventDate alone, independent of the stored Status.
func (s *eventService) ListByClub(ctx context.Context, clubID, userID uuid.UUID) (upcoming, past []model.Event, err error) {
	if err := s.requireMember(ctx, clubID, userID); err != nil {
		return nil, nil, err
	}
	return s.eventRepo.ListByClub(ctx, clubID, startOfDay(time.Now()))
}

func (s *eventService) findEvent(ctx context.Context, eventID uuid.UUID) (*model.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrEventNotFound
		}
		return nil, fmt.Errorf("find event: %w", err)
	}
	return event, nil
}

func (s *eventService) requireMember(ctx context.Context, clubID, userID uuid.UUID) error {
	ok, err := s.membershipRepo.IsMember(ctx, clubID, userID)
	if err != nil {
		return fmt.Errorf("check membership: %w", err)
	}
	if !ok {
		return errors.ErrNotClubMember
	}
	return nil
}

func (s *eventService) requirePickerOrOwner(ctx context.Context, event *model.Event, userID uuid.UUID) error {
	if err := s.requireMember(ctx, event.ClubID, userID); err != nil {
		return err
	}
	if event.PickerID == userID {
		return nil
	}
	owner, err := s.membershipRepo.IsOwner(ctx, event.ClubID, userID)
	if err != nil {
		return fmt.Errorf("check owner role: %w", err)
	}
	if !owner {
		return errors.ErrNotEventPicker
	}
	return nil
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
