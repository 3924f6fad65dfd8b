package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dinnerclub/internal/errors"
	"dinnerclub/internal/model"
	"dinnerclub/internal/repository"
)

// AttendeeResponse is one RSVP row joined with the member's display fields.
type AttendeeResponse struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Avatar string    `json:"avatar"`
	Status string    `json:"status"`
	RsvpAt time.Time `json:"rsvpAt"`
}

// RSVPService maintains authoritative attendance per event and enforces the
// seat-limit invariant.
type RSVPService interface {
	Submit(ctx context.Context, eventID, userID uuid.UUID, status string) (string, error)
	List(ctx context.Context, eventID, userID uuid.UUID) ([]AttendeeResponse, error)
	ForUser(ctx context.Context, eventID, userID uuid.UUID) (*model.RSVP, error)
}

type rsvpService struct {
	rsvpRepo       repository.RSVPRepository
	eventRepo      repository.EventRepository
	membershipRepo repository.MembershipRepository
}

// NewRSVPService creates a new RSVP service.
func NewRSVPService(
	rsvpRepo repository.RSVPRepository,
	eventRepo repository.EventRepository,
	membershipRepo repository.MembershipRepository,
) RSVPService {
	return &rsvpService{
		rsvpRepo:       rsvpRepo,
		eventRepo:      eventRepo,
		membershipRepo: membershipRepo,
	}
}

// Submit records or overwrites the user's RSVP for the event.
//
// The capacity check and the write run inside one transaction holding a
// row-level lock on the event, so two concurrent attending transitions
// serialize instead of both passing the count check. Only a *new* transition
// into attending is gated; an already-attending user re-affirming never
// fails, and non-attending transitions are always accepted.
func (s *rsvpService) Submit(ctx context.Context, eventID, userID uuid.UUID, status string) (string, error) {
	if !model.ValidRSVPStatus(status) {
		return "", errors.ErrInvalidRSVPStatus
	}

	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", errors.ErrEventNotFound
		}
		return "", fmt.Errorf("find event: %w", err)
	}

	if err := s.requireMember(ctx, event.ClubID, userID); err != nil {
		return "", err
	}

	err = s.rsvpRepo.WithTransaction(ctx, func(ctx context.Context, txRepo repository.RSVPRepository) error {
		// Re-read the event under lock; MaxSeats may have changed since the
		// unlocked read above.
		locked, err := txRepo.FindEventForUpdate(ctx, eventID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrEventNotFound
			}
			return err
		}

		existing, err := txRepo.Find(ctx, eventID, userID)
		if err != nil && err != gorm.ErrRecordNotFound {
			return err
		}

		if status == model.RSVPStatusAttending && locked.MaxSeats != nil {
			wasAlreadyAttending := existing != nil && existing.Status == model.RSVPStatusAttending
			if !wasAlreadyAttending {
				attending, err := txRepo.CountAttending(ctx, eventID)
				if err != nil {
					return err
				}
				if attending >= int64(*locked.MaxSeats) {
					return errors.ErrEventFull
				}
			}
		}

		now := time.Now()
		if existing != nil {
			existing.Status = status
			existing.RsvpAt = now
			return txRepo.Save(ctx, existing)
		}
		return txRepo.Save(ctx, &model.RSVP{
			EventID: eventID,
			UserID:  userID,
			Status:  status,
			RsvpAt:  now,
		})
	})
	if err != nil {
		return "", err
	}

	return status, nil
}

// List returns all RSVP rows for an event joined with member display fields.
// Callers compute the attending count from the rows.
func (s *rsvpService) List(ctx context.Context, eventID, userID uuid.UUID) ([]AttendeeResponse, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrEventNotFound
		}
		return nil, fmt.Errorf("find event: %w", err)
	}

	if err := s.requireMember(ctx, event.ClubID, userID); err != nil {
		return nil, err
	}

	rows, err := s.rsvpRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list rsvps: %w", err)
	}

	attendees := make([]AttendeeResponse, 0, len(rows))
	for _, row := range rows {
		attendees = append(attendees, AttendeeResponse{
			ID:     row.UserID,
			Name:   row.User.Name,
			Avatar: row.User.AvatarURL,
			Status: row.Status,
			RsvpAt: row.RsvpAt,
		})
	}
	return attendees, nil
}

// ForUser returns the requesting user's RSVP row for the event, or nil when
// they have not responded yet.
func (s *rsvpService) ForUser(ctx context.Context, eventID, userID uuid.UUID) (*model.RSVP, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrEventNotFound
		}
		return nil, fmt.Errorf("find event: %w", err)
	}

	if err := s.requireMember(ctx, event.ClubID, userID); err != nil {
		return nil, err
	}

	rsvp, err := s.rsvpRepo.Find(ctx, eventID, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("find rsvp: %w", err)
	}
	return rsvp, nil
}

func (s *rsvpService) requireMember(ctx context.Context, clubID, userID uuid.UUID) error {
	ok, err := s.membershipRepo.IsMember(ctx, clubID, userID)
	if err != nil {
		return fmt.Errorf("check membership: %w", err)
	}
	if !ok {
		return errors.ErrNotClubMember
	}
	return nil
}
