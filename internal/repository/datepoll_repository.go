package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dinnerclub/internal/model"
)

// DatePollRepository defines date poll persistence operations, covering the
// poll row, its options and its votes. Creation locks the club row so the
// single-live-poll check and the insert happen atomically.
type DatePollRepository interface {
	Create(ctx context.Context, poll *model.DatePoll, options []model.DatePollOption) error
	Update(ctx context.Context, poll *model.DatePoll) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.DatePoll, error)
	// FindLive returns the most recent open poll whose window has not elapsed.
	FindLive(ctx context.Context, clubID uuid.UUID, now time.Time) (*model.DatePoll, error)
	// FindOpen returns the most recent open poll regardless of expiry.
	FindOpen(ctx context.Context, clubID uuid.UUID) (*model.DatePoll, error)
	Options(ctx context.Context, pollID uuid.UUID) ([]model.DatePollOption, error)
	Votes(ctx context.Context, pollID uuid.UUID) ([]model.DatePollVote, error)
	// ReplaceVotes swaps out one user's entire vote set for a poll.
	ReplaceVotes(ctx context.Context, pollID, userID uuid.UUID, votes []model.DatePollVote) error
	// FindClubForUpdate locks the club row for the single-live-poll check.
	FindClubForUpdate(ctx context.Context, clubID uuid.UUID) (*model.Club, error)
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo DatePollRepository) error) error
}

type datePollRepository struct {
	db *gorm.DB
}

// NewDatePollRepository creates a new date poll repository.
func NewDatePollRepository(db *gorm.DB) DatePollRepository {
	return &datePollRepository{db: db}
}

// Create persists a poll together with its option rows.
func (r *datePollRepository) Create(ctx context.Context, poll *model.DatePoll, options []model.DatePollOption) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(poll).Error; err != nil {
			return err
		}
		for i := range options {
			options[i].PollID = poll.ID
		}
		return tx.Create(&options).Error
	})
}

// Update updates an existing poll.
func (r *datePollRepository) Update(ctx context.Context, poll *model.DatePoll) error {
	return r.db.WithContext(ctx).Save(poll).Error
}

// FindByID finds a poll by ID.
func (r *datePollRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.DatePoll, error) {
	var poll model.DatePoll
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&poll).Error; err != nil {
		return nil, err
	}
	return &poll, nil
}

// FindLive returns the latest open, unexpired poll for a club.
func (r *datePollRepository) FindLive(ctx context.Context, clubID uuid.UUID, now time.Time) (*model.DatePoll, error) {
	var poll model.DatePoll
	if err := r.db.WithContext(ctx).
		Where("club_id = ? AND status = ? AND closes_at >= ?", clubID, model.PollStatusOpen, now).
		Order("created_at desc").
		First(&poll).Error; err != nil {
		return nil, err
	}
	return &poll, nil
}

// FindOpen returns the latest open poll for a club, expired or not.
func (r *datePollRepository) FindOpen(ctx context.Context, clubID uuid.UUID) (*model.DatePoll, error) {
	var poll model.DatePoll
	if err := r.db.WithContext(ctx).
		Where("club_id = ? AND status = ?", clubID, model.PollStatusOpen).
		Order("created_at desc").
		First(&poll).Error; err != nil {
		return nil, err
	}
	return &poll, nil
}

// Options returns a poll's option rows.
func (r *datePollRepository) Options(ctx context.Context, pollID uuid.UUID) ([]model.DatePollOption, error) {
	var options []model.DatePollOption
	if err := r.db.WithContext(ctx).
		Where("poll_id = ?", pollID).
		Find(&options).Error; err != nil {
		return nil, err
	}
	return options, nil
}

// Votes returns all vote rows for a poll.
func (r *datePollRepository) Votes(ctx context.Context, pollID uuid.UUID) ([]model.DatePollVote, error) {
	var votes []model.DatePollVote
	if err := r.db.WithContext(ctx).
		Where("poll_id = ?", pollID).
		Find(&votes).Error; err != nil {
		return nil, err
	}
	return votes, nil
}

// ReplaceVotes deletes the user's existing rows for the poll and inserts the
// new set in one transaction.
func (r *datePollRepository) ReplaceVotes(ctx context.Context, pollID, userID uuid.UUID, votes []model.DatePollVote) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("poll_id = ? AND user_id = ?", pollID, userID).
			Delete(&model.DatePollVote{}).Error; err != nil {
			return err
		}
		if len(votes) == 0 {
			return nil
		}
		return tx.Create(&votes).Error
	})
}

// FindClubForUpdate finds a club by ID with a row-level lock.
func (r *datePollRepository) FindClubForUpdate(ctx context.Context, clubID uuid.UUID) (*model.Club, error) {
	var club model.Club
	if err := r.db.WithContext(ctx).Set("gorm:query_option", "FOR UPDATE").
		Where("id = ?", clubID).First(&club).Error; err != nil {
		return nil, err
	}
	return &club, nil
}

// WithTransaction executes a function within a database transaction.
func (r *datePollRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo DatePollRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := &datePollRepository{db: tx}
		return fn(ctx, txRepo)
	})
}
