package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dinnerclub/internal/errors"
	"dinnerclub/internal/model"
	"dinnerclub/internal/repository"
)

const (
	minPollOptions = 3
	maxPollOptions = 5
)

// OptionSummary aggregates one option's votes for display. TotalVotes counts
// distinct users who voted on the option at all; an explicit "no" and a
// missing vote count identically toward YesCount.
type OptionSummary struct {
	ID                   uuid.UUID `json:"id"`
	OptionDate           time.Time `json:"optionDate"`
	DisplayOrder         *int      `json:"order,omitempty"`
	YesCount             int       `json:"yesCount"`
	TotalVotes           int       `json:"totalVotes"`
	CurrentUserCanAttend bool      `json:"currentUserCanAttend"`
}

// PollResult is a poll with its options summary and derived flags, the shape
// every poll endpoint returns.
type PollResult struct {
	Poll            *model.DatePoll `json:"poll"`
	Options         []OptionSummary `json:"options"`
	IsExpired       bool            `json:"isExpired"`
	WinningOptionID *uuid.UUID      `json:"winningOptionId,omitempty"`
}

// DatePollService runs the per-club scheduling workflow: propose 3-5 dates,
// collect yes/no votes, compute a winner at close.
type DatePollService interface {
	Create(ctx context.Context, clubID, chooserID uuid.UUID, optionDates []string, title, restaurantName string) (*PollResult, error)
	Vote(ctx context.Context, pollID, userID uuid.UUID, optionIDs []uuid.UUID) error
	Close(ctx context.Context, pollID, actingUserID uuid.UUID) (*PollResult, error)
	Active(ctx context.Context, clubID, userID uuid.UUID) (*PollResult, error)
}

type datePollService struct {
	pollRepo       repository.DatePollRepository
	membershipRepo repository.MembershipRepository
}

// NewDatePollService creates a new date poll service.
func NewDatePollService(
	pollRepo repository.DatePollRepository,
	membershipRepo repository.MembershipRepository,
) DatePollService {
	return &datePollService{
		pollRepo:       pollRepo,
		membershipRepo: membershipRepo,
	}
}

// Create opens a new poll with 3-5 candidate dates, closing 24h from now.
// Only a live poll blocks creation: an expired-but-unclosed poll does not.
// The check and the insert run under a lock on the club row so concurrent
// creations cannot both slip past the check.
func (s *datePollService) Create(ctx context.Context, clubID, chooserID uuid.UUID, optionDates []string, title, restaurantName string) (*PollResult, error) {
	if err := s.requireMember(ctx, clubID, chooserID); err != nil {
		return nil, err
	}

	if len(optionDates) < minPollOptions || len(optionDates) > maxPollOptions {
		return nil, errors.ErrBadOptionCount
	}

	dates := make([]time.Time, 0, len(optionDates))
	for _, raw := range optionDates {
		parsed, err := parseOptionDate(raw)
		if err != nil {
			return nil, errors.ErrBadOptionDate
		}
		dates = append(dates, parsed)
	}

	now := time.Now()
	poll := &model.DatePoll{
		ClubID:         clubID,
		CreatedByID:    chooserID,
		Title:          title,
		RestaurantName: restaurantName,
		Status:         model.PollStatusOpen,
		ClosesAt:       now.Add(model.PollWindow),
	}
	options := make([]model.DatePollOption, len(dates))
	for i, date := range dates {
		order := i
		options[i] = model.DatePollOption{
			OptionDate:   date,
			DisplayOrder: &order,
		}
	}

	err := s.pollRepo.WithTransaction(ctx, func(ctx context.Context, txRepo repository.DatePollRepository) error {
		if _, err := txRepo.FindClubForUpdate(ctx, clubID); err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrClubNotFound
			}
			return err
		}
		if _, err := txRepo.FindLive(ctx, clubID, now); err == nil {
			return errors.ErrActivePoll
		} else if err != gorm.ErrRecordNotFound {
			return err
		}
		return txRepo.Create(ctx, poll, options)
	})
	if err != nil {
		return nil, err
	}

	return &PollResult{
		Poll:      poll,
		Options:   summarize(options, nil, chooserID),
		IsExpired: false,
	}, nil
}

// Vote fully replaces the user's stance across all options of the poll.
// Submitted option ids are recorded as "can attend"; every other option of
// the poll becomes an explicit "no" for this user, erasing prior yes votes.
// Ids not belonging to the poll are silently dropped.
func (s *datePollService) Vote(ctx context.Context, pollID, userID uuid.UUID, optionIDs []uuid.UUID) error {
	poll, err := s.pollRepo.FindByID(ctx, pollID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrPollNotFound
		}
		return fmt.Errorf("find poll: %w", err)
	}

	if err := s.requireMember(ctx, poll.ClubID, userID); err != nil {
		return err
	}

	if !poll.Live(time.Now()) {
		return errors.ErrPollClosed
	}

	options, err := s.pollRepo.Options(ctx, pollID)
	if err != nil {
		return fmt.Errorf("load options: %w", err)
	}

	submitted := make(map[uuid.UUID]bool, len(optionIDs))
	for _, id := range optionIDs {
		submitted[id] = true
	}

	votes := make([]model.DatePollVote, 0, len(options))
	for _, opt := range options {
		votes = append(votes, model.DatePollVote{
			PollID:    pollID,
			OptionID:  opt.ID,
			UserID:    userID,
			CanAttend: submitted[opt.ID],
		})
	}

	if err := s.pollRepo.ReplaceVotes(ctx, pollID, userID, votes); err != nil {
		return fmt.Errorf("replace votes: %w", err)
	}
	return nil
}

// Close transitions the poll to closed and returns the winner. Only the
// poll's creator or a club owner may close it. Closing an already-closed
// poll returns its final summary without rewriting who closed it.
func (s *datePollService) Close(ctx context.Context, pollID, actingUserID uuid.UUID) (*PollResult, error) {
	poll, err := s.pollRepo.FindByID(ctx, pollID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrPollNotFound
		}
		return nil, fmt.Errorf("find poll: %w", err)
	}

	if err := s.requireMember(ctx, poll.ClubID, actingUserID); err != nil {
		return nil, err
	}

	if poll.CreatedByID != actingUserID {
		owner, err := s.membershipRepo.IsOwner(ctx, poll.ClubID, actingUserID)
		if err != nil {
			return nil, fmt.Errorf("check owner role: %w", err)
		}
		if !owner {
			return nil, errors.ErrNotPollAuthority
		}
	}

	if poll.Status != model.PollStatusClosed {
		poll.Status = model.PollStatusClosed
		closedBy := actingUserID
		poll.ClosedByID = &closedBy
		if err := s.pollRepo.Update(ctx, poll); err != nil {
			return nil, fmt.Errorf("close poll: %w", err)
		}
	}

	summaries, err := s.loadSummaries(ctx, pollID, actingUserID)
	if err != nil {
		return nil, err
	}

	return &PollResult{
		Poll:            poll,
		Options:         summaries,
		IsExpired:       true,
		WinningOptionID: pickWinner(summaries),
	}, nil
}

// Active returns the club's most recent open poll with its summary and the
// derived expired flag, or nil when no open poll exists. Reading never
// closes an expired poll.
func (s *datePollService) Active(ctx context.Context, clubID, userID uuid.UUID) (*PollResult, error) {
	if err := s.requireMember(ctx, clubID, userID); err != nil {
		return nil, err
	}

	poll, err := s.pollRepo.FindOpen(ctx, clubID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("find open poll: %w", err)
	}

	summaries, err := s.loadSummaries(ctx, poll.ID, userID)
	if err != nil {
		return nil, err
	}

	return &PollResult{
		Poll:      poll,
		Options:   summaries,
		IsExpired: poll.Expired(time.Now()),
	}, nil
}

func (s *datePollService) loadSummaries(ctx context.Context, pollID, currentUserID uuid.UUID) ([]OptionSummary, error) {
	options, err := s.pollRepo.Options(ctx, pollID)
	if err != nil {
		return nil, fmt.Errorf("load options: %w", err)
	}
	votes, err := s.pollRepo.Votes(ctx, pollID)
	if err != nil {
		return nil, fmt.Errorf("load votes: %w", err)
	}
	return summarize(options, votes, currentUserID), nil
}

func (s *datePollService) requireMember(ctx context.Context, clubID, userID uuid.UUID) error {
	ok, err := s.membershipRepo.IsMember(ctx, clubID, userID)
	if err != nil {
		return fmt.Errorf("check membership: %w", err)
	}
	if !ok {
		return errors.ErrNotClubMember
	}
	return nil
}

// summarize aggregates votes per option. Ordering is stable for identical
// input: DisplayOrder ascending with nulls last, then OptionDate ascending,
// then option id ascending.
func summarize(options []model.DatePollOption, votes []model.DatePollVote, currentUserID uuid.UUID) []OptionSummary {
	yes := make(map[uuid.UUID]int, len(options))
	total := make(map[uuid.UUID]int, len(options))
	mine := make(map[uuid.UUID]bool, len(options))
	for _, v := range votes {
		total[v.OptionID]++
		if v.CanAttend {
			yes[v.OptionID]++
		}
		if v.UserID == currentUserID && v.CanAttend {
			mine[v.OptionID] = true
		}
	}

	summaries := make([]OptionSummary, 0, len(options))
	for _, opt := range options {
		summaries = append(summaries, OptionSummary{
			ID:                   opt.ID,
			OptionDate:           opt.OptionDate,
			DisplayOrder:         opt.DisplayOrder,
			YesCount:             yes[opt.ID],
			TotalVotes:           total[opt.ID],
			CurrentUserCanAttend: mine[opt.ID],
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		a, b := summaries[i], summaries[j]
		switch {
		case a.DisplayOrder != nil && b.DisplayOrder == nil:
			return true
		case a.DisplayOrder == nil && b.DisplayOrder != nil:
			return false
		case a.DisplayOrder != nil && b.DisplayOrder != nil && *a.DisplayOrder != *b.DisplayOrder:
			return *a.DisplayOrder < *b.DisplayOrder
		}
		if !a.OptionDate.Equal(b.OptionDate) {
			return a.OptionDate.Before(b.OptionDate)
		}
		return a.ID.String() < b.ID.String()
	})
	return summaries
}

// pickWinner returns the option with the most yes votes, nil when nothing
// got a single yes. Ties break to the earliest date, then to the smaller
// option id so the result is deterministic.
func pickWinner(summaries []OptionSummary) *uuid.UUID {
	var winner *OptionSummary
	for i := range summaries {
		opt := &summaries[i]
		if opt.YesCount == 0 {
			continue
		}
		switch {
		case winner == nil,
			opt.YesCount > winner.YesCount:
			winner = opt
		case opt.YesCount == winner.YesCount:
			if opt.OptionDate.Before(winner.OptionDate) ||
				(opt.OptionDate.Equal(winner.OptionDate) && opt.ID.String() < winner.ID.String()) {
				winner = opt
			}
		}
	}
	if winner == nil {
		return nil
	}
	id := winner.ID
	return &id
}

// parseOptionDate accepts plain dates and RFC3339 timestamps.
func parseOptionDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}
