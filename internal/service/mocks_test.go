package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"dinnerclub/internal/model"
	"dinnerclub/internal/repository"
)

// Shared mock repositories for the service tests in this package.

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockClubRepository is a mock implementation of ClubRepository.
type MockClubRepository struct {
	mock.Mock
}

func (m *MockClubRepository) Create(ctx context.Context, club *model.Club) error {
	args := m.Called(ctx, club)
	return args.Error(0)
}

func (m *MockClubRepository) Update(ctx context.Context, club *model.Club) error {
	args := m.Called(ctx, club)
	return args.Error(0)
}

func (m *MockClubRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Club, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Club), args.Error(1)
}

func (m *MockClubRepository) FindByJoinCode(ctx context.Context, code string) (*model.Club, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Club), args.Error(1)
}

// MockMembershipRepository is a mock implementation of MembershipRepository.
type MockMembershipRepository struct {
	mock.Mock
}

func (m *MockMembershipRepository) Create(ctx context.Context, membership *model.Membership) error {
	args := m.Called(ctx, membership)
	return args.Error(0)
}

func (m *MockMembershipRepository) Delete(ctx context.Context, clubID, userID uuid.UUID) error {
	args := m.Called(ctx, clubID, userID)
	return args.Error(0)
}

func (m *MockMembershipRepository) Find(ctx context.Context, clubID, userID uuid.UUID) (*model.Membership, error) {
	args := m.Called(ctx, clubID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Membership), args.Error(1)
}

func (m *MockMembershipRepository) IsMember(ctx context.Context, clubID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, clubID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockMembershipRepository) IsOwner(ctx context.Context, clubID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, clubID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockMembershipRepository) ListByClub(ctx context.Context, clubID uuid.UUID) ([]model.Membership, error) {
	args := m.Called(ctx, clubID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Membership), args.Error(1)
}

func (m *MockMembershipRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Membership, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Membership), args.Error(1)
}

// MockEventRepository is a mock implementation of EventRepository.
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) Create(ctx context.Context, event *model.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) Update(ctx context.Context, event *model.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEventRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *MockEventRepository) ListByClub(ctx context.Context, clubID uuid.UUID, cutoff time.Time) (upcoming, past []model.Event, err error) {
	args := m.Called(ctx, clubID, cutoff)
	if args.Get(0) != nil {
		upcoming = args.Get(0).([]model.Event)
	}
	if args.Get(1) != nil {
		past = args.Get(1).([]model.Event)
	}
	return upcoming, past, args.Error(2)
}

// MockRSVPRepository is a mock implementation of RSVPRepository. Its
// WithTransaction runs the callback against the mock itself so in-transaction
// expectations are set on the same object.
type MockRSVPRepository struct {
	mock.Mock
}

func (m *MockRSVPRepository) Save(ctx context.Context, rsvp *model.RSVP) error {
	args := m.Called(ctx, rsvp)
	return args.Error(0)
}

func (m *MockRSVPRepository) Find(ctx context.Context, eventID, userID uuid.UUID) (*model.RSVP, error) {
	args := m.Called(ctx, eventID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RSVP), args.Error(1)
}

func (m *MockRSVPRepository) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]model.RSVP, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.RSVP), args.Error(1)
}

func (m *MockRSVPRepository) CountAttending(ctx context.Context, eventID uuid.UUID) (int64, error) {
	args := m.Called(ctx, eventID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRSVPRepository) FindEventForUpdate(ctx context.Context, eventID uuid.UUID) (*model.Event, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *MockRSVPRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo repository.RSVPRepository) error) error {
	return fn(ctx, m)
}

// MockDatePollRepository is a mock implementation of DatePollRepository.
// WithTransaction runs the callback against the mock itself.
type MockDatePollRepository struct {
	mock.Mock
}

func (m *MockDatePollRepository) Create(ctx context.Context, poll *model.DatePoll, options []model.DatePollOption) error {
	args := m.Called(ctx, poll, options)
	return args.Error(0)
}

func (m *MockDatePollRepository) Update(ctx context.Context, poll *model.DatePoll) error {
	args := m.Called(ctx, poll)
	return args.Error(0)
}

func (m *MockDatePollRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.DatePoll, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DatePoll), args.Error(1)
}

func (m *MockDatePollRepository) FindLive(ctx context.Context, clubID uuid.UUID, now time.Time) (*model.DatePoll, error) {
	args := m.Called(ctx, clubID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DatePoll), args.Error(1)
}

func (m *MockDatePollRepository) FindOpen(ctx context.Context, clubID uuid.UUID) (*model.DatePoll, error) {
	args := m.Called(ctx, clubID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DatePoll), args.Error(1)
}

func (m *MockDatePollRepository) Options(ctx context.Context, pollID uuid.UUID) ([]model.DatePollOption, error) {
	args := m.Called(ctx, pollID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DatePollOption), args.Error(1)
}

func (m *MockDatePollRepository) Votes(ctx context.Context, pollID uuid.UUID) ([]model.DatePollVote, error) {
	args := m.Called(ctx, pollID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DatePollVote), args.Error(1)
}

func (m *MockDatePollRepository) ReplaceVotes(ctx context.Context, pollID, userID uuid.UUID, votes []model.DatePollVote) error {
	args := m.Called(ctx, pollID, userID, votes)
	return args.Error(0)
}

func (m *MockDatePollRepository) FindClubForUpdate(ctx context.Context, clubID uuid.UUID) (*model.Club, error) {
	args := m.Called(ctx, clubID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Club), args.Error(1)
}

func (m *MockDatePollRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo repository.DatePollRepository) error) error {
	return fn(ctx, m)
}

// MockTokenStore is a mock implementation of auth.TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) StoreRefreshToken(ctx context.Context, tokenID string, userID uuid.UUID, email string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, userID, email, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) GetRefreshToken(ctx context.Context, tokenID string) (uuid.UUID, string, error) {
	args := m.Called(ctx, tokenID)
	return args.Get(0).(uuid.UUID), args.String(1), args.Error(2)
}

func (m *MockTokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

func (m *MockTokenStore) BlacklistAccessToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) IsAccessTokenBlacklisted(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTokenStore) StoreVerificationToken(ctx context.Context, token string, userID uuid.UUID) error {
	args := m.Called(ctx, token, userID)
	return args.Error(0)
}

func (m *MockTokenStore) ConsumeVerificationToken(ctx context.Context, token string) (uuid.UUID, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(uuid.UUID), args.Error(1)
}
