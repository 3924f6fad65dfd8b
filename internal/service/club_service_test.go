package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"dinnerclub/internal/errors"
	"dinnerclub/internal/model"
)

func TestClubService_Create(t *testing.T) {
	creatorID := uuid.New()

	mockClub := new(MockClubRepository)
	mockMembership := new(MockMembershipRepository)

	mockClub.On("Create", mock.Anything, mock.AnythingOfType("*model.Club")).Return(nil)

	var membership *model.Membership
	mockMembership.On("Create", mock.Anything, mock.AnythingOfType("*model.Membership")).Run(func(args mock.Arguments) {
		membership = args.Get(1).(*model.Membership)
	}).Return(nil)

	service := NewClubService(mockClub, mockMembership)
	club, err := service.Create(context.Background(), "Thursday Supper Club", model.ClubPrivacyPrivate, creatorID)

	assert.NoError(t, err)
	assert.NotNil(t, club)
	assert.Equal(t, creatorID, club.CreatedByID)
	assert.NotNil(t, membership)
	assert.Equal(t, creatorID, membership.UserID)
	assert.Equal(t, model.RoleOwner, membership.Role)
	mockClub.AssertExpectations(t)
	mockMembership.AssertExpectations(t)
}

func TestClubService_Create_UnknownPrivacyDefaultsToPrivate(t *testing.T) {
	mockClub := new(MockClubRepository)
	mockMembership := new(MockMembershipRepository)

	mockClub.On("Create", mock.Anything, mock.AnythingOfType("*model.Club")).Return(nil)
	mockMembership.On("Create", mock.Anything, mock.AnythingOfType("*model.Membership")).Return(nil)

	service := NewClubService(mockClub, mockMembership)
	club, err := service.Create(context.Background(), "Dim Sum Crew", "secretive", uuid.New())

	assert.NoError(t, err)
	assert.Equal(t, model.ClubPrivacyPrivate, club.Privacy)
}

func TestClubService_JoinCode(t *testing.T) {
	clubID := uuid.New()
	userID := uuid.New()

	t.Run("existing code is returned unchanged", func(t *testing.T) {
		code := "XKCD42"
		mockClub := new(MockClubRepository)
		mockMembership := new(MockMembershipRepository)

		mockClub.On("FindByID", mock.Anything, clubID).Return(&model.Club{ID: clubID, JoinCode: &code}, nil)
		mockMembership.On("IsMember", mock.Anything, clubID, userID).Return(true, nil)

		service := NewClubService(mockClub, mockMembership)
		got, err := service.JoinCode(context.Background(), clubID, userID)

		assert.NoError(t, err)
		assert.Equal(t, code, got)
	})

	t.Run("code is generated lazily and stored", func(t *testing.T) {
		mockClub := new(MockClubRepository)
		mockMembership := new(MockMembershipRepository)

		club := &model.Club{ID: clubID}
		mockClub.On("FindByID", mock.Anything, clubID).Return(club, nil)
		mockMembership.On("IsMember", mock.Anything, clubID, userID).Return(true, nil)
		mockClub.On("FindByJoinCode", mock.Anything, mock.AnythingOfType("string")).Return(nil, gorm.ErrRecordNotFound)
		mockClub.On("Update", mock.Anything, club).Return(nil)

		service := NewClubService(mockClub, mockMembership)
		got, err := service.JoinCode(context.Background(), clubID, userID)

		assert.NoError(t, err)
		assert.Len(t, got, 6)
		for _, ch := range got {
			assert.Contains(t, joinCodeAlphabet, string(ch))
		}
		assert.NotNil(t, club.JoinCode)
		assert.Equal(t, got, *club.JoinCode)
	})

	t.Run("non-member cannot read the code", func(t *testing.T) {
		mockClub := new(MockClubRepository)
		mockMembership := new(MockMembershipRepository)

		mockClub.On("FindByID", mock.Anything, clubID).Return(&model.Club{ID: clubID}, nil)
		mockMembership.On("IsMember", mock.Anything, clubID, userID).Return(false, nil)

		service := NewClubService(mockClub, mockMembership)
		_, err := service.JoinCode(context.Background(), clubID, userID)

		assert.Equal(t, errors.ErrNotClubMember, err)
	})
}

func TestClubService_Join(t *testing.T) {
	clubID := uuid.New()
	userID := uuid.New()
	code := "TASTY7"
	club := &model.Club{ID: clubID, JoinCode: &code}

	t.Run("code is matched case-insensitively", func(t *testing.T) {
		mockClub := new(MockClubRepository)
		mockMembership := new(MockMembershipRepository)

		mockClub.On("FindByJoinCode", mock.Anything, "TASTY7").Return(club, nil)
		mockMembership.On("IsMember", mock.Anything, clubID, userID).Return(false, nil)

		var membership *model.Membership
		mockMembership.On("Create", mock.Anything, mock.AnythingOfType("*model.Membership")).Run(func(args mock.Arguments) {
			membership = args.Get(1).(*model.Membership)
		}).Return(nil)

		service := NewClubService(mockClub, mockMembership)
		got, err := service.Join(context.Background(), "  tasty7 ", userID)

		assert.NoError(t, err)
		assert.Equal(t, clubID, got.ID)
		assert.Equal(t, model.RoleMember, membership.Role)
		mockClub.AssertExpectations(t)
	})

	t.Run("joining twice is a no-op", func(t *testing.T) {
		mockClub := new(MockClubRepository)
		mockMembership := new(MockMembershipRepository)

		mockClub.On("FindByJoinCode", mock.Anything, "TASTY7").Return(club, nil)
		mockMembership.On("IsMember", mock.Anything, clubID, userID).Return(true, nil)

		service := NewClubService(mockClub, mockMembership)
		got, err := service.Join(context.Background(), code, userID)

		assert.NoError(t, err)
		assert.Equal(t, clubID, got.ID)
		// No Create expectation: the existing membership must be left alone.
		mockMembership.AssertExpectations(t)
	})

	t.Run("unknown code is rejected", func(t *testing.T) {
		mockClub := new(MockClubRepository)
		mockMembership := new(MockMembershipRepository)

		mockClub.On("FindByJoinCode", mock.Anything, "NOSUCH").Return(nil, gorm.ErrRecordNotFound)

		service := NewClubService(mockClub, mockMembership)
		_, err := service.Join(context.Background(), "nosuch", userID)

		assert.Equal(t, errors.ErrInvalidJoinCode, err)
	})
}

func TestClubService_Update(t *testing.T) {
	clubID := uuid.New()
	ownerID := uuid.New()
	memberID := uuid.New()

	t.Run("owner can rename", func(t *testing.T) {
		mockClub := new(MockClubRepository)
		mockMembership := new(MockMembershipRepository)

		club := &model.Club{ID: clubID, Name: "Old Name", Privacy: model.ClubPrivacyPrivate}
		mockClub.On("FindByID", mock.Anything, clubID).Return(club, nil)
		mockMembership.On("IsOwner", mock.Anything, clubID, ownerID).Return(true, nil)
		mockClub.On("Update", mock.Anything, club).Return(nil)

		service := NewClubService(mockClub, mockMembership)
		updated, err := service.Update(context.Background(), clubID, ownerID, "New Name", "")

		assert.NoError(t, err)
		assert.Equal(t, "New Name", updated.Name)
		assert.Equal(t, model.ClubPrivacyPrivate, updated.Privacy)
	})

	t.Run("plain member cannot update", func(t *testing.T) {
		mockClub := new(MockClubRepository)
		mockMembership := new(MockMembershipRepository)

		mockClub.On("FindByID", mock.Anything, clubID).Return(&model.Club{ID: clubID}, nil)
		mockMembership.On("IsOwner", mock.Anything, clubID, memberID).Return(false, nil)

		service := NewClubService(mockClub, mockMembership)
		_, err := service.Update(context.Background(), clubID, memberID, "New Name", "")

		assert.Equal(t, errors.ErrNotClubOwner, err)
	})
}

func TestGenerateJoinCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		code, err := generateJoinCode()
		assert.NoError(t, err)
		assert.Len(t, code, joinCodeLength)
		assert.Equal(t, strings.ToUpper(code), code)
		for _, ch := range code {
			assert.Contains(t, joinCodeAlphabet, string(ch))
		}
		seen[code] = true
	}
	// 31^6 combinations; twenty draws colliding would point at a broken generator.
	assert.Greater(t, len(seen), 1)
}
