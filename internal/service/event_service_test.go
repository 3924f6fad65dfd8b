package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"dinnerclub/internal/errors"
	"dinnerclub/internal/model"
)

func TestEventService_Create(t *testing.T) {
	clubID := uuid.New()
	userID := uuid.New()

	t.Run("creator becomes the picker", func(t *testing.T) {
		mockEvent := new(MockEventRepository)
		mockMembership := new(MockMembershipRepository)

		mockMembership.On("IsMember", mock.Anything, clubID, userID).Return(true, nil)
		mockEvent.On("Create", mock.Anything, mock.AnythingOfType("*model.Event")).Return(nil)

		service := NewEventService(mockEvent, mockMembership)
		event, err := service.Create(context.Background(), clubID, userID, EventInput{
			RestaurantName: "Osteria Nonna",
			EventDate:      time.Now().AddDate(0, 0, 7),
		})

		assert.NoError(t, err)
		assert.Equal(t, userID, event.PickerID)
		assert.Equal(t, model.EventStatusPending, event.Status)
	})

	t.Run("non-member cannot create", func(t *testing.T) {
		mockEvent := new(MockEventRepository)
		mockMembership := new(MockMembershipRepository)

		mockMembership.On("IsMember", mock.Anything, clubID, userID).Return(false, nil)

		service := NewEventService(mockEvent, mockMembership)
		_, err := service.Create(context.Background(), clubID, userID, EventInput{})

		assert.Equal(t, errors.ErrNotClubMember, err)
	})
}

func TestEventService_Update_Authorization(t *testing.T) {
	clubID := uuid.New()
	eventID := uuid.New()
	pickerID := uuid.New()
	ownerID := uuid.New()
	memberID := uuid.New()

	newEvent := func() *model.Event {
		return &model.Event{ID: eventID, ClubID: clubID, PickerID: pickerID, RestaurantName: "Old"}
	}

	tests := []struct {
		name          string
		actingUser    uuid.UUID
		setupMock     func(*MockEventRepository, *MockMembershipRepository)
		expectedError error
	}{
		{
			name:       "picker may update",
			actingUser: pickerID,
			setupMock: func(e *MockEventRepository, m *MockMembershipRepository) {
				e.On("FindByID", mock.Anything, eventID).Return(newEvent(), nil)
				m.On("IsMember", mock.Anything, clubID, pickerID).Return(true, nil)
				e.On("Update", mock.Anything, mock.AnythingOfType("*model.Event")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:       "club owner may update",
			actingUser: ownerID,
			setupMock: func(e *MockEventRepository, m *MockMembershipRepository) {
				e.On("FindByID", mock.Anything, eventID).Return(newEvent(), nil)
				m.On("IsMember", mock.Anything, clubID, ownerID).Return(true, nil)
				m.On("IsOwner", mock.Anything, clubID, ownerID).Return(true, nil)
				e.On("Update", mock.Anything, mock.AnythingOfType("*model.Event")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:       "ordinary member may not update",
			actingUser: memberID,
			setupMock: func(e *MockEventRepository, m *MockMembershipRepository) {
				e.On("FindByID", mock.Anything, eventID).Return(newEvent(), nil)
				m.On("IsMember", mock.Anything, clubID, memberID).Return(true, nil)
				m.On("IsOwner", mock.Anything, clubID, memberID).Return(false, nil)
			},
			expectedError: errors.ErrNotEventPicker,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockEvent := new(MockEventRepository)
			mockMembership := new(MockMembershipRepository)
			tt.setupMock(mockEvent, mockMembership)

			service := NewEventService(mockEvent, mockMembership)
			event, err := service.Update(context.Background(), eventID, tt.actingUser, EventInput{RestaurantName: "New"})

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, event)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "New", event.RestaurantName)
			}

			mockEvent.AssertExpectations(t)
			mockMembership.AssertExpectations(t)
		})
	}
}

func TestEventService_ListByClub(t *testing.T) {
	clubID := uuid.New()
	userID := uuid.New()

	mockEvent := new(MockEventRepository)
	mockMembership := new(MockMembershipRepository)

	future := model.Event{ID: uuid.New(), ClubID: clubID, EventDate: time.Now().AddDate(0, 0, 3)}
	gone := model.Event{ID: uuid.New(), ClubID: clubID, EventDate: time.Now().AddDate(0, 0, -3)}

	mockMembership.On("IsMember", mock.Anything, clubID, userID).Return(true, nil)

	var cutoff time.Time
	mockEvent.On("ListByClub", mock.Anything, clubID, mock.AnythingOfType("time.Time")).
		Run(func(args mock.Arguments) {
			cutoff = args.Get(2).(time.Time)
		}).
		Return([]model.Event{future}, []model.Event{gone}, nil)

	service := NewEventService(mockEvent, mockMembership)
	upcoming, past, err := service.ListByClub(context.Background(), clubID, userID)

	assert.NoError(t, err)
	assert.Len(t, upcoming, 1)
	assert.Len(t, past, 1)
	// The split point is the start of today, so an event earlier today still
	// counts as upcoming.
	assert.Equal(t, 0, cutoff.Hour())
	assert.Equal(t, 0, cutoff.Minute())
	assert.WithinDuration(t, time.Now(), cutoff, 24*time.Hour)
}

func TestStartOfDay(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	in := time.Date(2026, 8, 30, 17, 45, 12, 99, loc)
	got := startOfDay(in)

	assert.Equal(t, time.Date(2026, 8, 30, 0, 0, 0, 0, loc), got)
	assert.Equal(t, loc, got.Location())
}
