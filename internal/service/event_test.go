package service

import (
	"context"
	"testing"
	"time"

	"github.com/evento-ems/evento/internal/domain"
	"github.com/evento-ems/evento/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEventService_Create_Success(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	event, err := svc.Create(context.Background(), domain.CreateEventInput{
		OwnerID:     "admin-1",
		Title:       "Tech Meetup",
		OrganizedBy: "Evento Team",
		EventDate:   time.Now().Add(48 * time.Hour),
		Location:    "Bangalore",
		Capacity:    200,
		TicketPrice: 50000,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, "Tech Meetup", event.Title)
	assert.Equal(t, 200, event.Capacity)
	assert.Equal(t, int64(50000), event.TicketPrice)
	assert.Equal(t, 0, event.SoldCount)
	assert.Equal(t, int64(0), event.Income)
}

func TestEventService_Create_Validation(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo)

	future := time.Now().Add(24 * time.Hour)

	cases := []struct {
		name  string
		input domain.CreateEventInput
	}{
		{"empty title", domain.CreateEventInput{OrganizedBy: "x", EventDate: future, Capacity: 10}},
		{"empty organizer", domain.CreateEventInput{Title: "x", EventDate: future, Capacity: 10}},
		{"zero capacity", domain.CreateEventInput{Title: "x", OrganizedBy: "x", EventDate: future, Capacity: 0}},
		{"negative capacity", domain.CreateEventInput{Title: "x", OrganizedBy: "x", EventDate: future, Capacity: -5}},
		{"negative price", domain.CreateEventInput{Title: "x", OrganizedBy: "x", EventDate: future, Capacity: 10, TicketPrice: -1}},
		{"past date", domain.CreateEventInput{Title: "x", OrganizedBy: "x", EventDate: time.Now().Add(-time.Hour), Capacity: 10}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestEventService_GetByID_NotFound(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo)

	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := svc.GetByID(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_ToggleLike(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo)

	liked := &domain.Event{ID: "e1", Likes: 1}
	repo.EXPECT().ToggleLike(mock.Anything, "e1", "u1", true).Return(liked, nil)

	event, err := svc.ToggleLike(context.Background(), "e1", "u1", true)

	require.NoError(t, err)
	assert.Equal(t, 1, event.Likes)
}

func TestEventService_ToggleLike_EventNotFound(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo)

	repo.EXPECT().ToggleLike(mock.Anything, "missing", "u1", false).Return(nil, domain.ErrEventNotFound)

	_, err := svc.ToggleLike(context.Background(), "missing", "u1", false)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}
