package service

import (
	"context"
	"fmt"
	"time"

	"github.com/evento-ems/evento/internal/domain"
	"github.com/evento-ems/evento/internal/service/ports"
	"github.com/google/uuid"
)

type EventService struct {
	repo ports.EventRepo
}

func NewEventService(repo ports.EventRepo) *EventService {
	return &EventService{repo: repo}
}

func (s *EventService) Create(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.OrganizedBy == "" {
		return nil, fmt.Errorf("%w: organized_by is required", domain.ErrValidation)
	}
	if input.Capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive", domain.ErrValidation)
	}
	if input.TicketPrice < 0 {
		return nil, fmt.Errorf("%w: ticket_price must not be negative", domain.ErrValidation)
	}
	if input.EventDate.Before(time.Now()) {
		return nil, fmt.Errorf("%w: event_date must be in the future", domain.ErrValidation)
	}

	event := &domain.Event{
		ID:          uuid.New().String(),
		OwnerID:     input.OwnerID,
		Title:       input.Title,
		Description: input.Description,
		OrganizedBy: input.OrganizedBy,
		EventDate:   input.EventDate,
		Location:    input.Location,
		Capacity:    input.Capacity,
		TicketPrice: input.TicketPrice,
		ImagePath:   input.ImagePath,
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	return event, nil
}

func (s *EventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *EventService) List(ctx context.Context) ([]*domain.Event, error) {
	return s.repo.List(ctx)
}

// ToggleLike applies a like or unlike for the user. Both directions are
// idempotent: liking an already liked event or unliking a not-liked one
// leaves the event unchanged.
func (s *EventService) ToggleLike(ctx context.Context, eventID, userID string, like bool) (*domain.Event, error) {
	event, err := s.repo.ToggleLike(ctx, eventID, userID, like)
	if err != nil {
		return nil, fmt.Errorf("toggle like: %w", err)
	}

	return event, nil
}
