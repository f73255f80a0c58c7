package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/evento-ems/evento/internal/domain"
	"github.com/evento-ems/evento/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	ticketRepo ports.TicketRepo
	eventRepo  ports.EventRepo
	userRepo   ports.UserRepo
	notifier   ports.TicketNotifier
	logger     logger.Logger
}

func NewBookingService(
	ticketRepo ports.TicketRepo,
	eventRepo ports.EventRepo,
	userRepo ports.UserRepo,
	notifier ports.TicketNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		ticketRepo: ticketRepo,
		eventRepo:  eventRepo,
		userRepo:   userRepo,
		notifier:   notifier,
		logger:     logger,
	}
}

type BookInput struct {
	EventID        string
	OwnerID        string
	Quantity       int
	IdempotencyKey string
}

// Book creates a ticket with the event's current price as an immutable
// snapshot. The capacity check and the counter increment are one atomic
// storage operation; a detected storage conflict is retried once before
// being surfaced.
func (s *BookingService) Book(ctx context.Context, input BookInput) (*domain.Ticket, error) {
	if input.Quantity < 1 {
		return nil, fmt.Errorf("%w: got %d", domain.ErrInvalidQuantity, input.Quantity)
	}

	event, err := s.eventRepo.GetByID(ctx, input.EventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}

	user, err := s.userRepo.GetByID(ctx, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	ticket := &domain.Ticket{
		ID:             uuid.New().String(),
		EventID:        input.EventID,
		OwnerID:        input.OwnerID,
		Quantity:       input.Quantity,
		UnitPrice:      event.TicketPrice,
		IdempotencyKey: input.IdempotencyKey,
		CreatedAt:      time.Now().UTC(),
	}

	created, err := s.ticketRepo.Book(ctx, ticket)
	if errors.Is(err, domain.ErrStorageConflict) {
		s.logger.Warn("booking hit a storage conflict, retrying",
			logger.String("event_id", input.EventID),
		)
		created, err = s.ticketRepo.Book(ctx, ticket)
	}
	if err != nil {
		return nil, fmt.Errorf("book ticket: %w", err)
	}

	s.logger.Info("ticket booked",
		logger.String("ticket_id", created.ID),
		logger.String("event_id", created.EventID),
		logger.String("owner_id", created.OwnerID),
		logger.Int("quantity", created.Quantity),
		logger.Int64("total", created.Total()),
	)

	go s.notifier.NotifyTicketBooked(context.WithoutCancel(ctx), user, event, created)

	return created, nil
}

// Cancel removes the ticket and reverses the event's sold-count and income
// by the ticket's own snapshot values. A ticket whose event is gone is
// still removed.
func (s *BookingService) Cancel(ctx context.Context, ticketID string) error {
	ticket, err := s.ticketRepo.Cancel(ctx, ticketID)
	if errors.Is(err, domain.ErrStorageConflict) {
		s.logger.Warn("cancellation hit a storage conflict, retrying",
			logger.String("ticket_id", ticketID),
		)
		ticket, err = s.ticketRepo.Cancel(ctx, ticketID)
	}
	if err != nil {
		return fmt.Errorf("cancel ticket: %w", err)
	}

	s.logger.Info("ticket cancelled",
		logger.String("ticket_id", ticket.ID),
		logger.String("event_id", ticket.EventID),
		logger.String("owner_id", ticket.OwnerID),
	)

	go s.notifyCancelled(context.WithoutCancel(ctx), ticket)

	return nil
}

func (s *BookingService) notifyCancelled(ctx context.Context, ticket *domain.Ticket) {
	user, err := s.userRepo.GetByID(ctx, ticket.OwnerID)
	if err != nil {
		s.logger.Error("failed to get user for cancel notification",
			logger.String("owner_id", ticket.OwnerID),
		)
		return
	}

	event, err := s.eventRepo.GetByID(ctx, ticket.EventID)
	if err != nil {
		// Orphaned ticket: the event is gone, nothing to reference.
		s.logger.Debug("cancel notification skipped, event missing",
			logger.String("event_id", ticket.EventID),
		)
		return
	}

	s.notifier.NotifyTicketCancelled(ctx, user, event, ticket)
}

func (s *BookingService) Get(ctx context.Context, ticketID string) (*domain.Ticket, error) {
	return s.ticketRepo.GetByID(ctx, ticketID)
}

func (s *BookingService) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Ticket, error) {
	return s.ticketRepo.ListByOwner(ctx, ownerID)
}
