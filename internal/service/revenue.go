package service

import (
	"context"
	"fmt"

	"github.com/evento-ems/evento/internal/domain"
	"github.com/evento-ems/evento/internal/service/ports"
)

// RevenueService recomputes revenue figures directly from the ticket store.
// It deliberately does not trust the event store's cached income, so the
// two can be checked against each other.
type RevenueService struct {
	ticketRepo ports.TicketRepo
	eventRepo  ports.EventRepo
}

func NewRevenueService(ticketRepo ports.TicketRepo, eventRepo ports.EventRepo) *RevenueService {
	return &RevenueService{
		ticketRepo: ticketRepo,
		eventRepo:  eventRepo,
	}
}

// Total is the sum over all live tickets of snapshot price times quantity.
func (s *RevenueService) Total(ctx context.Context) (int64, error) {
	return s.ticketRepo.TotalRevenue(ctx)
}

func (s *RevenueService) ForEvent(ctx context.Context, eventID string) (int64, error) {
	return s.ticketRepo.RevenueForEvent(ctx, eventID)
}

// Reconcile compares every event's cached income with the income recomputed
// from its tickets and returns the events that disagree. After any sequence
// of book/cancel operations the result should be empty.
func (s *RevenueService) Reconcile(ctx context.Context) ([]domain.RevenueDrift, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	actual, err := s.ticketRepo.StatsByEvent(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats by event: %w", err)
	}

	var drift []domain.RevenueDrift
	for _, e := range events {
		stats := actual[e.ID]
		if e.Income != stats.Revenue {
			drift = append(drift, domain.RevenueDrift{
				EventID:      e.ID,
				CachedIncome: e.Income,
				ActualIncome: stats.Revenue,
			})
		}
	}

	return drift, nil
}
