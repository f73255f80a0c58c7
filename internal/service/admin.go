package service

import (
	"context"
	"fmt"
	"time"

	"github.com/evento-ems/evento/internal/domain"
	"github.com/evento-ems/evento/internal/service/ports"
)

type AdminService struct {
	userRepo   ports.UserRepo
	eventRepo  ports.EventRepo
	ticketRepo ports.TicketRepo
}

func NewAdminService(userRepo ports.UserRepo, eventRepo ports.EventRepo, ticketRepo ports.TicketRepo) *AdminService {
	return &AdminService{
		userRepo:   userRepo,
		eventRepo:  eventRepo,
		ticketRepo: ticketRepo,
	}
}

type DashboardStats struct {
	Users          int   `json:"users"`
	Events         int   `json:"events"`
	Tickets        int   `json:"tickets"`
	UpcomingEvents int   `json:"upcoming_events"`
	Revenue        int64 `json:"revenue"`
}

// Stats aggregates the dashboard counters. Revenue is recomputed from the
// ticket store, not read from the events' cached income.
func (s *AdminService) Stats(ctx context.Context) (*DashboardStats, error) {
	users, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	events, err := s.eventRepo.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count events: %w", err)
	}

	tickets, err := s.ticketRepo.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count tickets: %w", err)
	}

	upcoming, err := s.eventRepo.CountUpcoming(ctx, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("count upcoming: %w", err)
	}

	revenue, err := s.ticketRepo.TotalRevenue(ctx)
	if err != nil {
		return nil, fmt.Errorf("total revenue: %w", err)
	}

	return &DashboardStats{
		Users:          users,
		Events:         events,
		Tickets:        tickets,
		UpcomingEvents: upcoming,
		Revenue:        revenue,
	}, nil
}

// RecentEvents returns the newest events with sold/revenue figures taken
// from the ticket store.
func (s *AdminService) RecentEvents(ctx context.Context, limit int) ([]domain.EventWithStats, error) {
	events, err := s.eventRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent: %w", err)
	}

	stats, err := s.ticketRepo.StatsByEvent(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats by event: %w", err)
	}

	res := make([]domain.EventWithStats, 0, len(events))
	for _, e := range events {
		res = append(res, domain.EventWithStats{
			Event: *e,
			Stats: stats[e.ID],
		})
	}

	return res, nil
}

func (s *AdminService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.userRepo.List(ctx)
}
