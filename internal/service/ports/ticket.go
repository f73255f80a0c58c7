package ports

import (
	"context"

	"github.com/evento-ems/evento/internal/domain"
)

type TicketRepo interface {
	// Book atomically checks the event's capacity, updates its sold-count
	// and income, and inserts the ticket. When the ticket carries an
	// idempotency key that was already used, the previously created ticket
	// is returned instead of a duplicate.
	Book(ctx context.Context, t *domain.Ticket) (*domain.Ticket, error)
	// Cancel deletes the ticket and reverses the event's counters by the
	// ticket's own snapshot values. A missing event is tolerated: the
	// ticket is still deleted and the reversal is skipped.
	Cancel(ctx context.Context, id string) (*domain.Ticket, error)
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Ticket, error)
	CountAll(ctx context.Context) (int, error)
	TotalRevenue(ctx context.Context) (int64, error)
	RevenueForEvent(ctx context.Context, eventID string) (int64, error)
	StatsByEvent(ctx context.Context) (map[string]domain.TicketStats, error)
}
