package ports

import (
	"context"

	"github.com/evento-ems/evento/internal/domain"
)

type TicketNotifier interface {
	NotifyTicketBooked(ctx context.Context, user *domain.User, event *domain.Event, ticket *domain.Ticket)
	NotifyTicketCancelled(ctx context.Context, user *domain.User, event *domain.Event, ticket *domain.Ticket)
}
