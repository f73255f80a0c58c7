package ports

import (
	"context"
	"time"

	"github.com/evento-ems/evento/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.Event, error)
	CountAll(ctx context.Context) (int, error)
	CountUpcoming(ctx context.Context, now time.Time) (int, error)
	ToggleLike(ctx context.Context, eventID, userID string, like bool) (*domain.Event, error)
}
