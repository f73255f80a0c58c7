package ports

import (
	"context"

	"github.com/evento-ems/evento/internal/domain"
)

// PaymentGateway creates orders against the external payment provider.
// The amount is in minor currency units.
type PaymentGateway interface {
	CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*domain.PaymentOrder, error)
}
