package ports

import (
	"context"

	"github.com/evento-ems/evento/internal/domain"
)

// VerificationSender delivers verification tokens to the user through an
// external channel (email, SMS). Delivery failures are surfaced so the
// caller can decide whether the request failed.
type VerificationSender interface {
	SendEmailToken(ctx context.Context, user *domain.User, token string) error
	SendPhoneCode(ctx context.Context, user *domain.User, code string) error
}
