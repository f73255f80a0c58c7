package ports

import (
	"context"

	"github.com/evento-ems/evento/internal/domain"
)

type UserRepo interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Count(ctx context.Context) (int, error)
	SaveEmailToken(ctx context.Context, userID, token string) error
	MarkEmailVerified(ctx context.Context, token string) error
	SavePhoneCode(ctx context.Context, userID, code string) error
	MarkPhoneVerified(ctx context.Context, userID, code string) error
}
