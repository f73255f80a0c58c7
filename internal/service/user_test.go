package service

import (
	"context"
	"testing"
	"time"

	"github.com/evento-ems/evento/internal/auth"
	"github.com/evento-ems/evento/internal/domain"
	"github.com/evento-ems/evento/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTokenManager(t *testing.T) *auth.Manager {
	t.Helper()
	m, err := auth.NewManager("test-secret", time.Hour)
	require.NoError(t, err)
	return m
}

func TestUserService_Register_Success(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, newTokenManager(t))

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	user, err := svc.Register(context.Background(), domain.RegisterInput{
		Name:     "alice",
		Email:    "alice@example.com",
		Password: "supersecret",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, domain.RoleUser, user.Role)
	assert.False(t, user.EmailVerified)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("supersecret")))
}

func TestUserService_Register_Validation(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, newTokenManager(t))

	cases := []struct {
		name  string
		input domain.RegisterInput
	}{
		{"empty name", domain.RegisterInput{Email: "a@b.c", Password: "supersecret"}},
		{"empty email", domain.RegisterInput{Name: "a", Password: "supersecret"}},
		{"short password", domain.RegisterInput{Name: "a", Email: "a@b.c", Password: "short"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tc.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestUserService_Register_EmailTaken(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, newTokenManager(t))

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrEmailTaken)

	_, err := svc.Register(context.Background(), domain.RegisterInput{
		Name:     "alice",
		Email:    "taken@example.com",
		Password: "supersecret",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestUserService_Login_Success(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	tokens := newTokenManager(t)
	svc := NewUserService(repo, tokens)

	hash, err := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.MinCost)
	require.NoError(t, err)

	stored := &domain.User{
		ID:           "u1",
		Email:        "alice@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
	}
	repo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(stored, nil)

	user, token, err := svc.Login(context.Background(), "alice@example.com", "supersecret")

	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)

	claims, err := tokens.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.Sub)
	assert.Equal(t, string(domain.RoleAdmin), claims.Role)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, newTokenManager(t))

	hash, err := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.MinCost)
	require.NoError(t, err)

	repo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(&domain.User{
		ID:           "u1",
		PasswordHash: string(hash),
	}, nil)

	_, _, err = svc.Login(context.Background(), "alice@example.com", "nope")

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

// Unknown email and wrong password must be indistinguishable to the caller.
func TestUserService_Login_UnknownEmail(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, newTokenManager(t))

	repo.EXPECT().GetByEmail(mock.Anything, "ghost@example.com").Return(nil, domain.ErrUserNotFound)

	_, _, err := svc.Login(context.Background(), "ghost@example.com", "whatever")

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.NotErrorIs(t, err, domain.ErrUserNotFound)
}
