package service

import (
	"context"
	"regexp"
	"testing"

	"github.com/evento-ems/evento/internal/domain"
	"github.com/evento-ems/evento/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newVerificationService(t *testing.T) (*VerificationService, *mocks.MockUserRepo, *mocks.MockVerificationSender) {
	t.Helper()
	repo := mocks.NewMockUserRepo(t)
	sender := mocks.NewMockVerificationSender(t)
	svc := NewVerificationService(repo, sender, newTestLogger(t))
	return svc, repo, sender
}

func TestVerificationService_RequestEmail_SendsSavedToken(t *testing.T) {
	svc, repo, sender := newVerificationService(t)

	user := &domain.User{ID: "u1", Email: "alice@example.com"}
	repo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)

	var saved, sent string
	repo.EXPECT().SaveEmailToken(mock.Anything, "u1", mock.Anything).RunAndReturn(
		func(_ context.Context, _ string, token string) error {
			saved = token
			return nil
		})
	sender.EXPECT().SendEmailToken(mock.Anything, user, mock.Anything).RunAndReturn(
		func(_ context.Context, _ *domain.User, token string) error {
			sent = token
			return nil
		})

	err := svc.RequestEmail(context.Background(), "u1")

	require.NoError(t, err)
	assert.NotEmpty(t, saved)
	assert.Equal(t, saved, sent)
}

func TestVerificationService_RequestEmail_UserNotFound(t *testing.T) {
	svc, repo, _ := newVerificationService(t)

	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrUserNotFound)

	err := svc.RequestEmail(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestVerificationService_ConfirmEmail_EmptyToken(t *testing.T) {
	svc, _, _ := newVerificationService(t)

	err := svc.ConfirmEmail(context.Background(), "")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestVerificationService_ConfirmEmail_Mismatch(t *testing.T) {
	svc, repo, _ := newVerificationService(t)

	repo.EXPECT().MarkEmailVerified(mock.Anything, "bogus").Return(domain.ErrVerificationMismatch)

	err := svc.ConfirmEmail(context.Background(), "bogus")

	assert.ErrorIs(t, err, domain.ErrVerificationMismatch)
}

func TestVerificationService_RequestPhone_SixDigitCode(t *testing.T) {
	svc, repo, sender := newVerificationService(t)

	user := &domain.User{ID: "u1"}
	repo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)

	var code string
	repo.EXPECT().SavePhoneCode(mock.Anything, "u1", mock.Anything).RunAndReturn(
		func(_ context.Context, _ string, c string) error {
			code = c
			return nil
		})
	sender.EXPECT().SendPhoneCode(mock.Anything, user, mock.Anything).Return(nil)

	err := svc.RequestPhone(context.Background(), "u1")

	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^\d{6}$`), code)
}

func TestVerificationService_ConfirmPhone(t *testing.T) {
	svc, repo, _ := newVerificationService(t)

	repo.EXPECT().MarkPhoneVerified(mock.Anything, "u1", "123456").Return(nil)

	require.NoError(t, svc.ConfirmPhone(context.Background(), "u1", "123456"))
}

func TestVerificationService_ConfirmPhone_EmptyCode(t *testing.T) {
	svc, _, _ := newVerificationService(t)

	err := svc.ConfirmPhone(context.Background(), "u1", "")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestVerificationService_Status(t *testing.T) {
	svc, repo, _ := newVerificationService(t)

	repo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{
		ID:            "u1",
		EmailVerified: true,
		PhoneVerified: false,
	}, nil)

	status, err := svc.Status(context.Background(), "u1")

	require.NoError(t, err)
	assert.True(t, status.EmailVerified)
	assert.False(t, status.PhoneVerified)
}
