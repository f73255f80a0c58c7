package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/evento-ems/evento/internal/domain"
	"github.com/evento-ems/evento/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

// VerificationService hands generated tokens to an external sender and
// marks a user verified only when the token is presented back. Nothing is
// ever auto-verified.
type VerificationService struct {
	repo   ports.UserRepo
	sender ports.VerificationSender
	logger logger.Logger
}

func NewVerificationService(repo ports.UserRepo, sender ports.VerificationSender, logger logger.Logger) *VerificationService {
	return &VerificationService{
		repo:   repo,
		sender: sender,
		logger: logger,
	}
}

func (s *VerificationService) RequestEmail(ctx context.Context, userID string) error {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}

	token := uuid.New().String()
	if err = s.repo.SaveEmailToken(ctx, userID, token); err != nil {
		return fmt.Errorf("save email token: %w", err)
	}

	if err = s.sender.SendEmailToken(ctx, user, token); err != nil {
		return fmt.Errorf("send email token: %w", err)
	}

	s.logger.Info("email verification requested",
		logger.String("user_id", userID),
	)

	return nil
}

func (s *VerificationService) ConfirmEmail(ctx context.Context, token string) error {
	if token == "" {
		return fmt.Errorf("%w: token is required", domain.ErrValidation)
	}

	if err := s.repo.MarkEmailVerified(ctx, token); err != nil {
		return fmt.Errorf("confirm email: %w", err)
	}

	return nil
}

func (s *VerificationService) RequestPhone(ctx context.Context, userID string) error {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}

	code, err := sixDigitCode()
	if err != nil {
		return fmt.Errorf("generate code: %w", err)
	}

	if err = s.repo.SavePhoneCode(ctx, userID, code); err != nil {
		return fmt.Errorf("save phone code: %w", err)
	}

	if err = s.sender.SendPhoneCode(ctx, user, code); err != nil {
		return fmt.Errorf("send phone code: %w", err)
	}

	s.logger.Info("phone verification requested",
		logger.String("user_id", userID),
	)

	return nil
}

func (s *VerificationService) ConfirmPhone(ctx context.Context, userID, code string) error {
	if code == "" {
		return fmt.Errorf("%w: code is required", domain.ErrValidation)
	}

	if err := s.repo.MarkPhoneVerified(ctx, userID, code); err != nil {
		return fmt.Errorf("confirm phone: %w", err)
	}

	return nil
}

func (s *VerificationService) Status(ctx context.Context, userID string) (*domain.VerificationStatus, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &domain.VerificationStatus{
		EmailVerified: user.EmailVerified,
		PhoneVerified: user.PhoneVerified,
	}, nil
}

func sixDigitCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%06d", n.Int64()), nil
}
