package notification

import (
	"context"

	"github.com/evento-ems/evento/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// LogSender is the verification sender used when no delivery channel is
// configured. It records the token instead of delivering it; wiring real
// email/SMS delivery means swapping this implementation behind the port.
type LogSender struct {
	logger logger.Logger
}

func NewLogSender(logger logger.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) SendEmailToken(ctx context.Context, user *domain.User, token string) error {
	s.logger.Info("email verification token issued",
		logger.String("user_id", user.ID),
		logger.String("email", user.Email),
		logger.String("token", token),
	)
	return nil
}

func (s *LogSender) SendPhoneCode(ctx context.Context, user *domain.User, code string) error {
	s.logger.Info("phone verification code issued",
		logger.String("user_id", user.ID),
		logger.String("code", code),
	)
	return nil
}
