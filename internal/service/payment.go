package service

import (
	"context"
	"fmt"

	"github.com/evento-ems/evento/internal/domain"
	"github.com/evento-ems/evento/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

const orderCurrency = "INR"

// PaymentService creates payment orders against the external gateway.
// Booking happens only after the caller obtains payment confirmation, so
// this service never touches the ticket or event stores.
type PaymentService struct {
	gateway ports.PaymentGateway
	logger  logger.Logger
}

func NewPaymentService(gateway ports.PaymentGateway, logger logger.Logger) *PaymentService {
	return &PaymentService{gateway: gateway, logger: logger}
}

func (s *PaymentService) CreateOrder(ctx context.Context, amount int64) (*domain.PaymentOrder, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}

	receipt := uuid.New().String()
	order, err := s.gateway.CreateOrder(ctx, amount, orderCurrency, receipt)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.logger.Info("payment order created",
		logger.String("order_id", order.ID),
		logger.Int64("amount", order.Amount),
	)

	return order, nil
}
