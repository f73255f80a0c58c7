package payment

import (
	"context"
	"fmt"

	"github.com/evento-ems/evento/internal/domain"
	razorpay "github.com/razorpay/razorpay-go"
	"github.com/wb-go/wbf/logger"
)

// RazorpayGateway wraps the Razorpay orders API. With empty credentials the
// gateway stays disabled and order creation fails with
// domain.ErrPaymentUnavailable instead of hitting the network.
type RazorpayGateway struct {
	client *razorpay.Client
	logger logger.Logger
}

func NewRazorpayGateway(keyID, keySecret string, logger logger.Logger) *RazorpayGateway {
	if keyID == "" || keySecret == "" {
		logger.Warn("razorpay credentials are empty, payment orders disabled")
		return &RazorpayGateway{client: nil, logger: logger}
	}

	return &RazorpayGateway{
		client: razorpay.NewClient(keyID, keySecret),
		logger: logger,
	}
}

func (g *RazorpayGateway) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*domain.PaymentOrder, error) {
	if g.client == nil {
		return nil, domain.ErrPaymentUnavailable
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data := map[string]interface{}{
		"amount":   amount, // smallest currency unit
		"currency": currency,
		"receipt":  receipt,
	}

	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("create razorpay order: %w", err)
	}

	id, _ := body["id"].(string)
	if id == "" {
		return nil, fmt.Errorf("razorpay order response has no id")
	}

	return &domain.PaymentOrder{
		ID:       id,
		Amount:   amount,
		Currency: currency,
	}, nil
}
