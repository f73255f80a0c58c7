package service

import (
	"context"
	"testing"

	"github.com/evento-ems/evento/internal/domain"
	"github.com/evento-ems/evento/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPaymentService_CreateOrder_Success(t *testing.T) {
	gateway := mocks.NewMockPaymentGateway(t)
	svc := NewPaymentService(gateway, newTestLogger(t))

	gateway.EXPECT().CreateOrder(mock.Anything, int64(50000), "INR", mock.Anything).Return(&domain.PaymentOrder{
		ID:       "order_123",
		Amount:   50000,
		Currency: "INR",
	}, nil)

	order, err := svc.CreateOrder(context.Background(), 50000)

	require.NoError(t, err)
	assert.Equal(t, "order_123", order.ID)
	assert.Equal(t, "INR", order.Currency)
}

func TestPaymentService_CreateOrder_NonPositiveAmount(t *testing.T) {
	gateway := mocks.NewMockPaymentGateway(t)
	svc := NewPaymentService(gateway, newTestLogger(t))

	for _, amount := range []int64{0, -100} {
		_, err := svc.CreateOrder(context.Background(), amount)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrValidation)
	}
}

func TestPaymentService_CreateOrder_GatewayUnavailable(t *testing.T) {
	gateway := mocks.NewMockPaymentGateway(t)
	svc := NewPaymentService(gateway, newTestLogger(t))

	gateway.EXPECT().CreateOrder(mock.Anything, int64(100), "INR", mock.Anything).Return(nil, domain.ErrPaymentUnavailable)

	_, err := svc.CreateOrder(context.Background(), 100)

	assert.ErrorIs(t, err, domain.ErrPaymentUnavailable)
}
