package service

import (
	"context"
	"errors"
	"testing"

	"github.com/evento-ems/evento/internal/domain"
	"github.com/evento-ems/evento/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRevenueService_Total(t *testing.T) {
	ticketRepo := mocks.NewMockTicketRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	svc := NewRevenueService(ticketRepo, eventRepo)

	ticketRepo.EXPECT().TotalRevenue(mock.Anything).Return(int64(125000), nil)

	total, err := svc.Total(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(125000), total)
}

func TestRevenueService_Reconcile_NoDrift(t *testing.T) {
	ticketRepo := mocks.NewMockTicketRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	svc := NewRevenueService(ticketRepo, eventRepo)

	eventRepo.EXPECT().List(mock.Anything).Return([]*domain.Event{
		{ID: "e1", Income: 500},
		{ID: "e2", Income: 0},
	}, nil)
	ticketRepo.EXPECT().StatsByEvent(mock.Anything).Return(map[string]domain.TicketStats{
		"e1": {Sold: 5, Revenue: 500},
	}, nil)

	drift, err := svc.Reconcile(context.Background())

	require.NoError(t, err)
	assert.Empty(t, drift)
}

func TestRevenueService_Reconcile_ReportsDrift(t *testing.T) {
	ticketRepo := mocks.NewMockTicketRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	svc := NewRevenueService(ticketRepo, eventRepo)

	eventRepo.EXPECT().List(mock.Anything).Return([]*domain.Event{
		{ID: "e1", Income: 500},
		{ID: "e2", Income: 300},
	}, nil)
	ticketRepo.EXPECT().StatsByEvent(mock.Anything).Return(map[string]domain.TicketStats{
		"e1": {Sold: 5, Revenue: 500},
		"e2": {Sold: 1, Revenue: 100},
	}, nil)

	drift, err := svc.Reconcile(context.Background())

	require.NoError(t, err)
	require.Len(t, drift, 1)
	assert.Equal(t, "e2", drift[0].EventID)
	assert.Equal(t, int64(300), drift[0].CachedIncome)
	assert.Equal(t, int64(100), drift[0].ActualIncome)
}

// An event with no tickets at all must still reconcile against zero, not
// be skipped.
func TestRevenueService_Reconcile_EventWithoutTickets(t *testing.T) {
	ticketRepo := mocks.NewMockTicketRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	svc := NewRevenueService(ticketRepo, eventRepo)

	eventRepo.EXPECT().List(mock.Anything).Return([]*domain.Event{
		{ID: "e1", Income: 200},
	}, nil)
	ticketRepo.EXPECT().StatsByEvent(mock.Anything).Return(map[string]domain.TicketStats{}, nil)

	drift, err := svc.Reconcile(context.Background())

	require.NoError(t, err)
	require.Len(t, drift, 1)
	assert.Equal(t, int64(0), drift[0].ActualIncome)
}

func TestRevenueService_Reconcile_ListError(t *testing.T) {
	ticketRepo := mocks.NewMockTicketRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	svc := NewRevenueService(ticketRepo, eventRepo)

	eventRepo.EXPECT().List(mock.Anything).Return(nil, errors.New("db down"))

	_, err := svc.Reconcile(context.Background())

	require.Error(t, err)
}
