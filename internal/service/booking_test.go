package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/evento-ems/evento/internal/domain"
	"github.com/evento-ems/evento/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newBookingService(t *testing.T) (*BookingService, *mocks.MockTicketRepo, *mocks.MockEventRepo, *mocks.MockUserRepo, *mocks.MockTicketNotifier) {
	t.Helper()
	ticketRepo := mocks.NewMockTicketRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockTicketNotifier(t)

	svc := NewBookingService(ticketRepo, eventRepo, userRepo, notifier, newTestLogger(t))
	return svc, ticketRepo, eventRepo, userRepo, notifier
}

// waitNotify blocks until the fire-and-forget notification goroutine has
// signalled, so the test never outlives its mocks.
func waitNotify(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("notification never arrived")
	}
}

func TestBookingService_Book_InvalidQuantity(t *testing.T) {
	svc, _, _, _, _ := newBookingService(t)

	for _, qty := range []int{0, -1, -100} {
		_, err := svc.Book(context.Background(), BookInput{
			EventID:  "e1",
			OwnerID:  "u1",
			Quantity: qty,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	}
}

func TestBookingService_Book_EventNotFound(t *testing.T) {
	svc, _, eventRepo, _, _ := newBookingService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := svc.Book(context.Background(), BookInput{
		EventID:  "missing",
		OwnerID:  "u1",
		Quantity: 1,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestBookingService_Book_UserNotFound(t *testing.T) {
	svc, _, eventRepo, userRepo, _ := newBookingService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrUserNotFound)

	_, err := svc.Book(context.Background(), BookInput{
		EventID:  "e1",
		OwnerID:  "missing",
		Quantity: 1,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestBookingService_Book_SnapshotsCurrentPrice(t *testing.T) {
	svc, ticketRepo, eventRepo, userRepo, notifier := newBookingService(t)

	event := &domain.Event{
		ID:          "e1",
		Title:       "Concert",
		Capacity:    100,
		TicketPrice: 25000,
	}
	user := &domain.User{ID: "u1", Name: "alice"}

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	ticketRepo.EXPECT().Book(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, tk *domain.Ticket) (*domain.Ticket, error) {
			return tk, nil
		})
	notified := make(chan struct{})
	notifier.EXPECT().NotifyTicketBooked(mock.Anything, user, event, mock.Anything).
		Run(func(context.Context, *domain.User, *domain.Event, *domain.Ticket) {
			close(notified)
		}).Return()

	ticket, err := svc.Book(context.Background(), BookInput{
		EventID:  "e1",
		OwnerID:  "u1",
		Quantity: 3,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, ticket.ID)
	assert.Equal(t, "e1", ticket.EventID)
	assert.Equal(t, "u1", ticket.OwnerID)
	assert.Equal(t, 3, ticket.Quantity)
	assert.Equal(t, int64(25000), ticket.UnitPrice)
	assert.Equal(t, int64(75000), ticket.Total())

	waitNotify(t, notified)
}

func TestBookingService_Book_CapacityExceeded(t *testing.T) {
	svc, ticketRepo, eventRepo, userRepo, _ := newBookingService(t)

	event := &domain.Event{ID: "e1", Capacity: 10, SoldCount: 9, TicketPrice: 100}

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	ticketRepo.EXPECT().Book(mock.Anything, mock.Anything).Return(nil, domain.ErrCapacityExceeded)

	_, err := svc.Book(context.Background(), BookInput{
		EventID:  "e1",
		OwnerID:  "u1",
		Quantity: 2,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
}

func TestBookingService_Book_RetriesConflictOnce(t *testing.T) {
	svc, ticketRepo, eventRepo, userRepo, notifier := newBookingService(t)

	event := &domain.Event{ID: "e1", Capacity: 10, TicketPrice: 100}
	user := &domain.User{ID: "u1"}

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	ticketRepo.EXPECT().Book(mock.Anything, mock.Anything).Return(nil, domain.ErrStorageConflict).Once()
	ticketRepo.EXPECT().Book(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, tk *domain.Ticket) (*domain.Ticket, error) {
			return tk, nil
		}).Once()
	notified := make(chan struct{})
	notifier.EXPECT().NotifyTicketBooked(mock.Anything, user, event, mock.Anything).
		Run(func(context.Context, *domain.User, *domain.Event, *domain.Ticket) {
			close(notified)
		}).Return()

	ticket, err := svc.Book(context.Background(), BookInput{
		EventID:  "e1",
		OwnerID:  "u1",
		Quantity: 1,
	})

	require.NoError(t, err)
	assert.Equal(t, "e1", ticket.EventID)

	waitNotify(t, notified)
}

func TestBookingService_Book_ConflictTwiceFails(t *testing.T) {
	svc, ticketRepo, eventRepo, userRepo, _ := newBookingService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1", TicketPrice: 100}, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	ticketRepo.EXPECT().Book(mock.Anything, mock.Anything).Return(nil, domain.ErrStorageConflict).Times(2)

	_, err := svc.Book(context.Background(), BookInput{
		EventID:  "e1",
		OwnerID:  "u1",
		Quantity: 1,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStorageConflict)
}

// Two concurrent bookings race for the last remaining seat. The store
// admits exactly one of them; the loser sees the capacity error and no
// ticket.
func TestBookingService_Book_LastSeatRace(t *testing.T) {
	svc, ticketRepo, eventRepo, userRepo, notifier := newBookingService(t)

	event := &domain.Event{ID: "e1", Capacity: 10, SoldCount: 9, TicketPrice: 500}

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	userRepo.EXPECT().GetByID(mock.Anything, mock.Anything).Return(&domain.User{ID: "u1"}, nil)
	notified := make(chan struct{})
	notifier.EXPECT().NotifyTicketBooked(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(context.Context, *domain.User, *domain.Event, *domain.Ticket) {
			close(notified)
		}).Return()

	var mu sync.Mutex
	remaining := 1
	ticketRepo.EXPECT().Book(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, tk *domain.Ticket) (*domain.Ticket, error) {
			mu.Lock()
			defer mu.Unlock()
			if tk.Quantity > remaining {
				return nil, domain.ErrCapacityExceeded
			}
			remaining -= tk.Quantity
			return tk, nil
		})

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = svc.Book(context.Background(), BookInput{
				EventID:  "e1",
				OwnerID:  "u1",
				Quantity: 1,
			})
		}(i)
	}
	wg.Wait()

	var won, lost int
	for _, err := range results {
		if err == nil {
			won++
		} else {
			require.ErrorIs(t, err, domain.ErrCapacityExceeded)
			lost++
		}
	}
	assert.Equal(t, 1, won)
	assert.Equal(t, 1, lost)

	waitNotify(t, notified)
}

func TestBookingService_Cancel_Success(t *testing.T) {
	svc, ticketRepo, eventRepo, userRepo, notifier := newBookingService(t)

	ticket := &domain.Ticket{ID: "t1", EventID: "e1", OwnerID: "u1", Quantity: 2, UnitPrice: 100}
	user := &domain.User{ID: "u1"}
	event := &domain.Event{ID: "e1"}

	ticketRepo.EXPECT().Cancel(mock.Anything, "t1").Return(ticket, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	notified := make(chan struct{})
	notifier.EXPECT().NotifyTicketCancelled(mock.Anything, user, event, ticket).
		Run(func(context.Context, *domain.User, *domain.Event, *domain.Ticket) {
			close(notified)
		}).Return()

	err := svc.Cancel(context.Background(), "t1")

	require.NoError(t, err)

	waitNotify(t, notified)
}

// A ticket may outlive its event. Cancellation still succeeds, only the
// notification is skipped.
func TestBookingService_Cancel_OrphanedTicket(t *testing.T) {
	svc, ticketRepo, eventRepo, userRepo, _ := newBookingService(t)

	ticket := &domain.Ticket{ID: "t1", EventID: "gone", OwnerID: "u1"}

	ticketRepo.EXPECT().Cancel(mock.Anything, "t1").Return(ticket, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)

	// The event lookup is the notify goroutine's last stop before it gives up.
	looked := make(chan struct{})
	eventRepo.EXPECT().GetByID(mock.Anything, "gone").
		Run(func(context.Context, string) {
			close(looked)
		}).Return(nil, domain.ErrEventNotFound)

	err := svc.Cancel(context.Background(), "t1")

	require.NoError(t, err)

	waitNotify(t, looked)
}

func TestBookingService_Cancel_NotFound(t *testing.T) {
	svc, ticketRepo, _, _, _ := newBookingService(t)

	ticketRepo.EXPECT().Cancel(mock.Anything, "missing").Return(nil, domain.ErrTicketNotFound)

	err := svc.Cancel(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTicketNotFound)
}

func TestBookingService_Cancel_RetriesConflictOnce(t *testing.T) {
	svc, ticketRepo, eventRepo, userRepo, notifier := newBookingService(t)

	ticket := &domain.Ticket{ID: "t1", EventID: "e1", OwnerID: "u1"}
	user := &domain.User{ID: "u1"}
	event := &domain.Event{ID: "e1"}

	ticketRepo.EXPECT().Cancel(mock.Anything, "t1").Return(nil, domain.ErrStorageConflict).Once()
	ticketRepo.EXPECT().Cancel(mock.Anything, "t1").Return(ticket, nil).Once()
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	notified := make(chan struct{})
	notifier.EXPECT().NotifyTicketCancelled(mock.Anything, user, event, ticket).
		Run(func(context.Context, *domain.User, *domain.Event, *domain.Ticket) {
			close(notified)
		}).Return()

	err := svc.Cancel(context.Background(), "t1")

	require.NoError(t, err)

	waitNotify(t, notified)
}

// Full booking walk over a stateful store fake: capacity 3 at 10000 per
// seat. Two seats sell, a two-seat request bounces, the last seat sells,
// a cancellation reverses by snapshot, and reconciliation stays clean
// throughout.
func TestBookingService_ScenarioWalk(t *testing.T) {
	svc, ticketRepo, eventRepo, userRepo, notifier := newBookingService(t)

	event := &domain.Event{ID: "e1", Capacity: 3, TicketPrice: 10000}
	tickets := map[string]*domain.Ticket{}

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	eventRepo.EXPECT().List(mock.Anything).RunAndReturn(
		func(_ context.Context) ([]*domain.Event, error) {
			copied := *event
			return []*domain.Event{&copied}, nil
		})
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	booked := make(chan struct{}, 2)
	cancelled := make(chan struct{}, 1)
	notifier.EXPECT().NotifyTicketBooked(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(context.Context, *domain.User, *domain.Event, *domain.Ticket) {
			booked <- struct{}{}
		}).Return()
	notifier.EXPECT().NotifyTicketCancelled(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(context.Context, *domain.User, *domain.Event, *domain.Ticket) {
			cancelled <- struct{}{}
		}).Return()

	ticketRepo.EXPECT().Book(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, tk *domain.Ticket) (*domain.Ticket, error) {
			if event.SoldCount+tk.Quantity > event.Capacity {
				return nil, domain.ErrCapacityExceeded
			}
			event.SoldCount += tk.Quantity
			event.Income += tk.Total()
			tickets[tk.ID] = tk
			return tk, nil
		})
	ticketRepo.EXPECT().Cancel(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, id string) (*domain.Ticket, error) {
			tk, ok := tickets[id]
			if !ok {
				return nil, domain.ErrTicketNotFound
			}
			delete(tickets, id)
			event.SoldCount -= tk.Quantity
			event.Income -= tk.Total()
			return tk, nil
		})
	ticketRepo.EXPECT().StatsByEvent(mock.Anything).RunAndReturn(
		func(_ context.Context) (map[string]domain.TicketStats, error) {
			res := map[string]domain.TicketStats{}
			for _, tk := range tickets {
				s := res[tk.EventID]
				s.Sold += tk.Quantity
				s.Revenue += tk.Total()
				res[tk.EventID] = s
			}
			return res, nil
		})

	revenue := NewRevenueService(ticketRepo, eventRepo)
	ctx := context.Background()

	first, err := svc.Book(ctx, BookInput{EventID: "e1", OwnerID: "u1", Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(20000), event.Income)

	_, err = svc.Book(ctx, BookInput{EventID: "e1", OwnerID: "u1", Quantity: 2})
	require.ErrorIs(t, err, domain.ErrCapacityExceeded)

	_, err = svc.Book(ctx, BookInput{EventID: "e1", OwnerID: "u1", Quantity: 1})
	require.NoError(t, err)
	assert.True(t, event.SoldOut())
	assert.Equal(t, int64(30000), event.Income)

	drift, err := revenue.Reconcile(ctx)
	require.NoError(t, err)
	assert.Empty(t, drift)

	require.NoError(t, svc.Cancel(ctx, first.ID))
	assert.Equal(t, 1, event.SoldCount)
	assert.Equal(t, int64(10000), event.Income)

	drift, err = revenue.Reconcile(ctx)
	require.NoError(t, err)
	assert.Empty(t, drift)

	waitNotify(t, booked)
	waitNotify(t, booked)
	waitNotify(t, cancelled)
}

func TestBookingService_Book_StorageError(t *testing.T) {
	svc, ticketRepo, eventRepo, userRepo, _ := newBookingService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1", TicketPrice: 100}, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	ticketRepo.EXPECT().Book(mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

	_, err := svc.Book(context.Background(), BookInput{
		EventID:  "e1",
		OwnerID:  "u1",
		Quantity: 1,
	})

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrStorageConflict)
}
