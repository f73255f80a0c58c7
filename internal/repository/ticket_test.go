package repository

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/evento-ems/evento/internal/domain"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"
)

func newMockTicketRepo(t *testing.T) (*TicketRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})

	repo := NewTicketRepo(&dbpg.DB{Master: db})
	// Failures should surface immediately, not after the backoff schedule.
	repo.strategy.Attempts = 1
	repo.strategy.Delay = 0

	return repo, mock
}

func ticketRows(t *domain.Ticket) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "event_id", "owner_id", "quantity", "unit_price", "idempotency_key", "created_at",
	}).AddRow(t.ID, t.EventID, t.OwnerID, t.Quantity, t.UnitPrice, t.IdempotencyKey, t.CreatedAt)
}

// A retried booking whose original already filled the event matches zero
// rows on the conditional update. With the original's key stored, the
// caller gets their ticket back instead of a sold-out error.
func TestTicketRepository_Book_ReplayAfterSellout(t *testing.T) {
	repo, mock := newMockTicketRepo(t)

	original := &domain.Ticket{
		ID:             "t1",
		EventID:        "e1",
		OwnerID:        "u1",
		Quantity:       1,
		UnitPrice:      10000,
		IdempotencyKey: "req-42",
		CreatedAt:      time.Now().UTC(),
	}

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE events`).
		WithArgs("e1", 1, int64(10000)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT .+ FROM tickets WHERE idempotency_key`).
		WithArgs("req-42").
		WillReturnRows(ticketRows(original))
	mock.ExpectRollback()

	resent := *original
	resent.ID = "t2" // retries mint a fresh id, the key is what matches

	got, err := repo.Book(context.Background(), &resent)

	require.NoError(t, err)
	assert.Equal(t, "t1", got.ID)
	assert.Equal(t, "req-42", got.IdempotencyKey)
}

func TestTicketRepository_Book_CapacityExceeded(t *testing.T) {
	repo, mock := newMockTicketRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE events`).
		WithArgs("e1", 2, int64(200)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("e1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectRollback()

	_, err := repo.Book(context.Background(), &domain.Ticket{
		ID: "t1", EventID: "e1", OwnerID: "u1", Quantity: 2, UnitPrice: 100,
	})

	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
}

func TestTicketRepository_Book_EventMissing(t *testing.T) {
	repo, mock := newMockTicketRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE events`).
		WithArgs("gone", 1, int64(100)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("gone").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectRollback()

	_, err := repo.Book(context.Background(), &domain.Ticket{
		ID: "t1", EventID: "gone", OwnerID: "u1", Quantity: 1, UnitPrice: 100,
	})

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

// Only the idempotency-key index marks a replay. A primary-key collision is
// a real error and must not hand back some other ticket.
func TestTicketRepository_Book_PKCollisionIsNotReplay(t *testing.T) {
	repo, mock := newMockTicketRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE events`).
		WithArgs("e1", 1, int64(100)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO tickets`).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "tickets_pkey"})
	mock.ExpectRollback()

	_, err := repo.Book(context.Background(), &domain.Ticket{
		ID: "t1", EventID: "e1", OwnerID: "u1", Quantity: 1, UnitPrice: 100,
		IdempotencyKey: "req-42",
	})

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrTicketNotFound)
}

func TestTicketRepository_Book_KeyConflictReturnsOriginal(t *testing.T) {
	repo, mock := newMockTicketRepo(t)

	original := &domain.Ticket{
		ID: "t1", EventID: "e1", OwnerID: "u1", Quantity: 1, UnitPrice: 100,
		IdempotencyKey: "req-42", CreatedAt: time.Now().UTC(),
	}

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE events`).
		WithArgs("e1", 1, int64(100)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO tickets`).
		WillReturnError(&pq.Error{Code: "23505", Constraint: idempotencyKeyConstraint})
	mock.ExpectRollback()
	mock.ExpectQuery(`SELECT .+ FROM tickets WHERE idempotency_key`).
		WithArgs("req-42").
		WillReturnRows(ticketRows(original))

	resent := *original
	resent.ID = "t2"

	got, err := repo.Book(context.Background(), &resent)

	require.NoError(t, err)
	assert.Equal(t, "t1", got.ID)
}

func TestTicketRepository_Book_SerializationFailure(t *testing.T) {
	repo, mock := newMockTicketRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE events`).
		WithArgs("e1", 1, int64(100)).
		WillReturnError(&pq.Error{Code: "40001"})
	mock.ExpectRollback()

	_, err := repo.Book(context.Background(), &domain.Ticket{
		ID: "t1", EventID: "e1", OwnerID: "u1", Quantity: 1, UnitPrice: 100,
	})

	assert.ErrorIs(t, err, domain.ErrStorageConflict)
}

func TestTicketRepository_Cancel_ReversesBySnapshot(t *testing.T) {
	repo, mock := newMockTicketRepo(t)

	deleted := &domain.Ticket{
		ID: "t1", EventID: "e1", OwnerID: "u1", Quantity: 2, UnitPrice: 150,
		CreatedAt: time.Now().UTC(),
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`DELETE FROM tickets`).
		WithArgs("t1").
		WillReturnRows(ticketRows(deleted))
	mock.ExpectExec(`UPDATE events`).
		WithArgs("e1", 2, int64(300)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	got, err := repo.Cancel(context.Background(), "t1")

	require.NoError(t, err)
	assert.Equal(t, int64(300), got.Total())
}

// The counter reversal touching zero event rows is fine: the ticket
// outlived its event and is still removed.
func TestTicketRepository_Cancel_OrphanedEvent(t *testing.T) {
	repo, mock := newMockTicketRepo(t)

	deleted := &domain.Ticket{
		ID: "t1", EventID: "gone", OwnerID: "u1", Quantity: 1, UnitPrice: 100,
		CreatedAt: time.Now().UTC(),
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`DELETE FROM tickets`).
		WithArgs("t1").
		WillReturnRows(ticketRows(deleted))
	mock.ExpectExec(`UPDATE events`).
		WithArgs("gone", 1, int64(100)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	got, err := repo.Cancel(context.Background(), "t1")

	require.NoError(t, err)
	assert.Equal(t, "t1", got.ID)
}
