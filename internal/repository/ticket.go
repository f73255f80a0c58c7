package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/evento-ems/evento/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const ticketColumns = `id, event_id, owner_id, quantity, unit_price, COALESCE(idempotency_key, ''), created_at`

// idempotencyKeyConstraint names the unique index on tickets.idempotency_key
// (the migration's inline UNIQUE). Other 23505 sources, like a primary key
// collision, must not be mistaken for a replay.
const idempotencyKeyConstraint = "tickets_idempotency_key_key"

type TicketRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewTicketRepo(db *dbpg.DB) *TicketRepository {
	return &TicketRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Book runs the capacity check and the counter increment as one conditional
// update, so two concurrent bookings for the last seats cannot both succeed.
// The ticket insert happens in the same transaction.
func (r *TicketRepository) Book(ctx context.Context, t *domain.Ticket) (*domain.Ticket, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE events
			  SET sold_count = sold_count + $2, income = income + $3, updated_at = now()
			  WHERE id = $1 AND sold_count + $2 <= capacity`
	res, err := tx.ExecContext(ctx, query, t.EventID, t.Quantity, t.Total())
	if err != nil {
		return nil, classifyPgErr(err, "adjust sold count")
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("adjust rows affected: %w", err)
	}
	if rows == 0 {
		// A retry of a booking that already consumed these seats lands
		// here too: the original update filled the event, so the retry's
		// conditional update matches nothing. The stored key identifies
		// the original ticket; that caller is not sold out.
		if t.IdempotencyKey != "" {
			existing, keyErr := r.getByIdempotencyKey(ctx, t.IdempotencyKey)
			if keyErr == nil {
				return existing, nil
			}
			if !errors.Is(keyErr, domain.ErrTicketNotFound) {
				return nil, keyErr
			}
		}

		// Either the event is missing or the remaining capacity is short.
		var exists bool
		checkQuery := `SELECT EXISTS (SELECT 1 FROM events WHERE id = $1)`
		if err = tx.QueryRowContext(ctx, checkQuery, t.EventID).Scan(&exists); err != nil {
			return nil, fmt.Errorf("check event: %w", err)
		}
		if !exists {
			return nil, domain.ErrEventNotFound
		}
		return nil, domain.ErrCapacityExceeded
	}

	insertQuery := `INSERT INTO tickets (id, event_id, owner_id, quantity, unit_price, idempotency_key, created_at)
					VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7)`
	_, err = tx.ExecContext(
		ctx, insertQuery,
		t.ID, t.EventID, t.OwnerID, t.Quantity, t.UnitPrice, t.IdempotencyKey, t.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" &&
			pgErr.Constraint == idempotencyKeyConstraint && t.IdempotencyKey != "" {
			// Same idempotency key seen before: the booking already went
			// through, hand back the original ticket.
			_ = tx.Rollback()
			return r.getByIdempotencyKey(ctx, t.IdempotencyKey)
		}
		return nil, classifyPgErr(err, "insert ticket")
	}

	if err = tx.Commit(); err != nil {
		return nil, classifyPgErr(err, "commit booking")
	}

	return t, nil
}

// Cancel deletes the ticket and reverses the event's counters by the
// ticket's stored snapshot values. If the event no longer exists the
// reversal is skipped and the ticket is still removed.
func (r *TicketRepository) Cancel(ctx context.Context, id string) (*domain.Ticket, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx,
		`DELETE FROM tickets WHERE id = $1 RETURNING `+ticketColumns, id,
	)

	t, err := scanTicket(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTicketNotFound
		}
		return nil, fmt.Errorf("delete ticket: %w", err)
	}

	query := `UPDATE events
			  SET sold_count = sold_count - $2, income = income - $3, updated_at = now()
			  WHERE id = $1`
	if _, err = tx.ExecContext(ctx, query, t.EventID, t.Quantity, t.Total()); err != nil {
		return nil, classifyPgErr(err, "reverse counters")
	}

	if err = tx.Commit(); err != nil {
		return nil, classifyPgErr(err, "commit cancel")
	}

	return t, nil
}

func (r *TicketRepository) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	query := `SELECT ` + ticketColumns + `
			  FROM tickets
			  WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get ticket: %w", err)
	}

	t, err := scanTicket(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTicketNotFound
		}
		return nil, fmt.Errorf("scan ticket: %w", err)
	}

	return t, nil
}

func (r *TicketRepository) getByIdempotencyKey(ctx context.Context, key string) (*domain.Ticket, error) {
	query := `SELECT ` + ticketColumns + `
			  FROM tickets
			  WHERE idempotency_key = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, key)
	if err != nil {
		return nil, fmt.Errorf("get ticket by key: %w", err)
	}

	t, err := scanTicket(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTicketNotFound
		}
		return nil, fmt.Errorf("scan ticket: %w", err)
	}

	return t, nil
}

func (r *TicketRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Ticket, error) {
	query := `SELECT ` + ticketColumns + `
			  FROM tickets
			  WHERE owner_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list tickets by owner: %w", err)
	}
	defer rows.Close()

	var res []*domain.Ticket
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		res = append(res, t)
	}

	return res, rows.Err()
}

func (r *TicketRepository) CountAll(ctx context.Context) (int, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, `SELECT COUNT(*) FROM tickets`)
	if err != nil {
		return 0, fmt.Errorf("count tickets: %w", err)
	}

	var count int
	if err = row.Scan(&count); err != nil {
		return 0, fmt.Errorf("scan ticket count: %w", err)
	}

	return count, nil
}

func (r *TicketRepository) TotalRevenue(ctx context.Context) (int64, error) {
	query := `SELECT COALESCE(SUM(unit_price * quantity), 0) FROM tickets`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query)
	if err != nil {
		return 0, fmt.Errorf("total revenue: %w", err)
	}

	var total int64
	if err = row.Scan(&total); err != nil {
		return 0, fmt.Errorf("scan total revenue: %w", err)
	}

	return total, nil
}

func (r *TicketRepository) RevenueForEvent(ctx context.Context, eventID string) (int64, error) {
	query := `SELECT COALESCE(SUM(unit_price * quantity), 0) FROM tickets WHERE event_id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return 0, fmt.Errorf("event revenue: %w", err)
	}

	var total int64
	if err = row.Scan(&total); err != nil {
		return 0, fmt.Errorf("scan event revenue: %w", err)
	}

	return total, nil
}

func (r *TicketRepository) StatsByEvent(ctx context.Context) (map[string]domain.TicketStats, error) {
	query := `SELECT event_id, SUM(quantity), SUM(unit_price * quantity)
			  FROM tickets
			  GROUP BY event_id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("stats by event: %w", err)
	}
	defer rows.Close()

	res := make(map[string]domain.TicketStats)
	for rows.Next() {
		var eventID string
		var stats domain.TicketStats
		if err = rows.Scan(&eventID, &stats.Sold, &stats.Revenue); err != nil {
			return nil, fmt.Errorf("scan stats: %w", err)
		}
		res[eventID] = stats
	}

	return res, rows.Err()
}

func scanTicket(row rowScanner) (*domain.Ticket, error) {
	var t domain.Ticket
	err := row.Scan(
		&t.ID, &t.EventID, &t.OwnerID, &t.Quantity,
		&t.UnitPrice, &t.IdempotencyKey, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// classifyPgErr maps serialization failures and deadlocks to
// domain.ErrStorageConflict so the service layer can retry once.
func classifyPgErr(err error, op string) error {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "40001", "40P01":
			return fmt.Errorf("%s: %w", op, domain.ErrStorageConflict)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
