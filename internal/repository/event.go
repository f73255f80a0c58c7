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

const eventColumns = `id, owner_id, title, description, organized_by, event_date, location,
	   capacity, ticket_price, sold_count, income, likes, COALESCE(image_path, ''), created_at, updated_at`

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (id, owner_id, title, description, organized_by, event_date, location,
				capacity, ticket_price, sold_count, income, likes, image_path, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 0, 0, 0, NULLIF($10, ''), $11, $11)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.OwnerID, e.Title, e.Description, e.OrganizedBy, e.EventDate,
		e.Location, e.Capacity, e.TicketPrice, e.ImagePath, now,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return e, nil
}

func (r *EventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  ORDER BY event_date DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	return collectEvents(rows)
}

func (r *EventRepository) ListRecent(ctx context.Context, limit int) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  ORDER BY created_at DESC
			  LIMIT $1`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent events: %w", err)
	}
	defer rows.Close()

	return collectEvents(rows)
}

func (r *EventRepository) CountAll(ctx context.Context) (int, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, `SELECT COUNT(*) FROM events`)
	if err != nil {
		return 0, fmt.Errorf("count events: %w", err)
	}

	var count int
	if err = row.Scan(&count); err != nil {
		return 0, fmt.Errorf("scan event count: %w", err)
	}

	return count, nil
}

func (r *EventRepository) CountUpcoming(ctx context.Context, now time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM events WHERE event_date >= $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, now)
	if err != nil {
		return 0, fmt.Errorf("count upcoming events: %w", err)
	}

	var count int
	if err = row.Scan(&count); err != nil {
		return 0, fmt.Errorf("scan upcoming count: %w", err)
	}

	return count, nil
}

// ToggleLike maintains set semantics per (event, user): liking twice is the
// same as liking once, unliking when not liked is a no-op. The likes counter
// moves only when the set membership actually changes, in the same
// transaction.
func (r *EventRepository) ToggleLike(ctx context.Context, eventID, userID string, like bool) (*domain.Event, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var res sql.Result
	if like {
		query := `INSERT INTO event_likes (event_id, user_id)
				  VALUES ($1, $2)
				  ON CONFLICT (event_id, user_id) DO NOTHING`
		res, err = tx.ExecContext(ctx, query, eventID, userID)
	} else {
		query := `DELETE FROM event_likes WHERE event_id = $1 AND user_id = $2`
		res, err = tx.ExecContext(ctx, query, eventID, userID)
	}
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("toggle like: %w", err)
	}

	changed, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("like rows affected: %w", err)
	}

	if changed > 0 {
		delta := 1
		if !like {
			delta = -1
		}
		if _, err = tx.ExecContext(ctx,
			`UPDATE events SET likes = likes + $2, updated_at = now() WHERE id = $1`,
			eventID, delta,
		); err != nil {
			return nil, fmt.Errorf("update likes: %w", err)
		}
	}

	row := tx.QueryRowContext(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1`, eventID)
	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return e, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	var e domain.Event
	err := row.Scan(
		&e.ID, &e.OwnerID, &e.Title, &e.Description, &e.OrganizedBy,
		&e.EventDate, &e.Location, &e.Capacity, &e.TicketPrice,
		&e.SoldCount, &e.Income, &e.Likes, &e.ImagePath,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func collectEvents(rows *sql.Rows) ([]*domain.Event, error) {
	var res []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}
