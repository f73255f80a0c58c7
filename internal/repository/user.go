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

const userColumns = `id, name, email, password_hash, role, email_verified, phone_verified, created_at`

type UserRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewUserRepo(db *dbpg.DB) *UserRepository {
	return &UserRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (id, name, email, password_hash, role, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		user.ID, user.Name, user.Email, user.PasswordHash, user.Role, user.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT ` + userColumns + `
			  FROM users
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	return scanUser(row)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + `
			  FROM users
			  WHERE email = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, email)
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	return scanUser(row)
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	query := `SELECT ` + userColumns + `
			  FROM users
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var res []*domain.User
	for rows.Next() {
		var u domain.User
		if err = rows.Scan(
			&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role,
			&u.EmailVerified, &u.PhoneVerified, &u.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		res = append(res, &u)
	}

	return res, rows.Err()
}

func (r *UserRepository) Count(ctx context.Context) (int, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, `SELECT COUNT(*) FROM users`)
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}

	var count int
	if err = row.Scan(&count); err != nil {
		return 0, fmt.Errorf("scan user count: %w", err)
	}

	return count, nil
}

func (r *UserRepository) SaveEmailToken(ctx context.Context, userID, token string) error {
	return r.saveToken(ctx, `UPDATE users SET email_token = $2 WHERE id = $1`, userID, token, "save email token")
}

func (r *UserRepository) SavePhoneCode(ctx context.Context, userID, code string) error {
	return r.saveToken(ctx, `UPDATE users SET phone_code = $2 WHERE id = $1`, userID, code, "save phone code")
}

func (r *UserRepository) saveToken(ctx context.Context, query, userID, token, op string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, userID, token)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s rows affected: %w", op, err)
	}
	if rows == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}

// MarkEmailVerified flips the flag only when the presented token matches a
// pending one; a matched token is consumed.
func (r *UserRepository) MarkEmailVerified(ctx context.Context, token string) error {
	query := `UPDATE users
			  SET email_verified = TRUE, email_token = NULL
			  WHERE email_token = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, token)
	if err != nil {
		return fmt.Errorf("mark email verified: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("verify rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrVerificationMismatch
	}

	return nil
}

func (r *UserRepository) MarkPhoneVerified(ctx context.Context, userID, code string) error {
	query := `UPDATE users
			  SET phone_verified = TRUE, phone_code = NULL
			  WHERE id = $1 AND phone_code = $2`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, userID, code)
	if err != nil {
		return fmt.Errorf("mark phone verified: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("verify rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrVerificationMismatch
	}

	return nil
}

func scanUser(row rowScanner) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role,
		&u.EmailVerified, &u.PhoneVerified, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}

	return &u, nil
}
