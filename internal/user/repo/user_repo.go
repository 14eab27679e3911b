package repo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/osystem/os-api/internal/user/entity"
	"github.com/osystem/os-api/pkg/utilities"
)

var (
	// ErrNotFound is returned when no account matches the lookup.
	ErrNotFound = errors.New("account not found")
	// ErrDuplicateEmail is returned when an insert hits the unique index
	// on email. Callers are expected to check uniqueness first; this is
	// the backstop for the race between check and insert.
	ErrDuplicateEmail = errors.New("email already registered")
)

// Directory is the account lookup/creation capability set. The Postgres
// implementation backs the service; the in-memory one backs tests.
type Directory interface {
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)
	Create(ctx context.Context, a *entity.Account) (string, error)
	GetByID(ctx context.Context, id string) (*entity.Account, error)
}

// PostgresDirectory provides data access for the users table using sqlx.
type PostgresDirectory struct {
	db *sqlx.DB
}

func NewPostgresDirectory(db *sqlx.DB) *PostgresDirectory { return &PostgresDirectory{db: db} }

// EnsureTable creates the users table if not exists (idempotent).
func (r *PostgresDirectory) EnsureTable(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS users (
  id varchar(32) PRIMARY KEY,
  email TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  display_name TEXT NOT NULL DEFAULT '',
  active BOOLEAN NOT NULL DEFAULT true,
  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(email);
`
	_, err := r.db.ExecContext(ctx, ddl)
	return err
}

// FindByEmail returns the account matched by email or ErrNotFound.
// Emails are matched exactly as stored.
func (r *PostgresDirectory) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	const q = `SELECT id, email, password_hash, display_name, active, created_at
	  FROM users WHERE email=$1`
	var row entity.Account
	if err := r.db.GetContext(ctx, &row, q, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

// Create inserts a new account row and returns its generated id.
func (r *PostgresDirectory) Create(ctx context.Context, a *entity.Account) (string, error) {
	if a.ID == "" {
		a.ID = utilities.NewKSUID()
	}
	const q = `INSERT INTO users (id, email, password_hash, display_name, active)
	  VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.db.ExecContext(ctx, q, a.ID, a.Email, a.PasswordHash, a.DisplayName, a.Active); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return "", ErrDuplicateEmail
		}
		return "", err
	}
	return a.ID, nil
}

// GetByID fetches an account by primary key or ErrNotFound.
func (r *PostgresDirectory) GetByID(ctx context.Context, id string) (*entity.Account, error) {
	const q = `SELECT id, email, password_hash, display_name, active, created_at
	  FROM users WHERE id=$1`
	var row entity.Account
	if err := r.db.GetContext(ctx, &row, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}
