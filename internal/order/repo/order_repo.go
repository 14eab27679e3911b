package repo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/osystem/os-api/internal/order/entity"
	"github.com/osystem/os-api/pkg/utilities"
)

// ErrNotFound is returned when no service order matches the given id.
var ErrNotFound = errors.New("service order not found")

// listCap bounds ListByOwner results. There is no pagination contract.
const listCap = 100

// Store is the persistence capability set for service orders. The Postgres
// implementation backs the service; the in-memory one backs tests.
type Store interface {
	Create(ctx context.Context, o *entity.ServiceOrder) (string, error)
	ListByOwner(ctx context.Context, ownerEmail string) ([]entity.ServiceOrder, error)
	GetByID(ctx context.Context, id string) (*entity.ServiceOrder, error)
	Update(ctx context.Context, o *entity.ServiceOrder) error
	Delete(ctx context.Context, id string) error
}

// PostgresStore provides data access for the service_orders table using sqlx.
type PostgresStore struct {
	db *sqlx.DB
}

func NewPostgresStore(db *sqlx.DB) *PostgresStore { return &PostgresStore{db: db} }

// EnsureTable creates the service_orders table if not exists (idempotent).
func (r *PostgresStore) EnsureTable(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS service_orders (
  id varchar(32) PRIMARY KEY,
  description TEXT NOT NULL DEFAULT '',
  checklist JSONB NOT NULL DEFAULT '[]'::jsonb,
  photo TEXT NOT NULL DEFAULT '',
  owner_email TEXT NOT NULL,
  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
  updated_at TIMESTAMPTZ
);
CREATE INDEX IF NOT EXISTS idx_service_orders_owner_email ON service_orders(owner_email);
`
	_, err := r.db.ExecContext(ctx, ddl)
	return err
}

// Create inserts a new order row, generating its id, and returns the id.
func (r *PostgresStore) Create(ctx context.Context, o *entity.ServiceOrder) (string, error) {
	if o.ID == "" {
		o.ID = utilities.NewKSUID()
	}
	const q = `INSERT INTO service_orders (id, description, checklist, photo, owner_email, created_at, updated_at)
	  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if _, err := r.db.ExecContext(ctx, q,
		o.ID, o.Description, o.Checklist, o.Photo, o.OwnerEmail, o.CreatedAt, o.UpdatedAt); err != nil {
		return "", err
	}
	return o.ID, nil
}

// ListByOwner returns up to 100 orders belonging to ownerEmail in
// store-natural (insertion) order.
func (r *PostgresStore) ListByOwner(ctx context.Context, ownerEmail string) ([]entity.ServiceOrder, error) {
	const q = `SELECT id, description, checklist, photo, owner_email, created_at, updated_at
	  FROM service_orders WHERE owner_email=$1 LIMIT $2`
	rows := []entity.ServiceOrder{}
	if err := r.db.SelectContext(ctx, &rows, q, ownerEmail, listCap); err != nil {
		return nil, err
	}
	return rows, nil
}

// GetByID fetches an order by primary key or ErrNotFound.
func (r *PostgresStore) GetByID(ctx context.Context, id string) (*entity.ServiceOrder, error) {
	const q = `SELECT id, description, checklist, photo, owner_email, created_at, updated_at
	  FROM service_orders WHERE id=$1`
	var row entity.ServiceOrder
	if err := r.db.GetContext(ctx, &row, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

// Update replaces every field of the row identified by o.ID. A missing id
// is a no-op; callers pre-check existence.
func (r *PostgresStore) Update(ctx context.Context, o *entity.ServiceOrder) error {
	const q = `UPDATE service_orders
	  SET description=$2, checklist=$3, photo=$4, owner_email=$5, created_at=$6, updated_at=$7
	  WHERE id=$1`
	_, err := r.db.ExecContext(ctx, q,
		o.ID, o.Description, o.Checklist, o.Photo, o.OwnerEmail, o.CreatedAt, o.UpdatedAt)
	return err
}

// Delete removes the row identified by id. A missing id is a no-op.
func (r *PostgresStore) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM service_orders WHERE id=$1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}
