package repo

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/osystem/os-api/internal/order/entity"
	"github.com/osystem/os-api/pkg/utilities"
)

// Repo stores the default checklist template offered to clients when they
// open a new service order.
type Repo interface {
	List(ctx context.Context) ([]entity.ChecklistItem, error)
	CreateMany(ctx context.Context, items []entity.ChecklistItem) error
}

// PostgresRepo provides data access for the checklist_templates table.
type PostgresRepo struct {
	db *sqlx.DB
}

func NewPostgresRepo(db *sqlx.DB) *PostgresRepo { return &PostgresRepo{db: db} }

// EnsureTable creates the checklist_templates table if not exists
// (idempotent).
func (r *PostgresRepo) EnsureTable(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS checklist_templates (
  id varchar(32) PRIMARY KEY,
  task TEXT NOT NULL,
  done BOOLEAN NOT NULL DEFAULT false,
  position INT NOT NULL DEFAULT 0
);
`
	_, err := r.db.ExecContext(ctx, ddl)
	return err
}

// List returns template items in their seeded order.
func (r *PostgresRepo) List(ctx context.Context) ([]entity.ChecklistItem, error) {
	const q = `SELECT task, done FROM checklist_templates ORDER BY position`
	items := []entity.ChecklistItem{}
	if err := r.db.SelectContext(ctx, &items, q); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateMany appends template items, preserving the given order.
func (r *PostgresRepo) CreateMany(ctx context.Context, items []entity.ChecklistItem) error {
	const q = `INSERT INTO checklist_templates (id, task, done, position) VALUES ($1, $2, $3, $4)`
	for i, item := range items {
		if _, err := r.db.ExecContext(ctx, q, utilities.NewKSUID(), item.Task, item.Done, i); err != nil {
			return err
		}
	}
	return nil
}
