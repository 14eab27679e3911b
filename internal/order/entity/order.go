package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// ChecklistItem is one task of a service order's checklist.
type ChecklistItem struct {
	Task string `json:"task"`
	Done bool   `json:"done"`
}

// Checklist is an order-preserving sequence of checklist items, stored as
// a JSONB array.
type Checklist []ChecklistItem

// HasCompleted reports whether at least one item is marked done.
func (c Checklist) HasCompleted() bool {
	for _, item := range c {
		if item.Done {
			return true
		}
	}
	return false
}

func (c Checklist) Value() (driver.Value, error) {
	if c == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(c)
}

func (c *Checklist) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*c = nil
		return nil
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	default:
		return fmt.Errorf("unsupported checklist source type %T", src)
	}
}

// ServiceOrder represents a row in the `service_orders` table.
// OwnerEmail and CreatedAt are set once at creation and never change;
// UpdatedAt is nil until the first update.
type ServiceOrder struct {
	ID          string     `db:"id" json:"id"`
	Description string     `db:"description" json:"description"`
	Checklist   Checklist  `db:"checklist" json:"checklist"`
	Photo       string     `db:"photo" json:"photo"`
	OwnerEmail  string     `db:"owner_email" json:"owner_email"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}
