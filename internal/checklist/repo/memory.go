package repo

import (
	"context"
	"sync"

	"github.com/osystem/os-api/internal/order/entity"
)

// MemoryRepo is an in-memory Repo for tests.
type MemoryRepo struct {
	mu    sync.Mutex
	items []entity.ChecklistItem
}

func NewMemoryRepo() *MemoryRepo { return &MemoryRepo{} }

func (r *MemoryRepo) List(ctx context.Context) ([]entity.ChecklistItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]entity.ChecklistItem{}, r.items...), nil
}

func (r *MemoryRepo) CreateMany(ctx context.Context, items []entity.ChecklistItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, items...)
	return nil
}
