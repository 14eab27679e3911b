package repo

import (
	"context"
	"sync"

	"github.com/osystem/os-api/internal/order/entity"
	"github.com/osystem/os-api/pkg/utilities"
)

// MemoryStore is an in-memory Store for tests and local runs without a
// database. Insertion order is preserved for ListByOwner.
type MemoryStore struct {
	mu       sync.Mutex
	byID     map[string]*entity.ServiceOrder
	idsOrder []string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{byID: make(map[string]*entity.ServiceOrder)}
}

func cloneOrder(o *entity.ServiceOrder) *entity.ServiceOrder {
	cp := *o
	cp.Checklist = append(entity.Checklist(nil), o.Checklist...)
	if o.UpdatedAt != nil {
		t := *o.UpdatedAt
		cp.UpdatedAt = &t
	}
	return &cp
}

func (r *MemoryStore) Create(ctx context.Context, o *entity.ServiceOrder) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := cloneOrder(o)
	if cp.ID == "" {
		cp.ID = utilities.NewKSUID()
	}
	r.byID[cp.ID] = cp
	r.idsOrder = append(r.idsOrder, cp.ID)
	return cp.ID, nil
}

func (r *MemoryStore) ListByOwner(ctx context.Context, ownerEmail string) ([]entity.ServiceOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []entity.ServiceOrder{}
	for _, id := range r.idsOrder {
		o := r.byID[id]
		if o.OwnerEmail != ownerEmail {
			continue
		}
		out = append(out, *cloneOrder(o))
		if len(out) == listCap {
			break
		}
	}
	return out, nil
}

func (r *MemoryStore) GetByID(ctx context.Context, id string) (*entity.ServiceOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneOrder(o), nil
}

func (r *MemoryStore) Update(ctx context.Context, o *entity.ServiceOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[o.ID]; !ok {
		return nil
	}
	r.byID[o.ID] = cloneOrder(o)
	return nil
}

func (r *MemoryStore) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return nil
	}
	delete(r.byID, id)
	for i, v := range r.idsOrder {
		if v == id {
			r.idsOrder = append(r.idsOrder[:i], r.idsOrder[i+1:]...)
			break
		}
	}
	return nil
}
