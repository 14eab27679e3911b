package repo

import (
	"context"
	"sync"
	"time"

	"github.com/osystem/os-api/internal/user/entity"
	"github.com/osystem/os-api/pkg/utilities"
)

// MemoryDirectory is an in-memory Directory for tests and local runs
// without a database.
type MemoryDirectory struct {
	mu       sync.Mutex
	byID     map[string]*entity.Account
	idsOrder []string
}

func NewMemoryDirectory() *MemoryDirectory {
	return &MemoryDirectory{byID: make(map[string]*entity.Account)}
}

func (r *MemoryDirectory) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range r.idsOrder {
		if a := r.byID[id]; a.Email == email {
			cp := *a
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryDirectory) Create(ctx context.Context, a *entity.Account) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range r.idsOrder {
		if r.byID[id].Email == a.Email {
			return "", ErrDuplicateEmail
		}
	}
	cp := *a
	if cp.ID == "" {
		cp.ID = utilities.NewKSUID()
	}
	if cp.CreatedAt.IsZero() {
		cp.CreatedAt = time.Now()
	}
	r.byID[cp.ID] = &cp
	r.idsOrder = append(r.idsOrder, cp.ID)
	a.ID = cp.ID
	return cp.ID, nil
}

func (r *MemoryDirectory) GetByID(ctx context.Context, id string) (*entity.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *a
	return &cp, nil
}
