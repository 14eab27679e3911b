package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osystem/os-api/internal/order/entity"
	"github.com/osystem/os-api/internal/order/repo"
)

// Input is the caller-supplied portion of a service order. Owner, id and
// timestamps are never taken from the caller.
type Input struct {
	Description string           `json:"description"`
	Checklist   entity.Checklist `json:"checklist"`
	Photo       string           `json:"photo"`
}

// Service implements the ownership-scoped lifecycle of service orders:
// each mutation is allowed only for the identity stamped on the record
// at creation.
type Service struct {
	store repo.Store
}

func NewService(store repo.Store) *Service {
	return &Service{store: store}
}

// ownedBy is the single authorization predicate shared by Update and
// Delete.
func ownedBy(o *entity.ServiceOrder, actingEmail string) bool {
	return o != nil && o.OwnerEmail == actingEmail
}

// Create stamps the owner and creation time and persists a new order.
func (s *Service) Create(ctx context.Context, in Input, ownerEmail string) (string, error) {
	o := &entity.ServiceOrder{
		Description: in.Description,
		Checklist:   in.Checklist,
		Photo:       in.Photo,
		OwnerEmail:  ownerEmail,
		CreatedAt:   time.Now().UTC(),
	}
	id, err := s.store.Create(ctx, o)
	if err != nil {
		return "", fmt.Errorf("create order: %w", err)
	}
	return id, nil
}

// List returns the caller's orders, at most 100.
func (s *Service) List(ctx context.Context, ownerEmail string) ([]entity.ServiceOrder, error) {
	orders, err := s.store.ListByOwner(ctx, ownerEmail)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// Update replaces the caller-editable fields of an order. It returns
// (false, nil) both when the order is absent and when it is owned by
// someone else, so a non-owner cannot learn whether the id exists. The
// stored owner and creation time always survive the update.
func (s *Service) Update(ctx context.Context, id string, in Input, actingEmail string) (bool, error) {
	existing, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("load order: %w", err)
	}
	if !ownedBy(existing, actingEmail) {
		return false, nil
	}

	now := time.Now().UTC()
	next := &entity.ServiceOrder{
		ID:          id,
		Description: in.Description,
		Checklist:   in.Checklist,
		Photo:       in.Photo,
		OwnerEmail:  existing.OwnerEmail,
		CreatedAt:   existing.CreatedAt,
		UpdatedAt:   &now,
	}
	if err := s.store.Update(ctx, next); err != nil {
		return false, fmt.Errorf("update order: %w", err)
	}
	return true, nil
}

// Delete permanently removes an order. Failure signaling matches Update:
// absent and not-owned are indistinguishable.
func (s *Service) Delete(ctx context.Context, id string, actingEmail string) (bool, error) {
	existing, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("load order: %w", err)
	}
	if !ownedBy(existing, actingEmail) {
		return false, nil
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return false, fmt.Errorf("delete order: %w", err)
	}
	return true, nil
}
