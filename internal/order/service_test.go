package order

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/osystem/os-api/internal/order/entity"
	"github.com/osystem/os-api/internal/order/repo"
)

func testInput(desc string) Input {
	return Input{
		Description: desc,
		Checklist:   entity.Checklist{{Task: "check cables", Done: true}},
		Photo:       "photo-blob",
	}
}

func TestCreate_StampsOwnerAndCreatedAt(t *testing.T) {
	t.Parallel()
	store := repo.NewMemoryStore()
	svc := NewService(store)
	ctx := context.Background()

	before := time.Now().UTC()
	id, err := svc.Create(ctx, testInput("fix rack"), "alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := store.GetByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", got.OwnerEmail)
	require.False(t, got.CreatedAt.Before(before))
	require.Nil(t, got.UpdatedAt)
}

func TestList_OnlyOwnRecords(t *testing.T) {
	t.Parallel()
	store := repo.NewMemoryStore()
	svc := NewService(store)
	ctx := context.Background()

	idAlice, err := svc.Create(ctx, testInput("alice's order"), "alice@example.com")
	require.NoError(t, err)
	_, err = svc.Create(ctx, testInput("bob's order"), "bob@example.com")
	require.NoError(t, err)

	orders, err := svc.List(ctx, "alice@example.com")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Equal(t, idAlice, orders[0].ID)
	require.Equal(t, "alice@example.com", orders[0].OwnerEmail)
}

func TestList_CappedAt100(t *testing.T) {
	t.Parallel()
	store := repo.NewMemoryStore()
	svc := NewService(store)
	ctx := context.Background()

	for i := 0; i < 105; i++ {
		_, err := svc.Create(ctx, testInput(fmt.Sprintf("order %d", i)), "alice@example.com")
		require.NoError(t, err)
	}

	orders, err := svc.List(ctx, "alice@example.com")
	require.NoError(t, err)
	require.Len(t, orders, 100)
}

func TestUpdate_NonOwnerFailsAndLeavesRecordUnchanged(t *testing.T) {
	t.Parallel()
	store := repo.NewMemoryStore()
	svc := NewService(store)
	ctx := context.Background()

	id, err := svc.Create(ctx, testInput("original"), "alice@example.com")
	require.NoError(t, err)

	ok, err := svc.Update(ctx, id, testInput("hijacked"), "bob@example.com")
	require.NoError(t, err)
	require.False(t, ok)

	got, err := store.GetByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "original", got.Description)
	require.Equal(t, "alice@example.com", got.OwnerEmail)
	require.Nil(t, got.UpdatedAt)
}

func TestUpdate_AbsentAndNotOwnedAreSameSignal(t *testing.T) {
	t.Parallel()
	store := repo.NewMemoryStore()
	svc := NewService(store)
	ctx := context.Background()

	id, err := svc.Create(ctx, testInput("original"), "alice@example.com")
	require.NoError(t, err)

	okMissing, errMissing := svc.Update(ctx, "no-such-id", testInput("x"), "bob@example.com")
	okForeign, errForeign := svc.Update(ctx, id, testInput("x"), "bob@example.com")

	require.NoError(t, errMissing)
	require.NoError(t, errForeign)
	require.False(t, okMissing)
	require.False(t, okForeign)
}

func TestUpdate_PreservesOwnerAndCreatedAt(t *testing.T) {
	t.Parallel()
	store := repo.NewMemoryStore()
	svc := NewService(store)
	ctx := context.Background()

	id, err := svc.Create(ctx, testInput("original"), "alice@example.com")
	require.NoError(t, err)
	created, err := store.GetByID(ctx, id)
	require.NoError(t, err)

	ok, err := svc.Update(ctx, id, Input{
		Description: "revised",
		Checklist:   entity.Checklist{{Task: "test PSU", Done: false}},
		Photo:       "new-photo-blob",
	}, "alice@example.com")
	require.NoError(t, err)
	require.True(t, ok)

	got, err := store.GetByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "revised", got.Description)
	require.Equal(t, "alice@example.com", got.OwnerEmail)
	require.Equal(t, created.CreatedAt, got.CreatedAt)
	require.NotNil(t, got.UpdatedAt)
}

func TestUpdate_UpdatedAtIncreasesMonotonically(t *testing.T) {
	t.Parallel()
	store := repo.NewMemoryStore()
	svc := NewService(store)
	ctx := context.Background()

	id, err := svc.Create(ctx, testInput("original"), "alice@example.com")
	require.NoError(t, err)

	ok, err := svc.Update(ctx, id, testInput("first"), "alice@example.com")
	require.NoError(t, err)
	require.True(t, ok)
	afterFirst, err := store.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, afterFirst.UpdatedAt)

	time.Sleep(5 * time.Millisecond)

	ok, err = svc.Update(ctx, id, testInput("second"), "alice@example.com")
	require.NoError(t, err)
	require.True(t, ok)
	afterSecond, err := store.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, afterSecond.UpdatedAt)
	require.True(t, afterSecond.UpdatedAt.After(*afterFirst.UpdatedAt))
}

func TestDelete_OwnerOnlyAndPermanent(t *testing.T) {
	t.Parallel()
	store := repo.NewMemoryStore()
	svc := NewService(store)
	ctx := context.Background()

	id, err := svc.Create(ctx, testInput("to delete"), "alice@example.com")
	require.NoError(t, err)

	ok, err := svc.Delete(ctx, id, "bob@example.com")
	require.NoError(t, err)
	require.False(t, ok)
	_, err = store.GetByID(ctx, id)
	require.NoError(t, err)

	ok, err = svc.Delete(ctx, id, "alice@example.com")
	require.NoError(t, err)
	require.True(t, ok)

	_, err = store.GetByID(ctx, id)
	require.ErrorIs(t, err, repo.ErrNotFound)
}

func TestDelete_AbsentIsNotAnError(t *testing.T) {
	t.Parallel()
	store := repo.NewMemoryStore()
	svc := NewService(store)
	ctx := context.Background()

	ok, err := svc.Delete(ctx, "no-such-id", "alice@example.com")
	require.NoError(t, err)
	require.False(t, ok)

	// store-level delete of an unknown id is a no-op as well
	require.NoError(t, store.Delete(ctx, "no-such-id"))
}
