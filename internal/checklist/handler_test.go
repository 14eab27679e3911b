package checklist

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/osystem/os-api/internal/checklist/repo"
	"github.com/osystem/os-api/internal/order/entity"
)

func TestList_FallbackWhenEmpty(t *testing.T) {
	t.Parallel()
	h := NewHandler(repo.NewMemoryRepo(), zap.NewNop().Sugar())

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest("GET", "/config/checklist", nil))

	require.Equal(t, 200, rec.Code)
	var items []entity.ChecklistItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	require.Equal(t, "Verificação Geral", items[0].Task)
	require.False(t, items[0].Done)
}

func TestList_ReturnsSeededItemsInOrder(t *testing.T) {
	t.Parallel()
	r := repo.NewMemoryRepo()
	seeded := []entity.ChecklistItem{
		{Task: "Verificar cabos de rede", Done: false},
		{Task: "Testar fontes de energia", Done: false},
	}
	require.NoError(t, r.CreateMany(context.Background(), seeded))
	h := NewHandler(r, zap.NewNop().Sugar())

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest("GET", "/config/checklist", nil))

	require.Equal(t, 200, rec.Code)
	var items []entity.ChecklistItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Equal(t, seeded, items)
}
