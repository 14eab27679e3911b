package checklist

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/osystem/os-api/internal/checklist/repo"
	"github.com/osystem/os-api/internal/order/entity"
)

// Handler serves the default checklist template.
type Handler struct {
	repo   repo.Repo
	logger *zap.SugaredLogger
}

func NewHandler(r repo.Repo, logger *zap.SugaredLogger) *Handler {
	return &Handler{repo: r, logger: logger}
}

// List returns the seeded template items, or a single generic item when
// nothing has been seeded yet.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.repo.List(r.Context())
	if err != nil {
		h.logger.Warnw("list checklist template failed", "err", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "list failed"})
		return
	}
	if len(items) == 0 {
		items = []entity.ChecklistItem{{Task: "Verificação Geral", Done: false}}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(items)
}
