package order

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/osystem/os-api/internal/auth"
)

// minPhotoLen is the minimum length of the encoded photo blob accepted at
// creation. Matches the boundary rule of the original request schema.
const minPhotoLen = 100

// Handler exposes HTTP endpoints for service orders. Every endpoint runs
// behind the bearer middleware, so the subject is always in the context.
type Handler struct {
	svc    *Service
	logger *zap.SugaredLogger
}

func NewHandler(svc *Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

// validateInput enforces the creation rules: a non-empty checklist with at
// least one completed item and a photo blob over the minimum size. The
// service layer does not re-check these.
func validateInput(in Input) string {
	if len(in.Checklist) == 0 {
		return "checklist must not be empty"
	}
	if !in.Checklist.HasCompleted() {
		return "checklist needs at least one completed item"
	}
	if len(in.Photo) < minPhotoLen {
		return "photo evidence is required"
	}
	return ""
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	subject, ok := auth.SubjectFromContext(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "could not validate credentials"})
		return
	}
	var in Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.logger.Debugw("invalid order payload", "err", err)
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
		return
	}
	if msg := validateInput(in); msg != "" {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
		return
	}

	id, err := h.svc.Create(r.Context(), in, subject)
	if err != nil {
		h.logger.Warnw("create order failed", "err", err)
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "create failed"})
		return
	}
	h.writeJSON(w, http.StatusCreated, map[string]string{"message": "service order registered", "id": id})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	subject, ok := auth.SubjectFromContext(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "could not validate credentials"})
		return
	}
	orders, err := h.svc.List(r.Context(), subject)
	if err != nil {
		h.logger.Warnw("list orders failed", "err", err)
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "list failed"})
		return
	}
	h.writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	subject, ok := auth.SubjectFromContext(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "could not validate credentials"})
		return
	}
	id := r.PathValue("id")
	var in Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.logger.Debugw("invalid order payload", "err", err)
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
		return
	}

	ok, err := h.svc.Update(r.Context(), id, in, subject)
	if err != nil {
		h.logger.Warnw("update order failed", "err", err, "id", id)
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "update failed"})
		return
	}
	if !ok {
		h.writeJSON(w, http.StatusNotFound, map[string]string{"error": "order not found or access denied"})
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"message": "updated"})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	subject, ok := auth.SubjectFromContext(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "could not validate credentials"})
		return
	}
	id := r.PathValue("id")

	ok, err := h.svc.Delete(r.Context(), id, subject)
	if err != nil {
		h.logger.Warnw("delete order failed", "err", err, "id", id)
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "delete failed"})
		return
	}
	if !ok {
		h.writeJSON(w, http.StatusNotFound, map[string]string{"error": "order not found or access denied"})
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
