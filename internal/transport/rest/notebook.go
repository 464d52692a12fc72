package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/memelingo-backend/internal/domain"
	"github.com/heartmarshall/memelingo-backend/internal/service/notebook"
)

// notebookService defines the minimal interface needed by NotebookHandler.
type notebookService interface {
	Items() domain.NotebookCollection
	Add(ctx context.Context, in notebook.AddInput) (*domain.SavedItem, bool, error)
	Remove(ctx context.Context, id string) bool
}

// NotebookHandler serves the saved-snippets endpoints.
type NotebookHandler struct {
	svc notebookService
	log *slog.Logger
}

// NewNotebookHandler creates a NotebookHandler.
func NewNotebookHandler(svc notebookService, logger *slog.Logger) *NotebookHandler {
	return &NotebookHandler{svc: svc, log: logger.With("handler", "notebook")}
}

type addItemRequest struct {
	Type       string `json:"type"`
	Content    string `json:"content"`
	SubContent string `json:"subContent"`
}

type addItemResponse struct {
	Item     *domain.SavedItem `json:"item,omitempty"`
	Revealed bool              `json:"revealed"`
}

type listResponse struct {
	Count int                       `json:"count"`
	Items domain.NotebookCollection `json:"items"`
}

// List handles GET /api/notebook.
func (h *NotebookHandler) List(w http.ResponseWriter, r *http.Request) {
	items := h.svc.Items()
	writeJSON(w, http.StatusOK, listResponse{Count: len(items), Items: items})
}

// Add handles POST /api/notebook/items. A duplicate is not an error: the
// response reports revealed=false and carries no item.
func (h *NotebookHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, revealed, err := h.svc.Add(r.Context(), notebook.AddInput{
		Type:       domain.SavedItemType(req.Type),
		Content:    req.Content,
		SubContent: req.SubContent,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyInput), errors.Is(err, domain.ErrInvalidResult):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			h.log.ErrorContext(r.Context(), "notebook add failed", slog.String("error", err.Error()))
			writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	status := http.StatusOK
	if revealed {
		status = http.StatusCreated
	}
	writeJSON(w, status, addItemResponse{Item: item, Revealed: revealed})
}

// Remove handles DELETE /api/notebook/items/{id}.
func (h *NotebookHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !h.svc.Remove(r.Context(), id) {
		writeError(w, http.StatusNotFound, "item not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
