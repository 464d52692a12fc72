package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/heartmarshall/memelingo-backend/internal/config"
	"github.com/heartmarshall/memelingo-backend/internal/domain"
	"github.com/heartmarshall/memelingo-backend/internal/service/notebook"
)

type notebookServiceMock struct {
	items      domain.NotebookCollection
	addFunc    func(ctx context.Context, in notebook.AddInput) (*domain.SavedItem, bool, error)
	removeFunc func(ctx context.Context, id string) bool
}

func (m *notebookServiceMock) Items() domain.NotebookCollection {
	return m.items
}

func (m *notebookServiceMock) Add(ctx context.Context, in notebook.AddInput) (*domain.SavedItem, bool, error) {
	return m.addFunc(ctx, in)
}

func (m *notebookServiceMock) Remove(ctx context.Context, id string) bool {
	return m.removeFunc(ctx, id)
}

func TestNotebookList(t *testing.T) {
	t.Parallel()

	svc := &notebookServiceMock{items: domain.NotebookCollection{
		{ID: "a", Type: domain.SavedItemTypeTerm, Content: "rizz", Timestamp: 2},
		{ID: "b", Type: domain.SavedItemTypePhrase, Content: "内卷", Timestamp: 1},
	}}
	h := NewNotebookHandler(svc, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/notebook", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp listResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Count != 2 || len(resp.Items) != 2 {
		t.Fatalf("expected 2 items, got count=%d len=%d", resp.Count, len(resp.Items))
	}
	if resp.Items[0].ID != "a" {
		t.Errorf("expected newest item first, got %q", resp.Items[0].ID)
	}
}

func TestNotebookAdd_Created(t *testing.T) {
	t.Parallel()

	svc := &notebookServiceMock{
		addFunc: func(_ context.Context, in notebook.AddInput) (*domain.SavedItem, bool, error) {
			return &domain.SavedItem{ID: "new", Type: in.Type, Content: in.Content}, true, nil
		},
	}
	h := NewNotebookHandler(svc, testLogger())

	body := `{"type":"term","content":"rizz","subContent":"魅力"}`
	req := httptest.NewRequest(http.MethodPost, "/api/notebook/items", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Add(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", rec.Code)
	}

	var resp addItemResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Revealed {
		t.Error("expected revealed=true")
	}
	if resp.Item == nil || resp.Item.ID != "new" {
		t.Errorf("unexpected item: %+v", resp.Item)
	}
}

func TestNotebookAdd_Duplicate(t *testing.T) {
	t.Parallel()

	svc := &notebookServiceMock{
		addFunc: func(_ context.Context, _ notebook.AddInput) (*domain.SavedItem, bool, error) {
			return nil, false, nil
		},
	}
	h := NewNotebookHandler(svc, testLogger())

	body := `{"type":"term","content":"rizz"}`
	req := httptest.NewRequest(http.MethodPost, "/api/notebook/items", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Add(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp addItemResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Revealed {
		t.Error("expected revealed=false for duplicate")
	}
	if resp.Item != nil {
		t.Errorf("expected no item, got %+v", resp.Item)
	}
}

func TestNotebookAdd_InvalidInput400(t *testing.T) {
	t.Parallel()

	svc := &notebookServiceMock{
		addFunc: func(_ context.Context, _ notebook.AddInput) (*domain.SavedItem, bool, error) {
			return nil, false, domain.ErrEmptyInput
		},
	}
	h := NewNotebookHandler(svc, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/notebook/items", strings.NewReader(`{"type":"term"}`))
	rec := httptest.NewRecorder()

	h.Add(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestNotebookRemove(t *testing.T) {
	t.Parallel()

	svc := &notebookServiceMock{
		removeFunc: func(_ context.Context, id string) bool {
			return id == "exists"
		},
	}
	router := NewRouter(testLogger(), &sessionServiceMock{}, svc, config.CORSConfig{}, "test")

	req := httptest.NewRequest(http.MethodDelete, "/api/notebook/items/exists", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/notebook/items/missing", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}
