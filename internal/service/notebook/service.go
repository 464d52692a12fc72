// Package notebook implements the user's persisted collection of saved
// snippets: an ordered, deduplicated list, newest first, rewritten to
// durable storage on every mutation.
package notebook

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/memelingo-backend/internal/domain"
)

// Storage persists the whole collection as a single document.
type Storage interface {
	Load(ctx context.Context) (domain.NotebookCollection, error)
	Save(ctx context.Context, c domain.NotebookCollection) error
}

// AddInput is a candidate snippet.
type AddInput struct {
	Type       domain.SavedItemType
	Content    string
	SubContent string
}

// Validate checks the candidate before it touches the collection.
func (in AddInput) Validate() error {
	if !in.Type.IsValid() {
		return domain.ErrInvalidResult
	}
	if in.Content == "" {
		return domain.ErrEmptyInput
	}
	return nil
}

// Service owns the in-memory collection and flushes it on every mutation.
// Mutations are serialized with a mutex; HTTP handlers run concurrently.
type Service struct {
	log   *slog.Logger
	store Storage
	now   func() time.Time

	mu    sync.Mutex
	items domain.NotebookCollection
}

// NewService creates a notebook Service. Call Load before serving requests.
func NewService(logger *slog.Logger, store Storage) *Service {
	return &Service{
		log:   logger.With("service", "notebook"),
		store: store,
		now:   time.Now,
	}
}

// Load reads the persisted collection once at startup. Any load failure is
// logged and the notebook starts empty; the user cannot distinguish "no
// prior data" from "corrupt prior data".
func (s *Service) Load(ctx context.Context) {
	items, err := s.store.Load(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "notebook load failed, starting empty",
			slog.String("error", err.Error()))
		items = domain.NotebookCollection{}
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()

	s.log.InfoContext(ctx, "notebook loaded", slog.Int("items", len(items)))
}

// Items returns a copy of the collection, newest first.
func (s *Service) Items() domain.NotebookCollection {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(domain.NotebookCollection, len(s.items))
	copy(out, s.items)
	return out
}

// Add saves a candidate. A candidate whose Content exactly matches an
// existing item's is a no-op (nil item, revealed=false). On success the new
// item is prepended, the full collection is persisted, and revealed=true
// signals the presentation layer to open the notebook.
func (s *Service) Add(ctx context.Context, in AddInput) (*domain.SavedItem, bool, error) {
	if err := in.Validate(); err != nil {
		return nil, false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.items.ContainsContent(in.Content) {
		return nil, false, nil
	}

	item := domain.SavedItem{
		ID:         uuid.New().String(),
		Type:       in.Type,
		Content:    in.Content,
		SubContent: in.SubContent,
		Timestamp:  s.now().UnixMilli(),
	}
	s.items = append(domain.NotebookCollection{item}, s.items...)

	s.persist(ctx)

	s.log.InfoContext(ctx, "notebook item saved",
		slog.String("id", item.ID),
		slog.String("type", item.Type.String()),
	)
	return &item, true, nil
}

// Remove deletes the item with the given id and reports whether anything was
// removed. The collection is persisted only when something changed.
func (s *Service) Remove(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, it := range s.items {
		if it.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return false
	}

	s.items = append(s.items[:idx:idx], s.items[idx+1:]...)
	s.persist(ctx)

	s.log.InfoContext(ctx, "notebook item removed", slog.String("id", id))
	return true
}

// persist rewrites the whole collection. Failures are logged, never fatal:
// the in-memory state stays authoritative for the process lifetime.
// Callers must hold s.mu.
func (s *Service) persist(ctx context.Context) {
	if err := s.store.Save(ctx, s.items); err != nil {
		s.log.ErrorContext(ctx, "notebook persist failed",
			slog.String("error", err.Error()),
			slog.Int("items", len(s.items)),
		)
	}
}
