// Package session coordinates one translation session: the translation call,
// then (strictly after it succeeds) the optional illustration call, with
// independent loading flags for each phase.
package session

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/heartmarshall/memelingo-backend/internal/domain"
)

// GenericErrorMessage is the only translation failure text shown to the
// user; the underlying cause is logged, never displayed.
const GenericErrorMessage = "Oops! Something went wrong. Please try again."

// Translator produces a structured translation for raw user input.
type Translator interface {
	Translate(ctx context.Context, input string) (*domain.TranslationResult, error)
}

// Illustrator renders an image for a translation's image prompt.
type Illustrator interface {
	Illustrate(ctx context.Context, description string) (*domain.Illustration, error)
}

// State is a snapshot of the current session. Result and Illustration are
// immutable once set; a new submit replaces the whole state.
type State struct {
	IsTranslating  bool
	IsIllustrating bool
	Result         *domain.TranslationResult
	Illustration   *domain.Illustration
	LastError      string
}

// Service is the session state machine. It does not debounce: guarding the
// trigger while a translation is in flight is the transport's job. A late
// result from a superseded session is fenced out by sequence number and
// discarded.
type Service struct {
	log         *slog.Logger
	translator  Translator
	illustrator Illustrator

	mu   sync.Mutex
	seq  uint64
	st   State
	done chan struct{}
}

// NewService creates a session Service. illustrator may be nil, in which
// case illustrations stay absent (the anthropic provider has no image
// model).
func NewService(logger *slog.Logger, t Translator, i Illustrator) *Service {
	return &Service{
		log:         logger.With("service", "session"),
		translator:  t,
		illustrator: i,
	}
}

// State returns a snapshot of the current session.
func (s *Service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st
}

// Submit starts a new session for the given text. Whitespace-only input is
// rejected before any remote call and leaves the state untouched. Otherwise
// the previous result, illustration, and error are cleared, and the
// translation is fired asynchronously; poll State for progress.
func (s *Service) Submit(ctx context.Context, text string) error {
	input := strings.TrimSpace(text)
	if input == "" {
		return domain.ErrEmptyInput
	}

	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.st = State{IsTranslating: true}
	done := make(chan struct{})
	s.done = done
	s.mu.Unlock()

	s.log.InfoContext(ctx, "session started", slog.Uint64("session", seq))

	// Detach from the request lifetime but keep context values (request id).
	go s.run(context.WithoutCancel(ctx), seq, input, done)
	return nil
}

// Wait blocks until the most recently submitted session settles. No-op when
// idle.
func (s *Service) Wait() {
	s.mu.Lock()
	done := s.done
	s.mu.Unlock()
	if done != nil {
		<-done
	}
}

func (s *Service) run(ctx context.Context, seq uint64, input string, done chan struct{}) {
	defer close(done)

	result, err := s.translator.Translate(ctx, input)
	if err != nil {
		s.log.ErrorContext(ctx, "translation failed",
			slog.Uint64("session", seq),
			slog.String("error", err.Error()),
		)
		s.mu.Lock()
		if seq == s.seq {
			s.st = State{LastError: GenericErrorMessage}
		}
		s.mu.Unlock()
		return
	}

	s.mu.Lock()
	if seq != s.seq {
		s.mu.Unlock()
		return // superseded while translating
	}
	s.st.IsTranslating = false
	s.st.Result = result
	illustrate := result.ImagePrompt != "" && s.illustrator != nil
	s.st.IsIllustrating = illustrate
	s.mu.Unlock()

	if !illustrate {
		return
	}

	img, err := s.illustrator.Illustrate(ctx, result.ImagePrompt)
	if err != nil {
		// Soft failure: the illustration is an optional enhancement and
		// never invalidates the translation result.
		s.log.WarnContext(ctx, "illustration failed",
			slog.Uint64("session", seq),
			slog.String("error", err.Error()),
		)
		img = nil
	}

	s.mu.Lock()
	if seq == s.seq {
		s.st.IsIllustrating = false
		s.st.Illustration = img
	}
	s.mu.Unlock()
}
