package rest

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/memelingo-backend/internal/domain"
	"github.com/heartmarshall/memelingo-backend/internal/service/session"
)

// sessionService defines the minimal interface needed by SessionHandler.
type sessionService interface {
	Submit(ctx context.Context, text string) error
	State() session.State
}

// SessionHandler serves the translation session endpoints.
type SessionHandler struct {
	svc sessionService
	log *slog.Logger
}

// NewSessionHandler creates a SessionHandler.
func NewSessionHandler(svc sessionService, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{svc: svc, log: logger.With("handler", "session")}
}

type translateRequest struct {
	Text string `json:"text"`
}

type sessionResponse struct {
	IsTranslating  bool                      `json:"isTranslating"`
	IsIllustrating bool                      `json:"isIllustrating"`
	Result         *domain.TranslationResult `json:"result,omitempty"`
	SpeechLang     string                    `json:"speechLang,omitempty"`
	ImageURL       string                    `json:"imageUrl,omitempty"`
	Error          string                    `json:"error,omitempty"`
}

// Translate handles POST /api/translate. It starts a new session and returns
// 202 immediately; clients poll GET /api/session for the outcome. A submit
// while a translation is still in flight is refused with 409.
func (h *SessionHandler) Translate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if h.svc.State().IsTranslating {
		writeError(w, http.StatusConflict, "translation already in progress")
		return
	}

	if err := h.svc.Submit(r.Context(), req.Text); err != nil {
		if errors.Is(err, domain.ErrEmptyInput) {
			writeError(w, http.StatusUnprocessableEntity, "text is empty")
			return
		}
		h.log.ErrorContext(r.Context(), "submit failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
}

// State handles GET /api/session.
func (h *SessionHandler) State(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toSessionResponse(h.svc.State()))
}

func toSessionResponse(st session.State) sessionResponse {
	resp := sessionResponse{
		IsTranslating:  st.IsTranslating,
		IsIllustrating: st.IsIllustrating,
		Result:         st.Result,
		Error:          st.LastError,
	}
	if st.Result != nil {
		resp.SpeechLang = st.Result.SpeechLang()
	}
	if st.Illustration != nil {
		resp.ImageURL = fmt.Sprintf("data:%s;base64,%s",
			st.Illustration.MIMEType,
			base64.StdEncoding.EncodeToString(st.Illustration.Data),
		)
	}
	return resp
}
