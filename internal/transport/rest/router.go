package rest

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/memelingo-backend/internal/config"
	"github.com/heartmarshall/memelingo-backend/internal/transport/middleware"
)

// NewRouter builds the HTTP handler: all routes plus the standard
// middleware chain (request id, access log, panic recovery, CORS).
func NewRouter(
	logger *slog.Logger,
	sessions sessionService,
	notebooks notebookService,
	corsCfg config.CORSConfig,
	version string,
) http.Handler {
	sessionHandler := NewSessionHandler(sessions, logger)
	notebookHandler := NewNotebookHandler(notebooks, logger)
	healthHandler := NewHealthHandler(version)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", healthHandler.Live)
	mux.HandleFunc("POST /api/translate", sessionHandler.Translate)
	mux.HandleFunc("GET /api/session", sessionHandler.State)
	mux.HandleFunc("GET /api/notebook", notebookHandler.List)
	mux.HandleFunc("POST /api/notebook/items", notebookHandler.Add)
	mux.HandleFunc("DELETE /api/notebook/items/{id}", notebookHandler.Remove)

	return middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(corsCfg),
	)(mux)
}
