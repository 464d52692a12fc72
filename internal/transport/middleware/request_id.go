package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/heartmarshall/memelingo-backend/pkg/ctxutil"
)

// RequestIDHeader is the header the request ID is read from and echoed to.
const RequestIDHeader = "X-Request-Id"

// RequestID reuses the incoming request ID or generates a fresh UUID, stores
// it in the context, and echoes it on the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		ctx := ctxutil.WithRequestID(r.Context(), id)
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
