package router

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/osystem/os-api/internal/auth"
	"github.com/osystem/os-api/internal/checklist"
	"github.com/osystem/os-api/internal/order"
	"github.com/osystem/os-api/pkg/utilities"
)

// loggingResponseWriter wraps http.ResponseWriter to capture status and size.
type loggingResponseWriter struct {
	http.ResponseWriter
	status int
	size   int
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.status = code
	lrw.ResponseWriter.WriteHeader(code)
}

func (lrw *loggingResponseWriter) Write(b []byte) (int, error) {
	if lrw.status == 0 {
		lrw.status = http.StatusOK
	}
	n, err := lrw.ResponseWriter.Write(b)
	lrw.size += n
	return n, err
}

// LoggingMiddleware returns a middleware that logs requests at debug level
// using the provided sugared logger, tagging each with a correlation id.
func LoggingMiddleware(logger *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			requestID := utilities.NewSnowflakeID(1)
			lrw := &loggingResponseWriter{ResponseWriter: w}
			next.ServeHTTP(lrw, r)
			dur := time.Since(start)
			status := lrw.status
			if status == 0 {
				status = http.StatusOK
			}
			logger.Debugw("http request",
				"request_id", requestID,
				"method", r.Method,
				"path", r.URL.Path,
				"remote", r.RemoteAddr,
				"status", status,
				"duration_ms", float64(dur.Microseconds())/1000.0,
				"size", lrw.size,
			)
		})
	}
}

// CORSMiddleware returns a permissive CORS middleware. The frontend is
// served from a different origin, so every origin/method/header is allowed.
func CORSMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// New mounts all HTTP handlers on a standard-library http.ServeMux and
// wraps them with CORS and request logging.
func New(logger *zap.SugaredLogger, authHandler *auth.Handler, orderHandler *order.Handler, checklistHandler *checklist.Handler, secret []byte) http.Handler {
	mux := http.NewServeMux()

	// health
	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"online"}`))
	})

	// auth routes
	mux.HandleFunc("POST /auth/register", authHandler.Register)
	mux.HandleFunc("POST /auth/login", authHandler.Login)

	// authenticated routes
	guard := auth.RequireAuth(secret)
	mux.Handle("POST /service-orders", guard(http.HandlerFunc(orderHandler.Create)))
	mux.Handle("GET /service-orders", guard(http.HandlerFunc(orderHandler.List)))
	mux.Handle("PUT /service-orders/{id}", guard(http.HandlerFunc(orderHandler.Update)))
	mux.Handle("DELETE /service-orders/{id}", guard(http.HandlerFunc(orderHandler.Delete)))
	mux.Handle("GET /config/checklist", guard(http.HandlerFunc(checklistHandler.List)))

	return LoggingMiddleware(logger)(CORSMiddleware()(mux))
}
