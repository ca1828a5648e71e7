package httpapi

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// requestLogger logs one structured line per request with a generated request
// id so interleaved workflow logs can be correlated.
type requestLogger struct {
	next   http.Handler
	logger *zap.Logger
}

func newRequestLogger(next http.Handler, logger *zap.Logger) http.Handler {
	return &requestLogger{next: next, logger: logger}
}

func (h *requestLogger) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	requestID := uuid.NewString()
	recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

	h.next.ServeHTTP(recorder, r)

	h.logger.Info("request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Int("status", recorder.status),
		zap.Duration("elapsed", time.Since(started)),
	)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
