package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RequestLogger tags every request with a generated id and logs method,
// path, the resolved sede hint, and whether a token was presented.
type RequestLogger struct {
	log *logrus.Logger
}

func NewRequestLogger(log *logrus.Logger) *RequestLogger {
	return &RequestLogger{log: log}
}

func (m *RequestLogger) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.New().String()

		sede, _ := GetSedeFromContext(r.Context())
		_, hasToken := GetTokenIDFromContext(r.Context())

		m.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     r.Method,
			"path":       r.URL.Path,
			"sede":       sede,
			"token":      hasToken,
		}).Info("Incoming request")

		w.Header().Set("X-Request-ID", requestID)
		next.ServeHTTP(w, r)
	})
}
