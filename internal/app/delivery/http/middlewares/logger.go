package middlewares

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// RequestLogger writes one access-log line per request.
func (m *Middlewares) RequestLogger(log *logrus.Logger) func(next http.Handler) http.Handler {
	tz := m.InternalConfig.Location()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &responseRecorder{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(rec, r)
			duration := time.Since(start)

			log.WithFields(logrus.Fields{
				"remote_addr": r.RemoteAddr,
				"method":      r.Method,
				"uri":         r.RequestURI,
				"status":      rec.statusCode,
				"duration":    duration.String(),
			}).Infof("%s | %s | %s ==> %s | %s | %d",
				time.Now().In(tz).Format(time.RFC850), r.RemoteAddr, r.Method, r.RequestURI, duration, rec.statusCode)
		})
	}
}
