package middlewares

import (
	"fmt"
	"net/http"
	"scheduling-service/internal/pkg/exceptions"
	"scheduling-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/httprate"
)

// RateLimit allows App.MaxRequests per client IP in every window of
// App.MaxTimeRequestsPerSeconds seconds.
func (m *Middlewares) RateLimit() func(next http.Handler) http.Handler {
	window := time.Duration(m.InternalConfig.App.MaxTimeRequestsPerSeconds) * time.Second
	if window <= 0 {
		window = time.Second
	}
	return httprate.Limit(
		m.InternalConfig.App.MaxRequests,
		window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests(fmt.Errorf("limit of %d requests per %s exceeded", m.InternalConfig.App.MaxRequests, window)))
		}),
	)
}
