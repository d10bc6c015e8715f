package utils

import (
	"context"
	"scheduling-service/internal/pkg/constvars"
)

// RequestIDFromContext returns the request id set by the request id middleware,
// or an empty string for background work.
func RequestIDFromContext(ctx context.Context) string {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return requestID
}
