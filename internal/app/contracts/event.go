package contracts

import (
	"context"
	"scheduling-service/internal/app/models"
)

// EventPublisher is the sink for domain events. Implementations must be safe for
// concurrent use.
type EventPublisher interface {
	Publish(ctx context.Context, event *models.Event) error
	Close() error
}
