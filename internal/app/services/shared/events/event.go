package events

import (
	"context"
	"scheduling-service/internal/app/contracts"
	"scheduling-service/internal/app/models"
	"scheduling-service/internal/pkg/constvars"
	"scheduling-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

// NewEvent stamps an event with an id, the request id from ctx and the current time.
func NewEvent(ctx context.Context, eventType, tutorID string, attributes map[string]any) *models.Event {
	return &models.Event{
		ID:         utils.GenerateID(),
		Type:       eventType,
		TutorID:    tutorID,
		RequestID:  utils.RequestIDFromContext(ctx),
		OccurredAt: time.Now().UTC(),
		Attributes: attributes,
	}
}

// PublishSafely sends event and only logs a failure; event delivery never fails
// the operation that produced it.
func PublishSafely(ctx context.Context, publisher contracts.EventPublisher, log *zap.Logger, event *models.Event) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, event); err != nil {
		log.Warn("events.PublishSafely failed to publish event",
			zap.String(constvars.LoggingRequestIDKey, event.RequestID),
			zap.String(constvars.LoggingEventTypeKey, event.Type),
			zap.String(constvars.LoggingTutorIDKey, event.TutorID),
			zap.Error(err),
		)
	}
}
