package events

import (
	"context"
	"errors"
	"scheduling-service/internal/app/models"
	"scheduling-service/internal/pkg/constvars"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockChannel struct {
	mock.Mock
}

func (m *MockChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error {
	args := m.Called(ctx, exchange, key, mandatory, immediate, msg)
	return args.Error(0)
}

func (m *MockChannel) Close() error {
	args := m.Called()
	return args.Error(0)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, event *models.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}

func TestRabbitMQPublisher_Publish(t *testing.T) {
	ctx := context.Background()
	event := &models.Event{
		ID:         "evt-1",
		Type:       constvars.EventSnapshotGenerated,
		TutorID:    "tutor-1",
		OccurredAt: time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC),
		Attributes: map[string]any{"slots": 4},
	}

	t.Run("Publishes Persistent JSON", func(t *testing.T) {
		channel := new(MockChannel)
		publisher := newRabbitMQPublisher(channel, "slot-events")
		var sent amqp091.Publishing
		channel.On("PublishWithContext", mock.Anything, "", "slot-events", false, false, mock.Anything).
			Run(func(args mock.Arguments) { sent = args.Get(5).(amqp091.Publishing) }).
			Return(nil)

		err := publisher.Publish(ctx, event)

		require.NoError(t, err)
		assert.Equal(t, amqp091.Persistent, sent.DeliveryMode)
		assert.Equal(t, "evt-1", sent.MessageId)
		assert.Equal(t, constvars.EventSnapshotGenerated, sent.Type)
		assert.Equal(t, constvars.MIMEApplicationJSON, sent.ContentType)

		var decoded models.Event
		require.NoError(t, json.Unmarshal(sent.Body, &decoded))
		assert.Equal(t, "tutor-1", decoded.TutorID)
		assert.True(t, event.OccurredAt.Equal(decoded.OccurredAt))
	})

	t.Run("Broker Error Is Wrapped", func(t *testing.T) {
		channel := new(MockChannel)
		publisher := newRabbitMQPublisher(channel, "slot-events")
		cause := errors.New("channel closed")
		channel.On("PublishWithContext", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(cause)

		err := publisher.Publish(ctx, event)

		assert.ErrorIs(t, err, cause)
	})

	t.Run("Close Closes The Channel", func(t *testing.T) {
		channel := new(MockChannel)
		publisher := newRabbitMQPublisher(channel, "slot-events")
		channel.On("Close").Return(nil)

		assert.NoError(t, publisher.Close())
		channel.AssertExpectations(t)
	})
}

func TestPublishSafely(t *testing.T) {
	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "req-1")

	t.Run("Stamps Request ID", func(t *testing.T) {
		event := NewEvent(ctx, constvars.EventAvailabilityChanged, "tutor-1", nil)

		assert.Equal(t, "req-1", event.RequestID)
		assert.NotEmpty(t, event.ID)
		assert.Equal(t, time.UTC, event.OccurredAt.Location())
	})

	t.Run("Publisher Error Is Swallowed", func(t *testing.T) {
		publisher := new(MockEventPublisher)
		publisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker down"))

		assert.NotPanics(t, func() {
			PublishSafely(ctx, publisher, zap.NewNop(), NewEvent(ctx, constvars.EventSlotsComputed, "tutor-1", nil))
		})
		publisher.AssertNumberOfCalls(t, "Publish", 1)
	})

	t.Run("Nil Publisher", func(t *testing.T) {
		assert.NotPanics(t, func() {
			PublishSafely(ctx, nil, zap.NewNop(), NewEvent(ctx, constvars.EventSlotsComputed, "tutor-1", nil))
		})
	})
}
