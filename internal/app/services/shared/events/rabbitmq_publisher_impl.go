package events

import (
	"context"
	"scheduling-service/internal/app/contracts"
	"scheduling-service/internal/app/models"
	"scheduling-service/internal/pkg/constvars"
	"scheduling-service/internal/pkg/exceptions"
	"sync"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
)

// channelPublisher is the subset of *amqp091.Channel used for publishing.
type channelPublisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

type rabbitMQPublisher struct {
	mu      sync.Mutex
	Channel channelPublisher
	Queue   string
}

// NewRabbitMQPublisher opens a channel on conn and declares a durable queue.
func NewRabbitMQPublisher(rabbitMQConnection *amqp091.Connection, queue string) (contracts.EventPublisher, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, exceptions.ErrRabbitMQOpenChannel(err)
	}

	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		channel.Close()
		return nil, exceptions.ErrRabbitMQDeclareQueue(err, queue)
	}

	return newRabbitMQPublisher(channel, queue), nil
}

func newRabbitMQPublisher(channel channelPublisher, queue string) *rabbitMQPublisher {
	return &rabbitMQPublisher{
		Channel: channel,
		Queue:   queue,
	}
}

func (p *rabbitMQPublisher) Publish(ctx context.Context, event *models.Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	headers := amqp091.Table{
		"message_type": "JSON",
		"event_type":   event.Type,
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		MessageId:    event.ID,
		Type:         event.Type,
		Timestamp:    event.OccurredAt,
		Priority:     0,
		Headers:      headers,
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	err = p.Channel.PublishWithContext(ctx, "", p.Queue, false, false, message)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.Queue)
	}
	return nil
}

func (p *rabbitMQPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.Channel.Close()
}
