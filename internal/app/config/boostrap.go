package config

import (
	"context"
	"log"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	Mongo          *mongo.Client
	Redis          *redis.Client
	Minio          *minio.Client
	Logger         *zap.Logger
	RabbitMQ       *amqp091.Connection
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
	// SlotWorkerStop if set will be called during Shutdown to stop the snapshot worker
	SlotWorkerStop func()
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.SlotWorkerStop != nil {
		b.SlotWorkerStop()
		log.Println("Successfully stopped slot worker")
	}

	if b.Redis != nil {
		if err := b.Redis.Close(); err != nil {
			return err
		}
		log.Println("Successfully closing Redis")
	}

	if b.RabbitMQ != nil {
		if err := b.RabbitMQ.Close(); err != nil {
			return err
		}
		log.Println("Successfully closing RabbitMQ")
	}

	if b.Mongo != nil {
		if err := b.Mongo.Disconnect(ctx); err != nil {
			return err
		}
		log.Println("Successfully closing MongoDB")
	}

	// Sync on stdout/stderr returns EINVAL on some platforms; not worth failing shutdown for.
	_ = b.Logger.Sync()
	log.Println("Successfully closing Logger")

	return nil
}
