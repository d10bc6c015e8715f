package messaging

import (
	"fmt"
	"log"
	"scheduling-service/internal/app/config"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

func NewRabbitMQ(driverConfig *config.DriverConfig) *amqp091.Connection {
	connectionString := fmt.Sprintf(
		"amqp://%s:%s@%s:%s/",
		driverConfig.RabbitMQ.Username,
		driverConfig.RabbitMQ.Password,
		driverConfig.RabbitMQ.Host,
		driverConfig.RabbitMQ.Port,
	)
	properties := amqp091.NewConnectionProperties()
	properties.SetClientConnectionName("scheduling-service")

	conn, err := amqp091.DialConfig(connectionString, amqp091.Config{
		Heartbeat:  10 * time.Second,
		Properties: properties,
	})
	if err != nil {
		log.Fatalf("Failed to connect to rabbitMQ: %s", err.Error())
	}
	log.Println("Successfully connected to rabbitMQ")
	return conn
}
