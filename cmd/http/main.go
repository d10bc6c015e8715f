package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"scheduling-service/internal/app/config"
	"scheduling-service/internal/app/contracts"
	"scheduling-service/internal/app/delivery/http/controllers"
	"scheduling-service/internal/app/delivery/http/middlewares"
	"scheduling-service/internal/app/delivery/http/routers"
	"scheduling-service/internal/app/drivers/database"
	"scheduling-service/internal/app/drivers/logger"
	"scheduling-service/internal/app/drivers/messaging"
	"scheduling-service/internal/app/drivers/storage"
	"scheduling-service/internal/app/services/core/availability"
	"scheduling-service/internal/app/services/core/slot"
	"scheduling-service/internal/app/services/shared/events"
	"scheduling-service/internal/app/services/shared/locker"
	"scheduling-service/internal/app/services/shared/redis"
	minioStorage "scheduling-service/internal/app/services/shared/storage"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	accessLog := logger.NewLogrusLogger(internalConfig)

	time.Local = internalConfig.Location()

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Mongo:          database.NewMongoDB(driverConfig),
		Redis:          database.NewRedisClient(driverConfig),
		Minio:          storage.NewMinio(driverConfig),
		Logger:         log,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}
	if internalConfig.Slot.EventsEnabled {
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(driverConfig)
	}

	if err := bootstrapingTheApp(bootstrap, accessLog); err != nil {
		log.Fatal("Failed to bootstrap the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:              internalConfig.App.Address + ":" + internalConfig.App.Port,
		Handler:           bootstrap.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Server started", zap.String("address", server.Addr))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Error("Failed to release resources", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap, accessLog *logrus.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	internalConfig := bootstrap.InternalConfig
	log := bootstrap.Logger

	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, log)

	if err := storage.EnsureBucket(ctx, bootstrap.Minio, internalConfig.Slot.SnapshotBucketName); err != nil {
		return err
	}
	snapshotStorage := minioStorage.NewMinioStorage(bootstrap.Minio)

	var eventPublisher contracts.EventPublisher = events.NewNopPublisher()
	if bootstrap.RabbitMQ != nil {
		publisher, err := events.NewRabbitMQPublisher(bootstrap.RabbitMQ, internalConfig.Slot.EventsQueue)
		if err != nil {
			return err
		}
		eventPublisher = publisher
	}

	// Availability store
	availabilityRepository := availability.NewAvailabilityMongoRepository(bootstrap.Mongo, bootstrap.DriverConfig.MongoDB.DbName)
	if err := availabilityRepository.EnsureIndexes(ctx); err != nil {
		return err
	}

	// Slot
	slotUsecase := slot.NewSlotUsecase(availabilityRepository, redisRepository, snapshotStorage, eventPublisher, internalConfig, log)
	slotController := controllers.NewSlotController(log, slotUsecase, internalConfig)

	// Availability
	availabilityUsecase := availability.NewAvailabilityUsecase(availabilityRepository, slotUsecase, eventPublisher, internalConfig, log)
	availabilityController := controllers.NewAvailabilityController(log, availabilityUsecase, internalConfig)

	// Snapshot worker
	worker := slot.NewWorker(log, internalConfig, lockerService, availabilityRepository, slotUsecase)
	worker.Start(context.Background())
	bootstrap.SlotWorkerStop = func() {
		worker.Stop()
		if err := eventPublisher.Close(); err != nil {
			log.Warn("Failed to close event publisher", zap.Error(err))
		}
	}

	routers.SetupRoutes(
		bootstrap.Router,
		internalConfig,
		middlewares.NewMiddlewares(log, internalConfig),
		accessLog,
		slotController,
		availabilityController,
		controllers.NewHealthController(internalConfig),
	)
	return nil
}
