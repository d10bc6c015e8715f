package config

import (
	"scheduling-service/internal/pkg/utils"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "scheduling"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", "8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "Asia/Jakarta"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			AllowedOrigins:             splitCSV(utils.GetEnvString("APP_ALLOWED_ORIGINS", "*")),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 100),
			MaxTimeRequestsPerSeconds:  utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 60),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 2),
		},
		Slot: AppSlot{
			DefaultGranularityMinutes: utils.GetEnvInt("SLOT_DEFAULT_GRANULARITY_MINUTES", 30),
			DefaultDurationMinutes:    utils.GetEnvInt("SLOT_DEFAULT_DURATION_MINUTES", 60),
			CacheTTL:                  utils.GetEnvDuration("SLOT_CACHE_TTL", 10*time.Minute),
			WindowDays:                utils.GetEnvInt("SLOT_WINDOW_DAYS", 30),
			WorkerCronSpec:            utils.GetEnvString("SLOT_WORKER_CRON_SPEC", "@daily"),
			WorkerTutorsPerSecond:     utils.GetEnvFloat("SLOT_WORKER_TUTORS_PER_SECOND", 5),
			WorkerLockTTL:             utils.GetEnvDuration("SLOT_WORKER_LOCK_TTL", 2*time.Minute),
			SnapshotBucketName:        utils.GetEnvString("SLOT_SNAPSHOT_BUCKET_NAME", "slot-snapshots"),
			SnapshotURLExpiry:         utils.GetEnvDuration("SLOT_SNAPSHOT_URL_EXPIRY", time.Hour),
			EventsEnabled:             utils.GetEnvBool("SLOT_EVENTS_ENABLED", true),
			EventsQueue:               utils.GetEnvString("SLOT_EVENTS_QUEUE", "scheduling.events"),
		},
	}
}

func splitCSV(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
