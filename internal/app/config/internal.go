package config

import (
	"scheduling-service/internal/pkg/utils"
	"time"
)

type InternalConfig struct {
	App  App
	Slot AppSlot
}

type App struct {
	Env                        string
	Port                       string
	Version                    string
	Address                    string
	Timezone                   string
	EndpointPrefix             string
	AllowedOrigins             []string
	MaxRequests                int
	MaxTimeRequestsPerSeconds  int
	ShutdownTimeoutInSeconds   int
	RequestBodyLimitInMegabyte int
}

type AppSlot struct {
	DefaultGranularityMinutes int
	DefaultDurationMinutes    int
	CacheTTL                  time.Duration
	// WindowDays is the rolling window covered by worker snapshots.
	WindowDays int
	// WorkerCronSpec is a robfig/cron expression, e.g. "@daily" or "0 */6 * * *".
	WorkerCronSpec        string
	WorkerTutorsPerSecond float64
	WorkerLockTTL         time.Duration
	SnapshotBucketName    string
	SnapshotURLExpiry     time.Duration
	EventsEnabled         bool
	EventsQueue           string
}

// Location resolves App.Timezone, falling back to UTC.
func (c *InternalConfig) Location() *time.Location {
	loc, _ := utils.LoadLocation(c.App.Timezone)
	return loc
}
