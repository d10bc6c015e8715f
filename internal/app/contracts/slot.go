package contracts

import (
	"context"
	"time"
)

type SlotUsecaseIface interface {
	ExtractSlots(ctx context.Context, input *ExtractSlotsInput) (*SlotsOutput, error)
	GetTutorSlots(ctx context.Context, input *GetTutorSlotsInput) (*SlotsOutput, error)
	InvalidateTutor(ctx context.Context, tutorID string) error
	GenerateSnapshot(ctx context.Context, tutorID string, from, to time.Time) error
	GetSnapshotURL(ctx context.Context, tutorID string) (*SnapshotURLOutput, error)
}

// ExtractSlotsInput uses nil Granularity/Duration for "use the configured default".
type ExtractSlotsInput struct {
	Intervals   []IntervalInput
	Granularity *int
	Duration    *int
}

type GetTutorSlotsInput struct {
	TutorID     string
	From        time.Time
	To          time.Time
	Granularity *int
	Duration    *int
}

type SlotsOutput struct {
	TutorID            string
	GranularityMinutes int
	DurationMinutes    int
	Slots              []time.Time
	Cached             bool
}

type SnapshotURLOutput struct {
	TutorID   string
	URL       string
	ExpiresAt time.Time
}
