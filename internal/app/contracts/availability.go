package contracts

import (
	"context"
	"scheduling-service/internal/app/models"
	"time"
)

type AvailabilityRepository interface {
	EnsureIndexes(ctx context.Context) error
	CreateMany(ctx context.Context, blocks []models.AvailabilityBlock) error
	// FindByTutorIDInRange returns blocks overlapping [from, to) ordered by start.
	FindByTutorIDInRange(ctx context.Context, tutorID string, from, to time.Time) ([]models.AvailabilityBlock, error)
	FindTutorIDsWithAvailability(ctx context.Context, from, to time.Time) ([]string, error)
	DeleteByID(ctx context.Context, tutorID, blockID string) (bool, error)
}

type AvailabilityUsecase interface {
	CreateBlocks(ctx context.Context, input *CreateAvailabilityInput) ([]models.AvailabilityBlock, error)
	ListBlocks(ctx context.Context, input *ListAvailabilityInput) ([]models.AvailabilityBlock, error)
	DeleteBlock(ctx context.Context, tutorID, blockID string) error
}

type IntervalInput struct {
	Start string
	End   string
}

type CreateAvailabilityInput struct {
	TutorID   string
	Intervals []IntervalInput
	Source    string
}

type ListAvailabilityInput struct {
	TutorID string
	From    time.Time
	To      time.Time
}
