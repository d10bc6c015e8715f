package availability

import (
	"context"
	"fmt"
	"scheduling-service/internal/app/config"
	"scheduling-service/internal/app/contracts"
	"scheduling-service/internal/app/models"
	"scheduling-service/internal/app/services/core/slot"
	"scheduling-service/internal/app/services/shared/events"
	"scheduling-service/internal/pkg/constvars"
	"scheduling-service/internal/pkg/exceptions"
	"scheduling-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type availabilityUsecase struct {
	AvailabilityRepository contracts.AvailabilityRepository
	SlotUsecase            contracts.SlotUsecaseIface
	EventPublisher         contracts.EventPublisher
	InternalConfig         *config.InternalConfig
	Log                    *zap.Logger
}

func NewAvailabilityUsecase(
	availabilityRepository contracts.AvailabilityRepository,
	slotUsecase contracts.SlotUsecaseIface,
	eventPublisher contracts.EventPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AvailabilityUsecase {
	return &availabilityUsecase{
		AvailabilityRepository: availabilityRepository,
		SlotUsecase:            slotUsecase,
		EventPublisher:         eventPublisher,
		InternalConfig:         internalConfig,
		Log:                    logger,
	}
}

// CreateBlocks validates every interval with the same rules the slot extractor
// applies, so stored availability can always be turned into slots.
func (uc *availabilityUsecase) CreateBlocks(ctx context.Context, input *contracts.CreateAvailabilityInput) ([]models.AvailabilityBlock, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("availabilityUsecase.CreateBlocks called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTutorIDKey, input.TutorID),
		zap.Int(constvars.LoggingIntervalCountKey, len(input.Intervals)),
	)

	normalized, err := slot.NormalizeIntervals(slot.RawIntervalsFromInput(input.Intervals), uc.InternalConfig.Location())
	if err != nil {
		uc.Log.Error("availabilityUsecase.CreateBlocks invalid interval",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInvalidSlotInterval(err)
	}

	blocks := make([]models.AvailabilityBlock, 0, len(normalized))
	for _, interval := range normalized {
		block := models.AvailabilityBlock{
			ID:      utils.GenerateID(),
			TutorID: input.TutorID,
			Start:   interval.Start.UTC(),
			End:     interval.End.UTC(),
			Source:  input.Source,
		}
		block.SetCreatedAtUpdatedAt()
		blocks = append(blocks, block)
	}

	err = uc.AvailabilityRepository.CreateMany(ctx, blocks)
	if err != nil {
		uc.Log.Error("availabilityUsecase.CreateBlocks error calling AvailabilityRepository.CreateMany",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.afterChange(ctx, input.TutorID, "created", len(blocks))

	uc.Log.Info("availabilityUsecase.CreateBlocks succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTutorIDKey, input.TutorID),
		zap.Int(constvars.LoggingIntervalCountKey, len(blocks)),
	)
	return blocks, nil
}

func (uc *availabilityUsecase) ListBlocks(ctx context.Context, input *contracts.ListAvailabilityInput) ([]models.AvailabilityBlock, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("availabilityUsecase.ListBlocks called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTutorIDKey, input.TutorID),
	)

	if !input.From.Before(input.To) {
		return nil, exceptions.ErrInvalidTimeRange(fmt.Errorf("from %s is not before to %s", input.From, input.To))
	}

	blocks, err := uc.AvailabilityRepository.FindByTutorIDInRange(ctx, input.TutorID, input.From, input.To)
	if err != nil {
		uc.Log.Error("availabilityUsecase.ListBlocks error calling AvailabilityRepository.FindByTutorIDInRange",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return blocks, nil
}

func (uc *availabilityUsecase) DeleteBlock(ctx context.Context, tutorID, blockID string) error {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("availabilityUsecase.DeleteBlock called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTutorIDKey, tutorID),
		zap.String(constvars.LoggingBlockIDKey, blockID),
	)

	deleted, err := uc.AvailabilityRepository.DeleteByID(ctx, tutorID, blockID)
	if err != nil {
		uc.Log.Error("availabilityUsecase.DeleteBlock error calling AvailabilityRepository.DeleteByID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	if !deleted {
		return exceptions.ErrMongoDBDocumentNotFound(fmt.Errorf("availability block %s of tutor %s", blockID, tutorID))
	}

	uc.afterChange(ctx, tutorID, "deleted", 1)
	return nil
}

// afterChange drops cached slots and announces the change. Failures are only logged.
func (uc *availabilityUsecase) afterChange(ctx context.Context, tutorID, action string, count int) {
	if err := uc.SlotUsecase.InvalidateTutor(ctx, tutorID); err != nil {
		uc.Log.Warn("availabilityUsecase.afterChange failed to invalidate slot cache",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.String(constvars.LoggingTutorIDKey, tutorID),
			zap.Error(err),
		)
	}

	events.PublishSafely(ctx, uc.EventPublisher, uc.Log, events.NewEvent(ctx, constvars.EventAvailabilityChanged, tutorID, map[string]any{
		"action": action,
		"count":  count,
	}))
}
