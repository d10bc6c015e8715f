package slot

import (
	"context"
	"errors"
	"fmt"
	"scheduling-service/internal/app/config"
	"scheduling-service/internal/app/contracts"
	"scheduling-service/internal/app/models"
	"scheduling-service/internal/app/services/shared/events"
	"scheduling-service/internal/pkg/constvars"
	"scheduling-service/internal/pkg/exceptions"
	"scheduling-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type SlotUsecase struct {
	availability contracts.AvailabilityRepository
	redis        contracts.RedisRepository
	storage      contracts.Storage
	events       contracts.EventPublisher
	config       *config.InternalConfig
	logger       *zap.Logger
}

func NewSlotUsecase(
	availability contracts.AvailabilityRepository,
	redis contracts.RedisRepository,
	storage contracts.Storage,
	eventPublisher contracts.EventPublisher,
	config *config.InternalConfig,
	logger *zap.Logger,
) *SlotUsecase {
	return &SlotUsecase{
		availability: availability,
		redis:        redis,
		storage:      storage,
		events:       eventPublisher,
		config:       config,
		logger:       logger,
	}
}

func (s *SlotUsecase) ExtractSlots(ctx context.Context, input *contracts.ExtractSlotsInput) (*contracts.SlotsOutput, error) {
	requestID := utils.RequestIDFromContext(ctx)
	opts := s.resolveOptions(input.Granularity, input.Duration)

	slots, err := ExtractSessionTimes(RawIntervalsFromInput(input.Intervals), opts, s.config.Location())
	if err != nil {
		s.logger.With(zap.Error(err)).Info("slotUsecase.ExtractSlots rejected input",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, mapExtractionError(err)
	}

	s.logger.Info("slotUsecase.ExtractSlots succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingIntervalCountKey, len(input.Intervals)),
		zap.Int(constvars.LoggingSlotCountKey, len(slots)),
		zap.Int(constvars.LoggingGranularityKey, opts.GranularityMinutes),
		zap.Int(constvars.LoggingDurationKey, opts.DurationMinutes),
	)
	return &contracts.SlotsOutput{
		GranularityMinutes: opts.GranularityMinutes,
		DurationMinutes:    opts.DurationMinutes,
		Slots:              slots,
	}, nil
}

// GetTutorSlots serves from the Redis cache when possible and otherwise computes
// slots from the tutor's stored availability. Only slots that start and end
// inside [From, To] are returned.
func (s *SlotUsecase) GetTutorSlots(ctx context.Context, input *contracts.GetTutorSlotsInput) (*contracts.SlotsOutput, error) {
	requestID := utils.RequestIDFromContext(ctx)
	opts := s.resolveOptions(input.Granularity, input.Duration)
	if err := opts.Validate(); err != nil {
		return nil, mapExtractionError(err)
	}
	if !input.From.Before(input.To) {
		return nil, exceptions.ErrInvalidTimeRange(fmt.Errorf("from %s is not before to %s", input.From, input.To))
	}

	output := &contracts.SlotsOutput{
		TutorID:            input.TutorID,
		GranularityMinutes: opts.GranularityMinutes,
		DurationMinutes:    opts.DurationMinutes,
	}

	cacheKey := s.cacheKey(ctx, input.TutorID, input.From, input.To, opts)
	if cached, ok := s.readCache(ctx, cacheKey); ok {
		s.logger.Info("slotUsecase.GetTutorSlots served from cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTutorIDKey, input.TutorID),
			zap.Bool(constvars.LoggingCacheHitKey, true),
		)
		output.Slots = cached
		output.Cached = true
		return output, nil
	}

	slots, err := s.computeTutorSlots(ctx, input.TutorID, input.From, input.To, opts)
	if err != nil {
		return nil, err
	}

	if err := s.redis.Set(ctx, cacheKey, slots, s.config.Slot.CacheTTL); err != nil {
		s.logger.Warn("slotUsecase.GetTutorSlots failed to cache slots",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, cacheKey),
			zap.Error(err),
		)
	}

	events.PublishSafely(ctx, s.events, s.logger, events.NewEvent(ctx, constvars.EventSlotsComputed, input.TutorID, map[string]any{
		"from":        input.From.UTC(),
		"to":          input.To.UTC(),
		"granularity": opts.GranularityMinutes,
		"duration":    opts.DurationMinutes,
		"slot_count":  len(slots),
	}))

	s.logger.Info("slotUsecase.GetTutorSlots computed slots",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTutorIDKey, input.TutorID),
		zap.Bool(constvars.LoggingCacheHitKey, false),
		zap.Int(constvars.LoggingSlotCountKey, len(slots)),
	)
	output.Slots = slots
	return output, nil
}

// InvalidateTutor bumps the tutor's cache generation; older entries are never
// read again and expire on their own TTL.
func (s *SlotUsecase) InvalidateTutor(ctx context.Context, tutorID string) error {
	_, err := s.redis.Increment(ctx, fmt.Sprintf(constvars.SlotCacheGenerationKeyFormat, tutorID))
	return err
}

func (s *SlotUsecase) GenerateSnapshot(ctx context.Context, tutorID string, from, to time.Time) error {
	requestID := utils.RequestIDFromContext(ctx)
	opts := s.resolveOptions(nil, nil)

	slots, err := s.computeTutorSlots(ctx, tutorID, from, to, opts)
	if err != nil {
		return err
	}

	loc := s.config.Location()
	snapshot := models.SlotSnapshot{
		TutorID:            tutorID,
		From:               from.In(loc),
		To:                 to.In(loc),
		GranularityMinutes: opts.GranularityMinutes,
		DurationMinutes:    opts.DurationMinutes,
		Timezone:           loc.String(),
		Slots:              slots,
		GeneratedAt:        time.Now().In(loc),
	}
	body, err := json.Marshal(snapshot)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	bucketName := s.config.Slot.SnapshotBucketName
	objectName := snapshotObjectName(tutorID)
	if err := s.storage.PutObject(ctx, bucketName, objectName, body, constvars.MIMEApplicationJSON); err != nil {
		s.logger.Error("slotUsecase.GenerateSnapshot error calling storage.PutObject",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBucketNameKey, bucketName),
			zap.String(constvars.LoggingObjectNameKey, objectName),
			zap.Error(err),
		)
		return err
	}

	events.PublishSafely(ctx, s.events, s.logger, events.NewEvent(ctx, constvars.EventSnapshotGenerated, tutorID, map[string]any{
		"object":     objectName,
		"slot_count": len(slots),
	}))
	return nil
}

func (s *SlotUsecase) GetSnapshotURL(ctx context.Context, tutorID string) (*contracts.SnapshotURLOutput, error) {
	bucketName := s.config.Slot.SnapshotBucketName
	objectName := snapshotObjectName(tutorID)

	exists, err := s.storage.ObjectExists(ctx, bucketName, objectName)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, exceptions.ErrSnapshotNotFound(errors.New(objectName), tutorID)
	}

	expiry := s.config.Slot.SnapshotURLExpiry
	url, err := s.storage.GetObjectUrlWithExpiryTime(ctx, bucketName, objectName, expiry)
	if err != nil {
		return nil, err
	}
	return &contracts.SnapshotURLOutput{
		TutorID:   tutorID,
		URL:       url,
		ExpiresAt: time.Now().Add(expiry),
	}, nil
}

func (s *SlotUsecase) computeTutorSlots(ctx context.Context, tutorID string, from, to time.Time, opts Options) ([]time.Time, error) {
	blocks, err := s.availability.FindByTutorIDInRange(ctx, tutorID, from, to)
	if err != nil {
		s.logger.Error("slotUsecase.computeTutorSlots error calling availability.FindByTutorIDInRange",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.String(constvars.LoggingTutorIDKey, tutorID),
			zap.Error(err),
		)
		return nil, err
	}

	loc := s.config.Location()
	intervals := make([]Interval, 0, len(blocks))
	for _, block := range blocks {
		intervals = append(intervals, Interval{Start: block.Start.In(loc), End: block.End.In(loc)})
	}

	slots, err := ExtractWithinWindow(intervals, opts, from, to)
	if err != nil {
		return nil, mapExtractionError(err)
	}
	return slots, nil
}

func (s *SlotUsecase) cacheKey(ctx context.Context, tutorID string, from, to time.Time, opts Options) string {
	generation, err := s.redis.Get(ctx, fmt.Sprintf(constvars.SlotCacheGenerationKeyFormat, tutorID))
	if err != nil || generation == "" {
		generation = "0"
	}
	return fmt.Sprintf(constvars.SlotCacheKeyFormat, tutorID, generation, from.Unix(), to.Unix(), opts.GranularityMinutes, opts.DurationMinutes)
}

func (s *SlotUsecase) readCache(ctx context.Context, key string) ([]time.Time, bool) {
	data, err := s.redis.Get(ctx, key)
	if err != nil {
		s.logger.Warn("slotUsecase.readCache failed, computing instead",
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return nil, false
	}
	if data == "" {
		return nil, false
	}

	var slots []time.Time
	if err := json.Unmarshal([]byte(data), &slots); err != nil {
		s.logger.Warn("slotUsecase.readCache discarding undecodable entry",
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return nil, false
	}
	loc := s.config.Location()
	for i := range slots {
		slots[i] = slots[i].In(loc)
	}
	return slots, true
}

func (s *SlotUsecase) resolveOptions(granularity, duration *int) Options {
	opts := Options{
		GranularityMinutes: s.config.Slot.DefaultGranularityMinutes,
		DurationMinutes:    s.config.Slot.DefaultDurationMinutes,
	}.WithDefaults(DefaultOptions())
	if granularity != nil {
		opts.GranularityMinutes = *granularity
	}
	if duration != nil {
		opts.DurationMinutes = *duration
	}
	return opts
}

// RawIntervalsFromInput copies transport intervals into extractor input.
func RawIntervalsFromInput(intervals []contracts.IntervalInput) []RawInterval {
	raw := make([]RawInterval, 0, len(intervals))
	for _, interval := range intervals {
		raw = append(raw, RawInterval{Start: interval.Start, End: interval.End})
	}
	return raw
}

func snapshotObjectName(tutorID string) string {
	return fmt.Sprintf(constvars.SlotSnapshotObjectFormat, tutorID)
}

func mapExtractionError(err error) error {
	var configErr *InvalidConfigurationError
	if errors.As(err, &configErr) {
		return exceptions.ErrInvalidSlotConfiguration(err)
	}
	var intervalErr *InvalidIntervalError
	if errors.As(err, &intervalErr) {
		return exceptions.ErrInvalidSlotInterval(err)
	}
	var tooManyErr *TooManySlotsError
	if errors.As(err, &tooManyErr) {
		return exceptions.ErrTooManySlots(err)
	}
	return exceptions.ErrServerProcess(err)
}
