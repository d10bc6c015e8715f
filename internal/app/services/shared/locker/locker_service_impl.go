package locker

import (
	"context"
	"fmt"
	"scheduling-service/internal/app/contracts"
	"scheduling-service/internal/pkg/constvars"
	"scheduling-service/internal/pkg/exceptions"
	"scheduling-service/internal/pkg/utils"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Results of the compare-and-act redis operations.
const (
	compareMissing  int64 = 0
	compareMismatch int64 = -1
)

type lockService struct {
	redisRepo contracts.RedisRepository
	Log       *zap.Logger
}

func NewLockService(repo contracts.RedisRepository, logger *zap.Logger) contracts.LockerService {
	return &lockService{
		redisRepo: repo,
		Log:       logger,
	}
}

func (s *lockService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	requestID := utils.RequestIDFromContext(ctx)
	s.Log.Debug("lockService.TryLock called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRedisKey, key),
		zap.Duration(constvars.LoggingLockExpirationTimeKey, expiration),
	)

	lockValue := uuid.NewString()
	acquired, err := s.redisRepo.TrySetNX(ctx, key, lockValue, expiration)
	if err != nil {
		s.Log.Error("lockService.TryLock error calling redisRepo.TrySetNX",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return false, "", err
	}

	if !acquired {
		s.Log.Info("lockService.TryLock not acquired",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
		)
		return false, "", nil
	}

	s.Log.Info("lockService.TryLock acquired lock",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRedisKey, key),
		zap.String(constvars.LoggingLockValueKey, lockValue),
	)
	return true, lockValue, nil
}

// Unlock releases key when it is still held with lockValue. A lock that has
// already expired is not an error.
func (s *lockService) Unlock(ctx context.Context, key, lockValue string) error {
	requestID := utils.RequestIDFromContext(ctx)
	s.Log.Debug("lockService.Unlock called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRedisKey, key),
		zap.String(constvars.LoggingLockValueKey, lockValue),
	)

	result, err := s.redisRepo.DeleteIfValue(ctx, key, lockValue)
	if err != nil {
		s.Log.Error("lockService.Unlock error calling redisRepo.DeleteIfValue",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	switch result {
	case compareMissing:
		s.Log.Info("lockService.Unlock no lock found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
		)
		return nil
	case compareMismatch:
		return s.ownershipError(requestID, key, lockValue)
	}

	s.Log.Info("lockService.Unlock succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRedisKey, key),
	)
	return nil
}

// Refresh extends key's TTL when it is still held with lockValue. A lock that
// has expired or changed hands is reported as an error.
func (s *lockService) Refresh(ctx context.Context, key, lockValue string, expiration time.Duration) error {
	requestID := utils.RequestIDFromContext(ctx)

	result, err := s.redisRepo.ExpireIfValue(ctx, key, lockValue, expiration)
	if err != nil {
		s.Log.Error("lockService.Refresh error calling redisRepo.ExpireIfValue",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	switch result {
	case compareMissing:
		return exceptions.ErrRedisUnlock(fmt.Errorf("lock %s expired before refresh", key))
	case compareMismatch:
		return s.ownershipError(requestID, key, lockValue)
	}
	return nil
}

func (s *lockService) ownershipError(requestID, key, lockValue string) error {
	err := exceptions.ErrRedisUnlock(fmt.Errorf("lock %s not owned by this client", key))
	s.Log.Error("lockService lock ownership mismatch",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRedisKey, key),
		zap.String(constvars.LoggingLockValueKey, lockValue),
		zap.Error(err),
	)
	return err
}
