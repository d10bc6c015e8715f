package slot

import (
	"context"
	"scheduling-service/internal/app/contracts"
	"scheduling-service/internal/app/models"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockAvailabilityRepository struct {
	mock.Mock
}

func (m *MockAvailabilityRepository) EnsureIndexes(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAvailabilityRepository) CreateMany(ctx context.Context, blocks []models.AvailabilityBlock) error {
	args := m.Called(ctx, blocks)
	return args.Error(0)
}

func (m *MockAvailabilityRepository) FindByTutorIDInRange(ctx context.Context, tutorID string, from, to time.Time) ([]models.AvailabilityBlock, error) {
	args := m.Called(ctx, tutorID, from, to)
	blocks, _ := args.Get(0).([]models.AvailabilityBlock)
	return blocks, args.Error(1)
}

func (m *MockAvailabilityRepository) FindTutorIDsWithAvailability(ctx context.Context, from, to time.Time) ([]string, error) {
	args := m.Called(ctx, from, to)
	ids, _ := args.Get(0).([]string)
	return ids, args.Error(1)
}

func (m *MockAvailabilityRepository) DeleteByID(ctx context.Context, tutorID, blockID string) (bool, error) {
	args := m.Called(ctx, tutorID, blockID)
	return args.Bool(0), args.Error(1)
}

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Delete(ctx context.Context, keys ...string) error {
	args := m.Called(ctx, keys)
	return args.Error(0)
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) Increment(ctx context.Context, key string) (int64, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRedisRepository) DeleteIfValue(ctx context.Context, key string, value interface{}) (int64, error) {
	args := m.Called(ctx, key, value)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRedisRepository) ExpireIfValue(ctx context.Context, key string, value interface{}, exp time.Duration) (int64, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) PutObject(ctx context.Context, bucketName, objectName string, body []byte, contentType string) error {
	args := m.Called(ctx, bucketName, objectName, body, contentType)
	return args.Error(0)
}

func (m *MockStorage) ObjectExists(ctx context.Context, bucketName, objectName string) (bool, error) {
	args := m.Called(ctx, bucketName, objectName)
	return args.Bool(0), args.Error(1)
}

func (m *MockStorage) GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error) {
	args := m.Called(ctx, bucketName, objectName, expiryTime)
	return args.String(0), args.Error(1)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, event *models.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}

type MockLockerService struct {
	mock.Mock
}

func (m *MockLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *MockLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	args := m.Called(ctx, key, lockValue)
	return args.Error(0)
}

func (m *MockLockerService) Refresh(ctx context.Context, key, lockValue string, expiration time.Duration) error {
	args := m.Called(ctx, key, lockValue, expiration)
	return args.Error(0)
}

type MockSlotUsecase struct {
	mock.Mock
}

func (m *MockSlotUsecase) ExtractSlots(ctx context.Context, input *contracts.ExtractSlotsInput) (*contracts.SlotsOutput, error) {
	args := m.Called(ctx, input)
	output, _ := args.Get(0).(*contracts.SlotsOutput)
	return output, args.Error(1)
}

func (m *MockSlotUsecase) GetTutorSlots(ctx context.Context, input *contracts.GetTutorSlotsInput) (*contracts.SlotsOutput, error) {
	args := m.Called(ctx, input)
	output, _ := args.Get(0).(*contracts.SlotsOutput)
	return output, args.Error(1)
}

func (m *MockSlotUsecase) InvalidateTutor(ctx context.Context, tutorID string) error {
	args := m.Called(ctx, tutorID)
	return args.Error(0)
}

func (m *MockSlotUsecase) GenerateSnapshot(ctx context.Context, tutorID string, from, to time.Time) error {
	args := m.Called(ctx, tutorID, from, to)
	return args.Error(0)
}

func (m *MockSlotUsecase) GetSnapshotURL(ctx context.Context, tutorID string) (*contracts.SnapshotURLOutput, error) {
	args := m.Called(ctx, tutorID)
	output, _ := args.Get(0).(*contracts.SnapshotURLOutput)
	return output, args.Error(1)
}
