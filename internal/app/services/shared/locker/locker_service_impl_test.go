package locker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

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

func TestLockService_TryLock(t *testing.T) {
	ctx := context.Background()

	t.Run("Acquired Returns Token", func(t *testing.T) {
		repo := new(MockRedisRepository)
		service := NewLockService(repo, zap.NewNop())
		repo.On("TrySetNX", mock.Anything, "slotgen:leader", mock.AnythingOfType("string"), time.Minute).Return(true, nil)

		acquired, token, err := service.TryLock(ctx, "slotgen:leader", time.Minute)

		require.NoError(t, err)
		assert.True(t, acquired)
		assert.NotEmpty(t, token)
		repo.AssertCalled(t, "TrySetNX", mock.Anything, "slotgen:leader", token, time.Minute)
	})

	t.Run("Held Elsewhere", func(t *testing.T) {
		repo := new(MockRedisRepository)
		service := NewLockService(repo, zap.NewNop())
		repo.On("TrySetNX", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(false, nil)

		acquired, token, err := service.TryLock(ctx, "slotgen:leader", time.Minute)

		require.NoError(t, err)
		assert.False(t, acquired)
		assert.Empty(t, token)
	})

	t.Run("Redis Error", func(t *testing.T) {
		repo := new(MockRedisRepository)
		service := NewLockService(repo, zap.NewNop())
		repo.On("TrySetNX", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(false, errors.New("redis down"))

		acquired, _, err := service.TryLock(ctx, "slotgen:leader", time.Minute)

		assert.Error(t, err)
		assert.False(t, acquired)
	})
}

func TestLockService_Unlock(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name    string
		result  int64
		repoErr error
		wantErr bool
	}{
		{name: "Owner Deletes The Key", result: 1},
		{name: "Expired Lock Is A No-op", result: 0},
		{name: "Lock Taken Over By Another Owner Is Left Alone", result: -1, wantErr: true},
		{name: "Redis Error", repoErr: errors.New("redis down"), wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(MockRedisRepository)
			service := NewLockService(repo, zap.NewNop())
			repo.On("DeleteIfValue", mock.Anything, "slotgen:leader", "token-1").Return(tc.result, tc.repoErr)

			err := service.Unlock(ctx, "slotgen:leader", "token-1")

			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			repo.AssertExpectations(t)
			repo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
			repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
		})
	}
}

func TestLockService_Refresh(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name    string
		result  int64
		repoErr error
		wantErr bool
	}{
		{name: "Owner Extends TTL", result: 1},
		{name: "Lost Lock Is An Error", result: 0, wantErr: true},
		{name: "Lock Owned Elsewhere Is An Error", result: -1, wantErr: true},
		{name: "Redis Error", repoErr: errors.New("redis down"), wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(MockRedisRepository)
			service := NewLockService(repo, zap.NewNop())
			repo.On("ExpireIfValue", mock.Anything, "slotgen:leader", "token-1", 2*time.Minute).Return(tc.result, tc.repoErr)

			err := service.Refresh(ctx, "slotgen:leader", "token-1", 2*time.Minute)

			if tc.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			repo.AssertExpectations(t)
		})
	}
}
