package slot

import (
	"context"
	"errors"
	"scheduling-service/internal/pkg/constvars"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newTestWorker() (*Worker, *MockLockerService, *MockAvailabilityRepository, *MockSlotUsecase) {
	locker := new(MockLockerService)
	repo := new(MockAvailabilityRepository)
	usecase := new(MockSlotUsecase)
	w := NewWorker(zap.NewNop(), testInternalConfig(), locker, repo, usecase)
	w.now = func() time.Time { return at("15:42") }
	return w, locker, repo, usecase
}

func TestWorker_RunOnce(t *testing.T) {
	ctx := context.Background()
	from := at("00:00")
	to := from.AddDate(0, 0, 7)

	t.Run("Leader Generates Snapshot Per Tutor", func(t *testing.T) {
		w, locker, repo, usecase := newTestWorker()
		locker.On("TryLock", mock.Anything, constvars.SlotWorkerLeaderLockKey, 2*time.Minute).Return(true, "token-1", nil)
		locker.On("Unlock", mock.Anything, constvars.SlotWorkerLeaderLockKey, "token-1").Return(nil)
		repo.On("FindTutorIDsWithAvailability", mock.Anything, from, to).Return([]string{"tutor-a", "tutor-b"}, nil)
		usecase.On("GenerateSnapshot", mock.Anything, "tutor-a", from, to).Return(nil)
		usecase.On("GenerateSnapshot", mock.Anything, "tutor-b", from, to).Return(nil)

		w.runOnce(ctx)

		usecase.AssertExpectations(t)
		locker.AssertExpectations(t)
	})

	t.Run("One Failing Tutor Does Not Stop The Run", func(t *testing.T) {
		w, locker, repo, usecase := newTestWorker()
		locker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(true, "token-1", nil)
		locker.On("Unlock", mock.Anything, mock.Anything, "token-1").Return(nil)
		repo.On("FindTutorIDsWithAvailability", mock.Anything, from, to).Return([]string{"tutor-a", "tutor-b"}, nil)
		usecase.On("GenerateSnapshot", mock.Anything, "tutor-a", from, to).Return(errors.New("minio down"))
		usecase.On("GenerateSnapshot", mock.Anything, "tutor-b", from, to).Return(nil)

		w.runOnce(ctx)

		usecase.AssertNumberOfCalls(t, "GenerateSnapshot", 2)
	})

	t.Run("Follower Does Nothing", func(t *testing.T) {
		w, locker, repo, usecase := newTestWorker()
		locker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(false, "", nil)

		w.runOnce(ctx)

		repo.AssertNotCalled(t, "FindTutorIDsWithAvailability", mock.Anything, mock.Anything, mock.Anything)
		usecase.AssertNotCalled(t, "GenerateSnapshot", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		locker.AssertNotCalled(t, "Unlock", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Lock Error Aborts The Run", func(t *testing.T) {
		w, locker, repo, _ := newTestWorker()
		locker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(false, "", errors.New("redis down"))

		w.runOnce(ctx)

		repo.AssertNotCalled(t, "FindTutorIDsWithAvailability", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Listing Failure Still Releases The Lock", func(t *testing.T) {
		w, locker, repo, usecase := newTestWorker()
		locker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(true, "token-1", nil)
		locker.On("Unlock", mock.Anything, mock.Anything, "token-1").Return(nil)
		repo.On("FindTutorIDsWithAvailability", mock.Anything, from, to).Return(nil, errors.New("mongo down"))

		w.runOnce(ctx)

		locker.AssertCalled(t, "Unlock", mock.Anything, constvars.SlotWorkerLeaderLockKey, "token-1")
		usecase.AssertNotCalled(t, "GenerateSnapshot", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestWorker_Window(t *testing.T) {
	w, _, _, _ := newTestWorker()

	from, to := w.window()

	assert.True(t, at("00:00").Equal(from))
	assert.True(t, at("00:00").AddDate(0, 0, 7).Equal(to))
}

func TestWorker_StartStop(t *testing.T) {
	t.Run("Invalid Cron Spec Falls Back", func(t *testing.T) {
		w, _, _, _ := newTestWorker()
		w.cfg.Slot.WorkerCronSpec = "not a cron spec"

		w.Start(context.Background())
		entries := w.cron.Entries()
		w.Stop()
		w.Stop()

		assert.Len(t, entries, 1)
	})
}
