package slot

import (
	"context"
	"scheduling-service/internal/app/config"
	"scheduling-service/internal/app/contracts"
	"scheduling-service/internal/pkg/constvars"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	fallbackCronSpec       = "@daily"
	defaultWorkerLockTTL   = 2 * time.Minute
	defaultWindowDays      = 14
	defaultTutorsPerSecond = 5
)

// Worker periodically regenerates slot snapshots for every tutor with stored
// availability. Only the instance holding the Redis leader lock does the work.
type Worker struct {
	log          *zap.Logger
	cfg          *config.InternalConfig
	locker       contracts.LockerService
	availability contracts.AvailabilityRepository
	slotUsecase  contracts.SlotUsecaseIface
	limiter      *rate.Limiter
	cron         *cron.Cron
	runCtx       context.Context
	cancel       context.CancelFunc
	stopOnce     sync.Once
	now          func() time.Time
}

func NewWorker(
	log *zap.Logger,
	cfg *config.InternalConfig,
	lockerSvc contracts.LockerService,
	availabilityRepo contracts.AvailabilityRepository,
	slotUsecase contracts.SlotUsecaseIface,
) *Worker {
	perSecond := cfg.Slot.WorkerTutorsPerSecond
	if perSecond <= 0 {
		perSecond = defaultTutorsPerSecond
	}
	return &Worker{
		log:          log,
		cfg:          cfg,
		locker:       lockerSvc,
		availability: availabilityRepo,
		slotUsecase:  slotUsecase,
		limiter:      rate.NewLimiter(rate.Limit(perSecond), 1),
		now:          time.Now,
	}
}

// Start schedules the worker on the configured cron spec. An invalid spec falls
// back to running once a day.
func (w *Worker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	spec := w.cfg.Slot.WorkerCronSpec
	if _, err := c.AddFunc(spec, func() { w.runOnce(w.runCtx) }); err != nil {
		w.log.Warn("slot.worker: invalid cron spec, falling back to @daily",
			zap.String("cron_spec", spec),
			zap.Error(err),
		)
		c = cron.New()
		_, _ = c.AddFunc(fallbackCronSpec, func() { w.runOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c
}

// Stop cancels in-flight runs and waits for the running job to return.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() {
		if w.cancel != nil {
			w.cancel()
		}
		if w.cron != nil {
			<-w.cron.Stop().Done()
		}
	})
}

func (w *Worker) runOnce(ctx context.Context) {
	ttl := w.cfg.Slot.WorkerLockTTL
	if ttl <= 0 {
		ttl = defaultWorkerLockTTL
	}

	acquired, token, err := w.locker.TryLock(ctx, constvars.SlotWorkerLeaderLockKey, ttl)
	if err != nil {
		w.log.Warn("slot.worker: leader lock attempt failed", zap.Error(err))
		return
	}
	if !acquired {
		w.log.Info("slot.worker: leader lock held by another instance")
		return
	}
	defer func() {
		if err := w.locker.Unlock(context.WithoutCancel(ctx), constvars.SlotWorkerLeaderLockKey, token); err != nil {
			w.log.Warn("slot.worker: failed to release leader lock", zap.Error(err))
		}
	}()

	refreshCtx, cancelRefresh := context.WithCancel(ctx)
	defer cancelRefresh()
	go w.refreshLock(refreshCtx, token, ttl)

	from, to := w.window()
	tutorIDs, err := w.availability.FindTutorIDsWithAvailability(ctx, from, to)
	if err != nil {
		w.log.Warn("slot.worker: listing tutors failed", zap.Error(err))
		return
	}

	var generated, failed int
	for _, tutorID := range tutorIDs {
		if err := w.limiter.Wait(ctx); err != nil {
			w.log.Info("slot.worker: run cancelled", zap.Error(err))
			break
		}
		if err := w.slotUsecase.GenerateSnapshot(ctx, tutorID, from, to); err != nil {
			failed++
			w.log.Warn("slot.worker: snapshot generation failed",
				zap.String(constvars.LoggingTutorIDKey, tutorID),
				zap.Error(err),
			)
			continue
		}
		generated++
	}

	w.log.Info("slot.worker: run finished",
		zap.Int("tutors", len(tutorIDs)),
		zap.Int("generated", generated),
		zap.Int("failed", failed),
	)
}

func (w *Worker) refreshLock(ctx context.Context, token string, ttl time.Duration) {
	tick := time.NewTicker(ttl / 2)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
			if err := w.locker.Refresh(ctx, constvars.SlotWorkerLeaderLockKey, token, ttl); err != nil {
				w.log.Warn("slot.worker: failed to refresh leader lock TTL",
					zap.String(constvars.LoggingRedisKey, constvars.SlotWorkerLeaderLockKey),
					zap.Error(err),
				)
			}
		}
	}
}

// window starts at local midnight today and spans WindowDays days.
func (w *Worker) window() (time.Time, time.Time) {
	days := w.cfg.Slot.WindowDays
	if days <= 0 {
		days = defaultWindowDays
	}
	now := w.now().In(w.cfg.Location())
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return from, from.AddDate(0, 0, days)
}
