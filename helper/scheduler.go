package helper

import (
	"context"
	"time"

	"oneclickticket/config"
	"oneclickticket/database"

	"github.com/go-co-op/gocron/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/jonboulle/clockwork"
)

var optionScheduler gocron.Scheduler

// NewIntervalScheduler runs task every interval, starting immediately, on clock.
func NewIntervalScheduler(clock clockwork.Clock, interval time.Duration, task func()) (gocron.Scheduler, error) {
	s, err := gocron.NewScheduler(gocron.WithClock(clock))
	if err != nil {
		return nil, err
	}
	_, err = s.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(task),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		_ = s.Shutdown()
		return nil, err
	}
	return s, nil
}

func refreshOptionCache() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := WarmOptionCache(ctx); err != nil {
		log.Errorf("[CRON] option cache refresh failed: %v", err)
	}
}

func StartOptionCacheScheduler() {
	if database.Redis == nil {
		log.Info("[CRON] option cache scheduler skipped, redis unavailable")
		return
	}
	interval := config.ConfigDuration("OPTION_CACHE_REFRESH", 5*time.Minute)
	s, err := NewIntervalScheduler(Clock, interval, refreshOptionCache)
	if err != nil {
		log.Fatal(err)
	}
	optionScheduler = s
	s.Start()
	log.Infof("[CRON] option cache scheduler started (every %s)", interval)
}

func StopOptionCacheScheduler() {
	if optionScheduler == nil {
		return
	}
	if err := optionScheduler.Shutdown(); err != nil {
		log.Errorf("[CRON] scheduler shutdown: %v", err)
	}
	optionScheduler = nil
}
