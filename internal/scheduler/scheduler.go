package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type toastSweeper interface {
	DismissExpired(ctx context.Context) (int, error)
}

// Scheduler periodically removes toasts whose display time is over.
type Scheduler struct {
	feed     toastSweeper
	interval time.Duration
	logger   logger.Logger
}

func New(
	feed toastSweeper,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		feed:     feed,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	dismissed, err := s.feed.DismissExpired(ctx)
	if err != nil {
		s.logger.Error("failed to dismiss expired notifications",
			logger.String("error", err.Error()),
		)
		return
	}

	if dismissed > 0 {
		s.logger.Debug("notifications dismissed",
			logger.Int("count", dismissed),
		)
	}
}
