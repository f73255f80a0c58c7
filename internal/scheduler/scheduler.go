package scheduler

import (
	"context"
	"time"

	"github.com/evento-ems/evento/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type revenueReconciler interface {
	Reconcile(ctx context.Context) ([]domain.RevenueDrift, error)
}

// Scheduler periodically recomputes per-event income from the ticket store
// and reports events whose cached counters drifted.
type Scheduler struct {
	revenueService revenueReconciler
	interval       time.Duration
	logger         logger.Logger
}

func New(
	revenueService revenueReconciler,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		revenueService: revenueService,
		interval:       interval,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("reconciliation scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("reconciliation scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	drift, err := s.revenueService.Reconcile(ctx)
	if err != nil {
		s.logger.Error("revenue reconciliation failed",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, d := range drift {
		s.logger.Warn("event income drifted from ticket records",
			logger.String("event_id", d.EventID),
			logger.Int64("cached_income", d.CachedIncome),
			logger.Int64("actual_income", d.ActualIncome),
		)
	}
}
