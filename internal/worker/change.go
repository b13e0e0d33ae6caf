package worker

import (
	"context"
	"fmt"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"bincatalog/internal/catalog"
	"bincatalog/pkg/events"
	"bincatalog/pkg/logger"
	"bincatalog/pkg/metrics"
	"bincatalog/pkg/rulecache"
)

// ChangeWorker runs after every committed catalog write. It drops the cached
// resolution pages the change may have affected and then publishes the change.
//
// Both steps are safe to repeat, so a failed job is simply retried by River:
// consumers of the change topic must tolerate duplicates.
type ChangeWorker struct {
	river.WorkerDefaults[catalog.ChangeJobArgs]

	rules     rulecache.Cache
	publisher events.Publisher
}

// NewChangeWorker returns a ChangeWorker. Nil dependencies are replaced by
// their no-op versions.
func NewChangeWorker(rules rulecache.Cache, publisher events.Publisher) *ChangeWorker {
	if rules == nil {
		rules = rulecache.Nop{}
	}
	if publisher == nil {
		publisher = events.Nop{}
	}

	return &ChangeWorker{
		rules:     rules,
		publisher: publisher,
	}
}

// Work handles a single change.
func (w *ChangeWorker) Work(ctx context.Context, job *river.Job[catalog.ChangeJobArgs]) error {
	change := job.Args.Change
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.String("entity", string(change.Entity)),
		zap.String("key", change.Key),
		zap.String("action", string(change.Action)))

	switch {
	case job.Args.InvalidatesAll():
		if err := w.rules.InvalidateAll(ctx); err != nil {
			logger.Error(ctx, "error invalidating rule cache", zap.Error(err))

			return fmt.Errorf("could not invalidate rule cache: %w", err)
		}
	case job.Args.InvalidatesPair():
		if err := w.rules.Invalidate(ctx, change.SubtypeCode, change.Bin); err != nil {
			logger.Error(ctx, "error invalidating rule cache", zap.Error(err))

			return fmt.Errorf("could not invalidate rule cache: %w", err)
		}
	}

	if err := w.publisher.Publish(ctx, change); err != nil {
		metrics.ChangesPublished.WithLabelValues(string(change.Entity), "failed").Inc()
		logger.Error(ctx, "error publishing catalog change", zap.Error(err))

		return fmt.Errorf("could not publish catalog change: %w", err)
	}
	metrics.ChangesPublished.WithLabelValues(string(change.Entity), "published").Inc()

	logger.Info(ctx, "catalog change processed")

	return nil
}
