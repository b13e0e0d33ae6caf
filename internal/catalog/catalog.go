// Package catalog implements the catalog use cases. Every write loads what it
// needs, applies the domain transition, checks the cross-aggregate rules and
// persists inside a single storage transaction, together with the job that
// announces the change once committed.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"bincatalog/internal/config"
	"bincatalog/pkg/domain"
	"bincatalog/pkg/events"
	"bincatalog/pkg/logger"
	"bincatalog/pkg/metrics"
	"bincatalog/pkg/rulecache"
	"bincatalog/pkg/serrors"
	"bincatalog/pkg/storage"
)

var tracer = otel.Tracer("bincatalog/internal/catalog") //nolint: gochecknoglobals

// Options configure the catalog use cases.
type Options struct {
	// MaxAttempts is the maximum number of attempts of a change job.
	MaxAttempts int
	// Now returns the current time; time.Now when nil.
	Now func() time.Time
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxAttempts: cfg.Worker.MaxAttempts,
	}
}

// catalog is the concrete implementation of the Catalog interface.
type catalog struct {
	options Options
	// storage is the persistence layer; writes go through WithTx.
	storage storage.Storage
	// rules caches resolution pages.
	rules rulecache.Cache
}

// New creates a new Catalog instance backed by the provided storage and rule
// cache. A nil cache disables caching.
func New(storage storage.Storage, rules rulecache.Cache, options Options) Catalog {
	if rules == nil {
		rules = rulecache.Nop{}
	}
	if options.Now == nil {
		options.Now = time.Now
	}

	return &catalog{
		options: options,
		storage: storage,
		rules:   rules,
	}
}

func (c *catalog) now() time.Time { return c.options.Now().UTC() }

// track starts a span for op and returns the function recording its outcome.
// It is meant to be deferred with the address of the named error result.
func (c *catalog) track(ctx context.Context, op string) (context.Context, func(*error)) {
	ctx, span := tracer.Start(ctx, "catalog."+op)
	start := time.Now()

	return ctx, func(errp *error) {
		outcome := "ok"
		if err := *errp; err != nil {
			outcome = strings.ToLower(serrors.KindOf(err).Error())
			span.RecordError(err)
			span.SetStatus(codes.Error, serrors.CodeOf(err))
		}
		metrics.Operations.WithLabelValues(op, outcome).Inc()
		metrics.OperationDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
		span.End()
	}
}

// enqueue adds the change job to the ongoing transaction.
func (c *catalog) enqueue(ctx context.Context, tx storage.AllStorage, change events.CatalogChanged) error {
	change.OccurredAt = c.now()
	if _, err := tx.AddJob(ctx, ChangeJobArgs{Change: change, maxAttempts: c.options.MaxAttempts}, nil); err != nil {
		return fmt.Errorf("could not add change job: %w", err)
	}

	return nil
}

// logWrite reports a committed write.
func logWrite(ctx context.Context, msg string, actor domain.Actor, fields ...zap.Field) {
	logger.Info(ctx, msg, append(fields, zap.String("actor", actor.String()))...)
}

// duplicate turns a storage unique violation into the AlreadyExists error of
// family; any other error is returned as is.
func duplicate(err error, family domain.Family, msgFmt string, args ...any) error {
	if errors.Is(err, storage.ErrDuplicate) {
		return family.AlreadyExists(msgFmt, args...)
	}

	return err
}

// parseStatus validates a requested status for family.
func parseStatus(family domain.Family, raw string) (domain.Status, error) {
	status, ok := domain.ParseStatus(raw)
	if !ok {
		return "", family.InvalidData([]string{"status"}, "status must be A or I")
	}

	return status, nil
}

// optionalStatus is parseStatus accepting an empty value.
func optionalStatus(family domain.Family, raw string) (domain.Status, error) {
	if strings.TrimSpace(raw) == "" {
		return "", nil
	}

	return parseStatus(family, raw)
}

func upperCode(code string) string { return strings.ToUpper(strings.TrimSpace(code)) }
