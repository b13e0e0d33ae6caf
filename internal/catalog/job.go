package catalog

import (
	"github.com/riverqueue/river"

	"bincatalog/pkg/events"
)

// ChangeJobKind is the River kind of ChangeJobArgs.
const ChangeJobKind = "catalog_changed"

// ChangeJobArgs is inserted in the transaction of every catalog write. The
// worker runs it once the write has committed, so the cache and downstream
// consumers never observe a change that was rolled back.
type ChangeJobArgs struct {
	Change events.CatalogChanged `json:"change"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
}

// Kind returns the River job kind used to register and dispatch the change worker.
func (args ChangeJobArgs) Kind() string { return ChangeJobKind }

// InsertOpts returns the River options used when enqueueing the job.
func (args ChangeJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
	}
}

// InvalidatesAll reports whether the change affects the resolution of every
// pair. Definition changes do, since any mapping may refer to them.
func (args ChangeJobArgs) InvalidatesAll() bool {
	return args.Change.Entity == events.EntityValidation
}

// InvalidatesPair reports whether the change affects the resolution of the
// single pair named by the change.
func (args ChangeJobArgs) InvalidatesPair() bool {
	return args.Change.Entity == events.EntityValidationMap && args.Change.SubtypeCode != "" && args.Change.Bin != ""
}
