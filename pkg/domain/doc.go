// Package domain contains the catalog aggregates: BINs, their subtypes and
// agencies, validation definitions and their mappings, and commerce plans.
//
// Aggregates are immutable values. Their state is only reachable through
// accessors and Snapshot, and every transition returns a new value. Each
// aggregate is built either with its New* factory, which seeds status and
// audit metadata, or with its Rehydrate* factory, which re-validates a stored
// record so that corrupted rows fail loudly instead of loading silently.
package domain
