// Package storage defines the core storage interfaces that the application relies on.
// It abstracts persistence operations and transaction management so that different
// backends (e.g. PostgreSQL) can provide concrete implementations.
//
//go:generate mockgen -package mockstorage -destination=mock/mockstorage.go bincatalog/pkg/storage Storage,TxStorage,AllStorage
package storage

import "context"

// AllStorage is a composite interface that includes every catalog port
// required by the application. Implementations typically embed the narrower
// per-aggregate interfaces.
type AllStorage interface {
	BinStorage
	SubtypeStorage
	AgencyStorage
	ValidationStorage
	ValidationMapStorage
	CommercePlanStorage
	PlanItemStorage
	SubtypePlanStorage
	JobStorage
}

// TxStorage describes a storage handle that operates within a database
// transaction. It exposes the same capabilities as AllStorage and additionally
// allows committing or rolling back the ongoing transaction.
// Implementations should become unusable after Commit or Rollback is called.
type TxStorage interface {
	AllStorage

	// Commit finalizes the transaction, persisting all changes.
	Commit() error
	// Rollback aborts the transaction, discarding all uncommitted changes.
	Rollback() error
}

// Storage describes a non-transactional storage handle with the ability to
// start transactions.
type Storage interface {
	AllStorage

	// Close releases any resources held by the storage implementation (e.g. the
	// underlying connection pool). After Close, the instance should not be used.
	Close() error

	// Begin starts a new transaction and returns a TxStorage that can be used to
	// perform further operations within that transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx begins a transaction, invokes cb with the transactional handle and
	// commits on success. When cb returns an error the transaction is rolled
	// back and the error is returned unchanged.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
