package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and hands out repositories bound to the
// current transaction. Client code must explicitly manage the transaction
// lifecycle; a batch command commits exactly once, after every parcel in the
// batch succeeded.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// ParcelRepository returns a ParcelRepository bound to the current transaction.
	ParcelRepository() ParcelRepository

	// MachineRepository returns a MachineRepository bound to the current transaction.
	MachineRepository() MachineRepository

	// AddressRepository returns an AddressRepository bound to the current transaction.
	AddressRepository() AddressRepository

	// ContactRepository returns a ContactRepository bound to the current transaction.
	ContactRepository() ContactRepository

	// SubscriptionRepository returns a SubscriptionRepository bound to the current transaction.
	SubscriptionRepository() SubscriptionRepository

	// UserRepository returns a UserRepository bound to the current transaction.
	UserRepository() UserRepository
}
