// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// and persistence. Batch commands open exactly one transaction; every parcel in
// the batch succeeds or none do.
package commands

import (
	"context"

	"github.com/kikis202/spot/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler declares only the repositories it touches, so tests mock the
// minimum surface.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ParcelRepoFactory provides access to the parcel repository within a transaction.
	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	// MachineRepoFactory provides access to the machine repository within a transaction.
	MachineRepoFactory interface {
		MachineRepository() ports.MachineRepository
	}

	// AddressRepoFactory provides access to the address repository within a transaction.
	AddressRepoFactory interface {
		AddressRepository() ports.AddressRepository
	}

	// ContactRepoFactory provides access to the contact repository within a transaction.
	ContactRepoFactory interface {
		ContactRepository() ports.ContactRepository
	}

	// SubscriptionRepoFactory provides access to the subscription repository within a transaction.
	SubscriptionRepoFactory interface {
		SubscriptionRepository() ports.SubscriptionRepository
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// ParcelUoW manages transactions for parcel-only operations.
	ParcelUoW interface {
		TxManager
		ParcelRepoFactory
	}

	// ParcelUoWFactory creates new parcel unit of work instances.
	ParcelUoWFactory interface {
		Create() ParcelUoW
	}

	// CreateParcelUoW manages transactions for parcel creation, which has to
	// resolve address and contact references before building the aggregate.
	CreateParcelUoW interface {
		TxManager
		ParcelRepoFactory
		AddressRepoFactory
		ContactRepoFactory
	}

	// CreateParcelUoWFactory creates new parcel-creation unit of work instances.
	CreateParcelUoWFactory interface {
		Create() CreateParcelUoW
	}

	// UpdateStatusesUoW manages transactions for batch status updates, which
	// coordinate parcels with machine lockers.
	UpdateStatusesUoW interface {
		TxManager
		ParcelRepoFactory
		MachineRepoFactory
	}

	// UpdateStatusesUoWFactory creates new status-update unit of work instances.
	UpdateStatusesUoWFactory interface {
		Create() UpdateStatusesUoW
	}

	// TrackingUoW manages transactions for tracking subscription changes.
	TrackingUoW interface {
		TxManager
		ParcelRepoFactory
		SubscriptionRepoFactory
	}

	// TrackingUoWFactory creates new tracking unit of work instances.
	TrackingUoWFactory interface {
		Create() TrackingUoW
	}

	// AddressUoW manages transactions for address book operations.
	AddressUoW interface {
		TxManager
		AddressRepoFactory
	}

	// AddressUoWFactory creates new address unit of work instances.
	AddressUoWFactory interface {
		Create() AddressUoW
	}

	// ContactUoW manages transactions for contact book operations.
	ContactUoW interface {
		TxManager
		ContactRepoFactory
	}

	// ContactUoWFactory creates new contact unit of work instances.
	ContactUoWFactory interface {
		Create() ContactUoW
	}

	// MachineUoW manages transactions for parcel machine provisioning, which
	// writes the machine together with its dedicated address.
	MachineUoW interface {
		TxManager
		MachineRepoFactory
		AddressRepoFactory
	}

	// MachineUoWFactory creates new machine unit of work instances.
	MachineUoWFactory interface {
		Create() MachineUoW
	}

	// UserUoW manages transactions for user account operations.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	// UserUoWFactory creates new user unit of work instances.
	UserUoWFactory interface {
		Create() UserUoW
	}
)
