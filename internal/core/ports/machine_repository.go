package ports

import (
	"context"

	"github.com/kikis202/spot/internal/core/domain/model/kernel"
	"github.com/kikis202/spot/internal/core/domain/model/machine"
)

// MachineRepository defines the persistence contract for parcel machines and
// their lockers.
type MachineRepository interface {
	// Add persists a new machine together with all of its lockers.
	Add(ctx context.Context, aggregate *machine.ParcelMachine) error

	// Get retrieves a machine with its lockers by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*machine.ParcelMachine, error)

	// GetByAddressID retrieves the machine installed at the given address.
	// Returns an object-not-found error when no machine sits at the address,
	// which is how a status update learns the destination is a home address.
	GetByAddressID(ctx context.Context, addressID kernel.UUID) (*machine.ParcelMachine, error)

	// ReserveLocker marks a locker as occupied with an optimistic condition:
	// the write only applies if the locker is still available. Returns a
	// conflict error when a concurrent transaction took the locker first.
	ReserveLocker(ctx context.Context, lockerID kernel.UUID) error

	// ReleaseLocker marks a locker as available again after its parcel left
	// the awaiting-pickup state. Releasing an already free locker is a no-op.
	ReleaseLocker(ctx context.Context, lockerID kernel.UUID) error

	// ReleaseOrphanedLockers frees every occupied locker that no parcel in
	// awaiting-pickup status references anymore. Such lockers can appear when
	// a process dies between a status transition and its locker release.
	// Returns the number of lockers freed.
	ReleaseOrphanedLockers(ctx context.Context) (int64, error)
}
