package services

import (
	"errors"

	"github.com/kikis202/spot/internal/core/domain/model/kernel"
	"github.com/kikis202/spot/internal/core/domain/model/machine"
	"github.com/kikis202/spot/internal/core/domain/model/parcel"
)

// ErrLockerNotFound is returned when no suitable locker is available for the
// parcel. This occurs when the machine has no locker of the parcel's size, or
// all matching lockers are occupied or already claimed earlier in the batch.
var ErrLockerNotFound = errors.New("no available locker of required size")

// LockerAllocator is a domain service responsible for placing a parcel into an
// available locker of a parcel machine.
//
// Key responsibilities:
//   - Validating the parcel and machine before allocation
//   - Selecting a free locker whose size matches the parcel exactly
//   - Keeping batch allocations consistent via the claimed set
//
// Business rules:
//   - Locker sizes match parcel sizes exactly, a SMALL parcel never takes a
//     MEDIUM locker
//   - CUSTOM-sized parcels are never placed in lockers
//   - A locker claimed earlier in the same batch is not offered again, even
//     though its reservation is only persisted when the batch commits
//
// Example usage:
//
//	allocator := services.NewLockerAllocator()
//	claimed := map[kernel.UUID]struct{}{}
//
//	locker, err := allocator.Allocate(parcel, machine, claimed)
//	if errors.Is(err, services.ErrLockerNotFound) {
//	    // Machine is full for this size
//	    return
//	}
type LockerAllocator struct{}

// NewLockerAllocator creates a new LockerAllocator instance.
func NewLockerAllocator() LockerAllocator {
	return LockerAllocator{}
}

// Allocate finds a free locker in the machine that fits the parcel, reserves
// it, and moves the parcel into the awaiting-pickup state.
//
// The claimed set carries locker IDs taken by earlier parcels of the same
// batch; the chosen locker's ID is added to it before returning. Pass the same
// map across all calls of a batch.
//
// Returns ErrLockerNotFound when the machine has no free locker of the
// parcel's size.
func (a LockerAllocator) Allocate(
	p *parcel.Parcel,
	m *machine.ParcelMachine,
	claimed map[kernel.UUID]struct{},
) (*machine.Locker, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	locker := m.FindAvailableLocker(p.Size(), claimed)
	if locker == nil {
		return nil, ErrLockerNotFound
	}

	if err := locker.Reserve(); err != nil {
		return nil, err
	}

	if err := p.PlaceInLocker(locker.ID()); err != nil {
		// Roll the in-memory reservation back so the locker stays allocatable.
		_ = locker.Release()
		return nil, err
	}

	if claimed != nil {
		claimed[locker.ID()] = struct{}{}
	}

	return locker, nil
}
