package machine

import (
	"errors"

	"github.com/kikis202/spot/internal/core/domain/model/kernel"
	"github.com/kikis202/spot/internal/core/domain/model/parcel"
	"github.com/kikis202/spot/internal/pkg/errs"
)

var (
	// ErrLockerIsNotConstructed is returned when a Locker was not created via
	// NewLocker or RestoreLocker.
	ErrLockerIsNotConstructed = errors.New("Locker must be created via NewLocker or RestoreLocker")

	// ErrLockerIsOccupied is returned when reserving a locker that is already taken.
	ErrLockerIsOccupied = errors.New("locker is already occupied")

	// ErrLockerIsNotOccupied is returned when releasing a locker that is free.
	ErrLockerIsNotOccupied = errors.New("locker is not occupied")
)

// Locker is a single compartment of a parcel machine. At most one parcel
// occupies a locker at a time: available is false exactly while some
// non-terminal parcel holds the locker.
//
// Lockers come in the standard parcel sizes (custom-sized parcels never fit),
// and allocation matches the parcel size exactly: a small parcel does not go
// into a medium locker.
type Locker struct {
	id        kernel.UUID
	machineID kernel.UUID
	size      parcel.Size
	available bool

	isConstructed bool
}

// NewLocker creates an available locker of the given size for a machine.
func NewLocker(id, machineID kernel.UUID, size parcel.Size) (*Locker, error) {
	return RestoreLocker(id, machineID, size, true)
}

// RestoreLocker reconstructs a locker from persistence.
func RestoreLocker(id, machineID kernel.UUID, size parcel.Size, available bool) (*Locker, error) {
	if err := errors.Join(id.Validate(), machineID.Validate(), size.Validate()); err != nil {
		return nil, err
	}
	if size == parcel.SizeCustom {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"size", errors.New("lockers do not come in a CUSTOM size"))
	}

	return &Locker{
		id:            id,
		machineID:     machineID,
		size:          size,
		available:     available,
		isConstructed: true,
	}, nil
}

// Validate ensures the Locker instance was properly constructed.
func (l *Locker) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLockerIsNotConstructed
	}
	return nil
}

// ID returns the locker's unique identifier.
func (l *Locker) ID() kernel.UUID { return l.id }

// MachineID returns the parcel machine this locker belongs to.
func (l *Locker) MachineID() kernel.UUID { return l.machineID }

// Size returns the locker's size class.
func (l *Locker) Size() parcel.Size { return l.size }

// IsAvailable reports whether the locker is free to be reserved.
func (l *Locker) IsAvailable() bool { return l.available }

// Fits reports whether a parcel of the given size may be placed in this locker.
// Sizes must match exactly.
func (l *Locker) Fits(size parcel.Size) bool {
	return l.size == size
}

// Reserve marks the locker as occupied.
// Returns ErrLockerIsOccupied when the locker is already taken.
func (l *Locker) Reserve() error {
	if !l.available {
		return ErrLockerIsOccupied
	}
	l.available = false
	return nil
}

// Release marks the locker as free again after its parcel leaves.
// Returns ErrLockerIsNotOccupied when the locker is already free.
func (l *Locker) Release() error {
	if l.available {
		return ErrLockerIsNotOccupied
	}
	l.available = true
	return nil
}
