package machine

import (
	"errors"

	"github.com/kikis202/spot/internal/core/domain/model/kernel"
	"github.com/kikis202/spot/internal/core/domain/model/parcel"
	"github.com/kikis202/spot/internal/pkg/errs"
)

// ErrParcelMachineIsNotConstructed is returned when a ParcelMachine was not
// created via NewParcelMachine or RestoreParcelMachine.
var ErrParcelMachineIsNotConstructed = errors.New(
	"ParcelMachine must be created via NewParcelMachine or RestoreParcelMachine")

// ParcelMachine is an aggregate root representing one physical locker bank.
// A machine has a name, exactly one address, and a fixed set of lockers.
// The machine's address is what parcels are destined to when they should end
// up in a locker.
type ParcelMachine struct {
	id        kernel.UUID
	name      string
	addressID kernel.UUID
	lockers   []*Locker

	isConstructed bool
}

// NewParcelMachine creates a machine with the given lockers.
// The name is required; lockers may be empty for a machine being provisioned.
func NewParcelMachine(id kernel.UUID, name string, addressID kernel.UUID, lockers []*Locker) (*ParcelMachine, error) {
	if err := errors.Join(id.Validate(), addressID.Validate()); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	for _, l := range lockers {
		if err := l.Validate(); err != nil {
			return nil, err
		}
	}

	return &ParcelMachine{
		id:            id,
		name:          name,
		addressID:     addressID,
		lockers:       lockers,
		isConstructed: true,
	}, nil
}

// RestoreParcelMachine reconstructs a machine from persistence.
func RestoreParcelMachine(id kernel.UUID, name string, addressID kernel.UUID, lockers []*Locker) (*ParcelMachine, error) {
	return NewParcelMachine(id, name, addressID, lockers)
}

// Validate ensures the ParcelMachine instance was properly constructed.
func (m *ParcelMachine) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrParcelMachineIsNotConstructed
	}
	return nil
}

// ID returns the machine's unique identifier.
func (m *ParcelMachine) ID() kernel.UUID { return m.id }

// Name returns the machine's display name.
func (m *ParcelMachine) Name() string { return m.name }

// AddressID returns the machine's address reference.
func (m *ParcelMachine) AddressID() kernel.UUID { return m.addressID }

// Lockers returns the machine's lockers.
func (m *ParcelMachine) Lockers() []*Locker { return m.lockers }

// FindAvailableLocker returns the first free locker of exactly the given size,
// skipping lockers whose IDs appear in excluded. The excluded set is how a
// batch operation keeps a locker it has already promised to one parcel from
// being handed to a second parcel before anything is persisted.
//
// Returns nil when no locker qualifies.
func (m *ParcelMachine) FindAvailableLocker(size parcel.Size, excluded map[kernel.UUID]struct{}) *Locker {
	for _, l := range m.lockers {
		if !l.IsAvailable() || !l.Fits(size) {
			continue
		}
		if _, claimed := excluded[l.ID()]; claimed {
			continue
		}
		return l
	}
	return nil
}
