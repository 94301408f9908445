package commands

import (
	"errors"
	"fmt"

	"github.com/kikis202/spot/internal/core/domain/model/kernel"
	"github.com/kikis202/spot/internal/core/domain/model/parcel"
	"github.com/kikis202/spot/internal/pkg/errs"
	"github.com/kikis202/spot/internal/pkg/guard"
)

var ErrCreateMachineCommandIsNotConstructed = errors.New(
	"CreateMachineCommand must be created via NewCreateMachineCommand constructor",
)

// maxLockersPerSize caps how many lockers of one size a machine gets provisioned with.
const maxLockersPerSize = 100

// CreateMachineCommand represents an administrator's request to provision a
// new parcel machine: its name, the address it is installed at, and how many
// lockers of each standard size it has.
type CreateMachineCommand struct { //nolint:recvcheck //using for validation
	machineID    kernel.UUID
	name         string
	fields       addressFields
	lockerCounts map[parcel.Size]int

	guard guard.ConstructorGuard
}

// NewCreateMachineCommand creates a machine provisioning command.
// lockerCounts maps standard sizes to locker counts; each count must be within
// 0..100 and the CUSTOM size is not allowed. Sizes absent from the map get no
// lockers.
func NewCreateMachineCommand(
	machineID kernel.UUID,
	name string,
	street, city, postalCode, country string,
	lockerCounts map[parcel.Size]int,
) (CreateMachineCommand, error) {
	if err := machineID.Validate(); err != nil {
		return CreateMachineCommand{}, errs.NewValueIsRequiredErrorWithCause("machineId", err)
	}
	if name == "" {
		return CreateMachineCommand{}, errs.NewValueIsRequiredError("name")
	}
	fields, err := newAddressFields(street, city, postalCode, country)
	if err != nil {
		return CreateMachineCommand{}, err
	}

	counts := make(map[parcel.Size]int, len(lockerCounts))
	for size, count := range lockerCounts {
		if err = size.Validate(); err != nil {
			return CreateMachineCommand{}, err
		}
		if size == parcel.SizeCustom {
			return CreateMachineCommand{}, errs.NewValueIsInvalidErrorWithCause(
				"lockers", errors.New("lockers do not come in a CUSTOM size"))
		}
		if count < 0 || count > maxLockersPerSize {
			return CreateMachineCommand{}, errs.NewValueIsInvalidErrorWithCause(
				"lockers", fmt.Errorf("%d lockers of size %s is out of range", count, size))
		}
		counts[size] = count
	}

	return CreateMachineCommand{
		machineID:    machineID,
		name:         name,
		fields:       fields,
		lockerCounts: counts,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateMachineCommand) Validate() error {
	return c.guard.Validate(ErrCreateMachineCommandIsNotConstructed)
}

// MachineID returns the identifier the new machine will be stored under.
func (c CreateMachineCommand) MachineID() kernel.UUID { return c.machineID }

// Name returns the machine's display name.
func (c CreateMachineCommand) Name() string { return c.name }

// Street returns the street line of the machine's address.
func (c CreateMachineCommand) Street() string { return c.fields.street }

// City returns the city of the machine's address.
func (c CreateMachineCommand) City() string { return c.fields.city }

// PostalCode returns the postal code of the machine's address.
func (c CreateMachineCommand) PostalCode() string { return c.fields.postalCode }

// Country returns the country of the machine's address.
func (c CreateMachineCommand) Country() string { return c.fields.country }

// LockerCounts returns how many lockers of each size to provision.
func (c CreateMachineCommand) LockerCounts() map[parcel.Size]int { return c.lockerCounts }
