package commands

import (
	"context"

	"github.com/kikis202/spot/internal/core/domain/model/address"
	"github.com/kikis202/spot/internal/core/domain/model/kernel"
	"github.com/kikis202/spot/internal/core/domain/model/machine"
	"github.com/kikis202/spot/internal/core/domain/model/parcel"
)

// lockerProvisionOrder keeps locker generation deterministic across runs.
var lockerProvisionOrder = []parcel.Size{
	parcel.SizeSmall, parcel.SizeMedium, parcel.SizeLarge, parcel.SizeXLarge,
}

// CreateMachineCommandHandler provisions parcel machines. The machine's
// dedicated address and every locker are written in the same transaction as
// the machine itself.
type CreateMachineCommandHandler struct {
	uowFactory MachineUoWFactory
}

// NewCreateMachineCommandHandler creates a handler for machine provisioning.
func NewCreateMachineCommandHandler(uowFactory MachineUoWFactory) CreateMachineCommandHandler {
	return CreateMachineCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle provisions the machine. The address is stored without an owner; it
// belongs to the machine, not to any user's address book.
func (h CreateMachineCommandHandler) Handle(ctx context.Context, cmd CreateMachineCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	machineAddress, err := address.NewAddress(
		kernel.NewUUID(), cmd.Street(), cmd.City(), cmd.PostalCode(), cmd.Country(), nil)
	if err != nil {
		return err
	}
	if err = uow.AddressRepository().Add(ctx, machineAddress); err != nil {
		return err
	}

	var lockers []*machine.Locker
	for _, size := range lockerProvisionOrder {
		for i := 0; i < cmd.LockerCounts()[size]; i++ {
			locker, lockerErr := machine.NewLocker(kernel.NewUUID(), cmd.MachineID(), size)
			if lockerErr != nil {
				return lockerErr
			}
			lockers = append(lockers, locker)
		}
	}

	m, err := machine.NewParcelMachine(cmd.MachineID(), cmd.Name(), machineAddress.ID(), lockers)
	if err != nil {
		return err
	}
	if err = uow.MachineRepository().Add(ctx, m); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
