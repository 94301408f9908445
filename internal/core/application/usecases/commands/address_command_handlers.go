package commands

import (
	"context"

	"github.com/kikis202/spot/internal/core/domain/model/address"
	"github.com/kikis202/spot/internal/pkg/errs"
)

// CreateAddressCommandHandler stores new address book entries.
type CreateAddressCommandHandler struct {
	uowFactory AddressUoWFactory
}

// NewCreateAddressCommandHandler creates a handler for address creation.
func NewCreateAddressCommandHandler(uowFactory AddressUoWFactory) CreateAddressCommandHandler {
	return CreateAddressCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle persists a new address owned by the requesting user.
func (h CreateAddressCommandHandler) Handle(ctx context.Context, cmd CreateAddressCommand) error {
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

	ownerID := cmd.OwnerID()
	entity, err := address.NewAddress(
		cmd.AddressID(), cmd.Street(), cmd.City(), cmd.PostalCode(), cmd.Country(), &ownerID)
	if err != nil {
		return err
	}

	if err = uow.AddressRepository().Add(ctx, entity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// UpdateAddressCommandHandler amends address book entries.
//
// Addresses referenced by parcels or machines are frozen so shipment history
// stays truthful; amending one is rejected with a precondition-failed error
// and the caller has to store a fresh address instead.
type UpdateAddressCommandHandler struct {
	uowFactory AddressUoWFactory
}

// NewUpdateAddressCommandHandler creates a handler for address amendment.
func NewUpdateAddressCommandHandler(uowFactory AddressUoWFactory) UpdateAddressCommandHandler {
	return UpdateAddressCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle amends an address. Only the owner may amend; a non-owner gets a
// forbidden error without learning whether the address is referenced.
func (h UpdateAddressCommandHandler) Handle(ctx context.Context, cmd UpdateAddressCommand) error {
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

	addressRepo := uow.AddressRepository()

	entity, err := addressRepo.Get(ctx, cmd.AddressID())
	if err != nil {
		return err
	}
	if !entity.IsOwnedBy(cmd.CallerID()) {
		return errs.NewForbiddenError("address belongs to another user")
	}

	refs, err := addressRepo.ReferenceCount(ctx, cmd.AddressID())
	if err != nil {
		return err
	}
	if refs > 0 {
		return errs.NewPreconditionFailedError("address is referenced by parcels or machines")
	}

	if err = entity.Amend(cmd.Street(), cmd.City(), cmd.PostalCode(), cmd.Country()); err != nil {
		return err
	}
	if err = addressRepo.Update(ctx, entity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// RemoveAddressCommandHandler drops address book entries.
type RemoveAddressCommandHandler struct {
	uowFactory AddressUoWFactory
}

// NewRemoveAddressCommandHandler creates a handler for address removal.
func NewRemoveAddressCommandHandler(uowFactory AddressUoWFactory) RemoveAddressCommandHandler {
	return RemoveAddressCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle removes an address from the owner's address book. An unreferenced
// address is deleted outright; a referenced one is only detached from the
// owner, so parcels and machines keep a valid reference.
func (h RemoveAddressCommandHandler) Handle(ctx context.Context, cmd RemoveAddressCommand) error {
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

	addressRepo := uow.AddressRepository()

	entity, err := addressRepo.Get(ctx, cmd.AddressID())
	if err != nil {
		return err
	}
	if !entity.IsOwnedBy(cmd.CallerID()) {
		return errs.NewForbiddenError("address belongs to another user")
	}

	refs, err := addressRepo.ReferenceCount(ctx, cmd.AddressID())
	if err != nil {
		return err
	}

	if refs == 0 {
		if err = addressRepo.Delete(ctx, cmd.AddressID()); err != nil {
			return err
		}
	} else {
		entity.Disown()
		if err = addressRepo.Update(ctx, entity); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
