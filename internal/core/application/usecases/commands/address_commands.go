package commands

import (
	"errors"

	"github.com/kikis202/spot/internal/core/domain/model/kernel"
	"github.com/kikis202/spot/internal/pkg/errs"
	"github.com/kikis202/spot/internal/pkg/guard"
)

var (
	ErrCreateAddressCommandIsNotConstructed = errors.New(
		"CreateAddressCommand must be created via NewCreateAddressCommand constructor",
	)
	ErrUpdateAddressCommandIsNotConstructed = errors.New(
		"UpdateAddressCommand must be created via NewUpdateAddressCommand constructor",
	)
	ErrRemoveAddressCommandIsNotConstructed = errors.New(
		"RemoveAddressCommand must be created via NewRemoveAddressCommand constructor",
	)
)

// addressFields bundles the postal fields shared by create and update.
type addressFields struct {
	street     string
	city       string
	postalCode string
	country    string
}

func newAddressFields(street, city, postalCode, country string) (addressFields, error) {
	fields := addressFields{}
	if err := errors.Join(
		fields.set(&fields.street, street, "street"),
		fields.set(&fields.city, city, "city"),
		fields.set(&fields.postalCode, postalCode, "postalCode"),
		fields.set(&fields.country, country, "country"),
	); err != nil {
		return addressFields{}, err
	}
	return fields, nil
}

func (f *addressFields) set(dst *string, value, paramName string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	*dst = value
	return nil
}

// CreateAddressCommand represents a request to add an address to the caller's
// address book.
type CreateAddressCommand struct { //nolint:recvcheck //using for validation
	addressID kernel.UUID
	ownerID   kernel.UUID
	fields    addressFields

	guard guard.ConstructorGuard
}

// NewCreateAddressCommand creates a command to store a new address owned by
// the given user. All postal fields are required.
func NewCreateAddressCommand(addressID, ownerID kernel.UUID, street, city, postalCode, country string) (CreateAddressCommand, error) {
	if err := addressID.Validate(); err != nil {
		return CreateAddressCommand{}, errs.NewValueIsRequiredErrorWithCause("addressId", err)
	}
	if err := ownerID.Validate(); err != nil {
		return CreateAddressCommand{}, errs.NewValueIsRequiredErrorWithCause("ownerId", err)
	}
	fields, err := newAddressFields(street, city, postalCode, country)
	if err != nil {
		return CreateAddressCommand{}, err
	}

	return CreateAddressCommand{
		addressID: addressID,
		ownerID:   ownerID,
		fields:    fields,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateAddressCommand) Validate() error {
	return c.guard.Validate(ErrCreateAddressCommandIsNotConstructed)
}

// AddressID returns the identifier the new address will be stored under.
func (c CreateAddressCommand) AddressID() kernel.UUID { return c.addressID }

// OwnerID returns the user whose address book receives the entry.
func (c CreateAddressCommand) OwnerID() kernel.UUID { return c.ownerID }

// Street returns the street line.
func (c CreateAddressCommand) Street() string { return c.fields.street }

// City returns the city.
func (c CreateAddressCommand) City() string { return c.fields.city }

// PostalCode returns the postal code.
func (c CreateAddressCommand) PostalCode() string { return c.fields.postalCode }

// Country returns the country.
func (c CreateAddressCommand) Country() string { return c.fields.country }

// UpdateAddressCommand represents a request to amend an address book entry.
// Only the owner may amend, and only while no parcel or machine references the
// address.
type UpdateAddressCommand struct { //nolint:recvcheck //using for validation
	addressID kernel.UUID
	callerID  kernel.UUID
	fields    addressFields

	guard guard.ConstructorGuard
}

// NewUpdateAddressCommand creates a command to amend an existing address.
func NewUpdateAddressCommand(addressID, callerID kernel.UUID, street, city, postalCode, country string) (UpdateAddressCommand, error) {
	if err := addressID.Validate(); err != nil {
		return UpdateAddressCommand{}, errs.NewValueIsRequiredErrorWithCause("addressId", err)
	}
	if err := callerID.Validate(); err != nil {
		return UpdateAddressCommand{}, errs.NewValueIsRequiredErrorWithCause("callerId", err)
	}
	fields, err := newAddressFields(street, city, postalCode, country)
	if err != nil {
		return UpdateAddressCommand{}, err
	}

	return UpdateAddressCommand{
		addressID: addressID,
		callerID:  callerID,
		fields:    fields,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateAddressCommand) Validate() error {
	return c.guard.Validate(ErrUpdateAddressCommandIsNotConstructed)
}

// AddressID returns the address to amend.
func (c UpdateAddressCommand) AddressID() kernel.UUID { return c.addressID }

// CallerID returns the user requesting the change.
func (c UpdateAddressCommand) CallerID() kernel.UUID { return c.callerID }

// Street returns the new street line.
func (c UpdateAddressCommand) Street() string { return c.fields.street }

// City returns the new city.
func (c UpdateAddressCommand) City() string { return c.fields.city }

// PostalCode returns the new postal code.
func (c UpdateAddressCommand) PostalCode() string { return c.fields.postalCode }

// Country returns the new country.
func (c UpdateAddressCommand) Country() string { return c.fields.country }

// RemoveAddressCommand represents a request to drop an address from the
// caller's address book.
type RemoveAddressCommand struct { //nolint:recvcheck //using for validation
	addressID kernel.UUID
	callerID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveAddressCommand creates a command to remove an address book entry.
func NewRemoveAddressCommand(addressID, callerID kernel.UUID) (RemoveAddressCommand, error) {
	if err := addressID.Validate(); err != nil {
		return RemoveAddressCommand{}, errs.NewValueIsRequiredErrorWithCause("addressId", err)
	}
	if err := callerID.Validate(); err != nil {
		return RemoveAddressCommand{}, errs.NewValueIsRequiredErrorWithCause("callerId", err)
	}

	return RemoveAddressCommand{
		addressID: addressID,
		callerID:  callerID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveAddressCommand) Validate() error {
	return c.guard.Validate(ErrRemoveAddressCommandIsNotConstructed)
}

// AddressID returns the address to remove.
func (c RemoveAddressCommand) AddressID() kernel.UUID { return c.addressID }

// CallerID returns the user requesting the removal.
func (c RemoveAddressCommand) CallerID() kernel.UUID { return c.callerID }
