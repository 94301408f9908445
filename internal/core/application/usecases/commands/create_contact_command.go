package commands

import (
	"context"
	"errors"

	"github.com/kikis202/spot/internal/core/domain/model/contact"
	"github.com/kikis202/spot/internal/core/domain/model/kernel"
	"github.com/kikis202/spot/internal/pkg/errs"
	"github.com/kikis202/spot/internal/pkg/guard"
)

var ErrCreateContactCommandIsNotConstructed = errors.New(
	"CreateContactCommand must be created via NewCreateContactCommand constructor",
)

// CreateContactCommand represents a request to store a contact info entry.
// Contacts are what parcels carry as sender and receiver details; a user
// creates one for themselves and one for the person receiving the shipment.
type CreateContactCommand struct { //nolint:recvcheck //using for validation
	contactID kernel.UUID
	ownerID   kernel.UUID
	fullName  string
	phone     string
	email     string

	guard guard.ConstructorGuard
}

// NewCreateContactCommand creates a command to store a contact owned by the
// given user. Phone and email are required; the full name may be empty.
func NewCreateContactCommand(contactID, ownerID kernel.UUID, fullName, phone, email string) (CreateContactCommand, error) {
	if err := contactID.Validate(); err != nil {
		return CreateContactCommand{}, errs.NewValueIsRequiredErrorWithCause("contactId", err)
	}
	if err := ownerID.Validate(); err != nil {
		return CreateContactCommand{}, errs.NewValueIsRequiredErrorWithCause("ownerId", err)
	}
	if phone == "" {
		return CreateContactCommand{}, errs.NewValueIsRequiredError("phone")
	}
	if email == "" {
		return CreateContactCommand{}, errs.NewValueIsRequiredError("email")
	}

	return CreateContactCommand{
		contactID: contactID,
		ownerID:   ownerID,
		fullName:  fullName,
		phone:     phone,
		email:     email,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateContactCommand) Validate() error {
	return c.guard.Validate(ErrCreateContactCommandIsNotConstructed)
}

// ContactID returns the identifier the new contact will be stored under.
func (c CreateContactCommand) ContactID() kernel.UUID { return c.contactID }

// OwnerID returns the user whose contact book receives the entry.
func (c CreateContactCommand) OwnerID() kernel.UUID { return c.ownerID }

// FullName returns the contact person's name, possibly empty.
func (c CreateContactCommand) FullName() string { return c.fullName }

// Phone returns the contact phone number.
func (c CreateContactCommand) Phone() string { return c.phone }

// Email returns the contact email address.
func (c CreateContactCommand) Email() string { return c.email }

// CreateContactCommandHandler stores new contact info entries.
type CreateContactCommandHandler struct {
	uowFactory ContactUoWFactory
}

// NewCreateContactCommandHandler creates a handler for contact creation.
func NewCreateContactCommandHandler(uowFactory ContactUoWFactory) CreateContactCommandHandler {
	return CreateContactCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle persists a new contact owned by the requesting user. Phone and email
// shape validation happens in the domain constructor.
func (h CreateContactCommandHandler) Handle(ctx context.Context, cmd CreateContactCommand) error {
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
	entity, err := contact.NewContactInfo(
		cmd.ContactID(), cmd.FullName(), cmd.Phone(), cmd.Email(), &ownerID)
	if err != nil {
		return err
	}

	if err = uow.ContactRepository().Add(ctx, entity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
