package commands

import (
	"errors"

	"github.com/kikis202/spot/internal/core/domain/model/kernel"
	"github.com/kikis202/spot/internal/core/domain/model/parcel"
	"github.com/kikis202/spot/internal/pkg/errs"
	"github.com/kikis202/spot/internal/pkg/guard"
)

var ErrCreateParcelCommandIsNotConstructed = errors.New(
	"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
)

// CreateParcelCommand represents a request to register a new shipment.
// All address and contact references must point at already stored entities;
// the handler verifies them before the parcel is built.
//
// Example:
//
//	cmd, err := NewCreateParcelCommand(
//	    kernel.NewUUID(), senderID, parcel.SizeMedium,
//	    &weight, nil, nil,
//	    originID, destinationID, senderContactID, receiverContactID,
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid parcel data: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create parcel: %w", err)
//	}
type CreateParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID
	senderID kernel.UUID
	size     parcel.Size

	weight     *float64
	dimensions *string
	notes      *string

	originID          kernel.UUID
	destinationID     kernel.UUID
	senderContactID   kernel.UUID
	receiverContactID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateParcelCommand creates a command to register a new shipment.
// Validates that all identifiers are well-formed, the size is a defined size
// class, and the weight, when given, is positive.
func NewCreateParcelCommand(
	parcelID kernel.UUID,
	senderID kernel.UUID,
	size parcel.Size,
	weight *float64,
	dimensions *string,
	notes *string,
	originID kernel.UUID,
	destinationID kernel.UUID,
	senderContactID kernel.UUID,
	receiverContactID kernel.UUID,
) (CreateParcelCommand, error) {
	cmd := CreateParcelCommand{
		weight:     weight,
		dimensions: dimensions,
		notes:      notes,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setID(&cmd.parcelID, parcelID, "parcelId"),
		cmd.setID(&cmd.senderID, senderID, "senderId"),
		cmd.setSize(size),
		cmd.setWeight(weight),
		cmd.setID(&cmd.originID, originID, "originId"),
		cmd.setID(&cmd.destinationID, destinationID, "destinationId"),
		cmd.setID(&cmd.senderContactID, senderContactID, "senderContactId"),
		cmd.setID(&cmd.receiverContactID, receiverContactID, "receiverContactId"),
	); err != nil {
		return CreateParcelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

// ParcelID returns the identifier the new parcel will be stored under.
func (c CreateParcelCommand) ParcelID() kernel.UUID { return c.parcelID }

// SenderID returns the identity of the user creating the shipment.
func (c CreateParcelCommand) SenderID() kernel.UUID { return c.senderID }

// Size returns the declared size class.
func (c CreateParcelCommand) Size() parcel.Size { return c.size }

// Weight returns the declared weight in kilograms, nil when not provided.
func (c CreateParcelCommand) Weight() *float64 { return c.weight }

// Dimensions returns the free-form dimensions note, nil when not provided.
func (c CreateParcelCommand) Dimensions() *string { return c.dimensions }

// Notes returns the sender's notes, nil when not provided.
func (c CreateParcelCommand) Notes() *string { return c.notes }

// OriginID returns the origin address reference.
func (c CreateParcelCommand) OriginID() kernel.UUID { return c.originID }

// DestinationID returns the destination address reference.
func (c CreateParcelCommand) DestinationID() kernel.UUID { return c.destinationID }

// SenderContactID returns the sender contact reference.
func (c CreateParcelCommand) SenderContactID() kernel.UUID { return c.senderContactID }

// ReceiverContactID returns the receiver contact reference.
func (c CreateParcelCommand) ReceiverContactID() kernel.UUID { return c.receiverContactID }

func (c *CreateParcelCommand) setID(dst *kernel.UUID, id kernel.UUID, paramName string) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(paramName, err)
	}
	*dst = id
	return nil
}

func (c *CreateParcelCommand) setSize(size parcel.Size) error {
	if err := size.Validate(); err != nil {
		return err
	}
	c.size = size
	return nil
}

func (c *CreateParcelCommand) setWeight(weight *float64) error {
	if weight != nil && *weight <= 0 {
		return errs.NewValueIsInvalidError("weight")
	}
	return nil
}
