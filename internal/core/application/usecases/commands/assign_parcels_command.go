package commands

import (
	"errors"

	"github.com/kikis202/spot/internal/core/domain/model/kernel"
	"github.com/kikis202/spot/internal/pkg/errs"
	"github.com/kikis202/spot/internal/pkg/guard"
)

var ErrAssignParcelsCommandIsNotConstructed = errors.New(
	"AssignParcelsCommand must be created via NewAssignParcelsCommand constructor",
)

// AssignParcelsCommand represents a request to assign a batch of parcels to
// one courier. The batch is atomic: one missing or terminal parcel rejects the
// whole request.
type AssignParcelsCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	parcelIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignParcelsCommand creates a command to assign parcels to a courier.
// Requires a valid courier ID and at least one well-formed parcel ID.
func NewAssignParcelsCommand(courierID kernel.UUID, parcelIDs []kernel.UUID) (AssignParcelsCommand, error) {
	cmd := AssignParcelsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := courierID.Validate(); err != nil {
		return AssignParcelsCommand{}, errs.NewValueIsRequiredErrorWithCause("courierId", err)
	}
	cmd.courierID = courierID

	if len(parcelIDs) == 0 {
		return AssignParcelsCommand{}, errs.NewValueIsRequiredError("parcelIds")
	}
	for _, id := range parcelIDs {
		if err := id.Validate(); err != nil {
			return AssignParcelsCommand{}, errs.NewValueIsRequiredErrorWithCause("parcelIds", err)
		}
	}
	cmd.parcelIDs = parcelIDs

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignParcelsCommand) Validate() error {
	return c.guard.Validate(ErrAssignParcelsCommandIsNotConstructed)
}

// CourierID returns the courier receiving the batch.
func (c AssignParcelsCommand) CourierID() kernel.UUID { return c.courierID }

// ParcelIDs returns the parcels to assign.
func (c AssignParcelsCommand) ParcelIDs() []kernel.UUID { return c.parcelIDs }
