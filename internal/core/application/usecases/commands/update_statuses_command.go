package commands

import (
	"errors"
	"fmt"

	"github.com/kikis202/spot/internal/core/domain/model/kernel"
	"github.com/kikis202/spot/internal/core/domain/model/parcel"
	"github.com/kikis202/spot/internal/pkg/errs"
	"github.com/kikis202/spot/internal/pkg/guard"
)

var ErrUpdateStatusesCommandIsNotConstructed = errors.New(
	"UpdateStatusesCommand must be created via NewUpdateStatusesCommand constructor",
)

// StatusChange is one entry of a batch status update: which parcel moves to
// which status, and the audit-trail title to record for it.
type StatusChange struct {
	parcelID kernel.UUID
	status   parcel.Status
	title    string
}

// NewStatusChange creates a validated batch entry. When title is empty a
// default of the form "Status changed to IN_TRANSIT" is recorded.
func NewStatusChange(parcelID kernel.UUID, status parcel.Status, title string) (StatusChange, error) {
	if err := parcelID.Validate(); err != nil {
		return StatusChange{}, errs.NewValueIsRequiredErrorWithCause("parcelId", err)
	}
	if err := status.Validate(); err != nil {
		return StatusChange{}, err
	}
	if title == "" {
		title = fmt.Sprintf("Status changed to %s", status)
	}

	return StatusChange{
		parcelID: parcelID,
		status:   status,
		title:    title,
	}, nil
}

// ParcelID returns the parcel this entry targets.
func (s StatusChange) ParcelID() kernel.UUID { return s.parcelID }

// Status returns the target status.
func (s StatusChange) Status() parcel.Status { return s.status }

// Title returns the audit-trail title for this change.
func (s StatusChange) Title() string { return s.title }

// UpdateStatusesCommand represents a batch of parcel status changes performed
// by a courier scanning parcels at a stop. The batch is atomic: every change
// applies or none do.
//
// Example:
//
//	change, _ := NewStatusChange(parcelID, parcel.StatusAwaitingPickup, "")
//	cmd, err := NewUpdateStatusesCommand([]StatusChange{change})
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("status update failed: %w", err)
//	}
type UpdateStatusesCommand struct { //nolint:recvcheck //using for validation
	changes []StatusChange

	guard guard.ConstructorGuard
}

// NewUpdateStatusesCommand creates a batch status update command.
// Requires at least one change, and at most one change per parcel: a second
// AWAITING_PICKUP entry for the same parcel would re-allocate and strand the
// first locker.
func NewUpdateStatusesCommand(changes []StatusChange) (UpdateStatusesCommand, error) {
	if len(changes) == 0 {
		return UpdateStatusesCommand{}, errs.NewValueIsRequiredError("changes")
	}
	seen := make(map[kernel.UUID]struct{}, len(changes))
	for _, change := range changes {
		if err := change.parcelID.Validate(); err != nil {
			return UpdateStatusesCommand{}, errs.NewValueIsRequiredErrorWithCause("parcelId", err)
		}
		if _, ok := seen[change.parcelID]; ok {
			return UpdateStatusesCommand{}, errs.NewValueIsInvalidErrorWithCause("changes",
				fmt.Errorf("parcel %s appears more than once in the batch", change.parcelID))
		}
		seen[change.parcelID] = struct{}{}
	}

	return UpdateStatusesCommand{
		changes: changes,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateStatusesCommand) Validate() error {
	return c.guard.Validate(ErrUpdateStatusesCommandIsNotConstructed)
}

// Changes returns the batch entries in request order.
func (c UpdateStatusesCommand) Changes() []StatusChange { return c.changes }
