package commands

import (
	"errors"

	"github.com/kikis202/spot/internal/core/domain/model/kernel"
	"github.com/kikis202/spot/internal/pkg/errs"
	"github.com/kikis202/spot/internal/pkg/guard"
)

var (
	ErrTrackParcelCommandIsNotConstructed = errors.New(
		"TrackParcelCommand must be created via NewTrackParcelCommand constructor",
	)
	ErrStopTrackingCommandIsNotConstructed = errors.New(
		"StopTrackingCommand must be created via NewStopTrackingCommand constructor",
	)
)

// TrackParcelCommand represents a user's request to follow a parcel's status
// updates. Parcels are identified by their public tracking number, which is
// what the receiver gets handed.
type TrackParcelCommand struct { //nolint:recvcheck //using for validation
	userID         kernel.UUID
	trackingNumber kernel.TrackingNumber

	guard guard.ConstructorGuard
}

// NewTrackParcelCommand creates a command to subscribe a user to a parcel.
func NewTrackParcelCommand(userID kernel.UUID, trackingNumber kernel.TrackingNumber) (TrackParcelCommand, error) {
	if err := userID.Validate(); err != nil {
		return TrackParcelCommand{}, errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	if err := trackingNumber.Validate(); err != nil {
		return TrackParcelCommand{}, err
	}

	return TrackParcelCommand{
		userID:         userID,
		trackingNumber: trackingNumber,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c TrackParcelCommand) Validate() error {
	return c.guard.Validate(ErrTrackParcelCommandIsNotConstructed)
}

// UserID returns the subscribing user.
func (c TrackParcelCommand) UserID() kernel.UUID { return c.userID }

// TrackingNumber returns the tracked parcel's public tracking number.
func (c TrackParcelCommand) TrackingNumber() kernel.TrackingNumber { return c.trackingNumber }

// StopTrackingCommand represents a user's request to stop following a parcel.
type StopTrackingCommand struct { //nolint:recvcheck //using for validation
	userID         kernel.UUID
	trackingNumber kernel.TrackingNumber

	guard guard.ConstructorGuard
}

// NewStopTrackingCommand creates a command to remove a tracking subscription.
func NewStopTrackingCommand(userID kernel.UUID, trackingNumber kernel.TrackingNumber) (StopTrackingCommand, error) {
	if err := userID.Validate(); err != nil {
		return StopTrackingCommand{}, errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	if err := trackingNumber.Validate(); err != nil {
		return StopTrackingCommand{}, err
	}

	return StopTrackingCommand{
		userID:         userID,
		trackingNumber: trackingNumber,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c StopTrackingCommand) Validate() error {
	return c.guard.Validate(ErrStopTrackingCommandIsNotConstructed)
}

// UserID returns the unsubscribing user.
func (c StopTrackingCommand) UserID() kernel.UUID { return c.userID }

// TrackingNumber returns the parcel's public tracking number.
func (c StopTrackingCommand) TrackingNumber() kernel.TrackingNumber { return c.trackingNumber }
