package parcel

import (
	"fmt"

	"github.com/kikis202/spot/internal/pkg/errs"
)

// Status represents the lifecycle state of a parcel.
//
// State transitions:
//
//	Pending ──> InTransit ──> OutForDelivery ──┬──> Delivered
//	                 ▲              │          ├──> FailedAttempt
//	                 │              │          └──> AwaitingPickup
//	                 └──────────────┴──(retry/return flows)
//
// Delivered, Cancelled and Returned are terminal: no transition may leave them.
// AwaitingPickup is the one non-terminal state in which a parcel occupies a
// locker; entering it goes through Parcel.PlaceInLocker rather than a plain
// status change so the locker invariant cannot be bypassed.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status of every created parcel,
	// waiting for a courier to pick it up.
	StatusPending

	// StatusInTransit means the parcel is moving between facilities.
	StatusInTransit

	// StatusOutForDelivery means a courier is on the final leg.
	StatusOutForDelivery

	// StatusFailedAttempt records an unsuccessful delivery attempt.
	StatusFailedAttempt

	// StatusAwaitingPickup means the parcel sits in a locker waiting
	// for the customer. The parcel holds a locker reference in this
	// state and only in this state.
	StatusAwaitingPickup

	// StatusDelivered is a terminal state: the parcel reached the receiver.
	StatusDelivered

	// StatusCancelled is a terminal state: the shipment was cancelled.
	StatusCancelled

	// StatusReturned is a terminal state: the parcel went back to the sender.
	StatusReturned
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:        "UNKNOWN",
		StatusPending:        "PENDING",
		StatusInTransit:      "IN_TRANSIT",
		StatusOutForDelivery: "OUT_FOR_DELIVERY",
		StatusFailedAttempt:  "FAILED_ATTEMPT",
		StatusAwaitingPickup: "AWAITING_PICKUP",
		StatusDelivered:      "DELIVERED",
		StatusCancelled:      "CANCELLED",
		StatusReturned:       "RETURNED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:        "PENDING",
		StatusInTransit:      "IN_TRANSIT",
		StatusOutForDelivery: "OUT_FOR_DELIVERY",
		StatusFailedAttempt:  "FAILED_ATTEMPT",
		StatusAwaitingPickup: "AWAITING_PICKUP",
		StatusDelivered:      "DELIVERED",
		StatusCancelled:      "CANCELLED",
		StatusReturned:       "RETURNED",
	}
}

// StatusFromString parses the persisted/API representation of a parcel status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid parcel status", s))
}

// Validate checks if the Status value is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid parcel status", s))
	}
	return nil
}

// String returns the persisted representation of the status.
// Implements fmt.Stringer; safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status permits no further transitions.
// Terminal parcels are retained for audit and never mutated again.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled || s == StatusReturned
}

// TransitionTo validates a transition from the current status to target and
// returns the new status.
//
// Returns a precondition-failed error when the current status is terminal
// (the guard the whole update flow depends on) and a validation error when
// target is not a defined status.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return StatusUnknown, err
	}

	if s.IsTerminal() {
		return StatusUnknown, errs.NewPreconditionFailedErrorWithCause(
			"parcel already in terminal state",
			fmt.Errorf("status is %s", s),
		)
	}

	return target, nil
}
