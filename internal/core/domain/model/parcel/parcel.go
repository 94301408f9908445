package parcel

import (
	"errors"
	"time"

	"github.com/kikis202/spot/internal/core/domain/model/kernel"
	"github.com/kikis202/spot/internal/pkg/errs"
)

var (
	// ErrParcelIsNotConstructed is returned when a Parcel instance was not created
	// through NewParcel or RestoreParcel. This ensures all parcels are properly validated.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel or RestoreParcel")

	// ErrLockerRequiresAwaitingPickup is returned when a parcel holds a locker
	// reference outside the AwaitingPickup status.
	ErrLockerRequiresAwaitingPickup = errors.New("parcel may hold a locker only while awaiting pickup")
)

// Parcel is the aggregate root of a shipment. It owns the parcel's lifecycle
// from creation (Pending) through courier handling to a terminal state, and it
// is the single place the locker invariant is enforced:
//
//	lockerID != nil  <=>  status == StatusAwaitingPickup
//
// Terminal parcels (Delivered, Cancelled, Returned) are never hard-deleted;
// they stay behind for the audit trail.
//
// Parcels can only be created through NewParcel (fresh shipments) or
// RestoreParcel (reconstruction from persistence).
type Parcel struct {
	id             kernel.UUID
	trackingNumber kernel.TrackingNumber
	status         Status
	size           Size

	weight     *float64
	dimensions *string
	notes      *string

	originID          kernel.UUID
	destinationID     kernel.UUID
	senderContactID   kernel.UUID
	receiverContactID kernel.UUID

	senderID  kernel.UUID
	courierID *kernel.UUID
	lockerID  *kernel.UUID

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewParcel creates a fresh parcel in Pending status with a newly issued
// tracking number. All referenced addresses and contacts must be resolved by
// the caller before construction; the aggregate only validates that the
// references themselves are well-formed.
func NewParcel(
	id kernel.UUID,
	trackingNumber kernel.TrackingNumber,
	size Size,
	weight *float64,
	dimensions *string,
	notes *string,
	originID kernel.UUID,
	destinationID kernel.UUID,
	senderContactID kernel.UUID,
	receiverContactID kernel.UUID,
	senderID kernel.UUID,
) (*Parcel, error) {
	now := time.Now().UTC()
	p := &Parcel{
		status:        StatusPending,
		weight:        weight,
		dimensions:    dimensions,
		notes:         notes,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setTrackingNumber(trackingNumber),
		p.setSize(size),
		p.setRef(&p.originID, originID, "originId"),
		p.setRef(&p.destinationID, destinationID, "destinationId"),
		p.setRef(&p.senderContactID, senderContactID, "senderContactId"),
		p.setRef(&p.receiverContactID, receiverContactID, "receiverContactId"),
		p.setRef(&p.senderID, senderID, "senderId"),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreParcel reconstructs a parcel from persistence without re-running
// creation rules, but still verifying structural invariants, notably that a
// locker reference only appears together with AwaitingPickup.
func RestoreParcel(
	id kernel.UUID,
	trackingNumber kernel.TrackingNumber,
	status Status,
	size Size,
	weight *float64,
	dimensions *string,
	notes *string,
	originID kernel.UUID,
	destinationID kernel.UUID,
	senderContactID kernel.UUID,
	receiverContactID kernel.UUID,
	senderID kernel.UUID,
	courierID *kernel.UUID,
	lockerID *kernel.UUID,
	createdAt time.Time,
	updatedAt time.Time,
) (*Parcel, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if lockerID != nil && status != StatusAwaitingPickup {
		return nil, ErrLockerRequiresAwaitingPickup
	}

	p := &Parcel{
		status:        status,
		weight:        weight,
		dimensions:    dimensions,
		notes:         notes,
		courierID:     courierID,
		lockerID:      lockerID,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setTrackingNumber(trackingNumber),
		p.setSize(size),
		p.setRef(&p.originID, originID, "originId"),
		p.setRef(&p.destinationID, destinationID, "destinationId"),
		p.setRef(&p.senderContactID, senderContactID, "senderContactId"),
		p.setRef(&p.receiverContactID, receiverContactID, "receiverContactId"),
		p.setRef(&p.senderID, senderID, "senderId"),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Parcel instance was properly constructed.
func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}
	return nil
}

// IsEqual compares two parcels by their unique identifiers.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the parcel's unique identifier.
func (p *Parcel) ID() kernel.UUID { return p.id }

// TrackingNumber returns the public tracking number. Immutable once assigned.
func (p *Parcel) TrackingNumber() kernel.TrackingNumber { return p.trackingNumber }

// Status returns the current lifecycle status.
func (p *Parcel) Status() Status { return p.status }

// Size returns the declared size class.
func (p *Parcel) Size() Size { return p.size }

// Weight returns the declared weight in kilograms, nil when not provided.
func (p *Parcel) Weight() *float64 { return p.weight }

// Dimensions returns the free-form dimensions note, nil when not provided.
func (p *Parcel) Dimensions() *string { return p.dimensions }

// Notes returns the sender's notes, nil when not provided.
func (p *Parcel) Notes() *string { return p.notes }

// OriginID returns the origin address reference.
func (p *Parcel) OriginID() kernel.UUID { return p.originID }

// DestinationID returns the destination address reference.
func (p *Parcel) DestinationID() kernel.UUID { return p.destinationID }

// SenderContactID returns the sender contact reference.
func (p *Parcel) SenderContactID() kernel.UUID { return p.senderContactID }

// ReceiverContactID returns the receiver contact reference.
func (p *Parcel) ReceiverContactID() kernel.UUID { return p.receiverContactID }

// SenderID returns the identity of the user who created the shipment.
func (p *Parcel) SenderID() kernel.UUID { return p.senderID }

// Courier returns the assigned courier's ID, nil when unassigned.
func (p *Parcel) Courier() *kernel.UUID { return p.courierID }

// Locker returns the occupied locker's ID, nil unless the parcel is awaiting pickup.
func (p *Parcel) Locker() *kernel.UUID { return p.lockerID }

// CreatedAt returns the creation timestamp.
func (p *Parcel) CreatedAt() time.Time { return p.createdAt }

// UpdatedAt returns the last modification timestamp.
func (p *Parcel) UpdatedAt() time.Time { return p.updatedAt }

// AssignCourier assigns the parcel to a courier. Assignment does not change
// the parcel's status; re-assignment to a different courier is allowed as long
// as the parcel has not reached a terminal state.
func (p *Parcel) AssignCourier(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if p.status.IsTerminal() {
		return errs.NewPreconditionFailedErrorWithCause(
			"parcel already in terminal state",
			errors.New("cannot assign a courier to a "+p.status.String()+" parcel"),
		)
	}

	p.courierID = &courierID
	p.touch()
	return nil
}

// ChangeStatus transitions the parcel to target, enforcing the terminal-state
// guard. Entering AwaitingPickup is rejected here; that transition must go
// through PlaceInLocker so a locker is always attached.
//
// Leaving AwaitingPickup drops the locker reference (the caller releases the
// locker row itself); reaching Delivered additionally clears the courier.
func (p *Parcel) ChangeStatus(target Status) error {
	if target == StatusAwaitingPickup {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", errors.New("awaiting-pickup transitions must supply a locker"))
	}

	newStatus, err := p.status.TransitionTo(target)
	if err != nil {
		return err
	}

	p.status = newStatus
	p.lockerID = nil
	if target == StatusDelivered {
		p.courierID = nil
	}
	p.touch()
	return nil
}

// PlaceInLocker transitions the parcel to AwaitingPickup and records the
// occupied locker. The courier hand-off ends here, so the courier reference is
// cleared. Size matching against the locker is the allocator's responsibility;
// the aggregate only refuses lockers for custom-sized parcels.
func (p *Parcel) PlaceInLocker(lockerID kernel.UUID) error {
	if err := lockerID.Validate(); err != nil {
		return err
	}
	if p.size == SizeCustom {
		return errs.NewPreconditionFailedError("custom-sized parcels cannot be placed in a locker")
	}

	newStatus, err := p.status.TransitionTo(StatusAwaitingPickup)
	if err != nil {
		return err
	}

	p.status = newStatus
	p.lockerID = &lockerID
	p.courierID = nil
	p.touch()
	return nil
}

func (p *Parcel) touch() {
	p.updatedAt = time.Now().UTC()
}

func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Parcel) setTrackingNumber(tn kernel.TrackingNumber) error {
	if err := tn.Validate(); err != nil {
		return err
	}
	p.trackingNumber = tn
	return nil
}

func (p *Parcel) setSize(size Size) error {
	if err := size.Validate(); err != nil {
		return err
	}
	p.size = size
	return nil
}

func (p *Parcel) setRef(dst *kernel.UUID, id kernel.UUID, paramName string) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(paramName, err)
	}
	*dst = id
	return nil
}
