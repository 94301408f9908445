package parcel

import (
	"errors"
	"time"

	"github.com/kikis202/spot/internal/core/domain/model/kernel"
	"github.com/kikis202/spot/internal/pkg/errs"
)

// ErrUpdateIsNotConstructed is returned when an Update was not created via NewUpdate.
var ErrUpdateIsNotConstructed = errors.New("Update must be created via NewUpdate or RestoreUpdate")

// Update is an append-only audit-trail entry recording a parcel's status at a
// point in time together with a human-readable title. One entry is written for
// parcel creation and one for every status transition. Entries are never
// mutated or deleted and are displayed newest first.
type Update struct {
	id        kernel.UUID
	parcelID  kernel.UUID
	status    Status
	title     string
	createdAt time.Time

	isConstructed bool
}

// NewUpdate creates an audit entry for the given parcel and status.
// The title is required; it is what trackers see on the public timeline.
func NewUpdate(parcelID kernel.UUID, status Status, title string) (*Update, error) {
	if err := parcelID.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if title == "" {
		return nil, errs.NewValueIsRequiredError("title")
	}

	return &Update{
		id:            kernel.NewUUID(),
		parcelID:      parcelID,
		status:        status,
		title:         title,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}, nil
}

// RestoreUpdate reconstructs an audit entry from persistence.
func RestoreUpdate(id, parcelID kernel.UUID, status Status, title string, createdAt time.Time) (*Update, error) {
	if err := errors.Join(id.Validate(), parcelID.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	if title == "" {
		return nil, errs.NewValueIsRequiredError("title")
	}

	return &Update{
		id:            id,
		parcelID:      parcelID,
		status:        status,
		title:         title,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Update instance was properly constructed.
func (u *Update) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUpdateIsNotConstructed
	}
	return nil
}

// ID returns the entry's unique identifier.
func (u *Update) ID() kernel.UUID { return u.id }

// ParcelID returns the parcel this entry belongs to.
func (u *Update) ParcelID() kernel.UUID { return u.parcelID }

// Status returns the parcel status recorded at the time of the update.
func (u *Update) Status() Status { return u.status }

// Title returns the human-readable note of the update.
func (u *Update) Title() string { return u.title }

// CreatedAt returns the time the entry was written.
func (u *Update) CreatedAt() time.Time { return u.createdAt }
