// Package contact provides the ContactInfo entity referenced by parcels as
// sender and receiver contact. Like addresses, contact infos become immutable
// once a parcel references them.
package contact

import (
	"errors"
	"regexp"

	"github.com/kikis202/spot/internal/core/domain/model/kernel"
	"github.com/kikis202/spot/internal/pkg/errs"
)

// ErrContactIsNotConstructed is returned when a ContactInfo was not created via
// NewContactInfo or RestoreContactInfo.
var ErrContactIsNotConstructed = errors.New("ContactInfo must be created via NewContactInfo or RestoreContactInfo")

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9 \-()]{5,20}$`)
)

// ContactInfo holds the person-level details attached to a shipment.
// Optionally owned by a user as a saved contact.
type ContactInfo struct {
	id       kernel.UUID
	fullName string
	phone    string
	email    string
	userID   *kernel.UUID

	isConstructed bool
}

// NewContactInfo creates a contact. Phone and email are validated for shape,
// fullName may be empty. userID is nil for one-off shipment contacts.
func NewContactInfo(id kernel.UUID, fullName, phone, email string, userID *kernel.UUID) (*ContactInfo, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if userID != nil {
		if err := userID.Validate(); err != nil {
			return nil, err
		}
	}
	if phone == "" {
		return nil, errs.NewValueIsRequiredError("phone")
	}
	if !phonePattern.MatchString(phone) {
		return nil, errs.NewValueIsInvalidError("phone")
	}
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}
	if !emailPattern.MatchString(email) {
		return nil, errs.NewValueIsInvalidError("email")
	}

	return &ContactInfo{
		id:            id,
		fullName:      fullName,
		phone:         phone,
		email:         email,
		userID:        userID,
		isConstructed: true,
	}, nil
}

// RestoreContactInfo reconstructs a contact from persistence.
func RestoreContactInfo(id kernel.UUID, fullName, phone, email string, userID *kernel.UUID) (*ContactInfo, error) {
	return NewContactInfo(id, fullName, phone, email, userID)
}

// Validate ensures the ContactInfo instance was properly constructed.
func (c *ContactInfo) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrContactIsNotConstructed
	}
	return nil
}

// ID returns the contact's unique identifier.
func (c *ContactInfo) ID() kernel.UUID { return c.id }

// FullName returns the contact person's name, possibly empty.
func (c *ContactInfo) FullName() string { return c.fullName }

// Phone returns the contact phone number.
func (c *ContactInfo) Phone() string { return c.phone }

// Email returns the contact email address.
func (c *ContactInfo) Email() string { return c.email }

// Owner returns the owning user's ID, nil for one-off contacts.
func (c *ContactInfo) Owner() *kernel.UUID { return c.userID }

// IsOwnedBy reports whether the contact belongs to the given user.
func (c *ContactInfo) IsOwnedBy(userID kernel.UUID) bool {
	return c.userID != nil && c.userID.IsEqual(userID)
}
