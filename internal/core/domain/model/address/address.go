// Package address provides the Address entity. Addresses are referenced by
// parcels (origin/destination) and parcel machines; once referenced they are
// immutable and must be replaced instead of edited, so shipment history can
// never change retroactively.
package address

import (
	"errors"

	"github.com/kikis202/spot/internal/core/domain/model/kernel"
	"github.com/kikis202/spot/internal/pkg/errs"
)

// ErrAddressIsNotConstructed is returned when an Address was not created via
// NewAddress or RestoreAddress.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress or RestoreAddress")

// Address is a postal address. It is optionally owned by a user (a saved
// address in their address book) or attached to a parcel machine.
type Address struct {
	id         kernel.UUID
	street     string
	city       string
	postalCode string
	country    string
	userID     *kernel.UUID

	isConstructed bool
}

// NewAddress creates an address. userID is nil for anonymous addresses
// (one-off shipment entries and machine addresses).
func NewAddress(id kernel.UUID, street, city, postalCode, country string, userID *kernel.UUID) (*Address, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if userID != nil {
		if err := userID.Validate(); err != nil {
			return nil, err
		}
	}

	a := &Address{id: id, userID: userID, isConstructed: true}
	if err := errors.Join(
		a.setField(&a.street, street, "street"),
		a.setField(&a.city, city, "city"),
		a.setField(&a.postalCode, postalCode, "postalCode"),
		a.setField(&a.country, country, "country"),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAddress reconstructs an address from persistence.
func RestoreAddress(id kernel.UUID, street, city, postalCode, country string, userID *kernel.UUID) (*Address, error) {
	return NewAddress(id, street, city, postalCode, country, userID)
}

// Validate ensures the Address instance was properly constructed.
func (a *Address) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAddressIsNotConstructed
	}
	return nil
}

// ID returns the address's unique identifier.
func (a *Address) ID() kernel.UUID { return a.id }

// Street returns the street line.
func (a *Address) Street() string { return a.street }

// City returns the city.
func (a *Address) City() string { return a.city }

// PostalCode returns the postal code.
func (a *Address) PostalCode() string { return a.postalCode }

// Country returns the country.
func (a *Address) Country() string { return a.country }

// Owner returns the owning user's ID, nil for anonymous addresses.
func (a *Address) Owner() *kernel.UUID { return a.userID }

// IsOwnedBy reports whether the address belongs to the given user's address book.
func (a *Address) IsOwnedBy(userID kernel.UUID) bool {
	return a.userID != nil && a.userID.IsEqual(userID)
}

// Amend replaces the postal fields of an address that is not referenced
// anywhere. The caller is responsible for the reference-count check; this
// method only validates the new values.
func (a *Address) Amend(street, city, postalCode, country string) error {
	return errors.Join(
		a.setField(&a.street, street, "street"),
		a.setField(&a.city, city, "city"),
		a.setField(&a.postalCode, postalCode, "postalCode"),
		a.setField(&a.country, country, "country"),
	)
}

// Disown detaches the address from its owner's address book without deleting
// it, keeping parcels that reference it intact.
func (a *Address) Disown() {
	a.userID = nil
}

func (a *Address) setField(dst *string, value, paramName string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	*dst = value
	return nil
}
