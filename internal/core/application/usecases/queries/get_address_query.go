package queries

import (
	"errors"

	"github.com/kikis202/spot/internal/core/domain/model/account"
	"github.com/kikis202/spot/internal/core/domain/model/kernel"
	"github.com/kikis202/spot/internal/pkg/guard"
)

var (
	ErrGetAddressQueryIsNotConstructed = errors.New(
		"GetAddressQuery must be created via NewGetAddressQuery constructor",
	)
)

// GetAddressQuery retrieves a single address. Owner-scoped: only the
// owner or an admin may read it.
type GetAddressQuery struct {
	addressID kernel.UUID
	caller    account.Caller

	guard guard.ConstructorGuard
}

// NewGetAddressQuery creates an address lookup for the given caller.
func NewGetAddressQuery(addressID kernel.UUID, caller account.Caller) (GetAddressQuery, error) {
	if err := addressID.Validate(); err != nil {
		return GetAddressQuery{}, err
	}
	if err := caller.ID.Validate(); err != nil {
		return GetAddressQuery{}, err
	}
	return GetAddressQuery{
		addressID: addressID,
		caller:    caller,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAddressQuery) Validate() error {
	return q.guard.Validate(ErrGetAddressQueryIsNotConstructed)
}

// AddressID returns the address being looked up.
func (q GetAddressQuery) AddressID() kernel.UUID { return q.addressID }

// Caller returns the authenticated caller.
func (q GetAddressQuery) Caller() account.Caller { return q.caller }
