package queries

import (
	"errors"

	"github.com/kikis202/spot/internal/core/domain/model/account"
	"github.com/kikis202/spot/internal/core/domain/model/kernel"
	"github.com/kikis202/spot/internal/pkg/errs"
	"github.com/kikis202/spot/internal/pkg/guard"
)

var (
	ErrListAddressesQueryIsNotConstructed = errors.New(
		"ListAddressesQuery must be created via NewListAddressesQuery constructor",
	)
)

// AddressScope selects which addresses a listing covers.
type AddressScope int

const (
	// AddressScopeUnknown is the zero value and never valid.
	AddressScopeUnknown AddressScope = iota
	// AddressScopeAll lists every address. Admin only.
	AddressScopeAll
	// AddressScopeMine lists the caller's saved addresses.
	AddressScopeMine
)

// ListAddressesQuery is a paged address listing, scoped either to the
// caller's address book or, for admins, to the whole table.
type ListAddressesQuery struct {
	scope  AddressScope
	caller account.Caller
	page   int
	size   int

	guard guard.ConstructorGuard
}

// NewListAddressesQuery creates an address listing for the given scope.
// Page and size fall back to 1 and 10 when non-positive.
func NewListAddressesQuery(
	scope AddressScope,
	caller account.Caller,
	page, size int,
) (ListAddressesQuery, error) {
	switch scope {
	case AddressScopeAll:
		if !caller.Role.IsAdmin() {
			return ListAddressesQuery{}, errs.NewForbiddenError("listing all addresses requires admin role")
		}
	case AddressScopeMine:
		if err := caller.ID.Validate(); err != nil {
			return ListAddressesQuery{}, err
		}
	default:
		return ListAddressesQuery{}, errs.NewValueIsInvalidError("scope")
	}

	if page < 1 {
		page = defaultPage
	}
	if size < 1 {
		size = defaultSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	return ListAddressesQuery{
		scope:  scope,
		caller: caller,
		page:   page,
		size:   size,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListAddressesQuery) Validate() error {
	return q.guard.Validate(ErrListAddressesQueryIsNotConstructed)
}

// Scope returns the listing scope.
func (q ListAddressesQuery) Scope() AddressScope { return q.scope }

// Caller returns the authenticated caller.
func (q ListAddressesQuery) Caller() account.Caller { return q.caller }

// Page returns the 1-based page number.
func (q ListAddressesQuery) Page() int { return q.page }

// Size returns the page size.
func (q ListAddressesQuery) Size() int { return q.size }

// AddressView is one row of an address listing.
type AddressView struct {
	AddressSummary
	Owner *kernel.UUID
}

// ListAddressesQueryResponse is one page of addresses plus the total count.
type ListAddressesQueryResponse struct {
	Items []AddressView
	Total int64
	Page  int
	Size  int
}
