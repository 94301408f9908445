package queries

import (
	"errors"

	"github.com/kikis202/spot/internal/core/domain/model/account"
	"github.com/kikis202/spot/internal/core/domain/model/kernel"
	"github.com/kikis202/spot/internal/core/domain/model/parcel"
	"github.com/kikis202/spot/internal/pkg/errs"
	"github.com/kikis202/spot/internal/pkg/guard"
)

var (
	ErrListMachinesQueryIsNotConstructed = errors.New(
		"ListMachinesQuery must be created via NewListMachinesQuery constructor",
	)
	ErrListMachinesAdminQueryIsNotConstructed = errors.New(
		"ListMachinesAdminQuery must be created via NewListMachinesAdminQuery constructor",
	)
)

// ListMachinesQuery retrieves the public parcel machine directory.
// This is a parameterless query returning every machine with its address,
// sorted by name, so senders can pick a drop-off point.
type ListMachinesQuery struct {
	guard guard.ConstructorGuard
}

// NewListMachinesQuery creates a query for the public machine directory.
func NewListMachinesQuery() ListMachinesQuery {
	return ListMachinesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListMachinesQuery) Validate() error {
	return q.guard.Validate(ErrListMachinesQueryIsNotConstructed)
}

// MachineSummary is one machine of the public directory.
type MachineSummary struct {
	ID      kernel.UUID
	Name    string
	Address AddressSummary
}

// ListMachinesAdminQuery is the paged administrative machine listing,
// including each machine's lockers and their occupancy.
type ListMachinesAdminQuery struct {
	page int
	size int

	guard guard.ConstructorGuard
}

// NewListMachinesAdminQuery creates the admin machine listing.
// Page and size fall back to 1 and 10 when non-positive.
func NewListMachinesAdminQuery(caller account.Caller, page, size int) (ListMachinesAdminQuery, error) {
	if !caller.Role.IsAdmin() {
		return ListMachinesAdminQuery{}, errs.NewForbiddenError("machine administration requires admin role")
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
	return ListMachinesAdminQuery{page: page, size: size, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListMachinesAdminQuery) Validate() error {
	return q.guard.Validate(ErrListMachinesAdminQueryIsNotConstructed)
}

// Page returns the 1-based page number.
func (q ListMachinesAdminQuery) Page() int { return q.page }

// Size returns the page size.
func (q ListMachinesAdminQuery) Size() int { return q.size }

// LockerSummary is one locker of the admin machine view.
type LockerSummary struct {
	ID        kernel.UUID
	Size      parcel.Size
	Available bool
}

// MachineAdminView is one machine of the admin listing.
type MachineAdminView struct {
	ID      kernel.UUID
	Name    string
	Address AddressSummary
	Lockers []LockerSummary
}

// ListMachinesAdminQueryResponse is one page of machines plus the total count.
type ListMachinesAdminQueryResponse struct {
	Items []MachineAdminView
	Total int64
	Page  int
	Size  int
}
