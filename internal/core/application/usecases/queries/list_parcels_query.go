package queries

import (
	"errors"
	"time"

	"github.com/kikis202/spot/internal/core/domain/model/account"
	"github.com/kikis202/spot/internal/core/domain/model/kernel"
	"github.com/kikis202/spot/internal/core/domain/model/parcel"
	"github.com/kikis202/spot/internal/pkg/errs"
	"github.com/kikis202/spot/internal/pkg/guard"
)

var (
	ErrListParcelsQueryIsNotConstructed = errors.New(
		"ListParcelsQuery must be created via NewListParcelsQuery constructor",
	)
)

const (
	defaultPage = 1
	defaultSize = 10
	maxPageSize = 100
)

// ParcelScope selects which slice of the parcel table a listing covers.
type ParcelScope int

const (
	// ParcelScopeUnknown is the zero value and never valid.
	ParcelScopeUnknown ParcelScope = iota
	// ParcelScopeAll lists every parcel. Admin only.
	ParcelScopeAll
	// ParcelScopeMine lists parcels sent by the caller.
	ParcelScopeMine
	// ParcelScopeAssigned lists parcels assigned to the calling courier.
	ParcelScopeAssigned
	// ParcelScopeAssignable lists pending parcels with no courier.
	// Courier or admin only.
	ParcelScopeAssignable
	// ParcelScopeTracked lists parcels the caller subscribed to.
	ParcelScopeTracked
)

// ParcelFilters narrows a parcel listing. All fields are optional.
// SenderID and CourierID are honoured only for admin callers.
type ParcelFilters struct {
	TrackingNumber *kernel.TrackingNumber
	Status         *parcel.Status
	Size           *parcel.Size
	OriginID       *kernel.UUID
	DestinationID  *kernel.UUID
	SenderID       *kernel.UUID
	CourierID      *kernel.UUID
}

// ListParcelsQuery is a paged, filtered parcel listing. One query type
// serves every scope; the scope decides whose parcels are visible and
// the caller's role decides whether the scope is permitted.
//
// Example:
//
//	query, err := NewListParcelsQuery(ParcelScopeMine, caller, 1, 20, ParcelFilters{})
//	if err != nil {
//	    return err
//	}
//	page, err := handler.Handle(ctx, query)
type ListParcelsQuery struct {
	scope   ParcelScope
	caller  account.Caller
	page    int
	size    int
	filters ParcelFilters

	guard guard.ConstructorGuard
}

// NewListParcelsQuery creates a parcel listing for the given scope.
// Page and size fall back to 1 and 10 when non-positive; size is capped
// at 100. Returns a forbidden error when the caller's role does not
// permit the scope or the admin-only filters.
func NewListParcelsQuery(
	scope ParcelScope,
	caller account.Caller,
	page, size int,
	filters ParcelFilters,
) (ListParcelsQuery, error) {
	switch scope {
	case ParcelScopeAll:
		if !caller.Role.IsAdmin() {
			return ListParcelsQuery{}, errs.NewForbiddenError("listing all parcels requires admin role")
		}
	case ParcelScopeAssigned, ParcelScopeAssignable:
		if !caller.Role.IsCourier() {
			return ListParcelsQuery{}, errs.NewForbiddenError("listing courier parcels requires courier role")
		}
	case ParcelScopeMine, ParcelScopeTracked:
		if err := caller.ID.Validate(); err != nil {
			return ListParcelsQuery{}, err
		}
	default:
		return ListParcelsQuery{}, errs.NewValueIsInvalidError("scope")
	}

	if (filters.SenderID != nil || filters.CourierID != nil) && !caller.Role.IsAdmin() {
		return ListParcelsQuery{}, errs.NewForbiddenError("sender and courier filters require admin role")
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

	return ListParcelsQuery{
		scope:   scope,
		caller:  caller,
		page:    page,
		size:    size,
		filters: filters,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListParcelsQuery) Validate() error {
	return q.guard.Validate(ErrListParcelsQueryIsNotConstructed)
}

// Scope returns the listing scope.
func (q ListParcelsQuery) Scope() ParcelScope { return q.scope }

// Caller returns the authenticated caller.
func (q ListParcelsQuery) Caller() account.Caller { return q.caller }

// Page returns the 1-based page number.
func (q ListParcelsQuery) Page() int { return q.page }

// Size returns the page size.
func (q ListParcelsQuery) Size() int { return q.size }

// Filters returns the optional filters.
func (q ListParcelsQuery) Filters() ParcelFilters { return q.filters }

// ParcelSummary is one row of a parcel listing.
type ParcelSummary struct {
	ID             kernel.UUID
	TrackingNumber kernel.TrackingNumber
	Status         parcel.Status
	Size           parcel.Size
	SenderID       kernel.UUID
	CourierID      *kernel.UUID
	OriginID       kernel.UUID
	DestinationID  kernel.UUID
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ListParcelsQueryResponse is one page of parcels plus the total match count.
type ListParcelsQueryResponse struct {
	Items []ParcelSummary
	Total int64
	Page  int
	Size  int
}
