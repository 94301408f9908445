package queries

import (
	"errors"
	"time"

	"github.com/kikis202/spot/internal/core/domain/model/account"
	"github.com/kikis202/spot/internal/core/domain/model/kernel"
	"github.com/kikis202/spot/internal/pkg/errs"
	"github.com/kikis202/spot/internal/pkg/guard"
)

var (
	ErrListUsersQueryIsNotConstructed = errors.New(
		"ListUsersQuery must be created via NewListUsersQuery constructor",
	)
)

// ListUsersQuery is the paged administrative user listing, filterable by
// an email fragment and by role.
//
// Example:
//
//	fragment := "gmail"
//	query, err := NewListUsersQuery(caller, 1, 25, &fragment, nil)
type ListUsersQuery struct {
	page          int
	size          int
	emailContains *string
	role          *account.Role

	guard guard.ConstructorGuard
}

// NewListUsersQuery creates the user listing. Admin only.
// Page and size fall back to 1 and 10 when non-positive.
func NewListUsersQuery(
	caller account.Caller,
	page, size int,
	emailContains *string,
	role *account.Role,
) (ListUsersQuery, error) {
	if !caller.Role.IsAdmin() {
		return ListUsersQuery{}, errs.NewForbiddenError("listing users requires admin role")
	}
	if role != nil {
		if err := role.Validate(); err != nil {
			return ListUsersQuery{}, err
		}
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
	return ListUsersQuery{
		page:          page,
		size:          size,
		emailContains: emailContains,
		role:          role,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListUsersQuery) Validate() error {
	return q.guard.Validate(ErrListUsersQueryIsNotConstructed)
}

// Page returns the 1-based page number.
func (q ListUsersQuery) Page() int { return q.page }

// Size returns the page size.
func (q ListUsersQuery) Size() int { return q.size }

// EmailContains returns the email fragment filter, or nil.
func (q ListUsersQuery) EmailContains() *string { return q.emailContains }

// Role returns the role filter, or nil.
func (q ListUsersQuery) Role() *account.Role { return q.role }

// UserSummary is one row of the user listing.
type UserSummary struct {
	ID        kernel.UUID
	Email     string
	Role      account.Role
	CreatedAt time.Time
}

// ListUsersQueryResponse is one page of users plus the total match count.
type ListUsersQueryResponse struct {
	Items []UserSummary
	Total int64
	Page  int
	Size  int
}
