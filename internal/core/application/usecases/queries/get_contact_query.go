package queries

import (
	"errors"

	"github.com/kikis202/spot/internal/core/domain/model/account"
	"github.com/kikis202/spot/internal/core/domain/model/kernel"
	"github.com/kikis202/spot/internal/pkg/guard"
)

var (
	ErrGetContactQueryIsNotConstructed = errors.New(
		"GetContactQuery must be created via NewGetContactQuery constructor",
	)
)

// GetContactQuery retrieves a single contact card. Owner-scoped: only
// the owner or an admin may read it.
type GetContactQuery struct {
	contactID kernel.UUID
	caller    account.Caller

	guard guard.ConstructorGuard
}

// NewGetContactQuery creates a contact lookup for the given caller.
func NewGetContactQuery(contactID kernel.UUID, caller account.Caller) (GetContactQuery, error) {
	if err := contactID.Validate(); err != nil {
		return GetContactQuery{}, err
	}
	if err := caller.ID.Validate(); err != nil {
		return GetContactQuery{}, err
	}
	return GetContactQuery{
		contactID: contactID,
		caller:    caller,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetContactQuery) Validate() error {
	return q.guard.Validate(ErrGetContactQueryIsNotConstructed)
}

// ContactID returns the contact being looked up.
func (q GetContactQuery) ContactID() kernel.UUID { return q.contactID }

// Caller returns the authenticated caller.
func (q GetContactQuery) Caller() account.Caller { return q.caller }

// GetContactQueryResponse is the contact card read model.
type GetContactQueryResponse struct {
	ID       kernel.UUID
	FullName string
	Phone    string
	Email    string
	Owner    *kernel.UUID
}
