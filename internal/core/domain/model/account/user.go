// Package account provides the User entity, the Role enumeration, and the
// Caller value that carries an authenticated identity explicitly through the
// application layer instead of ambient session state.
package account

import (
	"errors"
	"time"

	"github.com/kikis202/spot/internal/core/domain/model/kernel"
	"github.com/kikis202/spot/internal/pkg/errs"
)

var (
	// ErrUserIsNotConstructed is returned when a User was not created via
	// NewUser or RestoreUser.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")

	// ErrCannotChangeOwnRole is returned when an administrator tries to change
	// their own role.
	ErrCannotChangeOwnRole = errors.New("you cannot change your own role")
)

// User is an account known to the identity provider, mirrored here for role
// management and parcel ownership.
type User struct {
	id        kernel.UUID
	email     string
	role      Role
	createdAt time.Time

	isConstructed bool
}

// NewUser creates a user with the default role.
func NewUser(id kernel.UUID, email string) (*User, error) {
	return RestoreUser(id, email, RoleDefault, time.Now().UTC())
}

// RestoreUser reconstructs a user from persistence.
func RestoreUser(id kernel.UUID, email string, role Role, createdAt time.Time) (*User, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return nil, err
	}
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}

	return &User{
		id:            id,
		email:         email,
		role:          role,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID { return u.id }

// Email returns the user's email address.
func (u *User) Email() string { return u.email }

// Role returns the user's current role.
func (u *User) Role() Role { return u.role }

// CreatedAt returns the account creation time.
func (u *User) CreatedAt() time.Time { return u.createdAt }

// ChangeRole sets a new role for the user, acting on behalf of changedBy.
// A user changing their own role is rejected, so an administrator cannot
// accidentally lock themselves out.
func (u *User) ChangeRole(newRole Role, changedBy kernel.UUID) error {
	if err := newRole.Validate(); err != nil {
		return err
	}
	if u.id.IsEqual(changedBy) {
		return errs.NewForbiddenErrorWithCause("role change rejected", ErrCannotChangeOwnRole)
	}

	u.role = newRole
	return nil
}

// Caller is the resolved identity of the request principal: who is acting and
// with which role. It is passed explicitly into commands and queries.
type Caller struct {
	ID   kernel.UUID
	Role Role
}

// NewCaller builds a validated caller identity.
func NewCaller(id kernel.UUID, role Role) (Caller, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return Caller{}, err
	}
	return Caller{ID: id, Role: role}, nil
}
