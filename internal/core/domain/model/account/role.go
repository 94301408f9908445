package account

import (
	"fmt"

	"github.com/kikis202/spot/internal/pkg/errs"
)

// Role is the single authorization axis of the service. Every request carries
// exactly one role; procedures declare the minimum tier they accept.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleDefault is a freshly registered account with no elevated access.
	RoleDefault

	// RoleUser is a regular customer who sends and tracks parcels.
	RoleUser

	// RoleCourier picks up parcels and updates their statuses.
	RoleCourier

	// RoleBusiness is a business-tier sender account.
	// The persisted name keeps the original data model's "BUISNESS" spelling,
	// existing rows depend on it.
	RoleBusiness

	// RoleSupport handles customer inquiries.
	RoleSupport

	// RoleAdmin manages users and parcel-machine infrastructure.
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "UNKNOWN",
		RoleDefault:  "default",
		RoleUser:     "USER",
		RoleCourier:  "COURIER",
		RoleBusiness: "BUISNESS",
		RoleSupport:  "SUPPORT",
		RoleAdmin:    "ADMIN",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleDefault:  "default",
		RoleUser:     "USER",
		RoleCourier:  "COURIER",
		RoleBusiness: "BUISNESS",
		RoleSupport:  "SUPPORT",
		RoleAdmin:    "ADMIN",
	}
}

// RoleFromString parses the persisted/API representation of a role.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"role", fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is one of the defined roles.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the persisted representation of the role.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsCourier reports whether the role may perform courier operations.
// Admins may do everything couriers can.
func (r Role) IsCourier() bool {
	return r == RoleCourier || r == RoleAdmin
}

// IsAdmin reports whether the role may perform administrative operations.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}
