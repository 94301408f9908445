package commands

import (
	"context"
	"errors"

	"github.com/kikis202/spot/internal/core/domain/model/account"
	"github.com/kikis202/spot/internal/core/domain/model/kernel"
	"github.com/kikis202/spot/internal/pkg/errs"
	"github.com/kikis202/spot/internal/pkg/guard"
)

var ErrChangeUserRoleCommandIsNotConstructed = errors.New(
	"ChangeUserRoleCommand must be created via NewChangeUserRoleCommand constructor",
)

// ChangeUserRoleCommand represents an administrator's request to change
// another user's role. Administrators cannot change their own role.
type ChangeUserRoleCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	newRole  account.Role
	callerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewChangeUserRoleCommand creates a role change command.
func NewChangeUserRoleCommand(userID kernel.UUID, newRole account.Role, callerID kernel.UUID) (ChangeUserRoleCommand, error) {
	if err := userID.Validate(); err != nil {
		return ChangeUserRoleCommand{}, errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	if err := newRole.Validate(); err != nil {
		return ChangeUserRoleCommand{}, err
	}
	if err := callerID.Validate(); err != nil {
		return ChangeUserRoleCommand{}, errs.NewValueIsRequiredErrorWithCause("callerId", err)
	}

	return ChangeUserRoleCommand{
		userID:   userID,
		newRole:  newRole,
		callerID: callerID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeUserRoleCommand) Validate() error {
	return c.guard.Validate(ErrChangeUserRoleCommandIsNotConstructed)
}

// UserID returns the user whose role changes.
func (c ChangeUserRoleCommand) UserID() kernel.UUID { return c.userID }

// NewRole returns the role to assign.
func (c ChangeUserRoleCommand) NewRole() account.Role { return c.newRole }

// CallerID returns the administrator performing the change.
func (c ChangeUserRoleCommand) CallerID() kernel.UUID { return c.callerID }

// ChangeUserRoleCommandHandler applies role changes to user accounts.
type ChangeUserRoleCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewChangeUserRoleCommandHandler creates a handler for role changes.
func NewChangeUserRoleCommandHandler(uowFactory UserUoWFactory) ChangeUserRoleCommandHandler {
	return ChangeUserRoleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle changes the target user's role. A self-change is rejected by the
// domain entity with a forbidden error.
func (h ChangeUserRoleCommandHandler) Handle(ctx context.Context, cmd ChangeUserRoleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()

	user, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	if err = user.ChangeRole(cmd.NewRole(), cmd.CallerID()); err != nil {
		return err
	}

	if err = userRepo.Update(ctx, user); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
