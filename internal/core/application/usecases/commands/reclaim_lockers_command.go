package commands

import (
	"context"
	"errors"

	"github.com/kikis202/spot/internal/pkg/guard"
	"github.com/kikis202/spot/internal/pkg/metrics"
)

var (
	ErrReclaimLockersCommandIsNotConstructed = errors.New(
		"ReclaimLockersCommand must be created via NewReclaimLockersCommand constructor",
	)
)

// ReclaimLockersCommand triggers one sweep over occupied lockers that no
// awaiting-pickup parcel references. The scheduled reclaim job issues it
// periodically; there is nothing to parameterize.
type ReclaimLockersCommand struct {
	guard guard.ConstructorGuard
}

// NewReclaimLockersCommand creates a reclaim sweep command.
func NewReclaimLockersCommand() ReclaimLockersCommand {
	return ReclaimLockersCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c ReclaimLockersCommand) Validate() error {
	return c.guard.Validate(ErrReclaimLockersCommandIsNotConstructed)
}

// ReclaimLockersCommandHandler frees orphaned lockers in one transaction.
type ReclaimLockersCommandHandler struct {
	uowFactory MachineUoWFactory
	metrics    *metrics.Metrics
}

// NewReclaimLockersCommandHandler creates a handler for reclaim sweeps.
func NewReclaimLockersCommandHandler(
	uowFactory MachineUoWFactory,
	metrics *metrics.Metrics,
) ReclaimLockersCommandHandler {
	return ReclaimLockersCommandHandler{uowFactory: uowFactory, metrics: metrics}
}

// Handle runs one sweep and returns the number of lockers freed.
func (h ReclaimLockersCommandHandler) Handle(ctx context.Context, cmd ReclaimLockersCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	freed, err := uow.MachineRepository().ReleaseOrphanedLockers(ctx)
	if err != nil {
		return 0, err
	}

	if err := uow.Commit(ctx); err != nil {
		return 0, err
	}

	h.metrics.LockersReleased.Add(float64(freed))
	return freed, nil
}
