package commands

import (
	"context"
	"errors"

	"github.com/kikis202/spot/internal/core/domain/model/kernel"
	"github.com/kikis202/spot/internal/core/domain/model/parcel"
	"github.com/kikis202/spot/internal/core/domain/services"
	"github.com/kikis202/spot/internal/pkg/errs"
	"github.com/kikis202/spot/internal/pkg/metrics"
)

// UpdateStatusesCommandHandler applies a batch of status changes in one
// transaction, coordinating parcels with machine lockers.
//
// Entering AWAITING_PICKUP allocates a locker at the machine installed at the
// parcel's destination address; leaving it releases the held locker. A locker
// promised to one parcel earlier in the batch is never offered to a later one,
// and the repository's conditional reservation guards against a concurrent
// batch taking the same locker between read and commit.
type UpdateStatusesCommandHandler struct {
	uowFactory UpdateStatusesUoWFactory
	allocator  services.LockerAllocator
	metrics    *metrics.Metrics
}

// NewUpdateStatusesCommandHandler creates a handler for batch status updates.
func NewUpdateStatusesCommandHandler(uowFactory UpdateStatusesUoWFactory, m *metrics.Metrics) UpdateStatusesCommandHandler {
	return UpdateStatusesCommandHandler{
		uowFactory: uowFactory,
		allocator:  services.NewLockerAllocator(),
		metrics:    m,
	}
}

// Handle processes the batch.
//
// All referenced parcels are loaded up front; a single missing ID fails the
// whole batch with an object-not-found error. Changes then apply in request
// order, and the first failure (terminal parcel, home-address destination for
// AWAITING_PICKUP, full machine, locker race) rolls everything back. One
// audit-trail entry is appended per change.
func (h UpdateStatusesCommandHandler) Handle(ctx context.Context, cmd UpdateStatusesCommand) error {
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

	parcelRepo := uow.ParcelRepository()

	ids := make([]kernel.UUID, 0, len(cmd.Changes()))
	for _, change := range cmd.Changes() {
		ids = append(ids, change.ParcelID())
	}

	parcels, err := parcelRepo.GetMany(ctx, ids)
	if err != nil {
		return err
	}
	byID := make(map[kernel.UUID]*parcel.Parcel, len(parcels))
	for _, p := range parcels {
		byID[p.ID()] = p
	}

	var reserved, released int
	claimed := make(map[kernel.UUID]struct{})

	for _, change := range cmd.Changes() {
		p := byID[change.ParcelID()]

		if change.Status() == parcel.StatusAwaitingPickup {
			if err = h.placeInLocker(ctx, uow, p, claimed); err != nil {
				return err
			}
			reserved++
		} else {
			heldLocker := p.Locker()
			if err = p.ChangeStatus(change.Status()); err != nil {
				return err
			}
			if heldLocker != nil {
				if err = uow.MachineRepository().ReleaseLocker(ctx, *heldLocker); err != nil {
					return err
				}
				released++
			}
		}

		if err = parcelRepo.Update(ctx, p); err != nil {
			return err
		}

		update, updateErr := parcel.NewUpdate(p.ID(), change.Status(), change.Title())
		if updateErr != nil {
			return updateErr
		}
		if err = parcelRepo.AppendUpdate(ctx, update); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, change := range cmd.Changes() {
		h.metrics.StatusTransitions.WithLabelValues(change.Status().String()).Inc()
	}
	h.metrics.LockersReserved.Add(float64(reserved))
	h.metrics.LockersReleased.Add(float64(released))
	return nil
}

// placeInLocker resolves the machine at the parcel's destination, allocates a
// free locker of the parcel's size, and persists the reservation with the
// repository's available-only condition.
func (h UpdateStatusesCommandHandler) placeInLocker(
	ctx context.Context,
	uow UpdateStatusesUoW,
	p *parcel.Parcel,
	claimed map[kernel.UUID]struct{},
) error {
	machineRepo := uow.MachineRepository()

	m, err := machineRepo.GetByAddressID(ctx, p.DestinationID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return errs.NewPreconditionFailedErrorWithCause(
			"destination is not a parcel machine", err)
	}
	if err != nil {
		return err
	}

	locker, err := h.allocator.Allocate(p, m, claimed)
	if errors.Is(err, services.ErrLockerNotFound) {
		return errs.NewPreconditionFailedErrorWithCause(
			"no available locker of required size", err)
	}
	if err != nil {
		return err
	}

	return machineRepo.ReserveLocker(ctx, locker.ID())
}
