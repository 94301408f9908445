package commands

import (
	"context"

	"github.com/kikis202/spot/internal/core/domain/model/parcel"
)

// assignedUpdateTitle is the audit-trail entry recorded for every parcel of
// an assignment batch.
const assignedUpdateTitle = "Assigned to courier"

// AssignParcelsCommandHandler handles batch courier assignment.
// Loads every parcel of the batch, assigns the courier to each, and persists
// the changes together with one audit-trail entry per parcel in a single
// transaction.
type AssignParcelsCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewAssignParcelsCommandHandler creates a handler for batch courier assignment.
func NewAssignParcelsCommandHandler(uowFactory ParcelUoWFactory) AssignParcelsCommandHandler {
	return AssignParcelsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command.
//
// The batch fails whole: a missing parcel surfaces as an object-not-found
// error from the repository, a terminal parcel as a precondition-failed error
// from the aggregate, and in either case nothing is committed.
func (h AssignParcelsCommandHandler) Handle(ctx context.Context, cmd AssignParcelsCommand) error {
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

	parcels, err := parcelRepo.GetMany(ctx, cmd.ParcelIDs())
	if err != nil {
		return err
	}

	for _, p := range parcels {
		if err = p.AssignCourier(cmd.CourierID()); err != nil {
			return err
		}
		if err = parcelRepo.Update(ctx, p); err != nil {
			return err
		}

		update, updateErr := parcel.NewUpdate(p.ID(), p.Status(), assignedUpdateTitle)
		if updateErr != nil {
			return updateErr
		}
		if err = parcelRepo.AppendUpdate(ctx, update); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
