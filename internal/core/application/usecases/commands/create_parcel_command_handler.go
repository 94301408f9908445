package commands

import (
	"context"

	"github.com/kikis202/spot/internal/core/domain/model/kernel"
	"github.com/kikis202/spot/internal/core/domain/model/parcel"
	"github.com/kikis202/spot/internal/pkg/errs"
	"github.com/kikis202/spot/internal/pkg/metrics"
)

// createdUpdateTitle is the first audit-trail entry of every parcel.
const createdUpdateTitle = "Order created"

// CreateParcelCommandHandler handles the business logic for shipment creation.
// Verifies all address and contact references, issues a tracking number, and
// persists the parcel together with its first audit-trail entry.
type CreateParcelCommandHandler struct {
	uowFactory CreateParcelUoWFactory
	metrics    *metrics.Metrics
}

// NewCreateParcelCommandHandler creates a handler for shipment creation.
func NewCreateParcelCommandHandler(uowFactory CreateParcelUoWFactory, m *metrics.Metrics) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		uowFactory: uowFactory,
		metrics:    m,
	}
}

// Handle processes the parcel creation command and returns the issued
// tracking number.
//
// The referenced origin, destination, and both contacts must already exist;
// a dangling reference fails the whole command with an object-not-found error.
// The parcel starts in PENDING status and the "Order created" entry opens its
// audit trail. A tracking-number collision surfaces from the repository as a
// conflict error.
func (h *CreateParcelCommandHandler) Handle(ctx context.Context, cmd CreateParcelCommand) (kernel.TrackingNumber, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.TrackingNumber{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.TrackingNumber{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := h.checkReferences(ctx, uow, cmd); err != nil {
		return kernel.TrackingNumber{}, err
	}

	newParcel, err := parcel.NewParcel(
		cmd.ParcelID(),
		kernel.GenerateTrackingNumber(),
		cmd.Size(),
		cmd.Weight(),
		cmd.Dimensions(),
		cmd.Notes(),
		cmd.OriginID(),
		cmd.DestinationID(),
		cmd.SenderContactID(),
		cmd.ReceiverContactID(),
		cmd.SenderID(),
	)
	if err != nil {
		return kernel.TrackingNumber{}, err
	}

	parcelRepo := uow.ParcelRepository()
	if err = parcelRepo.Add(ctx, newParcel); err != nil {
		return kernel.TrackingNumber{}, err
	}

	update, err := parcel.NewUpdate(newParcel.ID(), newParcel.Status(), createdUpdateTitle)
	if err != nil {
		return kernel.TrackingNumber{}, err
	}
	if err = parcelRepo.AppendUpdate(ctx, update); err != nil {
		return kernel.TrackingNumber{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.TrackingNumber{}, err
	}

	h.metrics.ParcelsCreated.Inc()
	return newParcel.TrackingNumber(), nil
}

func (h *CreateParcelCommandHandler) checkReferences(ctx context.Context, uow CreateParcelUoW, cmd CreateParcelCommand) error {
	addressRepo := uow.AddressRepository()
	contactRepo := uow.ContactRepository()

	addressRefs := []struct {
		name string
		id   kernel.UUID
	}{
		{"originId", cmd.OriginID()},
		{"destinationId", cmd.DestinationID()},
	}
	for _, ref := range addressRefs {
		if err := checkExists(ctx, addressRepo.Exists, ref.name, ref.id); err != nil {
			return err
		}
	}

	contactRefs := []struct {
		name string
		id   kernel.UUID
	}{
		{"senderContactId", cmd.SenderContactID()},
		{"receiverContactId", cmd.ReceiverContactID()},
	}
	for _, ref := range contactRefs {
		if err := checkExists(ctx, contactRepo.Exists, ref.name, ref.id); err != nil {
			return err
		}
	}

	return nil
}

func checkExists(
	ctx context.Context,
	exists func(context.Context, kernel.UUID) (bool, error),
	paramName string,
	id kernel.UUID,
) error {
	ok, err := exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return errs.NewObjectNotFoundError(paramName, id)
	}
	return nil
}
