package commands_test

import (
	"errors"
	"testing"

	"github.com/kikis202/spot/internal/core/application/usecases/commands"
	"github.com/kikis202/spot/internal/core/domain/model/kernel"
	"github.com/kikis202/spot/internal/core/domain/model/parcel"
	"github.com/kikis202/spot/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validCreateParcelCommand(t *testing.T) commands.CreateParcelCommand {
	t.Helper()
	cmd, err := commands.NewCreateParcelCommand(
		kernel.NewUUID(), kernel.NewUUID(), parcel.SizeMedium,
		nil, nil, nil,
		kernel.NewUUID(), kernel.NewUUID(),
		kernel.NewUUID(), kernel.NewUUID(),
	)
	require.NoError(t, err)
	return cmd
}

func TestCreateParcelCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateParcelCommand(t)

	parcelRepo := new(MockParcelRepository)
	addressRepo := new(MockAddressRepository)
	contactRepo := new(MockContactRepository)
	uow := new(MockCreateParcelUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AddressRepository").Return(addressRepo).Once(),
		uow.On("ContactRepository").Return(contactRepo).Once(),
		addressRepo.On("Exists", mock.Anything, cmd.OriginID()).Return(true, nil).Once(),
		addressRepo.On("Exists", mock.Anything, cmd.DestinationID()).Return(true, nil).Once(),
		contactRepo.On("Exists", mock.Anything, cmd.SenderContactID()).Return(true, nil).Once(),
		contactRepo.On("Exists", mock.Anything, cmd.ReceiverContactID()).Return(true, nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Add", mock.Anything, mock.AnythingOfType("*parcel.Parcel")).Return(nil).Once(),
		parcelRepo.On("AppendUpdate", mock.Anything, mock.MatchedBy(func(u *parcel.Update) bool {
			return u.Status() == parcel.StatusPending && u.Title() == "Order created"
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateParcelCommandHandler(factory, newTestMetrics())
	trackingNumber, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NoError(t, trackingNumber.Validate())
	parcelRepo.AssertExpectations(t)
	addressRepo.AssertExpectations(t)
	contactRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateParcelCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateParcelCommand{} // not constructed properly
	factory := new(MockCreateParcelUoWFactory)
	h := commands.NewCreateParcelCommandHandler(factory, newTestMetrics())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateParcelCommandHandler_Handle_MissingAddress(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateParcelCommand(t)

	addressRepo := new(MockAddressRepository)
	contactRepo := new(MockContactRepository)
	uow := new(MockCreateParcelUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AddressRepository").Return(addressRepo).Once(),
		uow.On("ContactRepository").Return(contactRepo).Once(),
		addressRepo.On("Exists", mock.Anything, cmd.OriginID()).Return(false, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateParcelCommandHandler(factory, newTestMetrics())
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	addressRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateParcelCommandHandler_Handle_TrackingNumberConflict(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateParcelCommand(t)

	parcelRepo := new(MockParcelRepository)
	addressRepo := new(MockAddressRepository)
	contactRepo := new(MockContactRepository)
	uow := new(MockCreateParcelUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AddressRepository").Return(addressRepo).Once(),
		uow.On("ContactRepository").Return(contactRepo).Once(),
		addressRepo.On("Exists", mock.Anything, mock.Anything).Return(true, nil).Twice(),
		contactRepo.On("Exists", mock.Anything, mock.Anything).Return(true, nil).Twice(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Add", mock.Anything, mock.AnythingOfType("*parcel.Parcel")).
			Return(errs.NewConflictError("trackingNumber")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateParcelCommandHandler(factory, newTestMetrics())
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrConflict)
	parcelRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateParcelCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateParcelCommand(t)

	uow := new(MockCreateParcelUoW)
	factory := new(MockCreateParcelUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreateParcelCommandHandler(factory, newTestMetrics())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
