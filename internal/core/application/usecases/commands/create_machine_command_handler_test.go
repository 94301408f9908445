package commands_test

import (
	"testing"

	"github.com/kikis202/spot/internal/core/application/usecases/commands"
	"github.com/kikis202/spot/internal/core/domain/model/account"
	"github.com/kikis202/spot/internal/core/domain/model/address"
	"github.com/kikis202/spot/internal/core/domain/model/kernel"
	"github.com/kikis202/spot/internal/core/domain/model/machine"
	"github.com/kikis202/spot/internal/core/domain/model/parcel"
	"github.com/kikis202/spot/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateMachineCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	machineID := kernel.NewUUID()
	cmd, err := commands.NewCreateMachineCommand(
		machineID, "Central Station",
		"Station Sq 1", "Riga", "LV-1050", "Latvia",
		map[parcel.Size]int{
			parcel.SizeSmall:  2,
			parcel.SizeMedium: 1,
		},
	)
	require.NoError(t, err)

	var storedMachine *machine.ParcelMachine
	var storedAddress *address.Address

	addressRepo := new(MockAddressRepository)
	machineRepo := new(MockMachineRepository)
	uow := new(MockMachineUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AddressRepository").Return(addressRepo).Once(),
		addressRepo.On("Add", mock.Anything, mock.AnythingOfType("*address.Address")).
			Run(func(args mock.Arguments) { storedAddress = args.Get(1).(*address.Address) }).
			Return(nil).Once(),
		uow.On("MachineRepository").Return(machineRepo).Once(),
		machineRepo.On("Add", mock.Anything, mock.AnythingOfType("*machine.ParcelMachine")).
			Run(func(args mock.Arguments) { storedMachine = args.Get(1).(*machine.ParcelMachine) }).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMachineUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateMachineCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.NotNil(t, storedAddress)
	assert.Nil(t, storedAddress.Owner(), "machine addresses have no owner")

	require.NotNil(t, storedMachine)
	assert.True(t, storedMachine.ID().IsEqual(machineID))
	assert.True(t, storedMachine.AddressID().IsEqual(storedAddress.ID()))
	assert.Len(t, storedMachine.Lockers(), 3)

	counts := map[parcel.Size]int{}
	for _, l := range storedMachine.Lockers() {
		counts[l.Size()]++
		assert.True(t, l.IsAvailable())
	}
	assert.Equal(t, 2, counts[parcel.SizeSmall])
	assert.Equal(t, 1, counts[parcel.SizeMedium])

	addressRepo.AssertExpectations(t)
	machineRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestNewCreateMachineCommand_Validation(t *testing.T) {
	t.Run("should reject custom locker size", func(t *testing.T) {
		_, err := commands.NewCreateMachineCommand(
			kernel.NewUUID(), "Station", "St 1", "Riga", "LV-1", "Latvia",
			map[parcel.Size]int{parcel.SizeCustom: 1},
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject out-of-range count", func(t *testing.T) {
		_, err := commands.NewCreateMachineCommand(
			kernel.NewUUID(), "Station", "St 1", "Riga", "LV-1", "Latvia",
			map[parcel.Size]int{parcel.SizeSmall: 101},
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should require name", func(t *testing.T) {
		_, err := commands.NewCreateMachineCommand(
			kernel.NewUUID(), "", "St 1", "Riga", "LV-1", "Latvia", nil,
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestChangeUserRoleCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	target := restoredUser(t)
	adminID := kernel.NewUUID()
	cmd, err := commands.NewChangeUserRoleCommand(target.ID(), account.RoleCourier, adminID)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	uow := new(MockUserUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", mock.Anything, target.ID()).Return(target, nil).Once(),
		userRepo.On("Update", mock.Anything, target).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeUserRoleCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, account.RoleCourier, target.Role())
	userRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestChangeUserRoleCommandHandler_Handle_SelfChangeForbidden(t *testing.T) {
	ctx := t.Context()
	target := restoredUser(t)
	cmd, err := commands.NewChangeUserRoleCommand(target.ID(), account.RoleCourier, target.ID())
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	uow := new(MockUserUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", mock.Anything, target.ID()).Return(target, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeUserRoleCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrForbidden)
	uow.AssertExpectations(t)
}
