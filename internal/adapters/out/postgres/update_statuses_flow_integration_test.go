package postgres_test

import (
	"context"

	"github.com/kikis202/spot/internal/adapters/out/postgres"
	"github.com/kikis202/spot/internal/core/application/usecases/commands"
	"github.com/kikis202/spot/internal/core/domain/model/address"
	"github.com/kikis202/spot/internal/core/domain/model/kernel"
	"github.com/kikis202/spot/internal/core/domain/model/machine"
	"github.com/kikis202/spot/internal/core/domain/model/parcel"
	"github.com/kikis202/spot/internal/pkg/errs"
	"github.com/kikis202/spot/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
)

// updateStatusesUoWAdapter lets the batch status handler run against the real
// transactional factory instead of mocks.
type updateStatusesUoWAdapter struct {
	factory *postgres.GormUnitOfWorkFactory
}

func (a updateStatusesUoWAdapter) Create() commands.UpdateStatusesUoW {
	return a.factory.Create()
}

func (suite *UnitOfWorkIntegrationTestSuite) newUpdateStatusesHandler() commands.UpdateStatusesCommandHandler {
	return commands.NewUpdateStatusesCommandHandler(
		updateStatusesUoWAdapter{factory: suite.factory},
		metrics.NewMetrics(prometheus.NewRegistry(), "test"),
	)
}

// seedMachineWithLocker persists an address, a machine with one small locker
// at that address, and a small parcel destined for it with a courier assigned.
func (suite *UnitOfWorkIntegrationTestSuite) seedMachineWithLocker() (*parcel.Parcel, *machine.Locker) {
	ctx := context.Background()

	machineAddress, err := address.NewAddress(kernel.NewUUID(), "Depot Rd 7", "Riga", "LV-1004", "Latvia", nil)
	suite.Require().NoError(err)

	machineID := kernel.NewUUID()
	locker, err := machine.NewLocker(kernel.NewUUID(), machineID, parcel.SizeSmall)
	suite.Require().NoError(err)
	pm, err := machine.NewParcelMachine(machineID, "Depot", machineAddress.ID(), []*machine.Locker{locker})
	suite.Require().NoError(err)

	p, err := parcel.NewParcel(
		kernel.NewUUID(),
		kernel.GenerateTrackingNumber(),
		parcel.SizeSmall,
		nil, nil, nil,
		kernel.NewUUID(), machineAddress.ID(),
		kernel.NewUUID(), kernel.NewUUID(),
		kernel.NewUUID(),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(p.AssignCourier(kernel.NewUUID()))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.AddressRepository().Add(ctx, machineAddress))
	suite.Require().NoError(uow.MachineRepository().Add(ctx, pm))
	suite.Require().NoError(uow.ParcelRepository().Add(ctx, p))
	suite.Require().NoError(uow.Commit(ctx))

	return p, locker
}

func (suite *UnitOfWorkIntegrationTestSuite) statusChange(p *parcel.Parcel, status parcel.Status) commands.StatusChange {
	change, err := commands.NewStatusChange(p.ID(), status, "")
	suite.Require().NoError(err)
	return change
}

// applyStatus runs one single-change batch against the handler.
func (suite *UnitOfWorkIntegrationTestSuite) applyStatus(
	handler commands.UpdateStatusesCommandHandler,
	p *parcel.Parcel,
	status parcel.Status,
) error {
	cmd, err := commands.NewUpdateStatusesCommand([]commands.StatusChange{suite.statusChange(p, status)})
	suite.Require().NoError(err)
	return handler.Handle(context.Background(), cmd)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUpdateStatusesFlow_DeliveryThroughLocker() {
	ctx := context.Background()
	p, locker := suite.seedMachineWithLocker()
	handler := suite.newUpdateStatusesHandler()

	suite.Require().NoError(suite.applyStatus(handler, p, parcel.StatusInTransit))
	suite.Require().NoError(suite.applyStatus(handler, p, parcel.StatusOutForDelivery))
	suite.Require().NoError(suite.applyStatus(handler, p, parcel.StatusAwaitingPickup))

	repo := suite.factory.Create().ParcelRepository()
	loaded, err := repo.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(parcel.StatusAwaitingPickup, loaded.Status())
	suite.Require().NotNil(loaded.Locker())
	suite.True(loaded.Locker().IsEqual(locker.ID()))
	suite.Nil(loaded.Courier())

	pm, err := suite.factory.Create().MachineRepository().GetByAddressID(ctx, p.DestinationID())
	suite.Require().NoError(err)
	suite.False(pm.Lockers()[0].IsAvailable())

	// Pickup frees the locker in the same transaction.
	suite.Require().NoError(suite.applyStatus(handler, p, parcel.StatusDelivered))

	loaded, err = repo.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(parcel.StatusDelivered, loaded.Status())
	suite.Nil(loaded.Locker())
	suite.Nil(loaded.Courier())

	pm, err = suite.factory.Create().MachineRepository().GetByAddressID(ctx, p.DestinationID())
	suite.Require().NoError(err)
	suite.True(pm.Lockers()[0].IsAvailable())

	updates, err := repo.GetUpdates(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Len(updates, 4)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUpdateStatusesFlow_HomeAddressDestination_RollsBackBatch() {
	ctx := context.Background()

	moving := suite.newParcel()
	suite.Require().NoError(moving.AssignCourier(kernel.NewUUID()))
	homebound := suite.newParcel()
	suite.Require().NoError(homebound.AssignCourier(kernel.NewUUID()))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ParcelRepository().Add(ctx, moving))
	suite.Require().NoError(uow.ParcelRepository().Add(ctx, homebound))
	suite.Require().NoError(uow.Commit(ctx))

	handler := suite.newUpdateStatusesHandler()
	cmd, err := commands.NewUpdateStatusesCommand([]commands.StatusChange{
		suite.statusChange(moving, parcel.StatusInTransit),
		suite.statusChange(homebound, parcel.StatusAwaitingPickup),
	})
	suite.Require().NoError(err)

	err = handler.Handle(ctx, cmd)
	suite.Require().ErrorIs(err, errs.ErrPreconditionFailed)

	// The valid transition earlier in the batch must roll back with it.
	loaded, err := suite.factory.Create().ParcelRepository().Get(ctx, moving.ID())
	suite.Require().NoError(err)
	suite.Equal(parcel.StatusPending, loaded.Status())

	updates, err := suite.factory.Create().ParcelRepository().GetUpdates(ctx, moving.ID())
	suite.Require().NoError(err)
	suite.Empty(updates)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUpdateStatusesFlow_TerminalParcel_RejectsBatch() {
	ctx := context.Background()
	p, _ := suite.seedMachineWithLocker()
	handler := suite.newUpdateStatusesHandler()

	suite.Require().NoError(suite.applyStatus(handler, p, parcel.StatusInTransit))
	suite.Require().NoError(suite.applyStatus(handler, p, parcel.StatusOutForDelivery))
	suite.Require().NoError(suite.applyStatus(handler, p, parcel.StatusDelivered))

	err := suite.applyStatus(handler, p, parcel.StatusInTransit)
	suite.Require().ErrorIs(err, errs.ErrPreconditionFailed)

	loaded, err := suite.factory.Create().ParcelRepository().Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(parcel.StatusDelivered, loaded.Status())
}
