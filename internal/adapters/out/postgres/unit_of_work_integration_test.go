package postgres_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/kikis202/spot/internal/adapters/out/postgres"
	"github.com/kikis202/spot/internal/adapters/out/postgres/addressrepo"
	"github.com/kikis202/spot/internal/adapters/out/postgres/contactrepo"
	"github.com/kikis202/spot/internal/adapters/out/postgres/machinerepo"
	"github.com/kikis202/spot/internal/adapters/out/postgres/parcelrepo"
	"github.com/kikis202/spot/internal/adapters/out/postgres/subscriptionrepo"
	"github.com/kikis202/spot/internal/adapters/out/postgres/userrepo"
	"github.com/kikis202/spot/internal/core/domain/model/address"
	"github.com/kikis202/spot/internal/core/domain/model/kernel"
	"github.com/kikis202/spot/internal/core/domain/model/machine"
	"github.com/kikis202/spot/internal/core/domain/model/parcel"
	"github.com/kikis202/spot/internal/pkg/errs"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	postgrescontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transactional behavior across
// repositories: a committed unit of work persists everything it touched,
// a rolled back one persists nothing, and conditional locker reservation
// holds up under competing transactions.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgrescontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgrescontainer.Run(ctx,
		"postgres:15-alpine",
		postgrescontainer.WithDatabase("testdb"),
		postgrescontainer.WithUsername("testuser"),
		postgrescontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	sqlDB, err := sql.Open("postgres", connStr)
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.New(postgresdriver.Config{Conn: sqlDB}), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&parcelrepo.ParcelDTO{},
		&parcelrepo.ParcelUpdateDTO{},
		&machinerepo.MachineDTO{},
		&machinerepo.LockerDTO{},
		&addressrepo.AddressDTO{},
		&contactrepo.ContactDTO{},
		&subscriptionrepo.SubscriptionDTO{},
		&userrepo.UserDTO{},
	))

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE parcels, parcel_updates, parcel_machines, lockers, addresses, contacts, subscriptions, users CASCADE",
	).Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) newParcel() *parcel.Parcel {
	p, err := parcel.NewParcel(
		kernel.NewUUID(),
		kernel.GenerateTrackingNumber(),
		parcel.SizeSmall,
		nil, nil, nil,
		kernel.NewUUID(), kernel.NewUUID(),
		kernel.NewUUID(), kernel.NewUUID(),
		kernel.NewUUID(),
	)
	suite.Require().NoError(err)
	return p
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAcrossRepositories() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	entity, err := address.NewAddress(kernel.NewUUID(), "Main St 1", "Riga", "LV-1010", "Latvia", nil)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.AddressRepository().Add(ctx, entity))

	p := suite.newParcel()
	suite.Require().NoError(uow.ParcelRepository().Add(ctx, p))

	suite.Require().NoError(uow.Commit(ctx))

	loaded, err := suite.factory.Create().ParcelRepository().Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.True(loaded.IsEqual(p))

	exists, err := suite.factory.Create().AddressRepository().Exists(ctx, entity.ID())
	suite.Require().NoError(err)
	suite.True(exists)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsEverything() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	p := suite.newParcel()
	suite.Require().NoError(uow.ParcelRepository().Add(ctx, p))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err := suite.factory.Create().ParcelRepository().Get(ctx, p.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitWithoutBegin_Fails() {
	uow := suite.factory.Create()
	suite.Require().ErrorIs(uow.Commit(context.Background()), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestReserveLocker_SecondReservationConflicts() {
	ctx := context.Background()

	machineAddress, err := address.NewAddress(kernel.NewUUID(), "Station Sq 1", "Riga", "LV-1050", "Latvia", nil)
	suite.Require().NoError(err)

	machineID := kernel.NewUUID()
	locker, err := machine.NewLocker(kernel.NewUUID(), machineID, parcel.SizeSmall)
	suite.Require().NoError(err)
	pm, err := machine.NewParcelMachine(machineID, "Central Station", machineAddress.ID(), []*machine.Locker{locker})
	suite.Require().NoError(err)

	setup := suite.factory.Create()
	suite.Require().NoError(setup.Begin(ctx))
	suite.Require().NoError(setup.AddressRepository().Add(ctx, machineAddress))
	suite.Require().NoError(setup.MachineRepository().Add(ctx, pm))
	suite.Require().NoError(setup.Commit(ctx))

	repo := machinerepo.NewGormMachineRepository(suite.db)
	suite.Require().NoError(repo.ReserveLocker(ctx, locker.ID()))

	err = repo.ReserveLocker(ctx, locker.ID())
	suite.Require().ErrorIs(err, errs.ErrConflict)

	// Releasing makes the locker reservable again.
	suite.Require().NoError(repo.ReleaseLocker(ctx, locker.ID()))
	suite.Require().NoError(repo.ReserveLocker(ctx, locker.ID()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestGetByAddressID_HomeAddress_ReturnsNotFound() {
	ctx := context.Background()
	repo := machinerepo.NewGormMachineRepository(suite.db)

	_, err := repo.GetByAddressID(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
