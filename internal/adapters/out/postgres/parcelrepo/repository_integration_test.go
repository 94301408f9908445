package parcelrepo_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/kikis202/spot/internal/adapters/out/postgres/parcelrepo"
	"github.com/kikis202/spot/internal/core/domain/model/kernel"
	"github.com/kikis202/spot/internal/core/domain/model/parcel"
	"github.com/kikis202/spot/internal/pkg/errs"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ParcelRepositoryIntegrationTestSuite verifies parcel persistence against
// a real PostgreSQL instance, including the tracking number unique
// constraint and the all-or-nothing GetMany contract.
type ParcelRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *parcelrepo.GormParcelRepository
}

func (suite *ParcelRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
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

	// lib/pq is the production driver, so conflict mapping sees *pq.Error here too.
	sqlDB, err := sql.Open("postgres", connStr)
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.New(postgresdriver.Config{Conn: sqlDB}), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&parcelrepo.ParcelDTO{}, &parcelrepo.ParcelUpdateDTO{}))
}

func (suite *ParcelRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ParcelRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE parcels, parcel_updates").Error)
	suite.repository = parcelrepo.NewGormParcelRepository(suite.db)
}

func (suite *ParcelRepositoryIntegrationTestSuite) newParcel() *parcel.Parcel {
	p, err := parcel.NewParcel(
		kernel.NewUUID(),
		kernel.GenerateTrackingNumber(),
		parcel.SizeMedium,
		nil, nil, nil,
		kernel.NewUUID(), kernel.NewUUID(),
		kernel.NewUUID(), kernel.NewUUID(),
		kernel.NewUUID(),
	)
	suite.Require().NoError(err)
	return p
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	p := suite.newParcel()

	suite.Require().NoError(suite.repository.Add(ctx, p))

	loaded, err := suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.True(loaded.IsEqual(p))
	suite.True(loaded.TrackingNumber().IsEqual(p.TrackingNumber()))
	suite.Equal(parcel.StatusPending, loaded.Status())
	suite.Equal(parcel.SizeMedium, loaded.Size())
	suite.Nil(loaded.Courier())
	suite.Nil(loaded.Locker())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestAdd_DuplicateTrackingNumber_ReturnsConflict() {
	ctx := context.Background()
	first := suite.newParcel()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	duplicate, err := parcel.NewParcel(
		kernel.NewUUID(),
		first.TrackingNumber(),
		parcel.SizeSmall,
		nil, nil, nil,
		kernel.NewUUID(), kernel.NewUUID(),
		kernel.NewUUID(), kernel.NewUUID(),
		kernel.NewUUID(),
	)
	suite.Require().NoError(err)

	err = suite.repository.Add(ctx, duplicate)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrConflict)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGet_UnknownID_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGetByTrackingNumber() {
	ctx := context.Background()
	p := suite.newParcel()
	suite.Require().NoError(suite.repository.Add(ctx, p))

	loaded, err := suite.repository.GetByTrackingNumber(ctx, p.TrackingNumber())
	suite.Require().NoError(err)
	suite.True(loaded.IsEqual(p))

	_, err = suite.repository.GetByTrackingNumber(ctx, kernel.GenerateTrackingNumber())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestUpdate_PersistsStatusAndClearedCourier() {
	ctx := context.Background()
	p := suite.newParcel()
	suite.Require().NoError(suite.repository.Add(ctx, p))

	courierID := kernel.NewUUID()
	suite.Require().NoError(p.AssignCourier(courierID))
	suite.Require().NoError(suite.repository.Update(ctx, p))

	loaded, err := suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(loaded.Courier())
	suite.True(loaded.Courier().IsEqual(courierID))

	suite.Require().NoError(p.ChangeStatus(parcel.StatusInTransit))
	suite.Require().NoError(p.ChangeStatus(parcel.StatusOutForDelivery))
	suite.Require().NoError(p.ChangeStatus(parcel.StatusDelivered))
	suite.Require().NoError(suite.repository.Update(ctx, p))

	loaded, err = suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(parcel.StatusDelivered, loaded.Status())
	suite.Nil(loaded.Courier(), "delivery must clear the courier in the database")
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestUpdate_UnknownParcel_ReturnsNotFound() {
	p := suite.newParcel()
	err := suite.repository.Update(context.Background(), p)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGetMany_AllResolved() {
	ctx := context.Background()
	first := suite.newParcel()
	second := suite.newParcel()
	suite.Require().NoError(suite.repository.Add(ctx, first))
	suite.Require().NoError(suite.repository.Add(ctx, second))

	parcels, err := suite.repository.GetMany(ctx, []kernel.UUID{second.ID(), first.ID()})
	suite.Require().NoError(err)
	suite.Require().Len(parcels, 2)
	suite.True(parcels[0].IsEqual(second), "order of the request must be preserved")
	suite.True(parcels[1].IsEqual(first))
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGetMany_OneMissing_FailsWholeBatch() {
	ctx := context.Background()
	existing := suite.newParcel()
	suite.Require().NoError(suite.repository.Add(ctx, existing))

	_, err := suite.repository.GetMany(ctx, []kernel.UUID{existing.ID(), kernel.NewUUID()})
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestUpdates_AppendAndListNewestFirst() {
	ctx := context.Background()
	p := suite.newParcel()
	suite.Require().NoError(suite.repository.Add(ctx, p))

	created, err := parcel.NewUpdate(p.ID(), parcel.StatusPending, "Order created")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.AppendUpdate(ctx, created))

	// Later entry gets a later timestamp.
	time.Sleep(10 * time.Millisecond)
	inTransit, err := parcel.NewUpdate(p.ID(), parcel.StatusInTransit, "Status changed to IN_TRANSIT")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.AppendUpdate(ctx, inTransit))

	updates, err := suite.repository.GetUpdates(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Require().Len(updates, 2)
	suite.Equal(parcel.StatusInTransit, updates[0].Status())
	suite.Equal(parcel.StatusPending, updates[1].Status())
}

func TestParcelRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ParcelRepositoryIntegrationTestSuite))
}
