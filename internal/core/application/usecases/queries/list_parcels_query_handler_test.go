package queries_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/kikis202/spot/internal/adapters/out/postgres/addressrepo"
	"github.com/kikis202/spot/internal/adapters/out/postgres/parcelrepo"
	"github.com/kikis202/spot/internal/adapters/out/postgres/subscriptionrepo"
	"github.com/kikis202/spot/internal/core/application/usecases/queries"
	"github.com/kikis202/spot/internal/core/domain/model/account"
	"github.com/kikis202/spot/internal/core/domain/model/address"
	"github.com/kikis202/spot/internal/core/domain/model/kernel"
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

// ParcelQueriesTestSuite exercises the parcel read models against a real
// PostgreSQL instance: scoped listings with pagination and the public
// tracking number lookup with its per-caller flags.
type ParcelQueriesTestSuite struct {
	suite.Suite
	container        *postgrescontainer.PostgresContainer
	db               *gorm.DB
	listHandler      queries.ListParcelsQueryHandler
	getHandler       queries.GetParcelQueryHandler
	parcelRepo       *parcelrepo.GormParcelRepository
	addressRepo      *addressrepo.GormAddressRepository
	subscriptionRepo *subscriptionrepo.GormSubscriptionRepository

	admin   account.Caller
	sender  account.Caller
	courier account.Caller
}

func (suite *ParcelQueriesTestSuite) SetupSuite() {
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
		&addressrepo.AddressDTO{},
		&subscriptionrepo.SubscriptionDTO{},
	))

	suite.listHandler = queries.NewListParcelsQueryHandler(db)
	suite.getHandler = queries.NewGetParcelQueryHandler(db)
	suite.parcelRepo = parcelrepo.NewGormParcelRepository(db)
	suite.addressRepo = addressrepo.NewGormAddressRepository(db)
	suite.subscriptionRepo = subscriptionrepo.NewGormSubscriptionRepository(db)

	suite.admin, err = account.NewCaller(kernel.NewUUID(), account.RoleAdmin)
	suite.Require().NoError(err)
	suite.sender, err = account.NewCaller(kernel.NewUUID(), account.RoleUser)
	suite.Require().NoError(err)
	suite.courier, err = account.NewCaller(kernel.NewUUID(), account.RoleCourier)
	suite.Require().NoError(err)
}

func (suite *ParcelQueriesTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ParcelQueriesTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE parcels, parcel_updates, addresses, subscriptions CASCADE",
	).Error)
}

func (suite *ParcelQueriesTestSuite) seedAddress() *address.Address {
	entity, err := address.NewAddress(
		kernel.NewUUID(), "Main St 1", "Riga", "LV-1010", "Latvia", nil)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.addressRepo.Add(context.Background(), entity))
	return entity
}

func (suite *ParcelQueriesTestSuite) seedParcel(senderID kernel.UUID, size parcel.Size, destinationID kernel.UUID) *parcel.Parcel {
	p, err := parcel.NewParcel(
		kernel.NewUUID(),
		kernel.GenerateTrackingNumber(),
		size,
		nil, nil, nil,
		kernel.NewUUID(), destinationID,
		kernel.NewUUID(), kernel.NewUUID(),
		senderID,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.parcelRepo.Add(context.Background(), p))
	return p
}

func (suite *ParcelQueriesTestSuite) TestListParcels_ScopeMine_OnlySendersParcels() {
	ctx := context.Background()
	destination := suite.seedAddress()

	mine := suite.seedParcel(suite.sender.ID, parcel.SizeSmall, destination.ID())
	suite.seedParcel(kernel.NewUUID(), parcel.SizeSmall, destination.ID())

	query, err := queries.NewListParcelsQuery(
		queries.ParcelScopeMine, suite.sender, 0, 0, queries.ParcelFilters{})
	suite.Require().NoError(err)

	result, err := suite.listHandler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal(int64(1), result.Total)
	suite.Equal(1, result.Page)
	suite.Equal(10, result.Size, "page size must default to 10")
	suite.Require().Len(result.Items, 1)
	suite.True(result.Items[0].ID.IsEqual(mine.ID()))
}

func (suite *ParcelQueriesTestSuite) TestListParcels_ScopeAssignable_PendingUnassignedOnly() {
	ctx := context.Background()
	destination := suite.seedAddress()

	assignable := suite.seedParcel(kernel.NewUUID(), parcel.SizeSmall, destination.ID())

	assigned := suite.seedParcel(kernel.NewUUID(), parcel.SizeSmall, destination.ID())
	suite.Require().NoError(assigned.AssignCourier(suite.courier.ID))
	suite.Require().NoError(suite.parcelRepo.Update(ctx, assigned))

	cancelled := suite.seedParcel(kernel.NewUUID(), parcel.SizeSmall, destination.ID())
	suite.Require().NoError(cancelled.ChangeStatus(parcel.StatusCancelled))
	suite.Require().NoError(suite.parcelRepo.Update(ctx, cancelled))

	query, err := queries.NewListParcelsQuery(
		queries.ParcelScopeAssignable, suite.courier, 1, 10, queries.ParcelFilters{})
	suite.Require().NoError(err)

	result, err := suite.listHandler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(result.Items, 1)
	suite.True(result.Items[0].ID.IsEqual(assignable.ID()))
}

func (suite *ParcelQueriesTestSuite) TestListParcels_ScopeTracked_JoinsSubscriptions() {
	ctx := context.Background()
	destination := suite.seedAddress()

	tracked := suite.seedParcel(kernel.NewUUID(), parcel.SizeSmall, destination.ID())
	suite.seedParcel(kernel.NewUUID(), parcel.SizeSmall, destination.ID())

	subscription, err := parcel.NewSubscription(suite.sender.ID, tracked.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.subscriptionRepo.Add(ctx, subscription))

	query, err := queries.NewListParcelsQuery(
		queries.ParcelScopeTracked, suite.sender, 1, 10, queries.ParcelFilters{})
	suite.Require().NoError(err)

	result, err := suite.listHandler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(result.Items, 1)
	suite.True(result.Items[0].ID.IsEqual(tracked.ID()))
}

func (suite *ParcelQueriesTestSuite) TestListParcels_AdminFiltersAndPagination() {
	ctx := context.Background()
	destination := suite.seedAddress()

	for range 12 {
		suite.seedParcel(kernel.NewUUID(), parcel.SizeSmall, destination.ID())
	}
	large := suite.seedParcel(kernel.NewUUID(), parcel.SizeLarge, destination.ID())

	sizeFilter := parcel.SizeLarge
	query, err := queries.NewListParcelsQuery(
		queries.ParcelScopeAll, suite.admin, 1, 10,
		queries.ParcelFilters{Size: &sizeFilter})
	suite.Require().NoError(err)

	result, err := suite.listHandler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal(int64(1), result.Total)
	suite.Require().Len(result.Items, 1)
	suite.True(result.Items[0].ID.IsEqual(large.ID()))

	// Second page of the unfiltered listing holds the remainder.
	query, err = queries.NewListParcelsQuery(
		queries.ParcelScopeAll, suite.admin, 2, 10, queries.ParcelFilters{})
	suite.Require().NoError(err)

	result, err = suite.listHandler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal(int64(13), result.Total)
	suite.Len(result.Items, 3)
}

func (suite *ParcelQueriesTestSuite) TestListParcels_ScopeAll_RequiresAdmin() {
	_, err := queries.NewListParcelsQuery(
		queries.ParcelScopeAll, suite.sender, 1, 10, queries.ParcelFilters{})
	suite.Require().ErrorIs(err, errs.ErrForbidden)
}

func (suite *ParcelQueriesTestSuite) TestGetParcel_AnonymousCaller() {
	ctx := context.Background()
	destination := suite.seedAddress()
	p := suite.seedParcel(suite.sender.ID, parcel.SizeMedium, destination.ID())

	created, err := parcel.NewUpdate(p.ID(), parcel.StatusPending, "Order created")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.parcelRepo.AppendUpdate(ctx, created))

	query, err := queries.NewGetParcelQuery(p.TrackingNumber(), nil)
	suite.Require().NoError(err)

	view, err := suite.getHandler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.True(view.ID.IsEqual(p.ID()))
	suite.Equal(parcel.StatusPending, view.Status)
	suite.Equal("Riga", view.Destination.City)
	suite.Require().Len(view.Updates, 1)
	suite.Nil(view.IsSender, "anonymous callers get no sender flag")
	suite.Nil(view.IsTracked)
}

func (suite *ParcelQueriesTestSuite) TestGetParcel_AuthenticatedFlags() {
	ctx := context.Background()
	destination := suite.seedAddress()
	p := suite.seedParcel(suite.sender.ID, parcel.SizeMedium, destination.ID())

	subscription, err := parcel.NewSubscription(suite.sender.ID, p.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.subscriptionRepo.Add(ctx, subscription))

	query, err := queries.NewGetParcelQuery(p.TrackingNumber(), &suite.sender)
	suite.Require().NoError(err)

	view, err := suite.getHandler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().NotNil(view.IsSender)
	suite.True(*view.IsSender)
	suite.Require().NotNil(view.IsTracked)
	suite.True(*view.IsTracked)

	query, err = queries.NewGetParcelQuery(p.TrackingNumber(), &suite.courier)
	suite.Require().NoError(err)

	view, err = suite.getHandler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().NotNil(view.IsSender)
	suite.False(*view.IsSender)
	suite.Require().NotNil(view.IsTracked)
	suite.False(*view.IsTracked)
}

func (suite *ParcelQueriesTestSuite) TestGetParcel_UnknownTrackingNumber() {
	query, err := queries.NewGetParcelQuery(kernel.GenerateTrackingNumber(), nil)
	suite.Require().NoError(err)

	_, err = suite.getHandler.Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestParcelQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(ParcelQueriesTestSuite))
}
