package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/kikis202/spot/internal/core/application/usecases/commands"
	"github.com/kikis202/spot/internal/core/domain/model/account"
	"github.com/kikis202/spot/internal/core/domain/model/address"
	"github.com/kikis202/spot/internal/core/domain/model/contact"
	"github.com/kikis202/spot/internal/core/domain/model/kernel"
	"github.com/kikis202/spot/internal/core/domain/model/machine"
	"github.com/kikis202/spot/internal/core/domain/model/parcel"
	"github.com/kikis202/spot/internal/core/ports"
	"github.com/kikis202/spot/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/mock"
)

func newTestMetrics() *metrics.Metrics {
	return metrics.NewMetrics(prometheus.NewRegistry(), "test")
}

func restoredUser(t *testing.T) *account.User {
	t.Helper()
	u, err := account.RestoreUser(
		kernel.NewUUID(), "user@example.com", account.RoleUser, time.Now().UTC())
	if err != nil {
		t.Fatal(err)
	}
	return u
}


type MockParcelRepository struct{ mock.Mock }

func (m *MockParcelRepository) Add(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockParcelRepository) Update(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}
func (m *MockParcelRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*parcel.Parcel, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*parcel.Parcel), args.Error(1)
}
func (m *MockParcelRepository) GetByTrackingNumber(ctx context.Context, tn kernel.TrackingNumber) (*parcel.Parcel, error) {
	args := m.Called(ctx, tn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}
func (m *MockParcelRepository) AppendUpdate(ctx context.Context, u *parcel.Update) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}
func (m *MockParcelRepository) GetUpdates(ctx context.Context, parcelID kernel.UUID) ([]*parcel.Update, error) {
	args := m.Called(ctx, parcelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*parcel.Update), args.Error(1)
}

type MockMachineRepository struct{ mock.Mock }

func (m *MockMachineRepository) Add(ctx context.Context, pm *machine.ParcelMachine) error {
	args := m.Called(ctx, pm)
	return args.Error(0)
}
func (m *MockMachineRepository) Get(ctx context.Context, id kernel.UUID) (*machine.ParcelMachine, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*machine.ParcelMachine), args.Error(1)
}
func (m *MockMachineRepository) GetByAddressID(ctx context.Context, addressID kernel.UUID) (*machine.ParcelMachine, error) {
	args := m.Called(ctx, addressID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*machine.ParcelMachine), args.Error(1)
}
func (m *MockMachineRepository) ReserveLocker(ctx context.Context, lockerID kernel.UUID) error {
	args := m.Called(ctx, lockerID)
	return args.Error(0)
}
func (m *MockMachineRepository) ReleaseLocker(ctx context.Context, lockerID kernel.UUID) error {
	args := m.Called(ctx, lockerID)
	return args.Error(0)
}
func (m *MockMachineRepository) ReleaseOrphanedLockers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockAddressRepository struct{ mock.Mock }

func (m *MockAddressRepository) Add(ctx context.Context, a *address.Address) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockAddressRepository) Update(ctx context.Context, a *address.Address) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockAddressRepository) Get(ctx context.Context, id kernel.UUID) (*address.Address, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*address.Address), args.Error(1)
}
func (m *MockAddressRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
func (m *MockAddressRepository) ReferenceCount(ctx context.Context, id kernel.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockAddressRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockContactRepository struct{ mock.Mock }

func (m *MockContactRepository) Add(ctx context.Context, c *contact.ContactInfo) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockContactRepository) Get(ctx context.Context, id kernel.UUID) (*contact.ContactInfo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contact.ContactInfo), args.Error(1)
}
func (m *MockContactRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockSubscriptionRepository struct{ mock.Mock }

func (m *MockSubscriptionRepository) Add(ctx context.Context, s *parcel.Subscription) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockSubscriptionRepository) Remove(ctx context.Context, userID, parcelID kernel.UUID) error {
	args := m.Called(ctx, userID, parcelID)
	return args.Error(0)
}
func (m *MockSubscriptionRepository) Exists(ctx context.Context, userID, parcelID kernel.UUID) (bool, error) {
	args := m.Called(ctx, userID, parcelID)
	return args.Bool(0), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *account.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}
func (m *MockUserRepository) Update(ctx context.Context, u *account.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}
func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*account.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.User), args.Error(1)
}

// mockTx embeds the transaction lifecycle shared by every mock unit of work.
type mockTx struct{ mock.Mock }

func (m *mockTx) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *mockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *mockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockParcelUoW struct{ mockTx }

func (m *MockParcelUoW) ParcelRepository() ports.ParcelRepository {
	args := m.Called()
	return args.Get(0).(ports.ParcelRepository)
}

type MockParcelUoWFactory struct{ mock.Mock }

func (m *MockParcelUoWFactory) Create() commands.ParcelUoW {
	args := m.Called()
	return args.Get(0).(commands.ParcelUoW)
}

type MockCreateParcelUoW struct{ mockTx }

func (m *MockCreateParcelUoW) ParcelRepository() ports.ParcelRepository {
	args := m.Called()
	return args.Get(0).(ports.ParcelRepository)
}
func (m *MockCreateParcelUoW) AddressRepository() ports.AddressRepository {
	args := m.Called()
	return args.Get(0).(ports.AddressRepository)
}
func (m *MockCreateParcelUoW) ContactRepository() ports.ContactRepository {
	args := m.Called()
	return args.Get(0).(ports.ContactRepository)
}

type MockCreateParcelUoWFactory struct{ mock.Mock }

func (m *MockCreateParcelUoWFactory) Create() commands.CreateParcelUoW {
	args := m.Called()
	return args.Get(0).(commands.CreateParcelUoW)
}

type MockUpdateStatusesUoW struct{ mockTx }

func (m *MockUpdateStatusesUoW) ParcelRepository() ports.ParcelRepository {
	args := m.Called()
	return args.Get(0).(ports.ParcelRepository)
}
func (m *MockUpdateStatusesUoW) MachineRepository() ports.MachineRepository {
	args := m.Called()
	return args.Get(0).(ports.MachineRepository)
}

type MockUpdateStatusesUoWFactory struct{ mock.Mock }

func (m *MockUpdateStatusesUoWFactory) Create() commands.UpdateStatusesUoW {
	args := m.Called()
	return args.Get(0).(commands.UpdateStatusesUoW)
}

type MockTrackingUoW struct{ mockTx }

func (m *MockTrackingUoW) ParcelRepository() ports.ParcelRepository {
	args := m.Called()
	return args.Get(0).(ports.ParcelRepository)
}
func (m *MockTrackingUoW) SubscriptionRepository() ports.SubscriptionRepository {
	args := m.Called()
	return args.Get(0).(ports.SubscriptionRepository)
}

type MockTrackingUoWFactory struct{ mock.Mock }

func (m *MockTrackingUoWFactory) Create() commands.TrackingUoW {
	args := m.Called()
	return args.Get(0).(commands.TrackingUoW)
}

type MockAddressUoW struct{ mockTx }

func (m *MockAddressUoW) AddressRepository() ports.AddressRepository {
	args := m.Called()
	return args.Get(0).(ports.AddressRepository)
}

type MockAddressUoWFactory struct{ mock.Mock }

func (m *MockAddressUoWFactory) Create() commands.AddressUoW {
	args := m.Called()
	return args.Get(0).(commands.AddressUoW)
}

type MockContactUoW struct{ mockTx }

func (m *MockContactUoW) ContactRepository() ports.ContactRepository {
	args := m.Called()
	return args.Get(0).(ports.ContactRepository)
}

type MockContactUoWFactory struct{ mock.Mock }

func (m *MockContactUoWFactory) Create() commands.ContactUoW {
	args := m.Called()
	return args.Get(0).(commands.ContactUoW)
}

type MockMachineUoW struct{ mockTx }

func (m *MockMachineUoW) MachineRepository() ports.MachineRepository {
	args := m.Called()
	return args.Get(0).(ports.MachineRepository)
}
func (m *MockMachineUoW) AddressRepository() ports.AddressRepository {
	args := m.Called()
	return args.Get(0).(ports.AddressRepository)
}

type MockMachineUoWFactory struct{ mock.Mock }

func (m *MockMachineUoWFactory) Create() commands.MachineUoW {
	args := m.Called()
	return args.Get(0).(commands.MachineUoW)
}

type MockUserUoW struct{ mockTx }

func (m *MockUserUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockUserUoWFactory struct{ mock.Mock }

func (m *MockUserUoWFactory) Create() commands.UserUoW {
	args := m.Called()
	return args.Get(0).(commands.UserUoW)
}
