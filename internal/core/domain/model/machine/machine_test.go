package machine_test

import (
	"testing"

	"github.com/kikis202/spot/internal/core/domain/model/kernel"
	"github.com/kikis202/spot/internal/core/domain/model/machine"
	"github.com/kikis202/spot/internal/core/domain/model/parcel"
	"github.com/kikis202/spot/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocker(t *testing.T) {
	t.Run("should create available locker", func(t *testing.T) {
		id := kernel.NewUUID()
		machineID := kernel.NewUUID()

		l, err := machine.NewLocker(id, machineID, parcel.SizeMedium)

		require.NoError(t, err)
		assert.NoError(t, l.Validate())
		assert.True(t, l.ID().IsEqual(id))
		assert.True(t, l.MachineID().IsEqual(machineID))
		assert.Equal(t, parcel.SizeMedium, l.Size())
		assert.True(t, l.IsAvailable())
	})

	t.Run("should reject custom size", func(t *testing.T) {
		l, err := machine.NewLocker(kernel.NewUUID(), kernel.NewUUID(), parcel.SizeCustom)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Nil(t, l)
	})

	t.Run("should reject unknown size", func(t *testing.T) {
		l, err := machine.NewLocker(kernel.NewUUID(), kernel.NewUUID(), parcel.SizeUnknown)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Nil(t, l)
	})
}

func TestLocker_ReserveRelease(t *testing.T) {
	t.Run("should reserve and release", func(t *testing.T) {
		l, err := machine.NewLocker(kernel.NewUUID(), kernel.NewUUID(), parcel.SizeSmall)
		require.NoError(t, err)

		require.NoError(t, l.Reserve())
		assert.False(t, l.IsAvailable())

		require.NoError(t, l.Release())
		assert.True(t, l.IsAvailable())
	})

	t.Run("should reject double reserve", func(t *testing.T) {
		l, _ := machine.NewLocker(kernel.NewUUID(), kernel.NewUUID(), parcel.SizeSmall)
		require.NoError(t, l.Reserve())

		assert.ErrorIs(t, l.Reserve(), machine.ErrLockerIsOccupied)
	})

	t.Run("should reject releasing a free locker", func(t *testing.T) {
		l, _ := machine.NewLocker(kernel.NewUUID(), kernel.NewUUID(), parcel.SizeSmall)

		assert.ErrorIs(t, l.Release(), machine.ErrLockerIsNotOccupied)
	})
}

func TestLocker_Fits(t *testing.T) {
	l, err := machine.NewLocker(kernel.NewUUID(), kernel.NewUUID(), parcel.SizeMedium)
	require.NoError(t, err)

	assert.True(t, l.Fits(parcel.SizeMedium))
	assert.False(t, l.Fits(parcel.SizeSmall), "smaller parcels do not share bigger lockers")
	assert.False(t, l.Fits(parcel.SizeLarge))
}

func TestNewParcelMachine(t *testing.T) {
	t.Run("should create machine with lockers", func(t *testing.T) {
		machineID := kernel.NewUUID()
		addressID := kernel.NewUUID()
		small, _ := machine.NewLocker(kernel.NewUUID(), machineID, parcel.SizeSmall)
		large, _ := machine.NewLocker(kernel.NewUUID(), machineID, parcel.SizeLarge)

		m, err := machine.NewParcelMachine(machineID, "North Depot", addressID, []*machine.Locker{small, large})

		require.NoError(t, err)
		assert.NoError(t, m.Validate())
		assert.Equal(t, "North Depot", m.Name())
		assert.True(t, m.AddressID().IsEqual(addressID))
		assert.Len(t, m.Lockers(), 2)
	})

	t.Run("should allow machine without lockers", func(t *testing.T) {
		m, err := machine.NewParcelMachine(kernel.NewUUID(), "Provisioning", kernel.NewUUID(), nil)

		require.NoError(t, err)
		assert.Empty(t, m.Lockers())
	})

	t.Run("should require name", func(t *testing.T) {
		m, err := machine.NewParcelMachine(kernel.NewUUID(), "", kernel.NewUUID(), nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, m)
	})

	t.Run("should reject nil locker in slice", func(t *testing.T) {
		m, err := machine.NewParcelMachine(kernel.NewUUID(), "Broken", kernel.NewUUID(), []*machine.Locker{nil})

		require.ErrorIs(t, err, machine.ErrLockerIsNotConstructed)
		assert.Nil(t, m)
	})
}

func TestParcelMachine_FindAvailableLocker(t *testing.T) {
	buildMachine := func(t *testing.T, sizes ...parcel.Size) (*machine.ParcelMachine, []*machine.Locker) {
		t.Helper()
		machineID := kernel.NewUUID()
		lockers := make([]*machine.Locker, 0, len(sizes))
		for _, size := range sizes {
			l, err := machine.NewLocker(kernel.NewUUID(), machineID, size)
			require.NoError(t, err)
			lockers = append(lockers, l)
		}
		m, err := machine.NewParcelMachine(machineID, "Station", kernel.NewUUID(), lockers)
		require.NoError(t, err)
		return m, lockers
	}

	t.Run("should find first matching free locker", func(t *testing.T) {
		m, lockers := buildMachine(t, parcel.SizeMedium, parcel.SizeSmall, parcel.SizeSmall)

		found := m.FindAvailableLocker(parcel.SizeSmall, nil)

		require.NotNil(t, found)
		assert.True(t, found.ID().IsEqual(lockers[1].ID()))
	})

	t.Run("should skip occupied lockers", func(t *testing.T) {
		m, lockers := buildMachine(t, parcel.SizeSmall, parcel.SizeSmall)
		require.NoError(t, lockers[0].Reserve())

		found := m.FindAvailableLocker(parcel.SizeSmall, nil)

		require.NotNil(t, found)
		assert.True(t, found.ID().IsEqual(lockers[1].ID()))
	})

	t.Run("should skip excluded lockers", func(t *testing.T) {
		m, lockers := buildMachine(t, parcel.SizeSmall, parcel.SizeSmall)
		excluded := map[kernel.UUID]struct{}{lockers[0].ID(): {}}

		found := m.FindAvailableLocker(parcel.SizeSmall, excluded)

		require.NotNil(t, found)
		assert.True(t, found.ID().IsEqual(lockers[1].ID()))
	})

	t.Run("should return nil when nothing fits", func(t *testing.T) {
		m, _ := buildMachine(t, parcel.SizeLarge)

		assert.Nil(t, m.FindAvailableLocker(parcel.SizeSmall, nil))
	})

	t.Run("should return nil when all matching lockers are excluded", func(t *testing.T) {
		m, lockers := buildMachine(t, parcel.SizeSmall)
		excluded := map[kernel.UUID]struct{}{lockers[0].ID(): {}}

		assert.Nil(t, m.FindAvailableLocker(parcel.SizeSmall, excluded))
	})
}
