package machinerepo

import (
	"context"
	"errors"

	"github.com/kikis202/spot/internal/core/domain/model/kernel"
	"github.com/kikis202/spot/internal/core/domain/model/machine"
	"github.com/kikis202/spot/internal/core/domain/model/parcel"
	"github.com/kikis202/spot/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormMachineRepository implements ports.MachineRepository using GORM.
type GormMachineRepository struct {
	db *gorm.DB
}

// NewGormMachineRepository creates a new GORM machine repository.
func NewGormMachineRepository(db *gorm.DB) *GormMachineRepository {
	return &GormMachineRepository{db: db}
}

// Add saves a new machine together with its lockers.
func (r *GormMachineRepository) Add(ctx context.Context, aggregate *machine.ParcelMachine) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a machine with its lockers by ID.
func (r *GormMachineRepository) Get(ctx context.Context, id kernel.UUID) (*machine.ParcelMachine, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MachineDTO
	err := r.db.WithContext(ctx).
		Preload("Lockers").
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("machineId", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByAddressID retrieves the machine installed at the given address.
// An object-not-found error means the address is a home address, not a
// machine location.
func (r *GormMachineRepository) GetByAddressID(ctx context.Context, addressID kernel.UUID) (*machine.ParcelMachine, error) {
	if err := addressID.Validate(); err != nil {
		return nil, err
	}

	var dto MachineDTO
	err := r.db.WithContext(ctx).
		Preload("Lockers").
		First(&dto, "address_id = ?", addressID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("addressId", addressID)
		}
		return nil, err
	}

	return toDomain(dto)
}

// ReserveLocker marks a locker as occupied with a conditional update.
// The WHERE clause only matches a still-free locker, so two transactions
// racing for the same locker cannot both win; the loser gets a conflict.
func (r *GormMachineRepository) ReserveLocker(ctx context.Context, lockerID kernel.UUID) error {
	if err := lockerID.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&LockerDTO{}).
		Where("id = ? AND available = ?", lockerID.Bytes(), true).
		Update("available", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewConflictError("locker is no longer available")
	}

	return nil
}

// ReleaseLocker marks a locker as free again. Releasing an already free
// locker is a no-op.
func (r *GormMachineRepository) ReleaseLocker(ctx context.Context, lockerID kernel.UUID) error {
	if err := lockerID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Model(&LockerDTO{}).
		Where("id = ?", lockerID.Bytes()).
		Update("available", true).Error
}

// ReleaseOrphanedLockers frees occupied lockers that no awaiting-pickup
// parcel references. Used by the periodic reclaim sweep.
func (r *GormMachineRepository) ReleaseOrphanedLockers(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE lockers SET available = true
		WHERE available = false
		AND NOT EXISTS (
			SELECT 1 FROM parcels p
			WHERE p.locker_id = lockers.id AND p.status = ?
		)
	`, parcel.StatusAwaitingPickup.String())
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
