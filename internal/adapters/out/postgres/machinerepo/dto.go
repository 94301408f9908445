// Package machinerepo provides data transfer objects and mapping functions
// for parcel machine persistence. A machine row owns its locker rows; the
// locker's availability flag is the single source of truth for occupancy.
package machinerepo

import (
	"github.com/kikis202/spot/internal/core/domain/model/kernel"
	"github.com/kikis202/spot/internal/core/domain/model/machine"
	"github.com/kikis202/spot/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// MachineDTO represents the database structure for parcel machines.
type MachineDTO struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Name      string      `gorm:"not null"`
	AddressID uuid.UUID   `gorm:"type:uuid;uniqueIndex;not null"`
	Lockers   []LockerDTO `gorm:"foreignKey:MachineID"`
}

// TableName specifies the database table name for parcel machines.
func (MachineDTO) TableName() string {
	return "parcel_machines"
}

// LockerDTO represents one locker of a machine.
type LockerDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	MachineID uuid.UUID `gorm:"type:uuid;index;not null"`
	Size      string    `gorm:"not null"`
	Available bool      `gorm:"not null"`
}

// TableName specifies the database table name for lockers.
func (LockerDTO) TableName() string {
	return "lockers"
}

// fromDomain converts a machine aggregate to its database representation.
func fromDomain(aggregate *machine.ParcelMachine) MachineDTO {
	lockers := make([]LockerDTO, 0, len(aggregate.Lockers()))
	for _, locker := range aggregate.Lockers() {
		lockers = append(lockers, LockerDTO{
			ID:        locker.ID().Bytes(),
			MachineID: locker.MachineID().Bytes(),
			Size:      locker.Size().String(),
			Available: locker.IsAvailable(),
		})
	}

	return MachineDTO{
		ID:        aggregate.ID().Bytes(),
		Name:      aggregate.Name(),
		AddressID: aggregate.AddressID().Bytes(),
		Lockers:   lockers,
	}
}

// toDomain converts a database DTO to a machine aggregate using
// RestoreParcelMachine.
func toDomain(dto MachineDTO) (*machine.ParcelMachine, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	addressID, err := kernel.UUIDFromBytes(dto.AddressID[:])
	if err != nil {
		return nil, err
	}

	lockers := make([]*machine.Locker, 0, len(dto.Lockers))
	for _, lockerDTO := range dto.Lockers {
		locker, convErr := lockerToDomain(lockerDTO)
		if convErr != nil {
			return nil, convErr
		}
		lockers = append(lockers, locker)
	}

	return machine.RestoreParcelMachine(id, dto.Name, addressID, lockers)
}

func lockerToDomain(dto LockerDTO) (*machine.Locker, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	machineID, err := kernel.UUIDFromBytes(dto.MachineID[:])
	if err != nil {
		return nil, err
	}
	size, err := parcel.SizeFromString(dto.Size)
	if err != nil {
		return nil, err
	}

	return machine.RestoreLocker(id, machineID, size, dto.Available)
}
