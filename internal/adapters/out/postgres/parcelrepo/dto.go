// Package parcelrepo provides data transfer objects and mapping functions
// for parcel persistence. It implements the repository pattern for the
// parcel aggregate and its append-only status history.
package parcelrepo

import (
	"time"

	"github.com/kikis202/spot/internal/core/domain/model/kernel"
	"github.com/kikis202/spot/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelDTO represents the database structure for persisting parcel
// aggregates. The tracking number carries a unique constraint; the
// database, not the application, is the authority on collisions.
type ParcelDTO struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TrackingNumber    string     `gorm:"uniqueIndex;not null"`
	Status            string     `gorm:"index;not null"`
	Size              string     `gorm:"not null"`
	Weight            *float64
	Dimensions        *string
	Notes             *string
	OriginID          uuid.UUID  `gorm:"type:uuid;not null"`
	DestinationID     uuid.UUID  `gorm:"type:uuid;index;not null"`
	SenderContactID   uuid.UUID  `gorm:"type:uuid;not null"`
	ReceiverContactID uuid.UUID  `gorm:"type:uuid;not null"`
	SenderID          uuid.UUID  `gorm:"type:uuid;index;not null"`
	CourierID         *uuid.UUID `gorm:"type:uuid;index"`
	LockerID          *uuid.UUID `gorm:"type:uuid"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName specifies the database table name for parcel entities.
func (ParcelDTO) TableName() string {
	return "parcels"
}

// ParcelUpdateDTO represents one entry of a parcel's status history.
type ParcelUpdateDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ParcelID  uuid.UUID `gorm:"type:uuid;index;not null"`
	Status    string    `gorm:"not null"`
	Title     string    `gorm:"not null"`
	CreatedAt time.Time
}

// TableName specifies the database table name for parcel history entries.
func (ParcelUpdateDTO) TableName() string {
	return "parcel_updates"
}

// fromDomain converts a parcel aggregate to its database representation.
func fromDomain(aggregate *parcel.Parcel) ParcelDTO {
	return ParcelDTO{
		ID:                aggregate.ID().Bytes(),
		TrackingNumber:    aggregate.TrackingNumber().String(),
		Status:            aggregate.Status().String(),
		Size:              aggregate.Size().String(),
		Weight:            aggregate.Weight(),
		Dimensions:        aggregate.Dimensions(),
		Notes:             aggregate.Notes(),
		OriginID:          aggregate.OriginID().Bytes(),
		DestinationID:     aggregate.DestinationID().Bytes(),
		SenderContactID:   aggregate.SenderContactID().Bytes(),
		ReceiverContactID: aggregate.ReceiverContactID().Bytes(),
		SenderID:          aggregate.SenderID().Bytes(),
		CourierID:         optionalUUID(aggregate.Courier()),
		LockerID:          optionalUUID(aggregate.Locker()),
		CreatedAt:         aggregate.CreatedAt(),
		UpdatedAt:         aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a parcel aggregate using RestoreParcel.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	trackingNumber, err := kernel.TrackingNumberFromString(dto.TrackingNumber)
	if err != nil {
		return nil, err
	}
	status, err := parcel.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}
	size, err := parcel.SizeFromString(dto.Size)
	if err != nil {
		return nil, err
	}
	originID, err := kernel.UUIDFromBytes(dto.OriginID[:])
	if err != nil {
		return nil, err
	}
	destinationID, err := kernel.UUIDFromBytes(dto.DestinationID[:])
	if err != nil {
		return nil, err
	}
	senderContactID, err := kernel.UUIDFromBytes(dto.SenderContactID[:])
	if err != nil {
		return nil, err
	}
	receiverContactID, err := kernel.UUIDFromBytes(dto.ReceiverContactID[:])
	if err != nil {
		return nil, err
	}
	senderID, err := kernel.UUIDFromBytes(dto.SenderID[:])
	if err != nil {
		return nil, err
	}
	courierID, err := optionalKernelUUID(dto.CourierID)
	if err != nil {
		return nil, err
	}
	lockerID, err := optionalKernelUUID(dto.LockerID)
	if err != nil {
		return nil, err
	}

	return parcel.RestoreParcel(
		id, trackingNumber, status, size,
		dto.Weight, dto.Dimensions, dto.Notes,
		originID, destinationID, senderContactID, receiverContactID,
		senderID, courierID, lockerID,
		dto.CreatedAt, dto.UpdatedAt,
	)
}

// updateFromDomain converts a history entry to its database representation.
func updateFromDomain(entry *parcel.Update) ParcelUpdateDTO {
	return ParcelUpdateDTO{
		ID:        entry.ID().Bytes(),
		ParcelID:  entry.ParcelID().Bytes(),
		Status:    entry.Status().String(),
		Title:     entry.Title(),
		CreatedAt: entry.CreatedAt(),
	}
}

// updateToDomain converts a history DTO back using RestoreUpdate.
func updateToDomain(dto ParcelUpdateDTO) (*parcel.Update, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	parcelID, err := kernel.UUIDFromBytes(dto.ParcelID[:])
	if err != nil {
		return nil, err
	}
	status, err := parcel.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return parcel.RestoreUpdate(id, parcelID, status, dto.Title, dto.CreatedAt)
}

func optionalUUID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func optionalKernelUUID(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	converted, err := kernel.UUIDFromBytes((*id)[:])
	if err != nil {
		return nil, err
	}
	return &converted, nil
}
