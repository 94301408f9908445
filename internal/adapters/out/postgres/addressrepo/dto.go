// Package addressrepo provides data transfer objects and mapping functions
// for address persistence.
package addressrepo

import (
	"github.com/kikis202/spot/internal/core/domain/model/address"
	"github.com/kikis202/spot/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AddressDTO represents the database structure for addresses. A null
// UserID marks an address that belongs to no account: either a machine
// location or one detached from a deleted address book.
type AddressDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Street     string     `gorm:"not null"`
	City       string     `gorm:"not null"`
	PostalCode string     `gorm:"not null"`
	Country    string     `gorm:"not null"`
	UserID     *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for addresses.
func (AddressDTO) TableName() string {
	return "addresses"
}

// fromDomain converts an address entity to its database representation.
func fromDomain(entity *address.Address) AddressDTO {
	var userID *uuid.UUID
	if owner := entity.Owner(); owner != nil {
		raw := owner.Bytes()
		userID = &raw
	}

	return AddressDTO{
		ID:         entity.ID().Bytes(),
		Street:     entity.Street(),
		City:       entity.City(),
		PostalCode: entity.PostalCode(),
		Country:    entity.Country(),
		UserID:     userID,
	}
}

// toDomain converts a database DTO back using RestoreAddress.
func toDomain(dto AddressDTO) (*address.Address, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var userID *kernel.UUID
	if dto.UserID != nil {
		owner, ownerErr := kernel.UUIDFromBytes((*dto.UserID)[:])
		if ownerErr != nil {
			return nil, ownerErr
		}
		userID = &owner
	}

	return address.RestoreAddress(id, dto.Street, dto.City, dto.PostalCode, dto.Country, userID)
}
