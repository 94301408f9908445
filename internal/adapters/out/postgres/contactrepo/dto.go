// Package contactrepo provides data transfer objects and mapping functions
// for contact card persistence.
package contactrepo

import (
	"github.com/kikis202/spot/internal/core/domain/model/contact"
	"github.com/kikis202/spot/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ContactDTO represents the database structure for contact cards.
type ContactDTO struct {
	ID       uuid.UUID  `gorm:"type:uuid;primaryKey"`
	FullName string     `gorm:"not null"`
	Phone    string     `gorm:"not null"`
	Email    string     `gorm:"not null"`
	UserID   *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for contact cards.
func (ContactDTO) TableName() string {
	return "contacts"
}

// fromDomain converts a contact entity to its database representation.
func fromDomain(entity *contact.ContactInfo) ContactDTO {
	var userID *uuid.UUID
	if owner := entity.Owner(); owner != nil {
		raw := owner.Bytes()
		userID = &raw
	}

	return ContactDTO{
		ID:       entity.ID().Bytes(),
		FullName: entity.FullName(),
		Phone:    entity.Phone(),
		Email:    entity.Email(),
		UserID:   userID,
	}
}

// toDomain converts a database DTO back using RestoreContactInfo.
func toDomain(dto ContactDTO) (*contact.ContactInfo, error) {
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

	return contact.RestoreContactInfo(id, dto.FullName, dto.Phone, dto.Email, userID)
}
