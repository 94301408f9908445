// Package userrepo provides data transfer objects and mapping functions
// for account persistence.
package userrepo

import (
	"time"

	"github.com/kikis202/spot/internal/core/domain/model/account"
	"github.com/kikis202/spot/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for accounts.
type UserDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email     string    `gorm:"uniqueIndex;not null"`
	Role      string    `gorm:"index;not null"`
	CreatedAt time.Time
}

// TableName specifies the database table name for accounts.
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user entity to its database representation.
func fromDomain(entity *account.User) UserDTO {
	return UserDTO{
		ID:        entity.ID().Bytes(),
		Email:     entity.Email(),
		Role:      entity.Role().String(),
		CreatedAt: entity.CreatedAt(),
	}
}

// toDomain converts a database DTO back using RestoreUser.
func toDomain(dto UserDTO) (*account.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	role, err := account.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return account.RestoreUser(id, dto.Email, role, dto.CreatedAt)
}
