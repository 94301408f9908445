// Package subscriptionrepo provides data transfer objects and mapping
// functions for tracking subscription persistence. The (user, parcel)
// pair forms the primary key, so the database enforces that a user
// tracks a parcel at most once.
package subscriptionrepo

import (
	"time"

	"github.com/kikis202/spot/internal/core/domain/model/kernel"
	"github.com/kikis202/spot/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// SubscriptionDTO represents one tracked-parcel row.
type SubscriptionDTO struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	ParcelID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time
}

// TableName specifies the database table name for subscriptions.
func (SubscriptionDTO) TableName() string {
	return "subscriptions"
}

// fromDomain converts a subscription to its database representation.
func fromDomain(entity *parcel.Subscription) SubscriptionDTO {
	return SubscriptionDTO{
		UserID:    entity.UserID().Bytes(),
		ParcelID:  entity.ParcelID().Bytes(),
		CreatedAt: entity.CreatedAt(),
	}
}

// toDomain converts a database DTO back to a subscription.
func toDomain(dto SubscriptionDTO) (*parcel.Subscription, error) {
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}
	parcelID, err := kernel.UUIDFromBytes(dto.ParcelID[:])
	if err != nil {
		return nil, err
	}

	return parcel.NewSubscription(userID, parcelID)
}
