package subscriptionrepo

import (
	"context"
	"errors"

	"github.com/kikis202/spot/internal/core/domain/model/kernel"
	"github.com/kikis202/spot/internal/core/domain/model/parcel"
	"github.com/kikis202/spot/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

const uniqueViolation = "23505"

// GormSubscriptionRepository implements ports.SubscriptionRepository using GORM.
type GormSubscriptionRepository struct {
	db *gorm.DB
}

// NewGormSubscriptionRepository creates a new GORM subscription repository.
func NewGormSubscriptionRepository(db *gorm.DB) *GormSubscriptionRepository {
	return &GormSubscriptionRepository{db: db}
}

// Add saves a new subscription. The composite primary key turns a
// duplicate insert into a conflict error, no read-then-write involved.
func (r *GormSubscriptionRepository) Add(ctx context.Context, entity *parcel.Subscription) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entity)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return errs.NewConflictErrorWithCause("parcel is already tracked", err)
		}
		return err
	}

	return nil
}

// Remove deletes the subscription for the given pair. Removing a
// subscription that does not exist is an object-not-found error.
func (r *GormSubscriptionRepository) Remove(ctx context.Context, userID, parcelID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	if err := parcelID.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Delete(&SubscriptionDTO{}, "user_id = ? AND parcel_id = ?", userID.Bytes(), parcelID.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("subscription", parcelID)
	}

	return nil
}

// Exists reports whether the user tracks the parcel.
func (r *GormSubscriptionRepository) Exists(ctx context.Context, userID, parcelID kernel.UUID) (bool, error) {
	if err := userID.Validate(); err != nil {
		return false, err
	}
	if err := parcelID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&SubscriptionDTO{}).
		Where("user_id = ? AND parcel_id = ?", userID.Bytes(), parcelID.Bytes()).
		Count(&count).Error
	return count > 0, err
}
