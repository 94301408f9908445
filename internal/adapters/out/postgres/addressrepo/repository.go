package addressrepo

import (
	"context"
	"errors"

	"github.com/kikis202/spot/internal/core/domain/model/address"
	"github.com/kikis202/spot/internal/core/domain/model/kernel"
	"github.com/kikis202/spot/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAddressRepository implements ports.AddressRepository using GORM.
type GormAddressRepository struct {
	db *gorm.DB
}

// NewGormAddressRepository creates a new GORM address repository.
func NewGormAddressRepository(db *gorm.DB) *GormAddressRepository {
	return &GormAddressRepository{db: db}
}

// Add saves a new address.
func (r *GormAddressRepository) Add(ctx context.Context, entity *address.Address) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entity)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing address, including a cleared owner.
func (r *GormAddressRepository) Update(ctx context.Context, entity *address.Address) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entity)
	result := r.db.WithContext(ctx).
		Model(&AddressDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("addressId", entity.ID())
	}

	return nil
}

// Get retrieves an address by ID.
func (r *GormAddressRepository) Get(ctx context.Context, id kernel.UUID) (*address.Address, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AddressDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("addressId", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Exists reports whether the address is present, without loading it.
func (r *GormAddressRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&AddressDTO{}).
		Where("id = ?", id.Bytes()).
		Count(&count).Error
	return count > 0, err
}

// ReferenceCount counts parcels and machines pointing at the address.
// A referenced address is frozen: it cannot be amended or deleted.
func (r *GormAddressRepository) ReferenceCount(ctx context.Context, id kernel.UUID) (int64, error) {
	if err := id.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM parcels WHERE origin_id = @id OR destination_id = @id) +
			(SELECT COUNT(*) FROM parcel_machines WHERE address_id = @id)
	`, map[string]any{"id": id.Bytes()}).Row().Scan(&count)
	return count, err
}

// Delete removes an address by ID.
func (r *GormAddressRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&AddressDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("addressId", id)
	}

	return nil
}
