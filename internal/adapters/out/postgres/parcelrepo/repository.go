package parcelrepo

import (
	"context"
	"errors"

	"github.com/kikis202/spot/internal/core/domain/model/kernel"
	"github.com/kikis202/spot/internal/core/domain/model/parcel"
	"github.com/kikis202/spot/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// uniqueViolation is the postgres error code for a unique constraint hit.
const uniqueViolation = "23505"

// GormParcelRepository implements ports.ParcelRepository using GORM.
type GormParcelRepository struct {
	db *gorm.DB
}

// NewGormParcelRepository creates a new GORM parcel repository.
func NewGormParcelRepository(db *gorm.DB) *GormParcelRepository {
	return &GormParcelRepository{db: db}
}

// Add saves a new parcel. A tracking number collision surfaces as a
// conflict error from the database's unique constraint.
func (r *GormParcelRepository) Add(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return errs.NewConflictErrorWithCause("tracking number already exists", err)
		}
		return err
	}

	return nil
}

// Update saves an existing parcel.
func (r *GormParcelRepository) Update(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ParcelDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("parcelId", aggregate.ID())
	}

	return nil
}

// Get retrieves a parcel by ID.
func (r *GormParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ParcelDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("parcelId", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetMany retrieves a batch of parcels. Every ID must resolve; the first
// missing one fails the whole read, which keeps batch commands atomic.
func (r *GormParcelRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*parcel.Parcel, error) {
	raw := make([]any, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []ParcelDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "id IN ?", raw).Error; err != nil {
		return nil, err
	}

	found := make(map[kernel.UUID]*parcel.Parcel, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		found[p.ID()] = p
	}

	parcels := make([]*parcel.Parcel, 0, len(ids))
	for _, id := range ids {
		p, ok := found[id]
		if !ok {
			return nil, errs.NewObjectNotFoundError("parcelId", id)
		}
		parcels = append(parcels, p)
	}

	return parcels, nil
}

// GetByTrackingNumber retrieves a parcel by its public tracking number.
func (r *GormParcelRepository) GetByTrackingNumber(
	ctx context.Context,
	trackingNumber kernel.TrackingNumber,
) (*parcel.Parcel, error) {
	if err := trackingNumber.Validate(); err != nil {
		return nil, err
	}

	var dto ParcelDTO
	err := r.db.WithContext(ctx).
		First(&dto, "tracking_number = ?", trackingNumber.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("trackingNumber", trackingNumber.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// AppendUpdate saves one history entry. Entries are append-only.
func (r *GormParcelRepository) AppendUpdate(ctx context.Context, entry *parcel.Update) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := updateFromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetUpdates retrieves a parcel's history, newest first.
func (r *GormParcelRepository) GetUpdates(ctx context.Context, parcelID kernel.UUID) ([]*parcel.Update, error) {
	if err := parcelID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ParcelUpdateDTO
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&dtos, "parcel_id = ?", parcelID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	updates := make([]*parcel.Update, 0, len(dtos))
	for _, dto := range dtos {
		entry, convErr := updateToDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		updates = append(updates, entry)
	}

	return updates, nil
}
