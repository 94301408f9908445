package contactrepo

import (
	"context"
	"errors"

	"github.com/kikis202/spot/internal/core/domain/model/contact"
	"github.com/kikis202/spot/internal/core/domain/model/kernel"
	"github.com/kikis202/spot/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormContactRepository implements ports.ContactRepository using GORM.
type GormContactRepository struct {
	db *gorm.DB
}

// NewGormContactRepository creates a new GORM contact repository.
func NewGormContactRepository(db *gorm.DB) *GormContactRepository {
	return &GormContactRepository{db: db}
}

// Add saves a new contact card.
func (r *GormContactRepository) Add(ctx context.Context, entity *contact.ContactInfo) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entity)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a contact card by ID.
func (r *GormContactRepository) Get(ctx context.Context, id kernel.UUID) (*contact.ContactInfo, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ContactDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("contactId", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Exists reports whether the contact card is present, without loading it.
func (r *GormContactRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&ContactDTO{}).
		Where("id = ?", id.Bytes()).
		Count(&count).Error
	return count > 0, err
}
