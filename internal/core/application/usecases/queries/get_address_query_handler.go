package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/kikis202/spot/internal/core/domain/model/kernel"
	"github.com/kikis202/spot/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAddressQueryHandler reads a single address with ownership enforcement.
type GetAddressQueryHandler struct {
	db *gorm.DB
}

// NewGetAddressQueryHandler creates a handler for single-address lookups.
// Requires a GORM database connection for query execution.
func NewGetAddressQueryHandler(db *gorm.DB) GetAddressQueryHandler {
	return GetAddressQueryHandler{db: db}
}

// Handle executes the lookup. Returns an object-not-found error for an
// unknown ID and a forbidden error when a non-admin caller reads an
// address they do not own.
func (h GetAddressQueryHandler) Handle(
	ctx context.Context,
	query GetAddressQuery,
) (AddressView, error) {
	if err := query.Validate(); err != nil {
		return AddressView{}, err
	}

	var (
		id     uuid.UUID
		userID uuid.NullUUID
		item   AddressView
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, street, city, postal_code, country, user_id
		FROM addresses
		WHERE id = ?
	`, query.AddressID().Bytes()).Row()

	err := row.Scan(&id, &item.Street, &item.City, &item.PostalCode, &item.Country, &userID)
	if errors.Is(err, sql.ErrNoRows) {
		return AddressView{}, errs.NewObjectNotFoundError("addressId", query.AddressID())
	}
	if err != nil {
		return AddressView{}, err
	}

	if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return AddressView{}, err
	}
	if userID.Valid {
		owner, ownerErr := kernel.UUIDFromBytes(userID.UUID[:])
		if ownerErr != nil {
			return AddressView{}, ownerErr
		}
		item.Owner = &owner
	}

	caller := query.Caller()
	if !caller.Role.IsAdmin() {
		if item.Owner == nil || !item.Owner.IsEqual(caller.ID) {
			return AddressView{}, errs.NewForbiddenError("address belongs to another user")
		}
	}

	return item, nil
}
