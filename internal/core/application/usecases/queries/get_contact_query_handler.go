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

// GetContactQueryHandler reads a single contact card with ownership
// enforcement.
type GetContactQueryHandler struct {
	db *gorm.DB
}

// NewGetContactQueryHandler creates a handler for contact lookups.
// Requires a GORM database connection for query execution.
func NewGetContactQueryHandler(db *gorm.DB) GetContactQueryHandler {
	return GetContactQueryHandler{db: db}
}

// Handle executes the lookup. Returns an object-not-found error for an
// unknown ID and a forbidden error when a non-admin caller reads a
// contact they do not own.
func (h GetContactQueryHandler) Handle(
	ctx context.Context,
	query GetContactQuery,
) (GetContactQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetContactQueryResponse{}, err
	}

	var (
		id     uuid.UUID
		userID uuid.NullUUID
		item   GetContactQueryResponse
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, full_name, phone, email, user_id
		FROM contacts
		WHERE id = ?
	`, query.ContactID().Bytes()).Row()

	err := row.Scan(&id, &item.FullName, &item.Phone, &item.Email, &userID)
	if errors.Is(err, sql.ErrNoRows) {
		return GetContactQueryResponse{}, errs.NewObjectNotFoundError("contactId", query.ContactID())
	}
	if err != nil {
		return GetContactQueryResponse{}, err
	}

	if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetContactQueryResponse{}, err
	}
	if userID.Valid {
		owner, ownerErr := kernel.UUIDFromBytes(userID.UUID[:])
		if ownerErr != nil {
			return GetContactQueryResponse{}, ownerErr
		}
		item.Owner = &owner
	}

	caller := query.Caller()
	if !caller.Role.IsAdmin() {
		if item.Owner == nil || !item.Owner.IsEqual(caller.ID) {
			return GetContactQueryResponse{}, errs.NewForbiddenError("contact belongs to another user")
		}
	}

	return item, nil
}
