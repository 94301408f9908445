package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/kikis202/spot/internal/core/domain/model/kernel"
	"github.com/kikis202/spot/internal/core/domain/model/parcel"
	"github.com/kikis202/spot/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetParcelQueryHandler resolves a tracking number into the public parcel
// view. Reads directly through SQL for optimal performance in the CQRS
// pattern, joining the destination address and the status history.
type GetParcelQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelQueryHandler creates a handler for public parcel lookups.
// Requires a GORM database connection for query execution.
func NewGetParcelQueryHandler(db *gorm.DB) GetParcelQueryHandler {
	return GetParcelQueryHandler{db: db}
}

// Handle executes the lookup. Returns an object-not-found error when the
// tracking number is unknown. History entries come back newest first.
func (h GetParcelQueryHandler) Handle(
	ctx context.Context,
	query GetParcelQuery,
) (GetParcelQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetParcelQueryResponse{}, err
	}

	var (
		id, destinationID, senderID uuid.UUID
		statusStr, sizeStr          string
		street, city                string
		postalCode, country         string
		createdAt, updatedAt        time.Time
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.status,
			p.size,
			p.sender_id,
			p.created_at,
			p.updated_at,
			a.id,
			a.street,
			a.city,
			a.postal_code,
			a.country
		FROM parcels p
		JOIN addresses a ON a.id = p.destination_id
		WHERE p.tracking_number = ?
	`, query.TrackingNumber().String()).Row()

	err := row.Scan(
		&id, &statusStr, &sizeStr, &senderID, &createdAt, &updatedAt,
		&destinationID, &street, &city, &postalCode, &country,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetParcelQueryResponse{}, errs.NewObjectNotFoundError(
			"trackingNumber", query.TrackingNumber().String())
	}
	if err != nil {
		return GetParcelQueryResponse{}, err
	}

	response, err := h.assembleParcelView(
		id, statusStr, sizeStr, createdAt, updatedAt,
		destinationID, street, city, postalCode, country)
	if err != nil {
		return GetParcelQueryResponse{}, err
	}
	response.TrackingNumber = query.TrackingNumber()

	response.Updates, err = h.loadUpdates(ctx, id)
	if err != nil {
		return GetParcelQueryResponse{}, err
	}

	if caller := query.Caller(); caller != nil {
		isSender := caller.ID.Bytes() == senderID
		response.IsSender = &isSender

		isTracked, trackErr := h.isTracked(ctx, caller.ID, id)
		if trackErr != nil {
			return GetParcelQueryResponse{}, trackErr
		}
		response.IsTracked = &isTracked
	}

	return response, nil
}

func (h GetParcelQueryHandler) assembleParcelView(
	id uuid.UUID,
	statusStr, sizeStr string,
	createdAt, updatedAt time.Time,
	destinationID uuid.UUID,
	street, city, postalCode, country string,
) (GetParcelQueryResponse, error) {
	parcelID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetParcelQueryResponse{}, err
	}
	addressID, err := kernel.UUIDFromBytes(destinationID[:])
	if err != nil {
		return GetParcelQueryResponse{}, err
	}
	status, err := parcel.StatusFromString(statusStr)
	if err != nil {
		return GetParcelQueryResponse{}, err
	}
	size, err := parcel.SizeFromString(sizeStr)
	if err != nil {
		return GetParcelQueryResponse{}, err
	}

	return GetParcelQueryResponse{
		ID:     parcelID,
		Status: status,
		Size:   size,
		Destination: AddressSummary{
			ID:         addressID,
			Street:     street,
			City:       city,
			PostalCode: postalCode,
			Country:    country,
		},
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

func (h GetParcelQueryHandler) loadUpdates(
	ctx context.Context,
	parcelID uuid.UUID,
) ([]ParcelUpdateResponse, error) {
	updates := make([]ParcelUpdateResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, title, created_at
		FROM parcel_updates
		WHERE parcel_id = ?
		ORDER BY created_at DESC
	`, parcelID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry ParcelUpdateResponse
		var statusStr string

		if err = rows.Scan(&statusStr, &entry.Title, &entry.CreatedAt); err != nil {
			return nil, err
		}
		entry.Status, err = parcel.StatusFromString(statusStr)
		if err != nil {
			return nil, err
		}
		updates = append(updates, entry)
	}

	return updates, rows.Err()
}

func (h GetParcelQueryHandler) isTracked(
	ctx context.Context,
	userID kernel.UUID,
	parcelID uuid.UUID,
) (bool, error) {
	var tracked bool
	err := h.db.WithContext(ctx).Raw(`
		SELECT EXISTS (
			SELECT 1 FROM subscriptions WHERE user_id = ? AND parcel_id = ?
		)
	`, userID.Bytes(), parcelID).Row().Scan(&tracked)
	return tracked, err
}
