// Package ports defines repository interfaces for the shipping domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"github.com/kikis202/spot/internal/core/domain/model/kernel"
	"github.com/kikis202/spot/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for parcel aggregates and
// their append-only audit trail.
type ParcelRepository interface {
	// Add persists a new parcel aggregate to storage.
	// A tracking-number collision surfaces as a conflict error.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists changes to an existing parcel aggregate.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Get retrieves a parcel aggregate by its unique identifier.
	// Returns an object-not-found error when no such parcel exists.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// GetMany retrieves the parcels with the given identifiers.
	// Returns an object-not-found error naming the first missing ID when any
	// of the requested parcels does not exist, so batch operations fail whole.
	GetMany(ctx context.Context, ids []kernel.UUID) ([]*parcel.Parcel, error)

	// GetByTrackingNumber retrieves a parcel by its public tracking number.
	GetByTrackingNumber(ctx context.Context, trackingNumber kernel.TrackingNumber) (*parcel.Parcel, error)

	// AppendUpdate writes one audit-trail entry. Entries are never modified
	// or deleted afterwards.
	AppendUpdate(ctx context.Context, update *parcel.Update) error

	// GetUpdates retrieves the audit trail of a parcel, newest first.
	GetUpdates(ctx context.Context, parcelID kernel.UUID) ([]*parcel.Update, error)
}
