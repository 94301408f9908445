package ports

import (
	"context"

	"github.com/kikis202/spot/internal/core/domain/model/kernel"
	"github.com/kikis202/spot/internal/core/domain/model/parcel"
)

// SubscriptionRepository defines the persistence contract for tracking
// subscriptions. Uniqueness of the (user, parcel) pair is enforced by the
// storage layer; a duplicate Add surfaces as a conflict error.
type SubscriptionRepository interface {
	// Add persists a new tracking subscription.
	// Returns a conflict error when the user already tracks the parcel.
	Add(ctx context.Context, entity *parcel.Subscription) error

	// Remove deletes the subscription of the given user for the given parcel.
	// Returns an object-not-found error when no such subscription exists.
	Remove(ctx context.Context, userID, parcelID kernel.UUID) error

	// Exists reports whether the user tracks the parcel.
	Exists(ctx context.Context, userID, parcelID kernel.UUID) (bool, error)
}
