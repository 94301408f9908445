package parcel

import (
	"errors"
	"time"

	"github.com/kikis202/spot/internal/core/domain/model/kernel"
)

// ErrSubscriptionIsNotConstructed is returned when a Subscription was not
// created via NewSubscription.
var ErrSubscriptionIsNotConstructed = errors.New("Subscription must be created via NewSubscription")

// Subscription records a user's voluntary interest in a parcel's status
// updates. A user can hold at most one subscription per parcel; the
// persistence layer enforces uniqueness on the (userID, parcelID) pair and a
// duplicate insert surfaces as a conflict.
type Subscription struct {
	userID    kernel.UUID
	parcelID  kernel.UUID
	createdAt time.Time

	isConstructed bool
}

// NewSubscription creates a tracking subscription for the given user and parcel.
func NewSubscription(userID, parcelID kernel.UUID) (*Subscription, error) {
	if err := errors.Join(userID.Validate(), parcelID.Validate()); err != nil {
		return nil, err
	}

	return &Subscription{
		userID:        userID,
		parcelID:      parcelID,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}, nil
}

// Validate ensures the Subscription instance was properly constructed.
func (s *Subscription) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSubscriptionIsNotConstructed
	}
	return nil
}

// UserID returns the subscribed user.
func (s *Subscription) UserID() kernel.UUID { return s.userID }

// ParcelID returns the tracked parcel.
func (s *Subscription) ParcelID() kernel.UUID { return s.parcelID }

// CreatedAt returns the time the subscription was created.
func (s *Subscription) CreatedAt() time.Time { return s.createdAt }
