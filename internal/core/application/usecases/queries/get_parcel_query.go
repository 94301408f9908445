// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models and bypass the domain aggregates.
package queries

import (
	"errors"
	"time"

	"github.com/kikis202/spot/internal/core/domain/model/account"
	"github.com/kikis202/spot/internal/core/domain/model/kernel"
	"github.com/kikis202/spot/internal/core/domain/model/parcel"
	"github.com/kikis202/spot/internal/pkg/guard"
)

var (
	ErrGetParcelQueryIsNotConstructed = errors.New(
		"GetParcelQuery must be created via NewGetParcelQuery constructor",
	)
)

// GetParcelQuery retrieves a single parcel by its public tracking number.
// The query is public: an anonymous caller receives the parcel state and
// history, an authenticated caller additionally learns whether they sent
// the parcel and whether they track it.
//
// Example:
//
//	query, err := NewGetParcelQuery(trackingNumber, &caller)
//	if err != nil {
//	    return err
//	}
//
//	view, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to look up parcel: %w", err)
//	}
//	fmt.Printf("%s is %s\n", view.TrackingNumber, view.Status)
type GetParcelQuery struct {
	trackingNumber kernel.TrackingNumber
	caller         *account.Caller

	guard guard.ConstructorGuard
}

// NewGetParcelQuery creates a lookup query for the given tracking number.
// Pass a nil caller for anonymous access.
func NewGetParcelQuery(trackingNumber kernel.TrackingNumber, caller *account.Caller) (GetParcelQuery, error) {
	if err := trackingNumber.Validate(); err != nil {
		return GetParcelQuery{}, err
	}
	return GetParcelQuery{
		trackingNumber: trackingNumber,
		caller:         caller,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetParcelQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelQueryIsNotConstructed)
}

// TrackingNumber returns the tracking number being looked up.
func (q GetParcelQuery) TrackingNumber() kernel.TrackingNumber { return q.trackingNumber }

// Caller returns the authenticated caller, or nil for anonymous access.
func (q GetParcelQuery) Caller() *account.Caller { return q.caller }

// ParcelUpdateResponse is a single entry of a parcel's status history.
type ParcelUpdateResponse struct {
	Status    parcel.Status
	Title     string
	CreatedAt time.Time
}

// AddressSummary is the postal address shape embedded in read models.
type AddressSummary struct {
	ID         kernel.UUID
	Street     string
	City       string
	PostalCode string
	Country    string
}

// GetParcelQueryResponse is the public view of a parcel.
// IsSender and IsTracked are nil for anonymous callers.
type GetParcelQueryResponse struct {
	ID             kernel.UUID
	TrackingNumber kernel.TrackingNumber
	Status         parcel.Status
	Size           parcel.Size
	Destination    AddressSummary
	Updates        []ParcelUpdateResponse
	IsSender       *bool
	IsTracked      *bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
