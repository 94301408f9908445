package ports

import (
	"context"

	"github.com/kikis202/spot/internal/core/domain/model/address"
	"github.com/kikis202/spot/internal/core/domain/model/kernel"
)

// AddressRepository defines the persistence contract for addresses.
type AddressRepository interface {
	// Add persists a new address.
	Add(ctx context.Context, entity *address.Address) error

	// Update persists changes to an existing address.
	Update(ctx context.Context, entity *address.Address) error

	// Get retrieves an address by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*address.Address, error)

	// Exists reports whether an address with the given identifier is stored.
	Exists(ctx context.Context, id kernel.UUID) (bool, error)

	// ReferenceCount counts how many parcels (as origin or destination) and
	// machines point at the address. An address with a non-zero count is
	// frozen: it can be disowned but never amended or deleted.
	ReferenceCount(ctx context.Context, id kernel.UUID) (int64, error)

	// Delete removes an unreferenced address.
	Delete(ctx context.Context, id kernel.UUID) error
}
