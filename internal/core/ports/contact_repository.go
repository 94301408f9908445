package ports

import (
	"context"

	"github.com/kikis202/spot/internal/core/domain/model/contact"
	"github.com/kikis202/spot/internal/core/domain/model/kernel"
)

// ContactRepository defines the persistence contract for contact infos.
type ContactRepository interface {
	// Add persists a new contact info.
	Add(ctx context.Context, entity *contact.ContactInfo) error

	// Get retrieves a contact info by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*contact.ContactInfo, error)

	// Exists reports whether a contact with the given identifier is stored.
	Exists(ctx context.Context, id kernel.UUID) (bool, error)
}
