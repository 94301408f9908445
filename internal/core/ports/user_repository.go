package ports

import (
	"context"

	"github.com/kikis202/spot/internal/core/domain/model/account"
	"github.com/kikis202/spot/internal/core/domain/model/kernel"
)

// UserRepository defines the persistence contract for user accounts.
type UserRepository interface {
	// Add persists a new user account.
	Add(ctx context.Context, entity *account.User) error

	// Update persists changes to an existing user account.
	Update(ctx context.Context, entity *account.User) error

	// Get retrieves a user by their unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*account.User, error)
}
