package repository

import (
	"context"

	"storeadmin/internal/domain/entity"

	"github.com/google/uuid"
)

// PoliciesConfigRepository defines the standard operations for the policies
// configuration aggregate.
type PoliciesConfigRepository interface {
	// FindByStoreID retrieves the store's policies configuration.
	FindByStoreID(ctx context.Context, storeID uuid.UUID) (*entity.PoliciesConfiguration, error)

	// ExistsByStoreID reports whether the store already has a policies configuration.
	ExistsByStoreID(ctx context.Context, storeID uuid.UUID) (bool, error)

	// Create persists a new policies configuration aggregate.
	Create(ctx context.Context, config *entity.PoliciesConfiguration) error

	// Update replaces the stored aggregate, guarded by the optimistic version.
	Update(ctx context.Context, config *entity.PoliciesConfiguration) error

	// DeleteByStoreID removes the store's policies configuration.
	DeleteByStoreID(ctx context.Context, storeID uuid.UUID) error
}
