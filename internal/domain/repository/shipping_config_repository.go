package repository

import (
	"context"

	"storeadmin/internal/domain/entity"

	"github.com/google/uuid"
)

// ShippingConfigRepository defines the standard operations for the shipping
// configuration aggregate.
type ShippingConfigRepository interface {
	// FindByStoreID retrieves the store's shipping configuration.
	FindByStoreID(ctx context.Context, storeID uuid.UUID) (*entity.ShippingConfiguration, error)

	// ExistsByStoreID reports whether the store already has a shipping configuration.
	ExistsByStoreID(ctx context.Context, storeID uuid.UUID) (bool, error)

	// Create persists a new shipping configuration aggregate.
	Create(ctx context.Context, config *entity.ShippingConfiguration) error

	// Update replaces the stored aggregate, guarded by the optimistic version.
	Update(ctx context.Context, config *entity.ShippingConfiguration) error

	// DeleteByStoreID removes the store's shipping configuration.
	DeleteByStoreID(ctx context.Context, storeID uuid.UUID) error
}
