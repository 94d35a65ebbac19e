package repository

import (
	"context"

	"storeadmin/internal/domain/entity"

	"github.com/google/uuid"
)

// AppsConfigRepository defines the standard operations for the apps and sales
// channels configuration aggregate.
type AppsConfigRepository interface {
	// FindByStoreID retrieves the store's apps and channels configuration.
	FindByStoreID(ctx context.Context, storeID uuid.UUID) (*entity.AppsAndChannelsConfiguration, error)

	// ExistsByStoreID reports whether the store already has an apps configuration.
	ExistsByStoreID(ctx context.Context, storeID uuid.UUID) (bool, error)

	// Create persists a new apps and channels configuration aggregate.
	Create(ctx context.Context, config *entity.AppsAndChannelsConfiguration) error

	// Update replaces the stored aggregate, guarded by the optimistic version.
	Update(ctx context.Context, config *entity.AppsAndChannelsConfiguration) error

	// DeleteByStoreID removes the store's apps and channels configuration.
	DeleteByStoreID(ctx context.Context, storeID uuid.UUID) error
}
