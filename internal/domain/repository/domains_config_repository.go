// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"storeadmin/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrConfigNotFound is returned when a store has no persisted configuration
// of the requested kind.
var ErrConfigNotFound = errors.New("configuration not found")

// ErrVersionConflict is returned when an update lost the optimistic-lock race:
// the stored version no longer matches the version the aggregate was loaded at.
var ErrVersionConflict = errors.New("configuration version conflict")

// DomainsConfigRepository defines the standard operations for the domains
// configuration aggregate. Each store owns at most one row; the aggregate is
// stored and replaced whole.
type DomainsConfigRepository interface {
	// FindByStoreID retrieves the store's domains configuration.
	FindByStoreID(ctx context.Context, storeID uuid.UUID) (*entity.DomainsConfiguration, error)

	// ExistsByStoreID reports whether the store already has a domains configuration.
	ExistsByStoreID(ctx context.Context, storeID uuid.UUID) (bool, error)

	// Create persists a new domains configuration aggregate.
	Create(ctx context.Context, config *entity.DomainsConfiguration) error

	// Update replaces the stored aggregate. It fails with ErrVersionConflict
	// when the stored version differs from config.Version, and bumps the
	// version on success.
	Update(ctx context.Context, config *entity.DomainsConfiguration) error

	// DeleteByStoreID removes the store's domains configuration.
	DeleteByStoreID(ctx context.Context, storeID uuid.UUID) error
}
