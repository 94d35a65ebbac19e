// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"storeadmin/internal/domain/entity"

	"github.com/google/uuid"
)

// DomainsUsecase defines the business operations on a store's domains
// configuration. Every mutation loads the aggregate, applies the change in
// memory, and persists the whole aggregate back under optimistic locking.
type DomainsUsecase interface {
	// CreateConfiguration creates the store's domains configuration. It fails
	// when the store already has one.
	CreateConfiguration(ctx context.Context, storeID uuid.UUID, domains []entity.DomainInput) (*entity.DomainsConfiguration, error)

	// GetConfiguration returns the store's domains configuration.
	GetConfiguration(ctx context.Context, storeID uuid.UUID) (*entity.DomainsConfiguration, error)

	// DeleteConfiguration removes the store's domains configuration entirely.
	DeleteConfiguration(ctx context.Context, storeID uuid.UUID) error

	// AddDomain attaches a new domain to the configuration.
	AddDomain(ctx context.Context, storeID uuid.UUID, input entity.DomainInput) (*entity.DomainsConfiguration, error)

	// UpdateDomain applies a partial update to the named domain.
	UpdateDomain(ctx context.Context, storeID uuid.UUID, name string, patch entity.DomainPatch) (*entity.DomainsConfiguration, error)

	// RemoveDomain detaches the named domain from the configuration.
	RemoveDomain(ctx context.Context, storeID uuid.UUID, name string) (*entity.DomainsConfiguration, error)

	// SetPrincipalDomain marks the named domain as the store's principal domain.
	SetPrincipalDomain(ctx context.Context, storeID uuid.UUID, name string) (*entity.DomainsConfiguration, error)

	// ToggleGlobalRedirection enables or disables redirection of secondary
	// domains to the principal domain.
	ToggleGlobalRedirection(ctx context.Context, storeID uuid.UUID, enabled bool) (*entity.DomainsConfiguration, error)
}
