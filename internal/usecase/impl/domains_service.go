// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "storeadmin/internal/delivery/context"
	"storeadmin/internal/domain/entity"
	domainerrors "storeadmin/internal/domain/errors"
	"storeadmin/internal/domain/repository"
	"storeadmin/internal/domain/service"
	"storeadmin/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Event section names, one per configuration aggregate.
const (
	sectionDomains  = "domains"
	sectionApps     = "apps_and_channels"
	sectionShipping = "shipping"
	sectionPolicies = "policies"
)

// Event operation names shared by all configuration services.
const (
	opCreated = "created"
	opUpdated = "updated"
	opDeleted = "deleted"
)

// domainsService implements the DomainsUsecase interface.
type domainsService struct {
	txManager repository.TransactionManager
	publisher service.EventPublisher
	logger    *slog.Logger
}

// NewDomainsService is the constructor for domainsService.
func NewDomainsService(
	txManager repository.TransactionManager,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.DomainsUsecase {
	return &domainsService{
		txManager: txManager,
		publisher: publisher,
		logger:    logger,
	}
}

// CreateConfiguration creates the store's domains configuration.
func (srv *domainsService) CreateConfiguration(ctx context.Context, storeID uuid.UUID, domains []entity.DomainInput) (*entity.DomainsConfiguration, error) {
	srv.logger.Info("Creating domains configuration", "storeID", storeID)

	var config *entity.DomainsConfiguration

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewDomainsConfigRepository()

		// 1. Reject a second configuration for the same store
		exists, err := repo.ExistsByStoreID(ctx, storeID)
		if err != nil {
			return errors.Wrap(err, "failed to check domains configuration existence")
		}
		if exists {
			return errors.Wrap(domainerrors.ErrConfigurationAlreadyExists, "domains configuration already exists")
		}

		// 2. Build the aggregate, validating every seed domain
		created, err := entity.NewDomainsConfiguration(storeID, domains)
		if err != nil {
			return errors.WithStack(domainerrors.FromEntityError(err))
		}

		// 3. Persist it
		if err := repo.Create(ctx, created); err != nil {
			return errors.Wrap(err, "failed to create domains configuration")
		}
		config = created

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create domains configuration")
	}

	srv.publishChanged(ctx, storeID, opCreated, config.Version)

	return config, nil
}

// GetConfiguration returns the store's domains configuration.
func (srv *domainsService) GetConfiguration(ctx context.Context, storeID uuid.UUID) (*entity.DomainsConfiguration, error) {
	srv.logger.Debug("Getting domains configuration", "storeID", storeID)

	var config *entity.DomainsConfiguration

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewDomainsConfigRepository().FindByStoreID(ctx, storeID)
		if err != nil {
			if errors.Is(err, repository.ErrConfigNotFound) {
				return errors.Wrap(domainerrors.ErrConfigurationNotFound, "domains configuration not found")
			}

			return errors.Wrap(err, "failed to find domains configuration")
		}
		config = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get domains configuration")
	}

	return config, nil
}

// DeleteConfiguration removes the store's domains configuration entirely.
func (srv *domainsService) DeleteConfiguration(ctx context.Context, storeID uuid.UUID) error {
	srv.logger.Info("Deleting domains configuration", "storeID", storeID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewDomainsConfigRepository()

		exists, err := repo.ExistsByStoreID(ctx, storeID)
		if err != nil {
			return errors.Wrap(err, "failed to check domains configuration existence")
		}
		if !exists {
			return errors.Wrap(domainerrors.ErrConfigurationNotFound, "domains configuration not found")
		}

		if err := repo.DeleteByStoreID(ctx, storeID); err != nil {
			return errors.Wrap(err, "failed to delete domains configuration")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete domains configuration")
	}

	srv.publishChanged(ctx, storeID, opDeleted, 0)

	return nil
}

// AddDomain attaches a new domain to the configuration.
func (srv *domainsService) AddDomain(ctx context.Context, storeID uuid.UUID, input entity.DomainInput) (*entity.DomainsConfiguration, error) {
	srv.logger.Info("Adding domain", "storeID", storeID, "domain", input.Name)

	return srv.mutate(ctx, storeID, func(config *entity.DomainsConfiguration) error {
		_, err := config.AddDomain(input)

		return err
	})
}

// UpdateDomain applies a partial update to the named domain.
func (srv *domainsService) UpdateDomain(ctx context.Context, storeID uuid.UUID, name string, patch entity.DomainPatch) (*entity.DomainsConfiguration, error) {
	srv.logger.Info("Updating domain", "storeID", storeID, "domain", name)

	return srv.mutate(ctx, storeID, func(config *entity.DomainsConfiguration) error {
		_, err := config.UpdateDomain(name, patch)

		return err
	})
}

// RemoveDomain detaches the named domain from the configuration.
func (srv *domainsService) RemoveDomain(ctx context.Context, storeID uuid.UUID, name string) (*entity.DomainsConfiguration, error) {
	srv.logger.Info("Removing domain", "storeID", storeID, "domain", name)

	return srv.mutate(ctx, storeID, func(config *entity.DomainsConfiguration) error {
		return config.RemoveDomain(name)
	})
}

// SetPrincipalDomain marks the named domain as the store's principal domain.
func (srv *domainsService) SetPrincipalDomain(ctx context.Context, storeID uuid.UUID, name string) (*entity.DomainsConfiguration, error) {
	srv.logger.Info("Setting principal domain", "storeID", storeID, "domain", name)

	return srv.mutate(ctx, storeID, func(config *entity.DomainsConfiguration) error {
		return config.SetPrincipalDomain(name)
	})
}

// ToggleGlobalRedirection enables or disables redirection to the principal domain.
func (srv *domainsService) ToggleGlobalRedirection(ctx context.Context, storeID uuid.UUID, enabled bool) (*entity.DomainsConfiguration, error) {
	srv.logger.Info("Toggling global redirection", "storeID", storeID, "enabled", enabled)

	return srv.mutate(ctx, storeID, func(config *entity.DomainsConfiguration) error {
		return config.ToggleGlobalRedirection(enabled)
	})
}

// mutate runs the canonical load-mutate-persist cycle for the domains
// aggregate inside a transaction, then publishes a change event.
func (srv *domainsService) mutate(ctx context.Context, storeID uuid.UUID, apply func(*entity.DomainsConfiguration) error) (*entity.DomainsConfiguration, error) {
	var config *entity.DomainsConfiguration

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewDomainsConfigRepository()

		// 1. Load the aggregate
		found, err := repo.FindByStoreID(ctx, storeID)
		if err != nil {
			if errors.Is(err, repository.ErrConfigNotFound) {
				return errors.Wrap(domainerrors.ErrConfigurationNotFound, "domains configuration not found")
			}

			return errors.Wrap(err, "failed to find domains configuration")
		}

		// 2. Apply the mutation in memory, enforcing aggregate invariants
		if err := apply(found); err != nil {
			return errors.WithStack(domainerrors.FromEntityError(err))
		}

		// 3. Persist the whole aggregate under the optimistic version guard
		if err := repo.Update(ctx, found); err != nil {
			if errors.Is(err, repository.ErrVersionConflict) {
				return errors.Wrap(domainerrors.ErrVersionConflict, "domains configuration was modified concurrently")
			}

			return errors.Wrap(err, "failed to update domains configuration")
		}
		config = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to mutate domains configuration")
	}

	srv.publishChanged(ctx, storeID, opUpdated, config.Version)

	return config, nil
}

// publishChanged emits a config.changed event after a committed write.
// Publishing is best effort: a broker outage must not fail the request.
func (srv *domainsService) publishChanged(ctx context.Context, storeID uuid.UUID, operation string, version int) {
	publishConfigChanged(ctx, srv.publisher, srv.logger, storeID, sectionDomains, operation, version)
}

// publishConfigChanged is shared by all configuration services.
func publishConfigChanged(
	ctx context.Context,
	publisher service.EventPublisher,
	logger *slog.Logger,
	storeID uuid.UUID,
	section, operation string,
	version int,
) {
	if publisher == nil {
		return
	}

	event := &service.ConfigChangedEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.New().String(),
		StoreID:    storeID,
		Section:    section,
		Operation:  operation,
		Version:    version,
		OccurredAt: time.Now(),
	}

	if err := publisher.PublishConfigChanged(ctx, event); err != nil {
		logger.Warn("failed to publish config changed event",
			"error", err, "storeID", storeID, "section", section, "operation", operation)
	}
}
