package impl

import (
	"context"
	"log/slog"

	"storeadmin/internal/domain/entity"
	domainerrors "storeadmin/internal/domain/errors"
	"storeadmin/internal/domain/repository"
	"storeadmin/internal/domain/service"
	"storeadmin/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// shippingService implements the ShippingUsecase interface.
type shippingService struct {
	txManager repository.TransactionManager
	publisher service.EventPublisher
	logger    *slog.Logger
}

// NewShippingService is the constructor for shippingService.
func NewShippingService(
	txManager repository.TransactionManager,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.ShippingUsecase {
	return &shippingService{
		txManager: txManager,
		publisher: publisher,
		logger:    logger,
	}
}

// CreateConfiguration creates an empty shipping configuration for the store.
func (srv *shippingService) CreateConfiguration(ctx context.Context, storeID uuid.UUID) (*entity.ShippingConfiguration, error) {
	srv.logger.Info("Creating shipping configuration", "storeID", storeID)

	var config *entity.ShippingConfiguration

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewShippingConfigRepository()

		exists, err := repo.ExistsByStoreID(ctx, storeID)
		if err != nil {
			return errors.Wrap(err, "failed to check shipping configuration existence")
		}
		if exists {
			return errors.Wrap(domainerrors.ErrConfigurationAlreadyExists, "shipping configuration already exists")
		}

		created := entity.NewShippingConfiguration(storeID)
		if err := repo.Create(ctx, created); err != nil {
			return errors.Wrap(err, "failed to create shipping configuration")
		}
		config = created

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create shipping configuration")
	}

	publishConfigChanged(ctx, srv.publisher, srv.logger, storeID, sectionShipping, opCreated, config.Version)

	return config, nil
}

// GetConfiguration returns the store's shipping configuration.
func (srv *shippingService) GetConfiguration(ctx context.Context, storeID uuid.UUID) (*entity.ShippingConfiguration, error) {
	srv.logger.Debug("Getting shipping configuration", "storeID", storeID)

	var config *entity.ShippingConfiguration

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewShippingConfigRepository().FindByStoreID(ctx, storeID)
		if err != nil {
			if errors.Is(err, repository.ErrConfigNotFound) {
				return errors.Wrap(domainerrors.ErrConfigurationNotFound, "shipping configuration not found")
			}

			return errors.Wrap(err, "failed to find shipping configuration")
		}
		config = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get shipping configuration")
	}

	return config, nil
}

// DeleteConfiguration removes the store's shipping configuration.
func (srv *shippingService) DeleteConfiguration(ctx context.Context, storeID uuid.UUID) error {
	srv.logger.Info("Deleting shipping configuration", "storeID", storeID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewShippingConfigRepository()

		exists, err := repo.ExistsByStoreID(ctx, storeID)
		if err != nil {
			return errors.Wrap(err, "failed to check shipping configuration existence")
		}
		if !exists {
			return errors.Wrap(domainerrors.ErrConfigurationNotFound, "shipping configuration not found")
		}

		if err := repo.DeleteByStoreID(ctx, storeID); err != nil {
			return errors.Wrap(err, "failed to delete shipping configuration")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete shipping configuration")
	}

	publishConfigChanged(ctx, srv.publisher, srv.logger, storeID, sectionShipping, opDeleted, 0)

	return nil
}

// AddShippingProfile registers a new shipping profile.
func (srv *shippingService) AddShippingProfile(ctx context.Context, storeID uuid.UUID, input entity.ShippingProfileInput) (*entity.ShippingConfiguration, error) {
	srv.logger.Info("Adding shipping profile", "storeID", storeID, "profile", input.Name)

	return srv.mutate(ctx, storeID, func(config *entity.ShippingConfiguration) error {
		_, err := config.AddShippingProfile(input)

		return err
	})
}

// UpdateShippingProfile applies a partial update to the named profile.
func (srv *shippingService) UpdateShippingProfile(ctx context.Context, storeID uuid.UUID, name string, patch entity.ShippingProfilePatch) (*entity.ShippingConfiguration, error) {
	srv.logger.Info("Updating shipping profile", "storeID", storeID, "profile", name)

	return srv.mutate(ctx, storeID, func(config *entity.ShippingConfiguration) error {
		_, err := config.UpdateShippingProfile(name, patch)

		return err
	})
}

// RemoveShippingProfile deletes the named profile.
func (srv *shippingService) RemoveShippingProfile(ctx context.Context, storeID uuid.UUID, name string) (*entity.ShippingConfiguration, error) {
	srv.logger.Info("Removing shipping profile", "storeID", storeID, "profile", name)

	return srv.mutate(ctx, storeID, func(config *entity.ShippingConfiguration) error {
		return config.RemoveShippingProfile(name)
	})
}

// AddDeliveryMethod registers a delivery method.
func (srv *shippingService) AddDeliveryMethod(ctx context.Context, storeID uuid.UUID, input entity.DeliveryMethodInput) (*entity.ShippingConfiguration, error) {
	srv.logger.Info("Adding delivery method", "storeID", storeID, "type", input.Type)

	return srv.mutate(ctx, storeID, func(config *entity.ShippingConfiguration) error {
		_, err := config.AddDeliveryMethod(input)

		return err
	})
}

// UpdateDeliveryMethod applies a partial update to the method of the given type.
func (srv *shippingService) UpdateDeliveryMethod(ctx context.Context, storeID uuid.UUID, methodType entity.DeliveryMethodType, patch entity.DeliveryMethodPatch) (*entity.ShippingConfiguration, error) {
	srv.logger.Info("Updating delivery method", "storeID", storeID, "type", methodType)

	return srv.mutate(ctx, storeID, func(config *entity.ShippingConfiguration) error {
		_, err := config.UpdateDeliveryMethod(methodType, patch)

		return err
	})
}

// ToggleDeliveryMethod enables or disables the method of the given type.
func (srv *shippingService) ToggleDeliveryMethod(ctx context.Context, storeID uuid.UUID, methodType entity.DeliveryMethodType, enabled bool) (*entity.ShippingConfiguration, error) {
	srv.logger.Info("Toggling delivery method", "storeID", storeID, "type", methodType, "enabled", enabled)

	return srv.mutate(ctx, storeID, func(config *entity.ShippingConfiguration) error {
		_, err := config.ToggleDeliveryMethod(methodType, enabled)

		return err
	})
}

// RemoveDeliveryMethod deletes the method of the given type.
func (srv *shippingService) RemoveDeliveryMethod(ctx context.Context, storeID uuid.UUID, methodType entity.DeliveryMethodType) (*entity.ShippingConfiguration, error) {
	srv.logger.Info("Removing delivery method", "storeID", storeID, "type", methodType)

	return srv.mutate(ctx, storeID, func(config *entity.ShippingConfiguration) error {
		return config.RemoveDeliveryMethod(methodType)
	})
}

// AddPackaging registers a packaging option.
func (srv *shippingService) AddPackaging(ctx context.Context, storeID uuid.UUID, input entity.PackagingInput) (*entity.ShippingConfiguration, error) {
	srv.logger.Info("Adding packaging", "storeID", storeID, "packaging", input.Name)

	return srv.mutate(ctx, storeID, func(config *entity.ShippingConfiguration) error {
		_, err := config.AddPackaging(input)

		return err
	})
}

// UpdatePackaging applies a partial update to the packaging with the given ID.
func (srv *shippingService) UpdatePackaging(ctx context.Context, storeID uuid.UUID, packagingID uuid.UUID, patch entity.PackagingPatch) (*entity.ShippingConfiguration, error) {
	srv.logger.Info("Updating packaging", "storeID", storeID, "packagingID", packagingID)

	return srv.mutate(ctx, storeID, func(config *entity.ShippingConfiguration) error {
		_, err := config.UpdatePackaging(packagingID, patch)

		return err
	})
}

// RemovePackaging deletes the packaging with the given ID.
func (srv *shippingService) RemovePackaging(ctx context.Context, storeID uuid.UUID, packagingID uuid.UUID) (*entity.ShippingConfiguration, error) {
	srv.logger.Info("Removing packaging", "storeID", storeID, "packagingID", packagingID)

	return srv.mutate(ctx, storeID, func(config *entity.ShippingConfiguration) error {
		return config.RemovePackaging(packagingID)
	})
}

// SetDefaultPackaging marks the packaging with the given ID as the default.
func (srv *shippingService) SetDefaultPackaging(ctx context.Context, storeID uuid.UUID, packagingID uuid.UUID) (*entity.ShippingConfiguration, error) {
	srv.logger.Info("Setting default packaging", "storeID", storeID, "packagingID", packagingID)

	return srv.mutate(ctx, storeID, func(config *entity.ShippingConfiguration) error {
		_, err := config.SetDefaultPackaging(packagingID)

		return err
	})
}

// AddTransportProvider registers a transport provider.
func (srv *shippingService) AddTransportProvider(ctx context.Context, storeID uuid.UUID, input entity.TransportProviderInput) (*entity.ShippingConfiguration, error) {
	srv.logger.Info("Adding transport provider", "storeID", storeID, "provider", input.Name)

	return srv.mutate(ctx, storeID, func(config *entity.ShippingConfiguration) error {
		_, err := config.AddTransportProvider(input)

		return err
	})
}

// UpdateTransportProvider applies a partial update to the named provider.
func (srv *shippingService) UpdateTransportProvider(ctx context.Context, storeID uuid.UUID, name string, patch entity.TransportProviderPatch) (*entity.ShippingConfiguration, error) {
	srv.logger.Info("Updating transport provider", "storeID", storeID, "provider", name)

	return srv.mutate(ctx, storeID, func(config *entity.ShippingConfiguration) error {
		_, err := config.UpdateTransportProvider(name, patch)

		return err
	})
}

// RemoveTransportProvider deletes the named provider.
func (srv *shippingService) RemoveTransportProvider(ctx context.Context, storeID uuid.UUID, name string) (*entity.ShippingConfiguration, error) {
	srv.logger.Info("Removing transport provider", "storeID", storeID, "provider", name)

	return srv.mutate(ctx, storeID, func(config *entity.ShippingConfiguration) error {
		return config.RemoveTransportProvider(name)
	})
}

// mutate runs the canonical load-mutate-persist cycle for the shipping aggregate.
func (srv *shippingService) mutate(ctx context.Context, storeID uuid.UUID, apply func(*entity.ShippingConfiguration) error) (*entity.ShippingConfiguration, error) {
	var config *entity.ShippingConfiguration

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewShippingConfigRepository()

		found, err := repo.FindByStoreID(ctx, storeID)
		if err != nil {
			if errors.Is(err, repository.ErrConfigNotFound) {
				return errors.Wrap(domainerrors.ErrConfigurationNotFound, "shipping configuration not found")
			}

			return errors.Wrap(err, "failed to find shipping configuration")
		}

		if err := apply(found); err != nil {
			return errors.WithStack(domainerrors.FromEntityError(err))
		}

		if err := repo.Update(ctx, found); err != nil {
			if errors.Is(err, repository.ErrVersionConflict) {
				return errors.Wrap(domainerrors.ErrVersionConflict, "shipping configuration was modified concurrently")
			}

			return errors.Wrap(err, "failed to update shipping configuration")
		}
		config = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to mutate shipping configuration")
	}

	publishConfigChanged(ctx, srv.publisher, srv.logger, storeID, sectionShipping, opUpdated, config.Version)

	return config, nil
}
