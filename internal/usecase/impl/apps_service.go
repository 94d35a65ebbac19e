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

// appsService implements the AppsUsecase interface.
type appsService struct {
	txManager repository.TransactionManager
	publisher service.EventPublisher
	logger    *slog.Logger
}

// NewAppsService is the constructor for appsService.
func NewAppsService(
	txManager repository.TransactionManager,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.AppsUsecase {
	return &appsService{
		txManager: txManager,
		publisher: publisher,
		logger:    logger,
	}
}

// CreateConfiguration creates an empty apps and channels configuration.
func (srv *appsService) CreateConfiguration(ctx context.Context, storeID uuid.UUID) (*entity.AppsAndChannelsConfiguration, error) {
	srv.logger.Info("Creating apps configuration", "storeID", storeID)

	var config *entity.AppsAndChannelsConfiguration

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewAppsConfigRepository()

		exists, err := repo.ExistsByStoreID(ctx, storeID)
		if err != nil {
			return errors.Wrap(err, "failed to check apps configuration existence")
		}
		if exists {
			return errors.Wrap(domainerrors.ErrConfigurationAlreadyExists, "apps configuration already exists")
		}

		created := entity.NewAppsAndChannelsConfiguration(storeID)
		if err := repo.Create(ctx, created); err != nil {
			return errors.Wrap(err, "failed to create apps configuration")
		}
		config = created

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create apps configuration")
	}

	publishConfigChanged(ctx, srv.publisher, srv.logger, storeID, sectionApps, opCreated, config.Version)

	return config, nil
}

// GetConfiguration returns the store's apps and channels configuration.
func (srv *appsService) GetConfiguration(ctx context.Context, storeID uuid.UUID) (*entity.AppsAndChannelsConfiguration, error) {
	srv.logger.Debug("Getting apps configuration", "storeID", storeID)

	var config *entity.AppsAndChannelsConfiguration

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewAppsConfigRepository().FindByStoreID(ctx, storeID)
		if err != nil {
			if errors.Is(err, repository.ErrConfigNotFound) {
				return errors.Wrap(domainerrors.ErrConfigurationNotFound, "apps configuration not found")
			}

			return errors.Wrap(err, "failed to find apps configuration")
		}
		config = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get apps configuration")
	}

	return config, nil
}

// DeleteConfiguration removes the store's apps and channels configuration.
func (srv *appsService) DeleteConfiguration(ctx context.Context, storeID uuid.UUID) error {
	srv.logger.Info("Deleting apps configuration", "storeID", storeID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewAppsConfigRepository()

		exists, err := repo.ExistsByStoreID(ctx, storeID)
		if err != nil {
			return errors.Wrap(err, "failed to check apps configuration existence")
		}
		if !exists {
			return errors.Wrap(domainerrors.ErrConfigurationNotFound, "apps configuration not found")
		}

		if err := repo.DeleteByStoreID(ctx, storeID); err != nil {
			return errors.Wrap(err, "failed to delete apps configuration")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete apps configuration")
	}

	publishConfigChanged(ctx, srv.publisher, srv.logger, storeID, sectionApps, opDeleted, 0)

	return nil
}

// InstallApp registers a newly installed app.
func (srv *appsService) InstallApp(ctx context.Context, storeID uuid.UUID, input entity.InstalledAppInput) (*entity.AppsAndChannelsConfiguration, error) {
	srv.logger.Info("Installing app", "storeID", storeID, "app", input.Name)

	return srv.mutate(ctx, storeID, func(config *entity.AppsAndChannelsConfiguration) error {
		_, err := config.AddInstalledApp(input)

		return err
	})
}

// UpdateInstalledApp applies a partial update to the named installed app.
func (srv *appsService) UpdateInstalledApp(ctx context.Context, storeID uuid.UUID, name string, patch entity.InstalledAppPatch) (*entity.AppsAndChannelsConfiguration, error) {
	srv.logger.Info("Updating installed app", "storeID", storeID, "app", name)

	return srv.mutate(ctx, storeID, func(config *entity.AppsAndChannelsConfiguration) error {
		_, err := config.UpdateInstalledApp(name, patch)

		return err
	})
}

// RemoveInstalledApp deletes an installed app without keeping an uninstall record.
func (srv *appsService) RemoveInstalledApp(ctx context.Context, storeID uuid.UUID, name string) (*entity.AppsAndChannelsConfiguration, error) {
	srv.logger.Info("Removing installed app", "storeID", storeID, "app", name)

	return srv.mutate(ctx, storeID, func(config *entity.AppsAndChannelsConfiguration) error {
		return config.RemoveInstalledApp(name)
	})
}

// UninstallApp removes the named app and records an uninstall entry.
func (srv *appsService) UninstallApp(ctx context.Context, storeID uuid.UUID, name, reason string) (*entity.AppsAndChannelsConfiguration, error) {
	srv.logger.Info("Uninstalling app", "storeID", storeID, "app", name)

	return srv.mutate(ctx, storeID, func(config *entity.AppsAndChannelsConfiguration) error {
		_, err := config.UninstallApp(name, reason)

		return err
	})
}

// RemoveUninstalledApp purges an uninstall record.
func (srv *appsService) RemoveUninstalledApp(ctx context.Context, storeID uuid.UUID, name string) (*entity.AppsAndChannelsConfiguration, error) {
	srv.logger.Info("Removing uninstall record", "storeID", storeID, "app", name)

	return srv.mutate(ctx, storeID, func(config *entity.AppsAndChannelsConfiguration) error {
		return config.RemoveUninstalledApp(name)
	})
}

// AddSalesChannel registers a new sales channel.
func (srv *appsService) AddSalesChannel(ctx context.Context, storeID uuid.UUID, input entity.SalesChannelInput) (*entity.AppsAndChannelsConfiguration, error) {
	srv.logger.Info("Adding sales channel", "storeID", storeID, "channel", input.Name)

	return srv.mutate(ctx, storeID, func(config *entity.AppsAndChannelsConfiguration) error {
		_, err := config.AddSalesChannel(input)

		return err
	})
}

// UpdateSalesChannel applies a partial update to the named sales channel.
func (srv *appsService) UpdateSalesChannel(ctx context.Context, storeID uuid.UUID, name string, patch entity.SalesChannelPatch) (*entity.AppsAndChannelsConfiguration, error) {
	srv.logger.Info("Updating sales channel", "storeID", storeID, "channel", name)

	return srv.mutate(ctx, storeID, func(config *entity.AppsAndChannelsConfiguration) error {
		_, err := config.UpdateSalesChannel(name, patch)

		return err
	})
}

// ToggleSalesChannel activates or deactivates the named sales channel.
func (srv *appsService) ToggleSalesChannel(ctx context.Context, storeID uuid.UUID, name string, active bool) (*entity.AppsAndChannelsConfiguration, error) {
	srv.logger.Info("Toggling sales channel", "storeID", storeID, "channel", name, "active", active)

	return srv.mutate(ctx, storeID, func(config *entity.AppsAndChannelsConfiguration) error {
		_, err := config.ToggleSalesChannel(name, active)

		return err
	})
}

// RemoveSalesChannel deletes the named sales channel.
func (srv *appsService) RemoveSalesChannel(ctx context.Context, storeID uuid.UUID, name string) (*entity.AppsAndChannelsConfiguration, error) {
	srv.logger.Info("Removing sales channel", "storeID", storeID, "channel", name)

	return srv.mutate(ctx, storeID, func(config *entity.AppsAndChannelsConfiguration) error {
		return config.RemoveSalesChannel(name)
	})
}

// AddDevelopmentApp registers an in-development app.
func (srv *appsService) AddDevelopmentApp(ctx context.Context, storeID uuid.UUID, input entity.DevelopmentAppInput) (*entity.AppsAndChannelsConfiguration, error) {
	srv.logger.Info("Adding development app", "storeID", storeID, "app", input.Name)

	return srv.mutate(ctx, storeID, func(config *entity.AppsAndChannelsConfiguration) error {
		_, err := config.AddDevelopmentApp(input)

		return err
	})
}

// UpdateDevelopmentApp applies a partial update to the named development app.
func (srv *appsService) UpdateDevelopmentApp(ctx context.Context, storeID uuid.UUID, name string, patch entity.DevelopmentAppPatch) (*entity.AppsAndChannelsConfiguration, error) {
	srv.logger.Info("Updating development app", "storeID", storeID, "app", name)

	return srv.mutate(ctx, storeID, func(config *entity.AppsAndChannelsConfiguration) error {
		_, err := config.UpdateDevelopmentApp(name, patch)

		return err
	})
}

// RemoveDevelopmentApp deletes the named development app.
func (srv *appsService) RemoveDevelopmentApp(ctx context.Context, storeID uuid.UUID, name string) (*entity.AppsAndChannelsConfiguration, error) {
	srv.logger.Info("Removing development app", "storeID", storeID, "app", name)

	return srv.mutate(ctx, storeID, func(config *entity.AppsAndChannelsConfiguration) error {
		return config.RemoveDevelopmentApp(name)
	})
}

// mutate runs the canonical load-mutate-persist cycle for the apps aggregate.
func (srv *appsService) mutate(ctx context.Context, storeID uuid.UUID, apply func(*entity.AppsAndChannelsConfiguration) error) (*entity.AppsAndChannelsConfiguration, error) {
	var config *entity.AppsAndChannelsConfiguration

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewAppsConfigRepository()

		found, err := repo.FindByStoreID(ctx, storeID)
		if err != nil {
			if errors.Is(err, repository.ErrConfigNotFound) {
				return errors.Wrap(domainerrors.ErrConfigurationNotFound, "apps configuration not found")
			}

			return errors.Wrap(err, "failed to find apps configuration")
		}

		if err := apply(found); err != nil {
			return errors.WithStack(domainerrors.FromEntityError(err))
		}

		if err := repo.Update(ctx, found); err != nil {
			if errors.Is(err, repository.ErrVersionConflict) {
				return errors.Wrap(domainerrors.ErrVersionConflict, "apps configuration was modified concurrently")
			}

			return errors.Wrap(err, "failed to update apps configuration")
		}
		config = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to mutate apps configuration")
	}

	publishConfigChanged(ctx, srv.publisher, srv.logger, storeID, sectionApps, opUpdated, config.Version)

	return config, nil
}
