package usecase

import (
	"context"

	"storeadmin/internal/domain/entity"

	"github.com/google/uuid"
)

// AppsUsecase defines the business operations on a store's apps and sales
// channels configuration.
type AppsUsecase interface {
	// CreateConfiguration creates an empty apps and channels configuration for
	// the store. It fails when the store already has one.
	CreateConfiguration(ctx context.Context, storeID uuid.UUID) (*entity.AppsAndChannelsConfiguration, error)

	// GetConfiguration returns the store's apps and channels configuration.
	GetConfiguration(ctx context.Context, storeID uuid.UUID) (*entity.AppsAndChannelsConfiguration, error)

	// DeleteConfiguration removes the store's apps and channels configuration.
	DeleteConfiguration(ctx context.Context, storeID uuid.UUID) error

	// InstallApp registers a newly installed app.
	InstallApp(ctx context.Context, storeID uuid.UUID, input entity.InstalledAppInput) (*entity.AppsAndChannelsConfiguration, error)

	// UpdateInstalledApp applies a partial update to the named installed app.
	UpdateInstalledApp(ctx context.Context, storeID uuid.UUID, name string, patch entity.InstalledAppPatch) (*entity.AppsAndChannelsConfiguration, error)

	// RemoveInstalledApp deletes the named installed app without recording an
	// uninstall entry.
	RemoveInstalledApp(ctx context.Context, storeID uuid.UUID, name string) (*entity.AppsAndChannelsConfiguration, error)

	// UninstallApp removes the named installed app and records an uninstall
	// entry carrying a snapshot of the app's final state.
	UninstallApp(ctx context.Context, storeID uuid.UUID, name, reason string) (*entity.AppsAndChannelsConfiguration, error)

	// RemoveUninstalledApp purges an uninstall record.
	RemoveUninstalledApp(ctx context.Context, storeID uuid.UUID, name string) (*entity.AppsAndChannelsConfiguration, error)

	// AddSalesChannel registers a new sales channel.
	AddSalesChannel(ctx context.Context, storeID uuid.UUID, input entity.SalesChannelInput) (*entity.AppsAndChannelsConfiguration, error)

	// UpdateSalesChannel applies a partial update to the named sales channel.
	UpdateSalesChannel(ctx context.Context, storeID uuid.UUID, name string, patch entity.SalesChannelPatch) (*entity.AppsAndChannelsConfiguration, error)

	// ToggleSalesChannel activates or deactivates the named sales channel.
	ToggleSalesChannel(ctx context.Context, storeID uuid.UUID, name string, active bool) (*entity.AppsAndChannelsConfiguration, error)

	// RemoveSalesChannel deletes the named sales channel.
	RemoveSalesChannel(ctx context.Context, storeID uuid.UUID, name string) (*entity.AppsAndChannelsConfiguration, error)

	// AddDevelopmentApp registers an in-development app.
	AddDevelopmentApp(ctx context.Context, storeID uuid.UUID, input entity.DevelopmentAppInput) (*entity.AppsAndChannelsConfiguration, error)

	// UpdateDevelopmentApp applies a partial update to the named development app.
	UpdateDevelopmentApp(ctx context.Context, storeID uuid.UUID, name string, patch entity.DevelopmentAppPatch) (*entity.AppsAndChannelsConfiguration, error)

	// RemoveDevelopmentApp deletes the named development app.
	RemoveDevelopmentApp(ctx context.Context, storeID uuid.UUID, name string) (*entity.AppsAndChannelsConfiguration, error)
}
