package postgres

import (
	"context"

	"storeadmin/internal/domain/entity"
	domainerrors "storeadmin/internal/domain/errors"
	"storeadmin/internal/domain/repository"
	"storeadmin/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// appsConfigRepository implements repository.AppsConfigRepository using GORM.
type appsConfigRepository struct {
	db *gorm.DB
}

// NewAppsConfigRepository is the constructor for appsConfigRepository.
func NewAppsConfigRepository(db *gorm.DB) repository.AppsConfigRepository {
	return &appsConfigRepository{db: db}
}

// FindByStoreID retrieves the apps and channels configuration of a store.
func (repo *appsConfigRepository) FindByStoreID(ctx context.Context, storeID uuid.UUID) (*entity.AppsAndChannelsConfiguration, error) {
	var configM model.AppsConfigModel
	err := repo.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		First(&configM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConfigNotFound
		}

		return nil, errors.Wrap(err, "failed to find apps configuration")
	}

	return toAppsConfigEntity(&configM)
}

// ExistsByStoreID reports whether an apps and channels configuration exists for the store.
func (repo *appsConfigRepository) ExistsByStoreID(ctx context.Context, storeID uuid.UUID) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.AppsConfigModel{}).
		Where("store_id = ?", storeID).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check apps configuration existence")
	}

	return count > 0, nil
}

// Create persists a brand-new apps and channels configuration.
func (repo *appsConfigRepository) Create(ctx context.Context, config *entity.AppsAndChannelsConfiguration) error {
	configM, err := toAppsConfigModel(config)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(configM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.WithStack(domainerrors.ErrConfigurationAlreadyExists)
		}

		return errors.Wrap(err, "failed to create apps configuration")
	}

	return nil
}

// Update persists the configuration under an optimistic version guard.
func (repo *appsConfigRepository) Update(ctx context.Context, config *entity.AppsAndChannelsConfiguration) error {
	loadedVersion := config.Version
	config.Version = loadedVersion + 1

	configM, err := toAppsConfigModel(config)
	if err != nil {
		config.Version = loadedVersion

		return err
	}

	result := repo.db.WithContext(ctx).
		Model(&model.AppsConfigModel{}).
		Where("store_id = ? AND version = ?", config.StoreID, loadedVersion).
		Updates(map[string]any{
			"payload":    configM.Payload,
			"version":    configM.Version,
			"updated_at": configM.UpdatedAt,
		})
	if result.Error != nil {
		config.Version = loadedVersion

		return errors.Wrap(result.Error, "failed to update apps configuration")
	}
	if result.RowsAffected == 0 {
		config.Version = loadedVersion

		return repository.ErrVersionConflict
	}

	return nil
}

// DeleteByStoreID removes the apps and channels configuration of a store.
func (repo *appsConfigRepository) DeleteByStoreID(ctx context.Context, storeID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Delete(&model.AppsConfigModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete apps configuration")
	}
	if result.RowsAffected == 0 {
		return repository.ErrConfigNotFound
	}

	return nil
}
