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

// shippingConfigRepository implements repository.ShippingConfigRepository using GORM.
type shippingConfigRepository struct {
	db *gorm.DB
}

// NewShippingConfigRepository is the constructor for shippingConfigRepository.
func NewShippingConfigRepository(db *gorm.DB) repository.ShippingConfigRepository {
	return &shippingConfigRepository{db: db}
}

// FindByStoreID retrieves the shipping configuration of a store.
func (repo *shippingConfigRepository) FindByStoreID(ctx context.Context, storeID uuid.UUID) (*entity.ShippingConfiguration, error) {
	var configM model.ShippingConfigModel
	err := repo.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		First(&configM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConfigNotFound
		}

		return nil, errors.Wrap(err, "failed to find shipping configuration")
	}

	return toShippingConfigEntity(&configM)
}

// ExistsByStoreID reports whether a shipping configuration exists for the store.
func (repo *shippingConfigRepository) ExistsByStoreID(ctx context.Context, storeID uuid.UUID) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.ShippingConfigModel{}).
		Where("store_id = ?", storeID).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check shipping configuration existence")
	}

	return count > 0, nil
}

// Create persists a brand-new shipping configuration.
func (repo *shippingConfigRepository) Create(ctx context.Context, config *entity.ShippingConfiguration) error {
	configM, err := toShippingConfigModel(config)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(configM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.WithStack(domainerrors.ErrConfigurationAlreadyExists)
		}

		return errors.Wrap(err, "failed to create shipping configuration")
	}

	return nil
}

// Update persists the configuration under an optimistic version guard.
func (repo *shippingConfigRepository) Update(ctx context.Context, config *entity.ShippingConfiguration) error {
	loadedVersion := config.Version
	config.Version = loadedVersion + 1

	configM, err := toShippingConfigModel(config)
	if err != nil {
		config.Version = loadedVersion

		return err
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ShippingConfigModel{}).
		Where("store_id = ? AND version = ?", config.StoreID, loadedVersion).
		Updates(map[string]any{
			"payload":    configM.Payload,
			"version":    configM.Version,
			"updated_at": configM.UpdatedAt,
		})
	if result.Error != nil {
		config.Version = loadedVersion

		return errors.Wrap(result.Error, "failed to update shipping configuration")
	}
	if result.RowsAffected == 0 {
		config.Version = loadedVersion

		return repository.ErrVersionConflict
	}

	return nil
}

// DeleteByStoreID removes the shipping configuration of a store.
func (repo *shippingConfigRepository) DeleteByStoreID(ctx context.Context, storeID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Delete(&model.ShippingConfigModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete shipping configuration")
	}
	if result.RowsAffected == 0 {
		return repository.ErrConfigNotFound
	}

	return nil
}
