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

// policiesConfigRepository implements repository.PoliciesConfigRepository using GORM.
type policiesConfigRepository struct {
	db *gorm.DB
}

// NewPoliciesConfigRepository is the constructor for policiesConfigRepository.
func NewPoliciesConfigRepository(db *gorm.DB) repository.PoliciesConfigRepository {
	return &policiesConfigRepository{db: db}
}

// FindByStoreID retrieves the policies configuration of a store.
func (repo *policiesConfigRepository) FindByStoreID(ctx context.Context, storeID uuid.UUID) (*entity.PoliciesConfiguration, error) {
	var configM model.PoliciesConfigModel
	err := repo.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		First(&configM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConfigNotFound
		}

		return nil, errors.Wrap(err, "failed to find policies configuration")
	}

	return toPoliciesConfigEntity(&configM)
}

// ExistsByStoreID reports whether a policies configuration exists for the store.
func (repo *policiesConfigRepository) ExistsByStoreID(ctx context.Context, storeID uuid.UUID) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.PoliciesConfigModel{}).
		Where("store_id = ?", storeID).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check policies configuration existence")
	}

	return count > 0, nil
}

// Create persists a brand-new policies configuration.
func (repo *policiesConfigRepository) Create(ctx context.Context, config *entity.PoliciesConfiguration) error {
	configM, err := toPoliciesConfigModel(config)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(configM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.WithStack(domainerrors.ErrConfigurationAlreadyExists)
		}

		return errors.Wrap(err, "failed to create policies configuration")
	}

	return nil
}

// Update persists the configuration under an optimistic version guard.
func (repo *policiesConfigRepository) Update(ctx context.Context, config *entity.PoliciesConfiguration) error {
	loadedVersion := config.Version
	config.Version = loadedVersion + 1

	configM, err := toPoliciesConfigModel(config)
	if err != nil {
		config.Version = loadedVersion

		return err
	}

	result := repo.db.WithContext(ctx).
		Model(&model.PoliciesConfigModel{}).
		Where("store_id = ? AND version = ?", config.StoreID, loadedVersion).
		Updates(map[string]any{
			"payload":    configM.Payload,
			"version":    configM.Version,
			"updated_at": configM.UpdatedAt,
		})
	if result.Error != nil {
		config.Version = loadedVersion

		return errors.Wrap(result.Error, "failed to update policies configuration")
	}
	if result.RowsAffected == 0 {
		config.Version = loadedVersion

		return repository.ErrVersionConflict
	}

	return nil
}

// DeleteByStoreID removes the policies configuration of a store.
func (repo *policiesConfigRepository) DeleteByStoreID(ctx context.Context, storeID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Delete(&model.PoliciesConfigModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete policies configuration")
	}
	if result.RowsAffected == 0 {
		return repository.ErrConfigNotFound
	}

	return nil
}
