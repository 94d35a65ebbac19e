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

// domainsConfigRepository implements repository.DomainsConfigRepository using GORM.
type domainsConfigRepository struct {
	db *gorm.DB
}

// NewDomainsConfigRepository is the constructor for domainsConfigRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewDomainsConfigRepository(db *gorm.DB) repository.DomainsConfigRepository {
	return &domainsConfigRepository{db: db}
}

// FindByStoreID retrieves the domains configuration of a store.
func (repo *domainsConfigRepository) FindByStoreID(ctx context.Context, storeID uuid.UUID) (*entity.DomainsConfiguration, error) {
	var configM model.DomainsConfigModel
	err := repo.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		First(&configM).Error
	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConfigNotFound
		}

		return nil, errors.Wrap(err, "failed to find domains configuration")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toDomainsConfigEntity(&configM)
}

// ExistsByStoreID reports whether a domains configuration exists for the store.
func (repo *domainsConfigRepository) ExistsByStoreID(ctx context.Context, storeID uuid.UUID) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.DomainsConfigModel{}).
		Where("store_id = ?", storeID).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check domains configuration existence")
	}

	return count > 0, nil
}

// Create persists a brand-new domains configuration.
func (repo *domainsConfigRepository) Create(ctx context.Context, config *entity.DomainsConfiguration) error {
	configM, err := toDomainsConfigModel(config)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(configM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.WithStack(domainerrors.ErrConfigurationAlreadyExists)
		}

		return errors.Wrap(err, "failed to create domains configuration")
	}

	return nil
}

// Update persists the configuration under an optimistic version guard.
// The UPDATE matches the version the caller loaded; zero affected rows means
// a concurrent writer got there first and the caller must retry.
func (repo *domainsConfigRepository) Update(ctx context.Context, config *entity.DomainsConfiguration) error {
	loadedVersion := config.Version
	config.Version = loadedVersion + 1

	configM, err := toDomainsConfigModel(config)
	if err != nil {
		config.Version = loadedVersion

		return err
	}

	result := repo.db.WithContext(ctx).
		Model(&model.DomainsConfigModel{}).
		Where("store_id = ? AND version = ?", config.StoreID, loadedVersion).
		Updates(map[string]any{
			"payload":    configM.Payload,
			"version":    configM.Version,
			"updated_at": configM.UpdatedAt,
		})
	if result.Error != nil {
		config.Version = loadedVersion

		return errors.Wrap(result.Error, "failed to update domains configuration")
	}
	if result.RowsAffected == 0 {
		config.Version = loadedVersion

		return repository.ErrVersionConflict
	}

	return nil
}

// DeleteByStoreID removes the domains configuration of a store.
func (repo *domainsConfigRepository) DeleteByStoreID(ctx context.Context, storeID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Delete(&model.DomainsConfigModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete domains configuration")
	}
	if result.RowsAffected == 0 {
		return repository.ErrConfigNotFound
	}

	return nil
}
