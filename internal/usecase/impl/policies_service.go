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

// policiesService implements the PoliciesUsecase interface.
type policiesService struct {
	txManager repository.TransactionManager
	publisher service.EventPublisher
	logger    *slog.Logger
}

// NewPoliciesService is the constructor for policiesService.
func NewPoliciesService(
	txManager repository.TransactionManager,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.PoliciesUsecase {
	return &policiesService{
		txManager: txManager,
		publisher: publisher,
		logger:    logger,
	}
}

// CreateConfiguration creates an empty policies configuration for the store.
func (srv *policiesService) CreateConfiguration(ctx context.Context, storeID uuid.UUID) (*entity.PoliciesConfiguration, error) {
	srv.logger.Info("Creating policies configuration", "storeID", storeID)

	var config *entity.PoliciesConfiguration

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewPoliciesConfigRepository()

		exists, err := repo.ExistsByStoreID(ctx, storeID)
		if err != nil {
			return errors.Wrap(err, "failed to check policies configuration existence")
		}
		if exists {
			return errors.Wrap(domainerrors.ErrConfigurationAlreadyExists, "policies configuration already exists")
		}

		created := entity.NewPoliciesConfiguration(storeID)
		if err := repo.Create(ctx, created); err != nil {
			return errors.Wrap(err, "failed to create policies configuration")
		}
		config = created

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create policies configuration")
	}

	publishConfigChanged(ctx, srv.publisher, srv.logger, storeID, sectionPolicies, opCreated, config.Version)

	return config, nil
}

// GetConfiguration returns the store's policies configuration.
func (srv *policiesService) GetConfiguration(ctx context.Context, storeID uuid.UUID) (*entity.PoliciesConfiguration, error) {
	srv.logger.Debug("Getting policies configuration", "storeID", storeID)

	var config *entity.PoliciesConfiguration

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewPoliciesConfigRepository().FindByStoreID(ctx, storeID)
		if err != nil {
			if errors.Is(err, repository.ErrConfigNotFound) {
				return errors.Wrap(domainerrors.ErrConfigurationNotFound, "policies configuration not found")
			}

			return errors.Wrap(err, "failed to find policies configuration")
		}
		config = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get policies configuration")
	}

	return config, nil
}

// DeleteConfiguration removes the store's policies configuration.
func (srv *policiesService) DeleteConfiguration(ctx context.Context, storeID uuid.UUID) error {
	srv.logger.Info("Deleting policies configuration", "storeID", storeID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewPoliciesConfigRepository()

		exists, err := repo.ExistsByStoreID(ctx, storeID)
		if err != nil {
			return errors.Wrap(err, "failed to check policies configuration existence")
		}
		if !exists {
			return errors.Wrap(domainerrors.ErrConfigurationNotFound, "policies configuration not found")
		}

		if err := repo.DeleteByStoreID(ctx, storeID); err != nil {
			return errors.Wrap(err, "failed to delete policies configuration")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete policies configuration")
	}

	publishConfigChanged(ctx, srv.publisher, srv.logger, storeID, sectionPolicies, opDeleted, 0)

	return nil
}

// AddReturnRule registers a new return rule.
func (srv *policiesService) AddReturnRule(ctx context.Context, storeID uuid.UUID, input entity.ReturnRuleInput) (*entity.PoliciesConfiguration, error) {
	srv.logger.Info("Adding return rule", "storeID", storeID, "rule", input.Name)

	return srv.mutate(ctx, storeID, func(config *entity.PoliciesConfiguration) error {
		_, err := config.AddReturnRule(input)

		return err
	})
}

// UpdateReturnRule applies a partial update to the named rule.
func (srv *policiesService) UpdateReturnRule(ctx context.Context, storeID uuid.UUID, name string, patch entity.ReturnRulePatch) (*entity.PoliciesConfiguration, error) {
	srv.logger.Info("Updating return rule", "storeID", storeID, "rule", name)

	return srv.mutate(ctx, storeID, func(config *entity.PoliciesConfiguration) error {
		_, err := config.UpdateReturnRule(name, patch)

		return err
	})
}

// RemoveReturnRule deletes the named rule.
func (srv *policiesService) RemoveReturnRule(ctx context.Context, storeID uuid.UUID, name string) (*entity.PoliciesConfiguration, error) {
	srv.logger.Info("Removing return rule", "storeID", storeID, "rule", name)

	return srv.mutate(ctx, storeID, func(config *entity.PoliciesConfiguration) error {
		return config.RemoveReturnRule(name)
	})
}

// ToggleReturnRules switches return handling on or off for the store.
func (srv *policiesService) ToggleReturnRules(ctx context.Context, storeID uuid.UUID, enabled bool) (*entity.PoliciesConfiguration, error) {
	srv.logger.Info("Toggling return rules", "storeID", storeID, "enabled", enabled)

	return srv.mutate(ctx, storeID, func(config *entity.PoliciesConfiguration) error {
		config.ToggleReturnRules(enabled)

		return nil
	})
}

// AddTemplate registers a documentation template.
func (srv *policiesService) AddTemplate(ctx context.Context, storeID uuid.UUID, input entity.DocumentationTemplateInput) (*entity.PoliciesConfiguration, error) {
	srv.logger.Info("Adding documentation template", "storeID", storeID, "template", input.Name)

	return srv.mutate(ctx, storeID, func(config *entity.PoliciesConfiguration) error {
		_, err := config.AddTemplate(input)

		return err
	})
}

// UpdateTemplate applies a partial update to the named template.
func (srv *policiesService) UpdateTemplate(ctx context.Context, storeID uuid.UUID, name string, patch entity.DocumentationTemplatePatch) (*entity.PoliciesConfiguration, error) {
	srv.logger.Info("Updating documentation template", "storeID", storeID, "template", name)

	return srv.mutate(ctx, storeID, func(config *entity.PoliciesConfiguration) error {
		_, err := config.UpdateTemplate(name, patch)

		return err
	})
}

// RemoveTemplate deletes the named template.
func (srv *policiesService) RemoveTemplate(ctx context.Context, storeID uuid.UUID, name string) (*entity.PoliciesConfiguration, error) {
	srv.logger.Info("Removing documentation template", "storeID", storeID, "template", name)

	return srv.mutate(ctx, storeID, func(config *entity.PoliciesConfiguration) error {
		return config.RemoveTemplate(name)
	})
}

// mutate runs the canonical load-mutate-persist cycle for the policies aggregate.
func (srv *policiesService) mutate(ctx context.Context, storeID uuid.UUID, apply func(*entity.PoliciesConfiguration) error) (*entity.PoliciesConfiguration, error) {
	var config *entity.PoliciesConfiguration

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewPoliciesConfigRepository()

		found, err := repo.FindByStoreID(ctx, storeID)
		if err != nil {
			if errors.Is(err, repository.ErrConfigNotFound) {
				return errors.Wrap(domainerrors.ErrConfigurationNotFound, "policies configuration not found")
			}

			return errors.Wrap(err, "failed to find policies configuration")
		}

		if err := apply(found); err != nil {
			return errors.WithStack(domainerrors.FromEntityError(err))
		}

		if err := repo.Update(ctx, found); err != nil {
			if errors.Is(err, repository.ErrVersionConflict) {
				return errors.Wrap(domainerrors.ErrVersionConflict, "policies configuration was modified concurrently")
			}

			return errors.Wrap(err, "failed to update policies configuration")
		}
		config = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to mutate policies configuration")
	}

	publishConfigChanged(ctx, srv.publisher, srv.logger, storeID, sectionPolicies, opUpdated, config.Version)

	return config, nil
}
