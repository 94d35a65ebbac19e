package usecase

import (
	"context"

	"storeadmin/internal/domain/entity"

	"github.com/google/uuid"
)

// PoliciesUsecase defines the business operations on a store's policies
// configuration.
type PoliciesUsecase interface {
	// CreateConfiguration creates an empty policies configuration for the
	// store. It fails when the store already has one.
	CreateConfiguration(ctx context.Context, storeID uuid.UUID) (*entity.PoliciesConfiguration, error)

	// GetConfiguration returns the store's policies configuration.
	GetConfiguration(ctx context.Context, storeID uuid.UUID) (*entity.PoliciesConfiguration, error)

	// DeleteConfiguration removes the store's policies configuration.
	DeleteConfiguration(ctx context.Context, storeID uuid.UUID) error

	// AddReturnRule registers a new return rule.
	AddReturnRule(ctx context.Context, storeID uuid.UUID, input entity.ReturnRuleInput) (*entity.PoliciesConfiguration, error)

	// UpdateReturnRule applies a partial update to the named rule.
	UpdateReturnRule(ctx context.Context, storeID uuid.UUID, name string, patch entity.ReturnRulePatch) (*entity.PoliciesConfiguration, error)

	// RemoveReturnRule deletes the named rule.
	RemoveReturnRule(ctx context.Context, storeID uuid.UUID, name string) (*entity.PoliciesConfiguration, error)

	// ToggleReturnRules switches return handling on or off for the store.
	ToggleReturnRules(ctx context.Context, storeID uuid.UUID, enabled bool) (*entity.PoliciesConfiguration, error)

	// AddTemplate registers a documentation template.
	AddTemplate(ctx context.Context, storeID uuid.UUID, input entity.DocumentationTemplateInput) (*entity.PoliciesConfiguration, error)

	// UpdateTemplate applies a partial update to the named template.
	UpdateTemplate(ctx context.Context, storeID uuid.UUID, name string, patch entity.DocumentationTemplatePatch) (*entity.PoliciesConfiguration, error)

	// RemoveTemplate deletes the named template.
	RemoveTemplate(ctx context.Context, storeID uuid.UUID, name string) (*entity.PoliciesConfiguration, error)
}
