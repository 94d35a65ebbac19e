package impl

import (
	"context"
	"testing"

	"storeadmin/internal/domain/entity"
	domainerrors "storeadmin/internal/domain/errors"
	"storeadmin/internal/domain/repository"
	mockRepo "storeadmin/internal/mocks/repository"
	mockService "storeadmin/internal/mocks/service"
	"storeadmin/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// policiesServiceFixtures holds all test dependencies for policies service tests.
type policiesServiceFixtures struct {
	service   usecase.PoliciesUsecase
	txManager *mockRepo.MockTransactionManager
	publisher *mockService.MockEventPublisher
}

func createTestPoliciesService(t *testing.T) policiesServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	publisher := mockService.NewMockEventPublisher(t)
	publisher.EXPECT().PublishConfigChanged(mock.Anything, mock.Anything).Return(nil).Maybe()
	service := NewPoliciesService(txManager, publisher, newDiscardLogger())

	return policiesServiceFixtures{
		service:   service,
		txManager: txManager,
		publisher: publisher,
	}
}

func TestPoliciesService_CreateConfiguration_Success(t *testing.T) {
	fx := createTestPoliciesService(t)

	ctx := context.Background()
	storeID := uuid.New()

	runExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		repo := mockRepo.NewMockPoliciesConfigRepository(t)
		factory.EXPECT().NewPoliciesConfigRepository().Return(repo)
		repo.EXPECT().ExistsByStoreID(ctx, storeID).Return(false, nil)
		repo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.PoliciesConfiguration")).Return(nil)
	})

	config, err := fx.service.CreateConfiguration(ctx, storeID)

	require.NoError(t, err)
	assert.Equal(t, storeID, config.StoreID)
	assert.Empty(t, config.ReturnRules)
}

func TestPoliciesService_AddReturnRule_Success(t *testing.T) {
	fx := createTestPoliciesService(t)

	ctx := context.Background()
	storeID := uuid.New()
	existing := entity.NewPoliciesConfiguration(storeID)

	runExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		repo := mockRepo.NewMockPoliciesConfigRepository(t)
		factory.EXPECT().NewPoliciesConfigRepository().Return(repo)
		repo.EXPECT().FindByStoreID(ctx, storeID).Return(existing, nil)
		repo.EXPECT().Update(ctx, existing).Return(nil)
	})

	config, err := fx.service.AddReturnRule(ctx, storeID, entity.ReturnRuleInput{
		Name:             "Standard returns",
		WindowDays:       30,
		RefundMethod:     entity.RefundOriginalPayment,
		RestockingFeePct: 0,
		Active:           true,
	})

	require.NoError(t, err)
	assert.Len(t, config.ReturnRules, 1)
}

func TestPoliciesService_AddReturnRule_InvalidRefundMethod(t *testing.T) {
	fx := createTestPoliciesService(t)

	ctx := context.Background()
	storeID := uuid.New()
	existing := entity.NewPoliciesConfiguration(storeID)

	runExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		repo := mockRepo.NewMockPoliciesConfigRepository(t)
		factory.EXPECT().NewPoliciesConfigRepository().Return(repo)
		repo.EXPECT().FindByStoreID(ctx, storeID).Return(existing, nil)
	})

	_, err := fx.service.AddReturnRule(ctx, storeID, entity.ReturnRuleInput{
		Name:         "Bad rule",
		WindowDays:   14,
		RefundMethod: entity.RefundMethod("cash_by_mail"),
	})

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "INVALID_VALUE", appErr.ErrorCode())
}

func TestPoliciesService_ToggleReturnRules_Success(t *testing.T) {
	fx := createTestPoliciesService(t)

	ctx := context.Background()
	storeID := uuid.New()
	existing := entity.NewPoliciesConfiguration(storeID)

	runExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		repo := mockRepo.NewMockPoliciesConfigRepository(t)
		factory.EXPECT().NewPoliciesConfigRepository().Return(repo)
		repo.EXPECT().FindByStoreID(ctx, storeID).Return(existing, nil)
		repo.EXPECT().Update(ctx, existing).Return(nil)
	})

	config, err := fx.service.ToggleReturnRules(ctx, storeID, true)

	require.NoError(t, err)
	assert.True(t, config.ReturnRulesEnabled)
}

func TestPoliciesService_AddTemplate_DuplicateName(t *testing.T) {
	fx := createTestPoliciesService(t)

	ctx := context.Background()
	storeID := uuid.New()
	existing := entity.NewPoliciesConfiguration(storeID)
	_, err := existing.AddTemplate(entity.DocumentationTemplateInput{
		Name:    "Terms",
		Kind:    entity.TemplateTermsOfService,
		Content: "These are the terms.",
	})
	require.NoError(t, err)

	runExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		repo := mockRepo.NewMockPoliciesConfigRepository(t)
		factory.EXPECT().NewPoliciesConfigRepository().Return(repo)
		repo.EXPECT().FindByStoreID(ctx, storeID).Return(existing, nil)
	})

	_, err = fx.service.AddTemplate(ctx, storeID, entity.DocumentationTemplateInput{
		Name:    "terms",
		Kind:    entity.TemplatePrivacyPolicy,
		Content: "Duplicate by case.",
	})

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "DUPLICATE", appErr.ErrorCode())
}

func TestPoliciesService_RemoveTemplate_NotFound(t *testing.T) {
	fx := createTestPoliciesService(t)

	ctx := context.Background()
	storeID := uuid.New()
	existing := entity.NewPoliciesConfiguration(storeID)

	runExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		repo := mockRepo.NewMockPoliciesConfigRepository(t)
		factory.EXPECT().NewPoliciesConfigRepository().Return(repo)
		repo.EXPECT().FindByStoreID(ctx, storeID).Return(existing, nil)
	})

	_, err := fx.service.RemoveTemplate(ctx, storeID, "Ghost")

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "NOT_FOUND", appErr.ErrorCode())
}

func TestPoliciesService_UpdateReturnRule_VersionConflict(t *testing.T) {
	fx := createTestPoliciesService(t)

	ctx := context.Background()
	storeID := uuid.New()
	existing := entity.NewPoliciesConfiguration(storeID)
	_, err := existing.AddReturnRule(entity.ReturnRuleInput{
		Name:         "Standard returns",
		WindowDays:   30,
		RefundMethod: entity.RefundStoreCredit,
	})
	require.NoError(t, err)

	runExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		repo := mockRepo.NewMockPoliciesConfigRepository(t)
		factory.EXPECT().NewPoliciesConfigRepository().Return(repo)
		repo.EXPECT().FindByStoreID(ctx, storeID).Return(existing, nil)
		repo.EXPECT().Update(ctx, existing).Return(repository.ErrVersionConflict)
	})

	windowDays := 60
	_, err = fx.service.UpdateReturnRule(ctx, storeID, "Standard returns", entity.ReturnRulePatch{
		WindowDays: &windowDays,
	})

	assert.True(t, errors.Is(err, domainerrors.ErrVersionConflict))
}

func TestPoliciesService_GetConfiguration_NotFound(t *testing.T) {
	fx := createTestPoliciesService(t)

	ctx := context.Background()
	storeID := uuid.New()

	runExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		repo := mockRepo.NewMockPoliciesConfigRepository(t)
		factory.EXPECT().NewPoliciesConfigRepository().Return(repo)
		repo.EXPECT().FindByStoreID(ctx, storeID).Return(nil, repository.ErrConfigNotFound)
	})

	_, err := fx.service.GetConfiguration(ctx, storeID)

	assert.True(t, errors.Is(err, domainerrors.ErrConfigurationNotFound))
}
