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

// domainsServiceFixtures holds all test dependencies for domains service tests.
type domainsServiceFixtures struct {
	service   usecase.DomainsUsecase
	txManager *mockRepo.MockTransactionManager
	publisher *mockService.MockEventPublisher
}

func createTestDomainsService(t *testing.T) domainsServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	publisher := mockService.NewMockEventPublisher(t)
	publisher.EXPECT().PublishConfigChanged(mock.Anything, mock.Anything).Return(nil).Maybe()
	service := NewDomainsService(txManager, publisher, newDiscardLogger())

	return domainsServiceFixtures{
		service:   service,
		txManager: txManager,
		publisher: publisher,
	}
}

func seedDomainsConfig(t *testing.T, storeID uuid.UUID, names ...string) *entity.DomainsConfiguration {
	t.Helper()

	inputs := make([]entity.DomainInput, 0, len(names))
	for _, name := range names {
		inputs = append(inputs, entity.DomainInput{
			Name:            name,
			Kind:            entity.DomainKindSecondary,
			ConnectionState: entity.DomainStateConnected,
			Source:          entity.DomainSourceExternal,
		})
	}

	config, err := entity.NewDomainsConfiguration(storeID, inputs)
	require.NoError(t, err)

	return config
}

func TestDomainsService_CreateConfiguration_Success(t *testing.T) {
	fx := createTestDomainsService(t)

	ctx := context.Background()
	storeID := uuid.New()
	inputs := []entity.DomainInput{{
		Name:            "shop.example.com",
		Kind:            entity.DomainKindPrincipal,
		ConnectionState: entity.DomainStateConnected,
		Source:          entity.DomainSourceExternal,
	}}

	runExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		repo := mockRepo.NewMockDomainsConfigRepository(t)
		factory.EXPECT().NewDomainsConfigRepository().Return(repo)
		repo.EXPECT().ExistsByStoreID(ctx, storeID).Return(false, nil)
		repo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.DomainsConfiguration")).Return(nil)
	})

	config, err := fx.service.CreateConfiguration(ctx, storeID, inputs)

	require.NoError(t, err)
	assert.Equal(t, storeID, config.StoreID)
	assert.Len(t, config.Domains, 1)
}

func TestDomainsService_CreateConfiguration_AlreadyExists(t *testing.T) {
	fx := createTestDomainsService(t)

	ctx := context.Background()
	storeID := uuid.New()

	runExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		repo := mockRepo.NewMockDomainsConfigRepository(t)
		factory.EXPECT().NewDomainsConfigRepository().Return(repo)
		repo.EXPECT().ExistsByStoreID(ctx, storeID).Return(true, nil)
	})

	config, err := fx.service.CreateConfiguration(ctx, storeID, nil)

	assert.Nil(t, config)
	assert.True(t, errors.Is(err, domainerrors.ErrConfigurationAlreadyExists))
}

func TestDomainsService_CreateConfiguration_InvalidSeedDomain(t *testing.T) {
	fx := createTestDomainsService(t)

	ctx := context.Background()
	storeID := uuid.New()
	inputs := []entity.DomainInput{{
		Name:            "not a hostname",
		Kind:            entity.DomainKindSecondary,
		ConnectionState: entity.DomainStateConnected,
		Source:          entity.DomainSourceExternal,
	}}

	runExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		repo := mockRepo.NewMockDomainsConfigRepository(t)
		factory.EXPECT().NewDomainsConfigRepository().Return(repo)
		repo.EXPECT().ExistsByStoreID(ctx, storeID).Return(false, nil)
	})

	_, err := fx.service.CreateConfiguration(ctx, storeID, inputs)

	assert.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "INVALID_VALUE", appErr.ErrorCode())
}

func TestDomainsService_GetConfiguration_Success(t *testing.T) {
	fx := createTestDomainsService(t)

	ctx := context.Background()
	storeID := uuid.New()
	existing := seedDomainsConfig(t, storeID, "shop.example.com")

	runExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		repo := mockRepo.NewMockDomainsConfigRepository(t)
		factory.EXPECT().NewDomainsConfigRepository().Return(repo)
		repo.EXPECT().FindByStoreID(ctx, storeID).Return(existing, nil)
	})

	config, err := fx.service.GetConfiguration(ctx, storeID)

	require.NoError(t, err)
	assert.Equal(t, existing, config)
}

func TestDomainsService_GetConfiguration_NotFound(t *testing.T) {
	fx := createTestDomainsService(t)

	ctx := context.Background()
	storeID := uuid.New()

	runExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		repo := mockRepo.NewMockDomainsConfigRepository(t)
		factory.EXPECT().NewDomainsConfigRepository().Return(repo)
		repo.EXPECT().FindByStoreID(ctx, storeID).Return(nil, repository.ErrConfigNotFound)
	})

	config, err := fx.service.GetConfiguration(ctx, storeID)

	assert.Nil(t, config)
	assert.True(t, errors.Is(err, domainerrors.ErrConfigurationNotFound))
}

func TestDomainsService_AddDomain_Success(t *testing.T) {
	fx := createTestDomainsService(t)

	ctx := context.Background()
	storeID := uuid.New()
	existing := seedDomainsConfig(t, storeID, "shop.example.com")

	runExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		repo := mockRepo.NewMockDomainsConfigRepository(t)
		factory.EXPECT().NewDomainsConfigRepository().Return(repo)
		repo.EXPECT().FindByStoreID(ctx, storeID).Return(existing, nil)
		repo.EXPECT().Update(ctx, existing).Return(nil)
	})

	config, err := fx.service.AddDomain(ctx, storeID, entity.DomainInput{
		Name:            "blog.example.com",
		Kind:            entity.DomainKindSecondary,
		ConnectionState: entity.DomainStateVerifying,
		Source:          entity.DomainSourceExternal,
	})

	require.NoError(t, err)
	assert.Len(t, config.Domains, 2)
}

func TestDomainsService_AddDomain_Duplicate(t *testing.T) {
	fx := createTestDomainsService(t)

	ctx := context.Background()
	storeID := uuid.New()
	existing := seedDomainsConfig(t, storeID, "shop.example.com")

	runExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		repo := mockRepo.NewMockDomainsConfigRepository(t)
		factory.EXPECT().NewDomainsConfigRepository().Return(repo)
		repo.EXPECT().FindByStoreID(ctx, storeID).Return(existing, nil)
	})

	_, err := fx.service.AddDomain(ctx, storeID, entity.DomainInput{
		Name:            "SHOP.example.com",
		Kind:            entity.DomainKindSecondary,
		ConnectionState: entity.DomainStateConnected,
		Source:          entity.DomainSourceExternal,
	})

	assert.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "DUPLICATE", appErr.ErrorCode())
}

func TestDomainsService_UpdateDomain_VersionConflict(t *testing.T) {
	fx := createTestDomainsService(t)

	ctx := context.Background()
	storeID := uuid.New()
	existing := seedDomainsConfig(t, storeID, "shop.example.com")

	runExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		repo := mockRepo.NewMockDomainsConfigRepository(t)
		factory.EXPECT().NewDomainsConfigRepository().Return(repo)
		repo.EXPECT().FindByStoreID(ctx, storeID).Return(existing, nil)
		repo.EXPECT().Update(ctx, existing).Return(repository.ErrVersionConflict)
	})

	sslActive := true
	_, err := fx.service.UpdateDomain(ctx, storeID, "shop.example.com", entity.DomainPatch{
		SSLActive: &sslActive,
	})

	assert.True(t, errors.Is(err, domainerrors.ErrVersionConflict))
}

func TestDomainsService_RemoveDomain_PrincipalGuard(t *testing.T) {
	fx := createTestDomainsService(t)

	ctx := context.Background()
	storeID := uuid.New()
	existing := seedDomainsConfig(t, storeID, "shop.example.com", "blog.example.com")
	require.NoError(t, existing.SetPrincipalDomain("shop.example.com"))
	require.NoError(t, existing.ToggleGlobalRedirection(true))

	runExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		repo := mockRepo.NewMockDomainsConfigRepository(t)
		factory.EXPECT().NewDomainsConfigRepository().Return(repo)
		repo.EXPECT().FindByStoreID(ctx, storeID).Return(existing, nil)
	})

	_, err := fx.service.RemoveDomain(ctx, storeID, "shop.example.com")

	assert.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "INVALID_VALUE", appErr.ErrorCode())
}

func TestDomainsService_SetPrincipalDomain_Success(t *testing.T) {
	fx := createTestDomainsService(t)

	ctx := context.Background()
	storeID := uuid.New()
	existing := seedDomainsConfig(t, storeID, "shop.example.com")

	runExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		repo := mockRepo.NewMockDomainsConfigRepository(t)
		factory.EXPECT().NewDomainsConfigRepository().Return(repo)
		repo.EXPECT().FindByStoreID(ctx, storeID).Return(existing, nil)
		repo.EXPECT().Update(ctx, existing).Return(nil)
	})

	config, err := fx.service.SetPrincipalDomain(ctx, storeID, "shop.example.com")

	require.NoError(t, err)
	assert.Equal(t, "shop.example.com", config.PrincipalDomain)
}

func TestDomainsService_ToggleGlobalRedirection_RequiresPrincipal(t *testing.T) {
	fx := createTestDomainsService(t)

	ctx := context.Background()
	storeID := uuid.New()
	existing := seedDomainsConfig(t, storeID, "shop.example.com")

	runExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		repo := mockRepo.NewMockDomainsConfigRepository(t)
		factory.EXPECT().NewDomainsConfigRepository().Return(repo)
		repo.EXPECT().FindByStoreID(ctx, storeID).Return(existing, nil)
	})

	_, err := fx.service.ToggleGlobalRedirection(ctx, storeID, true)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "INVALID_VALUE", appErr.ErrorCode())
}

func TestDomainsService_DeleteConfiguration_Success(t *testing.T) {
	fx := createTestDomainsService(t)

	ctx := context.Background()
	storeID := uuid.New()

	runExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		repo := mockRepo.NewMockDomainsConfigRepository(t)
		factory.EXPECT().NewDomainsConfigRepository().Return(repo)
		repo.EXPECT().ExistsByStoreID(ctx, storeID).Return(true, nil)
		repo.EXPECT().DeleteByStoreID(ctx, storeID).Return(nil)
	})

	err := fx.service.DeleteConfiguration(ctx, storeID)

	require.NoError(t, err)
}

func TestDomainsService_DeleteConfiguration_NotFound(t *testing.T) {
	fx := createTestDomainsService(t)

	ctx := context.Background()
	storeID := uuid.New()

	runExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		repo := mockRepo.NewMockDomainsConfigRepository(t)
		factory.EXPECT().NewDomainsConfigRepository().Return(repo)
		repo.EXPECT().ExistsByStoreID(ctx, storeID).Return(false, nil)
	})

	err := fx.service.DeleteConfiguration(ctx, storeID)

	assert.True(t, errors.Is(err, domainerrors.ErrConfigurationNotFound))
}
