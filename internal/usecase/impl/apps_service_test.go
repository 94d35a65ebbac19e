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

// appsServiceFixtures holds all test dependencies for apps service tests.
type appsServiceFixtures struct {
	service   usecase.AppsUsecase
	txManager *mockRepo.MockTransactionManager
	publisher *mockService.MockEventPublisher
}

func createTestAppsService(t *testing.T) appsServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	publisher := mockService.NewMockEventPublisher(t)
	publisher.EXPECT().PublishConfigChanged(mock.Anything, mock.Anything).Return(nil).Maybe()
	service := NewAppsService(txManager, publisher, newDiscardLogger())

	return appsServiceFixtures{
		service:   service,
		txManager: txManager,
		publisher: publisher,
	}
}

func seedAppsConfig(t *testing.T, storeID uuid.UUID, appNames ...string) *entity.AppsAndChannelsConfiguration {
	t.Helper()

	config := entity.NewAppsAndChannelsConfiguration(storeID)
	for _, name := range appNames {
		_, err := config.AddInstalledApp(entity.InstalledAppInput{
			Name:        name,
			Kind:        "integration",
			Version:     "1.0.0",
			Permissions: []string{"read_orders"},
			AccessToken: "token-" + name,
		})
		require.NoError(t, err)
	}

	return config
}

func TestAppsService_CreateConfiguration_Success(t *testing.T) {
	fx := createTestAppsService(t)

	ctx := context.Background()
	storeID := uuid.New()

	runExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		repo := mockRepo.NewMockAppsConfigRepository(t)
		factory.EXPECT().NewAppsConfigRepository().Return(repo)
		repo.EXPECT().ExistsByStoreID(ctx, storeID).Return(false, nil)
		repo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.AppsAndChannelsConfiguration")).Return(nil)
	})

	config, err := fx.service.CreateConfiguration(ctx, storeID)

	require.NoError(t, err)
	assert.Equal(t, storeID, config.StoreID)
	assert.Empty(t, config.InstalledApps)
}

func TestAppsService_CreateConfiguration_AlreadyExists(t *testing.T) {
	fx := createTestAppsService(t)

	ctx := context.Background()
	storeID := uuid.New()

	runExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		repo := mockRepo.NewMockAppsConfigRepository(t)
		factory.EXPECT().NewAppsConfigRepository().Return(repo)
		repo.EXPECT().ExistsByStoreID(ctx, storeID).Return(true, nil)
	})

	_, err := fx.service.CreateConfiguration(ctx, storeID)

	assert.True(t, errors.Is(err, domainerrors.ErrConfigurationAlreadyExists))
}

func TestAppsService_InstallApp_Success(t *testing.T) {
	fx := createTestAppsService(t)

	ctx := context.Background()
	storeID := uuid.New()
	existing := seedAppsConfig(t, storeID)

	runExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		repo := mockRepo.NewMockAppsConfigRepository(t)
		factory.EXPECT().NewAppsConfigRepository().Return(repo)
		repo.EXPECT().FindByStoreID(ctx, storeID).Return(existing, nil)
		repo.EXPECT().Update(ctx, existing).Return(nil)
	})

	config, err := fx.service.InstallApp(ctx, storeID, entity.InstalledAppInput{
		Name:        "Shipper",
		Kind:        "logistics",
		Version:     "2.1.0",
		Permissions: []string{"read_orders", "write_shipments"},
		AccessToken: "tok-abc",
	})

	require.NoError(t, err)
	assert.Len(t, config.InstalledApps, 1)
}

func TestAppsService_InstallApp_DuplicateName(t *testing.T) {
	fx := createTestAppsService(t)

	ctx := context.Background()
	storeID := uuid.New()
	existing := seedAppsConfig(t, storeID, "Shipper")

	runExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		repo := mockRepo.NewMockAppsConfigRepository(t)
		factory.EXPECT().NewAppsConfigRepository().Return(repo)
		repo.EXPECT().FindByStoreID(ctx, storeID).Return(existing, nil)
	})

	_, err := fx.service.InstallApp(ctx, storeID, entity.InstalledAppInput{
		Name:        "shipper",
		Kind:        "logistics",
		Version:     "1.0.0",
		Permissions: []string{"read_orders"},
		AccessToken: "tok",
	})

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "DUPLICATE", appErr.ErrorCode())
}

func TestAppsService_UninstallApp_RecordsSnapshot(t *testing.T) {
	fx := createTestAppsService(t)

	ctx := context.Background()
	storeID := uuid.New()
	existing := seedAppsConfig(t, storeID, "Shipper")

	runExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		repo := mockRepo.NewMockAppsConfigRepository(t)
		factory.EXPECT().NewAppsConfigRepository().Return(repo)
		repo.EXPECT().FindByStoreID(ctx, storeID).Return(existing, nil)
		repo.EXPECT().Update(ctx, existing).Return(nil)
	})

	config, err := fx.service.UninstallApp(ctx, storeID, "Shipper", "no longer needed")

	require.NoError(t, err)
	assert.Empty(t, config.InstalledApps)
	require.Len(t, config.UninstalledApps, 1)
	assert.Equal(t, "Shipper", config.UninstalledApps[0].Name)
	assert.Equal(t, "no longer needed", config.UninstalledApps[0].Reason)
}

func TestAppsService_UninstallApp_NotFound(t *testing.T) {
	fx := createTestAppsService(t)

	ctx := context.Background()
	storeID := uuid.New()
	existing := seedAppsConfig(t, storeID)

	runExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		repo := mockRepo.NewMockAppsConfigRepository(t)
		factory.EXPECT().NewAppsConfigRepository().Return(repo)
		repo.EXPECT().FindByStoreID(ctx, storeID).Return(existing, nil)
	})

	_, err := fx.service.UninstallApp(ctx, storeID, "Ghost", "missing")

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "NOT_FOUND", appErr.ErrorCode())
}

func TestAppsService_RemoveInstalledApp_Success(t *testing.T) {
	fx := createTestAppsService(t)

	ctx := context.Background()
	storeID := uuid.New()
	existing := seedAppsConfig(t, storeID, "Shipper")

	runExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		repo := mockRepo.NewMockAppsConfigRepository(t)
		factory.EXPECT().NewAppsConfigRepository().Return(repo)
		repo.EXPECT().FindByStoreID(ctx, storeID).Return(existing, nil)
		repo.EXPECT().Update(ctx, existing).Return(nil)
	})

	config, err := fx.service.RemoveInstalledApp(ctx, storeID, "shipper")

	require.NoError(t, err)
	assert.Equal(t, 0, config.CountInstalledApps())
	assert.Empty(t, config.UninstalledApps)
}

func TestAppsService_ToggleSalesChannel_Success(t *testing.T) {
	fx := createTestAppsService(t)

	ctx := context.Background()
	storeID := uuid.New()
	existing := seedAppsConfig(t, storeID)
	_, err := existing.AddSalesChannel(entity.SalesChannelInput{
		Name:   "Marketplace",
		Kind:   "marketplace",
		Active: false,
	})
	require.NoError(t, err)

	runExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		repo := mockRepo.NewMockAppsConfigRepository(t)
		factory.EXPECT().NewAppsConfigRepository().Return(repo)
		repo.EXPECT().FindByStoreID(ctx, storeID).Return(existing, nil)
		repo.EXPECT().Update(ctx, existing).Return(nil)
	})

	config, err := fx.service.ToggleSalesChannel(ctx, storeID, "Marketplace", true)

	require.NoError(t, err)
	channel, found := config.FindSalesChannel("Marketplace")
	require.True(t, found)
	assert.True(t, channel.Active)
}

func TestAppsService_AddDevelopmentApp_DefaultsToPendingReview(t *testing.T) {
	fx := createTestAppsService(t)

	ctx := context.Background()
	storeID := uuid.New()
	existing := seedAppsConfig(t, storeID)

	runExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		repo := mockRepo.NewMockAppsConfigRepository(t)
		factory.EXPECT().NewAppsConfigRepository().Return(repo)
		repo.EXPECT().FindByStoreID(ctx, storeID).Return(existing, nil)
		repo.EXPECT().Update(ctx, existing).Return(nil)
	})

	config, err := fx.service.AddDevelopmentApp(ctx, storeID, entity.DevelopmentAppInput{
		Name:             "Beta Widget",
		State:            "draft",
		DevToken:         "dev-tok",
		ResponsibleEmail: "dev@example.com",
		Scopes:           []string{"read_products"},
	})

	require.NoError(t, err)
	app, found := config.FindDevelopmentApp("Beta Widget")
	require.True(t, found)
	assert.Equal(t, entity.ReviewStatePending, app.ReviewState)
}

func TestAppsService_UpdateInstalledApp_VersionConflict(t *testing.T) {
	fx := createTestAppsService(t)

	ctx := context.Background()
	storeID := uuid.New()
	existing := seedAppsConfig(t, storeID, "Shipper")

	runExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		repo := mockRepo.NewMockAppsConfigRepository(t)
		factory.EXPECT().NewAppsConfigRepository().Return(repo)
		repo.EXPECT().FindByStoreID(ctx, storeID).Return(existing, nil)
		repo.EXPECT().Update(ctx, existing).Return(repository.ErrVersionConflict)
	})

	version := "3.0.0"
	_, err := fx.service.UpdateInstalledApp(ctx, storeID, "Shipper", entity.InstalledAppPatch{
		Version: &version,
	})

	assert.True(t, errors.Is(err, domainerrors.ErrVersionConflict))
}

func TestAppsService_GetConfiguration_NotFound(t *testing.T) {
	fx := createTestAppsService(t)

	ctx := context.Background()
	storeID := uuid.New()

	runExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		repo := mockRepo.NewMockAppsConfigRepository(t)
		factory.EXPECT().NewAppsConfigRepository().Return(repo)
		repo.EXPECT().FindByStoreID(ctx, storeID).Return(nil, repository.ErrConfigNotFound)
	})

	_, err := fx.service.GetConfiguration(ctx, storeID)

	assert.True(t, errors.Is(err, domainerrors.ErrConfigurationNotFound))
}
