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

// shippingServiceFixtures holds all test dependencies for shipping service tests.
type shippingServiceFixtures struct {
	service   usecase.ShippingUsecase
	txManager *mockRepo.MockTransactionManager
	publisher *mockService.MockEventPublisher
}

func createTestShippingService(t *testing.T) shippingServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	publisher := mockService.NewMockEventPublisher(t)
	publisher.EXPECT().PublishConfigChanged(mock.Anything, mock.Anything).Return(nil).Maybe()
	service := NewShippingService(txManager, publisher, newDiscardLogger())

	return shippingServiceFixtures{
		service:   service,
		txManager: txManager,
		publisher: publisher,
	}
}

func TestShippingService_CreateConfiguration_Success(t *testing.T) {
	fx := createTestShippingService(t)

	ctx := context.Background()
	storeID := uuid.New()

	runExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		repo := mockRepo.NewMockShippingConfigRepository(t)
		factory.EXPECT().NewShippingConfigRepository().Return(repo)
		repo.EXPECT().ExistsByStoreID(ctx, storeID).Return(false, nil)
		repo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.ShippingConfiguration")).Return(nil)
	})

	config, err := fx.service.CreateConfiguration(ctx, storeID)

	require.NoError(t, err)
	assert.Equal(t, storeID, config.StoreID)
	assert.Empty(t, config.Profiles)
}

func TestShippingService_AddShippingProfile_Success(t *testing.T) {
	fx := createTestShippingService(t)

	ctx := context.Background()
	storeID := uuid.New()
	existing := entity.NewShippingConfiguration(storeID)

	runExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		repo := mockRepo.NewMockShippingConfigRepository(t)
		factory.EXPECT().NewShippingConfigRepository().Return(repo)
		repo.EXPECT().FindByStoreID(ctx, storeID).Return(existing, nil)
		repo.EXPECT().Update(ctx, existing).Return(nil)
	})

	config, err := fx.service.AddShippingProfile(ctx, storeID, entity.ShippingProfileInput{
		Name:        "Light parcels",
		MinWeightKg: 0,
		MaxWeightKg: 5,
		BaseRate:    4.90,
		Regions:     []string{"mainland"},
		Active:      true,
	})

	require.NoError(t, err)
	assert.Len(t, config.Profiles, 1)
}

func TestShippingService_AddShippingProfile_InvalidWeightBand(t *testing.T) {
	fx := createTestShippingService(t)

	ctx := context.Background()
	storeID := uuid.New()
	existing := entity.NewShippingConfiguration(storeID)

	runExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		repo := mockRepo.NewMockShippingConfigRepository(t)
		factory.EXPECT().NewShippingConfigRepository().Return(repo)
		repo.EXPECT().FindByStoreID(ctx, storeID).Return(existing, nil)
	})

	_, err := fx.service.AddShippingProfile(ctx, storeID, entity.ShippingProfileInput{
		Name:        "Broken",
		MinWeightKg: 10,
		MaxWeightKg: 5,
		BaseRate:    4.90,
		Regions:     []string{"mainland"},
	})

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "INVALID_VALUE", appErr.ErrorCode())
}

func TestShippingService_AddDeliveryMethod_DuplicateType(t *testing.T) {
	fx := createTestShippingService(t)

	ctx := context.Background()
	storeID := uuid.New()
	existing := entity.NewShippingConfiguration(storeID)
	_, err := existing.AddDeliveryMethod(entity.DeliveryMethodInput{
		Type:    entity.DeliveryMethodHome,
		Enabled: true,
		Fee:     2.50,
		MinDays: 1,
		MaxDays: 3,
	})
	require.NoError(t, err)

	runExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		repo := mockRepo.NewMockShippingConfigRepository(t)
		factory.EXPECT().NewShippingConfigRepository().Return(repo)
		repo.EXPECT().FindByStoreID(ctx, storeID).Return(existing, nil)
	})

	_, err = fx.service.AddDeliveryMethod(ctx, storeID, entity.DeliveryMethodInput{
		Type:    entity.DeliveryMethodHome,
		Enabled: false,
		Fee:     5,
		MinDays: 1,
		MaxDays: 2,
	})

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "DUPLICATE", appErr.ErrorCode())
}

func TestShippingService_SetDefaultPackaging_Success(t *testing.T) {
	fx := createTestShippingService(t)

	ctx := context.Background()
	storeID := uuid.New()
	existing := entity.NewShippingConfiguration(storeID)
	first, err := existing.AddPackaging(entity.PackagingInput{
		Name: "Small box", Kind: entity.PackagingBox, MaxWeightKg: 2,
		LengthCm: 20, WidthCm: 15, HeightCm: 10, Default: true,
	})
	require.NoError(t, err)
	second, err := existing.AddPackaging(entity.PackagingInput{
		Name: "Padded envelope", Kind: entity.PackagingEnvelope, MaxWeightKg: 0.5,
		LengthCm: 30, WidthCm: 22, HeightCm: 1,
	})
	require.NoError(t, err)

	runExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		repo := mockRepo.NewMockShippingConfigRepository(t)
		factory.EXPECT().NewShippingConfigRepository().Return(repo)
		repo.EXPECT().FindByStoreID(ctx, storeID).Return(existing, nil)
		repo.EXPECT().Update(ctx, existing).Return(nil)
	})

	config, err := fx.service.SetDefaultPackaging(ctx, storeID, second.ID)

	require.NoError(t, err)
	defaultPackaging, found := config.DefaultPackaging()
	require.True(t, found)
	assert.Equal(t, second.ID, defaultPackaging.ID)

	updatedFirst, found := config.FindPackaging(first.ID)
	require.True(t, found)
	assert.False(t, updatedFirst.Default)
}

func TestShippingService_RemoveTransportProvider_NotFound(t *testing.T) {
	fx := createTestShippingService(t)

	ctx := context.Background()
	storeID := uuid.New()
	existing := entity.NewShippingConfiguration(storeID)

	runExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		repo := mockRepo.NewMockShippingConfigRepository(t)
		factory.EXPECT().NewShippingConfigRepository().Return(repo)
		repo.EXPECT().FindByStoreID(ctx, storeID).Return(existing, nil)
	})

	_, err := fx.service.RemoveTransportProvider(ctx, storeID, "Ghost Carrier")

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "NOT_FOUND", appErr.ErrorCode())
}

func TestShippingService_ToggleDeliveryMethod_VersionConflict(t *testing.T) {
	fx := createTestShippingService(t)

	ctx := context.Background()
	storeID := uuid.New()
	existing := entity.NewShippingConfiguration(storeID)
	_, err := existing.AddDeliveryMethod(entity.DeliveryMethodInput{
		Type:    entity.DeliveryMethodExpress,
		Enabled: false,
		Fee:     9.90,
		MinDays: 0,
		MaxDays: 1,
	})
	require.NoError(t, err)

	runExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		repo := mockRepo.NewMockShippingConfigRepository(t)
		factory.EXPECT().NewShippingConfigRepository().Return(repo)
		repo.EXPECT().FindByStoreID(ctx, storeID).Return(existing, nil)
		repo.EXPECT().Update(ctx, existing).Return(repository.ErrVersionConflict)
	})

	_, err = fx.service.ToggleDeliveryMethod(ctx, storeID, entity.DeliveryMethodExpress, true)

	assert.True(t, errors.Is(err, domainerrors.ErrVersionConflict))
}

func TestShippingService_DeleteConfiguration_Success(t *testing.T) {
	fx := createTestShippingService(t)

	ctx := context.Background()
	storeID := uuid.New()

	runExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		repo := mockRepo.NewMockShippingConfigRepository(t)
		factory.EXPECT().NewShippingConfigRepository().Return(repo)
		repo.EXPECT().ExistsByStoreID(ctx, storeID).Return(true, nil)
		repo.EXPECT().DeleteByStoreID(ctx, storeID).Return(nil)
	})

	require.NoError(t, fx.service.DeleteConfiguration(ctx, storeID))
}
