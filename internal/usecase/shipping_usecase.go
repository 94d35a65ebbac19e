package usecase

import (
	"context"

	"storeadmin/internal/domain/entity"

	"github.com/google/uuid"
)

// ShippingUsecase defines the business operations on a store's shipping
// configuration.
type ShippingUsecase interface {
	// CreateConfiguration creates an empty shipping configuration for the
	// store. It fails when the store already has one.
	CreateConfiguration(ctx context.Context, storeID uuid.UUID) (*entity.ShippingConfiguration, error)

	// GetConfiguration returns the store's shipping configuration.
	GetConfiguration(ctx context.Context, storeID uuid.UUID) (*entity.ShippingConfiguration, error)

	// DeleteConfiguration removes the store's shipping configuration.
	DeleteConfiguration(ctx context.Context, storeID uuid.UUID) error

	// AddShippingProfile registers a new shipping profile.
	AddShippingProfile(ctx context.Context, storeID uuid.UUID, input entity.ShippingProfileInput) (*entity.ShippingConfiguration, error)

	// UpdateShippingProfile applies a partial update to the named profile.
	UpdateShippingProfile(ctx context.Context, storeID uuid.UUID, name string, patch entity.ShippingProfilePatch) (*entity.ShippingConfiguration, error)

	// RemoveShippingProfile deletes the named profile.
	RemoveShippingProfile(ctx context.Context, storeID uuid.UUID, name string) (*entity.ShippingConfiguration, error)

	// AddDeliveryMethod registers a delivery method. One method per type.
	AddDeliveryMethod(ctx context.Context, storeID uuid.UUID, input entity.DeliveryMethodInput) (*entity.ShippingConfiguration, error)

	// UpdateDeliveryMethod applies a partial update to the method of the given type.
	UpdateDeliveryMethod(ctx context.Context, storeID uuid.UUID, methodType entity.DeliveryMethodType, patch entity.DeliveryMethodPatch) (*entity.ShippingConfiguration, error)

	// ToggleDeliveryMethod enables or disables the method of the given type.
	ToggleDeliveryMethod(ctx context.Context, storeID uuid.UUID, methodType entity.DeliveryMethodType, enabled bool) (*entity.ShippingConfiguration, error)

	// RemoveDeliveryMethod deletes the method of the given type.
	RemoveDeliveryMethod(ctx context.Context, storeID uuid.UUID, methodType entity.DeliveryMethodType) (*entity.ShippingConfiguration, error)

	// AddPackaging registers a packaging option.
	AddPackaging(ctx context.Context, storeID uuid.UUID, input entity.PackagingInput) (*entity.ShippingConfiguration, error)

	// UpdatePackaging applies a partial update to the packaging with the given ID.
	UpdatePackaging(ctx context.Context, storeID uuid.UUID, packagingID uuid.UUID, patch entity.PackagingPatch) (*entity.ShippingConfiguration, error)

	// RemovePackaging deletes the packaging with the given ID.
	RemovePackaging(ctx context.Context, storeID uuid.UUID, packagingID uuid.UUID) (*entity.ShippingConfiguration, error)

	// SetDefaultPackaging marks the packaging with the given ID as the default.
	SetDefaultPackaging(ctx context.Context, storeID uuid.UUID, packagingID uuid.UUID) (*entity.ShippingConfiguration, error)

	// AddTransportProvider registers a transport provider.
	AddTransportProvider(ctx context.Context, storeID uuid.UUID, input entity.TransportProviderInput) (*entity.ShippingConfiguration, error)

	// UpdateTransportProvider applies a partial update to the named provider.
	UpdateTransportProvider(ctx context.Context, storeID uuid.UUID, name string, patch entity.TransportProviderPatch) (*entity.ShippingConfiguration, error)

	// RemoveTransportProvider deletes the named provider.
	RemoveTransportProvider(ctx context.Context, storeID uuid.UUID, name string) (*entity.ShippingConfiguration, error)
}
