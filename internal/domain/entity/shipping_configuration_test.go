package entity

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProfileInput(name string) ShippingProfileInput {
	return ShippingProfileInput{
		Name:        name,
		MinWeightKg: 0,
		MaxWeightKg: 5,
		BaseRate:    4.90,
		Regions:     []string{"ES", "PT"},
		Active:      true,
	}
}

func validPackagingInput(name string) PackagingInput {
	return PackagingInput{
		Name:        name,
		Kind:        PackagingBox,
		MaxWeightKg: 10,
		LengthCm:    40,
		WidthCm:     30,
		HeightCm:    20,
	}
}

func TestShippingProfiles(t *testing.T) {
	cfg := NewShippingConfiguration(uuid.New())

	profile, err := cfg.AddShippingProfile(validProfileInput("Standard"))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, profile.ID)

	_, err = cfg.AddShippingProfile(validProfileInput("STANDARD"))
	assert.True(t, IsKind(err, ErrorKindDuplicate))

	in := validProfileInput("Heavy")
	in.MinWeightKg = 10
	in.MaxWeightKg = 5
	_, err = cfg.AddShippingProfile(in)
	assert.True(t, IsKind(err, ErrorKindInvalidValue))

	in = validProfileInput("Heavy")
	in.Regions = nil
	_, err = cfg.AddShippingProfile(in)
	assert.True(t, IsKind(err, ErrorKindMissingValue))

	// Patching one bound re-checks the merged band.
	badMin := 7.0
	_, err = cfg.UpdateShippingProfile("Standard", ShippingProfilePatch{MinWeightKg: &badMin})
	assert.True(t, IsKind(err, ErrorKindInvalidValue))

	newMax := 8.0
	updated, err := cfg.UpdateShippingProfile("Standard", ShippingProfilePatch{MaxWeightKg: &newMax})
	require.NoError(t, err)
	assert.Equal(t, 8.0, updated.MaxWeightKg)

	inactive := validProfileInput("Paused")
	inactive.Active = false
	_, err = cfg.AddShippingProfile(inactive)
	require.NoError(t, err)

	active := cfg.ActiveShippingProfiles()
	require.Len(t, active, 1)
	assert.Equal(t, "Standard", active[0].Name)
}

func TestDeliveryMethods_KeyedByType(t *testing.T) {
	cfg := NewShippingConfiguration(uuid.New())

	method, err := cfg.AddDeliveryMethod(DeliveryMethodInput{
		Type:    DeliveryMethodHome,
		Enabled: true,
		Fee:     3.50,
		MinDays: 1,
		MaxDays: 3,
	})
	require.NoError(t, err)
	assert.True(t, method.Enabled)

	_, err = cfg.AddDeliveryMethod(DeliveryMethodInput{Type: DeliveryMethodHome, MaxDays: 1})
	assert.True(t, IsKind(err, ErrorKindDuplicate))

	_, err = cfg.AddDeliveryMethod(DeliveryMethodInput{Type: DeliveryMethodType("drone"), MaxDays: 1})
	assert.True(t, IsKind(err, ErrorKindInvalidValue))

	_, err = cfg.AddDeliveryMethod(DeliveryMethodInput{Type: DeliveryMethodExpress, Fee: -1})
	assert.True(t, IsKind(err, ErrorKindInvalidValue))

	toggled, err := cfg.ToggleDeliveryMethod(DeliveryMethodHome, false)
	require.NoError(t, err)
	assert.False(t, toggled.Enabled)
	assert.Empty(t, cfg.EnabledDeliveryMethods())

	_, err = cfg.ToggleDeliveryMethod(DeliveryMethodPickupPoint, true)
	assert.True(t, IsKind(err, ErrorKindNotFound))

	require.NoError(t, cfg.RemoveDeliveryMethod(DeliveryMethodHome))
	assert.Empty(t, cfg.DeliveryMethods)
}

func countDefaults(cfg *ShippingConfiguration) int {
	count := 0
	for _, p := range cfg.Packagings {
		if p.Default {
			count++
		}
	}

	return count
}

func TestSetDefaultPackaging_ExactlyOneDefault(t *testing.T) {
	for _, size := range []int{1, 2, 5} {
		cfg := NewShippingConfiguration(uuid.New())
		ids := make([]uuid.UUID, 0, size)
		for i := 0; i < size; i++ {
			in := validPackagingInput(fmt.Sprintf("Box %d", i))
			in.Default = i == 0
			packaging, err := cfg.AddPackaging(in)
			require.NoError(t, err)
			ids = append(ids, packaging.ID)
		}

		for _, id := range ids {
			_, err := cfg.SetDefaultPackaging(id)
			require.NoError(t, err)
			assert.Equal(t, 1, countDefaults(cfg))

			current, ok := cfg.DefaultPackaging()
			require.True(t, ok)
			assert.Equal(t, id, current.ID)
		}
	}
}

func TestAddPackaging_DefaultDisplacesPrevious(t *testing.T) {
	cfg := NewShippingConfiguration(uuid.New())

	first := validPackagingInput("Small box")
	first.Default = true
	_, err := cfg.AddPackaging(first)
	require.NoError(t, err)

	second := validPackagingInput("Big box")
	second.Default = true
	packaging, err := cfg.AddPackaging(second)
	require.NoError(t, err)

	assert.Equal(t, 1, countDefaults(cfg))
	current, ok := cfg.DefaultPackaging()
	require.True(t, ok)
	assert.Equal(t, packaging.ID, current.ID)
}

func TestPackagingValidationAndRemoval(t *testing.T) {
	cfg := NewShippingConfiguration(uuid.New())

	in := validPackagingInput("Bad box")
	in.WidthCm = -1
	_, err := cfg.AddPackaging(in)
	assert.True(t, IsKind(err, ErrorKindInvalidValue))

	in = validPackagingInput("Weird box")
	in.Kind = PackagingKind("crate")
	_, err = cfg.AddPackaging(in)
	assert.True(t, IsKind(err, ErrorKindInvalidValue))

	packaging, err := cfg.AddPackaging(validPackagingInput("Box"))
	require.NoError(t, err)
	_, err = cfg.AddPackaging(validPackagingInput("BOX"))
	assert.True(t, IsKind(err, ErrorKindDuplicate))

	_, err = cfg.SetDefaultPackaging(packaging.ID)
	require.NoError(t, err)

	// Removing the default leaves the configuration with no default at all.
	require.NoError(t, cfg.RemovePackaging(packaging.ID))
	_, ok := cfg.DefaultPackaging()
	assert.False(t, ok)

	err = cfg.RemovePackaging(uuid.New())
	assert.True(t, IsKind(err, ErrorKindNotFound))
}

func TestTransportProviders(t *testing.T) {
	cfg := NewShippingConfiguration(uuid.New())

	provider, err := cfg.AddTransportProvider(TransportProviderInput{
		Name:        "Speedy",
		Code:        "SPD",
		TrackingURL: "https://track.speedy.example/{id}",
		Active:      true,
	})
	require.NoError(t, err)
	assert.Len(t, cfg.ActiveTransportProviders(), 1)

	_, err = cfg.AddTransportProvider(TransportProviderInput{Name: "speedy", Code: "SP2"})
	assert.True(t, IsKind(err, ErrorKindDuplicate))

	_, err = cfg.AddTransportProvider(TransportProviderInput{Name: "Other", Code: "OTH", ContactEmail: "nope"})
	assert.True(t, IsKind(err, ErrorKindInvalidValue))

	inactive := false
	_, err = cfg.UpdateTransportProvider(provider.Name, TransportProviderPatch{Active: &inactive})
	require.NoError(t, err)
	assert.Empty(t, cfg.ActiveTransportProviders())

	require.NoError(t, cfg.RemoveTransportProvider("SPEEDY"))
	err = cfg.RemoveTransportProvider("Speedy")
	assert.True(t, IsKind(err, ErrorKindNotFound))
}

func TestReconstructShippingConfiguration_RoundTrip(t *testing.T) {
	cfg := NewShippingConfiguration(uuid.New())
	packaging, err := cfg.AddPackaging(validPackagingInput("Box"))
	require.NoError(t, err)
	_, err = cfg.SetDefaultPackaging(packaging.ID)
	require.NoError(t, err)
	_, err = cfg.AddDeliveryMethod(DeliveryMethodInput{Type: DeliveryMethodHome, Enabled: true, MaxDays: 3})
	require.NoError(t, err)

	restored := ReconstructShippingConfiguration(
		cfg.ID, cfg.StoreID, cfg.Profiles, cfg.DeliveryMethods,
		cfg.Packagings, cfg.Providers, cfg.Version, cfg.CreatedAt, cfg.UpdatedAt,
	)

	current, ok := restored.DefaultPackaging()
	require.True(t, ok)
	assert.Equal(t, packaging.ID, current.ID)
	assert.Len(t, restored.EnabledDeliveryMethods(), 1)
	assert.Equal(t, cfg.CountPackagings(), restored.CountPackagings())
}
