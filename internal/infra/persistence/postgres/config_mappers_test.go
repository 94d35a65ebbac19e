package postgres

import (
	"testing"

	"storeadmin/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainsConfigMapper_RoundTrip(t *testing.T) {
	cfg, err := entity.NewDomainsConfiguration(uuid.New(), []entity.DomainInput{
		{Name: "shop.example.com", Kind: entity.DomainKindPrincipal, ConnectionState: entity.DomainStateConnected, Source: entity.DomainSourceExternal, SSLActive: true, HTTPSEnabled: true},
		{Name: "alt.example.com", Kind: entity.DomainKindSecondary, ConnectionState: entity.DomainStateVerifying, Source: entity.DomainSourceExternal},
	})
	require.NoError(t, err)
	require.NoError(t, cfg.SetPrincipalDomain("shop.example.com"))

	configM, err := toDomainsConfigModel(cfg)
	require.NoError(t, err)
	assert.Equal(t, cfg.ID, configM.ID)
	assert.Equal(t, cfg.StoreID, configM.StoreID)
	assert.Equal(t, cfg.Version, configM.Version)

	restored, err := toDomainsConfigEntity(configM)
	require.NoError(t, err)
	assert.Equal(t, cfg.StoreID, restored.StoreID)
	assert.Equal(t, cfg.PrincipalDomain, restored.PrincipalDomain)
	assert.Equal(t, cfg.GlobalRedirection, restored.GlobalRedirection)
	require.Len(t, restored.Domains, 2)
	assert.Equal(t, "shop.example.com", restored.Domains[0].Name)
	assert.Equal(t, entity.DomainKindPrincipal, restored.Domains[0].Kind)
}

func TestDomainsConfigMapper_EmptyCollectionsStayNonNil(t *testing.T) {
	cfg, err := entity.NewDomainsConfiguration(uuid.New(), nil)
	require.NoError(t, err)

	configM, err := toDomainsConfigModel(cfg)
	require.NoError(t, err)

	restored, err := toDomainsConfigEntity(configM)
	require.NoError(t, err)
	assert.NotNil(t, restored.Domains)
	assert.Empty(t, restored.Domains)
}

func TestAppsConfigMapper_RoundTrip(t *testing.T) {
	cfg := entity.NewAppsAndChannelsConfiguration(uuid.New())
	_, err := cfg.AddInstalledApp(entity.InstalledAppInput{
		Name:        "inventory-sync",
		Kind:        "integration",
		Version:     "2.1.0",
		Permissions: []string{"read_products", "write_products"},
		AccessToken: "tok-inventory",
	})
	require.NoError(t, err)
	_, err = cfg.AddSalesChannel(entity.SalesChannelInput{Name: "Web Storefront", Kind: "storefront", Active: true})
	require.NoError(t, err)

	configM, err := toAppsConfigModel(cfg)
	require.NoError(t, err)

	restored, err := toAppsConfigEntity(configM)
	require.NoError(t, err)
	require.Len(t, restored.InstalledApps, 1)
	assert.Equal(t, "inventory-sync", restored.InstalledApps[0].Name)
	assert.Equal(t, []string{"read_products", "write_products"}, restored.InstalledApps[0].Permissions)
	require.Len(t, restored.SalesChannels, 1)
	assert.True(t, restored.SalesChannels[0].Active)
	assert.NotNil(t, restored.DevelopmentApps)
	assert.NotNil(t, restored.UninstalledApps)
}

func TestShippingConfigMapper_RoundTrip(t *testing.T) {
	cfg := entity.NewShippingConfiguration(uuid.New())
	_, err := cfg.AddShippingProfile(entity.ShippingProfileInput{
		Name:        "Standard",
		MinWeightKg: 0,
		MaxWeightKg: 20,
		BaseRate:    4.5,
		Regions:     []string{"EU"},
		Active:      true,
	})
	require.NoError(t, err)
	_, err = cfg.AddPackaging(entity.PackagingInput{Name: "Small box", Kind: entity.PackagingBox, Default: true})
	require.NoError(t, err)

	configM, err := toShippingConfigModel(cfg)
	require.NoError(t, err)

	restored, err := toShippingConfigEntity(configM)
	require.NoError(t, err)
	require.Len(t, restored.Profiles, 1)
	assert.Equal(t, "Standard", restored.Profiles[0].Name)
	assert.InDelta(t, 4.5, restored.Profiles[0].BaseRate, 0.0001)
	require.Len(t, restored.Packagings, 1)
	assert.True(t, restored.Packagings[0].Default)
}

func TestPoliciesConfigMapper_RoundTrip(t *testing.T) {
	cfg := entity.NewPoliciesConfiguration(uuid.New())
	_, err := cfg.AddReturnRule(entity.ReturnRuleInput{
		Name:         "Standard returns",
		WindowDays:   30,
		RefundMethod: entity.RefundOriginalPayment,
		Active:       true,
	})
	require.NoError(t, err)
	cfg.ToggleReturnRules(true)

	configM, err := toPoliciesConfigModel(cfg)
	require.NoError(t, err)

	restored, err := toPoliciesConfigEntity(configM)
	require.NoError(t, err)
	require.Len(t, restored.ReturnRules, 1)
	assert.Equal(t, "Standard returns", restored.ReturnRules[0].Name)
	assert.Equal(t, 30, restored.ReturnRules[0].WindowDays)
	assert.True(t, restored.ReturnRulesEnabled)
	assert.NotNil(t, restored.Templates)
}
