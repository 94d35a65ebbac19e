package postgres

import (
	"encoding/json"

	"storeadmin/internal/domain/entity"
	"storeadmin/internal/infra/persistence/model"

	"github.com/pkg/errors"
)

// The aggregate collections live in a JSONB payload column; identity, version
// and timestamps stay in plain columns so the store can query and lock on them.
// The payload shapes below are the only contract between entity and storage.

type domainsPayload struct {
	Domains           []*entity.Domain `json:"domains"`
	PrincipalDomain   string           `json:"principal_domain"`
	GlobalRedirection bool             `json:"global_redirection"`
}

func toDomainsConfigModel(cfg *entity.DomainsConfiguration) (*model.DomainsConfigModel, error) {
	payload, err := json.Marshal(domainsPayload{
		Domains:           cfg.Domains,
		PrincipalDomain:   cfg.PrincipalDomain,
		GlobalRedirection: cfg.GlobalRedirection,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode domains configuration payload")
	}

	return &model.DomainsConfigModel{
		ID:        cfg.ID,
		StoreID:   cfg.StoreID,
		Payload:   payload,
		Version:   cfg.Version,
		CreatedAt: cfg.CreatedAt,
		UpdatedAt: cfg.UpdatedAt,
	}, nil
}

func toDomainsConfigEntity(m *model.DomainsConfigModel) (*entity.DomainsConfiguration, error) {
	var payload domainsPayload
	if err := json.Unmarshal(m.Payload, &payload); err != nil {
		return nil, errors.Wrap(err, "failed to decode domains configuration payload")
	}

	return entity.ReconstructDomainsConfiguration(
		m.ID, m.StoreID,
		payload.Domains,
		payload.PrincipalDomain,
		payload.GlobalRedirection,
		m.Version,
		m.CreatedAt, m.UpdatedAt,
	), nil
}

type appsPayload struct {
	InstalledApps   []*entity.InstalledApp   `json:"installed_apps"`
	SalesChannels   []*entity.SalesChannel   `json:"sales_channels"`
	DevelopmentApps []*entity.DevelopmentApp `json:"development_apps"`
	UninstalledApps []*entity.UninstalledApp `json:"uninstalled_apps"`
}

func toAppsConfigModel(cfg *entity.AppsAndChannelsConfiguration) (*model.AppsConfigModel, error) {
	payload, err := json.Marshal(appsPayload{
		InstalledApps:   cfg.InstalledApps,
		SalesChannels:   cfg.SalesChannels,
		DevelopmentApps: cfg.DevelopmentApps,
		UninstalledApps: cfg.UninstalledApps,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode apps configuration payload")
	}

	return &model.AppsConfigModel{
		ID:        cfg.ID,
		StoreID:   cfg.StoreID,
		Payload:   payload,
		Version:   cfg.Version,
		CreatedAt: cfg.CreatedAt,
		UpdatedAt: cfg.UpdatedAt,
	}, nil
}

func toAppsConfigEntity(m *model.AppsConfigModel) (*entity.AppsAndChannelsConfiguration, error) {
	var payload appsPayload
	if err := json.Unmarshal(m.Payload, &payload); err != nil {
		return nil, errors.Wrap(err, "failed to decode apps configuration payload")
	}

	return entity.ReconstructAppsAndChannelsConfiguration(
		m.ID, m.StoreID,
		payload.InstalledApps,
		payload.SalesChannels,
		payload.DevelopmentApps,
		payload.UninstalledApps,
		m.Version,
		m.CreatedAt, m.UpdatedAt,
	), nil
}

type shippingPayload struct {
	Profiles        []*entity.ShippingProfile   `json:"profiles"`
	DeliveryMethods []*entity.DeliveryMethod    `json:"delivery_methods"`
	Packagings      []*entity.Packaging         `json:"packagings"`
	Providers       []*entity.TransportProvider `json:"providers"`
}

func toShippingConfigModel(cfg *entity.ShippingConfiguration) (*model.ShippingConfigModel, error) {
	payload, err := json.Marshal(shippingPayload{
		Profiles:        cfg.Profiles,
		DeliveryMethods: cfg.DeliveryMethods,
		Packagings:      cfg.Packagings,
		Providers:       cfg.Providers,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode shipping configuration payload")
	}

	return &model.ShippingConfigModel{
		ID:        cfg.ID,
		StoreID:   cfg.StoreID,
		Payload:   payload,
		Version:   cfg.Version,
		CreatedAt: cfg.CreatedAt,
		UpdatedAt: cfg.UpdatedAt,
	}, nil
}

func toShippingConfigEntity(m *model.ShippingConfigModel) (*entity.ShippingConfiguration, error) {
	var payload shippingPayload
	if err := json.Unmarshal(m.Payload, &payload); err != nil {
		return nil, errors.Wrap(err, "failed to decode shipping configuration payload")
	}

	return entity.ReconstructShippingConfiguration(
		m.ID, m.StoreID,
		payload.Profiles,
		payload.DeliveryMethods,
		payload.Packagings,
		payload.Providers,
		m.Version,
		m.CreatedAt, m.UpdatedAt,
	), nil
}

type policiesPayload struct {
	ReturnRules        []*entity.ReturnRule            `json:"return_rules"`
	Templates          []*entity.DocumentationTemplate `json:"templates"`
	ReturnRulesEnabled bool                            `json:"return_rules_enabled"`
}

func toPoliciesConfigModel(cfg *entity.PoliciesConfiguration) (*model.PoliciesConfigModel, error) {
	payload, err := json.Marshal(policiesPayload{
		ReturnRules:        cfg.ReturnRules,
		Templates:          cfg.Templates,
		ReturnRulesEnabled: cfg.ReturnRulesEnabled,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode policies configuration payload")
	}

	return &model.PoliciesConfigModel{
		ID:        cfg.ID,
		StoreID:   cfg.StoreID,
		Payload:   payload,
		Version:   cfg.Version,
		CreatedAt: cfg.CreatedAt,
		UpdatedAt: cfg.UpdatedAt,
	}, nil
}

func toPoliciesConfigEntity(m *model.PoliciesConfigModel) (*entity.PoliciesConfiguration, error) {
	var payload policiesPayload
	if err := json.Unmarshal(m.Payload, &payload); err != nil {
		return nil, errors.Wrap(err, "failed to decode policies configuration payload")
	}

	return entity.ReconstructPoliciesConfiguration(
		m.ID, m.StoreID,
		payload.ReturnRules,
		payload.Templates,
		payload.ReturnRulesEnabled,
		m.Version,
		m.CreatedAt, m.UpdatedAt,
	), nil
}
