package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ShippingConfiguration is the aggregate owning a store's shipping profiles,
// delivery methods, packagings and transport providers.
//
// Invariants:
//   - profile, packaging and provider names are unique (case-insensitive)
//   - delivery methods are keyed by their type; one entry per type
//   - at most one packaging carries the default flag at any time
type ShippingConfiguration struct {
	ID              uuid.UUID            `json:"id"`               // The Global Unique Identifier (GUID) for the configuration.
	StoreID         uuid.UUID            `json:"store_id"`         // The store this configuration belongs to.
	Profiles        []*ShippingProfile   `json:"profiles"`         // Ordered collection of shipping profiles.
	DeliveryMethods []*DeliveryMethod    `json:"delivery_methods"` // Ordered collection of delivery methods, one per type.
	Packagings      []*Packaging         `json:"packagings"`       // Ordered collection of packaging options.
	Providers       []*TransportProvider `json:"providers"`        // Ordered collection of transport providers.
	Version         int                  `json:"version"`          // Persistence snapshot version, used for optimistic concurrency.
	CreatedAt       time.Time            `json:"created_at"`       // Timestamp of when this configuration was created.
	UpdatedAt       time.Time            `json:"updated_at"`       // Timestamp of the last successful mutation.
}

// NewShippingConfiguration builds a brand-new, empty configuration for a store.
func NewShippingConfiguration(storeID uuid.UUID) *ShippingConfiguration {
	now := time.Now()

	return &ShippingConfiguration{
		ID:              uuid.New(),
		StoreID:         storeID,
		Profiles:        []*ShippingProfile{},
		DeliveryMethods: []*DeliveryMethod{},
		Packagings:      []*Packaging{},
		Providers:       []*TransportProvider{},
		Version:         1,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// ReconstructShippingConfiguration rehydrates a configuration from storage.
func ReconstructShippingConfiguration(
	id, storeID uuid.UUID,
	profiles []*ShippingProfile,
	methods []*DeliveryMethod,
	packagings []*Packaging,
	providers []*TransportProvider,
	version int,
	createdAt, updatedAt time.Time,
) *ShippingConfiguration {
	if profiles == nil {
		profiles = []*ShippingProfile{}
	}
	if methods == nil {
		methods = []*DeliveryMethod{}
	}
	if packagings == nil {
		packagings = []*Packaging{}
	}
	if providers == nil {
		providers = []*TransportProvider{}
	}

	return &ShippingConfiguration{
		ID:              id,
		StoreID:         storeID,
		Profiles:        profiles,
		DeliveryMethods: methods,
		Packagings:      packagings,
		Providers:       providers,
		Version:         version,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
}

// --- Shipping profiles ---

// AddShippingProfile validates the input and appends a new profile.
func (c *ShippingConfiguration) AddShippingProfile(in ShippingProfileInput) (*ShippingProfile, error) {
	profile, err := NewShippingProfile(in)
	if err != nil {
		return nil, err
	}
	if _, ok := c.FindShippingProfile(profile.Name); ok {
		return nil, NewDuplicate("shipping profile", profile.Name)
	}

	c.Profiles = append(c.Profiles, profile)
	c.UpdatedAt = profile.CreatedAt

	return profile, nil
}

// UpdateShippingProfile merges the patch over the named profile,
// re-checking name uniqueness on rename.
func (c *ShippingConfiguration) UpdateShippingProfile(name string, patch ShippingProfilePatch) (*ShippingProfile, error) {
	idx := indexByName(c.Profiles, name, func(p *ShippingProfile) string { return p.Name })
	if idx < 0 {
		return nil, NewNotFound("shipping profile", name)
	}
	if err := patch.validate(c.Profiles[idx]); err != nil {
		return nil, err
	}
	if patch.Name != nil {
		for i, other := range c.Profiles {
			if i != idx && strings.EqualFold(other.Name, *patch.Name) {
				return nil, NewDuplicate("shipping profile", *patch.Name)
			}
		}
	}

	now := time.Now()
	c.Profiles[idx].apply(patch, now)
	c.UpdatedAt = now

	return c.Profiles[idx], nil
}

// RemoveShippingProfile deletes the named profile.
func (c *ShippingConfiguration) RemoveShippingProfile(name string) error {
	idx := indexByName(c.Profiles, name, func(p *ShippingProfile) string { return p.Name })
	if idx < 0 {
		return NewNotFound("shipping profile", name)
	}

	c.Profiles = append(c.Profiles[:idx], c.Profiles[idx+1:]...)
	c.UpdatedAt = time.Now()

	return nil
}

// --- Delivery methods ---

// AddDeliveryMethod validates the input and appends a new delivery method.
// Fails with duplicate when the type is already configured.
func (c *ShippingConfiguration) AddDeliveryMethod(in DeliveryMethodInput) (*DeliveryMethod, error) {
	method, err := NewDeliveryMethod(in)
	if err != nil {
		return nil, err
	}
	if _, ok := c.FindDeliveryMethod(method.Type); ok {
		return nil, NewDuplicate("delivery method", method.Type.String())
	}

	c.DeliveryMethods = append(c.DeliveryMethods, method)
	c.UpdatedAt = method.CreatedAt

	return method, nil
}

// UpdateDeliveryMethod merges the patch over the method with the given type key.
func (c *ShippingConfiguration) UpdateDeliveryMethod(methodType DeliveryMethodType, patch DeliveryMethodPatch) (*DeliveryMethod, error) {
	method, ok := c.FindDeliveryMethod(methodType)
	if !ok {
		return nil, NewNotFound("delivery method", methodType.String())
	}
	if err := patch.validate(method); err != nil {
		return nil, err
	}

	now := time.Now()
	method.apply(patch, now)
	c.UpdatedAt = now

	return method, nil
}

// ToggleDeliveryMethod flips the enabled flag of the method with the given type key.
func (c *ShippingConfiguration) ToggleDeliveryMethod(methodType DeliveryMethodType, enabled bool) (*DeliveryMethod, error) {
	method, ok := c.FindDeliveryMethod(methodType)
	if !ok {
		return nil, NewNotFound("delivery method", methodType.String())
	}

	now := time.Now()
	method.Enabled = enabled
	method.UpdatedAt = now
	c.UpdatedAt = now

	return method, nil
}

// RemoveDeliveryMethod deletes the method with the given type key.
func (c *ShippingConfiguration) RemoveDeliveryMethod(methodType DeliveryMethodType) error {
	for i, m := range c.DeliveryMethods {
		if m.Type == methodType {
			c.DeliveryMethods = append(c.DeliveryMethods[:i], c.DeliveryMethods[i+1:]...)
			c.UpdatedAt = time.Now()

			return nil
		}
	}

	return NewNotFound("delivery method", methodType.String())
}

// --- Packagings ---

// AddPackaging validates the input and appends a new packaging. A packaging
// flagged default displaces any previous default within the same mutation.
func (c *ShippingConfiguration) AddPackaging(in PackagingInput) (*Packaging, error) {
	packaging, err := NewPackaging(in)
	if err != nil {
		return nil, err
	}
	if idx := indexByName(c.Packagings, packaging.Name, func(p *Packaging) string { return p.Name }); idx >= 0 {
		return nil, NewDuplicate("packaging", packaging.Name)
	}

	if packaging.Default {
		c.clearDefaultPackaging(packaging.CreatedAt)
	}
	c.Packagings = append(c.Packagings, packaging)
	c.UpdatedAt = packaging.CreatedAt

	return packaging, nil
}

// UpdatePackaging merges the patch over the packaging with the given id,
// re-checking name uniqueness on rename.
func (c *ShippingConfiguration) UpdatePackaging(id uuid.UUID, patch PackagingPatch) (*Packaging, error) {
	idx := c.indexOfPackaging(id)
	if idx < 0 {
		return nil, NewNotFound("packaging", id.String())
	}
	if err := patch.validate(); err != nil {
		return nil, err
	}
	if patch.Name != nil {
		for i, other := range c.Packagings {
			if i != idx && strings.EqualFold(other.Name, *patch.Name) {
				return nil, NewDuplicate("packaging", *patch.Name)
			}
		}
	}

	now := time.Now()
	c.Packagings[idx].apply(patch, now)
	c.UpdatedAt = now

	return c.Packagings[idx], nil
}

// RemovePackaging deletes the packaging with the given id. Removing the
// default packaging leaves the configuration with no default.
func (c *ShippingConfiguration) RemovePackaging(id uuid.UUID) error {
	idx := c.indexOfPackaging(id)
	if idx < 0 {
		return NewNotFound("packaging", id.String())
	}

	c.Packagings = append(c.Packagings[:idx], c.Packagings[idx+1:]...)
	c.UpdatedAt = time.Now()

	return nil
}

// SetDefaultPackaging flags the packaging with the given id as default,
// clearing the previous default in the same mutation so the "at most one
// default" invariant never observably breaks.
func (c *ShippingConfiguration) SetDefaultPackaging(id uuid.UUID) (*Packaging, error) {
	idx := c.indexOfPackaging(id)
	if idx < 0 {
		return nil, NewNotFound("packaging", id.String())
	}

	now := time.Now()
	c.clearDefaultPackaging(now)
	c.Packagings[idx].Default = true
	c.Packagings[idx].UpdatedAt = now
	c.UpdatedAt = now

	return c.Packagings[idx], nil
}

// --- Transport providers ---

// AddTransportProvider validates the input and appends a new provider.
func (c *ShippingConfiguration) AddTransportProvider(in TransportProviderInput) (*TransportProvider, error) {
	provider, err := NewTransportProvider(in)
	if err != nil {
		return nil, err
	}
	if idx := indexByName(c.Providers, provider.Name, func(p *TransportProvider) string { return p.Name }); idx >= 0 {
		return nil, NewDuplicate("transport provider", provider.Name)
	}

	c.Providers = append(c.Providers, provider)
	c.UpdatedAt = provider.CreatedAt

	return provider, nil
}

// UpdateTransportProvider merges the patch over the named provider,
// re-checking name uniqueness on rename.
func (c *ShippingConfiguration) UpdateTransportProvider(name string, patch TransportProviderPatch) (*TransportProvider, error) {
	idx := indexByName(c.Providers, name, func(p *TransportProvider) string { return p.Name })
	if idx < 0 {
		return nil, NewNotFound("transport provider", name)
	}
	if err := patch.validate(); err != nil {
		return nil, err
	}
	if patch.Name != nil {
		for i, other := range c.Providers {
			if i != idx && strings.EqualFold(other.Name, *patch.Name) {
				return nil, NewDuplicate("transport provider", *patch.Name)
			}
		}
	}

	now := time.Now()
	c.Providers[idx].apply(patch, now)
	c.UpdatedAt = now

	return c.Providers[idx], nil
}

// RemoveTransportProvider deletes the named provider.
func (c *ShippingConfiguration) RemoveTransportProvider(name string) error {
	idx := indexByName(c.Providers, name, func(p *TransportProvider) string { return p.Name })
	if idx < 0 {
		return NewNotFound("transport provider", name)
	}

	c.Providers = append(c.Providers[:idx], c.Providers[idx+1:]...)
	c.UpdatedAt = time.Now()

	return nil
}

// --- Queries ---

// FindShippingProfile returns the profile with the given name, matching case-insensitively.
func (c *ShippingConfiguration) FindShippingProfile(name string) (*ShippingProfile, bool) {
	idx := indexByName(c.Profiles, name, func(p *ShippingProfile) string { return p.Name })
	if idx < 0 {
		return nil, false
	}

	return c.Profiles[idx], true
}

// FindDeliveryMethod returns the method with the given type key.
func (c *ShippingConfiguration) FindDeliveryMethod(methodType DeliveryMethodType) (*DeliveryMethod, bool) {
	for _, m := range c.DeliveryMethods {
		if m.Type == methodType {
			return m, true
		}
	}

	return nil, false
}

// FindPackaging returns the packaging with the given id.
func (c *ShippingConfiguration) FindPackaging(id uuid.UUID) (*Packaging, bool) {
	idx := c.indexOfPackaging(id)
	if idx < 0 {
		return nil, false
	}

	return c.Packagings[idx], true
}

// DefaultPackaging returns the packaging currently flagged default, if any.
func (c *ShippingConfiguration) DefaultPackaging() (*Packaging, bool) {
	for _, p := range c.Packagings {
		if p.Default {
			return p, true
		}
	}

	return nil, false
}

// EnabledDeliveryMethods returns the methods currently offered at checkout.
func (c *ShippingConfiguration) EnabledDeliveryMethods() []*DeliveryMethod {
	result := make([]*DeliveryMethod, 0, len(c.DeliveryMethods))
	for _, m := range c.DeliveryMethods {
		if m.Enabled {
			result = append(result, m)
		}
	}

	return result
}

// ActiveTransportProviders returns the providers currently flagged active.
func (c *ShippingConfiguration) ActiveTransportProviders() []*TransportProvider {
	result := make([]*TransportProvider, 0, len(c.Providers))
	for _, p := range c.Providers {
		if p.Active {
			result = append(result, p)
		}
	}

	return result
}

// ActiveShippingProfiles returns the profiles currently flagged active.
func (c *ShippingConfiguration) ActiveShippingProfiles() []*ShippingProfile {
	result := make([]*ShippingProfile, 0, len(c.Profiles))
	for _, p := range c.Profiles {
		if p.Active {
			result = append(result, p)
		}
	}

	return result
}

// CountPackagings returns the number of packaging options.
func (c *ShippingConfiguration) CountPackagings() int {
	return len(c.Packagings)
}

func (c *ShippingConfiguration) indexOfPackaging(id uuid.UUID) int {
	for i, p := range c.Packagings {
		if p.ID == id {
			return i
		}
	}

	return -1
}

func (c *ShippingConfiguration) clearDefaultPackaging(now time.Time) {
	for _, p := range c.Packagings {
		if p.Default {
			p.Default = false
			p.UpdatedAt = now
		}
	}
}
