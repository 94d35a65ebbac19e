package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DomainsConfiguration is the aggregate owning every domain attached to a
// store, plus the principal-domain reference and the global redirection flag.
//
// Invariants:
//   - domain names are unique within the collection (case-insensitive)
//   - the principal-domain reference, when set, names a domain in the collection
//   - global redirection can only be enabled while a principal domain is set
//   - the domain backing active redirection cannot be removed
type DomainsConfiguration struct {
	ID                uuid.UUID `json:"id"`                 // The Global Unique Identifier (GUID) for the configuration.
	StoreID           uuid.UUID `json:"store_id"`           // The store this configuration belongs to; one configuration per store.
	Domains           []*Domain `json:"domains"`            // Ordered collection of domains.
	PrincipalDomain   string    `json:"principal_domain"`   // Name of the canonical domain; empty when unset.
	GlobalRedirection bool      `json:"global_redirection"` // Whether secondary domains redirect to the principal one.
	Version           int       `json:"version"`            // Persistence snapshot version, used for optimistic concurrency.
	CreatedAt         time.Time `json:"created_at"`         // Timestamp of when this configuration was created.
	UpdatedAt         time.Time `json:"updated_at"`         // Timestamp of the last successful mutation.
}

// NewDomainsConfiguration builds a brand-new configuration for a store,
// fully validating every supplied domain.
func NewDomainsConfiguration(storeID uuid.UUID, inputs []DomainInput) (*DomainsConfiguration, error) {
	now := time.Now()
	cfg := &DomainsConfiguration{
		ID:        uuid.New(),
		StoreID:   storeID,
		Domains:   make([]*Domain, 0, len(inputs)),
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, in := range inputs {
		domain, err := NewDomain(in)
		if err != nil {
			return nil, err
		}
		if _, ok := cfg.FindDomain(domain.Name); ok {
			return nil, NewDuplicate("domain", domain.Name)
		}
		cfg.Domains = append(cfg.Domains, domain)
	}

	return cfg, nil
}

// ReconstructDomainsConfiguration rehydrates a configuration from storage.
// The stored shape is trusted; invariants hold for every future mutation.
func ReconstructDomainsConfiguration(
	id, storeID uuid.UUID,
	domains []*Domain,
	principalDomain string,
	globalRedirection bool,
	version int,
	createdAt, updatedAt time.Time,
) *DomainsConfiguration {
	if domains == nil {
		domains = []*Domain{}
	}

	return &DomainsConfiguration{
		ID:                id,
		StoreID:           storeID,
		Domains:           domains,
		PrincipalDomain:   principalDomain,
		GlobalRedirection: globalRedirection,
		Version:           version,
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
	}
}

// AddDomain validates the input and appends a new domain.
// Fails with duplicate when a domain with the same name already exists,
// comparing case-insensitively.
func (c *DomainsConfiguration) AddDomain(in DomainInput) (*Domain, error) {
	domain, err := NewDomain(in)
	if err != nil {
		return nil, err
	}
	if _, ok := c.FindDomain(domain.Name); ok {
		return nil, NewDuplicate("domain", domain.Name)
	}

	c.Domains = append(c.Domains, domain)
	c.UpdatedAt = domain.CreatedAt

	return domain, nil
}

// UpdateDomain merges the patch over the named domain. A rename re-checks
// uniqueness against all other domains; renaming the principal domain keeps
// the principal reference in step.
func (c *DomainsConfiguration) UpdateDomain(name string, patch DomainPatch) (*Domain, error) {
	idx := c.indexOfDomain(name)
	if idx < 0 {
		return nil, NewNotFound("domain", name)
	}
	if err := patch.validate(); err != nil {
		return nil, err
	}

	domain := c.Domains[idx]
	if patch.Name != nil {
		for i, other := range c.Domains {
			if i != idx && strings.EqualFold(other.Name, *patch.Name) {
				return nil, NewDuplicate("domain", *patch.Name)
			}
		}
	}

	wasPrincipal := c.isPrincipal(domain.Name)
	now := time.Now()
	domain.apply(patch, now)
	if wasPrincipal {
		c.PrincipalDomain = domain.Name
	}
	c.UpdatedAt = now

	return domain, nil
}

// RemoveDomain deletes the named domain. Removing the domain backing active
// global redirection is rejected; removing the principal domain while
// redirection is disabled clears the principal reference.
func (c *DomainsConfiguration) RemoveDomain(name string) error {
	idx := c.indexOfDomain(name)
	if idx < 0 {
		return NewNotFound("domain", name)
	}

	if c.isPrincipal(c.Domains[idx].Name) {
		if c.GlobalRedirection {
			return NewInvalidValue("name", "cannot remove the principal domain while global redirection is enabled")
		}
		c.PrincipalDomain = ""
	}

	c.Domains = append(c.Domains[:idx], c.Domains[idx+1:]...)
	c.UpdatedAt = time.Now()

	return nil
}

// SetPrincipalDomain designates the named domain as the canonical one.
// The stored (canonical-case) name is referenced, not the lookup spelling.
func (c *DomainsConfiguration) SetPrincipalDomain(name string) error {
	domain, ok := c.FindDomain(name)
	if !ok {
		return NewNotFound("domain", name)
	}

	c.PrincipalDomain = domain.Name
	c.UpdatedAt = time.Now()

	return nil
}

// ToggleGlobalRedirection flips the redirection flag. Enabling requires a
// principal domain to be set; disabling is always allowed.
func (c *DomainsConfiguration) ToggleGlobalRedirection(enabled bool) error {
	if enabled && c.PrincipalDomain == "" {
		return NewInvalidValue("global_redirection", "cannot enable global redirection without a principal domain")
	}

	c.GlobalRedirection = enabled
	c.UpdatedAt = time.Now()

	return nil
}

// FindDomain returns the domain with the given name, matching case-insensitively.
func (c *DomainsConfiguration) FindDomain(name string) (*Domain, bool) {
	idx := c.indexOfDomain(name)
	if idx < 0 {
		return nil, false
	}

	return c.Domains[idx], true
}

// DomainsByKind returns the domains of the given kind, in collection order.
func (c *DomainsConfiguration) DomainsByKind(kind DomainKind) []*Domain {
	result := make([]*Domain, 0, len(c.Domains))
	for _, d := range c.Domains {
		if d.Kind == kind {
			result = append(result, d)
		}
	}

	return result
}

// DomainsByState returns the domains in the given connection state, in collection order.
func (c *DomainsConfiguration) DomainsByState(state DomainConnectionState) []*Domain {
	result := make([]*Domain, 0, len(c.Domains))
	for _, d := range c.Domains {
		if d.ConnectionState == state {
			result = append(result, d)
		}
	}

	return result
}

// CountDomains returns the number of domains in the configuration.
func (c *DomainsConfiguration) CountDomains() int {
	return len(c.Domains)
}

func (c *DomainsConfiguration) indexOfDomain(name string) int {
	for i, d := range c.Domains {
		if strings.EqualFold(d.Name, name) {
			return i
		}
	}

	return -1
}

func (c *DomainsConfiguration) isPrincipal(name string) bool {
	return c.PrincipalDomain != "" && strings.EqualFold(c.PrincipalDomain, name)
}
