// Package entity contains the core business objects of the project: the
// configuration aggregates, their sub-entities, and the invariants that
// hold across them.
package entity

import (
	"fmt"
	"time"

	"storeadmin/internal/domain/validate"

	"github.com/google/uuid"
)

// DomainKind represents the role a domain plays for the store.
type DomainKind string

const (
	// DomainKindPrincipal indicates the canonical storefront domain.
	DomainKindPrincipal DomainKind = "principal"
	// DomainKindSecondary indicates an additional custom domain.
	DomainKindSecondary DomainKind = "secondary"
	// DomainKindSubdomain indicates a subdomain of another store domain.
	DomainKindSubdomain DomainKind = "subdomain"
)

// String returns the string representation of the DomainKind.
func (k DomainKind) String() string {
	return string(k)
}

// IsValid checks if the DomainKind is a valid value.
func (k DomainKind) IsValid() bool {
	return validate.IsEnumMember(k, DomainKindPrincipal, DomainKindSecondary, DomainKindSubdomain)
}

// DomainConnectionState represents the DNS connection state of a domain.
type DomainConnectionState string

const (
	// DomainStateConnected indicates DNS records resolve to the platform.
	DomainStateConnected DomainConnectionState = "connected"
	// DomainStateVerifying indicates a verification is in progress.
	DomainStateVerifying DomainConnectionState = "verifying"
	// DomainStateDisconnected indicates the domain no longer resolves here.
	DomainStateDisconnected DomainConnectionState = "disconnected"
)

// String returns the string representation of the DomainConnectionState.
func (s DomainConnectionState) String() string {
	return string(s)
}

// IsValid checks if the DomainConnectionState is a valid value.
func (s DomainConnectionState) IsValid() bool {
	return validate.IsEnumMember(s, DomainStateConnected, DomainStateVerifying, DomainStateDisconnected)
}

// DomainSource represents where a domain came from.
type DomainSource string

const (
	// DomainSourcePlatformPurchase indicates the domain was bought through the platform.
	DomainSourcePlatformPurchase DomainSource = "platform_purchase"
	// DomainSourceExternal indicates the domain is managed by an external registrar.
	DomainSourceExternal DomainSource = "external"
	// DomainSourcePlatformSubdomain indicates the free subdomain assigned by the platform.
	DomainSourcePlatformSubdomain DomainSource = "platform_subdomain"
)

// String returns the string representation of the DomainSource.
func (s DomainSource) String() string {
	return string(s)
}

// IsValid checks if the DomainSource is a valid value.
func (s DomainSource) IsValid() bool {
	return validate.IsEnumMember(s, DomainSourcePlatformPurchase, DomainSourceExternal, DomainSourcePlatformSubdomain)
}

// DomainChange is a single entry in a domain's change history.
type DomainChange struct {
	Field     string    `json:"field"`      // The field that changed.
	Previous  string    `json:"previous"`   // The value before the change.
	Current   string    `json:"current"`    // The value after the change.
	ChangedAt time.Time `json:"changed_at"` // When the change was applied.
}

// Domain represents a single domain attached to a store.
type Domain struct {
	ID                 uuid.UUID             `json:"id"`                  // The Global Unique Identifier (GUID) for the domain record.
	Name               string                `json:"name"`                // The hostname, unique (case-insensitively) within the configuration.
	Kind               DomainKind            `json:"kind"`                // The role of this domain (principal, secondary, subdomain).
	ConnectionState    DomainConnectionState `json:"connection_state"`    // The current DNS connection state.
	Source             DomainSource          `json:"source"`              // Where the domain came from.
	ConnectedAt        time.Time             `json:"connected_at"`        // When the domain was first connected.
	RedirectionEnabled bool                  `json:"redirection_enabled"` // Whether this domain redirects to the principal domain.
	Purchased          bool                  `json:"purchased"`           // Whether the domain was purchased through the platform.
	SubdomainLabel     string                `json:"subdomain_label"`     // Optional label when Kind is subdomain.
	SSLActive          bool                  `json:"ssl_active"`          // Whether an SSL certificate is active.
	HTTPSEnabled       bool                  `json:"https_enabled"`       // Whether HTTPS enforcement is on.
	History            []DomainChange        `json:"history"`             // Ordered change history, oldest first.
	CreatedAt          time.Time             `json:"created_at"`          // Timestamp of when this record was created.
	UpdatedAt          time.Time             `json:"updated_at"`          // Timestamp of the last modification.
}

// DomainInput carries the caller-supplied fields for creating a domain.
type DomainInput struct {
	Name               string
	Kind               DomainKind
	ConnectionState    DomainConnectionState
	Source             DomainSource
	ConnectedAt        *time.Time // Defaults to now when unset.
	RedirectionEnabled bool
	Purchased          bool
	SubdomainLabel     string
	SSLActive          bool
	HTTPSEnabled       bool
}

// NewDomain validates the input and builds a structurally valid Domain with a
// server-assigned id, empty history and fresh timestamps.
func NewDomain(in DomainInput) (*Domain, error) {
	if !validate.IsNonEmpty(in.Name) {
		return nil, NewMissingValue("name")
	}
	if !validate.IsHostname(in.Name) {
		return nil, NewInvalidValue("name", fmt.Sprintf("%q is not a valid hostname", in.Name))
	}
	if in.Kind == "" {
		return nil, NewMissingValue("kind")
	}
	if !in.Kind.IsValid() {
		return nil, NewInvalidValue("kind", fmt.Sprintf("unknown domain kind %q", in.Kind))
	}
	if in.ConnectionState == "" {
		return nil, NewMissingValue("connection_state")
	}
	if !in.ConnectionState.IsValid() {
		return nil, NewInvalidValue("connection_state", fmt.Sprintf("unknown connection state %q", in.ConnectionState))
	}
	if in.Source == "" {
		return nil, NewMissingValue("source")
	}
	if !in.Source.IsValid() {
		return nil, NewInvalidValue("source", fmt.Sprintf("unknown domain source %q", in.Source))
	}

	now := time.Now()
	connectedAt := now
	if in.ConnectedAt != nil {
		connectedAt = *in.ConnectedAt
	}

	return &Domain{
		ID:                 uuid.New(),
		Name:               in.Name,
		Kind:               in.Kind,
		ConnectionState:    in.ConnectionState,
		Source:             in.Source,
		ConnectedAt:        connectedAt,
		RedirectionEnabled: in.RedirectionEnabled,
		Purchased:          in.Purchased,
		SubdomainLabel:     in.SubdomainLabel,
		SSLActive:          in.SSLActive,
		HTTPSEnabled:       in.HTTPSEnabled,
		History:            []DomainChange{},
		CreatedAt:          now,
		UpdatedAt:          now,
	}, nil
}

// DomainPatch carries the optional fields of a partial domain update.
// Only non-nil fields are validated and applied.
type DomainPatch struct {
	Name               *string
	Kind               *DomainKind
	ConnectionState    *DomainConnectionState
	Source             *DomainSource
	RedirectionEnabled *bool
	Purchased          *bool
	SubdomainLabel     *string
	SSLActive          *bool
	HTTPSEnabled       *bool
}

// validate checks every supplied field without touching the domain.
// Name uniqueness is the owning aggregate's concern.
func (p DomainPatch) validate() error {
	if p.Name != nil {
		if !validate.IsNonEmpty(*p.Name) {
			return NewMissingValue("name")
		}
		if !validate.IsHostname(*p.Name) {
			return NewInvalidValue("name", fmt.Sprintf("%q is not a valid hostname", *p.Name))
		}
	}
	if p.Kind != nil && !p.Kind.IsValid() {
		return NewInvalidValue("kind", fmt.Sprintf("unknown domain kind %q", *p.Kind))
	}
	if p.ConnectionState != nil && !p.ConnectionState.IsValid() {
		return NewInvalidValue("connection_state", fmt.Sprintf("unknown connection state %q", *p.ConnectionState))
	}
	if p.Source != nil && !p.Source.IsValid() {
		return NewInvalidValue("source", fmt.Sprintf("unknown domain source %q", *p.Source))
	}

	return nil
}

// apply merges the patch over the domain, appending a history entry per
// changed field. The patch must have been validated first.
func (d *Domain) apply(p DomainPatch, now time.Time) {
	if p.Name != nil && *p.Name != d.Name {
		d.recordChange("name", d.Name, *p.Name, now)
		d.Name = *p.Name
	}
	if p.Kind != nil && *p.Kind != d.Kind {
		d.recordChange("kind", d.Kind.String(), p.Kind.String(), now)
		d.Kind = *p.Kind
	}
	if p.ConnectionState != nil && *p.ConnectionState != d.ConnectionState {
		d.recordChange("connection_state", d.ConnectionState.String(), p.ConnectionState.String(), now)
		d.ConnectionState = *p.ConnectionState
	}
	if p.Source != nil && *p.Source != d.Source {
		d.recordChange("source", d.Source.String(), p.Source.String(), now)
		d.Source = *p.Source
	}
	if p.RedirectionEnabled != nil && *p.RedirectionEnabled != d.RedirectionEnabled {
		d.recordChange("redirection_enabled", fmt.Sprint(d.RedirectionEnabled), fmt.Sprint(*p.RedirectionEnabled), now)
		d.RedirectionEnabled = *p.RedirectionEnabled
	}
	if p.Purchased != nil && *p.Purchased != d.Purchased {
		d.recordChange("purchased", fmt.Sprint(d.Purchased), fmt.Sprint(*p.Purchased), now)
		d.Purchased = *p.Purchased
	}
	if p.SubdomainLabel != nil && *p.SubdomainLabel != d.SubdomainLabel {
		d.recordChange("subdomain_label", d.SubdomainLabel, *p.SubdomainLabel, now)
		d.SubdomainLabel = *p.SubdomainLabel
	}
	if p.SSLActive != nil && *p.SSLActive != d.SSLActive {
		d.recordChange("ssl_active", fmt.Sprint(d.SSLActive), fmt.Sprint(*p.SSLActive), now)
		d.SSLActive = *p.SSLActive
	}
	if p.HTTPSEnabled != nil && *p.HTTPSEnabled != d.HTTPSEnabled {
		d.recordChange("https_enabled", fmt.Sprint(d.HTTPSEnabled), fmt.Sprint(*p.HTTPSEnabled), now)
		d.HTTPSEnabled = *p.HTTPSEnabled
	}

	d.UpdatedAt = now
}

func (d *Domain) recordChange(field, previous, current string, now time.Time) {
	d.History = append(d.History, DomainChange{
		Field:     field,
		Previous:  previous,
		Current:   current,
		ChangedAt: now,
	})
}
