package entity

import (
	"fmt"
	"time"

	"storeadmin/internal/domain/validate"

	"github.com/google/uuid"
)

// SalesChannel represents an outlet the store sells through (marketplace,
// social storefront, point of sale, ...).
type SalesChannel struct {
	ID        uuid.UUID      `json:"id"`         // The Global Unique Identifier (GUID) for the channel.
	Name      string         `json:"name"`       // The channel name, unique (case-insensitively) among channels.
	URL       string         `json:"url"`        // Optional public URL of the channel.
	Active    bool           `json:"active"`     // Whether the channel is currently selling.
	Kind      string         `json:"kind"`       // Free-form channel category.
	Config    map[string]any `json:"config"`     // Opaque channel configuration; never interpreted.
	CreatedAt time.Time      `json:"created_at"` // Timestamp of when this record was created.
	UpdatedAt time.Time      `json:"updated_at"` // Timestamp of the last modification.
}

// SalesChannelInput carries the caller-supplied fields for creating a channel.
type SalesChannelInput struct {
	Name   string
	URL    string
	Active bool
	Kind   string
	Config map[string]any
}

// NewSalesChannel validates the input and builds a structurally valid SalesChannel.
func NewSalesChannel(in SalesChannelInput) (*SalesChannel, error) {
	if !validate.IsNonEmpty(in.Name) {
		return nil, NewMissingValue("name")
	}
	if !validate.IsNonEmpty(in.Kind) {
		return nil, NewMissingValue("kind")
	}
	if in.URL != "" && !validate.IsURL(in.URL) {
		return nil, NewInvalidValue("url", fmt.Sprintf("%q is not a valid URL", in.URL))
	}

	now := time.Now()

	return &SalesChannel{
		ID:        uuid.New(),
		Name:      in.Name,
		URL:       in.URL,
		Active:    in.Active,
		Kind:      in.Kind,
		Config:    in.Config,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// SalesChannelPatch carries the optional fields of a partial channel update.
type SalesChannelPatch struct {
	Name   *string
	URL    *string
	Active *bool
	Kind   *string
	Config map[string]any
}

func (p SalesChannelPatch) validate() error {
	if p.Name != nil && !validate.IsNonEmpty(*p.Name) {
		return NewMissingValue("name")
	}
	if p.Kind != nil && !validate.IsNonEmpty(*p.Kind) {
		return NewMissingValue("kind")
	}
	if p.URL != nil && *p.URL != "" && !validate.IsURL(*p.URL) {
		return NewInvalidValue("url", fmt.Sprintf("%q is not a valid URL", *p.URL))
	}

	return nil
}

func (s *SalesChannel) apply(p SalesChannelPatch, now time.Time) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.URL != nil {
		s.URL = *p.URL
	}
	if p.Active != nil {
		s.Active = *p.Active
	}
	if p.Kind != nil {
		s.Kind = *p.Kind
	}
	if p.Config != nil {
		s.Config = p.Config
	}
	s.UpdatedAt = now
}
