package entity

import (
	"fmt"
	"time"

	"storeadmin/internal/domain/validate"

	"github.com/google/uuid"
)

// DeliveryMethodType identifies a delivery method. Methods are keyed and
// toggled by this type, never by a free-form id.
type DeliveryMethodType string

const (
	// DeliveryMethodHome is courier delivery to the buyer's address.
	DeliveryMethodHome DeliveryMethodType = "home_delivery"
	// DeliveryMethodPickupPoint is delivery to a shared pickup point.
	DeliveryMethodPickupPoint DeliveryMethodType = "pickup_point"
	// DeliveryMethodStorePickup is collection at the merchant's store.
	DeliveryMethodStorePickup DeliveryMethodType = "store_pickup"
	// DeliveryMethodExpress is same-day or next-day courier delivery.
	DeliveryMethodExpress DeliveryMethodType = "express"
)

// String returns the string representation of the DeliveryMethodType.
func (t DeliveryMethodType) String() string {
	return string(t)
}

// IsValid checks if the DeliveryMethodType is a valid value.
func (t DeliveryMethodType) IsValid() bool {
	return validate.IsEnumMember(t, DeliveryMethodHome, DeliveryMethodPickupPoint, DeliveryMethodStorePickup, DeliveryMethodExpress)
}

// PackagingKind represents the physical form of a packaging option.
type PackagingKind string

const (
	// PackagingBox is a rigid box.
	PackagingBox PackagingKind = "box"
	// PackagingEnvelope is a padded or flat envelope.
	PackagingEnvelope PackagingKind = "envelope"
	// PackagingBag is a flexible mailer bag.
	PackagingBag PackagingKind = "bag"
	// PackagingTube is a cylindrical tube.
	PackagingTube PackagingKind = "tube"
)

// String returns the string representation of the PackagingKind.
func (k PackagingKind) String() string {
	return string(k)
}

// IsValid checks if the PackagingKind is a valid value.
func (k PackagingKind) IsValid() bool {
	return validate.IsEnumMember(k, PackagingBox, PackagingEnvelope, PackagingBag, PackagingTube)
}

// ShippingProfile groups shipping rules for a weight band and a set of regions.
type ShippingProfile struct {
	ID          uuid.UUID `json:"id"`            // The Global Unique Identifier (GUID) for the profile.
	Name        string    `json:"name"`          // The profile name, unique (case-insensitively) among profiles.
	Description string    `json:"description"`   // Optional merchant-facing description.
	MinWeightKg float64   `json:"min_weight_kg"` // Lower bound of the covered weight band; non-negative.
	MaxWeightKg float64   `json:"max_weight_kg"` // Upper bound of the covered weight band; >= MinWeightKg.
	BaseRate    float64   `json:"base_rate"`     // Base shipping rate for the band; non-negative.
	Regions     []string  `json:"regions"`       // Region codes the profile applies to; never empty.
	Active      bool      `json:"active"`        // Whether the profile is in use.
	CreatedAt   time.Time `json:"created_at"`    // Timestamp of when this record was created.
	UpdatedAt   time.Time `json:"updated_at"`    // Timestamp of the last modification.
}

// ShippingProfileInput carries the caller-supplied fields for creating a profile.
type ShippingProfileInput struct {
	Name        string
	Description string
	MinWeightKg float64
	MaxWeightKg float64
	BaseRate    float64
	Regions     []string
	Active      bool
}

// NewShippingProfile validates the input and builds a structurally valid profile.
func NewShippingProfile(in ShippingProfileInput) (*ShippingProfile, error) {
	if !validate.IsNonEmpty(in.Name) {
		return nil, NewMissingValue("name")
	}
	if !validate.IsNonNegative(in.MinWeightKg) {
		return nil, NewInvalidValue("min_weight_kg", "weight cannot be negative")
	}
	if !validate.IsNonNegative(in.MaxWeightKg) {
		return nil, NewInvalidValue("max_weight_kg", "weight cannot be negative")
	}
	if in.MaxWeightKg < in.MinWeightKg {
		return nil, NewInvalidValue("max_weight_kg", "max weight cannot be below min weight")
	}
	if !validate.IsNonNegative(in.BaseRate) {
		return nil, NewInvalidValue("base_rate", "rate cannot be negative")
	}
	if len(in.Regions) == 0 {
		return nil, NewMissingValue("regions")
	}
	for _, r := range in.Regions {
		if !validate.IsNonEmpty(r) {
			return nil, NewInvalidValue("regions", "region entries must be non-empty")
		}
	}

	now := time.Now()

	return &ShippingProfile{
		ID:          uuid.New(),
		Name:        in.Name,
		Description: in.Description,
		MinWeightKg: in.MinWeightKg,
		MaxWeightKg: in.MaxWeightKg,
		BaseRate:    in.BaseRate,
		Regions:     in.Regions,
		Active:      in.Active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// ShippingProfilePatch carries the optional fields of a partial profile update.
type ShippingProfilePatch struct {
	Name        *string
	Description *string
	MinWeightKg *float64
	MaxWeightKg *float64
	BaseRate    *float64
	Regions     []string
	Active      *bool
}

func (p ShippingProfilePatch) validate(current *ShippingProfile) error {
	if p.Name != nil && !validate.IsNonEmpty(*p.Name) {
		return NewMissingValue("name")
	}
	if p.MinWeightKg != nil && !validate.IsNonNegative(*p.MinWeightKg) {
		return NewInvalidValue("min_weight_kg", "weight cannot be negative")
	}
	if p.MaxWeightKg != nil && !validate.IsNonNegative(*p.MaxWeightKg) {
		return NewInvalidValue("max_weight_kg", "weight cannot be negative")
	}

	// The band must stay consistent after merging the patch.
	minW := current.MinWeightKg
	if p.MinWeightKg != nil {
		minW = *p.MinWeightKg
	}
	maxW := current.MaxWeightKg
	if p.MaxWeightKg != nil {
		maxW = *p.MaxWeightKg
	}
	if maxW < minW {
		return NewInvalidValue("max_weight_kg", "max weight cannot be below min weight")
	}

	if p.BaseRate != nil && !validate.IsNonNegative(*p.BaseRate) {
		return NewInvalidValue("base_rate", "rate cannot be negative")
	}
	if p.Regions != nil {
		if len(p.Regions) == 0 {
			return NewInvalidValue("regions", "region list cannot be emptied")
		}
		for _, r := range p.Regions {
			if !validate.IsNonEmpty(r) {
				return NewInvalidValue("regions", "region entries must be non-empty")
			}
		}
	}

	return nil
}

func (s *ShippingProfile) apply(p ShippingProfilePatch, now time.Time) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
	if p.MinWeightKg != nil {
		s.MinWeightKg = *p.MinWeightKg
	}
	if p.MaxWeightKg != nil {
		s.MaxWeightKg = *p.MaxWeightKg
	}
	if p.BaseRate != nil {
		s.BaseRate = *p.BaseRate
	}
	if p.Regions != nil {
		s.Regions = p.Regions
	}
	if p.Active != nil {
		s.Active = *p.Active
	}
	s.UpdatedAt = now
}

// DeliveryMethod represents one way orders can reach the buyer.
type DeliveryMethod struct {
	Type      DeliveryMethodType `json:"type"`       // The method key; unique within the configuration.
	Enabled   bool               `json:"enabled"`    // Whether the method is offered at checkout.
	Fee       float64            `json:"fee"`        // Flat fee charged for the method; non-negative.
	MinDays   int                `json:"min_days"`   // Earliest estimated delivery, in days; non-negative.
	MaxDays   int                `json:"max_days"`   // Latest estimated delivery, in days; >= MinDays.
	CreatedAt time.Time          `json:"created_at"` // Timestamp of when this record was created.
	UpdatedAt time.Time          `json:"updated_at"` // Timestamp of the last modification.
}

// DeliveryMethodInput carries the caller-supplied fields for configuring a delivery method.
type DeliveryMethodInput struct {
	Type    DeliveryMethodType
	Enabled bool
	Fee     float64
	MinDays int
	MaxDays int
}

// NewDeliveryMethod validates the input and builds a structurally valid DeliveryMethod.
func NewDeliveryMethod(in DeliveryMethodInput) (*DeliveryMethod, error) {
	if in.Type == "" {
		return nil, NewMissingValue("type")
	}
	if !in.Type.IsValid() {
		return nil, NewInvalidValue("type", fmt.Sprintf("unknown delivery method type %q", in.Type))
	}
	if !validate.IsNonNegative(in.Fee) {
		return nil, NewInvalidValue("fee", "fee cannot be negative")
	}
	if in.MinDays < 0 {
		return nil, NewInvalidValue("min_days", "estimate cannot be negative")
	}
	if in.MaxDays < in.MinDays {
		return nil, NewInvalidValue("max_days", "max estimate cannot be below min estimate")
	}

	now := time.Now()

	return &DeliveryMethod{
		Type:      in.Type,
		Enabled:   in.Enabled,
		Fee:       in.Fee,
		MinDays:   in.MinDays,
		MaxDays:   in.MaxDays,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// DeliveryMethodPatch carries the optional fields of a partial method update.
// The type key itself is immutable.
type DeliveryMethodPatch struct {
	Enabled *bool
	Fee     *float64
	MinDays *int
	MaxDays *int
}

func (p DeliveryMethodPatch) validate(current *DeliveryMethod) error {
	if p.Fee != nil && !validate.IsNonNegative(*p.Fee) {
		return NewInvalidValue("fee", "fee cannot be negative")
	}

	minDays := current.MinDays
	if p.MinDays != nil {
		minDays = *p.MinDays
	}
	maxDays := current.MaxDays
	if p.MaxDays != nil {
		maxDays = *p.MaxDays
	}
	if minDays < 0 {
		return NewInvalidValue("min_days", "estimate cannot be negative")
	}
	if maxDays < minDays {
		return NewInvalidValue("max_days", "max estimate cannot be below min estimate")
	}

	return nil
}

func (m *DeliveryMethod) apply(p DeliveryMethodPatch, now time.Time) {
	if p.Enabled != nil {
		m.Enabled = *p.Enabled
	}
	if p.Fee != nil {
		m.Fee = *p.Fee
	}
	if p.MinDays != nil {
		m.MinDays = *p.MinDays
	}
	if p.MaxDays != nil {
		m.MaxDays = *p.MaxDays
	}
	m.UpdatedAt = now
}

// Packaging represents a packaging option available for fulfilment.
// At most one packaging per configuration carries the default flag.
type Packaging struct {
	ID          uuid.UUID     `json:"id"`            // The Global Unique Identifier (GUID) for the packaging.
	Name        string        `json:"name"`          // The packaging name, unique (case-insensitively) among packagings.
	Kind        PackagingKind `json:"kind"`          // The physical form of the packaging.
	MaxWeightKg float64       `json:"max_weight_kg"` // Maximum supported content weight; non-negative.
	LengthCm    float64       `json:"length_cm"`     // Outer length; non-negative.
	WidthCm     float64       `json:"width_cm"`      // Outer width; non-negative.
	HeightCm    float64       `json:"height_cm"`     // Outer height; non-negative.
	Default     bool          `json:"default"`       // Whether this is the fallback packaging.
	CreatedAt   time.Time     `json:"created_at"`    // Timestamp of when this record was created.
	UpdatedAt   time.Time     `json:"updated_at"`    // Timestamp of the last modification.
}

// PackagingInput carries the caller-supplied fields for creating a packaging.
type PackagingInput struct {
	Name        string
	Kind        PackagingKind
	MaxWeightKg float64
	LengthCm    float64
	WidthCm     float64
	HeightCm    float64
	Default     bool
}

// NewPackaging validates the input and builds a structurally valid Packaging.
func NewPackaging(in PackagingInput) (*Packaging, error) {
	if !validate.IsNonEmpty(in.Name) {
		return nil, NewMissingValue("name")
	}
	if in.Kind == "" {
		return nil, NewMissingValue("kind")
	}
	if !in.Kind.IsValid() {
		return nil, NewInvalidValue("kind", fmt.Sprintf("unknown packaging kind %q", in.Kind))
	}
	if !validate.IsNonNegative(in.MaxWeightKg) {
		return nil, NewInvalidValue("max_weight_kg", "measurement cannot be negative")
	}
	if !validate.IsNonNegative(in.LengthCm) {
		return nil, NewInvalidValue("length_cm", "measurement cannot be negative")
	}
	if !validate.IsNonNegative(in.WidthCm) {
		return nil, NewInvalidValue("width_cm", "measurement cannot be negative")
	}
	if !validate.IsNonNegative(in.HeightCm) {
		return nil, NewInvalidValue("height_cm", "measurement cannot be negative")
	}

	now := time.Now()

	return &Packaging{
		ID:          uuid.New(),
		Name:        in.Name,
		Kind:        in.Kind,
		MaxWeightKg: in.MaxWeightKg,
		LengthCm:    in.LengthCm,
		WidthCm:     in.WidthCm,
		HeightCm:    in.HeightCm,
		Default:     in.Default,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// PackagingPatch carries the optional fields of a partial packaging update.
// The default flag is managed by the aggregate's SetDefaultPackaging.
type PackagingPatch struct {
	Name        *string
	Kind        *PackagingKind
	MaxWeightKg *float64
	LengthCm    *float64
	WidthCm     *float64
	HeightCm    *float64
}

func (p PackagingPatch) validate() error {
	if p.Name != nil && !validate.IsNonEmpty(*p.Name) {
		return NewMissingValue("name")
	}
	if p.Kind != nil && !p.Kind.IsValid() {
		return NewInvalidValue("kind", fmt.Sprintf("unknown packaging kind %q", *p.Kind))
	}
	if p.MaxWeightKg != nil && !validate.IsNonNegative(*p.MaxWeightKg) {
		return NewInvalidValue("max_weight_kg", "measurement cannot be negative")
	}
	if p.LengthCm != nil && !validate.IsNonNegative(*p.LengthCm) {
		return NewInvalidValue("length_cm", "measurement cannot be negative")
	}
	if p.WidthCm != nil && !validate.IsNonNegative(*p.WidthCm) {
		return NewInvalidValue("width_cm", "measurement cannot be negative")
	}
	if p.HeightCm != nil && !validate.IsNonNegative(*p.HeightCm) {
		return NewInvalidValue("height_cm", "measurement cannot be negative")
	}

	return nil
}

func (pk *Packaging) apply(p PackagingPatch, now time.Time) {
	if p.Name != nil {
		pk.Name = *p.Name
	}
	if p.Kind != nil {
		pk.Kind = *p.Kind
	}
	if p.MaxWeightKg != nil {
		pk.MaxWeightKg = *p.MaxWeightKg
	}
	if p.LengthCm != nil {
		pk.LengthCm = *p.LengthCm
	}
	if p.WidthCm != nil {
		pk.WidthCm = *p.WidthCm
	}
	if p.HeightCm != nil {
		pk.HeightCm = *p.HeightCm
	}
	pk.UpdatedAt = now
}

// TransportProvider represents a carrier the store ships with.
type TransportProvider struct {
	ID           uuid.UUID `json:"id"`            // The Global Unique Identifier (GUID) for the provider.
	Name         string    `json:"name"`          // The provider name, unique (case-insensitively) among providers.
	Code         string    `json:"code"`          // Short carrier code used on labels.
	TrackingURL  string    `json:"tracking_url"`  // Optional tracking URL template.
	ContactEmail string    `json:"contact_email"` // Optional carrier support contact.
	Active       bool      `json:"active"`        // Whether the provider is in use.
	CreatedAt    time.Time `json:"created_at"`    // Timestamp of when this record was created.
	UpdatedAt    time.Time `json:"updated_at"`    // Timestamp of the last modification.
}

// TransportProviderInput carries the caller-supplied fields for registering a provider.
type TransportProviderInput struct {
	Name         string
	Code         string
	TrackingURL  string
	ContactEmail string
	Active       bool
}

// NewTransportProvider validates the input and builds a structurally valid provider.
func NewTransportProvider(in TransportProviderInput) (*TransportProvider, error) {
	if !validate.IsNonEmpty(in.Name) {
		return nil, NewMissingValue("name")
	}
	if !validate.IsNonEmpty(in.Code) {
		return nil, NewMissingValue("code")
	}
	if in.TrackingURL != "" && !validate.IsURL(in.TrackingURL) {
		return nil, NewInvalidValue("tracking_url", fmt.Sprintf("%q is not a valid URL", in.TrackingURL))
	}
	if in.ContactEmail != "" && !validate.IsEmail(in.ContactEmail) {
		return nil, NewInvalidValue("contact_email", fmt.Sprintf("%q is not a valid email address", in.ContactEmail))
	}

	now := time.Now()

	return &TransportProvider{
		ID:           uuid.New(),
		Name:         in.Name,
		Code:         in.Code,
		TrackingURL:  in.TrackingURL,
		ContactEmail: in.ContactEmail,
		Active:       in.Active,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// TransportProviderPatch carries the optional fields of a partial provider update.
type TransportProviderPatch struct {
	Name         *string
	Code         *string
	TrackingURL  *string
	ContactEmail *string
	Active       *bool
}

func (p TransportProviderPatch) validate() error {
	if p.Name != nil && !validate.IsNonEmpty(*p.Name) {
		return NewMissingValue("name")
	}
	if p.Code != nil && !validate.IsNonEmpty(*p.Code) {
		return NewMissingValue("code")
	}
	if p.TrackingURL != nil && *p.TrackingURL != "" && !validate.IsURL(*p.TrackingURL) {
		return NewInvalidValue("tracking_url", fmt.Sprintf("%q is not a valid URL", *p.TrackingURL))
	}
	if p.ContactEmail != nil && *p.ContactEmail != "" && !validate.IsEmail(*p.ContactEmail) {
		return NewInvalidValue("contact_email", fmt.Sprintf("%q is not a valid email address", *p.ContactEmail))
	}

	return nil
}

func (t *TransportProvider) apply(p TransportProviderPatch, now time.Time) {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Code != nil {
		t.Code = *p.Code
	}
	if p.TrackingURL != nil {
		t.TrackingURL = *p.TrackingURL
	}
	if p.ContactEmail != nil {
		t.ContactEmail = *p.ContactEmail
	}
	if p.Active != nil {
		t.Active = *p.Active
	}
	t.UpdatedAt = now
}
