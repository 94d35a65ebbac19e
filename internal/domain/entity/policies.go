package entity

import (
	"fmt"
	"time"

	"storeadmin/internal/domain/validate"

	"github.com/google/uuid"
)

// RefundMethod represents how a return is compensated.
type RefundMethod string

const (
	// RefundOriginalPayment refunds to the original payment method.
	RefundOriginalPayment RefundMethod = "original_payment"
	// RefundStoreCredit refunds as store credit.
	RefundStoreCredit RefundMethod = "store_credit"
	// RefundExchange compensates with an exchange only.
	RefundExchange RefundMethod = "exchange"
)

// String returns the string representation of the RefundMethod.
func (m RefundMethod) String() string {
	return string(m)
}

// IsValid checks if the RefundMethod is a valid value.
func (m RefundMethod) IsValid() bool {
	return validate.IsEnumMember(m, RefundOriginalPayment, RefundStoreCredit, RefundExchange)
}

// TemplateKind represents the document a template renders.
type TemplateKind string

const (
	// TemplateTermsOfService is the store's terms of service.
	TemplateTermsOfService TemplateKind = "terms_of_service"
	// TemplatePrivacyPolicy is the store's privacy policy.
	TemplatePrivacyPolicy TemplateKind = "privacy_policy"
	// TemplateReturnPolicy is the customer-facing return policy.
	TemplateReturnPolicy TemplateKind = "return_policy"
	// TemplateShippingPolicy is the customer-facing shipping policy.
	TemplateShippingPolicy TemplateKind = "shipping_policy"
)

// String returns the string representation of the TemplateKind.
func (k TemplateKind) String() string {
	return string(k)
}

// IsValid checks if the TemplateKind is a valid value.
func (k TemplateKind) IsValid() bool {
	return validate.IsEnumMember(k, TemplateTermsOfService, TemplatePrivacyPolicy, TemplateReturnPolicy, TemplateShippingPolicy)
}

// ReturnRule represents one rule of the store's return policy.
type ReturnRule struct {
	ID               uuid.UUID    `json:"id"`                 // The Global Unique Identifier (GUID) for the rule.
	Name             string       `json:"name"`               // The rule name, unique (case-insensitively) among rules.
	WindowDays       int          `json:"window_days"`        // Days after delivery a return is accepted; non-negative.
	RefundMethod     RefundMethod `json:"refund_method"`      // How accepted returns are compensated.
	RestockingFeePct float64      `json:"restocking_fee_pct"` // Restocking fee percentage, 0 to 100.
	RequiresReceipt  bool         `json:"requires_receipt"`   // Whether a receipt is required for the return.
	Active           bool         `json:"active"`             // Whether the rule is currently applied.
	CreatedAt        time.Time    `json:"created_at"`         // Timestamp of when this record was created.
	UpdatedAt        time.Time    `json:"updated_at"`         // Timestamp of the last modification.
}

// ReturnRuleInput carries the caller-supplied fields for creating a return rule.
type ReturnRuleInput struct {
	Name             string
	WindowDays       int
	RefundMethod     RefundMethod
	RestockingFeePct float64
	RequiresReceipt  bool
	Active           bool
}

// NewReturnRule validates the input and builds a structurally valid ReturnRule.
func NewReturnRule(in ReturnRuleInput) (*ReturnRule, error) {
	if !validate.IsNonEmpty(in.Name) {
		return nil, NewMissingValue("name")
	}
	if in.WindowDays < 0 {
		return nil, NewInvalidValue("window_days", "return window cannot be negative")
	}
	if in.RefundMethod == "" {
		return nil, NewMissingValue("refund_method")
	}
	if !in.RefundMethod.IsValid() {
		return nil, NewInvalidValue("refund_method", fmt.Sprintf("unknown refund method %q", in.RefundMethod))
	}
	if !validate.InRange(in.RestockingFeePct, 0, 100) {
		return nil, NewInvalidValue("restocking_fee_pct", "restocking fee must be between 0 and 100 percent")
	}

	now := time.Now()

	return &ReturnRule{
		ID:               uuid.New(),
		Name:             in.Name,
		WindowDays:       in.WindowDays,
		RefundMethod:     in.RefundMethod,
		RestockingFeePct: in.RestockingFeePct,
		RequiresReceipt:  in.RequiresReceipt,
		Active:           in.Active,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

// ReturnRulePatch carries the optional fields of a partial rule update.
type ReturnRulePatch struct {
	Name             *string
	WindowDays       *int
	RefundMethod     *RefundMethod
	RestockingFeePct *float64
	RequiresReceipt  *bool
	Active           *bool
}

func (p ReturnRulePatch) validate() error {
	if p.Name != nil && !validate.IsNonEmpty(*p.Name) {
		return NewMissingValue("name")
	}
	if p.WindowDays != nil && *p.WindowDays < 0 {
		return NewInvalidValue("window_days", "return window cannot be negative")
	}
	if p.RefundMethod != nil && !p.RefundMethod.IsValid() {
		return NewInvalidValue("refund_method", fmt.Sprintf("unknown refund method %q", *p.RefundMethod))
	}
	if p.RestockingFeePct != nil && !validate.InRange(*p.RestockingFeePct, 0, 100) {
		return NewInvalidValue("restocking_fee_pct", "restocking fee must be between 0 and 100 percent")
	}

	return nil
}

func (r *ReturnRule) apply(p ReturnRulePatch, now time.Time) {
	if p.Name != nil {
		r.Name = *p.Name
	}
	if p.WindowDays != nil {
		r.WindowDays = *p.WindowDays
	}
	if p.RefundMethod != nil {
		r.RefundMethod = *p.RefundMethod
	}
	if p.RestockingFeePct != nil {
		r.RestockingFeePct = *p.RestockingFeePct
	}
	if p.RequiresReceipt != nil {
		r.RequiresReceipt = *p.RequiresReceipt
	}
	if p.Active != nil {
		r.Active = *p.Active
	}
	r.UpdatedAt = now
}

// DocumentationTemplate represents a customer-facing policy document.
type DocumentationTemplate struct {
	ID        uuid.UUID    `json:"id"`         // The Global Unique Identifier (GUID) for the template.
	Name      string       `json:"name"`       // The template name, unique (case-insensitively) among templates.
	Kind      TemplateKind `json:"kind"`       // The document this template renders.
	Content   string       `json:"content"`    // The template body; never empty.
	Active    bool         `json:"active"`     // Whether the template is published.
	CreatedAt time.Time    `json:"created_at"` // Timestamp of when this record was created.
	UpdatedAt time.Time    `json:"updated_at"` // Timestamp of the last modification.
}

// DocumentationTemplateInput carries the caller-supplied fields for creating a template.
type DocumentationTemplateInput struct {
	Name    string
	Kind    TemplateKind
	Content string
	Active  bool
}

// NewDocumentationTemplate validates the input and builds a structurally valid template.
func NewDocumentationTemplate(in DocumentationTemplateInput) (*DocumentationTemplate, error) {
	if !validate.IsNonEmpty(in.Name) {
		return nil, NewMissingValue("name")
	}
	if in.Kind == "" {
		return nil, NewMissingValue("kind")
	}
	if !in.Kind.IsValid() {
		return nil, NewInvalidValue("kind", fmt.Sprintf("unknown template kind %q", in.Kind))
	}
	if !validate.IsNonEmpty(in.Content) {
		return nil, NewMissingValue("content")
	}

	now := time.Now()

	return &DocumentationTemplate{
		ID:        uuid.New(),
		Name:      in.Name,
		Kind:      in.Kind,
		Content:   in.Content,
		Active:    in.Active,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// DocumentationTemplatePatch carries the optional fields of a partial template update.
type DocumentationTemplatePatch struct {
	Name    *string
	Kind    *TemplateKind
	Content *string
	Active  *bool
}

func (p DocumentationTemplatePatch) validate() error {
	if p.Name != nil && !validate.IsNonEmpty(*p.Name) {
		return NewMissingValue("name")
	}
	if p.Kind != nil && !p.Kind.IsValid() {
		return NewInvalidValue("kind", fmt.Sprintf("unknown template kind %q", *p.Kind))
	}
	if p.Content != nil && !validate.IsNonEmpty(*p.Content) {
		return NewMissingValue("content")
	}

	return nil
}

func (t *DocumentationTemplate) apply(p DocumentationTemplatePatch, now time.Time) {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Kind != nil {
		t.Kind = *p.Kind
	}
	if p.Content != nil {
		t.Content = *p.Content
	}
	if p.Active != nil {
		t.Active = *p.Active
	}
	t.UpdatedAt = now
}
