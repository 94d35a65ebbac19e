package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// PoliciesConfiguration is the aggregate owning a store's return rules and
// documentation templates, plus the aggregate-level return-rules switch.
//
// Rule and template names are unique (case-insensitive) within their
// collections.
type PoliciesConfiguration struct {
	ID                 uuid.UUID                `json:"id"`                   // The Global Unique Identifier (GUID) for the configuration.
	StoreID            uuid.UUID                `json:"store_id"`             // The store this configuration belongs to.
	ReturnRules        []*ReturnRule            `json:"return_rules"`         // Ordered collection of return rules.
	Templates          []*DocumentationTemplate `json:"templates"`            // Ordered collection of documentation templates.
	ReturnRulesEnabled bool                     `json:"return_rules_enabled"` // Whether return rules are applied at all.
	Version            int                      `json:"version"`              // Persistence snapshot version, used for optimistic concurrency.
	CreatedAt          time.Time                `json:"created_at"`           // Timestamp of when this configuration was created.
	UpdatedAt          time.Time                `json:"updated_at"`           // Timestamp of the last successful mutation.
}

// NewPoliciesConfiguration builds a brand-new, empty configuration for a store.
func NewPoliciesConfiguration(storeID uuid.UUID) *PoliciesConfiguration {
	now := time.Now()

	return &PoliciesConfiguration{
		ID:          uuid.New(),
		StoreID:     storeID,
		ReturnRules: []*ReturnRule{},
		Templates:   []*DocumentationTemplate{},
		Version:     1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// ReconstructPoliciesConfiguration rehydrates a configuration from storage.
func ReconstructPoliciesConfiguration(
	id, storeID uuid.UUID,
	rules []*ReturnRule,
	templates []*DocumentationTemplate,
	returnRulesEnabled bool,
	version int,
	createdAt, updatedAt time.Time,
) *PoliciesConfiguration {
	if rules == nil {
		rules = []*ReturnRule{}
	}
	if templates == nil {
		templates = []*DocumentationTemplate{}
	}

	return &PoliciesConfiguration{
		ID:                 id,
		StoreID:            storeID,
		ReturnRules:        rules,
		Templates:          templates,
		ReturnRulesEnabled: returnRulesEnabled,
		Version:            version,
		CreatedAt:          createdAt,
		UpdatedAt:          updatedAt,
	}
}

// --- Return rules ---

// AddReturnRule validates the input and appends a new return rule.
func (c *PoliciesConfiguration) AddReturnRule(in ReturnRuleInput) (*ReturnRule, error) {
	rule, err := NewReturnRule(in)
	if err != nil {
		return nil, err
	}
	if _, ok := c.FindReturnRule(rule.Name); ok {
		return nil, NewDuplicate("return rule", rule.Name)
	}

	c.ReturnRules = append(c.ReturnRules, rule)
	c.UpdatedAt = rule.CreatedAt

	return rule, nil
}

// UpdateReturnRule merges the patch over the named rule,
// re-checking name uniqueness on rename.
func (c *PoliciesConfiguration) UpdateReturnRule(name string, patch ReturnRulePatch) (*ReturnRule, error) {
	idx := indexByName(c.ReturnRules, name, func(r *ReturnRule) string { return r.Name })
	if idx < 0 {
		return nil, NewNotFound("return rule", name)
	}
	if err := patch.validate(); err != nil {
		return nil, err
	}
	if patch.Name != nil {
		for i, other := range c.ReturnRules {
			if i != idx && strings.EqualFold(other.Name, *patch.Name) {
				return nil, NewDuplicate("return rule", *patch.Name)
			}
		}
	}

	now := time.Now()
	c.ReturnRules[idx].apply(patch, now)
	c.UpdatedAt = now

	return c.ReturnRules[idx], nil
}

// RemoveReturnRule deletes the named rule.
func (c *PoliciesConfiguration) RemoveReturnRule(name string) error {
	idx := indexByName(c.ReturnRules, name, func(r *ReturnRule) string { return r.Name })
	if idx < 0 {
		return NewNotFound("return rule", name)
	}

	c.ReturnRules = append(c.ReturnRules[:idx], c.ReturnRules[idx+1:]...)
	c.UpdatedAt = time.Now()

	return nil
}

// ToggleReturnRules flips the aggregate-level return-rules switch.
func (c *PoliciesConfiguration) ToggleReturnRules(enabled bool) {
	c.ReturnRulesEnabled = enabled
	c.UpdatedAt = time.Now()
}

// --- Documentation templates ---

// AddTemplate validates the input and appends a new documentation template.
func (c *PoliciesConfiguration) AddTemplate(in DocumentationTemplateInput) (*DocumentationTemplate, error) {
	template, err := NewDocumentationTemplate(in)
	if err != nil {
		return nil, err
	}
	if _, ok := c.FindTemplate(template.Name); ok {
		return nil, NewDuplicate("documentation template", template.Name)
	}

	c.Templates = append(c.Templates, template)
	c.UpdatedAt = template.CreatedAt

	return template, nil
}

// UpdateTemplate merges the patch over the named template,
// re-checking name uniqueness on rename.
func (c *PoliciesConfiguration) UpdateTemplate(name string, patch DocumentationTemplatePatch) (*DocumentationTemplate, error) {
	idx := indexByName(c.Templates, name, func(t *DocumentationTemplate) string { return t.Name })
	if idx < 0 {
		return nil, NewNotFound("documentation template", name)
	}
	if err := patch.validate(); err != nil {
		return nil, err
	}
	if patch.Name != nil {
		for i, other := range c.Templates {
			if i != idx && strings.EqualFold(other.Name, *patch.Name) {
				return nil, NewDuplicate("documentation template", *patch.Name)
			}
		}
	}

	now := time.Now()
	c.Templates[idx].apply(patch, now)
	c.UpdatedAt = now

	return c.Templates[idx], nil
}

// RemoveTemplate deletes the named template.
func (c *PoliciesConfiguration) RemoveTemplate(name string) error {
	idx := indexByName(c.Templates, name, func(t *DocumentationTemplate) string { return t.Name })
	if idx < 0 {
		return NewNotFound("documentation template", name)
	}

	c.Templates = append(c.Templates[:idx], c.Templates[idx+1:]...)
	c.UpdatedAt = time.Now()

	return nil
}

// --- Queries ---

// FindReturnRule returns the rule with the given name, matching case-insensitively.
func (c *PoliciesConfiguration) FindReturnRule(name string) (*ReturnRule, bool) {
	idx := indexByName(c.ReturnRules, name, func(r *ReturnRule) string { return r.Name })
	if idx < 0 {
		return nil, false
	}

	return c.ReturnRules[idx], true
}

// FindTemplate returns the template with the given name, matching case-insensitively.
func (c *PoliciesConfiguration) FindTemplate(name string) (*DocumentationTemplate, bool) {
	idx := indexByName(c.Templates, name, func(t *DocumentationTemplate) string { return t.Name })
	if idx < 0 {
		return nil, false
	}

	return c.Templates[idx], true
}

// ActiveReturnRules returns the rules currently flagged active, in collection
// order. The aggregate-level switch is not consulted; callers decide whether
// rules apply at all.
func (c *PoliciesConfiguration) ActiveReturnRules() []*ReturnRule {
	result := make([]*ReturnRule, 0, len(c.ReturnRules))
	for _, r := range c.ReturnRules {
		if r.Active {
			result = append(result, r)
		}
	}

	return result
}

// TemplatesByKind returns the templates of the given kind, in collection order.
func (c *PoliciesConfiguration) TemplatesByKind(kind TemplateKind) []*DocumentationTemplate {
	result := make([]*DocumentationTemplate, 0, len(c.Templates))
	for _, t := range c.Templates {
		if t.Kind == kind {
			result = append(result, t)
		}
	}

	return result
}

// CountReturnRules returns the number of return rules.
func (c *PoliciesConfiguration) CountReturnRules() int {
	return len(c.ReturnRules)
}
