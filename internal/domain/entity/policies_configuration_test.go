package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validReturnRuleInput(name string) ReturnRuleInput {
	return ReturnRuleInput{
		Name:             name,
		WindowDays:       30,
		RefundMethod:     RefundOriginalPayment,
		RestockingFeePct: 0,
		Active:           true,
	}
}

func TestReturnRules(t *testing.T) {
	cfg := NewPoliciesConfiguration(uuid.New())

	rule, err := cfg.AddReturnRule(validReturnRuleInput("Standard returns"))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, rule.ID)
	assert.Equal(t, 1, cfg.CountReturnRules())

	_, err = cfg.AddReturnRule(validReturnRuleInput("STANDARD RETURNS"))
	assert.True(t, IsKind(err, ErrorKindDuplicate))

	in := validReturnRuleInput("Too pricey")
	in.RestockingFeePct = 120
	_, err = cfg.AddReturnRule(in)
	assert.True(t, IsKind(err, ErrorKindInvalidValue))

	in = validReturnRuleInput("Negative window")
	in.WindowDays = -1
	_, err = cfg.AddReturnRule(in)
	assert.True(t, IsKind(err, ErrorKindInvalidValue))

	in = validReturnRuleInput("No method")
	in.RefundMethod = ""
	_, err = cfg.AddReturnRule(in)
	assert.True(t, IsKind(err, ErrorKindMissingValue))

	method := RefundStoreCredit
	updated, err := cfg.UpdateReturnRule("standard returns", ReturnRulePatch{RefundMethod: &method})
	require.NoError(t, err)
	assert.Equal(t, RefundStoreCredit, updated.RefundMethod)

	_, err = cfg.UpdateReturnRule("missing", ReturnRulePatch{})
	assert.True(t, IsKind(err, ErrorKindNotFound))

	require.NoError(t, cfg.RemoveReturnRule("Standard returns"))
	assert.Equal(t, 0, cfg.CountReturnRules())
}

func TestToggleReturnRules(t *testing.T) {
	cfg := NewPoliciesConfiguration(uuid.New())
	assert.False(t, cfg.ReturnRulesEnabled)

	before := cfg.UpdatedAt
	cfg.ToggleReturnRules(true)
	assert.True(t, cfg.ReturnRulesEnabled)
	assert.False(t, cfg.UpdatedAt.Before(before))

	cfg.ToggleReturnRules(false)
	assert.False(t, cfg.ReturnRulesEnabled)
}

func TestDocumentationTemplates(t *testing.T) {
	cfg := NewPoliciesConfiguration(uuid.New())

	_, err := cfg.AddTemplate(DocumentationTemplateInput{
		Name:    "Default terms",
		Kind:    TemplateTermsOfService,
		Content: "These are the terms.",
		Active:  true,
	})
	require.NoError(t, err)

	_, err = cfg.AddTemplate(DocumentationTemplateInput{Name: "default TERMS", Kind: TemplateTermsOfService, Content: "x"})
	assert.True(t, IsKind(err, ErrorKindDuplicate))

	_, err = cfg.AddTemplate(DocumentationTemplateInput{Name: "Broken", Kind: TemplateKind("faq"), Content: "x"})
	assert.True(t, IsKind(err, ErrorKindInvalidValue))

	_, err = cfg.AddTemplate(DocumentationTemplateInput{Name: "Empty", Kind: TemplatePrivacyPolicy})
	assert.True(t, IsKind(err, ErrorKindMissingValue))

	content := "Updated terms."
	updated, err := cfg.UpdateTemplate("Default terms", DocumentationTemplatePatch{Content: &content})
	require.NoError(t, err)
	assert.Equal(t, "Updated terms.", updated.Content)

	assert.Len(t, cfg.TemplatesByKind(TemplateTermsOfService), 1)
	assert.Empty(t, cfg.TemplatesByKind(TemplateReturnPolicy))

	require.NoError(t, cfg.RemoveTemplate("default terms"))
	err = cfg.RemoveTemplate("Default terms")
	assert.True(t, IsKind(err, ErrorKindNotFound))
}

func TestActiveReturnRules(t *testing.T) {
	cfg := NewPoliciesConfiguration(uuid.New())
	_, err := cfg.AddReturnRule(validReturnRuleInput("Active rule"))
	require.NoError(t, err)

	inactive := validReturnRuleInput("Inactive rule")
	inactive.Active = false
	_, err = cfg.AddReturnRule(inactive)
	require.NoError(t, err)

	active := cfg.ActiveReturnRules()
	require.Len(t, active, 1)
	assert.Equal(t, "Active rule", active[0].Name)
}

func TestReconstructPoliciesConfiguration_RoundTrip(t *testing.T) {
	cfg := NewPoliciesConfiguration(uuid.New())
	_, err := cfg.AddReturnRule(validReturnRuleInput("Rule"))
	require.NoError(t, err)
	cfg.ToggleReturnRules(true)

	restored := ReconstructPoliciesConfiguration(
		cfg.ID, cfg.StoreID, cfg.ReturnRules, cfg.Templates,
		cfg.ReturnRulesEnabled, cfg.Version, cfg.CreatedAt, cfg.UpdatedAt,
	)

	assert.True(t, restored.ReturnRulesEnabled)
	assert.Equal(t, 1, restored.CountReturnRules())

	_, err = restored.AddReturnRule(validReturnRuleInput("RULE"))
	assert.True(t, IsKind(err, ErrorKindDuplicate))
}
