package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDomainInput(name string) DomainInput {
	return DomainInput{
		Name:            name,
		Kind:            DomainKindSecondary,
		ConnectionState: DomainStateConnected,
		Source:          DomainSourceExternal,
	}
}

func TestNewDomainsConfiguration_ValidInput(t *testing.T) {
	storeID := uuid.New()

	cfg, err := NewDomainsConfiguration(storeID, []DomainInput{
		validDomainInput("shop.example.com"),
		validDomainInput("example.com"),
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, cfg.ID)
	assert.Equal(t, storeID, cfg.StoreID)
	assert.Equal(t, 2, cfg.CountDomains())
	assert.Empty(t, cfg.PrincipalDomain)
	assert.False(t, cfg.GlobalRedirection)
	assert.False(t, cfg.CreatedAt.IsZero())

	domain, ok := cfg.FindDomain("shop.example.com")
	require.True(t, ok)
	assert.NotEqual(t, uuid.Nil, domain.ID)
	assert.Equal(t, DomainKindSecondary, domain.Kind)
	assert.Empty(t, domain.History)
	assert.False(t, domain.ConnectedAt.IsZero())
}

func TestNewDomainsConfiguration_DuplicateName(t *testing.T) {
	_, err := NewDomainsConfiguration(uuid.New(), []DomainInput{
		validDomainInput("example.com"),
		validDomainInput("EXAMPLE.com"),
	})
	require.Error(t, err)
	assert.True(t, IsKind(err, ErrorKindDuplicate))
}

func TestAddDomain_DuplicateDiffersOnlyInCase(t *testing.T) {
	cfg, err := NewDomainsConfiguration(uuid.New(), []DomainInput{validDomainInput("a.com")})
	require.NoError(t, err)

	_, err = cfg.AddDomain(validDomainInput("A.com"))
	require.Error(t, err)
	assert.True(t, IsKind(err, ErrorKindDuplicate))
	assert.Equal(t, 1, cfg.CountDomains())
}

func TestAddDomain_Validation(t *testing.T) {
	cfg, err := NewDomainsConfiguration(uuid.New(), nil)
	require.NoError(t, err)

	_, err = cfg.AddDomain(DomainInput{Kind: DomainKindSecondary, ConnectionState: DomainStateConnected, Source: DomainSourceExternal})
	assert.True(t, IsKind(err, ErrorKindMissingValue))

	_, err = cfg.AddDomain(validDomainInput("not a hostname"))
	assert.True(t, IsKind(err, ErrorKindInvalidValue))

	in := validDomainInput("ok.example.com")
	in.Kind = DomainKind("weird")
	_, err = cfg.AddDomain(in)
	assert.True(t, IsKind(err, ErrorKindInvalidValue))

	assert.Equal(t, 0, cfg.CountDomains())
}

func TestAddDomain_DefaultsConnectedAt(t *testing.T) {
	cfg, err := NewDomainsConfiguration(uuid.New(), nil)
	require.NoError(t, err)

	domain, err := cfg.AddDomain(validDomainInput("shop.example.com"))
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), domain.ConnectedAt, time.Second)

	connectedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	in := validDomainInput("old.example.com")
	in.ConnectedAt = &connectedAt
	domain, err = cfg.AddDomain(in)
	require.NoError(t, err)
	assert.Equal(t, connectedAt, domain.ConnectedAt)
}

func TestUpdateDomain_NotFound(t *testing.T) {
	cfg, err := NewDomainsConfiguration(uuid.New(), nil)
	require.NoError(t, err)

	_, err = cfg.UpdateDomain("missing.example.com", DomainPatch{})
	require.Error(t, err)
	assert.True(t, IsKind(err, ErrorKindNotFound))
}

func TestUpdateDomain_RenameChecksOtherDomains(t *testing.T) {
	cfg, err := NewDomainsConfiguration(uuid.New(), []DomainInput{
		validDomainInput("a.example.com"),
		validDomainInput("b.example.com"),
	})
	require.NoError(t, err)

	newName := "B.EXAMPLE.COM"
	_, err = cfg.UpdateDomain("a.example.com", DomainPatch{Name: &newName})
	require.Error(t, err)
	assert.True(t, IsKind(err, ErrorKindDuplicate))

	// Renaming a domain to a different casing of itself is not a collision.
	selfName := "A.example.com"
	updated, err := cfg.UpdateDomain("a.example.com", DomainPatch{Name: &selfName})
	require.NoError(t, err)
	assert.Equal(t, "A.example.com", updated.Name)
}

func TestUpdateDomain_RecordsHistory(t *testing.T) {
	cfg, err := NewDomainsConfiguration(uuid.New(), []DomainInput{validDomainInput("a.example.com")})
	require.NoError(t, err)

	state := DomainStateVerifying
	ssl := true
	updated, err := cfg.UpdateDomain("a.example.com", DomainPatch{ConnectionState: &state, SSLActive: &ssl})
	require.NoError(t, err)

	require.Len(t, updated.History, 2)
	assert.Equal(t, "connection_state", updated.History[0].Field)
	assert.Equal(t, "connected", updated.History[0].Previous)
	assert.Equal(t, "verifying", updated.History[0].Current)
	assert.Equal(t, "ssl_active", updated.History[1].Field)
}

func TestUpdateDomain_RenamingPrincipalKeepsReference(t *testing.T) {
	cfg, err := NewDomainsConfiguration(uuid.New(), []DomainInput{validDomainInput("a.example.com")})
	require.NoError(t, err)
	require.NoError(t, cfg.SetPrincipalDomain("a.example.com"))

	newName := "main.example.com"
	_, err = cfg.UpdateDomain("a.example.com", DomainPatch{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "main.example.com", cfg.PrincipalDomain)
}

func TestRemoveDomain_PrincipalGuard(t *testing.T) {
	cfg, err := NewDomainsConfiguration(uuid.New(), []DomainInput{validDomainInput("a.com")})
	require.NoError(t, err)
	require.NoError(t, cfg.SetPrincipalDomain("a.com"))
	require.NoError(t, cfg.ToggleGlobalRedirection(true))

	err = cfg.RemoveDomain("a.com")
	require.Error(t, err)
	assert.True(t, IsKind(err, ErrorKindInvalidValue))
	assert.Equal(t, 1, cfg.CountDomains())

	// The same removal succeeds once redirection is off, and clears the
	// principal reference.
	require.NoError(t, cfg.ToggleGlobalRedirection(false))
	require.NoError(t, cfg.RemoveDomain("a.com"))
	assert.Equal(t, 0, cfg.CountDomains())
	assert.Empty(t, cfg.PrincipalDomain)
}

func TestSetPrincipalDomain(t *testing.T) {
	cfg, err := NewDomainsConfiguration(uuid.New(), []DomainInput{validDomainInput("Shop.Example.com")})
	require.NoError(t, err)

	err = cfg.SetPrincipalDomain("missing.example.com")
	require.Error(t, err)
	assert.True(t, IsKind(err, ErrorKindNotFound))

	// Lookup is case-insensitive but the stored canonical name is referenced.
	require.NoError(t, cfg.SetPrincipalDomain("shop.example.com"))
	assert.Equal(t, "Shop.Example.com", cfg.PrincipalDomain)
}

func TestToggleGlobalRedirection_RequiresPrincipal(t *testing.T) {
	cfg, err := NewDomainsConfiguration(uuid.New(), []DomainInput{
		validDomainInput("a.example.com"),
		validDomainInput("b.example.com"),
		validDomainInput("c.example.com"),
	})
	require.NoError(t, err)

	err = cfg.ToggleGlobalRedirection(true)
	require.Error(t, err)
	assert.True(t, IsKind(err, ErrorKindInvalidValue))
	assert.False(t, cfg.GlobalRedirection)

	require.NoError(t, cfg.SetPrincipalDomain("b.example.com"))
	require.NoError(t, cfg.ToggleGlobalRedirection(true))
	assert.True(t, cfg.GlobalRedirection)

	require.NoError(t, cfg.ToggleGlobalRedirection(false))
	assert.False(t, cfg.GlobalRedirection)
}

func TestDomainsConfiguration_RedirectionScenario(t *testing.T) {
	cfg, err := NewDomainsConfiguration(uuid.New(), []DomainInput{validDomainInput("a.com")})
	require.NoError(t, err)
	require.NoError(t, cfg.SetPrincipalDomain("a.com"))

	_, err = cfg.AddDomain(validDomainInput("A.com"))
	assert.True(t, IsKind(err, ErrorKindDuplicate))

	require.NoError(t, cfg.ToggleGlobalRedirection(true))

	err = cfg.RemoveDomain("a.com")
	assert.True(t, IsKind(err, ErrorKindInvalidValue))
}

func TestDomainsConfiguration_FailedMutationLeavesUpdatedAtUntouched(t *testing.T) {
	cfg, err := NewDomainsConfiguration(uuid.New(), []DomainInput{validDomainInput("a.com")})
	require.NoError(t, err)

	before := cfg.UpdatedAt
	_, err = cfg.AddDomain(validDomainInput("A.com"))
	require.Error(t, err)
	assert.Equal(t, before, cfg.UpdatedAt)

	err = cfg.ToggleGlobalRedirection(true)
	require.Error(t, err)
	assert.Equal(t, before, cfg.UpdatedAt)
}

func TestDomainsConfiguration_Queries(t *testing.T) {
	sub := validDomainInput("store.platform.example")
	sub.Kind = DomainKindSubdomain
	sub.Source = DomainSourcePlatformSubdomain
	verifying := validDomainInput("pending.example.com")
	verifying.ConnectionState = DomainStateVerifying

	cfg, err := NewDomainsConfiguration(uuid.New(), []DomainInput{
		validDomainInput("a.example.com"),
		sub,
		verifying,
	})
	require.NoError(t, err)

	assert.Len(t, cfg.DomainsByKind(DomainKindSecondary), 2)
	assert.Len(t, cfg.DomainsByKind(DomainKindSubdomain), 1)
	assert.Len(t, cfg.DomainsByState(DomainStateVerifying), 1)
	assert.Equal(t, 3, cfg.CountDomains())
}

func TestReconstructDomainsConfiguration_RoundTrip(t *testing.T) {
	cfg, err := NewDomainsConfiguration(uuid.New(), []DomainInput{validDomainInput("a.example.com")})
	require.NoError(t, err)
	require.NoError(t, cfg.SetPrincipalDomain("a.example.com"))
	require.NoError(t, cfg.ToggleGlobalRedirection(true))

	restored := ReconstructDomainsConfiguration(
		cfg.ID, cfg.StoreID, cfg.Domains, cfg.PrincipalDomain,
		cfg.GlobalRedirection, cfg.Version, cfg.CreatedAt, cfg.UpdatedAt,
	)

	assert.Equal(t, cfg.ID, restored.ID)
	assert.Equal(t, cfg.PrincipalDomain, restored.PrincipalDomain)
	assert.Equal(t, cfg.GlobalRedirection, restored.GlobalRedirection)
	assert.Equal(t, cfg.CountDomains(), restored.CountDomains())

	// Invariants keep holding after reconstruction.
	err = restored.RemoveDomain("a.example.com")
	assert.True(t, IsKind(err, ErrorKindInvalidValue))
}
