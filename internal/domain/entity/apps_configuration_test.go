package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInstalledAppInput(name string) InstalledAppInput {
	return InstalledAppInput{
		Name:        name,
		Kind:        "fulfilment",
		Version:     "2.4.0",
		Permissions: []string{"read_orders"},
		AccessToken: "shpat_test_token",
	}
}

func validDevelopmentAppInput(name string) DevelopmentAppInput {
	return DevelopmentAppInput{
		Name:             name,
		State:            "draft",
		DevToken:         "dev_token",
		ResponsibleEmail: "dev@example.com",
		Scopes:           []string{"read_products"},
	}
}

func TestAddInstalledApp_CaseInsensitiveDuplicate(t *testing.T) {
	cfg := NewAppsAndChannelsConfiguration(uuid.New())

	app, err := cfg.AddInstalledApp(validInstalledAppInput("Shipper"))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, app.ID)
	assert.True(t, app.Installed)
	assert.Equal(t, 1, cfg.CountInstalledApps())

	_, err = cfg.AddInstalledApp(validInstalledAppInput("shipper"))
	require.Error(t, err)
	assert.True(t, IsKind(err, ErrorKindDuplicate))
	assert.Equal(t, 1, cfg.CountInstalledApps())
}

func TestAddInstalledApp_Validation(t *testing.T) {
	cfg := NewAppsAndChannelsConfiguration(uuid.New())

	in := validInstalledAppInput("App")
	in.Permissions = nil
	_, err := cfg.AddInstalledApp(in)
	assert.True(t, IsKind(err, ErrorKindMissingValue))

	in = validInstalledAppInput("App")
	in.ConfigURL = "not a url"
	_, err = cfg.AddInstalledApp(in)
	assert.True(t, IsKind(err, ErrorKindInvalidValue))

	in = validInstalledAppInput("App")
	in.AccessToken = "  "
	_, err = cfg.AddInstalledApp(in)
	assert.True(t, IsKind(err, ErrorKindMissingValue))
}

func TestUpdateInstalledApp(t *testing.T) {
	cfg := NewAppsAndChannelsConfiguration(uuid.New())
	_, err := cfg.AddInstalledApp(validInstalledAppInput("Shipper"))
	require.NoError(t, err)
	_, err = cfg.AddInstalledApp(validInstalledAppInput("Invoicer"))
	require.NoError(t, err)

	version := "3.0.0"
	updated, err := cfg.UpdateInstalledApp("shipper", InstalledAppPatch{Version: &version})
	require.NoError(t, err)
	assert.Equal(t, "3.0.0", updated.Version)

	rename := "INVOICER"
	_, err = cfg.UpdateInstalledApp("Shipper", InstalledAppPatch{Name: &rename})
	assert.True(t, IsKind(err, ErrorKindDuplicate))

	_, err = cfg.UpdateInstalledApp("gone", InstalledAppPatch{})
	assert.True(t, IsKind(err, ErrorKindNotFound))
}

func TestRemoveInstalledApp(t *testing.T) {
	cfg := NewAppsAndChannelsConfiguration(uuid.New())
	_, err := cfg.AddInstalledApp(validInstalledAppInput("Shipper"))
	require.NoError(t, err)

	err = cfg.RemoveInstalledApp("shipper")
	require.NoError(t, err)

	// A plain removal leaves no uninstall record behind.
	assert.Equal(t, 0, cfg.CountInstalledApps())
	assert.Empty(t, cfg.UninstalledApps)

	err = cfg.RemoveInstalledApp("shipper")
	assert.True(t, IsKind(err, ErrorKindNotFound))
}

func TestUninstallApp_MovesAppWithSnapshot(t *testing.T) {
	cfg := NewAppsAndChannelsConfiguration(uuid.New())
	app, err := cfg.AddInstalledApp(validInstalledAppInput("Shipper"))
	require.NoError(t, err)

	record, err := cfg.UninstallApp("shipper", "too expensive")
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.CountInstalledApps())
	require.Len(t, cfg.UninstalledApps, 1)
	assert.Equal(t, "Shipper", record.Name)
	assert.Equal(t, "too expensive", record.Reason)
	assert.Equal(t, app.ID.String(), record.Snapshot["id"])
	assert.Equal(t, "2.4.0", record.Snapshot["version"])
	assert.False(t, record.UninstalledAt.IsZero())
}

func TestUninstallApp_ReplacesPriorRecord(t *testing.T) {
	cfg := NewAppsAndChannelsConfiguration(uuid.New())
	_, err := cfg.AddInstalledApp(validInstalledAppInput("Shipper"))
	require.NoError(t, err)
	_, err = cfg.UninstallApp("Shipper", "first removal")
	require.NoError(t, err)

	// Reinstall and uninstall again: the record is replaced, keeping names
	// unique within the uninstalled collection.
	_, err = cfg.AddInstalledApp(validInstalledAppInput("Shipper"))
	require.NoError(t, err)
	record, err := cfg.UninstallApp("Shipper", "second removal")
	require.NoError(t, err)

	require.Len(t, cfg.UninstalledApps, 1)
	assert.Equal(t, "second removal", record.Reason)
}

func TestUninstallApp_NotFound(t *testing.T) {
	cfg := NewAppsAndChannelsConfiguration(uuid.New())

	_, err := cfg.UninstallApp("missing", "whatever")
	assert.True(t, IsKind(err, ErrorKindNotFound))
}

func TestSalesChannels(t *testing.T) {
	cfg := NewAppsAndChannelsConfiguration(uuid.New())

	channel, err := cfg.AddSalesChannel(SalesChannelInput{
		Name:   "Marketplace",
		Kind:   "marketplace",
		URL:    "https://marketplace.example.com",
		Active: true,
		Config: map[string]any{"sync_inventory": true},
	})
	require.NoError(t, err)
	assert.True(t, channel.Active)

	_, err = cfg.AddSalesChannel(SalesChannelInput{Name: "MARKETPLACE", Kind: "marketplace"})
	assert.True(t, IsKind(err, ErrorKindDuplicate))

	_, err = cfg.AddSalesChannel(SalesChannelInput{Name: "Social", Kind: "social", URL: "::bad::"})
	assert.True(t, IsKind(err, ErrorKindInvalidValue))

	toggled, err := cfg.ToggleSalesChannel("marketplace", false)
	require.NoError(t, err)
	assert.False(t, toggled.Active)
	assert.Empty(t, cfg.ActiveSalesChannels())
	assert.Equal(t, 1, cfg.CountSalesChannels())

	_, err = cfg.ToggleSalesChannel("missing", true)
	assert.True(t, IsKind(err, ErrorKindNotFound))
}

func TestDevelopmentApps(t *testing.T) {
	cfg := NewAppsAndChannelsConfiguration(uuid.New())

	app, err := cfg.AddDevelopmentApp(validDevelopmentAppInput("Beta App"))
	require.NoError(t, err)
	assert.Equal(t, ReviewStatePending, app.ReviewState)

	in := validDevelopmentAppInput("Other")
	in.ResponsibleEmail = "not-an-email"
	_, err = cfg.AddDevelopmentApp(in)
	assert.True(t, IsKind(err, ErrorKindInvalidValue))

	in = validDevelopmentAppInput("Other")
	in.Scopes = nil
	_, err = cfg.AddDevelopmentApp(in)
	assert.True(t, IsKind(err, ErrorKindMissingValue))

	approved := ReviewStateApproved
	updated, err := cfg.UpdateDevelopmentApp("beta app", DevelopmentAppPatch{ReviewState: &approved})
	require.NoError(t, err)
	assert.Equal(t, ReviewStateApproved, updated.ReviewState)
	assert.Len(t, cfg.DevelopmentAppsByReviewState(ReviewStateApproved), 1)
	assert.Empty(t, cfg.DevelopmentAppsByReviewState(ReviewStatePending))
}

func TestAppsConfiguration_CrossCollectionDuplicationAllowed(t *testing.T) {
	cfg := NewAppsAndChannelsConfiguration(uuid.New())
	_, err := cfg.AddInstalledApp(validInstalledAppInput("Shipper"))
	require.NoError(t, err)
	_, err = cfg.UninstallApp("Shipper", "testing")
	require.NoError(t, err)

	// The name lives on in the uninstalled records, yet installing again is fine.
	_, err = cfg.AddInstalledApp(validInstalledAppInput("Shipper"))
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.CountInstalledApps())
	assert.Len(t, cfg.UninstalledApps, 1)
}

func TestAppsConfiguration_QueriesByKind(t *testing.T) {
	cfg := NewAppsAndChannelsConfiguration(uuid.New())
	_, err := cfg.AddInstalledApp(validInstalledAppInput("Shipper"))
	require.NoError(t, err)

	other := validInstalledAppInput("Analytics")
	other.Kind = "analytics"
	_, err = cfg.AddInstalledApp(other)
	require.NoError(t, err)

	assert.Len(t, cfg.InstalledAppsByKind("fulfilment"), 1)
	assert.Len(t, cfg.InstalledAppsByKind("analytics"), 1)
	assert.Empty(t, cfg.InstalledAppsByKind("billing"))
}
