package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// AppsAndChannelsConfiguration is the aggregate owning the four independent
// app-related collections of a store: installed apps, sales channels,
// development apps and uninstalled apps.
//
// Entity names are unique (case-insensitively) within each collection;
// cross-collection duplication is allowed, so an app can appear both as
// installed history and in the uninstalled records.
type AppsAndChannelsConfiguration struct {
	ID              uuid.UUID         `json:"id"`               // The Global Unique Identifier (GUID) for the configuration.
	StoreID         uuid.UUID         `json:"store_id"`         // The store this configuration belongs to.
	InstalledApps   []*InstalledApp   `json:"installed_apps"`   // Ordered collection of installed apps.
	SalesChannels   []*SalesChannel   `json:"sales_channels"`   // Ordered collection of sales channels.
	DevelopmentApps []*DevelopmentApp `json:"development_apps"` // Ordered collection of development apps.
	UninstalledApps []*UninstalledApp `json:"uninstalled_apps"` // Ordered collection of uninstall records.
	Version         int               `json:"version"`          // Persistence snapshot version, used for optimistic concurrency.
	CreatedAt       time.Time         `json:"created_at"`       // Timestamp of when this configuration was created.
	UpdatedAt       time.Time         `json:"updated_at"`       // Timestamp of the last successful mutation.
}

// NewAppsAndChannelsConfiguration builds a brand-new, empty configuration for a store.
func NewAppsAndChannelsConfiguration(storeID uuid.UUID) *AppsAndChannelsConfiguration {
	now := time.Now()

	return &AppsAndChannelsConfiguration{
		ID:              uuid.New(),
		StoreID:         storeID,
		InstalledApps:   []*InstalledApp{},
		SalesChannels:   []*SalesChannel{},
		DevelopmentApps: []*DevelopmentApp{},
		UninstalledApps: []*UninstalledApp{},
		Version:         1,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// ReconstructAppsAndChannelsConfiguration rehydrates a configuration from storage.
func ReconstructAppsAndChannelsConfiguration(
	id, storeID uuid.UUID,
	installed []*InstalledApp,
	channels []*SalesChannel,
	development []*DevelopmentApp,
	uninstalled []*UninstalledApp,
	version int,
	createdAt, updatedAt time.Time,
) *AppsAndChannelsConfiguration {
	if installed == nil {
		installed = []*InstalledApp{}
	}
	if channels == nil {
		channels = []*SalesChannel{}
	}
	if development == nil {
		development = []*DevelopmentApp{}
	}
	if uninstalled == nil {
		uninstalled = []*UninstalledApp{}
	}

	return &AppsAndChannelsConfiguration{
		ID:              id,
		StoreID:         storeID,
		InstalledApps:   installed,
		SalesChannels:   channels,
		DevelopmentApps: development,
		UninstalledApps: uninstalled,
		Version:         version,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
}

// --- Installed apps ---

// AddInstalledApp validates the input and appends a new installed app.
func (c *AppsAndChannelsConfiguration) AddInstalledApp(in InstalledAppInput) (*InstalledApp, error) {
	app, err := NewInstalledApp(in)
	if err != nil {
		return nil, err
	}
	if _, ok := c.FindInstalledApp(app.Name); ok {
		return nil, NewDuplicate("installed app", app.Name)
	}

	c.InstalledApps = append(c.InstalledApps, app)
	c.UpdatedAt = app.InstalledAt

	return app, nil
}

// UpdateInstalledApp merges the patch over the named installed app,
// re-checking name uniqueness on rename.
func (c *AppsAndChannelsConfiguration) UpdateInstalledApp(name string, patch InstalledAppPatch) (*InstalledApp, error) {
	idx := indexByName(c.InstalledApps, name, func(a *InstalledApp) string { return a.Name })
	if idx < 0 {
		return nil, NewNotFound("installed app", name)
	}
	if err := patch.validate(); err != nil {
		return nil, err
	}
	if patch.Name != nil {
		for i, other := range c.InstalledApps {
			if i != idx && strings.EqualFold(other.Name, *patch.Name) {
				return nil, NewDuplicate("installed app", *patch.Name)
			}
		}
	}

	now := time.Now()
	c.InstalledApps[idx].apply(patch, now)
	c.UpdatedAt = now

	return c.InstalledApps[idx], nil
}

// RemoveInstalledApp deletes the named installed app without recording an
// uninstall. Use UninstallApp to keep the uninstall history.
func (c *AppsAndChannelsConfiguration) RemoveInstalledApp(name string) error {
	idx := indexByName(c.InstalledApps, name, func(a *InstalledApp) string { return a.Name })
	if idx < 0 {
		return NewNotFound("installed app", name)
	}

	c.InstalledApps = append(c.InstalledApps[:idx], c.InstalledApps[idx+1:]...)
	c.UpdatedAt = time.Now()

	return nil
}

// UninstallApp removes the named installed app and records an uninstall entry
// carrying a snapshot of the app data. A prior uninstall record for the same
// name is replaced, keeping names unique within the uninstalled collection.
func (c *AppsAndChannelsConfiguration) UninstallApp(name, reason string) (*UninstalledApp, error) {
	idx := indexByName(c.InstalledApps, name, func(a *InstalledApp) string { return a.Name })
	if idx < 0 {
		return nil, NewNotFound("installed app", name)
	}

	app := c.InstalledApps[idx]
	now := time.Now()
	record := &UninstalledApp{
		ID:            uuid.New(),
		Name:          app.Name,
		Reason:        reason,
		UninstalledAt: now,
		Snapshot:      app.snapshot(),
	}

	c.InstalledApps = append(c.InstalledApps[:idx], c.InstalledApps[idx+1:]...)
	if prev := indexByName(c.UninstalledApps, app.Name, func(u *UninstalledApp) string { return u.Name }); prev >= 0 {
		c.UninstalledApps[prev] = record
	} else {
		c.UninstalledApps = append(c.UninstalledApps, record)
	}
	c.UpdatedAt = now

	return record, nil
}

// RemoveUninstalledApp purges an uninstall record.
func (c *AppsAndChannelsConfiguration) RemoveUninstalledApp(name string) error {
	idx := indexByName(c.UninstalledApps, name, func(u *UninstalledApp) string { return u.Name })
	if idx < 0 {
		return NewNotFound("uninstalled app", name)
	}

	c.UninstalledApps = append(c.UninstalledApps[:idx], c.UninstalledApps[idx+1:]...)
	c.UpdatedAt = time.Now()

	return nil
}

// --- Sales channels ---

// AddSalesChannel validates the input and appends a new sales channel.
func (c *AppsAndChannelsConfiguration) AddSalesChannel(in SalesChannelInput) (*SalesChannel, error) {
	channel, err := NewSalesChannel(in)
	if err != nil {
		return nil, err
	}
	if _, ok := c.FindSalesChannel(channel.Name); ok {
		return nil, NewDuplicate("sales channel", channel.Name)
	}

	c.SalesChannels = append(c.SalesChannels, channel)
	c.UpdatedAt = channel.CreatedAt

	return channel, nil
}

// UpdateSalesChannel merges the patch over the named channel,
// re-checking name uniqueness on rename.
func (c *AppsAndChannelsConfiguration) UpdateSalesChannel(name string, patch SalesChannelPatch) (*SalesChannel, error) {
	idx := indexByName(c.SalesChannels, name, func(s *SalesChannel) string { return s.Name })
	if idx < 0 {
		return nil, NewNotFound("sales channel", name)
	}
	if err := patch.validate(); err != nil {
		return nil, err
	}
	if patch.Name != nil {
		for i, other := range c.SalesChannels {
			if i != idx && strings.EqualFold(other.Name, *patch.Name) {
				return nil, NewDuplicate("sales channel", *patch.Name)
			}
		}
	}

	now := time.Now()
	c.SalesChannels[idx].apply(patch, now)
	c.UpdatedAt = now

	return c.SalesChannels[idx], nil
}

// RemoveSalesChannel deletes the named channel.
func (c *AppsAndChannelsConfiguration) RemoveSalesChannel(name string) error {
	idx := indexByName(c.SalesChannels, name, func(s *SalesChannel) string { return s.Name })
	if idx < 0 {
		return NewNotFound("sales channel", name)
	}

	c.SalesChannels = append(c.SalesChannels[:idx], c.SalesChannels[idx+1:]...)
	c.UpdatedAt = time.Now()

	return nil
}

// ToggleSalesChannel flips the named channel's active flag.
func (c *AppsAndChannelsConfiguration) ToggleSalesChannel(name string, active bool) (*SalesChannel, error) {
	channel, ok := c.FindSalesChannel(name)
	if !ok {
		return nil, NewNotFound("sales channel", name)
	}

	now := time.Now()
	channel.Active = active
	channel.UpdatedAt = now
	c.UpdatedAt = now

	return channel, nil
}

// --- Development apps ---

// AddDevelopmentApp validates the input and appends a new development app
// with review state pending.
func (c *AppsAndChannelsConfiguration) AddDevelopmentApp(in DevelopmentAppInput) (*DevelopmentApp, error) {
	app, err := NewDevelopmentApp(in)
	if err != nil {
		return nil, err
	}
	if _, ok := c.FindDevelopmentApp(app.Name); ok {
		return nil, NewDuplicate("development app", app.Name)
	}

	c.DevelopmentApps = append(c.DevelopmentApps, app)
	c.UpdatedAt = app.CreatedAt

	return app, nil
}

// UpdateDevelopmentApp merges the patch over the named development app,
// re-checking name uniqueness on rename.
func (c *AppsAndChannelsConfiguration) UpdateDevelopmentApp(name string, patch DevelopmentAppPatch) (*DevelopmentApp, error) {
	idx := indexByName(c.DevelopmentApps, name, func(a *DevelopmentApp) string { return a.Name })
	if idx < 0 {
		return nil, NewNotFound("development app", name)
	}
	if err := patch.validate(); err != nil {
		return nil, err
	}
	if patch.Name != nil {
		for i, other := range c.DevelopmentApps {
			if i != idx && strings.EqualFold(other.Name, *patch.Name) {
				return nil, NewDuplicate("development app", *patch.Name)
			}
		}
	}

	now := time.Now()
	c.DevelopmentApps[idx].apply(patch, now)
	c.UpdatedAt = now

	return c.DevelopmentApps[idx], nil
}

// RemoveDevelopmentApp deletes the named development app.
func (c *AppsAndChannelsConfiguration) RemoveDevelopmentApp(name string) error {
	idx := indexByName(c.DevelopmentApps, name, func(a *DevelopmentApp) string { return a.Name })
	if idx < 0 {
		return NewNotFound("development app", name)
	}

	c.DevelopmentApps = append(c.DevelopmentApps[:idx], c.DevelopmentApps[idx+1:]...)
	c.UpdatedAt = time.Now()

	return nil
}

// --- Queries ---

// FindInstalledApp returns the installed app with the given name, matching case-insensitively.
func (c *AppsAndChannelsConfiguration) FindInstalledApp(name string) (*InstalledApp, bool) {
	idx := indexByName(c.InstalledApps, name, func(a *InstalledApp) string { return a.Name })
	if idx < 0 {
		return nil, false
	}

	return c.InstalledApps[idx], true
}

// FindSalesChannel returns the channel with the given name, matching case-insensitively.
func (c *AppsAndChannelsConfiguration) FindSalesChannel(name string) (*SalesChannel, bool) {
	idx := indexByName(c.SalesChannels, name, func(s *SalesChannel) string { return s.Name })
	if idx < 0 {
		return nil, false
	}

	return c.SalesChannels[idx], true
}

// FindDevelopmentApp returns the development app with the given name, matching case-insensitively.
func (c *AppsAndChannelsConfiguration) FindDevelopmentApp(name string) (*DevelopmentApp, bool) {
	idx := indexByName(c.DevelopmentApps, name, func(a *DevelopmentApp) string { return a.Name })
	if idx < 0 {
		return nil, false
	}

	return c.DevelopmentApps[idx], true
}

// InstalledAppsByKind returns the installed apps of the given kind, in collection order.
func (c *AppsAndChannelsConfiguration) InstalledAppsByKind(kind string) []*InstalledApp {
	result := make([]*InstalledApp, 0, len(c.InstalledApps))
	for _, a := range c.InstalledApps {
		if strings.EqualFold(a.Kind, kind) {
			result = append(result, a)
		}
	}

	return result
}

// ActiveSalesChannels returns the channels currently flagged active, in collection order.
func (c *AppsAndChannelsConfiguration) ActiveSalesChannels() []*SalesChannel {
	result := make([]*SalesChannel, 0, len(c.SalesChannels))
	for _, s := range c.SalesChannels {
		if s.Active {
			result = append(result, s)
		}
	}

	return result
}

// DevelopmentAppsByReviewState returns the development apps in the given review state.
func (c *AppsAndChannelsConfiguration) DevelopmentAppsByReviewState(state AppReviewState) []*DevelopmentApp {
	result := make([]*DevelopmentApp, 0, len(c.DevelopmentApps))
	for _, a := range c.DevelopmentApps {
		if a.ReviewState == state {
			result = append(result, a)
		}
	}

	return result
}

// CountInstalledApps returns the number of installed apps.
func (c *AppsAndChannelsConfiguration) CountInstalledApps() int {
	return len(c.InstalledApps)
}

// CountSalesChannels returns the number of sales channels.
func (c *AppsAndChannelsConfiguration) CountSalesChannels() int {
	return len(c.SalesChannels)
}

// indexByName finds the first element whose name matches case-insensitively.
func indexByName[T any](items []T, name string, nameOf func(T) string) int {
	for i, item := range items {
		if strings.EqualFold(nameOf(item), name) {
			return i
		}
	}

	return -1
}
