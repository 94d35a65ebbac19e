package entity

import (
	"fmt"
	"time"

	"storeadmin/internal/domain/validate"

	"github.com/google/uuid"
)

// AppReviewState represents the moderation status of a development app,
// independent of its functional state.
type AppReviewState string

const (
	// ReviewStatePending is the default review state on creation.
	ReviewStatePending AppReviewState = "pending"
	// ReviewStateApproved indicates the app passed review.
	ReviewStateApproved AppReviewState = "approved"
	// ReviewStateRejected indicates the app failed review.
	ReviewStateRejected AppReviewState = "rejected"
)

// String returns the string representation of the AppReviewState.
func (s AppReviewState) String() string {
	return string(s)
}

// IsValid checks if the AppReviewState is a valid value.
func (s AppReviewState) IsValid() bool {
	return validate.IsEnumMember(s, ReviewStatePending, ReviewStateApproved, ReviewStateRejected)
}

// InstalledApp represents an app currently installed on a store.
type InstalledApp struct {
	ID          uuid.UUID `json:"id"`           // The Global Unique Identifier (GUID) for the installation.
	Name        string    `json:"name"`         // The app name, unique (case-insensitively) among installed apps.
	Kind        string    `json:"kind"`         // Free-form app category supplied by the app platform.
	Installed   bool      `json:"installed"`    // Whether the installation is currently active.
	Version     string    `json:"version"`      // The installed app version.
	Permissions []string  `json:"permissions"`  // Granted permission scopes; never empty.
	AccessToken string    `json:"access_token"` // The token the app uses against the store API.
	ConfigURL   string    `json:"config_url"`   // Optional settings URL exposed by the app.
	InstalledAt time.Time `json:"installed_at"` // Timestamp of the installation.
	UpdatedAt   time.Time `json:"updated_at"`   // Timestamp of the last modification.
}

// InstalledAppInput carries the caller-supplied fields for installing an app.
type InstalledAppInput struct {
	Name        string
	Kind        string
	Version     string
	Permissions []string
	AccessToken string
	ConfigURL   string
}

// NewInstalledApp validates the input and builds a structurally valid InstalledApp.
func NewInstalledApp(in InstalledAppInput) (*InstalledApp, error) {
	if !validate.IsNonEmpty(in.Name) {
		return nil, NewMissingValue("name")
	}
	if !validate.IsNonEmpty(in.Kind) {
		return nil, NewMissingValue("kind")
	}
	if !validate.IsNonEmpty(in.Version) {
		return nil, NewMissingValue("version")
	}
	if len(in.Permissions) == 0 {
		return nil, NewMissingValue("permissions")
	}
	for _, p := range in.Permissions {
		if !validate.IsNonEmpty(p) {
			return nil, NewInvalidValue("permissions", "permission entries must be non-empty")
		}
	}
	if !validate.IsNonEmpty(in.AccessToken) {
		return nil, NewMissingValue("access_token")
	}
	if in.ConfigURL != "" && !validate.IsURL(in.ConfigURL) {
		return nil, NewInvalidValue("config_url", fmt.Sprintf("%q is not a valid URL", in.ConfigURL))
	}

	now := time.Now()

	return &InstalledApp{
		ID:          uuid.New(),
		Name:        in.Name,
		Kind:        in.Kind,
		Installed:   true,
		Version:     in.Version,
		Permissions: in.Permissions,
		AccessToken: in.AccessToken,
		ConfigURL:   in.ConfigURL,
		InstalledAt: now,
		UpdatedAt:   now,
	}, nil
}

// InstalledAppPatch carries the optional fields of a partial installed-app update.
type InstalledAppPatch struct {
	Name        *string
	Kind        *string
	Installed   *bool
	Version     *string
	Permissions []string
	AccessToken *string
	ConfigURL   *string
}

func (p InstalledAppPatch) validate() error {
	if p.Name != nil && !validate.IsNonEmpty(*p.Name) {
		return NewMissingValue("name")
	}
	if p.Kind != nil && !validate.IsNonEmpty(*p.Kind) {
		return NewMissingValue("kind")
	}
	if p.Version != nil && !validate.IsNonEmpty(*p.Version) {
		return NewMissingValue("version")
	}
	if p.Permissions != nil {
		if len(p.Permissions) == 0 {
			return NewInvalidValue("permissions", "permission list cannot be emptied")
		}
		for _, perm := range p.Permissions {
			if !validate.IsNonEmpty(perm) {
				return NewInvalidValue("permissions", "permission entries must be non-empty")
			}
		}
	}
	if p.AccessToken != nil && !validate.IsNonEmpty(*p.AccessToken) {
		return NewMissingValue("access_token")
	}
	if p.ConfigURL != nil && *p.ConfigURL != "" && !validate.IsURL(*p.ConfigURL) {
		return NewInvalidValue("config_url", fmt.Sprintf("%q is not a valid URL", *p.ConfigURL))
	}

	return nil
}

func (a *InstalledApp) apply(p InstalledAppPatch, now time.Time) {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Kind != nil {
		a.Kind = *p.Kind
	}
	if p.Installed != nil {
		a.Installed = *p.Installed
	}
	if p.Version != nil {
		a.Version = *p.Version
	}
	if p.Permissions != nil {
		a.Permissions = p.Permissions
	}
	if p.AccessToken != nil {
		a.AccessToken = *p.AccessToken
	}
	if p.ConfigURL != nil {
		a.ConfigURL = *p.ConfigURL
	}
	a.UpdatedAt = now
}

// snapshot captures the app's data at uninstall time. The map is opaque to
// the aggregate and only round-trips through persistence.
func (a *InstalledApp) snapshot() map[string]any {
	permissions := make([]any, len(a.Permissions))
	for i, p := range a.Permissions {
		permissions[i] = p
	}

	return map[string]any{
		"id":           a.ID.String(),
		"name":         a.Name,
		"kind":         a.Kind,
		"version":      a.Version,
		"permissions":  permissions,
		"config_url":   a.ConfigURL,
		"installed_at": a.InstalledAt.Format(time.RFC3339Nano),
	}
}

// DevelopmentApp represents an app under development against the store.
type DevelopmentApp struct {
	ID               uuid.UUID      `json:"id"`                // The Global Unique Identifier (GUID) for the app.
	Name             string         `json:"name"`              // The app name, unique (case-insensitively) among development apps.
	State            string         `json:"state"`             // The functional state reported by the developer tooling.
	DevToken         string         `json:"dev_token"`         // The development access token.
	ResponsibleEmail string         `json:"responsible_email"` // Contact email of the responsible party.
	Scopes           []string       `json:"scopes"`            // Requested permission scopes; never empty.
	SandboxEndpoint  string         `json:"sandbox_endpoint"`  // Optional sandbox callback endpoint.
	ErrorWebhookURL  string         `json:"error_webhook_url"` // Optional webhook notified on app errors.
	ReviewState      AppReviewState `json:"review_state"`      // Moderation status; defaults to pending.
	CreatedAt        time.Time      `json:"created_at"`        // Timestamp of when this record was created.
	UpdatedAt        time.Time      `json:"updated_at"`        // Timestamp of the last modification.
}

// DevelopmentAppInput carries the caller-supplied fields for registering a development app.
type DevelopmentAppInput struct {
	Name             string
	State            string
	DevToken         string
	ResponsibleEmail string
	Scopes           []string
	SandboxEndpoint  string
	ErrorWebhookURL  string
}

// NewDevelopmentApp validates the input and builds a structurally valid
// DevelopmentApp with review state pending.
func NewDevelopmentApp(in DevelopmentAppInput) (*DevelopmentApp, error) {
	if !validate.IsNonEmpty(in.Name) {
		return nil, NewMissingValue("name")
	}
	if !validate.IsNonEmpty(in.State) {
		return nil, NewMissingValue("state")
	}
	if !validate.IsNonEmpty(in.DevToken) {
		return nil, NewMissingValue("dev_token")
	}
	if !validate.IsNonEmpty(in.ResponsibleEmail) {
		return nil, NewMissingValue("responsible_email")
	}
	if !validate.IsEmail(in.ResponsibleEmail) {
		return nil, NewInvalidValue("responsible_email", fmt.Sprintf("%q is not a valid email address", in.ResponsibleEmail))
	}
	if len(in.Scopes) == 0 {
		return nil, NewMissingValue("scopes")
	}
	for _, s := range in.Scopes {
		if !validate.IsNonEmpty(s) {
			return nil, NewInvalidValue("scopes", "scope entries must be non-empty")
		}
	}
	if in.SandboxEndpoint != "" && !validate.IsURL(in.SandboxEndpoint) {
		return nil, NewInvalidValue("sandbox_endpoint", fmt.Sprintf("%q is not a valid URL", in.SandboxEndpoint))
	}
	if in.ErrorWebhookURL != "" && !validate.IsURL(in.ErrorWebhookURL) {
		return nil, NewInvalidValue("error_webhook_url", fmt.Sprintf("%q is not a valid URL", in.ErrorWebhookURL))
	}

	now := time.Now()

	return &DevelopmentApp{
		ID:               uuid.New(),
		Name:             in.Name,
		State:            in.State,
		DevToken:         in.DevToken,
		ResponsibleEmail: in.ResponsibleEmail,
		Scopes:           in.Scopes,
		SandboxEndpoint:  in.SandboxEndpoint,
		ErrorWebhookURL:  in.ErrorWebhookURL,
		ReviewState:      ReviewStatePending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

// DevelopmentAppPatch carries the optional fields of a partial development-app update.
type DevelopmentAppPatch struct {
	Name             *string
	State            *string
	DevToken         *string
	ResponsibleEmail *string
	Scopes           []string
	SandboxEndpoint  *string
	ErrorWebhookURL  *string
	ReviewState      *AppReviewState
}

func (p DevelopmentAppPatch) validate() error {
	if p.Name != nil && !validate.IsNonEmpty(*p.Name) {
		return NewMissingValue("name")
	}
	if p.State != nil && !validate.IsNonEmpty(*p.State) {
		return NewMissingValue("state")
	}
	if p.DevToken != nil && !validate.IsNonEmpty(*p.DevToken) {
		return NewMissingValue("dev_token")
	}
	if p.ResponsibleEmail != nil && !validate.IsEmail(*p.ResponsibleEmail) {
		return NewInvalidValue("responsible_email", fmt.Sprintf("%q is not a valid email address", *p.ResponsibleEmail))
	}
	if p.Scopes != nil {
		if len(p.Scopes) == 0 {
			return NewInvalidValue("scopes", "scope list cannot be emptied")
		}
		for _, s := range p.Scopes {
			if !validate.IsNonEmpty(s) {
				return NewInvalidValue("scopes", "scope entries must be non-empty")
			}
		}
	}
	if p.SandboxEndpoint != nil && *p.SandboxEndpoint != "" && !validate.IsURL(*p.SandboxEndpoint) {
		return NewInvalidValue("sandbox_endpoint", fmt.Sprintf("%q is not a valid URL", *p.SandboxEndpoint))
	}
	if p.ErrorWebhookURL != nil && *p.ErrorWebhookURL != "" && !validate.IsURL(*p.ErrorWebhookURL) {
		return NewInvalidValue("error_webhook_url", fmt.Sprintf("%q is not a valid URL", *p.ErrorWebhookURL))
	}
	if p.ReviewState != nil && !p.ReviewState.IsValid() {
		return NewInvalidValue("review_state", fmt.Sprintf("unknown review state %q", *p.ReviewState))
	}

	return nil
}

func (a *DevelopmentApp) apply(p DevelopmentAppPatch, now time.Time) {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.State != nil {
		a.State = *p.State
	}
	if p.DevToken != nil {
		a.DevToken = *p.DevToken
	}
	if p.ResponsibleEmail != nil {
		a.ResponsibleEmail = *p.ResponsibleEmail
	}
	if p.Scopes != nil {
		a.Scopes = p.Scopes
	}
	if p.SandboxEndpoint != nil {
		a.SandboxEndpoint = *p.SandboxEndpoint
	}
	if p.ErrorWebhookURL != nil {
		a.ErrorWebhookURL = *p.ErrorWebhookURL
	}
	if p.ReviewState != nil {
		a.ReviewState = *p.ReviewState
	}
	a.UpdatedAt = now
}

// UninstalledApp records an app removal together with a snapshot of its data
// at the time of removal.
type UninstalledApp struct {
	ID            uuid.UUID      `json:"id"`             // The Global Unique Identifier (GUID) for the record.
	Name          string         `json:"name"`           // The uninstalled app's name.
	Reason        string         `json:"reason"`         // The merchant-supplied uninstall reason.
	UninstalledAt time.Time      `json:"uninstalled_at"` // Timestamp of the uninstall.
	Snapshot      map[string]any `json:"snapshot"`       // Opaque copy of the app data prior to removal.
}
