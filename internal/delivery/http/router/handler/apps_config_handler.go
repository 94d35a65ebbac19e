package handler

import (
	"log/slog"
	"net/http"

	"storeadmin/internal/delivery/http/response"
	"storeadmin/internal/domain/entity"
	"storeadmin/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AppsConfigHandler holds dependencies for apps and channels configuration handlers.
type AppsConfigHandler struct {
	uc     usecase.AppsUsecase
	logger *slog.Logger
}

// NewAppsConfigHandler is the constructor for AppsConfigHandler, injected by Fx.
func NewAppsConfigHandler(uc usecase.AppsUsecase, logger *slog.Logger) *AppsConfigHandler {
	return &AppsConfigHandler{
		uc:     uc,
		logger: logger,
	}
}

type installAppRequest struct {
	Name        string   `json:"name" validate:"required"`
	Kind        string   `json:"kind" validate:"required"`
	Version     string   `json:"version"`
	Permissions []string `json:"permissions"`
	AccessToken string   `json:"access_token"`
	ConfigURL   string   `json:"config_url"`
}

type installedAppPatchRequest struct {
	Name        *string  `json:"name"`
	Kind        *string  `json:"kind"`
	Installed   *bool    `json:"installed"`
	Version     *string  `json:"version"`
	Permissions []string `json:"permissions"`
	AccessToken *string  `json:"access_token"`
	ConfigURL   *string  `json:"config_url"`
}

type uninstallAppRequest struct {
	Reason string `json:"reason"`
}

type salesChannelRequest struct {
	Name   string         `json:"name" validate:"required"`
	URL    string         `json:"url"`
	Active bool           `json:"active"`
	Kind   string         `json:"kind" validate:"required"`
	Config map[string]any `json:"config"`
}

type salesChannelPatchRequest struct {
	Name   *string        `json:"name"`
	URL    *string        `json:"url"`
	Active *bool          `json:"active"`
	Kind   *string        `json:"kind"`
	Config map[string]any `json:"config"`
}

type channelActiveRequest struct {
	Active *bool `json:"active" validate:"required"`
}

type developmentAppRequest struct {
	Name             string   `json:"name" validate:"required"`
	State            string   `json:"state" validate:"required"`
	DevToken         string   `json:"dev_token"`
	ResponsibleEmail string   `json:"responsible_email"`
	Scopes           []string `json:"scopes"`
	SandboxEndpoint  string   `json:"sandbox_endpoint"`
	ErrorWebhookURL  string   `json:"error_webhook_url"`
}

type developmentAppPatchRequest struct {
	Name             *string  `json:"name"`
	State            *string  `json:"state"`
	DevToken         *string  `json:"dev_token"`
	ResponsibleEmail *string  `json:"responsible_email"`
	Scopes           []string `json:"scopes"`
	SandboxEndpoint  *string  `json:"sandbox_endpoint"`
	ErrorWebhookURL  *string  `json:"error_webhook_url"`
	ReviewState      *string  `json:"review_state"`
}

// CreateConfiguration handles the configuration bootstrap request.
func (h *AppsConfigHandler) CreateConfiguration(c echo.Context) error {
	storeID, err := storeIDFromPath(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_STORE_ID", "Store ID must be a valid UUID")
	}

	config, err := h.uc.CreateConfiguration(c.Request().Context(), storeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, config, "Apps configuration created")
}

// GetConfiguration returns the store's apps and channels configuration.
func (h *AppsConfigHandler) GetConfiguration(c echo.Context) error {
	storeID, err := storeIDFromPath(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_STORE_ID", "Store ID must be a valid UUID")
	}

	config, err := h.uc.GetConfiguration(c.Request().Context(), storeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, config, "")
}

// DeleteConfiguration removes the store's apps and channels configuration.
func (h *AppsConfigHandler) DeleteConfiguration(c echo.Context) error {
	storeID, err := storeIDFromPath(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_STORE_ID", "Store ID must be a valid UUID")
	}

	if err := h.uc.DeleteConfiguration(c.Request().Context(), storeID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Apps configuration deleted"}, "")
}

// InstallApp records a newly installed app.
func (h *AppsConfigHandler) InstallApp(c echo.Context) error {
	storeID, err := storeIDFromPath(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_STORE_ID", "Store ID must be a valid UUID")
	}

	var req installAppRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid app input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	config, err := h.uc.InstallApp(c.Request().Context(), storeID, entity.InstalledAppInput{
		Name:        req.Name,
		Kind:        req.Kind,
		Version:     req.Version,
		Permissions: req.Permissions,
		AccessToken: req.AccessToken,
		ConfigURL:   req.ConfigURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, config, "App installed")
}

// UpdateInstalledApp applies a partial update to the named installed app.
func (h *AppsConfigHandler) UpdateInstalledApp(c echo.Context) error {
	storeID, err := storeIDFromPath(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_STORE_ID", "Store ID must be a valid UUID")
	}

	var req installedAppPatchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid app patch")
	}

	config, err := h.uc.UpdateInstalledApp(c.Request().Context(), storeID, c.Param("name"), entity.InstalledAppPatch{
		Name:        req.Name,
		Kind:        req.Kind,
		Installed:   req.Installed,
		Version:     req.Version,
		Permissions: req.Permissions,
		AccessToken: req.AccessToken,
		ConfigURL:   req.ConfigURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, config, "App updated")
}

// RemoveInstalledApp deletes an installed app without keeping an uninstall record.
func (h *AppsConfigHandler) RemoveInstalledApp(c echo.Context) error {
	storeID, err := storeIDFromPath(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_STORE_ID", "Store ID must be a valid UUID")
	}

	config, err := h.uc.RemoveInstalledApp(c.Request().Context(), storeID, c.Param("name"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, config, "App removed")
}

// UninstallApp removes an installed app and records the uninstall.
func (h *AppsConfigHandler) UninstallApp(c echo.Context) error {
	storeID, err := storeIDFromPath(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_STORE_ID", "Store ID must be a valid UUID")
	}

	var req uninstallAppRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid uninstall input")
	}

	config, err := h.uc.UninstallApp(c.Request().Context(), storeID, c.Param("name"), req.Reason)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, config, "App uninstalled")
}

// RemoveUninstalledApp deletes an uninstall record.
func (h *AppsConfigHandler) RemoveUninstalledApp(c echo.Context) error {
	storeID, err := storeIDFromPath(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_STORE_ID", "Store ID must be a valid UUID")
	}

	config, err := h.uc.RemoveUninstalledApp(c.Request().Context(), storeID, c.Param("name"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, config, "Uninstall record removed")
}

// AddSalesChannel appends a sales channel to the configuration.
func (h *AppsConfigHandler) AddSalesChannel(c echo.Context) error {
	storeID, err := storeIDFromPath(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_STORE_ID", "Store ID must be a valid UUID")
	}

	var req salesChannelRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sales channel input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	config, err := h.uc.AddSalesChannel(c.Request().Context(), storeID, entity.SalesChannelInput{
		Name:   req.Name,
		URL:    req.URL,
		Active: req.Active,
		Kind:   req.Kind,
		Config: req.Config,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, config, "Sales channel added")
}

// UpdateSalesChannel applies a partial update to the named sales channel.
func (h *AppsConfigHandler) UpdateSalesChannel(c echo.Context) error {
	storeID, err := storeIDFromPath(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_STORE_ID", "Store ID must be a valid UUID")
	}

	var req salesChannelPatchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sales channel patch")
	}

	config, err := h.uc.UpdateSalesChannel(c.Request().Context(), storeID, c.Param("name"), entity.SalesChannelPatch{
		Name:   req.Name,
		URL:    req.URL,
		Active: req.Active,
		Kind:   req.Kind,
		Config: req.Config,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, config, "Sales channel updated")
}

// ToggleSalesChannel switches the named channel's active flag.
func (h *AppsConfigHandler) ToggleSalesChannel(c echo.Context) error {
	storeID, err := storeIDFromPath(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_STORE_ID", "Store ID must be a valid UUID")
	}

	var req channelActiveRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid channel toggle input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	config, err := h.uc.ToggleSalesChannel(c.Request().Context(), storeID, c.Param("name"), *req.Active)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, config, "Sales channel toggled")
}

// RemoveSalesChannel deletes the named sales channel.
func (h *AppsConfigHandler) RemoveSalesChannel(c echo.Context) error {
	storeID, err := storeIDFromPath(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_STORE_ID", "Store ID must be a valid UUID")
	}

	config, err := h.uc.RemoveSalesChannel(c.Request().Context(), storeID, c.Param("name"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, config, "Sales channel removed")
}

// AddDevelopmentApp registers a development app, starting in pending review.
func (h *AppsConfigHandler) AddDevelopmentApp(c echo.Context) error {
	storeID, err := storeIDFromPath(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_STORE_ID", "Store ID must be a valid UUID")
	}

	var req developmentAppRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid development app input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	config, err := h.uc.AddDevelopmentApp(c.Request().Context(), storeID, entity.DevelopmentAppInput{
		Name:             req.Name,
		State:            req.State,
		DevToken:         req.DevToken,
		ResponsibleEmail: req.ResponsibleEmail,
		Scopes:           req.Scopes,
		SandboxEndpoint:  req.SandboxEndpoint,
		ErrorWebhookURL:  req.ErrorWebhookURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, config, "Development app added")
}

// UpdateDevelopmentApp applies a partial update to the named development app.
func (h *AppsConfigHandler) UpdateDevelopmentApp(c echo.Context) error {
	storeID, err := storeIDFromPath(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_STORE_ID", "Store ID must be a valid UUID")
	}

	var req developmentAppPatchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid development app patch")
	}

	patch := entity.DevelopmentAppPatch{
		Name:             req.Name,
		State:            req.State,
		DevToken:         req.DevToken,
		ResponsibleEmail: req.ResponsibleEmail,
		Scopes:           req.Scopes,
		SandboxEndpoint:  req.SandboxEndpoint,
		ErrorWebhookURL:  req.ErrorWebhookURL,
	}
	if req.ReviewState != nil {
		state := entity.AppReviewState(*req.ReviewState)
		patch.ReviewState = &state
	}

	config, err := h.uc.UpdateDevelopmentApp(c.Request().Context(), storeID, c.Param("name"), patch)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, config, "Development app updated")
}

// RemoveDevelopmentApp deletes the named development app.
func (h *AppsConfigHandler) RemoveDevelopmentApp(c echo.Context) error {
	storeID, err := storeIDFromPath(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_STORE_ID", "Store ID must be a valid UUID")
	}

	config, err := h.uc.RemoveDevelopmentApp(c.Request().Context(), storeID, c.Param("name"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, config, "Development app removed")
}
