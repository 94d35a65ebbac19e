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

// DomainsConfigHandler holds dependencies for domains configuration handlers.
type DomainsConfigHandler struct {
	uc     usecase.DomainsUsecase
	logger *slog.Logger
}

// NewDomainsConfigHandler is the constructor for DomainsConfigHandler, injected by Fx.
func NewDomainsConfigHandler(uc usecase.DomainsUsecase, logger *slog.Logger) *DomainsConfigHandler {
	return &DomainsConfigHandler{
		uc:     uc,
		logger: logger,
	}
}

// domainRequest carries a single domain in create and add requests.
type domainRequest struct {
	Name               string `json:"name" validate:"required"`
	Kind               string `json:"kind" validate:"required"`
	ConnectionState    string `json:"connection_state"`
	Source             string `json:"source"`
	RedirectionEnabled bool   `json:"redirection_enabled"`
	Purchased          bool   `json:"purchased"`
	SubdomainLabel     string `json:"subdomain_label"`
	SSLActive          bool   `json:"ssl_active"`
	HTTPSEnabled       bool   `json:"https_enabled"`
}

func (r domainRequest) toInput() entity.DomainInput {
	return entity.DomainInput{
		Name:               r.Name,
		Kind:               entity.DomainKind(r.Kind),
		ConnectionState:    entity.DomainConnectionState(r.ConnectionState),
		Source:             entity.DomainSource(r.Source),
		RedirectionEnabled: r.RedirectionEnabled,
		Purchased:          r.Purchased,
		SubdomainLabel:     r.SubdomainLabel,
		SSLActive:          r.SSLActive,
		HTTPSEnabled:       r.HTTPSEnabled,
	}
}

// domainPatchRequest carries the partial update of a domain. Absent fields stay untouched.
type domainPatchRequest struct {
	Name               *string `json:"name"`
	Kind               *string `json:"kind"`
	ConnectionState    *string `json:"connection_state"`
	Source             *string `json:"source"`
	RedirectionEnabled *bool   `json:"redirection_enabled"`
	Purchased          *bool   `json:"purchased"`
	SubdomainLabel     *string `json:"subdomain_label"`
	SSLActive          *bool   `json:"ssl_active"`
	HTTPSEnabled       *bool   `json:"https_enabled"`
}

func (r domainPatchRequest) toPatch() entity.DomainPatch {
	patch := entity.DomainPatch{
		Name:               r.Name,
		RedirectionEnabled: r.RedirectionEnabled,
		Purchased:          r.Purchased,
		SubdomainLabel:     r.SubdomainLabel,
		SSLActive:          r.SSLActive,
		HTTPSEnabled:       r.HTTPSEnabled,
	}
	if r.Kind != nil {
		kind := entity.DomainKind(*r.Kind)
		patch.Kind = &kind
	}
	if r.ConnectionState != nil {
		state := entity.DomainConnectionState(*r.ConnectionState)
		patch.ConnectionState = &state
	}
	if r.Source != nil {
		source := entity.DomainSource(*r.Source)
		patch.Source = &source
	}

	return patch
}

type createDomainsConfigRequest struct {
	Domains []domainRequest `json:"domains" validate:"dive"`
}

type principalDomainRequest struct {
	Name string `json:"name" validate:"required"`
}

type globalRedirectionRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

// CreateConfiguration handles the configuration bootstrap request.
func (h *DomainsConfigHandler) CreateConfiguration(c echo.Context) error {
	storeID, err := storeIDFromPath(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_STORE_ID", "Store ID must be a valid UUID")
	}

	var req createDomainsConfigRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid domains configuration input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	inputs := make([]entity.DomainInput, 0, len(req.Domains))
	for _, d := range req.Domains {
		inputs = append(inputs, d.toInput())
	}

	config, err := h.uc.CreateConfiguration(c.Request().Context(), storeID, inputs)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, config, "Domains configuration created")
}

// GetConfiguration returns the store's domains configuration.
func (h *DomainsConfigHandler) GetConfiguration(c echo.Context) error {
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

// DeleteConfiguration removes the store's domains configuration.
func (h *DomainsConfigHandler) DeleteConfiguration(c echo.Context) error {
	storeID, err := storeIDFromPath(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_STORE_ID", "Store ID must be a valid UUID")
	}

	if err := h.uc.DeleteConfiguration(c.Request().Context(), storeID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Domains configuration deleted"}, "")
}

// AddDomain appends a domain to the configuration.
func (h *DomainsConfigHandler) AddDomain(c echo.Context) error {
	storeID, err := storeIDFromPath(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_STORE_ID", "Store ID must be a valid UUID")
	}

	var req domainRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid domain input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	config, err := h.uc.AddDomain(c.Request().Context(), storeID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, config, "Domain added")
}

// UpdateDomain applies a partial update to the named domain.
func (h *DomainsConfigHandler) UpdateDomain(c echo.Context) error {
	storeID, err := storeIDFromPath(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_STORE_ID", "Store ID must be a valid UUID")
	}

	var req domainPatchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid domain patch")
	}

	config, err := h.uc.UpdateDomain(c.Request().Context(), storeID, c.Param("name"), req.toPatch())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, config, "Domain updated")
}

// RemoveDomain deletes the named domain from the configuration.
func (h *DomainsConfigHandler) RemoveDomain(c echo.Context) error {
	storeID, err := storeIDFromPath(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_STORE_ID", "Store ID must be a valid UUID")
	}

	config, err := h.uc.RemoveDomain(c.Request().Context(), storeID, c.Param("name"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, config, "Domain removed")
}

// SetPrincipalDomain promotes the named domain to principal.
func (h *DomainsConfigHandler) SetPrincipalDomain(c echo.Context) error {
	storeID, err := storeIDFromPath(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_STORE_ID", "Store ID must be a valid UUID")
	}

	var req principalDomainRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid principal domain input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	config, err := h.uc.SetPrincipalDomain(c.Request().Context(), storeID, req.Name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, config, "Principal domain updated")
}

// ToggleGlobalRedirection switches the aggregate-wide redirection flag.
func (h *DomainsConfigHandler) ToggleGlobalRedirection(c echo.Context) error {
	storeID, err := storeIDFromPath(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_STORE_ID", "Store ID must be a valid UUID")
	}

	var req globalRedirectionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid redirection input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	config, err := h.uc.ToggleGlobalRedirection(c.Request().Context(), storeID, *req.Enabled)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, config, "Global redirection updated")
}
