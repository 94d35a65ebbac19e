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

// PoliciesConfigHandler holds dependencies for policies configuration handlers.
type PoliciesConfigHandler struct {
	uc     usecase.PoliciesUsecase
	logger *slog.Logger
}

// NewPoliciesConfigHandler is the constructor for PoliciesConfigHandler, injected by Fx.
func NewPoliciesConfigHandler(uc usecase.PoliciesUsecase, logger *slog.Logger) *PoliciesConfigHandler {
	return &PoliciesConfigHandler{
		uc:     uc,
		logger: logger,
	}
}

type returnRuleRequest struct {
	Name             string  `json:"name" validate:"required"`
	WindowDays       int     `json:"window_days" validate:"gte=0"`
	RefundMethod     string  `json:"refund_method" validate:"required"`
	RestockingFeePct float64 `json:"restocking_fee_pct" validate:"gte=0,lte=100"`
	RequiresReceipt  bool    `json:"requires_receipt"`
	Active           bool    `json:"active"`
}

type returnRulePatchRequest struct {
	Name             *string  `json:"name"`
	WindowDays       *int     `json:"window_days"`
	RefundMethod     *string  `json:"refund_method"`
	RestockingFeePct *float64 `json:"restocking_fee_pct"`
	RequiresReceipt  *bool    `json:"requires_receipt"`
	Active           *bool    `json:"active"`
}

type returnRulesEnabledRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

type templateRequest struct {
	Name    string `json:"name" validate:"required"`
	Kind    string `json:"kind" validate:"required"`
	Content string `json:"content" validate:"required"`
	Active  bool   `json:"active"`
}

type templatePatchRequest struct {
	Name    *string `json:"name"`
	Kind    *string `json:"kind"`
	Content *string `json:"content"`
	Active  *bool   `json:"active"`
}

// CreateConfiguration handles the configuration bootstrap request.
func (h *PoliciesConfigHandler) CreateConfiguration(c echo.Context) error {
	storeID, err := storeIDFromPath(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_STORE_ID", "Store ID must be a valid UUID")
	}

	config, err := h.uc.CreateConfiguration(c.Request().Context(), storeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, config, "Policies configuration created")
}

// GetConfiguration returns the store's policies configuration.
func (h *PoliciesConfigHandler) GetConfiguration(c echo.Context) error {
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

// DeleteConfiguration removes the store's policies configuration.
func (h *PoliciesConfigHandler) DeleteConfiguration(c echo.Context) error {
	storeID, err := storeIDFromPath(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_STORE_ID", "Store ID must be a valid UUID")
	}

	if err := h.uc.DeleteConfiguration(c.Request().Context(), storeID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Policies configuration deleted"}, "")
}

// AddReturnRule appends a return rule to the configuration.
func (h *PoliciesConfigHandler) AddReturnRule(c echo.Context) error {
	storeID, err := storeIDFromPath(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_STORE_ID", "Store ID must be a valid UUID")
	}

	var req returnRuleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid return rule input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	config, err := h.uc.AddReturnRule(c.Request().Context(), storeID, entity.ReturnRuleInput{
		Name:             req.Name,
		WindowDays:       req.WindowDays,
		RefundMethod:     entity.RefundMethod(req.RefundMethod),
		RestockingFeePct: req.RestockingFeePct,
		RequiresReceipt:  req.RequiresReceipt,
		Active:           req.Active,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, config, "Return rule added")
}

// UpdateReturnRule applies a partial update to the named rule.
func (h *PoliciesConfigHandler) UpdateReturnRule(c echo.Context) error {
	storeID, err := storeIDFromPath(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_STORE_ID", "Store ID must be a valid UUID")
	}

	var req returnRulePatchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid return rule patch")
	}

	patch := entity.ReturnRulePatch{
		Name:             req.Name,
		WindowDays:       req.WindowDays,
		RestockingFeePct: req.RestockingFeePct,
		RequiresReceipt:  req.RequiresReceipt,
		Active:           req.Active,
	}
	if req.RefundMethod != nil {
		method := entity.RefundMethod(*req.RefundMethod)
		patch.RefundMethod = &method
	}

	config, err := h.uc.UpdateReturnRule(c.Request().Context(), storeID, c.Param("name"), patch)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, config, "Return rule updated")
}

// RemoveReturnRule deletes the named rule.
func (h *PoliciesConfigHandler) RemoveReturnRule(c echo.Context) error {
	storeID, err := storeIDFromPath(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_STORE_ID", "Store ID must be a valid UUID")
	}

	config, err := h.uc.RemoveReturnRule(c.Request().Context(), storeID, c.Param("name"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, config, "Return rule removed")
}

// ToggleReturnRules switches the aggregate-wide return rules flag.
func (h *PoliciesConfigHandler) ToggleReturnRules(c echo.Context) error {
	storeID, err := storeIDFromPath(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_STORE_ID", "Store ID must be a valid UUID")
	}

	var req returnRulesEnabledRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid return rules toggle input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	config, err := h.uc.ToggleReturnRules(c.Request().Context(), storeID, *req.Enabled)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, config, "Return rules toggled")
}

// AddTemplate appends a documentation template to the configuration.
func (h *PoliciesConfigHandler) AddTemplate(c echo.Context) error {
	storeID, err := storeIDFromPath(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_STORE_ID", "Store ID must be a valid UUID")
	}

	var req templateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid template input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	config, err := h.uc.AddTemplate(c.Request().Context(), storeID, entity.DocumentationTemplateInput{
		Name:    req.Name,
		Kind:    entity.TemplateKind(req.Kind),
		Content: req.Content,
		Active:  req.Active,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, config, "Template added")
}

// UpdateTemplate applies a partial update to the named template.
func (h *PoliciesConfigHandler) UpdateTemplate(c echo.Context) error {
	storeID, err := storeIDFromPath(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_STORE_ID", "Store ID must be a valid UUID")
	}

	var req templatePatchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid template patch")
	}

	patch := entity.DocumentationTemplatePatch{
		Name:    req.Name,
		Content: req.Content,
		Active:  req.Active,
	}
	if req.Kind != nil {
		kind := entity.TemplateKind(*req.Kind)
		patch.Kind = &kind
	}

	config, err := h.uc.UpdateTemplate(c.Request().Context(), storeID, c.Param("name"), patch)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, config, "Template updated")
}

// RemoveTemplate deletes the named template.
func (h *PoliciesConfigHandler) RemoveTemplate(c echo.Context) error {
	storeID, err := storeIDFromPath(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_STORE_ID", "Store ID must be a valid UUID")
	}

	config, err := h.uc.RemoveTemplate(c.Request().Context(), storeID, c.Param("name"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, config, "Template removed")
}
