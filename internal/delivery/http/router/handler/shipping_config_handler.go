package handler

import (
	"log/slog"
	"net/http"

	"storeadmin/internal/delivery/http/response"
	"storeadmin/internal/domain/entity"
	"storeadmin/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ShippingConfigHandler holds dependencies for shipping configuration handlers.
type ShippingConfigHandler struct {
	uc     usecase.ShippingUsecase
	logger *slog.Logger
}

// NewShippingConfigHandler is the constructor for ShippingConfigHandler, injected by Fx.
func NewShippingConfigHandler(uc usecase.ShippingUsecase, logger *slog.Logger) *ShippingConfigHandler {
	return &ShippingConfigHandler{
		uc:     uc,
		logger: logger,
	}
}

type shippingProfileRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	MinWeightKg float64  `json:"min_weight_kg" validate:"gte=0"`
	MaxWeightKg float64  `json:"max_weight_kg" validate:"gte=0"`
	BaseRate    float64  `json:"base_rate" validate:"gte=0"`
	Regions     []string `json:"regions"`
	Active      bool     `json:"active"`
}

type shippingProfilePatchRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	MinWeightKg *float64 `json:"min_weight_kg"`
	MaxWeightKg *float64 `json:"max_weight_kg"`
	BaseRate    *float64 `json:"base_rate"`
	Regions     []string `json:"regions"`
	Active      *bool    `json:"active"`
}

type deliveryMethodRequest struct {
	Type    string  `json:"type" validate:"required"`
	Enabled bool    `json:"enabled"`
	Fee     float64 `json:"fee" validate:"gte=0"`
	MinDays int     `json:"min_days" validate:"gte=0"`
	MaxDays int     `json:"max_days" validate:"gte=0"`
}

type deliveryMethodPatchRequest struct {
	Enabled *bool    `json:"enabled"`
	Fee     *float64 `json:"fee"`
	MinDays *int     `json:"min_days"`
	MaxDays *int     `json:"max_days"`
}

type methodEnabledRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

type packagingRequest struct {
	Name        string  `json:"name" validate:"required"`
	Kind        string  `json:"kind" validate:"required"`
	MaxWeightKg float64 `json:"max_weight_kg" validate:"gte=0"`
	LengthCm    float64 `json:"length_cm" validate:"gte=0"`
	WidthCm     float64 `json:"width_cm" validate:"gte=0"`
	HeightCm    float64 `json:"height_cm" validate:"gte=0"`
	Default     bool    `json:"default"`
}

type packagingPatchRequest struct {
	Name        *string  `json:"name"`
	Kind        *string  `json:"kind"`
	MaxWeightKg *float64 `json:"max_weight_kg"`
	LengthCm    *float64 `json:"length_cm"`
	WidthCm     *float64 `json:"width_cm"`
	HeightCm    *float64 `json:"height_cm"`
}

type transportProviderRequest struct {
	Name         string `json:"name" validate:"required"`
	Code         string `json:"code" validate:"required"`
	TrackingURL  string `json:"tracking_url"`
	ContactEmail string `json:"contact_email"`
	Active       bool   `json:"active"`
}

type transportProviderPatchRequest struct {
	Name         *string `json:"name"`
	Code         *string `json:"code"`
	TrackingURL  *string `json:"tracking_url"`
	ContactEmail *string `json:"contact_email"`
	Active       *bool   `json:"active"`
}

func packagingIDFromPath(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("packaging_id"))
}

// CreateConfiguration handles the configuration bootstrap request.
func (h *ShippingConfigHandler) CreateConfiguration(c echo.Context) error {
	storeID, err := storeIDFromPath(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_STORE_ID", "Store ID must be a valid UUID")
	}

	config, err := h.uc.CreateConfiguration(c.Request().Context(), storeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, config, "Shipping configuration created")
}

// GetConfiguration returns the store's shipping configuration.
func (h *ShippingConfigHandler) GetConfiguration(c echo.Context) error {
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

// DeleteConfiguration removes the store's shipping configuration.
func (h *ShippingConfigHandler) DeleteConfiguration(c echo.Context) error {
	storeID, err := storeIDFromPath(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_STORE_ID", "Store ID must be a valid UUID")
	}

	if err := h.uc.DeleteConfiguration(c.Request().Context(), storeID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Shipping configuration deleted"}, "")
}

// AddShippingProfile appends a weight-band profile to the configuration.
func (h *ShippingConfigHandler) AddShippingProfile(c echo.Context) error {
	storeID, err := storeIDFromPath(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_STORE_ID", "Store ID must be a valid UUID")
	}

	var req shippingProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid shipping profile input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	config, err := h.uc.AddShippingProfile(c.Request().Context(), storeID, entity.ShippingProfileInput{
		Name:        req.Name,
		Description: req.Description,
		MinWeightKg: req.MinWeightKg,
		MaxWeightKg: req.MaxWeightKg,
		BaseRate:    req.BaseRate,
		Regions:     req.Regions,
		Active:      req.Active,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, config, "Shipping profile added")
}

// UpdateShippingProfile applies a partial update to the named profile.
func (h *ShippingConfigHandler) UpdateShippingProfile(c echo.Context) error {
	storeID, err := storeIDFromPath(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_STORE_ID", "Store ID must be a valid UUID")
	}

	var req shippingProfilePatchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid shipping profile patch")
	}

	config, err := h.uc.UpdateShippingProfile(c.Request().Context(), storeID, c.Param("name"), entity.ShippingProfilePatch{
		Name:        req.Name,
		Description: req.Description,
		MinWeightKg: req.MinWeightKg,
		MaxWeightKg: req.MaxWeightKg,
		BaseRate:    req.BaseRate,
		Regions:     req.Regions,
		Active:      req.Active,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, config, "Shipping profile updated")
}

// RemoveShippingProfile deletes the named profile.
func (h *ShippingConfigHandler) RemoveShippingProfile(c echo.Context) error {
	storeID, err := storeIDFromPath(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_STORE_ID", "Store ID must be a valid UUID")
	}

	config, err := h.uc.RemoveShippingProfile(c.Request().Context(), storeID, c.Param("name"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, config, "Shipping profile removed")
}

// AddDeliveryMethod registers a delivery method, one per type.
func (h *ShippingConfigHandler) AddDeliveryMethod(c echo.Context) error {
	storeID, err := storeIDFromPath(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_STORE_ID", "Store ID must be a valid UUID")
	}

	var req deliveryMethodRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid delivery method input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	config, err := h.uc.AddDeliveryMethod(c.Request().Context(), storeID, entity.DeliveryMethodInput{
		Type:    entity.DeliveryMethodType(req.Type),
		Enabled: req.Enabled,
		Fee:     req.Fee,
		MinDays: req.MinDays,
		MaxDays: req.MaxDays,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, config, "Delivery method added")
}

// UpdateDeliveryMethod applies a partial update to the method of the given type.
func (h *ShippingConfigHandler) UpdateDeliveryMethod(c echo.Context) error {
	storeID, err := storeIDFromPath(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_STORE_ID", "Store ID must be a valid UUID")
	}

	var req deliveryMethodPatchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid delivery method patch")
	}

	methodType := entity.DeliveryMethodType(c.Param("type"))
	config, err := h.uc.UpdateDeliveryMethod(c.Request().Context(), storeID, methodType, entity.DeliveryMethodPatch{
		Enabled: req.Enabled,
		Fee:     req.Fee,
		MinDays: req.MinDays,
		MaxDays: req.MaxDays,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, config, "Delivery method updated")
}

// ToggleDeliveryMethod switches the method's enabled flag.
func (h *ShippingConfigHandler) ToggleDeliveryMethod(c echo.Context) error {
	storeID, err := storeIDFromPath(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_STORE_ID", "Store ID must be a valid UUID")
	}

	var req methodEnabledRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid delivery method toggle input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	methodType := entity.DeliveryMethodType(c.Param("type"))
	config, err := h.uc.ToggleDeliveryMethod(c.Request().Context(), storeID, methodType, *req.Enabled)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, config, "Delivery method toggled")
}

// RemoveDeliveryMethod deletes the method of the given type.
func (h *ShippingConfigHandler) RemoveDeliveryMethod(c echo.Context) error {
	storeID, err := storeIDFromPath(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_STORE_ID", "Store ID must be a valid UUID")
	}

	methodType := entity.DeliveryMethodType(c.Param("type"))
	config, err := h.uc.RemoveDeliveryMethod(c.Request().Context(), storeID, methodType)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, config, "Delivery method removed")
}

// AddPackaging appends a packaging option to the configuration.
func (h *ShippingConfigHandler) AddPackaging(c echo.Context) error {
	storeID, err := storeIDFromPath(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_STORE_ID", "Store ID must be a valid UUID")
	}

	var req packagingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid packaging input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	config, err := h.uc.AddPackaging(c.Request().Context(), storeID, entity.PackagingInput{
		Name:        req.Name,
		Kind:        entity.PackagingKind(req.Kind),
		MaxWeightKg: req.MaxWeightKg,
		LengthCm:    req.LengthCm,
		WidthCm:     req.WidthCm,
		HeightCm:    req.HeightCm,
		Default:     req.Default,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, config, "Packaging added")
}

// UpdatePackaging applies a partial update to the identified packaging.
func (h *ShippingConfigHandler) UpdatePackaging(c echo.Context) error {
	storeID, err := storeIDFromPath(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_STORE_ID", "Store ID must be a valid UUID")
	}

	packagingID, err := packagingIDFromPath(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_PACKAGING_ID", "Packaging ID must be a valid UUID")
	}

	var req packagingPatchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid packaging patch")
	}

	patch := entity.PackagingPatch{
		Name:        req.Name,
		MaxWeightKg: req.MaxWeightKg,
		LengthCm:    req.LengthCm,
		WidthCm:     req.WidthCm,
		HeightCm:    req.HeightCm,
	}
	if req.Kind != nil {
		kind := entity.PackagingKind(*req.Kind)
		patch.Kind = &kind
	}

	config, err := h.uc.UpdatePackaging(c.Request().Context(), storeID, packagingID, patch)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, config, "Packaging updated")
}

// RemovePackaging deletes the identified packaging.
func (h *ShippingConfigHandler) RemovePackaging(c echo.Context) error {
	storeID, err := storeIDFromPath(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_STORE_ID", "Store ID must be a valid UUID")
	}

	packagingID, err := packagingIDFromPath(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_PACKAGING_ID", "Packaging ID must be a valid UUID")
	}

	config, err := h.uc.RemovePackaging(c.Request().Context(), storeID, packagingID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, config, "Packaging removed")
}

// SetDefaultPackaging marks the identified packaging as the default.
func (h *ShippingConfigHandler) SetDefaultPackaging(c echo.Context) error {
	storeID, err := storeIDFromPath(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_STORE_ID", "Store ID must be a valid UUID")
	}

	packagingID, err := packagingIDFromPath(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_PACKAGING_ID", "Packaging ID must be a valid UUID")
	}

	config, err := h.uc.SetDefaultPackaging(c.Request().Context(), storeID, packagingID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, config, "Default packaging updated")
}

// AddTransportProvider appends a transport provider to the configuration.
func (h *ShippingConfigHandler) AddTransportProvider(c echo.Context) error {
	storeID, err := storeIDFromPath(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_STORE_ID", "Store ID must be a valid UUID")
	}

	var req transportProviderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid transport provider input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	config, err := h.uc.AddTransportProvider(c.Request().Context(), storeID, entity.TransportProviderInput{
		Name:         req.Name,
		Code:         req.Code,
		TrackingURL:  req.TrackingURL,
		ContactEmail: req.ContactEmail,
		Active:       req.Active,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, config, "Transport provider added")
}

// UpdateTransportProvider applies a partial update to the named provider.
func (h *ShippingConfigHandler) UpdateTransportProvider(c echo.Context) error {
	storeID, err := storeIDFromPath(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_STORE_ID", "Store ID must be a valid UUID")
	}

	var req transportProviderPatchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid transport provider patch")
	}

	config, err := h.uc.UpdateTransportProvider(c.Request().Context(), storeID, c.Param("name"), entity.TransportProviderPatch{
		Name:         req.Name,
		Code:         req.Code,
		TrackingURL:  req.TrackingURL,
		ContactEmail: req.ContactEmail,
		Active:       req.Active,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, config, "Transport provider updated")
}

// RemoveTransportProvider deletes the named provider.
func (h *ShippingConfigHandler) RemoveTransportProvider(c echo.Context) error {
	storeID, err := storeIDFromPath(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_STORE_ID", "Store ID must be a valid UUID")
	}

	config, err := h.uc.RemoveTransportProvider(c.Request().Context(), storeID, c.Param("name"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, config, "Transport provider removed")
}
