// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storeadmin/internal/delivery/http/middleware"
	"storeadmin/internal/delivery/http/router/handler"
	"storeadmin/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	DomainsHandler  *handler.DomainsConfigHandler
	AppsHandler     *handler.AppsConfigHandler
	ShippingHandler *handler.ShippingConfigHandler
	PoliciesHandler *handler.PoliciesConfigHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	domainsHandler  *handler.DomainsConfigHandler
	appsHandler     *handler.AppsConfigHandler
	shippingHandler *handler.ShippingConfigHandler
	policiesHandler *handler.PoliciesConfigHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		domainsHandler:  params.DomainsHandler,
		appsHandler:     params.AppsHandler,
		shippingHandler: params.ShippingHandler,
		policiesHandler: params.PoliciesHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Every configuration route is scoped to a store and requires an admin
	// token issued for that store.
	store := e.Group("/api/v1/stores/:store_id")
	store.Use(r.authMiddleware.Authenticate)
	store.Use(r.authMiddleware.RequireStoreAccess)

	// Dropping a whole configuration section is reserved for the store owner.
	ownerOnly := r.authMiddleware.RequireRole(entity.RoleOwner)

	domains := store.Group("/settings/domains")
	{
		domains.POST("", r.domainsHandler.CreateConfiguration)
		domains.GET("", r.domainsHandler.GetConfiguration)
		domains.DELETE("", r.domainsHandler.DeleteConfiguration, ownerOnly)
		domains.POST("/items", r.domainsHandler.AddDomain)
		domains.PATCH("/items/:name", r.domainsHandler.UpdateDomain)
		domains.DELETE("/items/:name", r.domainsHandler.RemoveDomain)
		domains.PUT("/principal", r.domainsHandler.SetPrincipalDomain)
		domains.PUT("/redirection", r.domainsHandler.ToggleGlobalRedirection)
	}

	apps := store.Group("/settings/apps")
	{
		apps.POST("", r.appsHandler.CreateConfiguration)
		apps.GET("", r.appsHandler.GetConfiguration)
		apps.DELETE("", r.appsHandler.DeleteConfiguration, ownerOnly)
		apps.POST("/installed", r.appsHandler.InstallApp)
		apps.PATCH("/installed/:name", r.appsHandler.UpdateInstalledApp)
		apps.DELETE("/installed/:name", r.appsHandler.RemoveInstalledApp)
		apps.POST("/installed/:name/uninstall", r.appsHandler.UninstallApp)
		apps.DELETE("/uninstalled/:name", r.appsHandler.RemoveUninstalledApp)
		apps.POST("/channels", r.appsHandler.AddSalesChannel)
		apps.PATCH("/channels/:name", r.appsHandler.UpdateSalesChannel)
		apps.PUT("/channels/:name/active", r.appsHandler.ToggleSalesChannel)
		apps.DELETE("/channels/:name", r.appsHandler.RemoveSalesChannel)
		apps.POST("/development", r.appsHandler.AddDevelopmentApp)
		apps.PATCH("/development/:name", r.appsHandler.UpdateDevelopmentApp)
		apps.DELETE("/development/:name", r.appsHandler.RemoveDevelopmentApp)
	}

	shipping := store.Group("/settings/shipping")
	{
		shipping.POST("", r.shippingHandler.CreateConfiguration)
		shipping.GET("", r.shippingHandler.GetConfiguration)
		shipping.DELETE("", r.shippingHandler.DeleteConfiguration, ownerOnly)
		shipping.POST("/profiles", r.shippingHandler.AddShippingProfile)
		shipping.PATCH("/profiles/:name", r.shippingHandler.UpdateShippingProfile)
		shipping.DELETE("/profiles/:name", r.shippingHandler.RemoveShippingProfile)
		shipping.POST("/methods", r.shippingHandler.AddDeliveryMethod)
		shipping.PATCH("/methods/:type", r.shippingHandler.UpdateDeliveryMethod)
		shipping.PUT("/methods/:type/enabled", r.shippingHandler.ToggleDeliveryMethod)
		shipping.DELETE("/methods/:type", r.shippingHandler.RemoveDeliveryMethod)
		shipping.POST("/packagings", r.shippingHandler.AddPackaging)
		shipping.PATCH("/packagings/:packaging_id", r.shippingHandler.UpdatePackaging)
		shipping.PUT("/packagings/:packaging_id/default", r.shippingHandler.SetDefaultPackaging)
		shipping.DELETE("/packagings/:packaging_id", r.shippingHandler.RemovePackaging)
		shipping.POST("/providers", r.shippingHandler.AddTransportProvider)
		shipping.PATCH("/providers/:name", r.shippingHandler.UpdateTransportProvider)
		shipping.DELETE("/providers/:name", r.shippingHandler.RemoveTransportProvider)
	}

	policies := store.Group("/settings/policies")
	{
		policies.POST("", r.policiesHandler.CreateConfiguration)
		policies.GET("", r.policiesHandler.GetConfiguration)
		policies.DELETE("", r.policiesHandler.DeleteConfiguration, ownerOnly)
		policies.POST("/return-rules", r.policiesHandler.AddReturnRule)
		policies.PATCH("/return-rules/:name", r.policiesHandler.UpdateReturnRule)
		policies.DELETE("/return-rules/:name", r.policiesHandler.RemoveReturnRule)
		policies.PUT("/return-rules/enabled", r.policiesHandler.ToggleReturnRules)
		policies.POST("/templates", r.policiesHandler.AddTemplate)
		policies.PATCH("/templates/:name", r.policiesHandler.UpdateTemplate)
		policies.DELETE("/templates/:name", r.policiesHandler.RemoveTemplate)
	}
}
