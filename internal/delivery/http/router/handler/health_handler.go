// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"storeadmin/internal/delivery/http/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// storeIDFromPath parses the :store_id path parameter shared by every
// configuration route.
func storeIDFromPath(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("store_id"))
}
