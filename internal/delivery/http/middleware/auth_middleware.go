package middleware

import (
	"strings"

	"storeadmin/internal/delivery/http/response"
	"storeadmin/internal/domain/entity"
	domainerrors "storeadmin/internal/domain/errors"
	"storeadmin/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate for downstream handlers.
const (
	ContextKeyAdminID = "adminID"
	ContextKeyStoreID = "storeID"
	ContextKeyRoles   = "roles"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the JWT access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, domainerrors.ErrInvalidToken.ErrorCode(), "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, domainerrors.ErrInvalidToken.ErrorCode(), "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, domainerrors.ErrInvalidToken.ErrorCode(), "Invalid or expired token")
		}

		// Set admin identity on the context for handlers to use
		c.Set(ContextKeyAdminID, claims.AdminID)
		c.Set(ContextKeyStoreID, claims.StoreID)
		c.Set(ContextKeyRoles, claims.Roles)

		return next(c)
	}
}

// RequireStoreAccess rejects requests whose :store_id path parameter does not
// match the store the token was issued for. It must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireStoreAccess(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		pathStoreID, err := uuid.Parse(c.Param("store_id"))
		if err != nil {
			return response.BadRequest(c, "INVALID_STORE_ID", "Store ID must be a valid UUID")
		}

		tokenStoreID, ok := c.Get(ContextKeyStoreID).(uuid.UUID)
		if !ok || tokenStoreID != pathStoreID {
			return response.Forbidden(c, domainerrors.ErrStoreMismatch.ErrorCode(), "Token does not grant access to this store")
		}

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the admin has a specific role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, ok := c.Get(ContextKeyRoles).([]string)
			if !ok {
				return response.Forbidden(c, domainerrors.ErrForbidden.ErrorCode(), "Permission denied: role information missing")
			}

			if !entity.RolesFromStrings(raw).Contains(requiredRole) {
				return response.Forbidden(c, domainerrors.ErrForbidden.ErrorCode(), "Permission denied: require '"+requiredRole.String()+"' role")
			}

			return next(c)
		}
	}
}
