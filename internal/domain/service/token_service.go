package service

import (
	"storeadmin/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for the admin JWT tokens. Roles travel as
// plain strings on the wire; use AdminRoles for the typed view.
type Claims struct {
	AdminID uuid.UUID `json:"admin_id"`
	StoreID uuid.UUID `json:"store_id"`
	Roles   []string  `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// AdminRoles returns the typed roles carried by the token, dropping any
// string that is not a known role.
func (c *Claims) AdminRoles() entity.Roles {
	return entity.RolesFromStrings(c.Roles)
}

// TokenService defines the interface for issuing and validating admin JWTs.
// This abstracts the details of token parsing from the delivery layer.
type TokenService interface {
	// GenerateToken creates a signed access token for an admin of a store.
	GenerateToken(adminID, storeID uuid.UUID, roles entity.Roles) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
