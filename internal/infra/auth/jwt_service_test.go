package auth

import (
	"testing"

	"storeadmin/config"
	"storeadmin/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig("test_access_secret_key_very_long_for_testing"))
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	adminID := uuid.New()
	storeID := uuid.New()
	roles := entity.Roles{entity.RoleOwner, entity.RoleStaff}

	token, err := jwtService.GenerateToken(adminID, storeID, roles)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, adminID, claims.AdminID)
	assert.Equal(t, storeID, claims.StoreID)
	assert.Equal(t, []string{"owner", "staff"}, claims.Roles)
	assert.Equal(t, roles, claims.AdminRoles())
	assert.True(t, claims.AdminRoles().Contains(entity.RoleOwner))
	assert.Equal(t, adminID.String(), claims.Subject)
}

func TestJWTService_UnknownRoleStringsAreDropped(t *testing.T) {
	jwtService, err := NewJWTService(testConfig("test_access_secret_key_very_long_for_testing"))
	assert.NoError(t, err)

	token, err := jwtService.GenerateToken(uuid.New(), uuid.New(), entity.Roles{entity.RoleStaff})
	assert.NoError(t, err)

	claims, err := jwtService.ValidateToken(token)
	assert.NoError(t, err)
	claims.Roles = append(claims.Roles, "superuser")

	typed := claims.AdminRoles()
	assert.Equal(t, entity.Roles{entity.RoleStaff}, typed)
	assert.False(t, typed.Contains(entity.RoleOwner))
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig("test_access_secret_key_very_long_for_testing"))
	assert.NoError(t, err)

	// Clearly non-JWT format
	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(testConfig("issuer_secret_key_very_long_for_testing"))
	assert.NoError(t, err)

	token, err := issuer.GenerateToken(uuid.New(), uuid.New(), nil)
	assert.NoError(t, err)

	verifier, err := NewJWTService(testConfig("different_secret_key_very_long_for_testing"))
	assert.NoError(t, err)

	claims, err := verifier.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecret(t *testing.T) {
	jwtService, err := NewJWTService(testConfig(""))
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}
