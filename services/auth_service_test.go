package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hikegear/storefront/data"
	"github.com/hikegear/storefront/models"
	"github.com/hikegear/storefront/services"
)

func newAuthService() (*services.AuthService, *services.TokenService) {
	tokens := services.NewTokenService("test-secret", time.Hour)
	return services.NewAuthService(data.SeedAllowList(), tokens), tokens
}

func TestLoginAdminFixture(t *testing.T) {
	auth, tokens := newAuthService()

	result, svcErr := auth.Login("admin@test.com", "password")
	assert.Nil(t, svcErr)
	assert.Equal(t, models.RoleAdmin, result.User.Role)
	assert.Equal(t, "admin@test.com", result.User.Email)

	session, err := tokens.Validate(result.Token)
	assert.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, session.User.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	auth, _ := newAuthService()

	_, svcErr := auth.Login("admin@test.com", "wrong")
	assert.NotNil(t, svcErr)
	assert.Equal(t, 401, svcErr.StatusCode)
}

func TestLoginUnknownEmail(t *testing.T) {
	auth, _ := newAuthService()

	_, svcErr := auth.Login("nobody@test.com", "password")
	assert.NotNil(t, svcErr)
	assert.Equal(t, 401, svcErr.StatusCode)
}

func TestLoginFailureIsGeneric(t *testing.T) {
	auth, _ := newAuthService()

	_, wrongPass := auth.Login("admin@test.com", "wrong")
	_, unknown := auth.Login("nobody@test.com", "password")
	assert.Equal(t, wrongPass.Message, unknown.Message)
}

func TestLoginCustomerFixture(t *testing.T) {
	auth, _ := newAuthService()

	result, svcErr := auth.Login("user@test.com", "password")
	assert.Nil(t, svcErr)
	assert.Equal(t, models.RoleCustomer, result.User.Role)
}

func TestRegisterFabricatesCustomer(t *testing.T) {
	auth, tokens := newAuthService()

	result, svcErr := auth.Register("Jane", "jane@example.com", "whatever")
	assert.Nil(t, svcErr)
	assert.Equal(t, models.RoleCustomer, result.User.Role)
	assert.NotEmpty(t, result.User.ID)

	// Registration logs the new identity in immediately.
	_, err := tokens.Validate(result.Token)
	assert.NoError(t, err)

	// No uniqueness check: the same email registers again.
	again, svcErr := auth.Register("Jane", "jane@example.com", "whatever")
	assert.Nil(t, svcErr)
	assert.NotEqual(t, result.Token, again.Token)
}

func TestLogoutRevokesSession(t *testing.T) {
	auth, tokens := newAuthService()

	result, svcErr := auth.Login("user@test.com", "password")
	assert.Nil(t, svcErr)

	session, err := tokens.Validate(result.Token)
	assert.NoError(t, err)

	auth.Logout(session.TokenID)

	_, err = tokens.Validate(result.Token)
	assert.Error(t, err)
}
