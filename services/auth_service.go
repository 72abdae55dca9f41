package services

import (
	"strconv"
	"time"

	apperrors "github.com/hikegear/storefront/common/errors"
	"github.com/hikegear/storefront/models"
)

// CredentialVerifier checks a credential pair against whatever identity
// source backs the deployment. The demo storefront plugs in the seeded
// allow-list fixture.
type CredentialVerifier interface {
	Verify(email, password string) (*models.User, bool)
}

type AuthService struct {
	verifier CredentialVerifier
	tokens   *TokenService
}

func NewAuthService(verifier CredentialVerifier, tokens *TokenService) *AuthService {
	return &AuthService{verifier: verifier, tokens: tokens}
}

// LoginResult bundles the issued token with the authenticated identity.
type LoginResult struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Login verifies credentials and opens a session. Failure is a single
// generic error; callers cannot distinguish unknown email from wrong
// password.
func (s *AuthService) Login(email, password string) (*LoginResult, *ServiceError) {
	user, ok := s.verifier.Verify(email, password)
	if !ok {
		return nil, fromAppError(apperrors.ErrInvalidCredentials)
	}

	token, err := s.tokens.Issue(*user)
	if err != nil {
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to create session"}
	}

	return &LoginResult{Token: token, User: *user}, nil
}

// Register fabricates a new customer identity and logs it in immediately.
// There is no uniqueness check and the password is not retained; this
// mirrors the demo registration flow, not a real account system.
func (s *AuthService) Register(name, email, _ string) (*LoginResult, *ServiceError) {
	user := models.User{
		ID:    strconv.FormatInt(time.Now().UnixMilli(), 10),
		Name:  name,
		Email: email,
		Role:  models.RoleCustomer,
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to create session"}
	}

	return &LoginResult{Token: token, User: user}, nil
}

// Logout destroys the session behind the token.
func (s *AuthService) Logout(tokenID string) {
	s.tokens.Revoke(tokenID)
}
