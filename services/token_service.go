package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/hikegear/storefront/models"
)

// Session is an authenticated identity bound to a revocable token.
type Session struct {
	User    models.User
	TokenID string
}

// TokenService issues HS256 JWTs and tracks live sessions in memory. A
// session exists only while the process runs and until it is revoked, which
// mirrors the tab-lifetime login of the storefront.
type TokenService struct {
	secret []byte
	ttl    time.Duration

	mu       sync.RWMutex
	sessions map[string]models.User // keyed by token ID (jti)
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{
		secret:   []byte(secret),
		ttl:      ttl,
		sessions: make(map[string]models.User),
	}
}

// Issue generates a signed token for the user and registers its session.
func (s *TokenService) Issue(user models.User) (string, error) {
	tokenID := uuid.NewString()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"name":  user.Name,
		"role":  user.Role,
		"jti":   tokenID,
		"exp":   time.Now().Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.sessions[tokenID] = user
	s.mu.Unlock()

	return signed, nil
}

// Validate parses the token and returns its session. Tokens whose session
// has been revoked are rejected even when the signature is still valid.
func (s *TokenService) Validate(tokenStr string) (*Session, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}
	tokenID, ok := claims["jti"].(string)
	if !ok {
		return nil, fmt.Errorf("invalid token: missing jti")
	}

	s.mu.RLock()
	user, live := s.sessions[tokenID]
	s.mu.RUnlock()
	if !live {
		return nil, fmt.Errorf("session revoked")
	}

	return &Session{User: user, TokenID: tokenID}, nil
}

// Revoke destroys the session behind a token ID.
func (s *TokenService) Revoke(tokenID string) {
	s.mu.Lock()
	delete(s.sessions, tokenID)
	s.mu.Unlock()
}
