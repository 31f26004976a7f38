package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"fieldops/internal/domain/tenant"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// TokenVerifier validates HS256 bearer tokens issued by the identity provider
// and turns their claims into a tenant.Identity.
type TokenVerifier struct {
	secret []byte
	now    func() time.Time
}

func NewTokenVerifier(secret string) *TokenVerifier {
	return &TokenVerifier{secret: []byte(secret), now: time.Now}
}

// Verify accepts the raw token or an Authorization header value.
func (v *TokenVerifier) Verify(tokenString string) (tenant.Identity, error) {
	tokenString = strings.TrimSpace(strings.TrimPrefix(tokenString, "Bearer "))
	if tokenString == "" {
		return tenant.Identity{}, ErrInvalidToken
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	}, jwt.WithTimeFunc(v.now), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return tenant.Identity{}, ErrExpiredToken
		}
		return tenant.Identity{}, ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return tenant.Identity{}, ErrInvalidToken
	}

	id := tenant.Identity{
		UserID:   stringClaim(claims, "user_id"),
		TenantID: stringClaim(claims, "tenant_id"),
		Role:     tenant.Role(stringClaim(claims, "role")),
		Email:    stringClaim(claims, "email"),
		Name:     stringClaim(claims, "name"),
	}
	if err := id.Validate(); err != nil {
		return tenant.Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return id, nil
}

func stringClaim(claims jwt.MapClaims, key string) string {
	s, _ := claims[key].(string)
	return s
}

// Sign issues a token for id. The service only verifies tokens; Sign exists
// for local tooling and tests.
func Sign(secret string, id tenant.Identity, ttl time.Duration, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"user_id":   id.UserID,
		"tenant_id": id.TenantID,
		"role":      string(id.Role),
		"email":     id.Email,
		"name":      id.Name,
		"iat":       now.Unix(),
		"exp":       now.Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
