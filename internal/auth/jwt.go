// Package auth validates the bearer tokens issued by the trip membership
// service. A token names the user and the trips that user may see or
// administer; the checklist engine trusts those grants as given.
package auth

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrMissingToken = errors.New("authorization token required")
)

// JWTManager handles JWT token generation and validation.
type JWTManager struct {
	secretKey     []byte
	tokenDuration time.Duration
}

// Identity is who a token speaks for.
type Identity struct {
	UserID string
	Email  string

	// Trips lists the trips the user is a member of.
	Trips []string

	// AdminTrips lists the trips where the user may delete lists.
	AdminTrips []string
}

// Claims represents the custom JWT claims for a user session.
type Claims struct {
	UserID     string   `json:"user_id"`
	Email      string   `json:"email"`
	Trips      []string `json:"trips,omitempty"`
	AdminTrips []string `json:"admin_trips,omitempty"`
	jwt.RegisteredClaims
}

// CanSeeTrip reports whether the token grants membership of tripID.
// Admins are members too.
func (c *Claims) CanSeeTrip(tripID string) bool {
	return slices.Contains(c.Trips, tripID) || c.IsTripAdmin(tripID)
}

// IsTripAdmin reports whether the token grants admin rights on tripID.
func (c *Claims) IsTripAdmin(tripID string) bool {
	return slices.Contains(c.AdminTrips, tripID)
}

// VisibleTrips returns every trip the token grants access to.
func (c *Claims) VisibleTrips() []string {
	out := slices.Clone(c.Trips)
	for _, id := range c.AdminTrips {
		if !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}

// NewJWTManager creates a new JWT manager with the given secret and token duration.
// secretKey should be a strong random string (e.g., 32 bytes).
// tokenDuration is how long tokens remain valid (e.g., 24 hours).
func NewJWTManager(secretKey string, tokenDuration time.Duration) *JWTManager {
	return &JWTManager{
		secretKey:     []byte(secretKey),
		tokenDuration: tokenDuration,
	}
}

// Generate creates a new JWT token for the given identity.
func (m *JWTManager) Generate(id Identity) (string, error) {
	if id.UserID == "" {
		return "", errors.New("user id is required")
	}

	now := time.Now()
	claims := &Claims{
		UserID:     id.UserID,
		Email:      id.Email,
		Trips:      id.Trips,
		AdminTrips: id.AdminTrips,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.UserID,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Validate parses and validates a JWT token, returning the claims if valid.
func (m *JWTManager) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			// Verify the signing method
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return m.secretKey, nil
		},
	)

	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
