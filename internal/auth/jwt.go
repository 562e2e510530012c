package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"daily-planner-api/internal/models"
)

// Defaults used when the configuration leaves a value empty.
const (
	DefaultSecret   = "development-insecure-secret-change-me"
	DefaultIssuer   = "daily-planner-api"
	DefaultAudience = "daily-planner-clients"
	DefaultTTL      = 24 * time.Hour
)

var (
	ErrInvalidToken    = errors.New("invalid token")
	ErrInvalidIssuer   = errors.New("invalid token issuer")
	ErrInvalidAudience = errors.New("invalid token audience")
)

// Claims represents the JWT claims. The token only proves which identity a front-end
// logged in as; it is not a security boundary.
type Claims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Signer issues and validates session tokens.
type Signer struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
	now      func() time.Time
}

// NewSigner builds a Signer; empty values fall back to the defaults.
func NewSigner(secret, issuer, audience string, ttl time.Duration) *Signer {
	if secret == "" {
		secret = DefaultSecret
	}
	if issuer == "" {
		issuer = DefaultIssuer
	}
	if audience == "" {
		audience = DefaultAudience
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Signer{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
		ttl:      ttl,
		now:      time.Now,
	}
}

// GenerateToken generates a JWT token for the given identity.
func (s *Signer) GenerateToken(id models.Identity) (string, error) {
	now := s.now()
	claims := Claims{
		Name:  id.Name,
		Email: id.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.Email,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken validates a JWT token and returns the claims.
func (s *Signer) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Email == "" {
		return nil, ErrInvalidToken
	}
	if claims.Issuer != s.issuer {
		return nil, ErrInvalidIssuer
	}
	// Manually check audience for compatibility with jwt v5 types
	for _, aud := range claims.Audience {
		if aud == s.audience {
			return claims, nil
		}
	}
	return nil, ErrInvalidAudience
}

// Identity returns the identity the claims were issued for.
func (c *Claims) Identity() models.Identity {
	return models.Identity{Name: c.Name, Email: c.Email}
}
