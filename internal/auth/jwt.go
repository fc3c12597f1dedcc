package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/agrimarket/negotiation-api/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrInvalidRole  = errors.New("token carries no marketplace role")
)

// PartyClaims are the claims of a marketplace party token
type PartyClaims struct {
	Role string `json:"role"`
	Name string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// TokenValidator validates HS256 party tokens
type TokenValidator struct {
	secret []byte
	issuer string
}

// NewTokenValidator creates a validator for tokens signed with secret
func NewTokenValidator(secret, issuer string) *TokenValidator {
	return &TokenValidator{secret: []byte(secret), issuer: issuer}
}

// ValidateToken parses the token and resolves the party it identifies
func (v *TokenValidator) ValidateToken(tokenString string) (*PartyContext, error) {
	if len(v.secret) == 0 {
		return nil, fmt.Errorf("%w: token validation is not configured", ErrInvalidToken)
	}

	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	claims := &PartyClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	role := domain.PartyRole(claims.Role)
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}

	return &PartyContext{
		PartyID:     claims.Subject,
		Role:        role,
		DisplayName: claims.Name,
		Method:      MethodJWT,
	}, nil
}

// IssueToken signs a party token. Used by tooling and tests; production
// tokens come from the identity provider.
func IssueToken(secret, issuer string, party *PartyContext, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := PartyClaims{
		Role: string(party.Role),
		Name: party.DisplayName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   party.PartyID,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
