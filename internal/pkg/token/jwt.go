// Package token issues and verifies the signed bearer tokens that carry a
// session between the HTTP boundary and the authenticated operations.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"commerce/internal/core/domain/model/identity"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
)

var errSecretIsRequired = errors.New("token: signing secret must not be empty")

// ErrTokenIsInvalid is returned for expired, malformed or forged tokens.
var ErrTokenIsInvalid = errs.NewUnauthenticatedError("token is invalid or expired")

type sessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWT signs and verifies HMAC-SHA256 session tokens. The subject claim holds
// the user identifier and a custom claim carries the role, so a verified token
// is enough to reconstruct the caller's Actor without a database read.
type JWT struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWT creates a signer/verifier with the given secret and token lifetime.
func NewJWT(secret string, ttl time.Duration) (*JWT, error) {
	if secret == "" {
		return nil, errSecretIsRequired
	}
	if ttl <= 0 {
		return nil, errs.NewValueIsRequiredError("token ttl")
	}

	return &JWT{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// Issue mints a signed token for the given user and role.
func (j *JWT) Issue(userID kernel.UUID, role string) (string, error) {
	if err := userID.Validate(); err != nil {
		return "", err
	}

	now := j.now().UTC()
	claims := sessionClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify checks the signature and expiry of a token and reconstructs the
// actor it was issued to. Any failure maps to ErrTokenIsInvalid so callers
// cannot distinguish a forged token from an expired one.
func (j *JWT) Verify(tokenString string) (identity.Actor, error) {
	claims := &sessionClaims{}

	parsed, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) { return j.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return identity.Actor{}, ErrTokenIsInvalid
	}

	userID, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return identity.Actor{}, ErrTokenIsInvalid
	}

	role, err := identity.RoleFromString(claims.Role)
	if err != nil {
		return identity.Actor{}, ErrTokenIsInvalid
	}

	actor, err := identity.NewActor(userID, role)
	if err != nil {
		return identity.Actor{}, ErrTokenIsInvalid
	}

	return actor, nil
}
