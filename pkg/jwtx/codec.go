package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Kind selects which credential class a token belongs to. The two kinds
// are signed with disjoint secrets so they are never interchangeable.
type Kind int

const (
	KindAccess Kind = iota
	KindRefresh
)

func (k Kind) String() string {
	switch k {
	case KindAccess:
		return "access"
	case KindRefresh:
		return "refresh"
	default:
		return "unknown"
	}
}

var (
	ErrMalformed  = errors.New("jwtx: malformed token")
	ErrInvalidSig = errors.New("jwtx: invalid signature")
	ErrExpired    = errors.New("jwtx: token expired")

	ErrInvalidClaim = errors.New("jwtx: invalid claims")
	ErrUnknownKind  = errors.New("jwtx: unknown token kind")
)

// Codec signs and verifies the two credential classes. It is a pure
// cryptographic transform with no I/O; session state lives elsewhere.
type Codec struct {
	AccessSecret  []byte
	RefreshSecret []byte
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
	Issuer        string
}

// IssueAccess signs a short-lived access credential for the principal.
func (c *Codec) IssueAccess(subject, mobile string) (string, error) {
	return c.sign(subject, mobile, c.AccessTTL, c.AccessSecret)
}

// IssueRefresh signs a refresh credential under the refresh secret and
// the longer refresh expiry policy.
func (c *Codec) IssueRefresh(subject, mobile string) (string, error) {
	return c.sign(subject, mobile, c.RefreshTTL, c.RefreshSecret)
}

func (c *Codec) sign(subject, mobile string, ttl time.Duration, secret []byte) (string, error) {
	claims := NewClaims(subject, mobile, ttl, c.Issuer, time.Now().UTC())

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("jwtx: failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a credential of the given kind, returning
// its claims. A token of the other kind fails with ErrInvalidSig because
// the secrets are disjoint.
func (c *Codec) Verify(tokenString string, kind Kind) (Claims, error) {
	var secret []byte
	switch kind {
	case KindAccess:
		secret = c.AccessSecret
	case KindRefresh:
		secret = c.RefreshSecret
	default:
		return Claims{}, ErrUnknownKind
	}

	var claims Claims
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuedAt(),
	}
	if c.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(c.Issuer))
	}

	_, err := jwt.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return secret, nil
	}, opts...)
	if err != nil {
		return Claims{}, mapParseError(err)
	}

	if claims.Subject == "" {
		return Claims{}, ErrInvalidClaim
	}

	return claims, nil
}

func mapParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrInvalidSig
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ErrMalformed
	default:
		return ErrInvalidClaim
	}
}
