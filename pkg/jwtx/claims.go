package jwtx

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lanternchat/lantern/pkg/idx"
)

// Default credential TTLs. Access tokens stay short-lived; refresh
// tokens carry the session lifetime.
const (
	DefaultAccessTokenTTL  = 15 * time.Minute
	DefaultRefreshTokenTTL = 7 * 24 * time.Hour
)

// Claims is the signed payload embedded in both credential kinds. Access
// and refresh credentials share this shape but never share a secret.
// The struct is versioned by its field set: verification rejects tokens
// carrying claims we do not know about.
type Claims struct {
	jwt.RegisteredClaims

	// Mobile is the principal's phone number, carried as a display
	// attribute for downstream services.
	Mobile string `json:"mobile,omitempty"`
}

// NewClaims builds minimally-correct claims for a principal. Each call
// mints a unique jti, so two tokens issued within the same second still
// differ on the wire.
func NewClaims(subject, mobile string, ttl time.Duration, issuer string, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        idx.New().String(),
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Mobile: mobile,
	}
}

// UnmarshalJSON decodes claims strictly: unknown fields fail
// verification instead of being silently dropped.
func (c *Claims) UnmarshalJSON(data []byte) error {
	type plain Claims

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var p plain
	if err := dec.Decode(&p); err != nil {
		return err
	}

	*c = Claims(p)
	return nil
}
