package domain

import "time"

// TokenPair is what a successful issuance or rotation returns: the
// short-lived access credential and the longer-lived refresh credential.
// It is transient and never persisted.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type,omitempty"` // typically "Bearer"
	ExpiresIn    int64  `json:"expires_in"`           // seconds until access expiry
}

// SessionRecord is the one persisted fact per principal: which refresh
// credential hash is currently valid, and until when. The hash is
// bcrypt of the opaque credential, never the credential itself.
type SessionRecord struct {
	PrincipalID string
	RefreshHash string
	IssuedAt    time.Time
	TTLSeconds  int64
}

// ExpiresAt derives the record's expiry from its issue time and TTL.
func (r SessionRecord) ExpiresAt() time.Time {
	return r.IssuedAt.Add(time.Duration(r.TTLSeconds) * time.Second)
}
