package cryptox

import (
	"crypto/sha256"
	"encoding/base64"
)

// FingerprintToken returns a deterministic SHA-256 fingerprint of a
// token, base64url-encoded (43 chars). bcrypt only reads the first 72
// bytes of its input, so long credentials such as signed JWTs must be
// fingerprinted before hashing or comparing.
func FingerprintToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}
