package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFingerprintToken(t *testing.T) {
	fp1a := FingerprintToken("credential-1")
	fp1b := FingerprintToken("credential-1")
	fp2 := FingerprintToken("credential-2")

	require.Equal(t, fp1a, fp1b)
	require.NotEqual(t, fp1a, fp2)
	require.Len(t, fp1a, 43)
}

func TestFingerprintFitsBcrypt(t *testing.T) {
	// Signed JWTs exceed bcrypt's 72-byte input limit; the fingerprint
	// must not.
	long := strings.Repeat("x", 1024)

	hash, err := Hash(FingerprintToken(long))
	require.NoError(t, err)
	require.True(t, Compare(FingerprintToken(long), hash))
}
