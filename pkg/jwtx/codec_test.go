package jwtx_test

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lanternchat/lantern/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func testCodec() *jwtx.Codec {
	return &jwtx.Codec{
		AccessSecret:  []byte("access-secret-for-tests"),
		RefreshSecret: []byte("refresh-secret-for-tests"),
		AccessTTL:     15 * time.Minute,
		RefreshTTL:    7 * 24 * time.Hour,
		Issuer:        "lantern-auth",
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()
	c := testCodec()

	t.Run("access", func(t *testing.T) {
		token, err := c.IssueAccess("01HZX3V9K0TEST0000000000AA", "+15551234567")
		require.NoError(t, err)

		claims, err := c.Verify(token, jwtx.KindAccess)
		require.NoError(t, err)
		require.Equal(t, "01HZX3V9K0TEST0000000000AA", claims.Subject)
		require.Equal(t, "+15551234567", claims.Mobile)
		require.Equal(t, "lantern-auth", claims.Issuer)
		require.WithinDuration(t,
			time.Now().Add(c.AccessTTL), claims.ExpiresAt.Time, 5*time.Second)
	})

	t.Run("refresh", func(t *testing.T) {
		token, err := c.IssueRefresh("01HZX3V9K0TEST0000000000AA", "+15551234567")
		require.NoError(t, err)

		claims, err := c.Verify(token, jwtx.KindRefresh)
		require.NoError(t, err)
		require.Equal(t, "01HZX3V9K0TEST0000000000AA", claims.Subject)
		require.WithinDuration(t,
			time.Now().Add(c.RefreshTTL), claims.ExpiresAt.Time, 5*time.Second)
	})
}

func TestKindsAreNotInterchangeable(t *testing.T) {
	t.Parallel()
	c := testCodec()

	access, err := c.IssueAccess("sub", "+15551234567")
	require.NoError(t, err)
	refresh, err := c.IssueRefresh("sub", "+15551234567")
	require.NoError(t, err)

	_, err = c.Verify(access, jwtx.KindRefresh)
	require.ErrorIs(t, err, jwtx.ErrInvalidSig)

	_, err = c.Verify(refresh, jwtx.KindAccess)
	require.ErrorIs(t, err, jwtx.ErrInvalidSig)
}

func TestVerifyExpired(t *testing.T) {
	t.Parallel()

	c := testCodec()
	c.AccessTTL = -time.Minute // already past expiry when issued

	token, err := c.IssueAccess("sub", "")
	require.NoError(t, err)

	_, err = c.Verify(token, jwtx.KindAccess)
	require.ErrorIs(t, err, jwtx.ErrExpired)
}

func TestVerifyMalformed(t *testing.T) {
	t.Parallel()
	c := testCodec()

	for _, tok := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		_, err := c.Verify(tok, jwtx.KindAccess)
		require.ErrorIs(t, err, jwtx.ErrMalformed, "token %q", tok)
	}
}

func TestVerifyTamperedSignature(t *testing.T) {
	t.Parallel()
	c := testCodec()

	token, err := c.IssueAccess("sub", "")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "." + "AAAA" + parts[2][4:]

	_, err = c.Verify(tampered, jwtx.KindAccess)
	require.ErrorIs(t, err, jwtx.ErrInvalidSig)
}

func TestVerifyRejectsUnknownClaims(t *testing.T) {
	t.Parallel()
	c := testCodec()

	// Sign a payload carrying a claim the codec does not know about.
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss":     "lantern-auth",
		"sub":     "sub",
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(time.Hour).Unix(),
		"smuggle": "extra",
	})
	signed, err := token.SignedString(c.AccessSecret)
	require.NoError(t, err)

	_, err = c.Verify(signed, jwtx.KindAccess)
	require.Error(t, err)
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	t.Parallel()

	other := testCodec()
	other.Issuer = "someone-else"

	token, err := other.IssueAccess("sub", "")
	require.NoError(t, err)

	_, err = testCodec().Verify(token, jwtx.KindAccess)
	require.ErrorIs(t, err, jwtx.ErrInvalidClaim)
}

func TestVerifyUnknownKind(t *testing.T) {
	t.Parallel()
	c := testCodec()

	token, err := c.IssueAccess("sub", "")
	require.NoError(t, err)

	_, err = c.Verify(token, jwtx.Kind(42))
	require.ErrorIs(t, err, jwtx.ErrUnknownKind)
}
