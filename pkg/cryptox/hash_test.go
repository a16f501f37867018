package cryptox_test

import (
	"testing"

	"github.com/lanternchat/lantern/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	t.Parallel()

	hash, err := cryptox.Hash("secret1")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	require.NotEqual(t, "secret1", hash)

	require.True(t, cryptox.Compare("secret1", hash))
	require.False(t, cryptox.Compare("secret2", hash))
	require.False(t, cryptox.Compare("", hash))
}

func TestHashIsSalted(t *testing.T) {
	t.Parallel()

	a, err := cryptox.Hash("same-input")
	require.NoError(t, err)
	b, err := cryptox.Hash("same-input")
	require.NoError(t, err)

	require.NotEqual(t, a, b)
	require.True(t, cryptox.Compare("same-input", a))
	require.True(t, cryptox.Compare("same-input", b))
}

func TestCompareRejectsGarbageHash(t *testing.T) {
	t.Parallel()

	require.False(t, cryptox.Compare("anything", "not-a-bcrypt-hash"))
}
