package session_test

import (
	"testing"

	"github.com/lanternchat/lantern/internal/auth/session"
	"github.com/stretchr/testify/require"
)

func TestParseExpiry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want int64
	}{
		{"30s", 30},
		{"15m", 900},
		{"1h", 3600},
		{"7d", 604800},
		{"30d", 2592000},
		{"1s", 1},

		// Fallback to one week on anything outside the grammar.
		{"garbage", 604800},
		{"", 604800},
		{"15", 604800},
		{"m15", 604800},
		{"15w", 604800},
		{"-15m", 604800},
		{"1.5h", 604800},
		{"15m ", 604800},
		{"99999999999999999999s", 604800},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, session.ParseExpiry(tt.in))
		})
	}
}
