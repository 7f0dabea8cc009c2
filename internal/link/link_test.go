package link

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		origin   string
		fullPath string
	}{
		{"query stripped", "https://ex.com/a?x=1", "https://ex.com", "https://ex.com/a"},
		{"fragment stripped", "https://ex.com/a/b#top", "https://ex.com", "https://ex.com/a/b"},
		{"bare host", "https://ex.com", "https://ex.com", "https://ex.com/"},
		{"explicit port kept", "http://ex.com:8080/x", "http://ex.com:8080", "http://ex.com:8080/x"},
		{"default port dropped", "https://ex.com:443/x", "https://ex.com", "https://ex.com/x"},
		{"host lower-cased", "HTTPS://Ex.COM/Path", "https://ex.com", "https://ex.com/Path"},
		{"ipv6", "http://[::1]:3000/p", "http://[::1]:3000", "http://[::1]:3000/p"},
		{"escaped path preserved", "https://ex.com/a%20b", "https://ex.com", "https://ex.com/a%20b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.origin, c.Origin())
			assert.Equal(t, tt.fullPath, c.FullPath())
		})
	}
}

func TestParseInvalid(t *testing.T) {
	for _, raw := range []string{"", "   ", "ex.com/a", "/relative/path", "https://", "::not a url"} {
		t.Run(raw, func(t *testing.T) {
			_, err := Parse(raw)
			assert.Error(t, err)
		})
	}
}

func TestKey(t *testing.T) {
	c, err := Parse("https://ex.com/a?y=2")
	require.NoError(t, err)

	full, err := c.Key(ModeFull)
	require.NoError(t, err)
	assert.Equal(t, "https://ex.com/a", full)

	origin, err := c.Key(ModeOrigin)
	require.NoError(t, err)
	assert.Equal(t, "https://ex.com", origin)

	_, err = c.Key(Mode("bogus"))
	assert.Error(t, err)
}
