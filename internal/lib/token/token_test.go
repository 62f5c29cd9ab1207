package token

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tok, err := New()
	require.NoError(t, err)

	// 24 байта = 48 hex-символов
	assert.Len(t, tok, 48)

	_, err = hex.DecodeString(tok)
	require.NoError(t, err)
}

func TestNew_Unique(t *testing.T) {
	seen := make(map[string]struct{})
	for range 100 {
		tok, err := New()
		require.NoError(t, err)

		_, dup := seen[tok]
		assert.False(t, dup, "token %s issued twice", tok)
		seen[tok] = struct{}{}
	}
}
