package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRandomID(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id, err := GenerateRandomID()
		require.NoError(t, err)
		assert.Len(t, id, 32)
		assert.False(t, seen[id], "duplicate ID generated")
		seen[id] = true
	}
}
