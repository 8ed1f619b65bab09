package dsu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFind_CompressesPath builds a chain by hand and checks every node
// on it points at the root after one Find.
func TestFind_CompressesPath(t *testing.T) {
	d, err := NewSingletons(5)
	require.NoError(t, err)
	// 4 -> 3 -> 2 -> 1 -> 0
	for i := 1; i < 5; i++ {
		d.nodes[i].parent = i - 1
	}
	d.nodes[0].size = 5
	d.count = 1

	root, err := d.Find(4)
	require.NoError(t, err)
	assert.Equal(t, 0, root)
	for i := 0; i < 5; i++ {
		assert.Equal(t, 0, d.nodes[i].parent, "node %d", i)
	}
}
