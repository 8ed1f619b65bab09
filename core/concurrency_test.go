// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ewmst/core"
)

// TestConcurrentAddEdge ensures concurrent inserts are all recorded.
func TestConcurrentAddEdge(t *testing.T) {
	const num = 200
	g, err := core.NewGraph(num + 1)
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, num)
	wg.Add(num)
	for i := 1; i <= num; i++ {
		go func(id int) {
			defer wg.Done()
			if _, aerr := g.AddEdge(0, id, float64(id)); aerr != nil {
				errs <- aerr
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for aerr := range errs {
		t.Errorf("AddEdge: %v", aerr)
	}

	assert.Equal(t, num, g.EdgeCount())
	d, err := g.Degree(0)
	require.NoError(t, err)
	assert.Equal(t, num, d)
	assert.Len(t, g.AllEdges(), num)
}

// TestConcurrentReaders checks that readers of a finished graph agree.
func TestConcurrentReaders(t *testing.T) {
	g := buildTiny(t)
	want := render(g.AllEdges())

	const readers = 50
	var wg sync.WaitGroup
	got := make([][]string, readers)
	wg.Add(readers)
	for i := 0; i < readers; i++ {
		go func(slot int) {
			defer wg.Done()
			got[slot] = render(g.Clone().AllEdges())
		}(i)
	}
	wg.Wait()

	for i := range got {
		assert.Equal(t, want, got[i], "reader %d", i)
	}
}
