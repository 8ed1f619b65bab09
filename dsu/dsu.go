package dsu

import (
	"errors"
	"fmt"
)

// Sentinel errors for disjoint-set operations.
var (
	// ErrInvalidSize indicates a negative arena size.
	ErrInvalidSize = errors.New("dsu: size must be nonnegative")

	// ErrOutOfRange indicates an index outside [0, n).
	ErrOutOfRange = errors.New("dsu: index out of range")

	// ErrNotMade indicates Find/Union on a slot without a prior MakeSet.
	ErrNotMade = errors.New("dsu: set not made")

	// ErrAlreadyMade indicates a second MakeSet for the same slot.
	ErrAlreadyMade = errors.New("dsu: set already made")
)

// unmade marks a slot whose MakeSet has not run yet.
const unmade = -1

// node is one arena record. parent == own index at a root.
type node struct {
	parent int // index of the parent record; self at a root, unmade before MakeSet
	size   int // at a root: number of elements in its tree
}

// DisjointSet is a union-find arena over 0..n-1.
type DisjointSet struct {
	nodes []node
	count int // number of disjoint sets among made slots
}

// New allocates a DisjointSet of n unmade slots.
// Returns ErrInvalidSize if n < 0.
// Complexity: O(n).
func New(n int) (*DisjointSet, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, n)
	}
	d := &DisjointSet{nodes: make([]node, n)}
	for i := range d.nodes {
		d.nodes[i] = node{parent: unmade}
	}

	return d, nil
}

// NewSingletons allocates a DisjointSet of n slots, each already made
// as a singleton set.
func NewSingletons(n int) (*DisjointSet, error) {
	d, err := New(n)
	if err != nil {
		return nil, err
	}
	for i := range d.nodes {
		d.nodes[i] = node{parent: i, size: 1}
	}
	d.count = n

	return d, nil
}

// Len returns the arena size n.
func (d *DisjointSet) Len() int { return len(d.nodes) }

// Count returns the number of disjoint sets among made slots.
func (d *DisjointSet) Count() int { return d.count }

// MakeSet turns slot v into the singleton set {v}.
//
// Errors:
//   - ErrOutOfRange if v is outside [0, n).
//   - ErrAlreadyMade if MakeSet(v) already ran.
func (d *DisjointSet) MakeSet(v int) error {
	if err := d.check(v); err != nil {
		return err
	}
	if d.nodes[v].parent != unmade {
		return fmt.Errorf("%w: %d", ErrAlreadyMade, v)
	}
	d.nodes[v] = node{parent: v, size: 1}
	d.count++

	return nil
}

// Find returns the root of the set containing v.
//
// The walk is iterative and always ends at the self-referencing root,
// however long the chain of earlier unions. A second pass points every
// node on the walked path directly at the root.
//
// Errors:
//   - ErrOutOfRange if v is outside [0, n).
//   - ErrNotMade if MakeSet(v) has not run.
func (d *DisjointSet) Find(v int) (int, error) {
	if err := d.made(v); err != nil {
		return 0, err
	}

	// 1) Locate the root.
	root := v
	for d.nodes[root].parent != root {
		root = d.nodes[root].parent
	}

	// 2) Compress: re-parent every node on the path to root.
	for v != root {
		next := d.nodes[v].parent
		d.nodes[v].parent = root
		v = next
	}

	return root, nil
}

// Union merges the sets containing a and b.
//
// If both already share a root it does nothing and returns false; callers
// use this to detect cycles. Otherwise the root of the smaller set is
// attached under the root of the larger one (on equal sizes the root of a
// stays root), the new root's size grows by the absorbed size, and Union
// returns true.
func (d *DisjointSet) Union(a, b int) (bool, error) {
	ra, err := d.Find(a)
	if err != nil {
		return false, err
	}
	rb, err := d.Find(b)
	if err != nil {
		return false, err
	}
	if ra == rb {
		return false, nil
	}

	// Keep ra as the larger root.
	if d.nodes[ra].size < d.nodes[rb].size {
		ra, rb = rb, ra
	}
	d.nodes[rb].parent = ra
	d.nodes[ra].size += d.nodes[rb].size
	d.count--

	return true, nil
}

// Connected reports whether a and b are in the same set.
func (d *DisjointSet) Connected(a, b int) (bool, error) {
	ra, err := d.Find(a)
	if err != nil {
		return false, err
	}
	rb, err := d.Find(b)
	if err != nil {
		return false, err
	}

	return ra == rb, nil
}

// SizeOf returns the number of elements in the set containing v.
func (d *DisjointSet) SizeOf(v int) (int, error) {
	r, err := d.Find(v)
	if err != nil {
		return 0, err
	}

	return d.nodes[r].size, nil
}

// check validates the index range.
func (d *DisjointSet) check(v int) error {
	if v < 0 || v >= len(d.nodes) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrOutOfRange, v, len(d.nodes))
	}

	return nil
}

// made validates the index range and that MakeSet(v) ran.
func (d *DisjointSet) made(v int) error {
	if err := d.check(v); err != nil {
		return err
	}
	if d.nodes[v].parent == unmade {
		return fmt.Errorf("%w: %d", ErrNotMade, v)
	}

	return nil
}
