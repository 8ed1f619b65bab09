// Package dsu provides a fixed-size disjoint-set (union-find) structure
// over the integers 0..n-1.
//
// The structure is a flat arena of {parent, size} records addressed by
// index; there are no node pointers. A slot is unusable until MakeSet has
// been called for it.
//
//   - Find walks iteratively to the true root and compresses the path.
//   - Union attaches the smaller tree under the larger one and adds the
//     absorbed size to the new root.
//
// Both run in amortized O(α(n)).
//
// A DisjointSet records the merge history of one computation. Allocate a
// new one per computation; do not share or cache it.
package dsu
