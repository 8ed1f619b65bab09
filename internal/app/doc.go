// Package app wires the ewmst pieces together: it loads a run config,
// generates the graph, computes its minimum spanning forest, cross-checks the
// component count, records metrics, and logs one summary per run.
package app
