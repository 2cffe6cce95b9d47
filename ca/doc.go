// Package ca runs a masked cellular-automata cave carve over a single
// cell's region: an initial random fill constrained by the cell's
// ownership mask and a carved-open path at each traversal connector,
// followed by birth/survival smoothing passes.
//
// A Run is a pure function of its CellTask and Config: the same inputs
// always produce the same Tiles grid, independent of which goroutine
// calls it or how many other cells are running concurrently, since all
// randomness comes from the task's own CASeed.
package ca
