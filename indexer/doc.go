// Package indexer converts flat cell indices between the two orderings a
// binned parameter function has to reconcile.
//
// Conventions for per-dimension cell indices (i, j, k) and counts (nx, ny, nz):
//
//	grid  (binned dataset, last dimension fastest):  i*(ny*nz) + j*nz + k
//	table (parameter storage, first dimension fastest): i + j*nx + k*(nx*ny)
//
// The reversal is a compatibility contract with the storage order of the
// collaborators; it is fixed, not derived. For one dimension both orders are
// the identity. Unused trailing dimensions count as 1.
//
// Counts is a small value type computed once from the grid and passed around
// by value; it carries the pairwise products so conversions are a handful of
// integer operations with no allocation.
package indexer
