// Package spatial provides the 2D point index used to prefilter
// compatibility candidates.
//
// It wraps an R-tree with point entries keyed by LocalID and tracks the
// largest per-observation variance seen, which the index above uses to build
// a conservative query radius. Entries are never removed.
package spatial
