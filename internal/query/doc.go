// Package query is the pure filter/sort pipeline shared by every list view.
// It has no state and no store dependency: callers hand it a slice, a field
// extractor, and criteria, and get back a new, deterministically ordered
// slice.
package query
