// Package slicex has generic helpers for slices and maps that the
// standard slices and maps packages leave out.
package slicex
