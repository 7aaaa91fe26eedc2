package slicex

import "fmt"

// At returns s[i] and true, or the zero value and false when i is out of range.
func At[T any](s []T, i int) (T, bool) {
	if i < 0 || i >= len(s) {
		var zero T
		return zero, false
	}
	return s[i], true
}

// IsNotEmpty reports whether s has at least one element.
func IsNotEmpty[T any](s []T) bool {
	return len(s) > 0
}

// Chunk splits s into consecutive pieces of at most size elements.
// A non-positive size yields the whole slice as a single chunk. Chunks
// share s's backing array.
func Chunk[T any](s []T, size int) [][]T {
	if len(s) == 0 {
		return [][]T{}
	}
	if size <= 0 {
		return [][]T{s}
	}

	chunks := make([][]T, 0, (len(s)+size-1)/size)
	for start := 0; start < len(s); start += size {
		end := min(start+size, len(s))
		chunks = append(chunks, s[start:end:end])
	}
	return chunks
}

// Unique returns the elements of s without duplicates, keeping first occurrences in order.
func Unique[T comparable](s []T) []T {
	return UniqueBy(s, func(v T) T { return v })
}

// UniqueBy is Unique with equality decided by key.
func UniqueBy[T any, K comparable](s []T, key func(T) K) []T {
	seen := make(map[K]struct{}, len(s))
	out := make([]T, 0, len(s))
	for _, v := range s {
		k := key(v)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, v)
	}
	return out
}

// MapKeys returns a copy of m with every key passed through fn.
// It panics if fn maps two keys to the same value, since one entry would
// otherwise be dropped silently.
func MapKeys[K, NK comparable, V any](m map[K]V, fn func(K) NK) map[NK]V {
	out := make(map[NK]V, len(m))
	for k, v := range m {
		nk := fn(k)
		if _, dup := out[nk]; dup {
			panic(fmt.Sprintf("slicex: MapKeys produced duplicate key %v", nk))
		}
		out[nk] = v
	}
	return out
}
