// Package cmpx extends the standard cmp package.
package cmpx

import (
	"cmp"
	"fmt"
)

// Clamp limits v to the closed range [lo, hi]. It panics if lo > hi.
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	if cmp.Compare(lo, hi) > 0 {
		panic(fmt.Sprintf("cmpx: Clamp with lo %v greater than hi %v", lo, hi))
	}
	return min(max(v, lo), hi)
}
