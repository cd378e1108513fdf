/*
Package factor computes word factorizations of a byte sequence.

It provides the Lyndon factorization (Duval's algorithm), the inverse
canonical Lyndon factorization ICFL, and a chunk layout which subdivides
ICFL factors into fixed-size windows.

ICFL splits a word w into inverse Lyndon words m1 ⋯ mk with

	m1 ≪ m2 ≪ … ≪ mk

where x ≪ y holds if x and y differ at an index inside both words and x
carries the smaller symbol there. Consequently suffixes of w starting at
factor boundaries are sorted by factor index, with the empty suffix first.

Further Reading

	P. Bonizzoni, C. De Felice, R. Zaccagnino, R. Zizza:
	Inverse Lyndon words and inverse Lyndon factorizations of words.
	Advances in Applied Mathematics 101 (2018).
*/
package factor

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'icflsa.factor'
func tracer() tracing.Trace {
	return tracing.Select("icflsa.factor")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
