/*
Package trie implements a compressed trie over the local suffixes of a
sequence, and derives the suffix array from it.

A local suffix of position p is seq[p:e], where e is the end of the chunk
containing p (see package factor). The trie is built by inserting local
suffixes in order of increasing length. Each node spells a distinct string
and keeps the rankings of the positions whose local suffix equals it, in
global suffix order. Nodes live in an arena and are addressed by index; edge
labels are index ranges into the sequence.

After building, Merge pushes the rankings of a node which extend into a
child's edge label down into that child, interleaving them with the child's
own rankings. The order of two positions is decided by Rules, which uses the
factorization whenever the outcome is provable and compares suffix content
otherwise. SuffixArray finally reads the positions off the merged trie.
*/
package trie

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'icflsa.trie'
func tracer() tracing.Trace {
	return tracing.Select("icflsa.trie")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
