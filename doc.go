/*
Package icflsa computes suffix arrays of byte sequences based on the inverse
canonical Lyndon factorization (ICFL).

A sequence is split into ICFL factors, which are optionally cut into chunks
of a fixed size. The local suffixes of all positions, i.e. the suffixes cut
at the end of their chunk, are inserted into a compressed trie, and their
rankings are merged down the trie using ordering rules derived from the
factorization. The suffix array is finally read off the trie.

Without chunking no suffix comparisons are necessary while building the
trie. Chunking bounds the length of local suffixes at the price of
comparisons for positions of custom chunks; package monitor counts them.

File formats are outside the base package. Use adapters like package fasta
to read sequences and feed this API.

Further Reading

	P. Bonizzoni, C. De Felice, R. Zaccagnino, R. Zizza:
	Lyndon words versus inverse Lyndon words: Queries on suffixes and
	bordered words. LATA 2020.

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package icflsa

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'icflsa'
func tracer() tracing.Trace {
	return tracing.Select("icflsa")
}
