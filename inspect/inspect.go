/*
Package inspect renders local suffix tries and factorizations as text and
indexes trie nodes by the strings they spell.

It is meant for debugging and for the command line tool.
*/
package inspect

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/derekparker/trie"
	"github.com/npillmayer/icflsa/factor"
	lstrie "github.com/npillmayer/icflsa/trie"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'icflsa.inspect'
func tracer() tracing.Trace {
	return tracing.Select("icflsa.inspect")
}

// Index maps the string of every ranked trie node to its rankings.
type Index struct {
	keys *trie.Trie
	size int
}

type entry struct {
	path     []byte
	rankings []int
}

// NewIndex indexes the nodes of t holding rankings. Rankings are captured in
// the state t is in; index a merged trie to see merged rankings.
func NewIndex(t *lstrie.Trie) *Index {
	ix := &Index{keys: trie.New()}
	t.Walk(func(v lstrie.NodeView) bool {
		if len(v.Rankings) == 0 {
			return true
		}
		e := &entry{
			path:     append([]byte(nil), v.Path...),
			rankings: append([]int(nil), v.Rankings...),
		}
		ix.keys.Add(encode(v.Path), e)
		ix.size++
		return true
	})
	tracer().Debugf("indexed %d ranked nodes of %v", ix.size, t)
	return ix
}

// Len returns the number of indexed nodes.
func (ix *Index) Len() int {
	return ix.size
}

// Rankings returns the rankings of the node spelling s.
func (ix *Index) Rankings(s []byte) ([]int, bool) {
	n, ok := ix.keys.Find(encode(s))
	if !ok {
		return nil, false
	}
	return n.Meta().(*entry).rankings, true
}

// WithPrefix returns the strings of all indexed nodes starting with prefix,
// in lexicographic order.
func (ix *Index) WithPrefix(prefix []byte) [][]byte {
	keys := ix.keys.PrefixSearch(encode(prefix))
	paths := make([][]byte, 0, len(keys))
	for _, k := range keys {
		paths = append(paths, decode(k))
	}
	sort.Slice(paths, func(i, j int) bool {
		return string(paths[i]) < string(paths[j])
	})
	return paths
}

// The key trie works on runes and reserves rune 0, so bytes are shifted out
// of the control range.
const keyOffset = 0x100

func encode(s []byte) string {
	var b strings.Builder
	b.Grow(2 * len(s))
	for _, c := range s {
		b.WriteRune(rune(c) + keyOffset)
	}
	return b.String()
}

func decode(k string) []byte {
	s := make([]byte, 0, len(k)/2)
	for _, r := range k {
		s = append(s, byte(r-keyOffset))
	}
	return s
}

// Dump writes an indented rendering of t, one node per line.
func Dump(w io.Writer, t *lstrie.Trie) error {
	var err error
	t.Walk(func(v lstrie.NodeView) bool {
		if err != nil {
			return false
		}
		indent := strings.Repeat("  ", v.Level)
		if v.Parent < 0 {
			_, err = fmt.Fprintf(w, "%s(root) %v\n", indent, t)
			return true
		}
		_, err = fmt.Fprintf(w, "%s%q depth=%d rankings=%v window=[%d,%d)\n",
			indent, v.Label, v.Depth, v.Rankings, v.MinFather, v.MaxFather)
		return true
	})
	return err
}

// DumpFactors writes the ICFL factors of seq and their chunks, marking
// custom chunks with '*'.
func DumpFactors(w io.Writer, seq []byte, layout *factor.Layout) error {
	if _, err := fmt.Fprintf(w, "n=%d factors=%d chunks=%d chunk size=%d\n",
		layout.N, len(layout.ICFL), len(layout.Chunks), layout.ChunkSize); err != nil {
		return err
	}
	ci := 0
	for f, start := range layout.ICFL {
		end := layout.FactorEnd(f)
		var chunks []string
		for ; ci < len(layout.Chunks) && layout.Chunks[ci] < end; ci++ {
			c := layout.ChunkBounds(ci)
			s := string(seq[c.Start:c.End])
			if !layout.IsCanonicalChunk(ci) {
				s += "*"
			}
			chunks = append(chunks, s)
		}
		if _, err := fmt.Fprintf(w, "%4d [%d,%d) %s\n", f, start, end, strings.Join(chunks, " ")); err != nil {
			return err
		}
	}
	return nil
}
