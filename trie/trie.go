package trie

import (
	"fmt"
	"math"
	"slices"
	"sort"

	"github.com/npillmayer/icflsa/factor"
	"github.com/npillmayer/icflsa/monitor"
	"github.com/pkg/errors"
)

// ErrInvariantViolation signals that a local suffix turned out to be a strict
// prefix of an existing edge label. Insertion in order of increasing length
// makes this unreachable; it indicates a programming error.
var ErrInvariantViolation = errors.New("local suffix trie invariant violated")

// ErrSequenceTooLong is returned for sequences longer than MaxLen.
var ErrSequenceTooLong = errors.New("sequence too long")

// MaxLen is the length limit for sequences. Edge labels and node indices are
// stored as int32.
const MaxLen = math.MaxInt32

// CheckLength returns ErrSequenceTooLong if a sequence of length n exceeds
// MaxLen.
func CheckLength(n int) error {
	if n > MaxLen {
		return errors.Wrapf(ErrSequenceTooLong, "length %d exceeds limit %d", n, MaxLen)
	}
	return nil
}

const root = 0 // arena index of the root node

// node is an arena entry. The string spelled by a node is
// seq[label+length-depth : label+length].
type node struct {
	label     int32   // start of the edge label in the sequence
	length    int32   // length of the edge label
	depth     int32   // length of the string spelled by the node
	children  []int32 // sorted by first symbol of their edge label
	rankings  []int   // positions, in global suffix order
	minFather int     // window into the parent's rankings, set by Merge
	maxFather int
}

// Trie is a compressed trie over the local suffixes of a sequence.
type Trie struct {
	seq    []byte
	layout *factor.Layout
	rules  *Rules
	nodes  []node
	merged bool
}

// Build inserts all local suffixes of seq, as cut by layout. For each length
// L = 1, 2, … the local suffixes of length L are inserted: those of canonical
// chunks first, in global order of their continuations, then those of custom
// chunks. Canonical rankings are appended without any comparison; custom
// rankings are placed by binary search using Rules.
func Build(seq []byte, layout *factor.Layout, mon *monitor.Monitor) (*Trie, error) {
	if err := CheckLength(len(seq)); err != nil {
		return nil, err
	}
	t := &Trie{
		seq:    seq,
		layout: layout,
		rules:  NewRules(seq, layout, mon),
		nodes:  make([]node, 1, len(seq)+1),
	}
	canonical, custom := chunkOrder(layout)
	maxLen := layout.MaxChunkLen()
	for L := 1; L <= maxLen; L++ {
		canonical = longEnough(layout, canonical, L)
		for _, i := range canonical {
			end := layout.ChunkBounds(i).End
			if err := t.insert(end-L, L, false); err != nil {
				return nil, err
			}
		}
		custom = longEnough(layout, custom, L)
		for _, i := range custom {
			end := layout.ChunkBounds(i).End
			if err := t.insert(end-L, L, true); err != nil {
				return nil, err
			}
		}
	}
	tracer().Infof("built local suffix trie with %d nodes for %d positions", len(t.nodes), len(seq))
	return t, nil
}

// chunkOrder returns the canonical and the custom chunk indices. Canonical
// chunks end at a factor boundary; they are ordered by the rank of that
// boundary, i.e. the chunk ending at n first, then by ascending factor.
func chunkOrder(layout *factor.Layout) (canonical, custom []int) {
	for i := range layout.Chunks {
		if layout.IsCanonicalChunk(i) {
			canonical = append(canonical, i)
		} else {
			custom = append(custom, i)
		}
	}
	if k := len(canonical); k > 1 {
		last := canonical[k-1]
		copy(canonical[1:], canonical[:k-1])
		canonical[0] = last
	}
	return canonical, custom
}

// longEnough drops chunks shorter than L, keeping the order of the others.
func longEnough(layout *factor.Layout, chunks []int, L int) []int {
	kept := chunks[:0]
	for _, i := range chunks {
		if layout.ChunkBounds(i).Len() >= L {
			kept = append(kept, i)
		}
	}
	return kept
}

// insert adds position p with local suffix seq[p:p+length].
func (t *Trie) insert(p, length int, custom bool) error {
	cur := int32(root)
	off := 0
	for off < length {
		k, found := t.findChild(cur, t.seq[p+off])
		if !found {
			leaf := t.newNode(p+off, length-off, length)
			t.nodes[cur].children = slices.Insert(t.nodes[cur].children, k, leaf)
			t.addRanking(leaf, p, length, custom)
			return nil
		}
		child := t.nodes[cur].children[k]
		lbl, lblLen := int(t.nodes[child].label), int(t.nodes[child].length)
		m := commonPrefix(t.seq[lbl:lbl+lblLen], t.seq[p+off:p+length])
		switch {
		case m == lblLen:
			cur = child
			off += m
		case m == length-off:
			tracer().Errorf("local suffix at %d of length %d ends inside edge label of node %d", p, length, child)
			return errors.Wrapf(ErrInvariantViolation,
				"local suffix seq[%d:%d] is a strict prefix of edge label seq[%d:%d] of node %d at depth %d",
				p, p+length, lbl, lbl+lblLen, child, t.nodes[child].depth)
		default:
			mid := t.split(cur, k, m)
			leaf := t.newNode(p+off+m, length-off-m, length)
			if t.seq[p+off+m] < t.seq[t.nodes[child].label] {
				t.nodes[mid].children = []int32{leaf, child}
			} else {
				t.nodes[mid].children = []int32{child, leaf}
			}
			t.addRanking(leaf, p, length, custom)
			return nil
		}
	}
	t.addRanking(cur, p, length, custom)
	return nil
}

// split cuts the edge to the k-th child of parent after m symbols and
// returns the new intermediate node, which replaces the child in parent.
// The caller is responsible for the children of the new node.
func (t *Trie) split(parent int32, k int, m int) int32 {
	child := t.nodes[parent].children[k]
	c := &t.nodes[child]
	lbl := int(c.label)
	c.label += int32(m)
	c.length -= int32(m)
	mid := t.newNode(lbl, m, int(t.nodes[parent].depth)+m)
	t.nodes[parent].children[k] = mid
	tracer().Debugf("split edge of node %d after %d symbols, new node %d", child, m, mid)
	return mid
}

func (t *Trie) newNode(label, length, depth int) int32 {
	t.nodes = append(t.nodes, node{
		label:  int32(label),
		length: int32(length),
		depth:  int32(depth),
	})
	return int32(len(t.nodes) - 1)
}

// findChild searches the children of parent for an edge label starting with
// c. If there is none, k is the index where such a child would be inserted.
func (t *Trie) findChild(parent int32, c byte) (k int, found bool) {
	children := t.nodes[parent].children
	k = sort.Search(len(children), func(i int) bool {
		return t.seq[t.nodes[children[i]].label] >= c
	})
	return k, k < len(children) && t.seq[t.nodes[children[k]].label] == c
}

// addRanking appends a canonical position, or sorts a custom position into
// place.
func (t *Trie) addRanking(id int32, p, length int, custom bool) {
	n := &t.nodes[id]
	if !custom {
		n.rankings = append(n.rankings, p)
		return
	}
	i := sort.Search(len(n.rankings), func(i int) bool {
		return t.rules.Compare(p, n.rankings[i], length) < 0
	})
	n.rankings = slices.Insert(n.rankings, i, p)
}

func commonPrefix(a, b []byte) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

// Sequence returns the sequence the trie was built for.
func (t *Trie) Sequence() []byte {
	return t.seq
}

// Layout returns the chunk layout the trie was built with.
func (t *Trie) Layout() *factor.Layout {
	return t.layout
}

// Len returns the number of nodes, including the root.
func (t *Trie) Len() int {
	return len(t.nodes)
}

func (t *Trie) String() string {
	return fmt.Sprintf("Trie(nodes=%d,n=%d,merged=%v)", len(t.nodes), len(t.seq), t.merged)
}
