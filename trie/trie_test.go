package trie

import (
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/icflsa/factor"
	"github.com/npillmayer/icflsa/internal/sacheck"
	"github.com/npillmayer/icflsa/monitor"
	"github.com/pkg/errors"
)

func build(t *testing.T, seq string, c int, mon *monitor.Monitor) *Trie {
	t.Helper()
	s := []byte(seq)
	layout, err := factor.NewLayout(factor.ICFL(s), len(s), c)
	if err != nil {
		t.Fatal(err)
	}
	tr, err := Build(s, layout, mon)
	if err != nil {
		t.Fatal(err)
	}
	return tr
}

func TestSuffixArray(t *testing.T) {
	sequences := []string{
		"a", "ab", "ba", "aaaa", "aaaba", "abab", "banana", "mississippi",
		"AAABCAABCADCAABCA", "ACGTACGTTTGCAACGT", "cacbababbacc",
	}
	for _, seq := range sequences {
		for _, c := range []int{0, 1, 2, 3, 5} {
			got := build(t, seq, c, nil).SuffixArray()
			if diff := cmp.Diff(sacheck.Naive([]byte(seq)), got); diff != "" {
				t.Errorf("suffix array of %q, chunk size %d (-want +got):\n%s", seq, c, diff)
			}
		}
	}
}

func TestSuffixArrayRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, alphabet := range []string{"ab", "abc", "ACGT"} {
		for i := 0; i < 100; i++ {
			seq := string(sacheck.Random(rng, 1+rng.Intn(80), alphabet))
			for _, c := range []int{0, 1, 2, 3, 8} {
				got := build(t, seq, c, nil).SuffixArray()
				if diff := cmp.Diff(sacheck.Naive([]byte(seq)), got); diff != "" {
					t.Fatalf("suffix array of %q, chunk size %d (-want +got):\n%s", seq, c, diff)
				}
			}
		}
	}
}

func TestUnchunkedBuildMakesNoComparisons(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 50; i++ {
		seq := string(sacheck.Random(rng, 1+rng.Intn(60), "ACGT"))
		mon := monitor.New()
		build(t, seq, 0, mon)
		if n := mon.Snapshot().Comparisons(); n != 0 {
			t.Fatalf("building trie for %q without chunking made %d comparisons", seq, n)
		}
	}
}

func TestCanonicalInsertionsMakeNoComparisons(t *testing.T) {
	// with a chunk size of at least the longest factor, every chunk is canonical
	seq := "AAABCAABCADCAABCA"
	mon := monitor.New()
	build(t, seq, 7, mon)
	if n := mon.Snapshot().Comparisons(); n != 0 {
		t.Errorf("expected no comparisons, got %d", n)
	}
	// with chunking, comparisons involve at least one custom position
	mon = monitor.New()
	tr := build(t, seq, 3, mon)
	built := mon.Snapshot()
	if built.Comparisons() != built.CompareWithOneCustom+built.CompareWithTwoCustom {
		t.Errorf("comparison without custom position during build: %v", built)
	}
	tr.Merge()
	if mon.Snapshot().WindowProbes == 0 {
		t.Errorf("expected window probes during merge")
	}
}

func TestCanonicalInsertsLeaveCountersUnchanged(t *testing.T) {
	for _, seq := range []string{"AAABCAABCADCAABCA", "ACGTACGTTTGCAACGT", "cacbababbacc"} {
		for _, c := range []int{1, 2, 3} {
			s := []byte(seq)
			layout, err := factor.NewLayout(factor.ICFL(s), len(s), c)
			if err != nil {
				t.Fatal(err)
			}
			mon := monitor.New()
			tr := &Trie{
				seq:    s,
				layout: layout,
				rules:  NewRules(s, layout, mon),
				nodes:  make([]node, 1),
			}
			canonical, custom := chunkOrder(layout)
			for L := 1; L <= layout.MaxChunkLen(); L++ {
				canonical = longEnough(layout, canonical, L)
				for _, i := range canonical {
					p := layout.ChunkBounds(i).End - L
					before := mon.Snapshot()
					if err := tr.insert(p, L, false); err != nil {
						t.Fatal(err)
					}
					if diff := cmp.Diff(before, mon.Snapshot()); diff != "" {
						t.Fatalf("%q, chunk size %d: inserting canonical %d changed counters (-before +after):\n%s",
							seq, c, p, diff)
					}
				}
				custom = longEnough(layout, custom, L)
				for _, i := range custom {
					if err := tr.insert(layout.ChunkBounds(i).End-L, L, true); err != nil {
						t.Fatal(err)
					}
				}
			}
			if diff := cmp.Diff(sacheck.Naive(s), tr.SuffixArray()); diff != "" {
				t.Errorf("suffix array of %q, chunk size %d (-want +got):\n%s", seq, c, diff)
			}
		}
	}
}

func TestMergeIsIdempotent(t *testing.T) {
	tr := build(t, "mississippi", 2, nil)
	first := tr.SuffixArray()
	second := tr.SuffixArray()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second composition differs (-first +second):\n%s", diff)
	}
}

func TestInsertRejectsPrefixOfLabel(t *testing.T) {
	seq := []byte("aaab")
	layout, err := factor.NewLayout(factor.ICFL(seq), len(seq), 0)
	if err != nil {
		t.Fatal(err)
	}
	tr := &Trie{
		seq:    seq,
		layout: layout,
		rules:  NewRules(seq, layout, nil),
		nodes:  make([]node, 1),
	}
	if err := tr.insert(0, 3, false); err != nil {
		t.Fatal(err)
	}
	err = tr.insert(1, 2, false)
	if !errors.Is(err, ErrInvariantViolation) {
		t.Errorf("expected invariant violation, got %v", err)
	}
}

func TestCheckLength(t *testing.T) {
	if err := CheckLength(math.MaxInt32); err != nil {
		t.Errorf("expected length %d to be accepted, got %v", math.MaxInt32, err)
	}
	if strconv.IntSize == 32 {
		t.Skip("int cannot exceed MaxLen")
	}
	n := MaxLen
	n++
	if err := CheckLength(n); !errors.Is(err, ErrSequenceTooLong) {
		t.Errorf("expected length %d to be rejected, got %v", n, err)
	}
}

func TestWalk(t *testing.T) {
	tr := build(t, "banana", 0, nil)
	var paths []string
	ranked := 0
	tr.Walk(func(v NodeView) bool {
		if v.ID == 0 {
			if v.Parent != -1 || v.Depth != 0 || len(v.Path) != 0 {
				t.Errorf("unexpected root view %+v", v)
			}
			return true
		}
		paths = append(paths, string(v.Path))
		ranked += len(v.Rankings)
		if len(v.Path) != v.Depth {
			t.Errorf("node %d: path %q does not match depth %d", v.ID, v.Path, v.Depth)
		}
		return true
	})
	for i := 1; i < len(paths); i++ {
		if paths[i-1] >= paths[i] {
			t.Errorf("walk is not in pre-order: %q before %q", paths[i-1], paths[i])
		}
	}
	if ranked != 6 {
		t.Errorf("expected 6 rankings before merging, got %d", ranked)
	}
}

func TestWalkSkipsSubtrees(t *testing.T) {
	tr := build(t, "banana", 0, nil)
	visited := 0
	tr.Walk(func(v NodeView) bool {
		visited++
		return v.ID != 0
	})
	if visited != 1 {
		t.Errorf("expected only the root to be visited, got %d nodes", visited)
	}
}

func TestStats(t *testing.T) {
	tr := build(t, "AAABCAABCADCAABCA", 3, nil)
	s := tr.Stats()
	if s.Nodes != tr.Len() {
		t.Errorf("expected %d nodes, got %d", tr.Len(), s.Nodes)
	}
	if s.Nodes != 1+s.Leaves+s.Internal {
		t.Errorf("node counts do not add up: %+v", s)
	}
	if s.Rankings != 17 {
		t.Errorf("expected 17 rankings, got %d", s.Rankings)
	}
	if s.MaxDepth > 3 {
		t.Errorf("local suffixes are at most 3 long, got depth %d", s.MaxDepth)
	}
	if r := s.FillRatio(); r <= 0 || r > 1 {
		t.Errorf("fill ratio out of range: %f", r)
	}
}
