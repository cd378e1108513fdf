package inspect

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/icflsa/factor"
	lstrie "github.com/npillmayer/icflsa/trie"
)

func build(t *testing.T, seq string, c int) (*lstrie.Trie, *factor.Layout) {
	t.Helper()
	s := []byte(seq)
	layout, err := factor.NewLayout(factor.ICFL(s), len(s), c)
	if err != nil {
		t.Fatal(err)
	}
	tr, err := lstrie.Build(s, layout, nil)
	if err != nil {
		t.Fatal(err)
	}
	return tr, layout
}

func TestIndex(t *testing.T) {
	tr, _ := build(t, "banana", 0)
	ix := NewIndex(tr)
	if ix.Len() == 0 {
		t.Fatal("expected ranked nodes in index")
	}
	// banana factors into ba | nana
	r, ok := ix.Rankings([]byte("nana"))
	if !ok {
		t.Fatal("expected node for nana")
	}
	if diff := cmp.Diff([]int{2}, r); diff != "" {
		t.Errorf("rankings of nana (-want +got):\n%s", diff)
	}
	r, _ = ix.Rankings([]byte("a"))
	if diff := cmp.Diff([]int{5, 1}, r); diff != "" {
		t.Errorf("rankings of a (-want +got):\n%s", diff)
	}
	if _, ok := ix.Rankings([]byte("banana")); ok {
		t.Errorf("did not expect a node for banana")
	}
	if _, ok := ix.Rankings([]byte("nab")); ok {
		t.Errorf("did not expect a node for nab")
	}
	var got []string
	for _, p := range ix.WithPrefix([]byte("an")) {
		got = append(got, string(p))
	}
	if diff := cmp.Diff([]string{"ana"}, got); diff != "" {
		t.Errorf("nodes with prefix an (-want +got):\n%s", diff)
	}
}

func TestIndexMergedTrie(t *testing.T) {
	tr, _ := build(t, "aaaba", 0)
	tr.Merge()
	ix := NewIndex(tr)
	total := 0
	for _, p := range ix.WithPrefix(nil) {
		r, _ := ix.Rankings(p)
		total += len(r)
	}
	if total < 5 {
		t.Errorf("expected all 5 positions among merged rankings, got %d", total)
	}
}

func TestEncodeDecode(t *testing.T) {
	s := []byte{0, 1, 'A', 0xff}
	if !bytes.Equal(decode(encode(s)), s) {
		t.Errorf("decode(encode(%v)) = %v", s, decode(encode(s)))
	}
}

func TestDump(t *testing.T) {
	tr, _ := build(t, "abab", 0)
	var b strings.Builder
	if err := Dump(&b, tr); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	if !strings.HasPrefix(out, "(root)") {
		t.Errorf("dump should start with the root, is\n%s", out)
	}
	if lines := strings.Count(out, "\n"); lines != tr.Len() {
		t.Errorf("expected %d lines, got %d:\n%s", tr.Len(), lines, out)
	}
}

func TestDumpFactors(t *testing.T) {
	seq := "AAABCAABCADCAABCA"
	_, layout := build(t, seq, 3)
	var b strings.Builder
	if err := DumpFactors(&b, []byte(seq), layout); err != nil {
		t.Fatal(err)
	}
	want := `n=17 factors=4 chunks=7 chunk size=3
   0 [0,3) AAA
   1 [3,4) B
   2 [4,10) CAA* BCA
   3 [10,17) D* CAA* BCA
`
	if diff := cmp.Diff(want, b.String()); diff != "" {
		t.Errorf("factor dump mismatch (-want +got):\n%s", diff)
	}
}
