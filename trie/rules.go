package trie

import (
	"bytes"
	"cmp"

	"github.com/npillmayer/icflsa/factor"
	"github.com/npillmayer/icflsa/monitor"
)

// Rules decides the global suffix order of two positions whose suffixes
// share a known prefix.
type Rules struct {
	seq    []byte
	layout *factor.Layout
	mon    *monitor.Monitor
}

// NewRules creates a rule set for seq cut by layout. mon may be nil.
func NewRules(seq []byte, layout *factor.Layout, mon *monitor.Monitor) *Rules {
	assert(len(seq) == layout.N, "sequence and layout differ in length")
	return &Rules{seq: seq, layout: layout, mon: mon}
}

// Compare orders seq[a:] and seq[b:], given that both start with the same d
// symbols. It returns a negative value if seq[a:] sorts first and a positive
// value otherwise; a and b must differ.
//
// Compare is called while inserting a custom chunk, with a custom, and while
// merging rankings, with a the father. Decisions by rules:
//
//   - continuations which both start an ICFL factor are ordered by factor
//     index, since m1 ≪ m2 ≪ … ≪ mk;
//   - a continuation which is exhausted (a+d == n) is a proper prefix of the
//     other suffix and sorts first;
//   - if exactly one position is custom and its factor index is not greater
//     than the other's, the custom position sorts first;
//   - if neither position is custom, both lie outside the last factor and
//     their factors differ, the lower factor index sorts first.
//
// Every other pair is resolved by comparing seq[a+d:] with seq[b+d:]. This
// includes pairs of custom positions, and pairs of non-custom positions
// within one factor or touching the last factor.
func (r *Rules) Compare(a, b, d int) int {
	assert(a != b, "rules: comparing a position with itself")
	l := r.layout
	customs := 0
	if l.Custom[a] {
		customs++
	}
	if l.Custom[b] {
		customs++
	}
	ca, cb := a+d, b+d
	if ra, ok := l.StartRank(ca); ok {
		if rb, ok := l.StartRank(cb); ok {
			r.mon.Decision(true, customs)
			return cmp.Compare(ra, rb)
		}
	}
	n := len(r.seq)
	if ca == n || cb == n {
		r.mon.Decision(true, customs)
		if ca == n {
			return -1
		}
		return 1
	}
	fa, fb := l.FactorOf[a], l.FactorOf[b]
	switch customs {
	case 1:
		if l.Custom[a] && fa <= fb {
			r.mon.Decision(true, customs)
			return -1
		}
		if l.Custom[b] && fb <= fa {
			r.mon.Decision(true, customs)
			return 1
		}
	case 0:
		if fa != fb && !l.IsLastFactor(a) && !l.IsLastFactor(b) {
			r.mon.Decision(true, customs)
			return cmp.Compare(fa, fb)
		}
	}
	r.mon.Decision(false, customs)
	return bytes.Compare(r.seq[ca:], r.seq[cb:])
}
