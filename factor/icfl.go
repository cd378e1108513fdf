package factor

import "bytes"

// ICFL returns the start offsets of the inverse canonical Lyndon
// factorization of s. The first offset is always 0; an empty input yields
// an empty list.
//
// Each step splits the remaining word w into x·y, where x = z·b is the
// shortest prefix of w which is not a prefix of an inverse Lyndon word.
// A border u of z selects p = z[:|z|-|u|], and u·b·y is factorized next.
// The first factor m of that remainder either stays on its own (|m| > |u|) or
// absorbs p. Steps are recorded on a stack and unwound from the right, which
// keeps the stack depth independent of the input length.
func ICFL(s []byte) []int {
	if len(s) == 0 {
		return []int{}
	}
	type step struct {
		start int // start of p
		last  int // length of the border u
	}
	var steps []step
	start := 0
	for {
		w := s[start:]
		j, whole := findPrefix(w)
		if whole {
			break
		}
		last := findBorder(w[:j], w[j])
		steps = append(steps, step{start: start, last: last})
		start += j - last
	}
	// rev holds factor starts right to left; rev[len(rev)-1] is the
	// current first factor of the remainder
	rev := make([]int, 1, len(steps)+1)
	rev[0] = start
	for k := len(steps) - 1; k >= 0; k-- {
		st := steps[k]
		first := rev[len(rev)-1]
		end := len(s)
		if len(rev) > 1 {
			end = rev[len(rev)-2]
		}
		if end-first > st.last {
			rev = append(rev, st.start)
		} else {
			rev[len(rev)-1] = st.start
		}
	}
	starts := make([]int, len(rev))
	for i, r := range rev {
		starts[len(rev)-1-i] = r
	}
	tracer().Debugf("ICFL of %d symbols has %d factors", len(s), len(starts))
	return starts
}

// ICFLWords splits s into its ICFL factors. The factors are views into s.
func ICFLWords(s []byte) [][]byte {
	return Split(s, ICFL(s))
}

// findPrefix scans w for the shortest prefix x = w[:j+1] which cannot be
// extended to an inverse Lyndon word. It returns j, the length of z = w[:j].
// If every prefix of w is a prefix of an inverse Lyndon word, whole is true.
func findPrefix(w []byte) (j int, whole bool) {
	if len(w) <= 1 {
		return len(w), true
	}
	i := 0
	j = 1
	for j < len(w) && w[j] <= w[i] {
		if w[j] < w[i] {
			i = 0
		} else {
			i++
		}
		j++
	}
	if j == len(w) {
		return j, true
	}
	return j, false
}

// findBorder returns the length of the shortest border u of z for which the
// symbol following u in z is smaller than b. The border chain is walked with
// a KMP failure function of z. The longest border always qualifies, as
// findPrefix stops exactly there.
func findBorder(z []byte, b byte) int {
	f := failure(z)
	last := -1
	for q := len(z); q > 0; {
		border := f[q-1]
		if z[border] < b {
			last = border
		}
		q = border
	}
	assert(last >= 0, "ICFL: no border of z is followed by a symbol smaller than b")
	return last
}

// failure computes the KMP failure function: f[q] is the length of the
// longest proper border of p[:q+1].
func failure(p []byte) []int {
	f := make([]int, len(p))
	k := 0
	for q := 1; q < len(p); q++ {
		for k > 0 && p[k] != p[q] {
			k = f[k-1]
		}
		if p[k] == p[q] {
			k++
		}
		f[q] = k
	}
	return f
}

// IsInverseLyndon reports whether every proper non-empty suffix of w is
// lexicographically smaller than w. The check is quadratic and meant for
// verification.
func IsInverseLyndon(w []byte) bool {
	if len(w) == 0 {
		return false
	}
	for i := 1; i < len(w); i++ {
		if bytes.Compare(w[i:], w) >= 0 {
			return false
		}
	}
	return true
}

// PrecedesStrictly reports whether x ≪ y, i.e. x and y differ at some index
// inside both words and x has the smaller symbol at the first such index.
func PrecedesStrictly(x, y []byte) bool {
	n := min(len(x), len(y))
	for i := 0; i < n; i++ {
		if x[i] != y[i] {
			return x[i] < y[i]
		}
	}
	return false
}
