/*
Package sacheck provides reference suffix arrays and checks on suffix arrays.

It is used by tests and by the command line tool to verify computed suffix
arrays. Reference uses an SA-IS implementation, Naive sorts suffixes by
direct comparison.
*/
package sacheck

import (
	"bytes"
	"math/rand"
	"sort"

	"github.com/jgallagher/gosaca"
	"github.com/pkg/errors"
)

// Reference computes the suffix array of seq with SA-IS.
func Reference(seq []byte) []int {
	sa := make([]int, len(seq))
	switch len(seq) {
	case 0:
	case 1:
		sa[0] = 0
	default:
		ws := &gosaca.WorkSpace{}
		ws.ComputeSuffixArray(seq, sa)
	}
	return sa
}

// Naive computes the suffix array of seq by sorting all suffixes.
func Naive(seq []byte) []int {
	sa := make([]int, len(seq))
	for i := range sa {
		sa[i] = i
	}
	sort.Slice(sa, func(i, j int) bool {
		return bytes.Compare(seq[sa[i]:], seq[sa[j]:]) < 0
	})
	return sa
}

// IsPermutation reports whether sa holds each of 0 … n-1 exactly once.
func IsPermutation(sa []int, n int) bool {
	if len(sa) != n {
		return false
	}
	seen := make([]bool, n)
	for _, p := range sa {
		if p < 0 || p >= n || seen[p] {
			return false
		}
		seen[p] = true
	}
	return true
}

// IsSorted reports whether the suffixes of seq listed in sa are in strictly
// increasing order. It returns the index of the first offending entry.
func IsSorted(seq []byte, sa []int) (bool, int) {
	for i := 1; i < len(sa); i++ {
		if bytes.Compare(seq[sa[i-1]:], seq[sa[i]:]) >= 0 {
			return false, i
		}
	}
	return true, -1
}

// FirstMismatch returns the first index at which got and want differ, or -1.
func FirstMismatch(got, want []int) int {
	n := min(len(got), len(want))
	for i := 0; i < n; i++ {
		if got[i] != want[i] {
			return i
		}
	}
	if len(got) != len(want) {
		return n
	}
	return -1
}

// Verify checks sa against the reference suffix array of seq.
func Verify(seq []byte, sa []int) error {
	if !IsPermutation(sa, len(seq)) {
		return errors.Errorf("suffix array is not a permutation of 0…%d", len(seq)-1)
	}
	if i := FirstMismatch(sa, Reference(seq)); i >= 0 {
		return errors.Errorf("suffix array differs from reference at index %d", i)
	}
	return nil
}

// Random returns a sequence of length n over alphabet, drawn from rng.
func Random(rng *rand.Rand, n int, alphabet string) []byte {
	seq := make([]byte, n)
	for i := range seq {
		seq[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return seq
}
