package factor

import "github.com/pkg/errors"

// ErrInvalidChunkSize is returned for chunk sizes smaller than 1.
var ErrInvalidChunkSize = errors.New("invalid chunk size")

// Layout describes how a sequence of length N is cut into ICFL factors and,
// optionally, into fixed-size chunks inside each factor.
//
// For an ICFL factor of length L and chunk size c with L > c, the trailing c
// positions form the canonical chunk of the factor; the positions before it
// are custom and are cut into chunks of size c from the right, with a shorter
// leading chunk absorbing L mod c symbols. Factors with L ≤ c are a single
// canonical chunk. Without chunking every factor is one canonical chunk.
type Layout struct {
	N         int
	ChunkSize int    // effective chunk size; N if chunking is disabled
	Chunked   bool   // false if no chunk size was given
	ICFL      []int  // factor start offsets
	Chunks    []int  // chunk start offsets, superset of ICFL
	Custom    []bool // Custom[p] is true if p lies before the canonical chunk of its factor
	FactorOf  []int  // FactorOf[p] is the index of the ICFL factor containing p
	chunkOf   []int32
}

// NewLayout computes the chunk layout for ICFL start offsets icfl over a
// sequence of length n. A chunk size c of 0 disables chunking.
func NewLayout(icfl []int, n int, c int) (*Layout, error) {
	if c < 0 {
		return nil, errors.Wrapf(ErrInvalidChunkSize, "chunk size %d", c)
	}
	if err := checkStarts(icfl, n); err != nil {
		return nil, err
	}
	l := &Layout{
		N:         n,
		ChunkSize: c,
		Chunked:   c > 0,
		ICFL:      icfl,
		Chunks:    make([]int, 0, len(icfl)),
		Custom:    make([]bool, n),
		FactorOf:  make([]int, n),
		chunkOf:   make([]int32, n),
	}
	if !l.Chunked {
		l.ChunkSize = n
	}
	c = l.ChunkSize
	for f, start := range icfl {
		end := l.FactorEnd(f)
		for p := start; p < end; p++ {
			l.FactorOf[p] = f
		}
		if end-start <= c {
			l.Chunks = append(l.Chunks, start)
			continue
		}
		for p := start; p < end-c; p++ {
			l.Custom[p] = true
		}
		first := len(l.Chunks)
		for b := end - c; b > start; b -= c {
			l.Chunks = append(l.Chunks, b)
		}
		l.Chunks = append(l.Chunks, start)
		reverse(l.Chunks[first:])
	}
	for i, start := range l.Chunks {
		end := l.ChunkBounds(i).End
		for p := start; p < end; p++ {
			l.chunkOf[p] = int32(i)
		}
	}
	tracer().Infof("layout: n=%d factors=%d chunks=%d chunk size=%d", n, len(icfl), len(l.Chunks), l.ChunkSize)
	return l, nil
}

func checkStarts(icfl []int, n int) error {
	if n == 0 {
		if len(icfl) != 0 {
			return errors.Errorf("factor offsets %v for empty sequence", icfl)
		}
		return nil
	}
	if len(icfl) == 0 || icfl[0] != 0 {
		return errors.Errorf("factor offsets must start at 0, have %v", icfl)
	}
	for i := 1; i < len(icfl); i++ {
		if icfl[i] <= icfl[i-1] || icfl[i] >= n {
			return errors.Errorf("factor offset %d out of order at index %d", icfl[i], i)
		}
	}
	return nil
}

func reverse(a []int) {
	for i, j := 0, len(a)-1; i < j; i, j = i+1, j-1 {
		a[i], a[j] = a[j], a[i]
	}
}

// Chunk is a half-open range [Start, End) of positions.
type Chunk struct {
	Start, End int
}

// Len returns the number of positions of the chunk.
func (ch Chunk) Len() int {
	return ch.End - ch.Start
}

// FactorEnd returns the end offset (exclusive) of ICFL factor f.
func (l *Layout) FactorEnd(f int) int {
	if f+1 < len(l.ICFL) {
		return l.ICFL[f+1]
	}
	return l.N
}

// ChunkBounds returns the range of chunk i.
func (l *Layout) ChunkBounds(i int) Chunk {
	end := l.N
	if i+1 < len(l.Chunks) {
		end = l.Chunks[i+1]
	}
	return Chunk{Start: l.Chunks[i], End: end}
}

// ChunkEnd returns the end offset (exclusive) of the chunk containing p.
// The local suffix of p is seq[p:ChunkEnd(p)].
func (l *Layout) ChunkEnd(p int) int {
	return l.ChunkBounds(int(l.chunkOf[p])).End
}

// IsCanonicalChunk reports whether chunk i ends at the end of its factor.
func (l *Layout) IsCanonicalChunk(i int) bool {
	return !l.Custom[l.Chunks[i]]
}

// IsLastFactor reports whether p lies in the last ICFL factor.
func (l *Layout) IsLastFactor(p int) bool {
	return l.FactorOf[p] == len(l.ICFL)-1
}

// StartRank orders the suffixes starting at ICFL factor boundaries.
// For pos == N (the empty suffix) it returns -1. For the start of factor f
// it returns f. For any other position ok is false.
//
// Because m1 ≪ m2 ≪ … ≪ mk, seq[a:] < seq[b:] whenever both have a rank
// and rank(a) < rank(b).
func (l *Layout) StartRank(pos int) (rank int, ok bool) {
	if pos == l.N {
		return -1, true
	}
	f := l.FactorOf[pos]
	if l.ICFL[f] == pos {
		return f, true
	}
	return 0, false
}

// MaxChunkLen returns the length of the longest chunk.
func (l *Layout) MaxChunkLen() int {
	m := 0
	for i := range l.Chunks {
		m = max(m, l.ChunkBounds(i).Len())
	}
	return m
}
