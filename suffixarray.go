package icflsa

import (
	"io"

	"github.com/npillmayer/icflsa/factor"
	"github.com/npillmayer/icflsa/monitor"
	"github.com/npillmayer/icflsa/trie"
	"github.com/pkg/errors"
)

// Result is the outcome of a suffix array computation.
type Result struct {
	SuffixArray []int          // positions of seq in lexicographic order of their suffixes
	ICFL        []int          // start offsets of the ICFL factors
	Layout      *factor.Layout // chunk layout used for the local suffixes
	Counters    monitor.Counters
}

// Compute returns the suffix array of seq.
//
// The empty sequence yields an empty suffix array. Sequences longer than
// trie.MaxLen are rejected with ErrSequenceTooLong. Options and length are
// validated before any work is done.
func Compute(seq []byte, opts ...Option) (*Result, error) {
	o, err := newOptions(opts)
	if err != nil {
		tracer().Errorf("%v", err)
		return nil, err
	}
	if err := trie.CheckLength(len(seq)); err != nil {
		tracer().Errorf("%v", err)
		return nil, err
	}
	mon := o.monitor
	if len(seq) == 0 {
		return &Result{
			SuffixArray: []int{},
			ICFL:        []int{},
			Counters:    mon.Snapshot(),
		}, nil
	}
	stop := mon.Start(monitor.Factorize)
	icfl := factor.ICFL(seq)
	stop()

	stop = mon.Start(monitor.Chunk)
	layout, err := factor.NewLayout(icfl, len(seq), o.ChunkSize)
	stop()
	if err != nil {
		tracer().Errorf("%v", err)
		return nil, err
	}

	stop = mon.Start(monitor.Build)
	t, err := trie.Build(seq, layout, mon)
	stop()
	if err != nil {
		tracer().Errorf("%v", err)
		return nil, err
	}

	stop = mon.Start(monitor.Merge)
	t.Merge()
	stop()
	if o.trieHook != nil {
		o.trieHook(t)
	}

	stop = mon.Start(monitor.Compose)
	sa := t.SuffixArray()
	stop()

	res := &Result{
		SuffixArray: sa,
		ICFL:        icfl,
		Layout:      layout,
		Counters:    mon.Snapshot(),
	}
	tracer().Infof("suffix array for n=%d: %s", len(seq), res.Counters)
	return res, nil
}

// SequenceReader yields named sequences one-by-one.
// It should return io.EOF when the stream is exhausted.
type SequenceReader interface {
	Next() (id string, seq []byte, err error)
}

// Named is the result of a computation for one sequence of a stream.
type Named struct {
	ID string
	*Result
}

// ComputeAll computes suffix arrays for all sequences of a stream, with the
// same options for each. Monitors given by WithMonitor accumulate over the
// whole stream.
func ComputeAll(reader SequenceReader, opts ...Option) (results []Named, err error) {
	for {
		var id string
		var seq []byte
		id, seq, err = reader.Next()
		if err == io.EOF {
			return results, nil
		}
		if err != nil {
			return results, err
		}
		var res *Result
		if res, err = Compute(seq, opts...); err != nil {
			return results, errors.Wrapf(err, "sequence %q", id)
		}
		results = append(results, Named{ID: id, Result: res})
	}
}
