package icflsa

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/npillmayer/icflsa/monitor"
	"github.com/npillmayer/icflsa/trie"
	"github.com/pkg/errors"
)

// Option configures a suffix array computation.
type Option func(*options)

type options struct {
	ChunkSize    int
	chunkSizeSet bool
	monitor      *monitor.Monitor
	trieHook     func(*trie.Trie)
}

// WithChunkSize enables chunking of ICFL factors into chunks of size c.
// c must be at least 1. Without this option every factor is a single chunk.
func WithChunkSize(c int) Option {
	return func(o *options) {
		o.ChunkSize = c
		o.chunkSizeSet = true
	}
}

// WithMonitor makes the computation report to m instead of a private
// monitor.
func WithMonitor(m *monitor.Monitor) Option {
	return func(o *options) {
		o.monitor = m
	}
}

// WithTrieHook calls hook with the merged trie, before the suffix array is
// read off it.
func WithTrieHook(hook func(*trie.Trie)) Option {
	return func(o *options) {
		o.trieHook = hook
	}
}

func newOptions(opts []Option) (*options, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	if o.monitor == nil {
		o.monitor = monitor.New()
	}
	return o, nil
}

func (o *options) validate() error {
	if !o.chunkSizeSet {
		return nil
	}
	err := validation.ValidateStruct(o,
		validation.Field(&o.ChunkSize, validation.Required, validation.Min(1)),
	)
	if err != nil {
		return errors.Wrapf(ErrInvalidChunkSize, "chunk size %d: %v", o.ChunkSize, err)
	}
	return nil
}
