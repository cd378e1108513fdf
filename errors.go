package icflsa

import (
	"github.com/npillmayer/icflsa/factor"
	"github.com/npillmayer/icflsa/trie"
)

var (
	// ErrInvalidChunkSize is returned for chunk sizes smaller than 1.
	ErrInvalidChunkSize = factor.ErrInvalidChunkSize

	// ErrSequenceTooLong is returned for sequences longer than trie.MaxLen.
	ErrSequenceTooLong = trie.ErrSequenceTooLong

	// ErrInvariantViolation is returned if the local suffix trie is found in
	// an inconsistent state. It indicates a programming error.
	ErrInvariantViolation = trie.ErrInvariantViolation
)
