package api

import (
	"sync"

	"github.com/kumarlokesh/vocab/internal/trie"
)

// SyncVocab guards a whole vocabulary with a single lock so it can be shared
// between request handlers.
type SyncVocab struct {
	mu    sync.RWMutex
	vocab *trie.Vocab
}

// NewSyncVocab wraps v. The caller must not use v directly afterwards.
func NewSyncVocab(v *trie.Vocab) *SyncVocab {
	if v == nil {
		v = trie.New(nil)
	}
	return &SyncVocab{vocab: v}
}

// Lookup returns the position of word
func (s *SyncVocab) Lookup(word string) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vocab.Lookup(word)
}

// Extend appends words and returns the vocabulary size afterwards
func (s *SyncVocab) Extend(words []string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vocab.Extend(words)
	return s.vocab.Len()
}

// Len returns the number of insertions so far
func (s *SyncVocab) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vocab.Len()
}
