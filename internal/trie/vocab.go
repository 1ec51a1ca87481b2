package trie

// Vocab maps words to the position they were inserted at. Positions follow
// insertion order across New and every later Extend call.
//
// A Vocab is not safe for concurrent use.
type Vocab struct {
	root *Node

	// next is the position the next inserted word receives. It counts every
	// insertion, duplicates included.
	next int
}

// New creates a vocabulary where words[i] is stored at position i
func New(words []string) *Vocab {
	v := &Vocab{root: newNode()}
	v.Extend(words)
	return v
}

// Extend inserts words[i] at position Len()+i, where Len is taken before the
// call. A word that is already present gets the new position; its old position
// is left unused.
func (v *Vocab) Extend(words []string) {
	for i, word := range words {
		v.root.insert(word, v.next+i)
	}
	v.next += len(words)
}

// Lookup returns the position of word and whether it was ever inserted.
// Prefixes and extensions of inserted words are not matches.
func (v *Vocab) Lookup(word string) (int, bool) {
	return v.root.lookup(word)
}

// Contains reports whether word was inserted
func (v *Vocab) Contains(word string) bool {
	_, ok := v.Lookup(word)
	return ok
}

// Len returns the number of insertions performed so far
func (v *Vocab) Len() int {
	return v.next
}
