package trie_test

import (
	"fmt"
	"testing"

	"github.com/kumarlokesh/vocab/internal/trie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVocab_Create(t *testing.T) {
	dictionary := []string{"words", "in", "the", "dictionary", "what", "where", "when"}

	v := trie.New(dictionary)

	assert.True(t, v.Contains("dictionary"))
	assert.True(t, v.Contains("where"))
	assert.False(t, v.Contains("whereabouts"))
	assert.False(t, v.Contains("d"))
	assert.Equal(t, len(dictionary), v.Len())
}

func TestVocab_Extend(t *testing.T) {
	v := trie.New([]string{"words", "in", "the", "dictionary"})

	v.Extend([]string{"what", "where", "when"})

	assert.True(t, v.Contains("dictionary"))
	assert.True(t, v.Contains("where"))
	assert.False(t, v.Contains("whereabouts"))
	assert.False(t, v.Contains("d"))

	pos, ok := v.Lookup("what")
	require.True(t, ok)
	assert.Equal(t, 4, pos)
	assert.Equal(t, 7, v.Len())
}

func TestVocab_PositionsFollowInsertionOrder(t *testing.T) {
	words := []string{"a", "ab", "abc", "b", "ba", "", "zebra", "zeb", "ζ"}
	v := trie.New(words)

	for i, w := range words {
		t.Run(fmt.Sprintf("%q", w), func(t *testing.T) {
			pos, ok := v.Lookup(w)
			require.True(t, ok)
			assert.Equal(t, i, pos)
		})
	}
}

func TestVocab_AbsentWords(t *testing.T) {
	v := trie.New([]string{"where", "when", "what"})

	tests := []struct {
		name string
		word string
	}{
		{name: "never inserted", word: "dictionary"},
		{name: "proper prefix", word: "wh"},
		{name: "single rune prefix", word: "w"},
		{name: "extension", word: "whereabouts"},
		{name: "one extra rune", word: "whens"},
		{name: "empty string", word: ""},
		{name: "different case", word: "Where"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, ok := v.Lookup(tt.word)
			assert.False(t, ok)
			assert.Zero(t, pos)
		})
	}
}

func TestVocab_ExtendKeepsEarlierPositions(t *testing.T) {
	v := trie.New([]string{"alpha", "beta"})
	v.Extend([]string{"gamma"})
	v.Extend(nil)
	v.Extend([]string{"delta", "epsilon"})

	want := map[string]int{"alpha": 0, "beta": 1, "gamma": 2, "delta": 3, "epsilon": 4}
	for w, p := range want {
		got, ok := v.Lookup(w)
		require.True(t, ok, w)
		assert.Equal(t, p, got, w)
	}
	assert.Equal(t, 5, v.Len())
}

func TestVocab_DuplicateLastWriteWins(t *testing.T) {
	v := trie.New([]string{"the", "cat", "the"})

	pos, ok := v.Lookup("the")
	require.True(t, ok)
	assert.Equal(t, 2, pos)
	assert.Equal(t, 3, v.Len(), "duplicates still advance the counter")

	v.Extend([]string{"cat"})
	pos, ok = v.Lookup("cat")
	require.True(t, ok)
	assert.Equal(t, 3, pos)
	assert.Equal(t, 4, v.Len())
}

func TestVocab_EmptyStringAtPositionZero(t *testing.T) {
	v := trie.New([]string{"", "a"})

	pos, ok := v.Lookup("")
	require.True(t, ok)
	assert.Equal(t, 0, pos)

	pos, ok = v.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, 1, pos)
}

func TestVocab_EmptyVocabulary(t *testing.T) {
	v := trie.New(nil)

	assert.Equal(t, 0, v.Len())
	assert.False(t, v.Contains(""))
	assert.False(t, v.Contains("anything"))

	v.Extend([]string{"first"})
	pos, ok := v.Lookup("first")
	require.True(t, ok)
	assert.Equal(t, 0, pos)
}

func TestVocab_Deterministic(t *testing.T) {
	words := []string{"to", "tea", "ted", "ten", "i", "in", "inn", "to"}
	a := trie.New(words)
	b := trie.New(words)

	queries := append([]string{"", "t", "te", "tenth", "inns", "x"}, words...)
	for _, q := range queries {
		pa, oka := a.Lookup(q)
		pb, okb := b.Lookup(q)
		assert.Equal(t, oka, okb, q)
		assert.Equal(t, pa, pb, q)
	}
}

func TestVocab_InvalidUTF8KeptDistinct(t *testing.T) {
	v := trie.New([]string{"\xff", "ok"})

	tests := []struct {
		name   string
		word   string
		want   int
		wantOK bool
	}{
		{name: "inserted bytes", word: "\xff", want: 0, wantOK: true},
		{name: "other invalid byte", word: "\xfe", wantOK: false},
		{name: "replacement character", word: "�", wantOK: false},
		{name: "valid word", word: "ok", want: 1, wantOK: true},
		{name: "valid word with invalid suffix", word: "ok\xff", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, ok := v.Lookup(tt.word)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, pos)
		})
	}
}
