package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kumarlokesh/vocab/internal/wordlist"
)

func TestLoadVocab(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "base.txt")
	extra := filepath.Join(dir, "extra.txt")
	require.NoError(t, os.WriteFile(base, []byte("words\nin\nthe\ndictionary\n"), 0644))
	require.NoError(t, os.WriteFile(extra, []byte("what\nwhere\nwhen\n"), 0644))

	t.Run("No dictionaries", func(t *testing.T) {
		v, err := loadVocab(nil, zerolog.Nop())
		require.NoError(t, err)
		assert.Equal(t, 0, v.Len())
	})

	t.Run("Several dictionaries", func(t *testing.T) {
		v, err := loadVocab([]string{base, extra}, zerolog.Nop())
		require.NoError(t, err)

		pos, ok := v.Lookup("what")
		require.True(t, ok)
		assert.Equal(t, 4, pos)
	})

	t.Run("Missing dictionary", func(t *testing.T) {
		_, err := loadVocab([]string{filepath.Join(dir, "absent.txt")}, zerolog.Nop())
		assert.ErrorIs(t, err, wordlist.ErrFileRead)
	})
}
