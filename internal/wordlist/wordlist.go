// Package wordlist reads newline-separated word files.
//
// Every line is one word, in file order. Blank lines are words too (the empty
// string), and no trimming or case folding is applied. A "\r" directly before
// "\n" is dropped so CRLF files read the same as LF files; a "\r" ending the
// last, unterminated line is kept. Input must be valid UTF-8.
package wordlist

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/kumarlokesh/vocab/internal/trie"
)

// MaxLineBytes is the longest line Read accepts
const MaxLineBytes = 16 * 1024 * 1024

var (
	// ErrFileRead is returned when a word list cannot be opened or read
	ErrFileRead = errors.New("failed to read word list")
	// ErrNoWordLists is returned by LoadVocab when called without paths
	ErrNoWordLists = errors.New("no word lists given")
)

// Read returns the lines of r in order. A line that is not valid UTF-8 fails
// the whole read with ErrFileRead.
func Read(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), MaxLineBytes)
	scanner.Split(scanLines)
	for line := 1; scanner.Scan(); line++ {
		if !utf8.Valid(scanner.Bytes()) {
			return nil, fmt.Errorf("%w: line %d is not valid UTF-8", ErrFileRead, line)
		}
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// scanLines is bufio.ScanLines except that the final line keeps a trailing
// "\r" when no "\n" follows it.
func scanLines(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) > 0 && bytes.IndexByte(data, '\n') < 0 {
		return len(data), data, nil
	}
	return bufio.ScanLines(data, atEOF)
}

// Load reads the word list stored at path
func Load(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrFileRead, path, err)
	}
	defer file.Close()

	words, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrFileRead, path, err)
	}
	return words, nil
}

// LoadVocab builds a vocabulary from the first word list and extends it with
// the remaining ones, in the order given.
func LoadVocab(paths ...string) (*trie.Vocab, error) {
	if len(paths) == 0 {
		return nil, ErrNoWordLists
	}

	words, err := Load(paths[0])
	if err != nil {
		return nil, err
	}
	v := trie.New(words)

	for _, path := range paths[1:] {
		words, err := Load(path)
		if err != nil {
			return nil, err
		}
		v.Extend(words)
	}
	return v, nil
}
