package trie

import "unicode/utf8"

// Node represents a node in the trie
type Node struct {
	// children maps the next character to the child node
	children map[rune]*Node

	// terminal marks that some word ends exactly at this node
	terminal bool

	// position is the position of the word ending here; only meaningful if terminal
	position int
}

// newNode creates a new trie node
func newNode() *Node {
	return &Node{
		children: make(map[rune]*Node),
	}
}

// insert walks key one rune at a time, creating missing children on the way,
// and records position on the node where key ends. An earlier position for the
// same key is overwritten.
func (n *Node) insert(key string, position int) {
	node := n
	for i := 0; i < len(key); {
		ch, size := edge(key[i:])
		child, exists := node.children[ch]
		if !exists {
			child = newNode()
			node.children[ch] = child
		}
		node = child
		i += size
	}
	node.terminal = true
	node.position = position
}

// lookup returns the position recorded for key. It stops at the first rune
// without a child.
func (n *Node) lookup(key string) (int, bool) {
	node := n
	for i := 0; i < len(key); {
		ch, size := edge(key[i:])
		child, exists := node.children[ch]
		if !exists {
			return 0, false
		}
		node = child
		i += size
	}
	if !node.terminal {
		return 0, false
	}
	return node.position, true
}

// edge returns the child key for the first character of key and its width in
// bytes. A byte that does not start valid UTF-8 gets its own negative key, so
// it never shares an edge with U+FFFD or with a different invalid byte.
func edge(key string) (rune, int) {
	ch, size := utf8.DecodeRuneInString(key)
	if ch == utf8.RuneError && size == 1 {
		return -1 - rune(key[0]), 1
	}
	return ch, size
}
