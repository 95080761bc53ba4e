package trie

import (
	"path/filepath"
	"sort"
	"strings"
)

/*
Arena-based Path Trie

Ignored paths are stored as segment sequences in a trie backed by an
arena. Nodes live in one contiguous slice and reference their children
by index instead of by pointer, so inserting many paths costs a single
growing allocation and lookups walk cache-friendly memory.
*/

// NodeIndex represents the index of a trie node.
type NodeIndex int

// Arena is a memory pool that stores all trie nodes.
type Arena struct {
	nodes []arenaNode
}

// arenaNode is the internal representation of a trie node stored in the arena.
type arenaNode struct {
	// children stores child nodes. key is the path segment, value is the index of the child node.
	children map[string]NodeIndex
	// isEnd indicates whether this node terminates an inserted path.
	isEnd bool
}

// NewArena creates a new arena holding only the root node.
func NewArena() *Arena {
	arena := &Arena{
		nodes: make([]arenaNode, 0, 64),
	}
	// root node (index 0)
	arena.nodes = append(arena.nodes, arenaNode{
		children: make(map[string]NodeIndex),
	})
	return arena
}

// newNode adds a new node to the arena and returns its index.
func (a *Arena) newNode() NodeIndex {
	idx := NodeIndex(len(a.nodes))
	a.nodes = append(a.nodes, arenaNode{
		children: make(map[string]NodeIndex),
	})
	return idx
}

// Insert inserts a sequence of path segments into the trie.
func (a *Arena) Insert(segments []string) {
	current := NodeIndex(0)

	for _, part := range segments {
		node := &a.nodes[current]
		childIdx, exists := node.children[part]

		if !exists {
			childIdx = a.newNode()
			node.children[part] = childIdx
		}

		current = childIdx
	}

	a.nodes[current].isEnd = true
}

// HasPrefix reports whether some inserted sequence is a segment-wise
// prefix of the given one. "vendor" covers "vendor/dep.mx" but not
// "vendored/dep.mx".
func (a *Arena) HasPrefix(segments []string) bool {
	current := NodeIndex(0)

	for _, part := range segments {
		node := a.nodes[current]
		if node.isEnd {
			return true
		}
		childIdx, exists := node.children[part]
		if !exists {
			return false
		}
		current = childIdx
	}

	return a.nodes[current].isEnd
}

// DebugString returns a string representation of the trie for debugging purposes.
func (a *Arena) DebugString() string {
	return a.debugStringNode(NodeIndex(0))
}

// debugStringNode recursively generates a string representation of a specific node (and its subtree).
func (a *Arena) debugStringNode(idx NodeIndex) string {
	node := a.nodes[idx]
	var sb strings.Builder

	if node.isEnd {
		sb.WriteString("*")
	}

	// Sort keys for consistent order
	keys := make([]string, 0, len(node.children))
	for key := range node.children {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		sb.WriteString(key)
		sb.WriteString("(")
		sb.WriteString(a.debugStringNode(node.children[key]))
		sb.WriteString(")")
	}

	return sb.String()
}

// PathTrie indexes filesystem paths for prefix lookups.
type PathTrie struct {
	arena *Arena
	count int
}

// New returns an initialized PathTrie.
func New() *PathTrie {
	return &PathTrie{
		arena: NewArena(),
	}
}

// Insert adds a path to the index.
func (t *PathTrie) Insert(path string) {
	t.arena.Insert(splitPath(path))
	t.count++
}

// Covers reports whether path equals an inserted path or sits below one.
func (t *PathTrie) Covers(path string) bool {
	if t == nil || t.count == 0 {
		return false
	}
	return t.arena.HasPrefix(splitPath(path))
}

// Len returns the number of inserted paths.
func (t *PathTrie) Len() int {
	if t == nil {
		return 0
	}
	return t.count
}

// DebugString returns a string representation of the trie for debugging purposes.
func (t *PathTrie) DebugString() string {
	return t.arena.DebugString()
}

func splitPath(path string) []string {
	cleaned := filepath.ToSlash(filepath.Clean(path))
	cleaned = strings.TrimPrefix(cleaned, "/")
	if cleaned == "" || cleaned == "." {
		return nil
	}
	return strings.Split(cleaned, "/")
}
