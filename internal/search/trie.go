package search

import (
	"slices"
	"strings"

	"github.com/google/uuid"
)

type node struct {
	children map[rune]*node
	ids      []uuid.UUID
	end      bool
	key      string
}

func newNode() *node {
	return &node{children: make(map[rune]*node)}
}

// Trie is a prefix tree over lowercased keys. Every node on a key's path
// records the resource ID, so a prefix lookup is a single walk.
// A Trie is not safe for concurrent mutation; Index publishes immutable copies.
type Trie struct {
	root *node
	keys int
}

func NewTrie() *Trie {
	return &Trie{root: newNode()}
}

// Insert files id under every prefix of key. The first spelling inserted for
// a key is the one Autocomplete returns.
func (t *Trie) Insert(key string, id uuid.UUID) {
	norm := normalize(key)
	if norm == "" {
		return
	}

	n := t.root
	for _, r := range norm {
		child, ok := n.children[r]
		if !ok {
			child = newNode()
			n.children[r] = child
		}
		child.ids = append(child.ids, id)
		n = child
	}
	if !n.end {
		n.end = true
		n.key = strings.TrimSpace(key)
		t.keys++
	}
}

// Search returns the distinct IDs filed under prefix in first-inserted order.
func (t *Trie) Search(prefix string) []uuid.UUID {
	n := t.walk(normalize(prefix))
	if n == nil || n == t.root {
		return []uuid.UUID{}
	}

	seen := make(map[uuid.UUID]struct{}, len(n.ids))
	out := make([]uuid.UUID, 0, len(n.ids))
	for _, id := range n.ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// Autocomplete returns up to limit complete keys below prefix, visiting
// children in ascending rune order so results are stable across calls.
func (t *Trie) Autocomplete(prefix string, limit int) []string {
	out := []string{}
	if limit <= 0 {
		return out
	}
	// an empty prefix matches nothing, as in Search
	start := t.walk(normalize(prefix))
	if start == nil || start == t.root {
		return out
	}

	stack := []*node{start}
	for len(stack) > 0 && len(out) < limit {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if n.end {
			out = append(out, n.key)
		}

		// push in descending order so the smallest rune is popped first
		runes := make([]rune, 0, len(n.children))
		for r := range n.children {
			runes = append(runes, r)
		}
		slices.Sort(runes)
		for i := len(runes) - 1; i >= 0; i-- {
			stack = append(stack, n.children[runes[i]])
		}
	}
	return out
}

// Clone returns a deep copy that can be mutated without affecting t.
func (t *Trie) Clone() *Trie {
	type pair struct{ src, dst *node }

	root := newNode()
	stack := []pair{{src: t.root, dst: root}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		p.dst.ids = slices.Clone(p.src.ids)
		p.dst.end = p.src.end
		p.dst.key = p.src.key
		for r, child := range p.src.children {
			cp := newNode()
			p.dst.children[r] = cp
			stack = append(stack, pair{src: child, dst: cp})
		}
	}
	return &Trie{root: root, keys: t.keys}
}

// Len is the number of distinct keys.
func (t *Trie) Len() int {
	return t.keys
}

func (t *Trie) walk(prefix string) *node {
	n := t.root
	for _, r := range prefix {
		child, ok := n.children[r]
		if !ok {
			return nil
		}
		n = child
	}
	return n
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
