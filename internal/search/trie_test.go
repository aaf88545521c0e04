//go:build unit

package search_test

import (
	"testing"

	"court-booking/internal/search"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTrie_RoundTrip(t *testing.T) {
	r1, r2 := uuid.New(), uuid.New()
	trie := search.NewTrie()
	trie.Insert("Elite Sports Complex", r1)
	trie.Insert("Ace Tennis Academy", r2)

	assert.Equal(t, []uuid.UUID{r1}, trie.Search("eli"))
	assert.Equal(t, []uuid.UUID{r2}, trie.Search("a"))
	assert.Empty(t, trie.Search("zzz"))
	assert.Equal(t, []uuid.UUID{r1}, trie.Search("ELITE s"), "lookups are case-insensitive")
	assert.Empty(t, trie.Search(""))
}

func TestTrie_Search_Deduplicates(t *testing.T) {
	r1, r2 := uuid.New(), uuid.New()
	trie := search.NewTrie()
	trie.Insert("Ace Arena", r1)
	trie.Insert("Ace Arena tennis", r1)
	trie.Insert("tennis", r1)
	trie.Insert("Ace Club", r2)

	assert.Equal(t, []uuid.UUID{r1, r2}, trie.Search("ace"))
	assert.Equal(t, []uuid.UUID{r1}, trie.Search("ace a"))
}

func TestTrie_Autocomplete(t *testing.T) {
	trie := search.NewTrie()
	for _, k := range []string{"arena", "active", "ace", "badminton"} {
		trie.Insert(k, uuid.New())
	}

	testCases := []struct {
		name   string
		prefix string
		limit  int
		want   []string
	}{
		{name: "first match only", prefix: "a", limit: 1, want: []string{"ace"}},
		{name: "all under prefix in order", prefix: "a", limit: 10, want: []string{"ace", "active", "arena"}},
		{name: "prefix that is itself a key", prefix: "ace", limit: 10, want: []string{"ace"}},
		{name: "missing prefix", prefix: "z", limit: 10, want: []string{}},
		{name: "empty prefix", prefix: "", limit: 10, want: []string{}},
		{name: "whitespace prefix", prefix: "   ", limit: 10, want: []string{}},
		{name: "zero limit", prefix: "a", limit: 0, want: []string{}},
		{name: "negative limit", prefix: "a", limit: -1, want: []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, trie.Autocomplete(tc.prefix, tc.limit))
		})
	}
}

func TestTrie_Autocomplete_Deterministic(t *testing.T) {
	trie := search.NewTrie()
	for _, k := range []string{"arena", "active", "ace"} {
		trie.Insert(k, uuid.New())
	}

	for range 50 {
		assert.Equal(t, []string{"ace"}, trie.Autocomplete("a", 1))
	}
}

func TestTrie_Autocomplete_KeepsFirstSpelling(t *testing.T) {
	trie := search.NewTrie()
	trie.Insert("Ace Arena", uuid.New())
	trie.Insert("ace arena", uuid.New())

	assert.Equal(t, []string{"Ace Arena"}, trie.Autocomplete("ACE", 5))
	assert.Equal(t, 1, trie.Len())
}

func TestTrie_Clone(t *testing.T) {
	r1, r2 := uuid.New(), uuid.New()
	original := search.NewTrie()
	original.Insert("court", r1)

	clone := original.Clone()
	clone.Insert("court two", r2)

	assert.Equal(t, []uuid.UUID{r1}, original.Search("court"))
	assert.Equal(t, []uuid.UUID{r1, r2}, clone.Search("court"))
	assert.Equal(t, 1, original.Len())
	assert.Equal(t, 2, clone.Len())
}
