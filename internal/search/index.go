package search

import (
	"sync"
	"sync/atomic"
	"time"

	"court-booking/internal/domain/resource"
	"court-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

type snapshot struct {
	trie      *Trie
	resources map[uuid.UUID]*resource.Resource
	order     []uuid.UUID
	builtAt   time.Time
}

// Index serves prefix lookups over the resource catalog. Readers load the
// current snapshot without locking; writers build a new snapshot and publish
// it with a single atomic store.
type Index struct {
	current atomic.Pointer[snapshot]
	mu      sync.Mutex
	clock   clock.Clock
}

func NewIndex(clk clock.Clock) *Index {
	idx := &Index{clock: clk}
	idx.current.Store(&snapshot{trie: NewTrie(), resources: map[uuid.UUID]*resource.Resource{}})
	return idx
}

// Rebuild replaces the whole index with resources.
func (i *Index) Rebuild(resources []*resource.Resource) {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.current.Store(i.build(resources))
}

// Upsert adds res to the index. A resource already present is re-filed from
// scratch since its old terms cannot be removed from a shared prefix path.
func (i *Index) Upsert(res *resource.Resource) {
	i.mu.Lock()
	defer i.mu.Unlock()

	cur := i.current.Load()
	if _, exists := cur.resources[res.ID()]; exists {
		all := make([]*resource.Resource, 0, len(cur.order))
		for _, id := range cur.order {
			if id == res.ID() {
				all = append(all, res)
				continue
			}
			all = append(all, cur.resources[id])
		}
		i.current.Store(i.build(all))
		return
	}

	next := &snapshot{
		trie:      cur.trie.Clone(),
		resources: make(map[uuid.UUID]*resource.Resource, len(cur.resources)+1),
		order:     append(make([]uuid.UUID, 0, len(cur.order)+1), cur.order...),
		builtAt:   i.clock.Now(),
	}
	for id, r := range cur.resources {
		next.resources[id] = r
	}
	file(next, res)
	i.current.Store(next)
}

// Search returns the resources filed under prefix.
func (i *Index) Search(prefix string) []*resource.Resource {
	snap := i.current.Load()
	return snap.resolve(snap.trie.Search(prefix))
}

func (i *Index) SearchIDs(prefix string) []uuid.UUID {
	return i.current.Load().trie.Search(prefix)
}

func (i *Index) Autocomplete(prefix string, limit int) []string {
	return i.current.Load().trie.Autocomplete(prefix, limit)
}

// Resolve maps IDs to indexed resources, skipping unknown ones.
func (i *Index) Resolve(ids []uuid.UUID) []*resource.Resource {
	return i.current.Load().resolve(ids)
}

func (i *Index) Len() int {
	return len(i.current.Load().resources)
}

func (i *Index) BuiltAt() time.Time {
	return i.current.Load().builtAt
}

func (i *Index) build(resources []*resource.Resource) *snapshot {
	snap := &snapshot{
		trie:      NewTrie(),
		resources: make(map[uuid.UUID]*resource.Resource, len(resources)),
		order:     make([]uuid.UUID, 0, len(resources)),
		builtAt:   i.clock.Now(),
	}
	for _, res := range resources {
		if res == nil {
			continue
		}
		if _, dup := snap.resources[res.ID()]; dup {
			continue
		}
		file(snap, res)
	}
	return snap
}

func file(snap *snapshot, res *resource.Resource) {
	snap.resources[res.ID()] = res
	snap.order = append(snap.order, res.ID())
	for _, term := range res.SearchTerms() {
		snap.trie.Insert(term, res.ID())
	}
}

func (s *snapshot) resolve(ids []uuid.UUID) []*resource.Resource {
	out := make([]*resource.Resource, 0, len(ids))
	for _, id := range ids {
		if r, ok := s.resources[id]; ok {
			out = append(out, r)
		}
	}
	return out
}
