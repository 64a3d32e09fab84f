package dynamic

import (
	"slices"
	"strings"

	"github.com/google/btree"
	"github.com/viant/hmap/key"
)

const defaultDegree = 8

type entry struct {
	key key.Key
	box *box
}

func lessEntry(a, b entry) bool { return a.key.Less(b.key) }

// Map is an ordered heterogeneous map.
type Map struct {
	tree   *btree.BTreeG[entry]
	arena  *Arena
	degree int
}

// Option modifies a map before first use.
type Option func(*Map)

// WithArena sets the arena holders are allocated from.
func WithArena(arena *Arena) Option {
	return func(m *Map) {
		m.arena = arena
	}
}

// WithDegree sets the b-tree degree of the underlying storage.
func WithDegree(degree int) Option {
	return func(m *Map) {
		m.degree = degree
	}
}

// New creates an empty map
func New(opts ...Option) *Map {
	m := &Map{}
	for _, opt := range opts {
		opt(m)
	}
	if m.arena == nil {
		m.arena = defaultArena
	}
	if m.degree < 2 {
		m.degree = defaultDegree
	}
	m.tree = btree.NewG[entry](m.degree, lessEntry)
	return m
}

// Of creates a map holding entries. Entries may come in any order; when two
// entries share a key the first one wins.
func Of(entries ...key.Entry) *Map {
	return OfWith(nil, entries...)
}

// OfWith is Of with options.
func OfWith(opts []Option, entries ...key.Entry) *Map {
	m := New(opts...)
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b key.Entry) int { return a.Key.Compare(b.Key) })
	for i, e := range sorted {
		if e.Key.IsZero() || (i > 0 && sorted[i-1].Key == e.Key) {
			continue
		}
		b := m.arena.box(e.Key.Identity(), e.Key.Identity().New())
		if ptr := e.Pointer(); ptr != nil {
			assign(b.ptr, ptr)
		}
		m.tree.ReplaceOrInsert(entry{key: e.Key, box: b})
	}
	return m
}

// Clone returns a copy of m sharing its arena. Values are copied shallowly.
func (m *Map) Clone() *Map {
	ret := New(WithArena(m.arena), WithDegree(m.degree))
	m.tree.Ascend(func(e entry) bool {
		ret.tree.ReplaceOrInsert(entry{key: e.key, box: ret.arena.copy(e.box)})
		return true
	})
	return ret
}

// Len returns the number of entries
func (m *Map) Len() int { return m.tree.Len() }

// Empty reports whether the map has no entries
func (m *Map) Empty() bool { return m.tree.Len() == 0 }

// Clear removes all entries
func (m *Map) Clear() {
	m.tree.Ascend(func(e entry) bool {
		m.arena.release(e.box)
		return true
	})
	m.tree.Clear(false)
}

// Contains reports whether an entry matches the full key.
func (m *Map) Contains(k key.Keyer) bool {
	return m.tree.Has(entry{key: k.Erased()})
}

// Keys returns all keys in order.
func (m *Map) Keys() []key.Key {
	ret := make([]key.Key, 0, m.tree.Len())
	m.tree.Ascend(func(e entry) bool {
		ret = append(ret, e.key)
		return true
	})
	return ret
}

// Erase removes the entry matching the full key and returns the number of
// removed entries.
func (m *Map) Erase(k key.Keyer) int {
	e, ok := m.tree.Delete(entry{key: k.Erased()})
	if !ok {
		return 0
	}
	m.arena.release(e.box)
	return 1
}

func (m *Map) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, k := range m.Keys() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(k.String())
	}
	b.WriteString("}")
	return b.String()
}

func (m *Map) lookup(k key.Key) (*box, bool) {
	e, ok := m.tree.Get(entry{key: k})
	return e.box, ok
}

// put stores b under k, releasing a replaced holder.
func (m *Map) put(k key.Key, b *box) {
	if old, replaced := m.tree.ReplaceOrInsert(entry{key: k, box: b}); replaced && old.box != b {
		m.arena.release(old.box)
	}
}

// detach removes the entry matching k and hands its holder to the caller.
func (m *Map) detach(k key.Key) (*box, bool) {
	e, ok := m.tree.Delete(entry{key: k})
	return e.box, ok
}
