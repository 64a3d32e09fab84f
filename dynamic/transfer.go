package dynamic

import (
	"github.com/viant/hmap/internal/conv"
	"github.com/viant/hmap/key"
)

// Capsule is an opaque, one-shot handle to an entry detached by Extract. It
// pairs the original key with the untouched value holder and can only be
// consumed by Insert.
type Capsule struct {
	key   key.Key
	state *capsuleState
}

type capsuleState struct {
	box   *box
	arena *Arena
}

// Key returns the key the entry was extracted with.
func (c Capsule) Key() key.Key { return c.key }

// Empty reports whether the capsule holds nothing, either because the key was
// absent or because the capsule was already inserted.
func (c Capsule) Empty() bool { return c.state == nil || c.state.box == nil }

// take consumes the capsule.
func (c Capsule) take() (*box, *Arena) {
	b, arena := c.state.box, c.state.arena
	c.state.box = nil
	return b, arena
}

// RegisterConversion declares how Insert reconstructs a To from a From when
// a capsule holding a From is inserted under a key declaring To.
func RegisterConversion[From, To any](fn func(From) (To, error)) {
	conv.Register(fn)
}

// Extract detaches the entries matching keys, one capsule per key. Absent
// keys yield empty capsules.
func (m *Map) Extract(keys ...key.Keyer) []Capsule {
	ret := make([]Capsule, len(keys))
	for i, k := range keys {
		erased := k.Erased()
		ret[i] = Capsule{key: erased}
		if b, ok := m.detach(erased); ok {
			ret[i].state = &capsuleState{box: b, arena: m.arena}
		}
	}
	return ret
}

// Insert stores the content of each capsule under the key at the same
// position. Empty capsules are skipped. When the destination key declares the
// type the value holds and both maps share an arena, the holder itself is
// moved; otherwise the destination value is constructed from the source
// value. A slot is skipped, leaving its capsule filled, when no conversion
// exists or an entry is already present under the destination key. Insert returns the number of
// stored entries.
func (m *Map) Insert(capsules []Capsule, keys ...key.Keyer) int {
	inserted := 0
	for i := 0; i < len(capsules) && i < len(keys); i++ {
		if m.insertOne(capsules[i], keys[i].Erased()) {
			inserted++
		}
	}
	return inserted
}

func (m *Map) insertOne(c Capsule, k key.Key) bool {
	if c.Empty() || k.IsZero() || m.tree.Has(entry{key: k}) {
		return false
	}
	if c.state.box.id == k.Identity() {
		b, arena := c.take()
		if arena != m.arena {
			source := b
			b = m.arena.copy(source)
			arena.release(source)
		}
		m.put(k, b)
		return true
	}
	ptr := k.Identity().New()
	if err := conv.Convert(deref(c.state.box.ptr), ptr); err != nil {
		return false
	}
	b, arena := c.take()
	arena.release(b)
	m.put(k, m.arena.box(k.Identity(), ptr))
	return true
}
