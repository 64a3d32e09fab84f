package dynamic

import (
	"github.com/viant/hmap/identity"
	"github.com/viant/hmap/key"
)

// Cursor is a lazy, type-checked view of a map entry. The stored value is
// only downcast when read. A cursor is invalidated by any map mutation other
// than writes through Value.
type Cursor[V any] struct {
	m   *Map
	id  *identity.Identity
	key key.Key
	ptr any
	end bool
}

// Find positions a cursor at k. The cursor is at its end when k is absent or
// the stored value does not have type V.
func Find[V any](m *Map, k key.Typed[V]) Cursor[V] {
	c := Cursor[V]{m: m, id: k.Identity(), key: k.Key, end: true}
	if b, ok := m.lookup(k.Key); ok && b.id == c.id {
		c.ptr, c.end = b.ptr, false
	}
	return c
}

// End reports whether the cursor is past the last matching entry.
func (c Cursor[V]) End() bool { return c.end }

// Key returns the key of the current entry
func (c Cursor[V]) Key() key.Key { return c.key }

// Value returns a pointer to the current value, or nil at the end.
func (c Cursor[V]) Value() *V {
	if c.end {
		return nil
	}
	ptr, _ := c.ptr.(*V)
	return ptr
}

// Next advances to the next entry, in key order, whose key and stored value
// both have type V.
func (c *Cursor[V]) Next() {
	if c.end {
		return
	}
	c.end, c.ptr = true, nil
	c.m.tree.AscendGreaterOrEqual(entry{key: c.key}, func(e entry) bool {
		if e.key == c.key {
			return true
		}
		if e.key.Identity() != c.id || e.box.id != c.id {
			return true
		}
		c.key, c.ptr, c.end = e.key, e.box.ptr, false
		return false
	})
}
