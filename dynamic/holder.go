package dynamic

import (
	"github.com/viant/hmap/identity"
	"github.com/viant/hmap/key"
)

// Held is an erased optional value produced by Checkout or CopyOut. A held
// value from Checkout is owned by the holder; one from CopyOut refers to the
// value still stored in the map.
type Held struct {
	key key.Key
	id  *identity.Identity
	ptr any
}

// Key returns the key the value was read with.
func (h Held) Key() key.Key { return h.key }

// Present reports whether the holder is filled.
func (h Held) Present() bool { return h.ptr != nil }

// Hold wraps a typed optional into an erased holder for Checkin or CopyIn.
func Hold[V any](k key.Typed[V], o Optional[V]) Held {
	h := Held{key: k.Key}
	if v, ok := o.Get(); ok {
		h.id, h.ptr = k.Identity(), &v
	}
	return h
}

// Pointer returns the held value as *V, or nil when the holder is empty or
// holds another type.
func Pointer[V any](h Held) *V {
	if h.ptr == nil || h.id != identity.Of[V]() {
		return nil
	}
	ptr, _ := h.ptr.(*V)
	return ptr
}

// Value returns a copy of the held value as V.
func Value[V any](h Held) Optional[V] {
	if ptr := Pointer[V](h); ptr != nil {
		return Some(*ptr)
	}
	return None[V]()
}

// Checkout detaches the values stored under keys, one holder per key, and
// removes their entries. Absent keys yield empty holders.
func (m *Map) Checkout(keys ...key.Keyer) []Held {
	ret := make([]Held, len(keys))
	for i, k := range keys {
		erased := k.Erased()
		ret[i] = Held{key: erased}
		if b, ok := m.detach(erased); ok {
			ret[i].id, ret[i].ptr = b.id, b.ptr
			m.arena.release(b)
		}
	}
	return ret
}

// Checkin writes each filled holder back under the key at the same position
// and empties it. Values are written into the existing slot when there is
// one, otherwise into a new zero value. Empty holders and holders whose type
// differs from the key's are skipped.
func (m *Map) Checkin(held []Held, keys ...key.Keyer) {
	for i := 0; i < len(held) && i < len(keys); i++ {
		if m.writeBack(held[i], keys[i].Erased()) {
			held[i] = Held{key: held[i].key}
		}
	}
}

// CopyOut returns holders referring to the values stored under keys without
// removing them. Absent keys yield empty holders.
func (m *Map) CopyOut(keys ...key.Keyer) []Held {
	ret := make([]Held, len(keys))
	for i, k := range keys {
		erased := k.Erased()
		ret[i] = Held{key: erased}
		if b, ok := m.lookup(erased); ok {
			ret[i].id, ret[i].ptr = b.id, b.ptr
		}
	}
	return ret
}

// CopyIn is Checkin that leaves the holders untouched.
func (m *Map) CopyIn(held []Held, keys ...key.Keyer) {
	for i := 0; i < len(held) && i < len(keys); i++ {
		m.writeBack(held[i], keys[i].Erased())
	}
}

func (m *Map) writeBack(h Held, k key.Key) bool {
	if !h.Present() || k.IsZero() || h.id != k.Identity() {
		return false
	}
	b, ok := m.lookup(k)
	if !ok {
		b = m.arena.box(k.Identity(), k.Identity().New())
		m.put(k, b)
	} else if b.id != h.id {
		return false
	}
	if b.ptr != h.ptr {
		assign(b.ptr, h.ptr)
	}
	return true
}

// CheckoutOne detaches the value stored under k.
func CheckoutOne[V any](m *Map, k key.Typed[V]) Optional[V] {
	return Value[V](m.Checkout(k)[0])
}

// CheckinOne writes a filled optional back under k.
func CheckinOne[V any](m *Map, o Optional[V], k key.Typed[V]) {
	v, ok := o.Get()
	if !ok {
		return
	}
	if ptr, err := Index(m, k); err == nil {
		*ptr = v
	}
}

// CopyOutOne returns a pointer to the value stored under k, or nil.
func CopyOutOne[V any](m *Map, k key.Typed[V]) *V {
	if c := Find(m, k); !c.End() {
		return c.Value()
	}
	return nil
}

// CopyOutValue returns a copy of the value stored under k.
func CopyOutValue[V any](m *Map, k key.Typed[V]) Optional[V] {
	if ptr := CopyOutOne(m, k); ptr != nil {
		return Some(*ptr)
	}
	return None[V]()
}
