package dynamic

import (
	"fmt"

	"github.com/viant/hmap/key"
)

// cast returns the typed pointer held by b, re-checking the identity.
func cast[V any](k key.Key, b *box) (*V, error) {
	if b.id == k.Identity() {
		if ptr, ok := b.ptr.(*V); ok {
			return ptr, nil
		}
	}
	return nil, &TypeMismatchError{Key: k, Stored: b.id}
}

// Index returns a pointer to the value stored under k, inserting the zero
// value of V first when the key is absent.
func Index[V any](m *Map, k key.Typed[V]) (*V, error) {
	if k.IsZero() {
		return nil, fmt.Errorf("index %q: %w", k.Text(), ErrZeroKey)
	}
	if b, ok := m.lookup(k.Key); ok {
		return cast[V](k.Key, b)
	}
	ptr := new(V)
	m.put(k.Key, m.arena.box(k.Identity(), ptr))
	return ptr, nil
}

// At returns a pointer to the value stored under k.
func At[V any](m *Map, k key.Typed[V]) (*V, error) {
	b, ok := m.lookup(k.Key)
	if !ok {
		return nil, &KeyNotFoundError{Key: k.Key}
	}
	return cast[V](k.Key, b)
}

// Get returns a copy of the value stored under k.
func Get[V any](m *Map, k key.Typed[V]) (V, error) {
	ptr, err := At(m, k)
	if err != nil {
		var zero V
		return zero, err
	}
	return *ptr, nil
}

// TryEmplace stores v under k unless the key is present. It returns a pointer
// to the stored value and whether v was inserted; the pointer is nil when the
// present entry fails the type check or k is a zero key.
func TryEmplace[V any](m *Map, k key.Typed[V], v V) (*V, bool) {
	if k.IsZero() {
		return nil, false
	}
	if b, ok := m.lookup(k.Key); ok {
		ptr, _ := cast[V](k.Key, b)
		return ptr, false
	}
	ptr := &v
	m.put(k.Key, m.arena.box(k.Identity(), ptr))
	return ptr, true
}

// InsertOrAssign stores v under k, replacing any present holder. It returns
// a pointer to the stored value and whether the key was newly inserted. A
// zero key stores nothing.
func InsertOrAssign[V any](m *Map, k key.Typed[V], v V) (*V, bool) {
	if k.IsZero() {
		return nil, false
	}
	_, present := m.lookup(k.Key)
	ptr := &v
	m.put(k.Key, m.arena.box(k.Identity(), ptr))
	return ptr, !present
}

// UnsafeStore inserts or assigns value under k without checking that the
// value has the key's declared type. The caller guarantees that it does;
// otherwise At, Index and Get on that key report a TypeMismatchError, Find
// treats the entry as absent, transfers convert it on a best-effort basis and
// Checkout followed by Checkin drops it, since the checked out holder no
// longer matches the key's type.
func (m *Map) UnsafeStore(k key.Keyer, value any) {
	erased := k.Erased()
	if erased.IsZero() {
		return
	}
	m.put(erased, m.arena.wrap(erased.Identity(), value))
}
