package key

import (
	"fmt"
	"strings"

	"github.com/viant/hmap/identity"
)

// Key is a type-erased key: a text plus the identity of the value type.
// Keys are comparable with == and ordered by Compare.
type Key struct {
	text string
	id   *identity.Identity
}

// Keyer is implemented by every key form accepted by the run-time map.
type Keyer interface {
	Erased() Key
}

// New creates an erased key; id must not be nil.
func New(text string, id *identity.Identity) Key {
	return Key{text: text, id: id}
}

// Named creates an erased key for a registered type name (see identity.Lookup).
func Named(text, typeName string) (Key, error) {
	id, ok := identity.Lookup(typeName)
	if !ok {
		return Key{}, fmt.Errorf("key %q: unknown type %q", text, typeName)
	}
	return New(text, id), nil
}

// Text returns the key text
func (k Key) Text() string { return k.text }

// Identity returns the identity of the declared value type
func (k Key) Identity() *identity.Identity { return k.id }

// Erased returns k
func (k Key) Erased() Key { return k }

// IsZero reports whether k was never constructed.
func (k Key) IsZero() bool { return k.id == nil }

// Compare orders keys by text, then by type identity.
func (k Key) Compare(o Key) int {
	if c := strings.Compare(k.text, o.text); c != 0 {
		return c
	}
	switch {
	case k.id == o.id:
		return 0
	case k.id == nil:
		return -1
	case o.id == nil:
		return 1
	}
	return k.id.Compare(o.id)
}

// Less reports whether k sorts before o.
func (k Key) Less(o Key) bool { return k.Compare(o) < 0 }

func (k Key) String() string {
	if k.id == nil {
		return fmt.Sprintf("%q", k.text)
	}
	return fmt.Sprintf("%q:%s", k.text, k.id.Name())
}

// Typed is a key whose value type is known statically.
type Typed[V any] struct {
	Key
}

// Of creates a key for values of type V.
func Of[V any](text string) Typed[V] {
	return Typed[V]{Key: New(text, identity.Of[V]())}
}

// Shared creates a key whose values are held through a shared *V handle
// rather than inline.
func Shared[V any](text string) Typed[*V] {
	return Of[*V](text)
}
