package static

import "github.com/viant/hmap/key"

// Tag is implemented by the key tags of a generated map M whose value type
// under that key is V.
type Tag[M any, V any] interface {
	Text() string
	Ref(m *M) *V
}

// Texter is implemented by every key tag.
type Texter interface {
	Text() string
}

// At returns the value stored under tag, which must hold a V:
//
//	static.At[int](m, inventory.InventoryFoo{})
func At[V any, M any, T Tag[M, V]](m *M, tag T) *V {
	return tag.Ref(m)
}

// Key is a fully typed key: a key tag plus the expected value type.
type Key[V any, T Texter] struct {
	tag T
}

// TK creates a fully typed key.
func TK[V any, T Texter](tag T) Key[V, T] {
	return Key[V, T]{tag: tag}
}

// Text returns the key text
func (k Key[V, T]) Text() string { return k.tag.Text() }

// Dynamic returns the equivalent run-time map key.
func (k Key[V, T]) Dynamic() key.Typed[V] { return key.Of[V](k.tag.Text()) }

// Get returns the value stored under k; it only compiles when the map holds
// a V under k's tag.
func Get[V any, M any, T Tag[M, V]](m *M, k Key[V, T]) *V {
	return k.tag.Ref(m)
}

// Dynamic converts k to the equivalent run-time map key.
func Dynamic[V any, T Texter](k Key[V, T]) key.Typed[V] { return k.Dynamic() }
