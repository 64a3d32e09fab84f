package dynamic

// Optional is a value that may be absent.
type Optional[V any] struct {
	value V
	ok    bool
}

// Some returns a filled optional
func Some[V any](v V) Optional[V] { return Optional[V]{value: v, ok: true} }

// None returns an empty optional
func None[V any]() Optional[V] { return Optional[V]{} }

// Get returns the value and whether it is present.
func (o Optional[V]) Get() (V, bool) { return o.value, o.ok }

// Present reports whether the optional is filled.
func (o Optional[V]) Present() bool { return o.ok }

// Or returns the value, or def when absent.
func (o Optional[V]) Or(def V) V {
	if o.ok {
		return o.value
	}
	return def
}
