package syncmap

import "sync"

// Map is a thread-safe generic map structure
type Map[K comparable, T any] struct {
	mux sync.RWMutex
	m   map[K]T
}

// NewRegistry creates a new instance of Map
func NewRegistry[K comparable, T any]() *Map[K, T] {
	return &Map[K, T]{
		m: make(map[K]T),
	}
}

// Get retrieves an item by key
func (r *Map[K, T]) Get(key K) (T, bool) {
	r.mux.RLock()
	defer r.mux.RUnlock()
	v, ok := r.m[key]
	return v, ok
}

// GetOrCreate returns the item stored under key, creating it with create when
// absent. create runs under the write lock, so it is invoked at most once per
// key and must not call back into the same Map.
func (r *Map[K, T]) GetOrCreate(key K, create func() T) T {
	if v, ok := r.Get(key); ok {
		return v
	}
	r.mux.Lock()
	defer r.mux.Unlock()
	if v, ok := r.m[key]; ok {
		return v
	}
	v := create()
	r.m[key] = v
	return v
}

// Set adds or updates an item by key
func (r *Map[K, T]) Set(key K, value T) {
	r.mux.Lock()
	defer r.mux.Unlock()
	r.m[key] = value
}

// Len returns the number of items
func (r *Map[K, T]) Len() int {
	r.mux.RLock()
	defer r.mux.RUnlock()
	return len(r.m)
}
