// Package syncmap offers a lightweight, generic, concurrency-safe map guarded
// by a sync.RWMutex.  Besides plain Get/Set it provides GetOrCreate, which
// runs a constructor at most once per key even under concurrent first use;
// the type identity and converter registries depend on that guarantee.
package syncmap
