package key

import (
	"fmt"
	"reflect"

	"github.com/viant/hmap/internal/conv"
)

// Entry pairs a key with a value of the key's declared type, ready to be
// loaded into a run-time map.
type Entry struct {
	Key Key
	ptr any
}

// With pairs k with v.
func With[V any](k Typed[V], v V) Entry {
	return Entry{Key: k.Key, ptr: &v}
}

// Convert pairs k with a value of its declared type constructed from v.
func Convert(k Keyer, v any) (Entry, error) {
	erased := k.Erased()
	if erased.IsZero() {
		return Entry{}, fmt.Errorf("key %q: missing type identity", erased.Text())
	}
	ptr := erased.Identity().New()
	if err := conv.Convert(v, ptr); err != nil {
		return Entry{}, fmt.Errorf("failed to construct %v for key %v: %w", erased.Identity(), erased, err)
	}
	return Entry{Key: erased, ptr: ptr}, nil
}

// Pointer returns a pointer to the paired value; its element type is the
// key's declared type.
func (e Entry) Pointer() any { return e.ptr }

// Value returns the paired value, or nil for a zero Entry.
func (e Entry) Value() any {
	if e.ptr == nil {
		return nil
	}
	return reflect.ValueOf(e.ptr).Elem().Interface()
}
