// Package dynamic implements the run-time heterogeneous map.
//
// A Map is an ordered container keyed by key.Key, i.e. by (text, type
// identity).  Values are stored behind type erasure and every typed access
// re-checks the stored identity against the requested key, so a text stored
// under one type never satisfies a lookup for another type.
//
// Typed access goes through package level generic functions (Index, At, Get,
// Find, TryEmplace, InsertOrAssign); batch transfers use erased keys and never
// expose the concrete value type to the caller:
//
//   - Extract / Insert move entries between maps (or re-key them within one)
//     through opaque one-shot Capsules.
//   - Checkout / Checkin detach values into Held holders and put them back.
//   - CopyOut / CopyIn read and write values without detaching them.
//
// Batch transfers are total: a missing key yields an empty capsule or holder
// and inserting an empty one does nothing.
//
// UnsafeStore is the only operation that can store a value whose type differs
// from the key's declared type.  Typed accessors report such entries with a
// TypeMismatchError and Find treats them as absent.
//
// A Map is not safe for concurrent use by multiple writers.
package dynamic
