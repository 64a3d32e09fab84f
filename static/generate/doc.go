// Package generate emits the Go source of a compile-time map described by a
// schema. The emitted map is a tree of nested structs mirroring the balanced
// key tree, one tag type per key and typed accessors, so that a lookup with
// an unknown key or a mismatching value type fails type checking.
package generate
