// Package static holds the compile-time heterogeneous map machinery.
//
// Go generics cannot sort string literals during type checking, so the work
// is split between build time and type-check time:
//
//   - Build time: MergeSort orders the (key, type) pairs of a schema with a
//     tournament of 2-way merges, Duplicates rejects repeated keys, Balance
//     assembles a balanced binary tree by splitting at the middle index and
//     Resolve maps every key to the field path of its node.  The generator in
//     static/generate emits that tree as plain nested structs.
//   - Type-check time: every generated key tag T implements Tag[M, V] for
//     exactly one map M and value type V.  At and Get only accept a tag whose
//     V matches, so a wrong-type lookup does not compile, and a key missing
//     from the schema has no tag type at all.
//
// At run time an access is a single field reference; no key comparison
// happens.
package static
