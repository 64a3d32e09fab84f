// Package identity hands out one process-wide Identity per Go type.  Identities
// are created lazily on first use, never mutated and never released; their
// pointer is what keys compare, and their creation ordinal gives keys sharing
// a text a stable total order.
//
// Named types are also recorded in a github.com/viant/x registry so that an
// identity can be resolved from a type name at run time (see Lookup).
package identity
