// Package conv provides small, reflection-based helpers to convert between
// arbitrary Go values.  Convert is used whenever a value has to be rebuilt as
// a different declared type, for example when a detached map entry is
// re-inserted under a key of another type.
package conv
