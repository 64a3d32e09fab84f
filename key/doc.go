// Package key defines the (text, type identity) keys shared by the run-time
// and compile-time maps.  The same text under two different types denotes two
// unrelated keys.
package key
