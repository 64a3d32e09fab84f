// Package schema defines the YAML/JSON model describing a compile-time map
// together with helpers to load and validate schema files.
package schema
