// Package inventory holds a generated compile-time map used to exercise the
// static and dynamic packages together.
package inventory

//go:generate go run github.com/viant/hmap/cmd/hmapgen generate -f inventory.yaml -o inventory_gen.go
