package dynamic

import (
	"errors"
	"fmt"

	"github.com/viant/hmap/identity"
	"github.com/viant/hmap/key"
)

var (
	// ErrKeyNotFound is matched by every KeyNotFoundError.
	ErrKeyNotFound = errors.New("key not found")
	// ErrTypeMismatch is matched by every TypeMismatchError.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrZeroKey is returned when a key without a type identity is used to
	// store a value.
	ErrZeroKey = errors.New("key has no type identity")
)

// KeyNotFoundError is returned when no entry matches the full key.
type KeyNotFoundError struct {
	Key key.Key
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("key %v not found", e.Key)
}

func (e *KeyNotFoundError) Is(target error) bool { return target == ErrKeyNotFound }

// TypeMismatchError is returned when an entry stored with UnsafeStore holds a
// value of another type than its key declares.
type TypeMismatchError struct {
	Key    key.Key
	Stored *identity.Identity
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("key %v holds a value of type %v", e.Key, e.Stored)
}

func (e *TypeMismatchError) Is(target error) bool { return target == ErrTypeMismatch }
