package static

import (
	"errors"
	"fmt"
)

// Error codes reported while building a compile-time map.
const (
	UnknownKey          = "UnknownKey"
	WrongValueType      = "WrongValueType"
	DuplicateKey        = "DuplicateKey"
	InvalidSchema       = "InvalidSchema"
	IdentifierCollision = "IdentifierCollision"
)

// Error is the build time error of a compile-time map.
type Error struct {
	Code string
	Key  string
	Msg  string
}

func (e *Error) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Msg)
	}
	return fmt.Sprintf("%s: key %q: %s", e.Code, e.Key, e.Msg)
}

// NewError creates an Error
func NewError(code, key, msg string) *Error {
	return &Error{Code: code, Key: key, Msg: msg}
}

// HasCode reports whether err is an Error with code.
func HasCode(err error, code string) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}
