package conv

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/viant/hmap/internal/syncmap"
)

type pair struct {
	from reflect.Type
	to   reflect.Type
}

// converters holds conversions declared with Register.
var converters = syncmap.NewRegistry[pair, func(any) (any, error)]()

// Register declares a conversion from From to To.  Registered conversions take
// precedence over the numeric and JSON fallbacks of Convert.
func Register[From, To any](fn func(From) (To, error)) {
	from := reflect.TypeOf((*From)(nil)).Elem()
	to := reflect.TypeOf((*To)(nil)).Elem()
	converters.Set(pair{from: from, to: to}, func(in any) (any, error) {
		return fn(in.(From))
	})
}

// Convert performs a best-effort conversion of the input value into the type
// pointed to by outPtr.
//
// Fast-path: when input is already assignable to the destination element type
// it is copied directly. Numeric kinds are converted with reflect, then
// registered conversions are tried. Otherwise Convert falls back to JSON
// marshal/unmarshal round-trip which handles the majority of simple
// struct/map cases.
//
// A nil input leaves outPtrʼs value untouched (zero value).
func Convert(in any, outPtr any) error {
	if outPtr == nil {
		return fmt.Errorf("conv.Convert: outPtr cannot be nil")
	}
	v := reflect.ValueOf(outPtr)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return fmt.Errorf("conv.Convert: outPtr must be a non-nil pointer")
	}

	if in == nil {
		return nil // leave zero value
	}

	inVal := reflect.ValueOf(in)
	destType := v.Elem().Type()
	if inVal.Type().AssignableTo(destType) {
		v.Elem().Set(inVal)
		return nil
	}

	if isNumeric(inVal.Kind()) && isNumeric(destType.Kind()) && inVal.Type().ConvertibleTo(destType) {
		v.Elem().Set(inVal.Convert(destType))
		return nil
	}

	if fn, ok := converters.Get(pair{from: inVal.Type(), to: destType}); ok {
		out, err := fn(in)
		if err != nil {
			return fmt.Errorf("conv.Convert: %v to %v: %w", inVal.Type(), destType, err)
		}
		v.Elem().Set(reflect.ValueOf(out))
		return nil
	}

	// Fallback: JSON round-trip.
	data, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, outPtr)
}

func isNumeric(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
