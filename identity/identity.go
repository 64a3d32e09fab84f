package identity

import (
	"reflect"
	"sync/atomic"
	"time"

	"github.com/viant/hmap/internal/syncmap"
	"github.com/viant/x"
)

// Identity represents a single value type.
type Identity struct {
	ordinal uint64
	rType   reflect.Type
	xType   *x.Type
}

var (
	ordinals   atomic.Uint64
	identities = syncmap.NewRegistry[reflect.Type, *Identity]()
	named      = x.NewRegistry()
)

func init() {
	for _, t := range []reflect.Type{
		reflect.TypeOf(false),
		reflect.TypeOf(""),
		reflect.TypeOf(0), reflect.TypeOf(int8(0)), reflect.TypeOf(int16(0)), reflect.TypeOf(int32(0)), reflect.TypeOf(int64(0)),
		reflect.TypeOf(uint(0)), reflect.TypeOf(uint8(0)), reflect.TypeOf(uint16(0)), reflect.TypeOf(uint32(0)), reflect.TypeOf(uint64(0)),
		reflect.TypeOf(float32(0)), reflect.TypeOf(float64(0)),
		reflect.TypeOf(time.Time{}), reflect.TypeOf(time.Duration(0)),
	} {
		ByType(t)
	}
}

// Of returns the identity of V.
func Of[V any]() *Identity {
	return ByType(reflect.TypeOf((*V)(nil)).Elem())
}

// ByType returns the identity of t; t must not be nil.
func ByType(t reflect.Type) *Identity {
	return identities.GetOrCreate(t, func() *Identity {
		ret := &Identity{ordinal: ordinals.Add(1), rType: t, xType: x.NewType(t)}
		if t.Name() != "" {
			named.Register(ret.xType)
		}
		return ret
	})
}

// Lookup returns the identity of a named type, e.g. "int", "time.Time" or
// "github.com/acme/music.Label". Only types that already have an identity can
// be found.
func Lookup(name string) (*Identity, bool) {
	xType := named.Lookup(name)
	if xType == nil || xType.Type == nil {
		return nil, false
	}
	ret, ok := identities.Get(xType.Type)
	return ret, ok
}

// Count returns the number of identities created so far.
func Count() int { return identities.Len() }

// Type returns the described type
func (i *Identity) Type() reflect.Type { return i.rType }

// Ordinal returns the creation order of the identity, starting at 1.
func (i *Identity) Ordinal() uint64 { return i.ordinal }

// Name returns the registry key for named types and the type literal otherwise.
func (i *Identity) Name() string {
	if i.rType.Name() != "" {
		return i.xType.Key()
	}
	return i.rType.String()
}

func (i *Identity) String() string { return i.rType.String() }

// Compare orders identities by creation ordinal.
func (i *Identity) Compare(o *Identity) int {
	switch {
	case i.ordinal < o.ordinal:
		return -1
	case i.ordinal > o.ordinal:
		return 1
	}
	return 0
}

// New returns a pointer to a new zero value of the described type.
func (i *Identity) New() any {
	return reflect.New(i.rType).Interface()
}
