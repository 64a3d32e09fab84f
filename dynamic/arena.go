package dynamic

import (
	"reflect"
	"sync"

	"github.com/viant/hmap/identity"
)

// box is the type-erased value holder: ptr always holds a *T where T is the
// type described by id.
type box struct {
	id  *identity.Identity
	ptr any
}

// Arena allocates and recycles value holders.  Maps sharing an Arena have
// compatible storage: Insert moves holders between them without copying the
// value.  Maps without an explicit arena share the default one.
type Arena struct {
	pool sync.Pool
}

var defaultArena = NewArena()

// NewArena creates an arena
func NewArena() *Arena {
	return &Arena{pool: sync.Pool{New: func() any { return &box{} }}}
}

func (a *Arena) box(id *identity.Identity, ptr any) *box {
	b := a.pool.Get().(*box)
	b.id, b.ptr = id, ptr
	return b
}

// wrap boxes a copy of value as the type described by id. A nil value
// becomes the zero value; a value not assignable to the type keeps its own
// identity, which typed accessors later report as a mismatch.
func (a *Arena) wrap(id *identity.Identity, value any) *box {
	ptr := id.New()
	if value == nil {
		return a.box(id, ptr)
	}
	rValue := reflect.ValueOf(value)
	if rValue.Type().AssignableTo(id.Type()) {
		reflect.ValueOf(ptr).Elem().Set(rValue)
		return a.box(id, ptr)
	}
	own := reflect.New(rValue.Type())
	own.Elem().Set(rValue)
	return a.box(identity.ByType(rValue.Type()), own.Interface())
}

// copy boxes a copy of the value held by b.
func (a *Arena) copy(b *box) *box {
	ptr := b.id.New()
	reflect.ValueOf(ptr).Elem().Set(reflect.ValueOf(b.ptr).Elem())
	return a.box(b.id, ptr)
}

func (a *Arena) release(b *box) {
	if b == nil {
		return
	}
	*b = box{}
	a.pool.Put(b)
}

func deref(ptr any) any {
	return reflect.ValueOf(ptr).Elem().Interface()
}

// assign copies the value held by src into the value held by dst; both must
// hold the same type.
func assign(dst, src any) {
	reflect.ValueOf(dst).Elem().Set(reflect.ValueOf(src).Elem())
}
