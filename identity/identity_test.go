package identity

import (
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordLabel struct{ Name string }

type company struct{ Name string }

func TestOf(t *testing.T) {
	assert.Same(t, Of[int](), Of[int]())
	assert.Same(t, Of[recordLabel](), ByType(reflect.TypeOf(recordLabel{})))
	assert.NotSame(t, Of[recordLabel](), Of[company]())
	assert.NotSame(t, Of[int](), Of[int64]())
	assert.NotSame(t, Of[*company](), Of[company]())
	assert.EqualValues(t, reflect.TypeOf(company{}), Of[company]().Type())
}

func TestOf_ConcurrentFirstUse(t *testing.T) {
	type firstUse struct{ A, B int }
	before := Count()

	var wg sync.WaitGroup
	results := make([]*Identity, 64)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Of[firstUse]()
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Same(t, results[0], r)
	}
	assert.EqualValues(t, before+1, Count())
}

func TestIdentity_Compare(t *testing.T) {
	a, b := Of[recordLabel](), Of[company]()
	assert.EqualValues(t, 0, a.Compare(a))
	assert.EqualValues(t, -b.Compare(a), a.Compare(b))
	assert.NotEqualValues(t, a.Ordinal(), b.Ordinal())
}

func TestLookup(t *testing.T) {
	testCases := []struct {
		name   string
		expect reflect.Type
	}{
		{name: "int", expect: reflect.TypeOf(0)},
		{name: "string", expect: reflect.TypeOf("")},
		{name: "float64", expect: reflect.TypeOf(0.0)},
		{name: "time.Time", expect: reflect.TypeOf(time.Time{})},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			id, ok := Lookup(tc.name)
			require.True(t, ok)
			assert.EqualValues(t, tc.expect, id.Type())
			assert.EqualValues(t, tc.name, id.Name())
		})
	}

	_, ok := Lookup("no.such.Type")
	assert.False(t, ok)
}

func TestIdentity_New(t *testing.T) {
	v := Of[company]().New()
	ptr, ok := v.(*company)
	require.True(t, ok)
	assert.EqualValues(t, company{}, *ptr)
	assert.EqualValues(t, "[]int", Of[[]int]().Name())
}
