package key

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/hmap/identity"
)

type recordLabel struct{ Name string }

type company struct{ Name string }

func TestKey_Equality(t *testing.T) {
	assert.True(t, Of[int]("foo") == Of[int]("foo"))
	assert.True(t, Of[int]("foo").Erased() == New("foo", identity.Of[int]()))
	assert.False(t, Of[int]("foo").Erased() == Of[float64]("foo").Erased())
	assert.False(t, Of[recordLabel]("Apple").Erased() == Of[company]("Apple").Erased())
	assert.False(t, Of[int]("foo").Erased() == Of[int]("bar").Erased())
}

func TestKey_Compare(t *testing.T) {
	label, corp := Of[recordLabel]("Apple").Key, Of[company]("Apple").Key
	assert.EqualValues(t, 0, label.Compare(label))
	assert.EqualValues(t, -corp.Compare(label), label.Compare(corp))
	assert.NotEqualValues(t, 0, label.Compare(corp))

	keys := []Key{Of[int]("foo").Key, Of[string]("baz").Key, Of[float64]("bar").Key, corp, label}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
	var texts []string
	for _, k := range keys {
		texts = append(texts, k.Text())
	}
	assert.EqualValues(t, []string{"Apple", "Apple", "bar", "baz", "foo"}, texts)
}

func TestShared(t *testing.T) {
	k := Shared[string]("baz")
	assert.Same(t, identity.Of[*string](), k.Identity())
	assert.EqualValues(t, "baz", k.Text())
}

func TestNamed(t *testing.T) {
	k, err := Named("foo", "int")
	require.NoError(t, err)
	assert.True(t, k == Of[int]("foo").Erased())

	_, err = Named("foo", "no.such.Type")
	assert.Error(t, err)
}

func TestWithAndConvert(t *testing.T) {
	entry := With(Of[string]("baz"), "hello")
	assert.EqualValues(t, "hello", entry.Value())
	assert.True(t, entry.Key == Of[string]("baz").Erased())

	testCases := []struct {
		name      string
		key       Keyer
		input     any
		expect    any
		expectErr bool
	}{
		{name: "identical", key: Of[int]("foo"), input: 1, expect: 1},
		{name: "numeric", key: Of[float64]("bar"), input: 2, expect: float64(2)},
		{name: "struct", key: Of[company]("Apple"), input: recordLabel{Name: "Apple"}, expect: company{Name: "Apple"}},
		{name: "invalid", key: Of[int]("foo"), input: "hello", expectErr: true},
		{name: "zero key", key: Key{}, input: 1, expectErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			entry, err := Convert(tc.key, tc.input)
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.EqualValues(t, tc.expect, entry.Value())
		})
	}
}

func TestKey_String(t *testing.T) {
	assert.EqualValues(t, `"foo":int`, Of[int]("foo").String())
}
