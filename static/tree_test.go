package static

import (
	"math"
	"math/rand/v2"
	"sort"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fooBarBaz() []Pair {
	return []Pair{
		{Key: "foo", Type: "int", Value: 1},
		{Key: "bar", Type: "float64", Value: 2.0},
		{Key: "baz", Type: "string", Value: "hello"},
	}
}

func randKey(rng *rand.Rand) string {
	n := rng.IntN(6) + 1
	b := make([]byte, n)
	for i := range b {
		b[i] = byte('a' + rng.IntN(6))
	}
	return string(b)
}

func TestMergeSort(t *testing.T) {
	sorted := MergeSort(fooBarBaz())
	var keys []string
	for _, p := range sorted {
		keys = append(keys, p.Key)
	}
	assert.EqualValues(t, []string{"bar", "baz", "foo"}, keys)
	assert.Nil(t, MergeSort(nil))
}

// TestPropertyMergeSortStable: MergeSort(p) ≡ sort.SliceStable(p, by key)
func TestPropertyMergeSortStable(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range 500 {
		pairs := make([]Pair, rng.IntN(40))
		for i := range pairs {
			pairs[i] = Pair{Key: randKey(rng), Value: i}
		}
		expect := append([]Pair(nil), pairs...)
		sort.SliceStable(expect, func(i, j int) bool { return expect[i].Key < expect[j].Key })
		actual := MergeSort(pairs)
		if len(expect) == 0 {
			assert.Empty(t, actual)
			continue
		}
		require.EqualValues(t, expect, actual)
	}
}

func TestDuplicates(t *testing.T) {
	_, err := Build([]Pair{
		{Key: "foo", Type: "int"},
		{Key: "bar", Type: "int"},
		{Key: "foo", Type: "float64"},
	})
	require.Error(t, err)
	assert.True(t, HasCode(err, DuplicateKey))
	assert.Contains(t, err.Error(), `"foo"`)

	_, err = Build(fooBarBaz())
	assert.NoError(t, err)
}

func TestBalance(t *testing.T) {
	tree, err := Build(fooBarBaz())
	require.NoError(t, err)
	root, ok := tree.(*Node)
	require.True(t, ok)
	assert.EqualValues(t, "baz", root.Pair.Key)
	assert.EqualValues(t, "bar", root.Left.(*Node).Pair.Key)
	assert.EqualValues(t, "foo", root.Right.(*Node).Pair.Key)
	assert.EqualValues(t, Empty{}, root.Left.(*Node).Left)
	assert.EqualValues(t, 3, tree.Len())
	assert.EqualValues(t, 2, tree.Depth())

	assert.EqualValues(t, Empty{}, Balance(nil))
}

func TestBalance_DepthBound(t *testing.T) {
	for n := 0; n <= 300; n++ {
		pairs := make([]Pair, n)
		for i := range pairs {
			pairs[i] = Pair{Key: strconv.Itoa(100000 + i)}
		}
		tree := Balance(pairs)
		bound := int(math.Ceil(math.Log2(float64(n + 1))))
		require.EqualValues(t, n, tree.Len())
		require.LessOrEqual(t, tree.Depth(), bound, "n=%d", n)

		index := 0
		Walk(tree, func(path Path, node *Node) {
			require.EqualValues(t, index, node.Index)
			require.EqualValues(t, pairs[index].Key, node.Pair.Key)
			index++
		})
	}
}

func TestResolve(t *testing.T) {
	tree, err := Build(fooBarBaz())
	require.NoError(t, err)

	testCases := []struct {
		name     string
		text     string
		typ      string
		selector string
		code     string
	}{
		{name: "typed", text: "foo", typ: "int", selector: "root.right"},
		{name: "inferred", text: "baz", selector: "root"},
		{name: "left", text: "bar", typ: "float64", selector: "root.left"},
		{name: "wrong type", text: "foo", typ: "float64", code: WrongValueType},
		{name: "unknown inferred", text: "bang", code: UnknownKey},
		{name: "unknown typed", text: "bang", typ: "int", code: UnknownKey},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			node, path, err := Resolve(tree, tc.text, tc.typ)
			if tc.code != "" {
				require.Error(t, err)
				assert.True(t, HasCode(err, tc.code), err.Error())
				return
			}
			require.NoError(t, err)
			assert.EqualValues(t, tc.text, node.Pair.Key)
			assert.EqualValues(t, tc.selector, path.Selector("root"))
		})
	}
}

// TestPropertyBuildReadBack: every pair of a built tree resolves to the value
// it was built with.
func TestPropertyBuildReadBack(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	types := []string{"int", "string", "float64", "bool"}
	for range 300 {
		seen := map[string]bool{}
		var pairs []Pair
		for range rng.IntN(50) {
			k := randKey(rng)
			if seen[k] {
				continue
			}
			seen[k] = true
			pairs = append(pairs, Pair{Key: k, Type: types[rng.IntN(len(types))], Value: rng.Int()})
		}
		tree, err := Build(pairs)
		require.NoError(t, err)
		for _, p := range pairs {
			node, _, err := Resolve(tree, p.Key, p.Type)
			require.NoError(t, err)
			assert.EqualValues(t, p.Value, node.Pair.Value)
		}
	}
}
