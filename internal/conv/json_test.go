package conv

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type label struct {
	Name string `json:"name"`
}

type company struct {
	Name string `json:"name"`
}

type celsius float64

func TestConvert(t *testing.T) {
	Register(func(in celsius) (string, error) {
		return strconv.FormatFloat(float64(in), 'f', 1, 64) + "C", nil
	})

	t.Run("assignable", func(t *testing.T) {
		var out string
		require.NoError(t, Convert("hello", &out))
		assert.EqualValues(t, "hello", out)
	})
	t.Run("numeric", func(t *testing.T) {
		var out int64
		require.NoError(t, Convert(float32(2), &out))
		assert.EqualValues(t, 2, out)
	})
	t.Run("registered", func(t *testing.T) {
		var out string
		require.NoError(t, Convert(celsius(21.5), &out))
		assert.EqualValues(t, "21.5C", out)
	})
	t.Run("json round trip", func(t *testing.T) {
		var out company
		require.NoError(t, Convert(label{Name: "Apple"}, &out))
		assert.EqualValues(t, "Apple", out.Name)
	})
	t.Run("incompatible", func(t *testing.T) {
		var out int
		assert.Error(t, Convert("hello", &out))
	})
	t.Run("nil out", func(t *testing.T) {
		assert.Error(t, Convert(1, nil))
	})
	t.Run("nil input leaves zero", func(t *testing.T) {
		out := 7
		require.NoError(t, Convert(nil, &out))
		assert.EqualValues(t, 7, out)
	})
}
