package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Source string         `json:"source"`
	Values []string       `json:"values"`
	ByKind map[string]int `json:"by_kind"`
}

func TestByName(t *testing.T) {
	for _, name := range Names() {
		c, ok := ByName(name)
		require.True(t, ok, name)
		assert.Equal(t, name, c.Name())
	}

	_, ok := ByName("msgpack")
	assert.False(t, ok)
}

func TestCodecsAgree(t *testing.T) {
	in := sample{
		Source: "mem://a.txt",
		Values: []string{"18446744073709551615", "-9223372036854775808"},
		ByKind: map[string]int{"invalid_syntax": 2},
	}

	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			c, _ := ByName(name)

			data, err := c.Marshal(in)
			require.NoError(t, err)

			var out sample
			require.NoError(t, c.Unmarshal(data, &out))
			assert.Equal(t, in, out)

			// Output must be readable by every other codec.
			var std sample
			require.NoError(t, JSON{}.Unmarshal(data, &std))
			assert.Equal(t, in, std)
		})
	}
}

func TestGoJSONIndent(t *testing.T) {
	data, err := GoJSON{Indent: "  "}.Marshal(map[string]int{"a": 1})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1\n}", string(data))
}

func TestAppend(t *testing.T) {
	out, err := GoJSON{}.Append([]byte("x="), []int{1, 2})
	require.NoError(t, err)
	assert.Equal(t, "x=[1,2]", string(out))
}

func TestMustMarshal(t *testing.T) {
	assert.Equal(t, `"a"`, string(MustMarshal(nil, "a")))
	assert.Panics(t, func() { MustMarshal(JSON{}, make(chan int)) })
}
