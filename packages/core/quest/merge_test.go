package quest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestMerge(t *testing.T) {
	tests := []struct {
		name     string
		layers   []Layer
		expected map[string]ValueSource
	}{
		{
			name:     "no layers",
			layers:   nil,
			expected: map[string]ValueSource{},
		},
		{
			name:   "single layer",
			layers: []Layer{{lit("a", "1"), lit("b", "2")}},
			expected: map[string]ValueSource{
				"a": Literal("1"),
				"b": Literal("2"),
			},
		},
		{
			name: "later layer overrides earlier",
			layers: []Layer{
				{lit("a", "global"), lit("b", "global")},
				{lit("a", "quest")},
				{lit("b", "override")},
			},
			expected: map[string]ValueSource{
				"a": Literal("quest"),
				"b": Literal("override"),
			},
		},
		{
			name:   "duplicate within a layer keeps the last",
			layers: []Layer{{lit("a", "first"), lit("a", "second")}},
			expected: map[string]ValueSource{
				"a": Literal("second"),
			},
		},
		{
			name: "env ref replaced by literal",
			layers: []Layer{
				{env("token", "TOKEN")},
				{lit("token", "inline")},
			},
			expected: map[string]ValueSource{
				"token": Literal("inline"),
			},
		},
		{
			name: "names are case sensitive",
			layers: []Layer{
				{lit("Hello", "upper")},
				{lit("hello", "lower")},
			},
			expected: map[string]ValueSource{
				"Hello": Literal("upper"),
				"hello": Literal("lower"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Merge(tt.layers...))
		})
	}
}

func TestMerge_DoesNotMutateInputs(t *testing.T) {
	global := Layer{lit("a", "1")}
	questLayer := Layer{lit("a", "2")}

	first := Merge(global, questLayer)
	first["a"] = Literal("changed")
	first["new"] = Literal("x")

	second := Merge(global, questLayer)
	assert.Equal(t, map[string]ValueSource{"a": Literal("2")}, second)
	assert.Equal(t, Layer{lit("a", "1")}, global)
}

func genLayer(t *rapid.T, label string) Layer {
	names := rapid.SampledFrom([]string{"a", "b", "c", "d"})
	return rapid.Custom(func(t *rapid.T) Layer {
		n := rapid.IntRange(0, 6).Draw(t, "len")
		l := make(Layer, 0, n)
		for i := 0; i < n; i++ {
			l = append(l, lit(names.Draw(t, "name"), rapid.String().Draw(t, "value")))
		}
		return l
	}).Draw(t, label)
}

// The value for a key is the last definition in the rightmost layer that
// defines it; keys no layer defines are absent.
func TestMerge_PropertyBased_LastWriteWins(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		layers := []Layer{genLayer(t, "global"), genLayer(t, "quest"), genLayer(t, "override")}
		merged := Merge(layers...)

		for _, key := range []string{"a", "b", "c", "d"} {
			var want ValueSource
			for _, layer := range layers {
				for _, e := range layer {
					if e.Name == key {
						want = e.Source
					}
				}
			}

			got, ok := merged[key]
			if want == nil {
				assert.False(t, ok, "key %q should be absent", key)
				continue
			}
			assert.True(t, ok, "key %q should be present", key)
			assert.Equal(t, want, got)
		}
	})
}

func TestMerge_PropertyBased_Associative(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a, b, c := genLayer(t, "a"), genLayer(t, "b"), genLayer(t, "c")

		flat := Merge(a, b, c)
		ab := append(append(Layer{}, a...), b...)
		assert.Equal(t, flat, Merge(ab, c))
	})
}
