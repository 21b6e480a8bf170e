package turtls

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandLevelZeroIsIdentity(t *testing.T) {
	rules := ParseRules("F F+F-F-F+F")
	assert.Equal(t, "F+G", Expand("F+G", rules, 0))
	assert.Equal(t, "F", Expand("F", nil, 3))
}

func TestExpandKochCurve(t *testing.T) {
	rules := ParseRules("F F+F-F-F+F")
	assert.Equal(t, "F+F-F-F+F", Expand("F", rules, 1))
	assert.Equal(t,
		"F+F-F-F+F+F+F-F-F+F-F+F-F-F+F-F+F-F-F+F+F+F-F-F+F",
		Expand("F", rules, 2))
}

func TestExpandSierpinski(t *testing.T) {
	rules := ParseRules("F F+G-F-G+F G GG")
	assert.Equal(t, "F+G-F-G+F+GG+GG", Expand("F+G+G", rules, 1))
}

func TestExpandLeavesUnknownCharacters(t *testing.T) {
	rules := Rules{'A': "AB"}
	assert.Equal(t, "AB+[]x", Expand("A+[]x", rules, 1))
}

func TestExpandEmptyReplacementDeletes(t *testing.T) {
	rules := Rules{'F': ""}
	assert.Equal(t, "+-", Expand("F+F-F", rules, 1))
}

func TestExpandLevels(t *testing.T) {
	rules := Rules{'A': "AB", 'B': "A"}
	levels := ExpandLevels("A", rules, 4)
	require.Len(t, levels, 5)
	assert.Equal(t, []string{"A", "AB", "ABA", "ABAAB", "ABAABABA"}, levels)
}

func TestExpandLengthNonDecreasing(t *testing.T) {
	rules := ParseRules("F F+G-F-G+F G GG")
	levels := ExpandLevels("F+G+G", rules, 6)
	for i := 1; i < len(levels); i++ {
		assert.GreaterOrEqual(t, len(levels[i]), len(levels[i-1]))
	}
}

func TestParseRules(t *testing.T) {
	rules := ParseRules("F F+G-F-G+F G GG")
	require.Len(t, rules, 2)
	assert.Equal(t, "F+G-F-G+F", rules['F'])
	assert.Equal(t, "GG", rules['G'])
}

func TestParseRulesDropsTrailingToken(t *testing.T) {
	rules := ParseRules("F FF G")
	require.Len(t, rules, 1)
	assert.Equal(t, "FF", rules['F'])
}

func TestParseRulesSkipsMultiCharTokens(t *testing.T) {
	rules := ParseRules("AB x F FF")
	require.Len(t, rules, 1)
	assert.Equal(t, "FF", rules['F'])
}

func TestParseRulesEmpty(t *testing.T) {
	assert.Empty(t, ParseRules(""))
	assert.Empty(t, ParseRules("   \n\t "))
}

func TestCharSet(t *testing.T) {
	cs := NewCharSet("F@}")
	assert.True(t, cs.Contains('F'))
	assert.True(t, cs.Contains('@'))
	assert.False(t, cs.Contains('G'))
	cs.Add('G')
	assert.True(t, cs.Contains('G'))
	assert.Len(t, cs.AsSlice(), 4)
}

func TestBufferPoolSwap(t *testing.T) {
	pool := newBufferPool(4)
	pool.AppendString("abc")
	assert.Equal(t, 3, pool.GetLen())

	pool.Swap()
	pool.ResetWritingHead()
	assert.Zero(t, pool.GetLen())
	assert.Equal(t, []byte("abc"), pool.GetSwap().Bytes())

	pool.Append('x')
	assert.Equal(t, []byte("x"), pool.GetActive().Bytes())

	pool.Reset()
	assert.Zero(t, pool.GetLen())
}

func BenchmarkExpand(b *testing.B) {
	rules := ParseRules("F F+G-F-G+F G GG")
	tests := []struct {
		name  string
		level int
	}{
		{"4", 4},
		{"8", 8},
		{"10", 10},
	}
	for _, tt := range tests {
		b.Run(tt.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				Expand("F+G+G", rules, tt.level)
			}
		})
	}
}

func BenchmarkParseRules(b *testing.B) {
	for i := 0; i < b.N; i++ {
		ParseRules("F F+G-F-G+F G GG X F+X Y Y-X")
	}
}
