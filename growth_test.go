package turtls

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyseGrowth(t *testing.T) {
	analysis := AnalyseGrowth("F", ParseRules("F F+F-F-F+F"), 2)
	require.Equal(t, []int{1, 9, 49}, analysis.Lengths)
	require.Len(t, analysis.Ratios, 2)
	assert.InDelta(t, 9, analysis.Ratios[0], 1e-9)
	assert.InDelta(t, 49.0/9.0, analysis.Ratios[1], 1e-9)
}

func TestAnalyseGrowthConstantSystem(t *testing.T) {
	analysis := AnalyseGrowth("abc", nil, 3)
	assert.Equal(t, []int{3, 3, 3, 3}, analysis.Lengths)
	assert.InDelta(t, 1, analysis.AverageRatio(), 1e-9)
}

func TestAnalyseGrowthZeroLevels(t *testing.T) {
	analysis := AnalyseGrowth("F", Rules{'F': "FF"}, 0)
	assert.Equal(t, []int{1}, analysis.Lengths)
	assert.Empty(t, analysis.Ratios)
	assert.InDelta(t, 1, analysis.AverageRatio(), 1e-9)
}

func TestAnalyseGrowthVanishingSystem(t *testing.T) {
	analysis := AnalyseGrowth("F", Rules{'F': ""}, 2)
	assert.Equal(t, []int{1, 0, 0}, analysis.Lengths)
	// Ratio after an empty generation is reported as zero.
	assert.Equal(t, []float64{0, 0}, analysis.Ratios)
}

func TestRenderChart(t *testing.T) {
	analysis := AnalyseGrowth("F", Rules{'F': "F+F"}, 3)
	var sb strings.Builder
	require.NoError(t, analysis.RenderChart(&sb))
	out := sb.String()
	assert.Contains(t, out, "L-system Growth Analysis")
	assert.Contains(t, out, "echarts")
}
