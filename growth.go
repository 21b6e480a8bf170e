package turtls

import (
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// GrowthAnalysis records how fast an L-system's string grows across
// expansion levels. Growth is the inherent exponential blowup of the
// grammar, so the analysis is the practical way to pick a level and
// MaxChars budget before drawing.
type GrowthAnalysis struct {
	Axiom   string
	Rules   Rules
	Lengths []int     // string length per level, index 0 is the axiom
	Ratios  []float64 // Lengths[i+1]/Lengths[i]
}

// AnalyseGrowth expands the axiom level by level and collects the
// string length of every generation together with the per-generation
// growth ratios.
func AnalyseGrowth(axiom string, rules Rules, levels int) GrowthAnalysis {
	generations := ExpandLevels(axiom, rules, levels)
	analysis := GrowthAnalysis{
		Axiom:   axiom,
		Rules:   rules,
		Lengths: make([]int, len(generations)),
	}
	for i, g := range generations {
		analysis.Lengths[i] = len(g)
	}
	for i := 1; i < len(analysis.Lengths); i++ {
		prev := analysis.Lengths[i-1]
		if prev == 0 {
			analysis.Ratios = append(analysis.Ratios, 0)
			continue
		}
		analysis.Ratios = append(analysis.Ratios, float64(analysis.Lengths[i])/float64(prev))
	}
	return analysis
}

// AverageRatio is the mean per-level growth factor.
func (a *GrowthAnalysis) AverageRatio() float64 {
	if len(a.Ratios) == 0 {
		return 1
	}
	total := 0.0
	for _, r := range a.Ratios {
		total += r
	}
	return total / float64(len(a.Ratios))
}

// RenderChart renders the per-level string lengths as a bar chart.
func (a *GrowthAnalysis) RenderChart(w io.Writer) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{
		Title: "L-system Growth Analysis",
		Subtitle: "String length per expansion level of `" + a.Axiom + "` under `" +
			a.Rules.String() + "` (avg growth " +
			strconv.FormatFloat(a.AverageRatio(), 'f', 4, 64) + ")",
	}))

	barItems := make([]opts.BarData, len(a.Lengths))
	labels := make([]string, len(a.Lengths))
	for i, length := range a.Lengths {
		barItems[i] = opts.BarData{Value: length}
		labels[i] = strconv.Itoa(i)
	}

	bar.SetXAxis(labels).
		AddSeries("characters", barItems)
	return bar.Render(w)
}

func (a *GrowthAnalysis) handler(w http.ResponseWriter, _ *http.Request) {
	if err := a.RenderChart(w); err != nil {
		panic(err)
	}
}

// Serve exposes the growth chart over HTTP at /growth.
func (a *GrowthAnalysis) Serve(addr string) error {
	log.Println("Registering growth chart handler for axiom", a.Axiom)
	http.HandleFunc("/growth", a.handler)
	return http.ListenAndServe(addr, nil)
}
