// Package chart renders pre-aggregated report series as PNG charts. It is
// a pure sink: it never computes aggregates itself.
package chart

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/SemTiOne/personal-finance-tracker/internal/common"
	"github.com/SemTiOne/personal-finance-tracker/internal/service"
)

// PNGRenderer implements service.ChartRenderer by writing PNG files
// under a configured output directory.
type PNGRenderer struct {
	outputDir string
}

// NewPNGRenderer creates a renderer writing into outputDir.
func NewPNGRenderer(outputDir string) *PNGRenderer {
	return &PNGRenderer{outputDir: outputDir}
}

// RenderPie renders a labeled series as a pie chart and returns the
// artifact path.
func (r *PNGRenderer) RenderPie(title string, values []service.LabeledValue) (string, error) {
	if len(values) == 0 {
		return "", common.ErrNoData
	}

	pieValues := make([]chart.Value, 0, len(values))
	for _, v := range values {
		pieValues = append(pieValues, chart.Value{
			Label: v.Label,
			Value: v.Value.InexactFloat64(),
		})
	}

	pie := chart.PieChart{
		Title:  title,
		Width:  800,
		Height: 800,
		Values: pieValues,
	}

	return r.save(title, pie.Render)
}

// RenderTrend renders an income/expense/balance trend as a line chart.
func (r *PNGRenderer) RenderTrend(title string, points []service.TrendPoint) (string, error) {
	if len(points) == 0 {
		return "", common.ErrNoData
	}

	xValues := make([]float64, len(points))
	income := make([]float64, len(points))
	expense := make([]float64, len(points))
	balance := make([]float64, len(points))
	ticks := make([]chart.Tick, len(points))

	for i, p := range points {
		xValues[i] = float64(i)
		income[i] = p.Income.InexactFloat64()
		expense[i] = p.Expense.InexactFloat64()
		balance[i] = p.Balance.InexactFloat64()
		ticks[i] = chart.Tick{Value: float64(i), Label: p.Period}
	}

	graph := chart.Chart{
		Title:  title,
		Width:  1000,
		Height: 500,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{Ticks: ticks},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Income",
				XValues: xValues,
				YValues: income,
				Style:   chart.Style{StrokeColor: chart.ColorGreen, StrokeWidth: 2},
			},
			chart.ContinuousSeries{
				Name:    "Expenses",
				XValues: xValues,
				YValues: expense,
				Style:   chart.Style{StrokeColor: chart.ColorRed, StrokeWidth: 2},
			},
			chart.ContinuousSeries{
				Name:    "Balance",
				XValues: xValues,
				YValues: balance,
				Style:   chart.Style{StrokeColor: chart.ColorBlue, StrokeWidth: 2},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	return r.save(title, graph.Render)
}

// RenderBudgetBars renders budget limits and actual spending as paired
// bars per category.
func (r *PNGRenderer) RenderBudgetBars(title string, budget, actual []service.LabeledValue) (string, error) {
	if len(budget) == 0 {
		return "", common.ErrNoData
	}

	actuals := make(map[string]float64, len(actual))
	for _, v := range actual {
		actuals[v.Label] = v.Value.InexactFloat64()
	}

	bars := make([]chart.Value, 0, len(budget)*2)
	for _, b := range budget {
		bars = append(bars,
			chart.Value{
				Label: b.Label + " budget",
				Value: b.Value.InexactFloat64(),
				Style: chart.Style{FillColor: chart.ColorAlternateBlue},
			},
			chart.Value{
				Label: b.Label + " actual",
				Value: actuals[b.Label],
				Style: chart.Style{FillColor: chart.ColorOrange},
			},
		)
	}

	barChart := chart.BarChart{
		Title:  title,
		Width:  1200,
		Height: 500,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		BarWidth: 40,
		Bars:     bars,
	}
	barChart.YAxis.ValueFormatter = func(v any) string {
		if vf, ok := v.(float64); ok {
			return fmt.Sprintf("$%.0f", vf)
		}
		return ""
	}

	return r.save(title, barChart.Render)
}

// save renders into a PNG file named after the chart title.
func (r *PNGRenderer) save(title string, render func(chart.RendererProvider, io.Writer) error) (string, error) {
	if err := os.MkdirAll(r.outputDir, 0750); err != nil {
		return "", fmt.Errorf("failed to create reports directory: %w", err)
	}

	path := filepath.Join(r.outputDir, slug(title)+".png")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create chart file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := render(chart.PNG, f); err != nil {
		return "", fmt.Errorf("failed to render chart: %w", err)
	}

	return path, nil
}

func slug(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_', r == '/':
			b.WriteRune('_')
		}
	}
	return b.String()
}
