package renderer

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
	"github.com/harryiam/stockunlock"
)

// ValuesChart renders the value series as a terminal line chart.
// Width and height are in terminal cells; zero values pick the
// asciigraph defaults.
func ValuesChart(r *stockunlock.ValueReport, width, height int) string {
	if len(r.Points) == 0 {
		return fmt.Sprintf("no price data for %s, nothing to chart\n", r.Symbol)
	}

	values := make([]float64, 0, len(r.Points))
	for _, point := range r.Points {
		values = append(values, point.Value.InexactFloat64())
	}

	first := r.Points[0].Date
	last := r.Points[len(r.Points)-1].Date
	caption := fmt.Sprintf("%s value in %s, %s to %s", r.Symbol, r.Currency, first, last)

	opts := []asciigraph.Option{asciigraph.Caption(caption)}
	if width > 0 {
		opts = append(opts, asciigraph.Width(width))
	}
	if height > 0 {
		opts = append(opts, asciigraph.Height(height))
	}
	return asciigraph.Plot(values, opts...) + "\n"
}
