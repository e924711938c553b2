package report

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/pedrior/os-algorithms/internal/schedulers"
)

// MetricsChart saves a grouped bar chart comparing the average metrics
// of each named discipline. The image format follows the path
// extension; names and metrics pair up index by index.
func MetricsChart(path string, names []string, metrics []schedulers.AverageMetrics) error {
	if len(names) != len(metrics) {
		return fmt.Errorf("mismatched chart data: %d names, %d metric sets", len(names), len(metrics))
	}

	turnaround := make(plotter.Values, len(metrics))
	response := make(plotter.Values, len(metrics))
	wait := make(plotter.Values, len(metrics))
	for i := range metrics {
		turnaround[i] = metrics[i].Turnaround
		response[i] = metrics[i].Response
		wait[i] = metrics[i].Wait
	}

	p := plot.New()
	p.Title.Text = "Scheduling metrics"
	p.Y.Label.Text = "Time units"

	width := vg.Points(20)
	groups := []struct {
		label  string
		values plotter.Values
		offset vg.Length
	}{
		{label: "Turnaround", values: turnaround, offset: -width},
		{label: "Response", values: response, offset: 0},
		{label: "Wait", values: wait, offset: width},
	}
	for i := range groups {
		bars, err := plotter.NewBarChart(groups[i].values, width)
		if err != nil {
			return fmt.Errorf("%w: building %s bars", err, groups[i].label)
		}
		bars.LineStyle.Width = vg.Length(0)
		bars.Color = plotutil.Color(i)
		bars.Offset = groups[i].offset

		p.Add(bars)
		p.Legend.Add(groups[i].label, bars)
	}
	p.Legend.Top = true
	p.NominalX(names...)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("%w: saving chart", err)
	}
	return nil
}
