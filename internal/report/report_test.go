package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pedrior/os-algorithms/internal/schedulers"
)

func staggeredSchedule() schedulers.Schedule {
	return schedulers.Schedule{
		Processes: []schedulers.Process{
			{ProcessID: 1, ArrivalTime: 0, BurstDuration: 5, StartTime: 0, CompletionTime: 5, TurnaroundTime: 5, ResponseTime: 0, WaitTime: 0},
			{ProcessID: 2, ArrivalTime: 3, BurstDuration: 9, StartTime: 5, CompletionTime: 14, TurnaroundTime: 11, ResponseTime: 2, WaitTime: 2},
			{ProcessID: 3, ArrivalTime: 6, BurstDuration: 6, StartTime: 14, CompletionTime: 20, TurnaroundTime: 14, ResponseTime: 8, WaitTime: 8},
		},
		Timeline: []schedulers.TimeSlice{
			{PID: 1, Start: 0, Stop: 5},
			{PID: 2, Start: 5, Stop: 14},
			{PID: 3, Start: 14, Stop: 20},
		},
		Metrics: schedulers.AverageMetrics{Turnaround: 10, Response: 10.0 / 3, Wait: 10.0 / 3},
	}
}

func TestFormatterFloat(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		formatter Formatter
		value     float64
		want      string
	}{
		{name: "decimal point", formatter: Formatter{}, value: 10.0 / 3, want: "3.33"},
		{name: "decimal point whole", formatter: Formatter{}, value: 10, want: "10.00"},
		{name: "decimal comma", formatter: Formatter{DecimalComma: true}, value: 10.0 / 3, want: "3,33"},
		{name: "decimal comma whole", formatter: Formatter{DecimalComma: true}, value: 10, want: "10,00"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.formatter.Float(tt.value))
		})
	}
}

func TestTitle(t *testing.T) {
	t.Parallel()
	var w bytes.Buffer
	Title(&w, "Round-robin")

	want := strings.Repeat("-", 22) + "\n" +
		strings.Repeat(" ", 5) + " Round-robin\n" +
		strings.Repeat("-", 22) + "\n"
	assert.Equal(t, want, w.String())
}

func TestGantt(t *testing.T) {
	t.Parallel()
	var w bytes.Buffer
	Gantt(&w, []schedulers.TimeSlice{
		{PID: 1, Start: 0, Stop: 2},
		{PID: 2, Start: 2, Stop: 4},
		{PID: 1, Start: 4, Stop: 6},
	})

	want := "Gantt schedule\n" +
		"|   1   |   2   |   1   |\n" +
		"0\t2\t4\t6\n\n"
	assert.Equal(t, want, w.String())
}

func TestScheduleTable(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		formatter Formatter
		want      []string
	}{
		{
			name:      "decimal point",
			formatter: Formatter{},
			want:      []string{"Schedule table", "TURNAROUND", "RESPONSE", "AVERAGE", "10.00", "3.33", "14", "20"},
		},
		{
			name:      "decimal comma",
			formatter: Formatter{DecimalComma: true},
			want:      []string{"AVERAGE", "10,00", "3,33"},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var w bytes.Buffer
			ScheduleTable(&w, staggeredSchedule(), tt.formatter)

			got := w.String()
			for _, want := range tt.want {
				assert.Contains(t, got, want)
			}
		})
	}
}

func TestFaultTable(t *testing.T) {
	t.Parallel()
	var w bytes.Buffer
	FaultTable(&w, []PolicyFaults{
		{Policy: "FIFO", Faults: 9},
		{Policy: "Optimal", Faults: 7},
		{Policy: "LRU", Faults: 10},
	})

	got := w.String()
	for _, want := range []string{"Page fault table", "POLICY", "FAULTS", "FIFO", "Optimal", "LRU", "9", "7", "10"} {
		assert.Contains(t, got, want)
	}
}

func TestMetricsChart(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "metrics.png")

	err := MetricsChart(path, []string{"FCFS", "SJF", "RR"}, []schedulers.AverageMetrics{
		{Turnaround: 10, Response: 10.0 / 3, Wait: 10.0 / 3},
		{Turnaround: 8, Response: 4, Wait: 4},
		{Turnaround: 17.0 / 3, Response: 1, Wait: 3},
	})
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestMetricsChartMismatchedData(t *testing.T) {
	t.Parallel()
	err := MetricsChart(filepath.Join(t.TempDir(), "metrics.png"), []string{"FCFS"}, nil)
	require.Error(t, err)
}
