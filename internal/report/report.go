// Package report renders scheduling and paging results: banner titles,
// Gantt charts and timing tables for terminals, and bar charts for
// image files.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/pedrior/os-algorithms/internal/schedulers"
)

// Formatter controls how fractional metrics are printed. Decimal-comma
// output suits locales that write 3,14 for pi.
type Formatter struct {
	DecimalComma bool
}

// Float renders v with two decimal places.
func (f Formatter) Float(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	if f.DecimalComma {
		s = strings.Replace(s, ".", ",", 1)
	}
	return s
}

// Title prints a banner sized to the title.
func Title(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

// Gantt prints the execution timeline as a one-line chart: PIDs boxed
// in run order with the slice boundaries underneath.
func Gantt(w io.Writer, timeline []schedulers.TimeSlice) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprint(w, "|")
	for i := range timeline {
		pid := fmt.Sprint(timeline[i].PID)
		padding := strings.Repeat(" ", (8-len(pid))/2)
		_, _ = fmt.Fprint(w, padding, pid, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i := range timeline {
		_, _ = fmt.Fprint(w, fmt.Sprint(timeline[i].Start), "\t")
		if len(timeline)-1 == i {
			_, _ = fmt.Fprint(w, fmt.Sprint(timeline[i].Stop))
		}
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}

// ScheduleTable prints one row per process in run order, with the
// discipline averages in the footer.
func ScheduleTable(w io.Writer, s schedulers.Schedule, f Formatter) {
	_, _ = fmt.Fprintln(w, "Schedule table")

	rows := make([][]string, len(s.Processes))
	for i := range s.Processes {
		rows[i] = []string{
			fmt.Sprint(s.Processes[i].ProcessID),
			fmt.Sprint(s.Processes[i].BurstDuration),
			fmt.Sprint(s.Processes[i].ArrivalTime),
			fmt.Sprint(s.Processes[i].StartTime),
			fmt.Sprint(s.Processes[i].ResponseTime),
			fmt.Sprint(s.Processes[i].WaitTime),
			fmt.Sprint(s.Processes[i].TurnaroundTime),
			fmt.Sprint(s.Processes[i].CompletionTime),
		}
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Burst", "Arrival", "Start", "Response", "Wait", "Turnaround", "Exit"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Average\n%s", f.Float(s.Metrics.Response)),
		fmt.Sprintf("Average\n%s", f.Float(s.Metrics.Wait)),
		fmt.Sprintf("Average\n%s", f.Float(s.Metrics.Turnaround)),
		""})
	table.Render()
}

// PolicyFaults pairs a page replacement policy with the fault count it
// produced.
type PolicyFaults struct {
	Policy string
	Faults int
}

// FaultTable prints one row per replacement policy.
func FaultTable(w io.Writer, results []PolicyFaults) {
	_, _ = fmt.Fprintln(w, "Page fault table")

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Policy", "Faults"})
	for i := range results {
		table.Append([]string{results[i].Policy, fmt.Sprint(results[i].Faults)})
	}
	table.Render()
}
