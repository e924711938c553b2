package main

import (
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/pedrior/os-algorithms/config"
	"github.com/pedrior/os-algorithms/internal/report"
	"github.com/pedrior/os-algorithms/internal/schedulers"
)

func main() {
	chart := flag.String("chart", "", "write a bar chart of the average metrics to this image file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// CLI args
	f, closeFile, err := openProcessingFile(flag.Args()...)
	if err != nil {
		log.Fatal(err)
	}
	defer closeFile()

	// Load and parse processes
	processes, err := loadProcesses(f)
	if err != nil {
		log.Fatal(err)
	}

	names, metrics, err := runDisciplines(os.Stdout, cfg, processes)
	if err != nil {
		log.Fatal(err)
	}

	if *chart != "" {
		if err := report.MetricsChart(*chart, names, metrics); err != nil {
			log.Fatal(err)
		}
	}
}

// runDisciplines schedules the processes under every discipline,
// printing a title, Gantt chart and timing table for each, and returns
// the discipline names with their average metrics for charting.
func runDisciplines(w io.Writer, cfg config.Config, processes []schedulers.Process) ([]string, []schedulers.AverageMetrics, error) {
	disciplines := []struct {
		name  string
		title string
		run   func([]schedulers.Process) (schedulers.Schedule, error)
	}{
		{"FCFS", "First-come, first-serve", schedulers.FCFSSchedule},
		{"SJF", "Shortest-job-first", schedulers.SJFSchedule},
		{"RR", "Round-robin", func(processes []schedulers.Process) (schedulers.Schedule, error) {
			return schedulers.RRSchedule(processes, cfg.Quantum)
		}},
	}

	formatter := report.Formatter{DecimalComma: cfg.DecimalComma}
	names := make([]string, 0, len(disciplines))
	metrics := make([]schedulers.AverageMetrics, 0, len(disciplines))
	for _, d := range disciplines {
		schedule, err := d.run(processes)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: scheduling %s", err, d.title)
		}

		report.Title(w, d.title)
		report.Gantt(w, schedule.Timeline)
		report.ScheduleTable(w, schedule, formatter)

		names = append(names, d.name)
		metrics = append(metrics, schedule.Metrics)
	}

	return names, metrics, nil
}

func openProcessingFile(args ...string) (*os.File, func(), error) {
	if len(args) != 1 {
		return nil, nil, fmt.Errorf("%w: must give a scheduling file to process", ErrInvalidArgs)
	}
	// Read in CSV process CSV file
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("%w: opening scheduling file", err)
	}
	closeFn := func() {
		if err := f.Close(); err != nil {
			log.Fatalf("%v: error closing scheduling file", err)
		}
	}

	return f, closeFn, nil
}

//region Loading processes.

var (
	ErrInvalidArgs  = errors.New("invalid args")
	ErrMalformedRow = errors.New("malformed row")
)

func loadProcesses(r io.Reader) ([]schedulers.Process, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: reading CSV", err)
	}

	processes := make([]schedulers.Process, len(rows))
	for i := range rows {
		if len(rows[i]) < 3 {
			return nil, fmt.Errorf("%w: row %d needs id, burst and arrival", ErrMalformedRow, i+1)
		}
		if processes[i].ProcessID, err = strToInt(rows[i][0]); err != nil {
			return nil, fmt.Errorf("%w: row %d", err, i+1)
		}
		if processes[i].BurstDuration, err = strToInt(rows[i][1]); err != nil {
			return nil, fmt.Errorf("%w: row %d", err, i+1)
		}
		if processes[i].ArrivalTime, err = strToInt(rows[i][2]); err != nil {
			return nil, fmt.Errorf("%w: row %d", err, i+1)
		}
	}

	return processes, nil
}

func strToInt(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

//endregion
