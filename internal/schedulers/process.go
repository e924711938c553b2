// Package schedulers simulates batch CPU scheduling under three
// disciplines sharing one process record: first-come-first-serve,
// non-preemptive shortest-job-first and round-robin with a fixed time
// quantum. Every scheduler works on its own copy of the caller's slice,
// so one run never leaks state into another, and reports per-process
// timing together with the discipline's average metrics. The package
// performs no I/O; rendering lives elsewhere.
package schedulers

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrNoProcesses    = errors.New("no processes to schedule")
	ErrInvalidProcess = errors.New("invalid process")
	ErrInvalidQuantum = errors.New("invalid quantum")
)

type (
	// Process is one schedulable task. ProcessID, ArrivalTime and
	// BurstDuration are inputs; the remaining fields are filled in by a
	// scheduler run.
	Process struct {
		ProcessID      int64
		ArrivalTime    int64
		BurstDuration  int64
		StartTime      int64
		CompletionTime int64
		TurnaroundTime int64
		ResponseTime   int64
		WaitTime       int64
	}

	// TimeSlice is one contiguous run of a process on the CPU.
	TimeSlice struct {
		PID   int64
		Start int64
		Stop  int64
	}

	// Schedule is the outcome of one scheduler run: the finished working
	// copy of the processes, the execution timeline in the order the CPU
	// ran it, and the discipline's averages.
	Schedule struct {
		Processes []Process
		Timeline  []TimeSlice
		Metrics   AverageMetrics
	}
)

// Finished reports whether the process has completed a scheduler run.
// Bursts are strictly positive, so any finished process completes past
// time zero.
func (p Process) Finished() bool { return p.CompletionTime > 0 }

// finishAt records the completion time and derives turnaround, response
// and wait from it.
func (p *Process) finishAt(t int64) {
	p.CompletionTime = t
	p.TurnaroundTime = p.CompletionTime - p.ArrivalTime
	p.ResponseTime = p.StartTime - p.ArrivalTime
	p.WaitTime = p.TurnaroundTime - p.BurstDuration
}

// cloneProcesses copies the input and clears any timing left over from
// an earlier run, keeping the caller's slice untouched.
func cloneProcesses(processes []Process) []Process {
	procs := make([]Process, len(processes))
	copy(procs, processes)
	for i := range procs {
		procs[i].StartTime = 0
		procs[i].CompletionTime = 0
		procs[i].TurnaroundTime = 0
		procs[i].ResponseTime = 0
		procs[i].WaitTime = 0
	}
	return procs
}

func validateProcesses(processes []Process) error {
	if len(processes) == 0 {
		return ErrNoProcesses
	}
	for i := range processes {
		if processes[i].ArrivalTime < 0 {
			return fmt.Errorf("%w: process %d arrives at %d", ErrInvalidProcess,
				processes[i].ProcessID, processes[i].ArrivalTime)
		}
		if processes[i].BurstDuration <= 0 {
			return fmt.Errorf("%w: process %d bursts for %d", ErrInvalidProcess,
				processes[i].ProcessID, processes[i].BurstDuration)
		}
	}
	return nil
}

// sortByArrival orders by ascending arrival time; simultaneous arrivals
// keep their input order.
func sortByArrival(processes []Process) {
	sort.SliceStable(processes, func(i, j int) bool {
		return processes[i].ArrivalTime < processes[j].ArrivalTime
	})
}
