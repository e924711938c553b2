package schedulers

import (
	"errors"
	"fmt"
)

// ErrUnfinishedProcess signals that averages were requested over a
// slice holding a process a scheduler never completed.
var ErrUnfinishedProcess = errors.New("unfinished process")

// AverageMetrics aggregates the per-process timing of one scheduler run
// into arithmetic means.
type AverageMetrics struct {
	Turnaround float64
	Response   float64
	Wait       float64
}

// Averages computes mean turnaround, response and wait over finished
// processes. Every process must have completed a scheduler run.
func Averages(processes []Process) (AverageMetrics, error) {
	if len(processes) == 0 {
		return AverageMetrics{}, ErrNoProcesses
	}

	var totalTurnaround, totalResponse, totalWait int64
	for i := range processes {
		if !processes[i].Finished() {
			return AverageMetrics{}, fmt.Errorf("%w: process %d", ErrUnfinishedProcess,
				processes[i].ProcessID)
		}
		totalTurnaround += processes[i].TurnaroundTime
		totalResponse += processes[i].ResponseTime
		totalWait += processes[i].WaitTime
	}

	count := float64(len(processes))
	return AverageMetrics{
		Turnaround: float64(totalTurnaround) / count,
		Response:   float64(totalResponse) / count,
		Wait:       float64(totalWait) / count,
	}, nil
}
