package schedulers

import "math"

// SJFSchedule runs the processes to completion, always picking the
// shortest burst among those that have arrived. Scheduling is
// non-preemptive; a running process keeps the CPU even when a shorter
// one arrives mid-burst. Burst ties fall to the lower index, which
// after the stable arrival sort means the earlier arrival and, among
// simultaneous arrivals, the input order.
func SJFSchedule(processes []Process) (Schedule, error) {
	if err := validateProcesses(processes); err != nil {
		return Schedule{}, err
	}

	procs := cloneProcesses(processes)
	sortByArrival(procs)

	var (
		clock    int64
		finished int
		timeline = make([]TimeSlice, 0, len(procs))
	)
	for finished < len(procs) {
		next := -1
		for i := range procs {
			if procs[i].Finished() || procs[i].ArrivalTime > clock {
				continue
			}
			if next == -1 || procs[i].BurstDuration < procs[next].BurstDuration {
				next = i
			}
		}
		if next == -1 {
			clock = nextArrival(procs, clock)
			continue
		}

		procs[next].StartTime = clock
		clock += procs[next].BurstDuration
		procs[next].finishAt(clock)
		finished++

		timeline = append(timeline, TimeSlice{
			PID:   procs[next].ProcessID,
			Start: procs[next].StartTime,
			Stop:  procs[next].CompletionTime,
		})
	}

	metrics, err := Averages(procs)
	if err != nil {
		return Schedule{}, err
	}
	return Schedule{Processes: procs, Timeline: timeline, Metrics: metrics}, nil
}

// nextArrival is the earliest arrival time past the clock among
// unfinished processes. Callers only reach it while at least one such
// process exists.
func nextArrival(processes []Process, clock int64) int64 {
	next := int64(math.MaxInt64)
	for i := range processes {
		if processes[i].Finished() || processes[i].ArrivalTime <= clock {
			continue
		}
		if processes[i].ArrivalTime < next {
			next = processes[i].ArrivalTime
		}
	}
	return next
}
