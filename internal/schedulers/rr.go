package schedulers

import "fmt"

// RRSchedule runs the processes to completion in round-robin order,
// granting the CPU for at most quantum units per turn. Newly arrived
// processes join the ready queue before a preempted one rejoins it, so
// a process never gets two consecutive turns while another is waiting.
// When the queue drains with work still pending, the CPU idles until
// the next arrival.
func RRSchedule(processes []Process, quantum int64) (Schedule, error) {
	if quantum <= 0 {
		return Schedule{}, fmt.Errorf("%w: %d", ErrInvalidQuantum, quantum)
	}
	if err := validateProcesses(processes); err != nil {
		return Schedule{}, err
	}

	procs := cloneProcesses(processes)
	sortByArrival(procs)

	var (
		clock     int64
		finished  int
		timeline  []TimeSlice
		remaining = make([]int64, len(procs))
		queued    = make([]bool, len(procs))
		queue     = make([]int, 0, len(procs))
	)
	for i := range procs {
		remaining[i] = procs[i].BurstDuration
	}
	queued[0] = true
	queue = append(queue, 0)

	for finished < len(procs) {
		if len(queue) == 0 {
			// All admitted work is done; admit the next pending process
			// even though it has not arrived yet.
			for i := range procs {
				if !procs[i].Finished() && !queued[i] {
					queued[i] = true
					queue = append(queue, i)
					break
				}
			}
		}

		next := queue[0]
		queue = queue[1:]

		p := &procs[next]
		if remaining[next] == p.BurstDuration {
			if clock < p.ArrivalTime {
				clock = p.ArrivalTime
			}
			p.StartTime = clock
		}

		slice := quantum
		if remaining[next] < quantum {
			slice = remaining[next]
		}
		timeline = append(timeline, TimeSlice{
			PID:   p.ProcessID,
			Start: clock,
			Stop:  clock + slice,
		})
		clock += slice
		remaining[next] -= slice
		if remaining[next] == 0 {
			p.finishAt(clock)
			finished++
		}

		for i := range procs {
			if !queued[i] && !procs[i].Finished() && procs[i].ArrivalTime <= clock {
				queued[i] = true
				queue = append(queue, i)
			}
		}
		if remaining[next] > 0 {
			queue = append(queue, next)
		}
	}

	metrics, err := Averages(procs)
	if err != nil {
		return Schedule{}, err
	}
	return Schedule{Processes: procs, Timeline: timeline, Metrics: metrics}, nil
}
