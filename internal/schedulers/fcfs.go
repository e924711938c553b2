package schedulers

// FCFSSchedule runs the processes to completion in arrival order.
// Simultaneous arrivals run in input order. The CPU idles whenever the
// next process has not arrived yet.
func FCFSSchedule(processes []Process) (Schedule, error) {
	if err := validateProcesses(processes); err != nil {
		return Schedule{}, err
	}

	procs := cloneProcesses(processes)
	sortByArrival(procs)

	var (
		clock    int64
		timeline = make([]TimeSlice, 0, len(procs))
	)
	for i := range procs {
		if clock < procs[i].ArrivalTime {
			clock = procs[i].ArrivalTime
		}
		procs[i].StartTime = clock
		clock += procs[i].BurstDuration
		procs[i].finishAt(clock)

		timeline = append(timeline, TimeSlice{
			PID:   procs[i].ProcessID,
			Start: procs[i].StartTime,
			Stop:  procs[i].CompletionTime,
		})
	}

	metrics, err := Averages(procs)
	if err != nil {
		return Schedule{}, err
	}
	return Schedule{Processes: procs, Timeline: timeline, Metrics: metrics}, nil
}
