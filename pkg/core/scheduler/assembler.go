package scheduler

// Assemble groups completed shifts by their start day into the run's terminal
// Schedule, guaranteeing an entry for every day in the horizon, and attaches
// the alerts in emission order. No further computation happens here.
func Assemble(projectDays int, shifts []*Shift, alerts []Alert) *Result {
	days := make([]DaySchedule, projectDays)
	for day := range days {
		days[day] = DaySchedule{Day: day, Shifts: []*Shift{}}
	}

	for _, shift := range shifts {
		if shift.StartDay < 0 || shift.StartDay >= projectDays {
			continue
		}
		days[shift.StartDay].Shifts = append(days[shift.StartDay].Shifts, shift)
	}

	if alerts == nil {
		alerts = []Alert{}
	}

	return &Result{
		Schedule: &Schedule{Days: days},
		Alerts:   alerts,
	}
}
