package scheduler

// SegmentOperatingWindows scans the operating grid chronologically and merges
// contiguous open cells into discrete shifts. A closed cell ends the current
// run; a trailing open run is flushed after the scan. Runs continue across
// midnight, so a shift may span day boundaries.
func SegmentOperatingWindows(grid *OperatingGrid, projectDays int) []*Shift {
	var shifts []*Shift
	var current *Shift

	for day := 0; day < projectDays; day++ {
		for hour := 0; hour < HoursPerDay; hour++ {
			if grid.Open(day, hour) {
				if current == nil {
					current = &Shift{StartDay: day, StartHour: hour}
				}
				current.Cells = append(current.Cells, Cell{Day: day, Hour: hour})
			} else if current != nil {
				shifts = append(shifts, finishShift(current))
				current = nil
			}
		}
	}
	if current != nil {
		shifts = append(shifts, finishShift(current))
	}

	return shifts
}

// finishShift derives the exclusive end boundary from the last cell.
func finishShift(s *Shift) *Shift {
	last := s.Cells[len(s.Cells)-1]
	s.EndDay = last.Day
	s.EndHour = last.Hour + 1
	return s
}
