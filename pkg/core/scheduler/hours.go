package scheduler

import "fmt"

// HourBand categorizes hours of day for tie-breaking and display. Bands never
// affect eligibility.
type HourBand string

const (
	// BandExtreme covers 18:00-23:59 and 00:00-06:59.
	BandExtreme HourBand = "extreme"

	// BandPrime covers 09:00-16:59 and is preferred in flexible-agent
	// tie-breaks.
	BandPrime HourBand = "prime"

	// BandStandard covers everything else.
	BandStandard HourBand = "standard"
)

// BandForHour returns the band for an hour of day.
func BandForHour(hour int) HourBand {
	switch {
	case hour >= 18 || hour < 7:
		return BandExtreme
	case hour >= 9 && hour <= 16:
		return BandPrime
	default:
		return BandStandard
	}
}

// FormatClock renders an hour of day on a 12-hour clock, e.g. 8 -> "8AM",
// 13 -> "1PM", 0 -> "12AM".
func FormatClock(hour int) string {
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d%s", display, period)
}

// FormatWindow renders a shift's time range, wrapping the exclusive end hour
// around midnight.
func FormatWindow(startHour, endHour int) string {
	return fmt.Sprintf("%s-%s", FormatClock(startHour), FormatClock(endHour%HoursPerDay))
}
