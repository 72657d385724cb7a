package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/phuture/fudashi/pkg/core/model"
	"github.com/phuture/fudashi/pkg/core/scheduler"
	"github.com/phuture/fudashi/pkg/core/services"
)

// parseHourRange parses "9-17" into a half-open hour range.
func parseHourRange(s string) (from, to int, err error) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("hour range must look like 9-17, got %q", s)
	}
	from, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid start hour in %q: %w", s, err)
	}
	to, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid end hour in %q: %w", s, err)
	}
	return from, to, nil
}

// bandTag returns the display tags for a shift. A tag appears when any hour
// the shift covers falls in that band, so an evening shift running past
// midnight still reads as extreme.
func bandTag(shift *scheduler.Shift) string {
	var extreme, prime bool
	for _, cell := range shift.Cells {
		switch scheduler.BandForHour(cell.Hour) {
		case scheduler.BandExtreme:
			extreme = true
		case scheduler.BandPrime:
			prime = true
		}
	}
	var tag string
	if extreme {
		tag += " [EXTREME]"
	}
	if prime {
		tag += " [PRIME]"
	}
	return tag
}

// renderSchedule prints the per-day schedule with alerts.
func renderSchedule(project *model.Project, result *scheduler.Result) {
	for _, day := range result.Schedule.Days {
		header := fmt.Sprintf("Day %d", day.Day+1)
		if date, err := services.DayDate(project, day.Day); err == nil {
			header = fmt.Sprintf("Day %d - %s", day.Day+1, date.Format("Mon 02 Jan"))
		}
		fmt.Printf("%s\n", header)

		if len(day.Shifts) == 0 {
			fmt.Printf("  NO OPS\n\n")
			continue
		}

		for _, shift := range day.Shifts {
			window := scheduler.FormatWindow(shift.StartHour, shift.EndHour)
			overnight := ""
			if shift.Overnight() {
				overnight = " (overnight)"
			}
			status := "✅"
			if !shift.Filled {
				status = "⚠️"
			}
			fmt.Printf("  %s %s (%dh)%s%s\n", status, window, shift.DurationHours(), bandTag(shift), overnight)
			for _, detail := range shift.Details {
				fmt.Printf("      %s\n", detail)
			}
		}
		fmt.Println()
	}

	if len(result.Alerts) > 0 {
		fmt.Printf("Alerts (%d):\n", len(result.Alerts))
		for _, alert := range result.Alerts {
			icon := "⚠️"
			if alert.Severity == scheduler.AlertError {
				icon = "❌"
			}
			fmt.Printf("  %s Day %d %s: %s\n", icon, alert.Day+1, alert.Window, alert.Message)
		}
		fmt.Println()
	}
}
