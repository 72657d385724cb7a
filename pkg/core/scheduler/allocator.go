package scheduler

import (
	"fmt"
	"sort"
)

// AllocationInput carries everything one allocation run consumes. Shifts must
// be in chronological order (as produced by SegmentOperatingWindows); Stats
// must come from ClassifyAgents over the same roster and grid.
type AllocationInput struct {
	Agents       []Agent
	Stats        map[string]AgentStats
	Availability *AvailabilityGrid
	Shifts       []*Shift
}

// AllocationOutcome is the allocator's result: the same shifts, now carrying
// assignments and labels, plus the alerts emitted along the way.
type AllocationOutcome struct {
	Shifts []*Shift
	Alerts []Alert
}

// agentCounters is the run-scoped mutable state for one agent. Counters
// accumulate across shifts in time order; later shifts' eligibility depends
// on earlier shifts' outcomes.
type agentCounters struct {
	// total is cumulative assigned tenths across the whole horizon.
	total int

	// weekly is cumulative tenths per 7-day window (day / 7).
	weekly map[int]int

	// daily is cumulative flexible-assignment tenths per calendar day.
	daily map[int]int

	// lastEnd is the absolute end offset (tenths from day 0) of the
	// agent's last flexible assignment, or -1 if none.
	lastEnd int
}

type allocator struct {
	agents       []Agent
	stats        map[string]AgentStats
	availability *AvailabilityGrid
	counters     map[string]*agentCounters
	alerts       []Alert
}

// Allocate packs agents into each shift in strict chronological order:
// limited agents are placed first, then flexible agents fill the remaining
// gaps, all under shared per-agent counters freshly initialized for this run.
// Identical inputs always produce identical outcomes.
func Allocate(input AllocationInput) *AllocationOutcome {
	a := &allocator{
		agents:       input.Agents,
		stats:        input.Stats,
		availability: input.Availability,
		counters:     make(map[string]*agentCounters, len(input.Agents)),
		alerts:       []Alert{},
	}
	for _, agent := range input.Agents {
		a.counters[agent.ID] = &agentCounters{
			weekly:  make(map[int]int),
			daily:   make(map[int]int),
			lastEnd: -1,
		}
	}

	for _, shift := range input.Shifts {
		a.allocateShift(shift)
	}

	return &AllocationOutcome{Shifts: input.Shifts, Alerts: a.alerts}
}

func (a *allocator) allocateShift(shift *Shift) {
	duration := shift.DurationTenths()
	window := FormatWindow(shift.StartHour, shift.EndHour)
	week := shift.StartDay / 7

	// Feasibility guard: shifts shorter than the minimum block cannot hold
	// any assignment.
	if duration < minBlockTenths {
		a.alerts = append(a.alerts, Alert{
			Severity: AlertError,
			Day:      shift.StartDay,
			Window:   window,
			Message: fmt.Sprintf("Shift duration %dh is below minimum 3.5h. Cannot assign.",
				shift.DurationHours()),
		})
		shift.Details = []string{UnfillableLabel}
		shift.Filled = false
		return
	}

	covered := make([]bool, len(shift.Cells))
	var assignments []Assignment

	assignments = a.placeLimitedAgents(shift, week, covered, assignments)
	gaps := findGaps(assignments, duration)
	assignments = a.fillGaps(shift, week, gaps, assignments)

	sort.SliceStable(assignments, func(i, j int) bool {
		return assignments[i].Start < assignments[j].Start
	})

	coveredTenths := 0
	for _, assign := range assignments {
		if !assign.Unfilled {
			coveredTenths += assign.Length
		}
	}
	isCovered := coveredTenths == duration

	if !isCovered {
		a.alerts = append(a.alerts, Alert{
			Severity: AlertWarning,
			Day:      shift.StartDay,
			Window:   window,
			Message: fmt.Sprintf("Shift partially filled. Covered %.1f/%dh",
				Hours(coveredTenths), shift.DurationHours()),
		})
	}

	shift.Assignments = assignments
	shift.Details = FormatAssignments(assignments)
	shift.Filled = isCovered
}

// placeLimitedAgents runs phase 1: each limited agent, in priority order,
// claims the first maximal contiguous run of cells where it is available and
// nothing is already placed.
func (a *allocator) placeLimitedAgents(shift *Shift, week int, covered []bool, assignments []Assignment) []Assignment {
	limited := make([]Agent, 0)
	for _, agent := range a.agents {
		if a.stats[agent.ID].Classification == ClassificationLimited {
			limited = append(limited, agent)
		}
	}

	// Largest unmet target first; scarcer availability breaks ties.
	sort.SliceStable(limited, func(i, j int) bool {
		gapI := limited[i].Target - a.counters[limited[i].ID].total
		gapJ := limited[j].Target - a.counters[limited[j].ID].total
		if gapI != gapJ {
			return gapI > gapJ
		}
		return a.stats[limited[i].ID].AvailableHours < a.stats[limited[j].ID].AvailableHours
	})

	duration := shift.DurationTenths()

	for _, agent := range limited {
		counters := a.counters[agent.ID]
		if counters.total >= agent.Max {
			continue
		}

		startIdx, endIdx := -1, -1
		for i, cell := range shift.Cells {
			free := a.availability.Available(agent.ID, cell.Day, cell.Hour) && !covered[i]
			if free {
				if startIdx == -1 {
					startIdx = i
				}
				endIdx = i
			} else if startIdx != -1 {
				break
			}
		}
		if startIdx == -1 {
			continue
		}

		start := startIdx * tenthsPerHour
		end := (endIdx + 1) * tenthsPerHour
		length := end - start

		// Clamp so the hard cap is never exceeded.
		if counters.total+length > agent.Max {
			length = agent.Max - counters.total
			end = start + length
		}
		if length < minBlockTenths {
			continue
		}

		// Absorb leading/trailing gaps too small to ever hold another
		// assignment.
		if preGap := start; preGap > 0 && preGap < minBlockTenths {
			start += minBlockTenths - preGap
		}
		if postGap := duration - end; postGap > 0 && postGap < minBlockTenths {
			end -= minBlockTenths - postGap
		}

		length = end - start
		if length < minBlockTenths {
			continue
		}
		if length > maxBlockTenths {
			end = start + maxBlockTenths
			length = maxBlockTenths
		}
		if counters.total+length > agent.Max {
			continue
		}

		assignments = append(assignments, Assignment{
			AgentID:        agent.ID,
			AgentName:      agent.Name,
			Start:          start,
			Length:         length,
			Classification: ClassificationLimited,
		})

		for i := ceilCell(start); i < floorCell(end); i++ {
			covered[i] = true
		}
		counters.weekly[week] += length
		counters.total += length
	}

	return assignments
}

// gap is an uncovered sub-interval of the shift timeline, in tenths.
type gap struct {
	start int
	end   int
}

// findGaps identifies the uncovered intervals between phase-1 assignments,
// including any space before the first and after the last.
func findGaps(assignments []Assignment, duration int) []gap {
	sorted := make([]Assignment, len(assignments))
	copy(sorted, assignments)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	var gaps []gap
	current := 0
	for _, assign := range sorted {
		if assign.Start > current {
			gaps = append(gaps, gap{start: current, end: assign.Start})
		}
		if end := assign.Start + assign.Length; end > current {
			current = end
		}
	}
	if current < duration {
		gaps = append(gaps, gap{start: current, end: duration})
	}
	return gaps
}

// fillGaps runs phase 3: each gap is split into chunks of at most 8h and each
// chunk is offered to the best-ranked eligible flexible agent, or recorded as
// an unfilled sentinel.
func (a *allocator) fillGaps(shift *Shift, week int, gaps []gap, assignments []Assignment) []Assignment {
	flexible := make([]Agent, 0)
	for _, agent := range a.agents {
		if a.stats[agent.ID].Classification != ClassificationLimited {
			flexible = append(flexible, agent)
		}
	}

	for _, g := range gaps {
		width := g.end - g.start
		if width < 1 {
			continue
		}

		chunks := (width + maxBlockTenths - 1) / maxBlockTenths
		// Even split with the remainder spread one tenth at a time over
		// the leading chunks, so the chunks always tile the gap exactly.
		// base stays within maxBlockTenths: base+1 could only exceed it
		// when base == maxBlockTenths, and then the remainder is zero.
		base := width / chunks
		extra := width % chunks

		chunkStart := g.start
		for i := 0; i < chunks; i++ {
			chunkLen := base
			if i < extra {
				chunkLen++
			}

			assignments = append(assignments, a.fillChunk(shift, week, flexible, chunkStart, chunkLen))
			chunkStart += chunkLen
		}
	}

	return assignments
}

// fillChunk ranks the flexible roster for one chunk and commits the first
// eligible agent, or an unfilled sentinel when none qualifies.
func (a *allocator) fillChunk(shift *Shift, week int, flexible []Agent, chunkStart, chunkLen int) Assignment {
	isPrime := a.chunkIsPrime(shift, chunkStart, chunkLen)

	ranked := make([]Agent, len(flexible))
	copy(ranked, flexible)
	sort.SliceStable(ranked, func(i, j int) bool {
		return a.rankFlexible(ranked[i], ranked[j], isPrime)
	})

	segment := chunkCells(shift, chunkStart, chunkLen)

	// Runt chunks below the minimum block are never assigned; minimum block
	// length is a pre-commit check like every other constraint.
	if chunkLen >= minBlockTenths {
		for _, agent := range ranked {
			if !a.eligible(agent, shift, segment, week, chunkStart, chunkLen) {
				continue
			}
			return a.commitChunk(agent, shift, segment, week, chunkStart, chunkLen)
		}
	}

	return Assignment{
		AgentName:      "UNFILLED",
		Start:          chunkStart,
		Length:         chunkLen,
		Classification: ClassificationUnknown,
		Unfilled:       true,
	}
}

// rankFlexible is the per-chunk priority order: agents below target outrank
// agents at or over it; among same-side agents a target gap larger by more
// than 2h wins; remaining ties prefer higher flexibility during prime chunks
// and lower cumulative hours otherwise.
func (a *allocator) rankFlexible(x, y Agent, isPrime bool) bool {
	totalX := a.counters[x.ID].total
	totalY := a.counters[y.ID].total
	gapX := x.Target - totalX
	gapY := y.Target - totalY

	if gapX > 0 && gapY <= 0 {
		return true
	}
	if gapX <= 0 && gapY > 0 {
		return false
	}
	if gapX > 0 && gapY > 0 && abs(gapX-gapY) > 20 {
		return gapX > gapY
	}

	if isPrime {
		return a.stats[x.ID].FlexibilityScore > a.stats[y.ID].FlexibilityScore
	}
	return totalX < totalY
}

// eligible runs every pre-commit constraint for one candidate. A failing
// candidate is simply skipped; constraints are never repaired after the fact.
func (a *allocator) eligible(agent Agent, shift *Shift, segment []Cell, week, chunkStart, chunkLen int) bool {
	counters := a.counters[agent.ID]

	if counters.total+chunkLen > agent.Max {
		return false
	}
	for _, cell := range segment {
		if !a.availability.Available(agent.ID, cell.Day, cell.Hour) {
			return false
		}
	}
	if counters.weekly[week]+chunkLen > weeklyCapTenths {
		return false
	}
	if len(segment) > 0 && counters.daily[segment[0].Day] >= dailyCapTenths {
		return false
	}
	if counters.lastEnd >= 0 {
		startAbs := shift.Cells[0].AbsoluteStart() + chunkStart
		if startAbs-counters.lastEnd < restTenths {
			return false
		}
	}
	return true
}

// commitChunk records the assignment and updates the winner's counters.
func (a *allocator) commitChunk(agent Agent, shift *Shift, segment []Cell, week, chunkStart, chunkLen int) Assignment {
	counters := a.counters[agent.ID]
	counters.weekly[week] += chunkLen
	counters.total += chunkLen

	// Spread the chunk's tenths evenly over its spanned days; the remainder
	// goes to the earliest cells so the split is deterministic and exact.
	if n := len(segment); n > 0 {
		quotient := chunkLen / n
		remainder := chunkLen % n
		for i, cell := range segment {
			counters.daily[cell.Day] += quotient
			if i < remainder {
				counters.daily[cell.Day]++
			}
		}
	}

	counters.lastEnd = shift.Cells[0].AbsoluteStart() + chunkStart + chunkLen

	return Assignment{
		AgentID:        agent.ID,
		AgentName:      agent.Name,
		Start:          chunkStart,
		Length:         chunkLen,
		Classification: ClassificationFlexible,
	}
}

// chunkIsPrime classifies the chunk's midpoint hour.
func (a *allocator) chunkIsPrime(shift *Shift, chunkStart, chunkLen int) bool {
	midpoint := chunkStart + chunkLen/2
	idx := midpoint / tenthsPerHour
	hour := 12
	if idx >= 0 && idx < len(shift.Cells) {
		hour = shift.Cells[idx].Hour
	}
	return BandForHour(hour) == BandPrime
}

// chunkCells returns the cells a chunk spans, rounding the start down and the
// end up to whole cells.
func chunkCells(shift *Shift, chunkStart, chunkLen int) []Cell {
	from := floorCell(chunkStart)
	to := ceilCell(chunkStart + chunkLen)
	if from < 0 {
		from = 0
	}
	if to > len(shift.Cells) {
		to = len(shift.Cells)
	}
	if from >= to {
		return nil
	}
	return shift.Cells[from:to]
}

// UnfillableLabel marks a shift too short for any assignment.
const UnfillableLabel = "UNFILLABLE (< 3.5h)"

// FormatAssignments renders one label per assignment: the agent name with
// rounded hours, badged by classification, or the unfilled sentinel.
func FormatAssignments(assignments []Assignment) []string {
	details := make([]string, len(assignments))
	for i, assign := range assignments {
		switch {
		case assign.Unfilled:
			details[i] = "❌ UNFILLED"
		case assign.Classification == ClassificationLimited:
			details[i] = fmt.Sprintf("⚠️ %s (%.1fh)", assign.AgentName, Hours(assign.Length))
		default:
			details[i] = fmt.Sprintf("⭐ %s (%.1fh)", assign.AgentName, Hours(assign.Length))
		}
	}
	return details
}

func floorCell(tenths int) int {
	return tenths / tenthsPerHour
}

func ceilCell(tenths int) int {
	return (tenths + tenthsPerHour - 1) / tenthsPerHour
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
