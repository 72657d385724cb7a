package scheduler

// ClassifyAgents computes availability statistics and a limited/flexible
// classification for every agent over the full day x hour horizon.
//
// An agent is limited when its blocked-hour count strictly exceeds the roster
// average; ties resolve to flexible. The result is a pure function of the
// inputs and must be recomputed whenever the roster, the grid or the horizon
// changes - classification is never persisted as agent state.
func ClassifyAgents(agents []Agent, availability *AvailabilityGrid, projectDays int) map[string]AgentStats {
	stats := make(map[string]AgentStats, len(agents))
	totalSlots := projectDays * HoursPerDay

	for _, agent := range agents {
		var available, unavailable int
		for day := 0; day < projectDays; day++ {
			for hour := 0; hour < HoursPerDay; hour++ {
				if availability.Available(agent.ID, day, hour) {
					available++
				} else {
					unavailable++
				}
			}
		}

		score := 0.0
		if totalSlots > 0 {
			score = float64(available) / float64(totalSlots) * 100
		}

		stats[agent.ID] = AgentStats{
			AvailableHours:   available,
			UnavailableHours: unavailable,
			FlexibilityScore: score,
		}
	}

	// Mean blocked hours across the roster decides the partition.
	avgUnavailable := 0.0
	if len(agents) > 0 && totalSlots > 0 {
		sum := 0
		for _, s := range stats {
			sum += s.UnavailableHours
		}
		avgUnavailable = float64(sum) / float64(len(agents))
	}

	for id, s := range stats {
		if float64(s.UnavailableHours) > avgUnavailable {
			s.Classification = ClassificationLimited
		} else {
			s.Classification = ClassificationFlexible
		}
		stats[id] = s
	}

	return stats
}
