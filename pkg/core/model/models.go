package model

// Agent is a roster member. TargetHours is the soft goal for the project
// horizon; MaxHours is a hard cap the allocator never exceeds.
type Agent struct {
	ID          string
	Name        string
	TargetHours float64
	MaxHours    float64
}

// Project is the operating calendar: an inclusive date range of at most 31
// days over which shifts are generated.
type Project struct {
	ID        string
	StartDate string // Date format (2006-01-02)
	EndDate   string
}
