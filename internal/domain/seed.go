package domain

// SeedEvent is an event definition used to populate a fresh agenda.
type SeedEvent struct {
	Start         HourKey `yaml:"time"`
	Title         string  `yaml:"title"`
	DurationHours int     `yaml:"duration"`
}

// DefaultSeed returns the starter day shown on first launch.
func DefaultSeed() []SeedEvent {
	return []SeedEvent{
		{Start: "06:00", Title: "Drink 8 glasses of water", DurationHours: 1},
		{Start: "08:00", Title: "Work", DurationHours: 4},
		{Start: "12:00", Title: "Take a nap", DurationHours: 1},
		{Start: "13:00", Title: "Work", DurationHours: 4},
		{Start: "18:00", Title: "Gym", DurationHours: 2},
		{Start: "20:00", Title: "Dinner", DurationHours: 1},
	}
}
