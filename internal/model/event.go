package model

import "time"

// Event is the normalized, serialization-ready representation of one
// calendar event. Optional text fields are empty strings, never absent,
// so downstream formatting can treat every field uniformly. Start and
// End are always concrete, timezone-aware instants by the time an Event
// leaves the mapper.
type Event struct {
	Summary     string
	Start       time.Time
	End         time.Time
	Location    string
	Description string
}
