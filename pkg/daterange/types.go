package daterange

import "time"

// Range is an inclusive time window covering whole days.
type Range struct {
	Start time.Time
	End   time.Time
}
