package gcalendar

import "time"

// Calendar is a simplified calendar-list entry.
type Calendar struct {
	ID      string
	Summary string
	Primary bool
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64 // per page; 0 uses the API default
}
