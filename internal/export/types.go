package export

import (
	"g2ical/internal/ical"
	"g2ical/internal/model"
)

// CalendarOption is one selectable calendar.
type CalendarOption struct {
	ID      string
	Name    string
	Primary bool
}

// FetchInput identifies the calendar and date range to load. From and To
// are YYYY-MM-DD strings as entered by the user.
type FetchInput struct {
	CalendarID string
	From       string
	To         string
}

// FetchOutput carries the normalized records and their presentation rows.
type FetchOutput struct {
	Records []model.Event
	Rows    []DisplayRow
	Count   int
}

// DisplayRow is the presentation shape of one event: all fields
// pre-formatted strings, ready for tabular display.
type DisplayRow struct {
	Summary     string
	Start       string
	End         string
	Location    string
	Description string
}

// ExportInput carries the records to export and their destination.
type ExportInput struct {
	Records []model.Event
	Target  ical.Target
}

// ExportOutput reports where the document landed and how large it was.
type ExportOutput struct {
	Path      string
	ByteCount int
}
