package export

import (
	"context"

	"google.golang.org/api/calendar/v3"

	"g2ical/pkg/gcalendar"
)

// Source abstracts the remote calendar data source for mocking.
type Source interface {
	ListCalendars(ctx context.Context) ([]gcalendar.Calendar, error)
	CalendarByID(ctx context.Context, id string) (gcalendar.Calendar, error)
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]*calendar.Event, error)
}

// UseCase defines the business logic interface for the export domain.
type UseCase interface {
	// Calendars returns the user's calendars for selection.
	Calendars(ctx context.Context) ([]CalendarOption, error)

	// Calendar resolves one calendar by ID, e.g. to confirm a calendar
	// supplied by flag or config before exporting from it.
	Calendar(ctx context.Context, id string) (CalendarOption, error)

	// Fetch validates the date range, loads the raw events of one calendar
	// and normalizes them into records plus display rows.
	Fetch(ctx context.Context, input FetchInput) (FetchOutput, error)

	// Export renders the records to an iCalendar document and writes it to
	// the target file.
	Export(ctx context.Context, input ExportInput) (ExportOutput, error)
}
