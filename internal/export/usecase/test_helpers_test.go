package usecase_test

import (
	"context"

	"google.golang.org/api/calendar/v3"

	"g2ical/pkg/gcalendar"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock calendar source for testing
type mockSource struct {
	calendars     []gcalendar.Calendar
	calendarsErr  error
	calendarByID  gcalendar.Calendar
	byIDErr       error
	gotCalendarID string
	events        []*calendar.Event
	eventsErr     error
	gotEventsReq  gcalendar.ListEventsRequest
	listEventsHit int
}

func (m *mockSource) ListCalendars(ctx context.Context) ([]gcalendar.Calendar, error) {
	return m.calendars, m.calendarsErr
}

func (m *mockSource) CalendarByID(ctx context.Context, id string) (gcalendar.Calendar, error) {
	m.gotCalendarID = id
	return m.calendarByID, m.byIDErr
}

func (m *mockSource) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]*calendar.Event, error) {
	m.gotEventsReq = req
	m.listEventsHit++
	return m.events, m.eventsErr
}
