package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"google.golang.org/api/calendar/v3"

	"g2ical/internal/export"
	"g2ical/internal/export/usecase"
	"g2ical/pkg/daterange"
	"g2ical/pkg/gcalendar"
)

func newParser(t *testing.T, tz string) *daterange.Parser {
	t.Helper()
	p, err := daterange.NewParser(tz)
	if err != nil {
		t.Fatalf("failed to create parser: %v", err)
	}
	return p
}

func TestFetch(t *testing.T) {
	t.Run("Invalid range error", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockSource{}, newParser(t, "UTC"))
		_, err := uc.Fetch(context.Background(), export.FetchInput{
			CalendarID: "primary",
			From:       "2024-05-03",
			To:         "2024-05-01",
		})
		if !errors.Is(err, export.ErrInvalidRange) {
			t.Errorf("expected ErrInvalidRange, got %v", err)
		}
	})

	t.Run("Malformed date error", func(t *testing.T) {
		src := &mockSource{}
		uc := usecase.New(&mockLogger{}, src, newParser(t, "UTC"))
		_, err := uc.Fetch(context.Background(), export.FetchInput{
			CalendarID: "primary",
			From:       "bogus",
			To:         "2024-05-01",
		})
		if !errors.Is(err, export.ErrInvalidRange) {
			t.Errorf("expected ErrInvalidRange, got %v", err)
		}
		// The parser's cause stays inspectable alongside the sentinel.
		var parseErr *time.ParseError
		if !errors.As(err, &parseErr) {
			t.Errorf("expected time.ParseError in chain, got %v", err)
		}
		if src.listEventsHit != 0 {
			t.Errorf("source must not be queried for an invalid range")
		}
	})

	t.Run("Source error propagates", func(t *testing.T) {
		src := &mockSource{eventsErr: errors.New("api down")}
		uc := usecase.New(&mockLogger{}, src, newParser(t, "UTC"))
		_, err := uc.Fetch(context.Background(), export.FetchInput{
			CalendarID: "primary",
			From:       "2024-05-01",
			To:         "2024-05-02",
		})
		if err == nil {
			t.Fatalf("expected source error")
		}
	})

	t.Run("Events are normalized with the range timezone", func(t *testing.T) {
		src := &mockSource{
			events: []*calendar.Event{
				{
					Summary: "timed",
					Start:   &calendar.EventDateTime{DateTime: "2024-05-01T09:00:00Z"},
					End:     &calendar.EventDateTime{DateTime: "2024-05-01T10:00:00Z"},
				},
				{
					Summary: "all day",
					Start:   &calendar.EventDateTime{Date: "2024-05-02"},
					End:     &calendar.EventDateTime{Date: "2024-05-03"},
				},
			},
		}
		uc := usecase.New(&mockLogger{}, src, newParser(t, "Asia/Seoul"))

		out, err := uc.Fetch(context.Background(), export.FetchInput{
			CalendarID: "family",
			From:       "2024-05-01",
			To:         "2024-05-03",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.Count != 2 || len(out.Records) != 2 || len(out.Rows) != 2 {
			t.Fatalf("unexpected output sizes: %+v", out)
		}
		if src.gotEventsReq.CalendarID != "family" {
			t.Errorf("calendar id not passed through: %q", src.gotEventsReq.CalendarID)
		}

		seoul, _ := time.LoadLocation("Asia/Seoul")
		if !src.gotEventsReq.TimeMin.Equal(time.Date(2024, 5, 1, 0, 0, 0, 0, seoul)) {
			t.Errorf("range start not resolved in Asia/Seoul: %v", src.gotEventsReq.TimeMin)
		}
		if !out.Records[1].Start.Equal(time.Date(2024, 5, 2, 0, 0, 0, 0, seoul)) {
			t.Errorf("all-day event not resolved to midnight in Asia/Seoul: %v", out.Records[1].Start)
		}

		if out.Rows[0].Summary != "timed" || out.Rows[1].Summary != "all day" {
			t.Errorf("rows not in input order: %+v", out.Rows)
		}
	})
}

func TestCalendars(t *testing.T) {
	t.Run("Source error propagates", func(t *testing.T) {
		src := &mockSource{calendarsErr: errors.New("api down")}
		uc := usecase.New(&mockLogger{}, src, newParser(t, "UTC"))
		if _, err := uc.Calendars(context.Background()); err == nil {
			t.Errorf("expected calendars error")
		}
	})

	t.Run("Primary calendar sorts first", func(t *testing.T) {
		src := &mockSource{
			calendars: []gcalendar.Calendar{
				{ID: "work", Summary: "Work"},
				{ID: "me@example.com", Summary: "me@example.com", Primary: true},
				{ID: "family", Summary: "Family"},
			},
		}
		uc := usecase.New(&mockLogger{}, src, newParser(t, "UTC"))

		options, err := uc.Calendars(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(options) != 3 {
			t.Fatalf("expected 3 options, got %d", len(options))
		}
		if !options[0].Primary || options[0].ID != "me@example.com" {
			t.Errorf("primary calendar not first: %+v", options)
		}
	})
}

func TestCalendar(t *testing.T) {
	t.Run("Resolves by ID", func(t *testing.T) {
		src := &mockSource{
			calendarByID: gcalendar.Calendar{ID: "work", Summary: "Work", Primary: false},
		}
		uc := usecase.New(&mockLogger{}, src, newParser(t, "UTC"))

		opt, err := uc.Calendar(context.Background(), "work")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if src.gotCalendarID != "work" {
			t.Errorf("calendar id not passed through: %q", src.gotCalendarID)
		}
		if opt.ID != "work" || opt.Name != "Work" {
			t.Errorf("unexpected option: %+v", opt)
		}
	})

	t.Run("Source error propagates", func(t *testing.T) {
		src := &mockSource{byIDErr: errors.New("calendar not found")}
		uc := usecase.New(&mockLogger{}, src, newParser(t, "UTC"))
		if _, err := uc.Calendar(context.Background(), "nope"); err == nil {
			t.Errorf("expected resolve error")
		}
	})
}
