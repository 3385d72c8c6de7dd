package ical

import (
	"time"

	"google.golang.org/api/calendar/v3"

	"g2ical/internal/model"
)

const dateOnlyLayout = "2006-01-02"

// FromGoogleEvent normalizes one raw Google Calendar event into a model
// Event. It never fails: absent fields map to empty strings and
// unparseable times degrade to the zero instant, so one malformed
// upstream record cannot abort a whole export batch.
//
// All-day policy: date-only events resolve to 00:00:00 in loc, the
// exporter's configured timezone. A nil loc means UTC.
func FromGoogleEvent(raw *calendar.Event, loc *time.Location) model.Event {
	if loc == nil {
		loc = time.UTC
	}
	if raw == nil {
		return model.Event{}
	}

	return model.Event{
		Summary:     raw.Summary,
		Start:       resolveTime(raw.Start, loc),
		End:         resolveTime(raw.End, loc),
		Location:    raw.Location,
		Description: raw.Description,
	}
}

// FromGoogleEvents maps a batch of raw events, preserving input order.
func FromGoogleEvents(raw []*calendar.Event, loc *time.Location) []model.Event {
	events := make([]model.Event, 0, len(raw))
	for _, r := range raw {
		events = append(events, FromGoogleEvent(r, loc))
	}
	return events
}

// resolveTime converts a Google EventDateTime into a concrete instant.
// Timed events carry an RFC 3339 DateTime; all-day events carry a bare
// Date which resolves to midnight in loc.
func resolveTime(edt *calendar.EventDateTime, loc *time.Location) time.Time {
	if edt == nil {
		return time.Time{}
	}

	if edt.DateTime != "" {
		t, err := time.Parse(time.RFC3339, edt.DateTime)
		if err != nil {
			return time.Time{}
		}
		return t
	}

	if edt.Date != "" {
		t, err := time.ParseInLocation(dateOnlyLayout, edt.Date, loc)
		if err != nil {
			return time.Time{}
		}
		return t
	}

	return time.Time{}
}
