package usecase

import (
	"context"
	"fmt"

	"g2ical/internal/export"
	"g2ical/internal/ical"
	"g2ical/pkg/gcalendar"
)

// Fetch validates the date range, pulls the raw events and normalizes
// them. Malformed individual events degrade to partially-empty records
// rather than failing the batch; only range validation and the API call
// itself can error.
func (uc *implUseCase) Fetch(ctx context.Context, input export.FetchInput) (export.FetchOutput, error) {
	rng, err := uc.dates.Parse(input.From, input.To)
	if err != nil {
		return export.FetchOutput{}, fmt.Errorf("%w: %w", export.ErrInvalidRange, err)
	}

	uc.l.Infof(ctx, "Fetch: calendar=%s range=%s..%s", input.CalendarID, input.From, input.To)

	raw, err := uc.calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: input.CalendarID,
		TimeMin:    rng.Start,
		TimeMax:    rng.End,
	})
	if err != nil {
		return export.FetchOutput{}, fmt.Errorf("failed to load events: %w", err)
	}

	records := ical.FromGoogleEvents(raw, uc.dates.Location())

	uc.l.Infof(ctx, "Fetch: loaded %d events", len(records))

	return export.FetchOutput{
		Records: records,
		Rows:    export.Rows(records),
		Count:   len(records),
	}, nil
}
