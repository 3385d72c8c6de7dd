package usecase

import (
	"context"
	"fmt"

	"g2ical/internal/export"
)

// Calendars lists the user's calendars as selectable options, the
// primary calendar first.
func (uc *implUseCase) Calendars(ctx context.Context) ([]export.CalendarOption, error) {
	calendars, err := uc.calendar.ListCalendars(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load calendars: %w", err)
	}

	options := make([]export.CalendarOption, 0, len(calendars))
	for _, cal := range calendars {
		opt := export.CalendarOption{
			ID:      cal.ID,
			Name:    cal.Summary,
			Primary: cal.Primary,
		}
		if opt.Primary {
			options = append([]export.CalendarOption{opt}, options...)
			continue
		}
		options = append(options, opt)
	}

	uc.l.Infof(ctx, "Calendars: loaded %d calendars", len(options))
	return options, nil
}

// Calendar resolves one calendar by ID. The source serves this from its
// metadata cache when the calendar was already listed.
func (uc *implUseCase) Calendar(ctx context.Context, id string) (export.CalendarOption, error) {
	cal, err := uc.calendar.CalendarByID(ctx, id)
	if err != nil {
		return export.CalendarOption{}, fmt.Errorf("failed to resolve calendar %q: %w", id, err)
	}
	return export.CalendarOption{
		ID:      cal.ID,
		Name:    cal.Summary,
		Primary: cal.Primary,
	}, nil
}
