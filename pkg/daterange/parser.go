package daterange

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Parser resolves user-supplied YYYY-MM-DD date strings into concrete
// day boundaries in a fixed timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a date-range parser for the given IANA timezone
// string, e.g. "Europe/Berlin".
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse resolves a from/to date pair into an inclusive Range: from at
// 00:00:00 and to at 23:59:59, both in the parser's timezone. It errors
// on malformed dates and on ranges that end before they start.
func (p *Parser) Parse(from, to string) (Range, error) {
	start, err := p.parseDay(from)
	if err != nil {
		return Range{}, fmt.Errorf("invalid start date: %w", err)
	}

	end, err := p.parseDay(to)
	if err != nil {
		return Range{}, fmt.Errorf("invalid end date: %w", err)
	}
	end = p.endOfDay(end)

	if end.Before(start) {
		return Range{}, fmt.Errorf("end date %s is before start date %s", to, from)
	}

	return Range{Start: start, End: end}, nil
}

// parseDay parses one YYYY-MM-DD string to midnight in the parser's timezone.
func (p *Parser) parseDay(s string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, s, p.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q is not in YYYY-MM-DD form: %w", s, err)
	}
	return t, nil
}

// endOfDay returns 23:59:59 of the same calendar day. Computed from the
// wall clock rather than a 24h offset so DST-transition days still end
// at 23:59:59 local time.
func (p *Parser) endOfDay(startOfDay time.Time) time.Time {
	return time.Date(startOfDay.Year(), startOfDay.Month(), startOfDay.Day(), 23, 59, 59, 0, p.location)
}
