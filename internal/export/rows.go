package export

import "g2ical/internal/model"

// displayTimeLayout matches what the event table historically showed.
const displayTimeLayout = "2006-01-02 15:04"

// Rows adapts normalized records into display rows, preserving order.
// Formatting lives here, away from the serializer, so the presentation
// layer never touches raw timestamps.
func Rows(records []model.Event) []DisplayRow {
	rows := make([]DisplayRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, DisplayRow{
			Summary:     r.Summary,
			Start:       r.Start.Format(displayTimeLayout),
			End:         r.End.Format(displayTimeLayout),
			Location:    r.Location,
			Description: r.Description,
		})
	}
	return rows
}
