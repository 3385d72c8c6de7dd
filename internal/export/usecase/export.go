package usecase

import (
	"context"

	"g2ical/internal/export"
	"g2ical/internal/ical"
)

// Export renders the records and writes the document to the target.
// Rendering itself cannot fail; only an empty record set or the file
// write can.
func (uc *implUseCase) Export(ctx context.Context, input export.ExportInput) (export.ExportOutput, error) {
	if len(input.Records) == 0 {
		return export.ExportOutput{}, export.ErrNoEvents
	}

	doc := ical.Render(input.Records)

	if err := ical.WriteFile(doc, input.Target); err != nil {
		uc.l.Errorf(ctx, "Export: write failed: %v", err)
		return export.ExportOutput{}, err
	}

	uc.l.Infof(ctx, "Export: wrote %d events (%d bytes) to %s", len(input.Records), len(doc), input.Target.Path())

	return export.ExportOutput{
		Path:      input.Target.Path(),
		ByteCount: len(doc),
	}, nil
}
