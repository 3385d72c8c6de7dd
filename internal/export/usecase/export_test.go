package usecase_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"g2ical/internal/export"
	"g2ical/internal/export/usecase"
	"g2ical/internal/ical"
	"g2ical/internal/model"
)

func TestExport(t *testing.T) {
	records := []model.Event{
		{
			Summary: "planning",
			Start:   time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
			End:     time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		},
	}

	t.Run("Empty record set error", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockSource{}, newParser(t, "UTC"))
		_, err := uc.Export(context.Background(), export.ExportInput{
			Target: ical.Target{Directory: t.TempDir(), FileName: "out.ics"},
		})
		if !errors.Is(err, export.ErrNoEvents) {
			t.Errorf("expected ErrNoEvents, got %v", err)
		}
	})

	t.Run("Writes rendered document", func(t *testing.T) {
		dir := t.TempDir()
		uc := usecase.New(&mockLogger{}, &mockSource{}, newParser(t, "UTC"))

		out, err := uc.Export(context.Background(), export.ExportInput{
			Records: records,
			Target:  ical.Target{Directory: dir, FileName: "out.ics"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		wantPath := filepath.Join(dir, "out.ics")
		if out.Path != wantPath {
			t.Errorf("path %q, want %q", out.Path, wantPath)
		}

		content, err := os.ReadFile(wantPath)
		if err != nil {
			t.Fatalf("failed to read exported file: %v", err)
		}
		if string(content) != ical.Render(records) {
			t.Errorf("file content differs from rendered document")
		}
		if out.ByteCount != len(content) {
			t.Errorf("byte count %d, want %d", out.ByteCount, len(content))
		}
	})

	t.Run("Write failure surfaces ExportError", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockSource{}, newParser(t, "UTC"))

		_, err := uc.Export(context.Background(), export.ExportInput{
			Records: records,
			Target: ical.Target{
				Directory: filepath.Join(t.TempDir(), "missing"),
				FileName:  "out.ics",
			},
		})

		var exportErr *ical.ExportError
		if !errors.As(err, &exportErr) {
			t.Fatalf("expected *ical.ExportError, got %T: %v", err, err)
		}
	})
}
