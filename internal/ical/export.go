package ical

import (
	"fmt"
	"os"
	"path/filepath"
)

// Target names the destination of one export. Callers construct it
// explicitly per export; nothing here reads ambient settings.
type Target struct {
	Directory string
	FileName  string
}

// Path returns the full destination path.
func (t Target) Path() string {
	return filepath.Join(t.Directory, t.FileName)
}

// ExportError reports a failed file write, carrying the destination
// path and the underlying I/O cause.
type ExportError struct {
	Path string
	Err  error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("failed to export iCal to file %s: %v", e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// WriteFile writes a rendered document to the target path, creating the
// file if absent and truncating any existing content. The directory must
// already exist. On failure the destination is assumed to retain its
// prior content; no partial write is introduced beyond what the
// filesystem itself may do.
func WriteFile(doc string, target Target) error {
	if err := os.WriteFile(target.Path(), []byte(doc), 0o644); err != nil {
		return &ExportError{Path: target.Path(), Err: err}
	}
	return nil
}
