package cli

import (
	"context"
	"io"

	"g2ical/internal/export"
	pkgLog "g2ical/pkg/log"
)

// Handler is the interface for the CLI delivery handler.
type Handler interface {
	Run(ctx context.Context, opts RunOptions) error
}

// New creates a new CLI delivery handler reading prompts from in and
// writing all presentation output to out.
func New(l pkgLog.Logger, uc export.UseCase, in io.Reader, out io.Writer) Handler {
	return &handler{
		l:   l,
		uc:  uc,
		in:  in,
		out: out,
	}
}
