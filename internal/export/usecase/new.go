package usecase

import (
	"g2ical/internal/export"
	"g2ical/pkg/daterange"
	pkgLog "g2ical/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	calendar export.Source
	dates    *daterange.Parser
}

// New creates a new export UseCase instance.
func New(l pkgLog.Logger, calendar export.Source, dates *daterange.Parser) *implUseCase {
	return &implUseCase{
		l:        l,
		calendar: calendar,
		dates:    dates,
	}
}

var _ export.UseCase = (*implUseCase)(nil)
