package ical

import (
	"strings"
	"time"

	"g2ical/internal/model"
)

const (
	prodID  = "-//G2iCal Exporter//EN"
	version = "2.0"

	// RFC 5545 basic format, always rendered in UTC.
	timestampLayout = "20060102T150405Z"

	crlf = "\r\n"

	// Maximum physical line length excluding the terminator. Continuation
	// lines carry one leading space, leaving 74 bytes of content.
	maxLineLen  = 75
	contLineLen = 74
)

// escaper handles RFC 5545 TEXT escaping. CRLF and bare CR collapse to
// the literal \n sequence like a plain LF does.
var escaper = strings.NewReplacer(
	`\`, `\\`,
	";", `\;`,
	",", `\,`,
	"\r\n", `\n`,
	"\n", `\n`,
	"\r", `\n`,
)

// Render produces the complete iCalendar document for the given events.
// It is a total function: any slice, including nil, yields a valid
// document (the empty slice renders to the 4-line envelope only).
// Events are emitted in input order, one VEVENT block each, with empty
// optional fields omitted rather than written as empty properties.
func Render(events []model.Event) string {
	var b strings.Builder

	writeLine(&b, "BEGIN:VCALENDAR")
	writeLine(&b, "VERSION:"+version)
	writeLine(&b, "PRODID:"+prodID)

	for _, ev := range events {
		writeLine(&b, "BEGIN:VEVENT")
		if ev.Summary != "" {
			writeLine(&b, "SUMMARY:"+escaper.Replace(ev.Summary))
		}
		writeLine(&b, "DTSTART:"+formatTimestamp(ev.Start))
		writeLine(&b, "DTEND:"+formatTimestamp(ev.End))
		if ev.Location != "" {
			writeLine(&b, "LOCATION:"+escaper.Replace(ev.Location))
		}
		if ev.Description != "" {
			writeLine(&b, "DESCRIPTION:"+escaper.Replace(ev.Description))
		}
		writeLine(&b, "END:VEVENT")
	}

	writeLine(&b, "END:VCALENDAR")
	return b.String()
}

// writeLine emits one logical line, folding it if it exceeds the 75-byte
// limit: the first 75 bytes go out verbatim, the remainder in chunks of
// up to 74 bytes each prefixed with a single space. The split is a raw
// byte-length transform with no awareness of escape sequences or
// multi-byte runes; a fold may land mid-sequence. Importers unfold
// before interpreting the content, so positions only need to be
// consistent, not semantic.
func writeLine(b *strings.Builder, line string) {
	if len(line) <= maxLineLen {
		b.WriteString(line)
		b.WriteString(crlf)
		return
	}

	b.WriteString(line[:maxLineLen])
	b.WriteString(crlf)

	rest := line[maxLineLen:]
	for len(rest) > contLineLen {
		b.WriteString(" ")
		b.WriteString(rest[:contLineLen])
		b.WriteString(crlf)
		rest = rest[contLineLen:]
	}
	if len(rest) > 0 {
		b.WriteString(" ")
		b.WriteString(rest)
		b.WriteString(crlf)
	}
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}
