// Package azmar loads expedition spreadsheets, location notes, and journals.
package azmar

import (
	"log/slog"
)

const (
	// DefaultSheetName is the artifact inventory sheet.
	DefaultSheetName = "Main Chamber"
	// DefaultSkipRows is the number of title rows above the artifact header.
	DefaultSkipRows = 3
)

// Options configures sheet loading.
type Options struct {
	// SheetName is the sheet to read.
	SheetName string
	// SkipRows is the number of leading rows to skip before the header row.
	SkipRows int
	// Logger receives debug output. If nil, nothing is logged.
	Logger *slog.Logger
}

// DefaultOptions returns options for the artifact inventory sheet.
func DefaultOptions() Options {
	return Options{
		SheetName: DefaultSheetName,
		SkipRows:  DefaultSkipRows,
	}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.DiscardHandler)
}
