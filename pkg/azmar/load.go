package azmar

import (
	"errors"
	"os"

	"github.com/ukaji3/azmar-go/pkg/azmar/models"
	"github.com/ukaji3/azmar-go/pkg/azmar/parser"
	"github.com/xuri/excelize/v2"
)

// LoadArtifacts reads the "Main Chamber" sheet of an Excel file, skipping
// the first 3 rows.
func LoadArtifacts(path string) (*models.Table, error) {
	return LoadSheet(path, DefaultOptions())
}

// LoadSheet reads opts.SheetName of an Excel file into a Table, skipping
// opts.SkipRows rows before the header.
func LoadSheet(path string, opts Options) (*models.Table, error) {
	log := opts.logger().With("path", path, "sheet", opts.SheetName)

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, NewLoadError(path, "sheet", ErrRead, err)
	}
	defer f.Close()

	table, err := parser.ReadSheet(f, opts.SheetName, opts.SkipRows)
	if err != nil {
		var missing excelize.ErrSheetNotExist
		if errors.As(err, &missing) {
			log.Debug("sheet not found", "sheets", f.GetSheetList())
			return nil, NewLoadError(path, "sheet", ErrNotFound, err)
		}
		return nil, NewLoadError(path, "sheet", ErrRead, err)
	}

	log.Debug("loaded sheet", "range", table.Range, "columns", len(table.Columns), "rows", table.Len())
	return table, nil
}

// LoadLocations reads a tab-separated location notes file.
func LoadLocations(path string) (*models.Table, error) {
	return LoadDelimited(path, DefaultOptions())
}

// LoadDelimited reads a tab-separated file into a Table using the first line
// as column headers. Only opts.Logger is used.
func LoadDelimited(path string, opts Options) (*models.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, NewLoadError(path, "delimited", ErrRead, err)
	}
	defer f.Close()

	table, err := parser.ReadDelimited(f)
	if err != nil {
		return nil, NewLoadError(path, "delimited", ErrRead, err)
	}

	opts.logger().Debug("loaded delimited file", "path", path, "columns", len(table.Columns), "rows", table.Len())
	return table, nil
}

// LoadJournal reads a journal file as decoded text. Only opts.Logger is used.
func LoadJournal(path string, opts Options) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", NewLoadError(path, "journal", ErrRead, err)
	}
	defer f.Close()

	text, err := parser.DecodeText(f)
	if err != nil {
		return "", NewLoadError(path, "journal", ErrRead, err)
	}

	opts.logger().Debug("loaded journal", "path", path, "bytes", len(text))
	return text, nil
}

// ExtractJournal returns the dates and codes found in a journal text.
func ExtractJournal(text string) models.JournalData {
	return models.JournalData{
		Dates: parser.ExtractDates(text),
		Codes: parser.ExtractCodes(text),
	}
}

// ScanJournal returns every date and code token of a journal text ordered by offset.
func ScanJournal(text string) []models.Token {
	return parser.ScanTokens(text)
}
