package parser

import (
	"errors"
	"fmt"
	"slices"

	"github.com/ukaji3/azmar-go/pkg/azmar/models"
	"github.com/xuri/excelize/v2"
)

// ErrNoHeader indicates the source has no header row to read.
var ErrNoHeader = errors.New("no header row")

// ReadSheet reads a sheet into a Table.
// The first skip physical rows are ignored, the next row is the header, and
// every later row is a data row. Blank rows inside the block are kept.
// A sheet whose name does not match exactly, including case, is reported as
// excelize.ErrSheetNotExist.
func ReadSheet(f *excelize.File, sheetName string, skip int) (*models.Table, error) {
	if skip < 0 {
		return nil, fmt.Errorf("negative skip count %d", skip)
	}

	// GetSheetIndex ignores case; sheet names must match exactly.
	if !slices.Contains(f.GetSheetList(), sheetName) {
		return nil, excelize.ErrSheetNotExist{SheetName: sheetName}
	}

	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	if len(rows) <= skip {
		return nil, fmt.Errorf("sheet %q has %d rows, skipping %d: %w", sheetName, len(rows), skip, ErrNoHeader)
	}

	data := rows[skip+1:]
	t := buildTable(rows[skip], data)
	t.Range = blockRange(skip+1, len(data), len(t.Columns))
	return t, nil
}
