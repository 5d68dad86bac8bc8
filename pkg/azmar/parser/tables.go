package parser

import (
	"fmt"

	"github.com/ukaji3/azmar-go/pkg/azmar/models"
	"github.com/xuri/excelize/v2"
)

// buildTable turns a header line and data lines into a Table.
// The table is as wide as the widest of header and data lines.
func buildTable(header []string, data [][]string) *models.Table {
	width := len(header)
	for _, raw := range data {
		if len(raw) > width {
			width = len(raw)
		}
	}

	t := &models.Table{
		Columns: columnNames(header, width),
		Rows:    make([]models.Row, 0, len(data)),
	}
	for _, raw := range data {
		t.Rows = append(t.Rows, buildRow(raw, width))
	}
	return t
}

// columnNames returns width unique column names.
// Empty or missing headers at index i become "Unnamed: i"; a repeated
// name X becomes X.1, X.2, and so on.
func columnNames(header []string, width int) []string {
	names := make([]string, width)
	seen := make(map[string]int, width)

	for i := 0; i < width; i++ {
		name := ""
		if i < len(header) {
			name = header[i]
		}
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}

		if n, dup := seen[name]; dup {
			candidate := name
			for {
				n++
				candidate = fmt.Sprintf("%s.%d", name, n)
				if _, taken := seen[candidate]; !taken {
					break
				}
			}
			seen[name] = n
			name = candidate
		}
		seen[name] = 0
		names[i] = name
	}

	return names
}

// blockRange returns the A1 range covering a block that starts at the
// 1-based headerRow and spans rows data rows and width columns.
func blockRange(headerRow, rows, width int) string {
	if width == 0 {
		width = 1
	}
	startCell, _ := excelize.CoordinatesToCellName(1, headerRow)
	endCell, _ := excelize.CoordinatesToCellName(width, headerRow+rows)
	return fmt.Sprintf("%s:%s", startCell, endCell)
}
