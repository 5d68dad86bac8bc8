package parser

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ukaji3/azmar-go/pkg/azmar/models"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Delimiter is the field separator for delimited sources.
const Delimiter = "\t"

// ErrFieldCount indicates a line has more fields than the header.
var ErrFieldCount = errors.New("too many fields")

// DecodeText reads r fully as text. A leading byte order mark selects
// UTF-8 or UTF-16 and is removed; invalid UTF-8 is replaced with U+FFFD.
func DecodeText(r io.Reader) (string, error) {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	b, err := io.ReadAll(transform.NewReader(r, dec))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ReadDelimited reads tab-separated text into a Table.
// The first non-blank line is the header; each later non-blank line is one
// row. Fields are split on every tab with no quoting. Lines shorter than the
// header are padded with empty cells.
func ReadDelimited(r io.Reader) (*models.Table, error) {
	text, err := DecodeText(r)
	if err != nil {
		return nil, err
	}

	var header []string
	var data [][]string
	for n, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}

		fields := strings.Split(line, Delimiter)
		if header == nil {
			header = fields
			continue
		}
		if len(fields) > len(header) {
			return nil, fmt.Errorf("line %d: expected %d fields, saw %d: %w", n+1, len(header), len(fields), ErrFieldCount)
		}
		data = append(data, fields)
	}

	if header == nil {
		return nil, ErrNoHeader
	}
	return buildTable(header, data), nil
}
