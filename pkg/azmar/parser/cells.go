// Package parser provides sheet, delimited-text, and journal token parsing.
package parser

import (
	"errors"
	"math"
	"strconv"

	"github.com/ukaji3/azmar-go/pkg/azmar/models"
)

// buildRow converts raw cell strings into a Row of the given width.
// Missing trailing cells are padded with nil.
func buildRow(raw []string, width int) models.Row {
	row := make(models.Row, width)
	for i := 0; i < width && i < len(raw); i++ {
		row[i] = parseValue(raw[i])
	}
	return row
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for finite decimals, nil for empty, or the original string.
// Integers outside the int64 range and NaN/Inf spellings stay strings.
func parseValue(s string) models.Cell {
	if s == "" {
		return nil
	}
	// Try integer first
	i, err := strconv.ParseInt(s, 10, 64)
	if err == nil {
		return i
	}
	if errors.Is(err, strconv.ErrRange) {
		return s
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		return f
	}
	return s
}
