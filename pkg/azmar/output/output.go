// Package output serializes loaded tables and journal tokens.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/ukaji3/azmar-go/pkg/azmar/models"
	"gopkg.in/yaml.v3"
)

// ToJSON serializes v to JSON.
func ToJSON(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// ToYAML serializes v to YAML.
func ToYAML(v interface{}) ([]byte, error) {
	return yaml.Marshal(v)
}

// RenderTable writes t as a text table followed by a row count.
func RenderTable(w io.Writer, t *models.Table) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)

	header := make(table.Row, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = c
	}
	tw.AppendHeader(header)

	for _, r := range t.Rows {
		row := make(table.Row, len(r))
		for i, v := range r {
			row[i] = formatCell(v)
		}
		tw.AppendRow(row)
	}

	tw.Render()
	_, _ = fmt.Fprintf(w, "(%d rows)\n", t.Len())
}

// RenderJournal writes the dates and codes of a journal as two text tables.
func RenderJournal(w io.Writer, j models.JournalData) {
	renderList(w, "Date", j.Dates)
	renderList(w, "Code", j.Codes)
}

// RenderTokens writes tokens with their kind and offset.
func RenderTokens(w io.Writer, tokens []models.Token) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Offset", "Kind", "Value"})
	for _, tok := range tokens {
		tw.AppendRow(table.Row{tok.Offset, string(tok.Kind), tok.Value})
	}
	tw.Render()
}

func renderList(w io.Writer, title string, values []string) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"#", title})
	for i, v := range values {
		tw.AppendRow(table.Row{i + 1, v})
	}
	tw.Render()
}

func formatCell(v models.Cell) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
