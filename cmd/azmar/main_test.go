package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	t.Log(errOut.String())
	return out.String(), err
}

func writeFixtures(t *testing.T) (xlsx, tsv, journal string) {
	t.Helper()
	dir := t.TempDir()

	f := excelize.NewFile()
	defer f.Close()
	_, err := f.NewSheet("Main Chamber")
	require.NoError(t, err)
	require.NoError(t, f.SetCellValue("Main Chamber", "A1", "Temple of Azmar - Artifact Inventory"))
	require.NoError(t, f.SetSheetRow("Main Chamber", "A4", &[]interface{}{"ArtifactName", "EstimatedValue", "RoomFound"}))
	require.NoError(t, f.SetSheetRow("Main Chamber", "A5", &[]interface{}{"Golden Idol", 5000, "Altar Room"}))
	xlsx = filepath.Join(dir, "artifacts.xlsx")
	require.NoError(t, f.SaveAs(xlsx))

	tsv = filepath.Join(dir, "locations.tsv")
	require.NoError(t, os.WriteFile(tsv, []byte("LocationID\tDescription\tDangerLevel\nLOC01\tEntrance Hall\tLow\n"), 0644))

	journal = filepath.Join(dir, "journal.txt")
	require.NoError(t, os.WriteFile(journal, []byte("Entry: 10/25/2024\nCode AZMAR-999 and AZMAR-ABC.\n"), 0644))
	return xlsx, tsv, journal
}

func TestJournalCommandJSON(t *testing.T) {
	_, _, journal := writeFixtures(t)

	out, err := runCLI(t, "journal", journal, "--format", "json")
	require.NoError(t, err)

	var doc struct {
		Dates []string `json:"dates"`
		Codes []string `json:"codes"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, []string{"10/25/2024"}, doc.Dates)
	assert.Equal(t, []string{"AZMAR-999"}, doc.Codes)
}

func TestJournalCommandTokens(t *testing.T) {
	_, _, journal := writeFixtures(t)

	out, err := runCLI(t, "journal", journal, "--tokens", "--format", "json")
	require.NoError(t, err)

	var tokens []struct {
		Kind   string `json:"kind"`
		Value  string `json:"value"`
		Offset int    `json:"offset"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &tokens))
	require.Len(t, tokens, 2)
	assert.Equal(t, "date", tokens[0].Kind)
	assert.Equal(t, 7, tokens[0].Offset)
	assert.Equal(t, "AZMAR-999", tokens[1].Value)
}

func TestArtifactsCommand(t *testing.T) {
	xlsx, _, _ := writeFixtures(t)

	out, err := runCLI(t, "artifacts", xlsx)
	require.NoError(t, err)
	assert.Contains(t, out, "Golden Idol")
	assert.Contains(t, out, "(1 rows)")

	_, err = runCLI(t, "artifacts", xlsx, "--sheet", "Side Chamber")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sheet not found")

	_, err = runCLI(t, "artifacts", filepath.Join(t.TempDir(), "nope.xlsx"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")
}

func TestLocationsCommandYAML(t *testing.T) {
	_, tsv, _ := writeFixtures(t)

	out, err := runCLI(t, "locations", tsv, "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "LocationID: LOC01")
}

func TestReportCommand(t *testing.T) {
	xlsx, tsv, journal := writeFixtures(t)

	out, err := runCLI(t, "report", xlsx, tsv, journal)
	require.NoError(t, err)
	assert.Contains(t, out, "Golden Idol")
	assert.Contains(t, out, "Entrance Hall")
	assert.Contains(t, out, "AZMAR-999")
}

func TestReportCommandContinuesAfterFailure(t *testing.T) {
	xlsx, _, journal := writeFixtures(t)
	missing := filepath.Join(t.TempDir(), "nope.tsv")

	out, err := runCLI(t, "report", xlsx, missing, journal, "--format", "json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "locations")

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Contains(t, doc, "artifacts")
	assert.Contains(t, doc, "journal")
	assert.Contains(t, doc, "errors")
	assert.NotContains(t, doc, "locations")
}

func TestInvalidFormat(t *testing.T) {
	_, _, journal := writeFixtures(t)

	_, err := runCLI(t, "journal", journal, "--format", "xml")
	assert.Error(t, err)
}
