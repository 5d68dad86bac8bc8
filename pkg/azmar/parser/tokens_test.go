package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/azmar-go/pkg/azmar/models"
)

const journalText = `
    Dr. Evelyn Reed - Azmar Expedition Journal

    Entry: 10/25/2024
    Made it inside the main entrance (LOC01). Air is stale. Found strange markings. Code AZMAR-999 seems off.

    Entry: 10/26/2024
    Reached the Altar Room (LOC02). Discovered the Golden Idol! It matches code AZMAR-101. Incredible find.

    Entry: 10/27/2024
    Navigated to the Treasury (LOC03). Found the Jade Monkey. Security code AZMAR-256 seems relevant here. Need to log this by 11/01/2024.

    Entry: 10/28/2024
    Found the Sacrificial Chamber (LOC04). Very unsettling. Recovered the Obsidian Dagger. This corresponds to AZMAR-007 in the old texts.

    Entry: 10/29/2024
    Explored the Flooded Passage (LOC05). Difficult terrain. No major artifacts, but found map fragment AZMAR-314. Planning extraction for 11/05/2024. Invalid date 99/99/9999.
    `

const emptyJournalText = "Journal Entry: No relevant codes or standard dates found here. Maybe next time. AZMAR-ABC is not a code."

func TestExtractDates(t *testing.T) {
	dates := ExtractDates(journalText)
	assert.Equal(t, []string{
		"10/25/2024", "10/26/2024", "10/27/2024", "11/01/2024",
		"10/28/2024", "10/29/2024", "11/05/2024", "99/99/9999",
	}, dates)
}

func TestExtractDatesNoCalendarCheck(t *testing.T) {
	text := "Arrived 10/25/2024. Log by 11/01/2024. Extract 11/05/2024. Invalid date 99/99/9999."
	assert.Equal(t, []string{"10/25/2024", "11/01/2024", "11/05/2024", "99/99/9999"}, ExtractDates(text))
}

func TestExtractCodes(t *testing.T) {
	codes := ExtractCodes(journalText)
	assert.Equal(t, []string{"AZMAR-999", "AZMAR-101", "AZMAR-256", "AZMAR-007", "AZMAR-314"}, codes)
}

func TestExtractNoMatches(t *testing.T) {
	dates := ExtractDates(emptyJournalText)
	codes := ExtractCodes(emptyJournalText)
	require.NotNil(t, dates)
	require.NotNil(t, codes)
	assert.Empty(t, dates)
	assert.Empty(t, codes)

	assert.Empty(t, ExtractDates(""))
	assert.Empty(t, ExtractCodes(""))
}

func TestExtractDatesShapes(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"10/25/2024", []string{"10/25/2024"}},
		{"1/25/2024", []string{}},
		{"10/5/2024", []string{}},
		{"10/25/24", []string{}},
		{"10-25-2024", []string{}},
		{"110/25/20245", []string{"10/25/2024"}},
		{"10/25/202410/26/2024", []string{"10/25/2024", "10/26/2024"}},
		{"٠١/٠٢/٢٠٢٤", []string{}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ExtractDates(tt.input), "ExtractDates(%q)", tt.input)
	}
}

func TestExtractCodesShapes(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"AZMAR-123", []string{"AZMAR-123"}},
		{"AZMAR-99", []string{}},
		{"AZMAR-9999", []string{"AZMAR-999"}},
		{"AZMAR-ABC", []string{}},
		{"azmar-123", []string{}},
		{"AZMAR 123", []string{}},
		{"XAZMAR-001AZMAR-002", []string{"AZMAR-001", "AZMAR-002"}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ExtractCodes(tt.input), "ExtractCodes(%q)", tt.input)
	}
}

func TestExtractIdempotent(t *testing.T) {
	assert.Equal(t, ExtractDates(journalText), ExtractDates(journalText))
	assert.Equal(t, ExtractCodes(journalText), ExtractCodes(journalText))
	assert.Equal(t, ScanTokens(journalText), ScanTokens(journalText))
}

func TestScanTokens(t *testing.T) {
	text := "AZMAR-101 on 10/25/2024, then AZMAR-007 by 11/01/2024."
	tokens := ScanTokens(text)

	assert.Equal(t, []models.Token{
		{Kind: models.TokenCode, Value: "AZMAR-101", Offset: 0},
		{Kind: models.TokenDate, Value: "10/25/2024", Offset: 13},
		{Kind: models.TokenCode, Value: "AZMAR-007", Offset: 30},
		{Kind: models.TokenDate, Value: "11/01/2024", Offset: 43},
	}, tokens)

	for _, tok := range tokens {
		assert.Equal(t, tok.Value, text[tok.Offset:tok.Offset+len(tok.Value)])
	}

	assert.Empty(t, ScanTokens(emptyJournalText))
	assert.Len(t, ScanTokens(journalText), 13)
}
