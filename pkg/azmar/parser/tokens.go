package parser

import (
	"regexp"
	"slices"

	"github.com/ukaji3/azmar-go/pkg/azmar/models"
)

// Token patterns. Go's \d matches ASCII digits only.
var (
	datePattern = regexp.MustCompile(`\d{2}/\d{2}/\d{4}`)
	codePattern = regexp.MustCompile(`AZMAR-\d{3}`)
)

// ExtractDates returns every DD/DD/DDDD substring of text, leftmost first and
// non-overlapping. Month and day ranges are not checked.
func ExtractDates(text string) []string {
	return findAll(datePattern, text)
}

// ExtractCodes returns every AZMAR-DDD substring of text, leftmost first and
// non-overlapping.
func ExtractCodes(text string) []string {
	return findAll(codePattern, text)
}

// ScanTokens returns date and code tokens of text ordered by offset.
// Each kind is matched independently, so a date and a code may share bytes.
func ScanTokens(text string) []models.Token {
	tokens := make([]models.Token, 0)
	tokens = appendTokens(tokens, models.TokenDate, datePattern, text)
	tokens = appendTokens(tokens, models.TokenCode, codePattern, text)

	slices.SortStableFunc(tokens, func(a, b models.Token) int {
		return a.Offset - b.Offset
	})
	return tokens
}

func findAll(re *regexp.Regexp, text string) []string {
	matches := re.FindAllString(text, -1)
	if matches == nil {
		return []string{}
	}
	return matches
}

func appendTokens(tokens []models.Token, kind models.TokenKind, re *regexp.Regexp, text string) []models.Token {
	for _, loc := range re.FindAllStringIndex(text, -1) {
		tokens = append(tokens, models.Token{
			Kind:   kind,
			Value:  text[loc[0]:loc[1]],
			Offset: loc[0],
		})
	}
	return tokens
}
