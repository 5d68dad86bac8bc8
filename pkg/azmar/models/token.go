package models

// TokenKind identifies the lexical shape of an extracted token.
type TokenKind string

const (
	// TokenDate is a DD/DD/DDDD date-like token.
	TokenDate TokenKind = "date"
	// TokenCode is an AZMAR-DDD code token.
	TokenCode TokenKind = "code"
)

// Token is a substring of a journal matching one of the token shapes.
type Token struct {
	// Kind is the token shape.
	Kind TokenKind `json:"kind" yaml:"kind"`
	// Value is the matched text.
	Value string `json:"value" yaml:"value"`
	// Offset is the byte offset of the match in the source text.
	Offset int `json:"offset" yaml:"offset"`
}

// JournalData holds tokens extracted from one journal.
type JournalData struct {
	// Dates lists date tokens in order of occurrence.
	Dates []string `json:"dates" yaml:"dates"`
	// Codes lists code tokens in order of occurrence.
	Codes []string `json:"codes" yaml:"codes"`
}
