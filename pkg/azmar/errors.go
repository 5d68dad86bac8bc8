package azmar

import (
	"errors"
	"fmt"
)

// ErrRead indicates a source is missing, inaccessible, or malformed.
var ErrRead = errors.New("read error")

// ErrNotFound indicates a required named sheet is absent from the workbook.
var ErrNotFound = errors.New("not found")

// LoadError represents an error while loading a source.
type LoadError struct {
	Path   string
	Source string // "sheet", "delimited", "journal"
	Kind   error  // ErrRead or ErrNotFound
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s %q: %v: %v", e.Source, e.Path, e.Kind, e.Err)
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *LoadError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// NewLoadError creates a new LoadError.
func NewLoadError(path, source string, kind, err error) *LoadError {
	return &LoadError{
		Path:   path,
		Source: source,
		Kind:   kind,
		Err:    err,
	}
}
