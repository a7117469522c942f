// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import "errors"

// ErrorKind classifies a conversion failure.
type ErrorKind string

const (
	// KindOpen covers failures opening or parsing the input workbook.
	KindOpen ErrorKind = "open"
	// KindNoSheets means the document contains no sheets.
	KindNoSheets ErrorKind = "no-sheets"
	// KindNoTables means the first sheet contains no tables.
	KindNoTables ErrorKind = "no-tables"
	// KindRead covers failures while iterating rows.
	KindRead ErrorKind = "read"
	// KindWrite covers failures writing the CSV output.
	KindWrite ErrorKind = "write"
)

// ErrNoSheets is reported when the document has no sheets.
var ErrNoSheets = errors.New("no sheets found in document")

// ErrNoTables is reported when the first sheet has no tables.
var ErrNoTables = errors.New("no tables found in sheet")

// Error wraps a conversion failure with its kind.
type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	return string(e.Kind) + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the ErrorKind of err if it is a conversion Error,
// or the empty string otherwise.
func KindOf(err error) ErrorKind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return ""
}
