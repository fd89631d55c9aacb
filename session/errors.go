package session

import "errors"

var (
	// ErrSheetNotFound is returned when a sheet title is not in the directory.
	ErrSheetNotFound = errors.New("sheet not found")
	// ErrNoSheetSelected is returned by Session level builders when the document has no
	// current sheet.
	ErrNoSheetSelected = errors.New("no sheet selected")
	// ErrMissingReply is returned when a flush succeeded but the reply for an operation is
	// absent or has an unexpected shape.
	ErrMissingReply = errors.New("missing reply")
)
