package grid

import "google.golang.org/api/sheets/v4"

// SourceRange is a closed rectangle of cells used as chart data.
//
// It is built from 1-based coordinates. The start is stored zero-based and the end is stored
// as given, which makes it the exclusive zero-based bound the remote schema expects.
type SourceRange struct {
	StartRowIndex    int64
	StartColumnIndex int64
	EndRowIndex      int64
	EndColumnIndex   int64
}

// NewSourceRange returns the single-cell range at the 1-based (row, column).
// Use To to widen it.
func NewSourceRange(row, column int64) SourceRange {
	return SourceRange{
		StartRowIndex:    row - 1,
		StartColumnIndex: column - 1,
		EndRowIndex:      row,
		EndColumnIndex:   column,
	}
}

// To returns a copy of the range ending at the 1-based (row, column), inclusive.
func (s SourceRange) To(row, column int64) SourceRange {
	s.EndRowIndex = row
	s.EndColumnIndex = column
	return s
}

// GridRange returns the range as a fully bounded GridRange on the given sheet.
func (s SourceRange) GridRange(sheetID int64) GridRange {
	return GridRange{
		SheetID:          sheetID,
		StartRowIndex:    Index(s.StartRowIndex),
		EndRowIndex:      Index(s.EndRowIndex),
		StartColumnIndex: s.StartColumnIndex,
		EndColumnIndex:   s.EndColumnIndex,
	}
}

// ToAPI maps the range on the given sheet to its Sheets v4 representation.
func (s SourceRange) ToAPI(sheetID int64) *sheets.GridRange {
	return s.GridRange(sheetID).ToAPI()
}
