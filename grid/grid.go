package grid

import (
	"fmt"

	"google.golang.org/api/sheets/v4"
)

// GridRange is a zero-based rectangle on a single sheet.
//
// Start indexes are inclusive and end indexes are exclusive. A nil row bound is left out of
// the wire representation, which the remote service reads as an open-ended range.
type GridRange struct {
	// SheetID is the identifier of the sheet the range belongs to.
	SheetID int64
	// StartRowIndex is the first row of the range, or nil for an open start.
	StartRowIndex *int64
	// EndRowIndex is the row after the last row of the range, or nil for an open end.
	EndRowIndex *int64
	// StartColumnIndex is the first column of the range.
	StartColumnIndex int64
	// EndColumnIndex is the column after the last column of the range.
	EndColumnIndex int64
}

// Index returns a pointer to i, for populating the optional row bounds of a GridRange.
func Index(i int64) *int64 {
	return &i
}

// ToAPI maps the range to its Sheets v4 representation.
//
// The sheet id and every present bound are always sent, including zero values, since the
// generated client drops zero-valued fields by default.
func (g GridRange) ToAPI() *sheets.GridRange {
	r := &sheets.GridRange{
		SheetId:          g.SheetID,
		StartColumnIndex: g.StartColumnIndex,
		EndColumnIndex:   g.EndColumnIndex,
		ForceSendFields:  []string{"SheetId", "StartColumnIndex", "EndColumnIndex"},
	}
	if g.StartRowIndex != nil {
		r.StartRowIndex = *g.StartRowIndex
		r.ForceSendFields = append(r.ForceSendFields, "StartRowIndex")
	}
	if g.EndRowIndex != nil {
		r.EndRowIndex = *g.EndRowIndex
		r.ForceSendFields = append(r.ForceSendFields, "EndRowIndex")
	}
	return r
}

// String renders the range for logs, using "*" for open row bounds.
func (g GridRange) String() string {
	bound := func(i *int64) string {
		if i == nil {
			return "*"
		}
		return fmt.Sprint(*i)
	}
	return fmt.Sprintf("sheet %d rows [%s, %s) columns [%d, %d)",
		g.SheetID, bound(g.StartRowIndex), bound(g.EndRowIndex), g.StartColumnIndex, g.EndColumnIndex)
}
