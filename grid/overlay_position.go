package grid

import "google.golang.org/api/sheets/v4"

// OverlayPosition anchors a floating object to a cell and offsets it in pixels.
//
// The zero value anchors at the top-left cell with no offset.
type OverlayPosition struct {
	// RowIndex is the zero-based row of the anchor cell.
	RowIndex int64
	// ColumnIndex is the zero-based column of the anchor cell.
	ColumnIndex int64
	// OffsetXPixels is the horizontal offset from the anchor cell.
	OffsetXPixels int64
	// OffsetYPixels is the vertical offset from the anchor cell.
	OffsetYPixels int64
	// WidthPixels and HeightPixels size the object. Zero leaves the service default.
	WidthPixels  int64
	HeightPixels int64
}

// ToAPI maps the position on the given sheet to the nested anchor/offset shape of the
// Sheets v4 API.
func (p OverlayPosition) ToAPI(sheetID int64) *sheets.EmbeddedObjectPosition {
	return &sheets.EmbeddedObjectPosition{
		OverlayPosition: &sheets.OverlayPosition{
			AnchorCell: &sheets.GridCoordinate{
				SheetId:         sheetID,
				RowIndex:        p.RowIndex,
				ColumnIndex:     p.ColumnIndex,
				ForceSendFields: []string{"SheetId", "RowIndex", "ColumnIndex"},
			},
			OffsetXPixels:   p.OffsetXPixels,
			OffsetYPixels:   p.OffsetYPixels,
			WidthPixels:     p.WidthPixels,
			HeightPixels:    p.HeightPixels,
			ForceSendFields: []string{"OffsetXPixels", "OffsetYPixels"},
		},
	}
}
