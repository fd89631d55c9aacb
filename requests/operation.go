package requests

import (
	"go.alis.build/sheets/grid"
	"go.alis.build/utils"
	"google.golang.org/api/sheets/v4"
)

// Operation is a pending structural change to a spreadsheet.
//
// The set of implementations is closed: AddSheet, DeleteSheet, MergeCells, RepeatCell,
// UpdateCells, UpdateDimensionPixelSize, SetFrozen, AddPieChart and AddBasicChart.
type Operation interface {
	// Kind returns the request key used on the wire, for example "addSheet".
	Kind() string
	// ToRequest maps the operation to its Sheets v4 request.
	ToRequest() *sheets.Request

	isOperation()
}

// AddSheet creates a new sheet.
type AddSheet struct {
	Title       string
	RowCount    int64
	ColumnCount int64
}

func (AddSheet) isOperation() {}

func (AddSheet) Kind() string { return "addSheet" }

func (o AddSheet) ToRequest() *sheets.Request {
	return &sheets.Request{
		AddSheet: &sheets.AddSheetRequest{
			Properties: &sheets.SheetProperties{
				Title: o.Title,
				GridProperties: &sheets.GridProperties{
					RowCount:    o.RowCount,
					ColumnCount: o.ColumnCount,
				},
			},
		},
	}
}

// DeleteSheet removes the sheet with the given id.
type DeleteSheet struct {
	SheetID int64
}

func (DeleteSheet) isOperation() {}

func (DeleteSheet) Kind() string { return "deleteSheet" }

func (o DeleteSheet) ToRequest() *sheets.Request {
	return &sheets.Request{
		DeleteSheet: &sheets.DeleteSheetRequest{
			SheetId:         o.SheetID,
			ForceSendFields: []string{"SheetId"},
		},
	}
}

// MergeCells merges every cell in Range.
type MergeCells struct {
	Range     grid.GridRange
	MergeType MergeType
}

func (MergeCells) isOperation() {}

func (MergeCells) Kind() string { return "mergeCells" }

func (o MergeCells) ToRequest() *sheets.Request {
	mergeType := o.MergeType
	if mergeType == "" {
		mergeType = MergeAll
	}
	return &sheets.Request{
		MergeCells: &sheets.MergeCellsRequest{
			Range:     o.Range.ToAPI(),
			MergeType: string(mergeType),
		},
	}
}

// RepeatCell applies one format to every cell in Range.
type RepeatCell struct {
	Range  grid.GridRange
	Format *sheets.CellFormat
	// Fields is the field mask of the cell to update. Defaults to DefaultFields.
	Fields string
}

func (RepeatCell) isOperation() {}

func (RepeatCell) Kind() string { return "repeatCell" }

func (o RepeatCell) ToRequest() *sheets.Request {
	return &sheets.Request{
		RepeatCell: &sheets.RepeatCellRequest{
			Range:  o.Range.ToAPI(),
			Cell:   &sheets.CellData{UserEnteredFormat: o.Format},
			Fields: fieldsOrDefault(o.Fields),
		},
	}
}

// UpdateCells applies a format per cell. Formats is row-major and must match the shape of
// Range; a mismatch is left for the remote service to reject.
type UpdateCells struct {
	Range   grid.GridRange
	Formats [][]*sheets.CellFormat
	// Fields is the field mask of each cell to update. Defaults to DefaultFields.
	Fields string
}

func (UpdateCells) isOperation() {}

func (UpdateCells) Kind() string { return "updateCells" }

func (o UpdateCells) ToRequest() *sheets.Request {
	rows := utils.Transform(o.Formats, func(row []*sheets.CellFormat) *sheets.RowData {
		return &sheets.RowData{
			Values: utils.Transform(row, func(f *sheets.CellFormat) *sheets.CellData {
				return &sheets.CellData{UserEnteredFormat: f}
			}),
		}
	})
	return &sheets.Request{
		UpdateCells: &sheets.UpdateCellsRequest{
			Range:  o.Range.ToAPI(),
			Rows:   rows,
			Fields: fieldsOrDefault(o.Fields),
		},
	}
}

// UpdateDimensionPixelSize sets the width of columns or the height of rows in the zero-based
// half-open interval [StartIndex, EndIndex).
type UpdateDimensionPixelSize struct {
	SheetID    int64
	Dimension  Dimension
	StartIndex int64
	EndIndex   int64
	PixelSize  int64
}

func (UpdateDimensionPixelSize) isOperation() {}

func (UpdateDimensionPixelSize) Kind() string { return "updateDimensionProperties" }

func (o UpdateDimensionPixelSize) ToRequest() *sheets.Request {
	return &sheets.Request{
		UpdateDimensionProperties: &sheets.UpdateDimensionPropertiesRequest{
			Range: &sheets.DimensionRange{
				SheetId:         o.SheetID,
				Dimension:       string(o.Dimension),
				StartIndex:      o.StartIndex,
				EndIndex:        o.EndIndex,
				ForceSendFields: []string{"SheetId", "StartIndex", "EndIndex"},
			},
			Properties: &sheets.DimensionProperties{
				PixelSize:       o.PixelSize,
				ForceSendFields: []string{"PixelSize"},
			},
			Fields: "pixelSize",
		},
	}
}

// SetFrozen freezes Count leading rows or columns of a sheet. A zero Count unfreezes.
type SetFrozen struct {
	SheetID   int64
	Dimension Dimension
	Count     int64
}

func (SetFrozen) isOperation() {}

func (SetFrozen) Kind() string { return "updateSheetProperties" }

func (o SetFrozen) ToRequest() *sheets.Request {
	gridProperties := &sheets.GridProperties{}
	var fields string
	if o.Dimension == Columns {
		gridProperties.FrozenColumnCount = o.Count
		gridProperties.ForceSendFields = []string{"FrozenColumnCount"}
		fields = "gridProperties.frozenColumnCount"
	} else {
		gridProperties.FrozenRowCount = o.Count
		gridProperties.ForceSendFields = []string{"FrozenRowCount"}
		fields = "gridProperties.frozenRowCount"
	}
	return &sheets.Request{
		UpdateSheetProperties: &sheets.UpdateSheetPropertiesRequest{
			Properties: &sheets.SheetProperties{
				SheetId:         o.SheetID,
				GridProperties:  gridProperties,
				ForceSendFields: []string{"SheetId"},
			},
			Fields: fields,
		},
	}
}

func fieldsOrDefault(fields string) string {
	if fields == "" {
		return DefaultFields
	}
	return fields
}
