package session

import (
	"go.alis.build/sheets/a1"
	"go.alis.build/sheets/grid"
	"go.alis.build/sheets/requests"
	"google.golang.org/api/sheets/v4"
)

// Sheet is a context bound to one sheet of a Session. Operations prepared through it are
// queued on the Session and target this sheet regardless of the current selection.
//
// A Sheet keeps the id it was created with. After a Refresh that removed or recreated the
// sheet, look it up again.
type Sheet struct {
	session *Session
	title   string
	id      int64
}

// Title returns the sheet title.
func (sh *Sheet) Title() string { return sh.title }

// ID returns the sheet id.
func (sh *Sheet) ID() int64 { return sh.id }

// Select makes this sheet the Session's current sheet.
func (sh *Sheet) Select() bool {
	return sh.session.SelectSheetByTitle(sh.title)
}

// PrepareMergeCells queues a merge of the A1 range, for example "A1:C1". An empty mergeType
// merges all cells.
func (sh *Sheet) PrepareMergeCells(cellsRange string, mergeType requests.MergeType) error {
	r, err := a1.ParseRange(cellsRange, sh.id)
	if err != nil {
		return err
	}
	if mergeType == "" {
		mergeType = requests.MergeAll
	}
	sh.session.queue.EnqueueStructural(requests.MergeCells{Range: r, MergeType: mergeType})
	return nil
}

// PrepareSetCellsFormat queues one format for every cell of the A1 range. An empty fields
// mask defaults to "userEnteredFormat", which resets properties absent from format.
func (sh *Sheet) PrepareSetCellsFormat(cellsRange string, format *sheets.CellFormat, fields string) error {
	r, err := a1.ParseRange(cellsRange, sh.id)
	if err != nil {
		return err
	}
	sh.session.queue.EnqueueStructural(requests.RepeatCell{Range: r, Format: format, Fields: fields})
	return nil
}

// PrepareSetCellsFormats queues a format per cell. formats is row-major and should match the
// shape of the range.
func (sh *Sheet) PrepareSetCellsFormats(cellsRange string, formats [][]*sheets.CellFormat, fields string) error {
	r, err := a1.ParseRange(cellsRange, sh.id)
	if err != nil {
		return err
	}
	sh.session.queue.EnqueueStructural(requests.UpdateCells{Range: r, Formats: formats, Fields: fields})
	return nil
}

// PrepareSetDimensionPixelSize queues a size change for the zero-based rows or columns
// start through end, both inclusive.
func (sh *Sheet) PrepareSetDimensionPixelSize(dimension requests.Dimension, start, end, pixelSize int64) {
	sh.session.queue.EnqueueStructural(requests.UpdateDimensionPixelSize{
		SheetID:    sh.id,
		Dimension:  dimension,
		StartIndex: start,
		EndIndex:   end + 1,
		PixelSize:  pixelSize,
	})
}

// PrepareSetColumnsWidth sets the width of the zero-based columns start through end.
func (sh *Sheet) PrepareSetColumnsWidth(start, end, width int64) {
	sh.PrepareSetDimensionPixelSize(requests.Columns, start, end, width)
}

// PrepareSetColumnWidth sets the width of one zero-based column.
func (sh *Sheet) PrepareSetColumnWidth(column, width int64) {
	sh.PrepareSetColumnsWidth(column, column, width)
}

// PrepareSetRowsHeight sets the height of the zero-based rows start through end.
func (sh *Sheet) PrepareSetRowsHeight(start, end, height int64) {
	sh.PrepareSetDimensionPixelSize(requests.Rows, start, end, height)
}

// PrepareSetRowHeight sets the height of one zero-based row.
func (sh *Sheet) PrepareSetRowHeight(row, height int64) {
	sh.PrepareSetRowsHeight(row, row, height)
}

// PrepareSetFrozen freezes the leading rows and columns. It queues one operation per axis.
func (sh *Sheet) PrepareSetFrozen(rows, columns int64) {
	sh.session.queue.EnqueueStructural(requests.SetFrozen{SheetID: sh.id, Dimension: requests.Rows, Count: rows})
	sh.session.queue.EnqueueStructural(requests.SetFrozen{SheetID: sh.id, Dimension: requests.Columns, Count: columns})
}

// PrepareAddPieChart queues a flat pie chart with the legend on the right.
func (sh *Sheet) PrepareAddPieChart(title string, domain, series grid.SourceRange, position grid.OverlayPosition) {
	sh.session.queue.EnqueueStructural(requests.AddPieChart{
		SheetID:  sh.id,
		Title:    title,
		Domain:   domain,
		Series:   series,
		Position: position,
	})
}

// PrepareAddBasicChart queues a chart of the given type, for example "COLUMN" or "LINE",
// with one series per range.
func (sh *Sheet) PrepareAddBasicChart(chartType, title string, domain grid.SourceRange, series []grid.SourceRange, position grid.OverlayPosition) {
	sh.session.queue.EnqueueStructural(requests.AddBasicChart{
		SheetID:   sh.id,
		Title:     title,
		ChartType: chartType,
		Domain:    domain,
		Series:    series,
		Position:  position,
	})
}

// PrepareSetValues queues a value write to the A1 range. The range is sent as written,
// prefixed with the sheet title. An empty majorDimension means ROWS.
func (sh *Sheet) PrepareSetValues(cellsRange string, values [][]interface{}, majorDimension requests.Dimension) {
	sh.session.queue.EnqueueValueWrite(requests.ValueWrite{
		Range:          sh.title + "!" + cellsRange,
		MajorDimension: majorDimension,
		Values:         values,
	})
}

// PrepareSetValue queues a write of a single value to the cell, for example "B3".
func (sh *Sheet) PrepareSetValue(cell string, value interface{}) {
	sh.PrepareSetValues(cell+":"+cell, [][]interface{}{{value}}, requests.Rows)
}
