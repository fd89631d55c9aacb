package session

import (
	"go.alis.build/sheets/grid"
	"go.alis.build/sheets/requests"
	"google.golang.org/api/sheets/v4"
)

// The methods below apply to the current sheet. They return an error wrapping
// ErrNoSheetSelected when the document has no sheets.

// PrepareMergeCells is Sheet.PrepareMergeCells on the current sheet.
func (s *Session) PrepareMergeCells(cellsRange string, mergeType requests.MergeType) error {
	sheet, err := s.currentSheet()
	if err != nil {
		return err
	}
	return sheet.PrepareMergeCells(cellsRange, mergeType)
}

// PrepareSetCellsFormat is Sheet.PrepareSetCellsFormat on the current sheet.
func (s *Session) PrepareSetCellsFormat(cellsRange string, format *sheets.CellFormat, fields string) error {
	sheet, err := s.currentSheet()
	if err != nil {
		return err
	}
	return sheet.PrepareSetCellsFormat(cellsRange, format, fields)
}

// PrepareSetCellsFormats is Sheet.PrepareSetCellsFormats on the current sheet.
func (s *Session) PrepareSetCellsFormats(cellsRange string, formats [][]*sheets.CellFormat, fields string) error {
	sheet, err := s.currentSheet()
	if err != nil {
		return err
	}
	return sheet.PrepareSetCellsFormats(cellsRange, formats, fields)
}

// PrepareSetDimensionPixelSize is Sheet.PrepareSetDimensionPixelSize on the current sheet.
func (s *Session) PrepareSetDimensionPixelSize(dimension requests.Dimension, start, end, pixelSize int64) error {
	return s.onCurrent(func(sheet *Sheet) {
		sheet.PrepareSetDimensionPixelSize(dimension, start, end, pixelSize)
	})
}

// PrepareSetColumnsWidth is Sheet.PrepareSetColumnsWidth on the current sheet.
func (s *Session) PrepareSetColumnsWidth(start, end, width int64) error {
	return s.onCurrent(func(sheet *Sheet) { sheet.PrepareSetColumnsWidth(start, end, width) })
}

// PrepareSetColumnWidth is Sheet.PrepareSetColumnWidth on the current sheet.
func (s *Session) PrepareSetColumnWidth(column, width int64) error {
	return s.onCurrent(func(sheet *Sheet) { sheet.PrepareSetColumnWidth(column, width) })
}

// PrepareSetRowsHeight is Sheet.PrepareSetRowsHeight on the current sheet.
func (s *Session) PrepareSetRowsHeight(start, end, height int64) error {
	return s.onCurrent(func(sheet *Sheet) { sheet.PrepareSetRowsHeight(start, end, height) })
}

// PrepareSetRowHeight is Sheet.PrepareSetRowHeight on the current sheet.
func (s *Session) PrepareSetRowHeight(row, height int64) error {
	return s.onCurrent(func(sheet *Sheet) { sheet.PrepareSetRowHeight(row, height) })
}

// PrepareSetFrozen is Sheet.PrepareSetFrozen on the current sheet.
func (s *Session) PrepareSetFrozen(rows, columns int64) error {
	return s.onCurrent(func(sheet *Sheet) { sheet.PrepareSetFrozen(rows, columns) })
}

// PrepareAddPieChart is Sheet.PrepareAddPieChart on the current sheet.
func (s *Session) PrepareAddPieChart(title string, domain, series grid.SourceRange, position grid.OverlayPosition) error {
	return s.onCurrent(func(sheet *Sheet) { sheet.PrepareAddPieChart(title, domain, series, position) })
}

// PrepareAddBasicChart is Sheet.PrepareAddBasicChart on the current sheet.
func (s *Session) PrepareAddBasicChart(chartType, title string, domain grid.SourceRange, series []grid.SourceRange, position grid.OverlayPosition) error {
	return s.onCurrent(func(sheet *Sheet) {
		sheet.PrepareAddBasicChart(chartType, title, domain, series, position)
	})
}

// PrepareSetValues is Sheet.PrepareSetValues on the current sheet.
func (s *Session) PrepareSetValues(cellsRange string, values [][]interface{}, majorDimension requests.Dimension) error {
	return s.onCurrent(func(sheet *Sheet) { sheet.PrepareSetValues(cellsRange, values, majorDimension) })
}

// PrepareSetValue is Sheet.PrepareSetValue on the current sheet.
func (s *Session) PrepareSetValue(cell string, value interface{}) error {
	return s.onCurrent(func(sheet *Sheet) { sheet.PrepareSetValue(cell, value) })
}

func (s *Session) onCurrent(fn func(*Sheet)) error {
	sheet, err := s.currentSheet()
	if err != nil {
		return err
	}
	fn(sheet)
	return nil
}
