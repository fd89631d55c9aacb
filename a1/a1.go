package a1

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.alis.build/sheets/grid"
)

// MaxColumn is the last column ("ZZ") covered by the address formatting contract.
const MaxColumn = 702

// maxColumnLetters is the length of the last column name excelize accepts, "XFD".
const maxColumnLetters = 3

const columnRangeReason = "outside the sheet grid"

var (
	columnPattern = regexp.MustCompile(`^[A-Z]+`)
	rowPattern    = regexp.MustCompile(`\d+`)
)

// Indexes is the parsed form of a single A1 address.
type Indexes struct {
	// Column is the zero-based column index.
	Column int64
	// Row is the 1-based row number as written. It is only meaningful when HasRow is true.
	Row int64
	// HasRow is false when the address has no digits, as in the open endpoint of "A5:B".
	HasRow bool
}

// ParseCell parses an A1 address such as "AA12".
//
// The leading uppercase letters give the column, returned zero-based. The first run of
// digits gives the row, returned as the 1-based number it was written as. An address with
// no digits yields HasRow == false.
func ParseCell(address string) (Indexes, error) {
	letters := columnPattern.FindString(address)
	if letters == "" {
		return Indexes{}, &MalformedAddressError{Address: address, Reason: "no leading column letters"}
	}
	column, err := ColumnNumber(letters)
	if err != nil {
		return Indexes{}, &MalformedAddressError{Address: address, Reason: err.Error()}
	}

	indexes := Indexes{Column: column - 1}
	if digits := rowPattern.FindString(address[len(letters):]); digits != "" {
		row, err := strconv.ParseInt(digits, 10, 64)
		if err != nil {
			return Indexes{}, &MalformedAddressError{Address: address, Reason: "row number out of range"}
		}
		indexes.Row = row
		indexes.HasRow = true
	}
	return indexes, nil
}

// ParseRange parses range text such as "A3:B4" or "A5:B" into a GridRange on the given sheet.
//
// The start endpoint is shifted to zero-based indexes. The end endpoint is kept as written,
// which is already the exclusive zero-based bound. Endpoints without digits leave the
// corresponding row bound unset. Tokens after the second colon-separated token are ignored.
func ParseRange(text string, sheetID int64) (grid.GridRange, error) {
	tokens := strings.Split(text, ":")
	if len(tokens) < 2 {
		return grid.GridRange{}, &MalformedAddressError{Address: text, Reason: "expected start and end separated by ':'"}
	}

	start, err := ParseCell(tokens[0])
	if err != nil {
		return grid.GridRange{}, err
	}
	end, err := ParseCell(tokens[1])
	if err != nil {
		return grid.GridRange{}, err
	}

	r := grid.GridRange{
		SheetID:          sheetID,
		StartColumnIndex: start.Column,
		EndColumnIndex:   end.Column + 1,
	}
	if start.HasRow {
		r.StartRowIndex = grid.Index(start.Row - 1)
	}
	if end.HasRow {
		r.EndRowIndex = grid.Index(end.Row)
	}
	return r, nil
}

// ColumnNumber converts column letters to their 1-based column number. Columns past
// excelize.MaxColumns ("XFD") are rejected.
func ColumnNumber(letters string) (int64, error) {
	if letters == "" {
		return 0, &MalformedAddressError{Address: letters, Reason: "no column letters"}
	}
	if strings.ToUpper(letters) != letters {
		return 0, &MalformedAddressError{Address: letters, Reason: "column letters must be A-Z"}
	}
	if len(letters) > maxColumnLetters {
		return 0, &MalformedAddressError{Address: letters, Reason: "column out of range"}
	}
	n, err := excelize.ColumnNameToNumber(letters)
	if err != nil {
		return 0, &MalformedAddressError{Address: letters, Reason: err.Error()}
	}
	return int64(n), nil
}

// ColumnName converts a 1-based column number to its letters, e.g. 27 -> "AA".
func ColumnName(column int64) (string, error) {
	if column < 1 || column > excelize.MaxColumns {
		return "", &InvalidCoordinateError{Row: 1, Column: column, Reason: columnRangeReason}
	}
	name, err := excelize.ColumnNumberToName(int(column))
	if err != nil {
		return "", &InvalidCoordinateError{Row: 1, Column: column, Reason: err.Error()}
	}
	return name, nil
}

// CellAddress formats a 1-based (row, column) pair as an A1 address, e.g. (12, 27) -> "AA12".
//
// Columns up to MaxColumn are covered by the contract. Larger columns up to
// excelize.MaxColumns are still encoded with the same bijective numbering but callers must
// not rely on it.
func CellAddress(row, column int64) (string, error) {
	if row < 1 || column < 1 {
		return "", &InvalidCoordinateError{Row: row, Column: column}
	}
	if row > excelize.TotalRows || column > excelize.MaxColumns {
		return "", &InvalidCoordinateError{Row: row, Column: column, Reason: columnRangeReason}
	}
	address, err := excelize.CoordinatesToCellName(int(column), int(row))
	if err != nil {
		return "", &InvalidCoordinateError{Row: row, Column: column, Reason: err.Error()}
	}
	return address, nil
}

// RangeAddress formats two 1-based corners as an A1 range, e.g. (1, 1, 2, 3) -> "A1:C2".
func RangeAddress(startRow, startColumn, endRow, endColumn int64) (string, error) {
	start, err := CellAddress(startRow, startColumn)
	if err != nil {
		return "", err
	}
	end, err := CellAddress(endRow, endColumn)
	if err != nil {
		return "", err
	}
	return start + ":" + end, nil
}
