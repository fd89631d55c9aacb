package requests

import "google.golang.org/api/sheets/v4"

// ValueWrite is a pending write of literal or formula content to an A1 range.
//
// Range is the fully qualified address, for example "Sheet1!A1:B2". It is sent as written
// and never resolved into grid indexes.
type ValueWrite struct {
	Range string
	// MajorDimension is how Values is read: ROWS means each inner slice is a row.
	MajorDimension Dimension
	Values         [][]interface{}
}

// ToAPI maps the write to its Sheets v4 representation.
func (v ValueWrite) ToAPI() *sheets.ValueRange {
	major := v.MajorDimension
	if major == "" {
		major = Rows
	}
	return &sheets.ValueRange{
		Range:          v.Range,
		MajorDimension: string(major),
		Values:         v.Values,
	}
}
