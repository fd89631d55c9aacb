// Copyright 2024 The Alis Build Platform. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package a1 converts between spreadsheet A1 notation and zero-based grid indexes.

An address such as "AA12" is a run of uppercase column letters, read as a bijective base-26
numeral (A=1, Z=26, AA=27), followed by a 1-based row number. A range such as "A3:B4" is
two addresses separated by a colon. Either endpoint may omit its row ("A5:B") to leave the
range open towards the first or last row of the sheet.

	r, err := a1.ParseRange("A3:B4", sheetID)
	// r == grid.GridRange{SheetID: sheetID, StartRowIndex: grid.Index(2), EndRowIndex: grid.Index(4), StartColumnIndex: 0, EndColumnIndex: 2}

Column letters and cell names are converted with github.com/xuri/excelize/v2, so columns run
up to "XFD" and rows up to 1048576. The reverse conversion is covered for columns 1 to
[MaxColumn] ("ZZ").
*/
package a1 // import "go.alis.build/sheets/a1"
