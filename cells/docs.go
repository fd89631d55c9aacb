// Copyright 2024 The Alis Build Platform. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package cells provides helpers to build cell formats and values for Google Sheets.

Formats are composed from options:

	header := cells.Format(cells.Bold(), cells.Background(&color.Color{Red: 0.9, Green: 0.9, Blue: 0.9}))
	fields := cells.FormatFields(header) // "userEnteredFormat.backgroundColor,userEnteredFormat.textFormat"

Dates are written as serial numbers, the number of days since 30 December 1899, combined with
a date number format so the sheet renders them as dates.
*/
package cells // import "go.alis.build/sheets/cells"
