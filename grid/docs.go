// Copyright 2024 The Alis Build Platform. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package grid provides the geometry value objects used when targeting cells on a sheet.

A [GridRange] is a zero-based rectangle with exclusive end bounds, as required by the
Google Sheets v4 API. Its row bounds are optional: an absent start row means "from the
first row" and an absent end row means "through the last row".

[SourceRange] and [OverlayPosition] describe chart data ranges and the anchored pixel
position of a floating object such as a chart.
*/
package grid // import "go.alis.build/sheets/grid"
