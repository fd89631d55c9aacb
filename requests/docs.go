// Copyright 2024 The Alis Build Platform. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package requests defines the pending operations that are batched against a spreadsheet.

Structural operations (sheet creation, merges, formats, dimensions, frozen panes, charts)
implement [Operation]. Each variant carries only the fields it needs and maps itself to a
single [sheets.Request] through ToRequest. Value writes are [ValueWrite] entries, sent
through the separate values endpoint.
*/
package requests // import "go.alis.build/sheets/requests"
