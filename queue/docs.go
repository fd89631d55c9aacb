// Copyright 2024 The Alis Build Platform. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package queue buffers pending spreadsheet changes and submits them in batches.

A [Queue] holds two ordered, append-only buffers: structural operations and value writes.
[Queue.Flush] sends each non-empty buffer as one batched call, structural changes first,
and then empties both buffers whatever the outcome. Operations that were not applied by a
failed flush are lost and must be prepared again.

	q := queue.New()
	q.EnqueueStructural(requests.MergeCells{Range: r})
	q.EnqueueValueWrite(requests.ValueWrite{Range: "Sheet1!A1:A1", Values: [][]interface{}{{"x"}}})
	result, err := q.Flush(ctx, client, spreadsheetID, requests.UserEntered)

A Queue is not safe for concurrent use.
*/
package queue // import "go.alis.build/sheets/queue"
