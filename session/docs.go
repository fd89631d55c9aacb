// Copyright 2024 The Alis Build Platform. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package session batches edits to a single Google Sheets document.

A Session keeps a snapshot of the document's sheets, a current sheet selection and a queue of
pending operations. Prepare* methods only queue work; ExecuteQueue sends everything queued in at
most two remote calls, structural operations first and value writes second.

	svc, err := remote.NewClient(ctx, remote.WithCredentialsFile("key.json"))
	if err != nil {
		return err
	}
	doc, err := session.New(ctx, svc, "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms")
	if err != nil {
		return err
	}
	summary, err := doc.AddSheet(ctx, "Summary", 0, 0)
	if err != nil {
		return err
	}
	if err := summary.PrepareMergeCells("A1:D1", requests.MergeAll); err != nil {
		return err
	}
	summary.PrepareSetValue("A1", "Quarterly summary")
	if _, err := doc.ExecuteQueue(ctx, requests.UserEntered); err != nil {
		return err
	}

Every builder is available on a *Sheet, which is bound to one sheet, and on the Session,
where it applies to the currently selected sheet.

A Session is not safe for concurrent use. Use one Session per goroutine, or guard it.
*/
package session // import "go.alis.build/sheets/session"
