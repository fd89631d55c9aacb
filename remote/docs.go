// Copyright 2024 The Alis Build Platform. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package remote is the boundary to the Google Sheets v4 API.

[Service] is the narrow set of calls the batching layer needs. [Client] implements it on top
of the generated google.golang.org/api/sheets/v4 client:

	client, err := remote.NewClient(ctx, remote.WithCredentialsFile("key.json"))
	if err != nil {
		return err
	}
	doc, err := client.Get(ctx, spreadsheetID)

Failures of these calls are wrapped in a [CallError] by the callers in this module. The
transport error is kept as is and can be inspected with errors.As.
*/
package remote // import "go.alis.build/sheets/remote"
