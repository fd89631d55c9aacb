// Copyright 2024 The Alis Build Platform. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package auth obtains OAuth2 tokens for the Sheets API.

A WebFlow runs the three-legged web server flow with a client secrets file downloaded from the
Google Cloud console. The user opens AuthURL, grants access and returns with a code that
Exchange trades for a token:

	flow, err := auth.NewWebFlowFromFile("client_secret.json")
	if err != nil {
		return err
	}
	fmt.Println("Visit", flow.AuthURL("state-token"))
	token, err := flow.Exchange(ctx, code)
	if err != nil {
		return err
	}
	svc, err := remote.NewClient(ctx, flow.Option(ctx, token))

Service accounts skip the user interaction:

	ts, err := auth.ServiceAccount(ctx, keyJSON)
	if err != nil {
		return err
	}
	svc, err := remote.NewClient(ctx, remote.WithTokenSource(ts))
*/
package auth // import "go.alis.build/sheets/auth"
