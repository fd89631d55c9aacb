package session_test

import (
	"context"
	"fmt"

	"go.alis.build/alog"
	"go.alis.build/sheets/cells"
	"go.alis.build/sheets/remote/remotetest"
	"go.alis.build/sheets/requests"
	"go.alis.build/sheets/session"
)

func ExampleSession_AddSheet() {
	alog.SetLevel(alog.LevelError)
	ctx := context.Background()
	svc := remotetest.New("doc-1", "Sheet1")

	doc, err := session.New(ctx, svc, "doc-1")
	if err != nil {
		panic(err)
	}
	report, err := doc.AddSheet(ctx, "Report", 0, 0)
	if err != nil {
		panic(err)
	}
	fmt.Println(report.Title(), report.ID(), doc.Current().Title())
	// Output: Report 1000 Report
}

func ExampleSession_ExecuteQueue() {
	alog.SetLevel(alog.LevelError)
	ctx := context.Background()
	svc := remotetest.New("doc-1", "Sheet1")

	doc, err := session.New(ctx, svc, "doc-1")
	if err != nil {
		panic(err)
	}
	header := cells.Format(cells.Bold(), cells.HorizontalAlignment("CENTER"))
	if err := doc.PrepareSetCellsFormat("A1:C1", header, cells.FormatFields(header)); err != nil {
		panic(err)
	}
	if err := doc.PrepareSetValues("A1:C1", [][]interface{}{{"Name", "Units", "Price"}}, requests.Rows); err != nil {
		panic(err)
	}
	if err := doc.PrepareSetFrozen(1, 0); err != nil {
		panic(err)
	}

	result, err := doc.ExecuteQueue(ctx, requests.UserEntered)
	if err != nil {
		panic(err)
	}
	fmt.Println(len(result.Replies), len(result.Responses), result.Responses[0].UpdatedCells)
	// Output: 3 1 3
}
