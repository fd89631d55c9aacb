// Package remotetest provides an in-memory remote.Service for tests.
package remotetest

import (
	"context"
	"sync"

	"google.golang.org/api/sheets/v4"
)

// Fake is an in-memory document that records every call made to it.
//
// Structural requests are applied to the document as far as sheet creation and deletion go;
// every other request is acknowledged with an empty reply. Setting one of the Err fields
// makes the corresponding call fail without being applied.
type Fake struct {
	mu sync.Mutex

	// Document is the state returned by Get.
	Document *sheets.Spreadsheet
	// NextSheetID is the id given to the next added sheet.
	NextSheetID int64

	GetErr               error
	BatchUpdateErr       error
	BatchUpdateValuesErr error

	GetCalls               int
	BatchUpdateCalls       []*sheets.BatchUpdateSpreadsheetRequest
	BatchUpdateValuesCalls []*sheets.BatchUpdateValuesRequest
}

// New returns a Fake document whose sheets have the given titles and ids 0, 1, 2 and so on.
func New(spreadsheetID string, titles ...string) *Fake {
	doc := &sheets.Spreadsheet{SpreadsheetId: spreadsheetID}
	for i, title := range titles {
		doc.Sheets = append(doc.Sheets, &sheets.Sheet{
			Properties: &sheets.SheetProperties{SheetId: int64(i), Title: title, Index: int64(i)},
		})
	}
	return &Fake{Document: doc, NextSheetID: 1000}
}

// Get returns a copy of the document's sheet list.
func (f *Fake) Get(_ context.Context, _ string) (*sheets.Spreadsheet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.GetCalls++
	if f.GetErr != nil {
		return nil, f.GetErr
	}
	doc := *f.Document
	doc.Sheets = append([]*sheets.Sheet(nil), f.Document.Sheets...)
	return &doc, nil
}

// BatchUpdate records req and applies addSheet and deleteSheet requests.
func (f *Fake) BatchUpdate(_ context.Context, spreadsheetID string, req *sheets.BatchUpdateSpreadsheetRequest) (*sheets.BatchUpdateSpreadsheetResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.BatchUpdateCalls = append(f.BatchUpdateCalls, req)
	if f.BatchUpdateErr != nil {
		return nil, f.BatchUpdateErr
	}

	resp := &sheets.BatchUpdateSpreadsheetResponse{SpreadsheetId: spreadsheetID}
	for _, r := range req.Requests {
		reply := &sheets.Response{}
		switch {
		case r.AddSheet != nil:
			props := *r.AddSheet.Properties
			props.SheetId = f.NextSheetID
			props.Index = int64(len(f.Document.Sheets))
			f.NextSheetID++
			f.Document.Sheets = append(f.Document.Sheets, &sheets.Sheet{Properties: &props})
			reply.AddSheet = &sheets.AddSheetResponse{Properties: &props}
		case r.DeleteSheet != nil:
			kept := f.Document.Sheets[:0:0]
			for _, s := range f.Document.Sheets {
				if s.Properties.SheetId != r.DeleteSheet.SheetId {
					kept = append(kept, s)
				}
			}
			f.Document.Sheets = kept
		}
		resp.Replies = append(resp.Replies, reply)
	}
	return resp, nil
}

// BatchUpdateValues records req and acknowledges every value range.
func (f *Fake) BatchUpdateValues(_ context.Context, spreadsheetID string, req *sheets.BatchUpdateValuesRequest) (*sheets.BatchUpdateValuesResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.BatchUpdateValuesCalls = append(f.BatchUpdateValuesCalls, req)
	if f.BatchUpdateValuesErr != nil {
		return nil, f.BatchUpdateValuesErr
	}

	resp := &sheets.BatchUpdateValuesResponse{SpreadsheetId: spreadsheetID}
	for _, d := range req.Data {
		var cells int64
		for _, row := range d.Values {
			cells += int64(len(row))
		}
		resp.Responses = append(resp.Responses, &sheets.UpdateValuesResponse{
			SpreadsheetId: spreadsheetID,
			UpdatedRange:  d.Range,
			UpdatedCells:  cells,
		})
		resp.TotalUpdatedCells += cells
	}
	return resp, nil
}
