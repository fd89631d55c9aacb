package queue

import (
	"context"

	"github.com/google/uuid"
	"go.alis.build/alog"
	"go.alis.build/sheets/remote"
	"go.alis.build/sheets/requests"
	"go.alis.build/utils"
	"google.golang.org/api/sheets/v4"
)

// Updater submits batched changes. remote.Service satisfies it.
type Updater interface {
	BatchUpdate(ctx context.Context, spreadsheetID string, req *sheets.BatchUpdateSpreadsheetRequest) (*sheets.BatchUpdateSpreadsheetResponse, error)
	BatchUpdateValues(ctx context.Context, spreadsheetID string, req *sheets.BatchUpdateValuesRequest) (*sheets.BatchUpdateValuesResponse, error)
}

// Queue holds pending structural operations and value writes for one document.
type Queue struct {
	structural []requests.Operation
	values     []requests.ValueWrite
}

// Result holds the replies of a flush, in the order the entries were queued.
type Result struct {
	// BatchID identifies the flush in logs.
	BatchID string
	// Replies has one entry per structural operation. Empty when none were queued.
	Replies []*sheets.Response
	// Responses has one entry per value write. Empty when none were queued.
	Responses []*sheets.UpdateValuesResponse
}

// New returns an empty Queue.
func New() *Queue {
	return &Queue{}
}

// EnqueueStructural appends op and returns its position among the pending structural
// operations. After a successful flush, the reply for op is Result.Replies[position].
func (q *Queue) EnqueueStructural(op requests.Operation) int {
	q.structural = append(q.structural, op)
	return len(q.structural) - 1
}

// EnqueueValueWrite appends v and returns its position among the pending value writes.
func (q *Queue) EnqueueValueWrite(v requests.ValueWrite) int {
	q.values = append(q.values, v)
	return len(q.values) - 1
}

// Len returns the number of pending structural operations and value writes.
func (q *Queue) Len() (structural int, values int) {
	return len(q.structural), len(q.values)
}

// Operations returns a copy of the pending structural operations.
func (q *Queue) Operations() []requests.Operation {
	return append([]requests.Operation(nil), q.structural...)
}

// ValueWrites returns a copy of the pending value writes.
func (q *Queue) ValueWrites() []requests.ValueWrite {
	return append([]requests.ValueWrite(nil), q.values...)
}

// Discard drops every pending entry without sending it and returns how many were dropped.
func (q *Queue) Discard() int {
	n := len(q.structural) + len(q.values)
	q.clear()
	return n
}

func (q *Queue) clear() {
	q.structural = nil
	q.values = nil
}

// Flush submits the pending entries to the document and empties the queue.
//
// Structural operations are sent first as a single BatchUpdate call, then value writes as a
// single BatchUpdateValues call using inputOption (UserEntered when empty). An empty buffer
// is skipped without a call. If the structural call fails the value call is not attempted.
//
// Both buffers are emptied on every return path. On error the returned Result holds the
// replies of any call that completed, and the error is a *remote.CallError.
func (q *Queue) Flush(ctx context.Context, u Updater, spreadsheetID string, inputOption requests.ValueInputOption) (*Result, error) {
	defer q.clear()

	if inputOption == "" {
		inputOption = requests.UserEntered
	}
	result := &Result{
		BatchID:   uuid.NewString(),
		Replies:   []*sheets.Response{},
		Responses: []*sheets.UpdateValuesResponse{},
	}
	if len(q.structural) == 0 && len(q.values) == 0 {
		return result, nil
	}
	alog.Infof(ctx, "flush %s: %d structural operations and %d value writes for %s",
		result.BatchID, len(q.structural), len(q.values), spreadsheetID)

	if len(q.structural) > 0 {
		resp, err := u.BatchUpdate(ctx, spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
			Requests: utils.Transform(q.structural, func(op requests.Operation) *sheets.Request {
				return op.ToRequest()
			}),
		})
		if err != nil {
			alog.Errorf(ctx, "flush %s: structural batch failed: %v", result.BatchID, err)
			return result, &remote.CallError{Method: remote.MethodBatchUpdate, Err: err}
		}
		if resp != nil && resp.Replies != nil {
			result.Replies = resp.Replies
		}
	}

	if len(q.values) > 0 {
		resp, err := u.BatchUpdateValues(ctx, spreadsheetID, &sheets.BatchUpdateValuesRequest{
			ValueInputOption: string(inputOption),
			Data: utils.Transform(q.values, func(v requests.ValueWrite) *sheets.ValueRange {
				return v.ToAPI()
			}),
		})
		if err != nil {
			alog.Errorf(ctx, "flush %s: value batch failed: %v", result.BatchID, err)
			return result, &remote.CallError{Method: remote.MethodBatchUpdateValues, Err: err}
		}
		if resp != nil && resp.Responses != nil {
			result.Responses = resp.Responses
		}
	}

	return result, nil
}
