package queue_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
	"go.alis.build/sheets/grid"
	"go.alis.build/sheets/queue"
	"go.alis.build/sheets/remote"
	"go.alis.build/sheets/remote/remotetest"
	"go.alis.build/sheets/requests"
	"google.golang.org/api/sheets/v4"
)

type QueueTestSuite struct {
	suite.Suite
	ctx  context.Context
	fake *remotetest.Fake
	q    *queue.Queue
}

func TestQueueSuite(t *testing.T) {
	suite.Run(t, new(QueueTestSuite))
}

func (s *QueueTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.fake = remotetest.New("doc-1", "Sheet1")
	s.q = queue.New()
}

func merge(sheetID int64) requests.MergeCells {
	return requests.MergeCells{Range: grid.GridRange{
		SheetID: sheetID, StartRowIndex: grid.Index(0), EndRowIndex: grid.Index(2), StartColumnIndex: 0, EndColumnIndex: 2,
	}}
}

func write(rng string) requests.ValueWrite {
	return requests.ValueWrite{Range: rng, MajorDimension: requests.Rows, Values: [][]interface{}{{"v"}}}
}

func (s *QueueTestSuite) TestEnqueue_ReturnsPositions() {
	s.Equal(0, s.q.EnqueueStructural(merge(0)))
	s.Equal(1, s.q.EnqueueStructural(requests.DeleteSheet{SheetID: 3}))
	s.Equal(0, s.q.EnqueueValueWrite(write("Sheet1!A1:A1")))

	structural, values := s.q.Len()
	s.Equal(2, structural)
	s.Equal(1, values)
	s.Equal([]requests.Operation{merge(0), requests.DeleteSheet{SheetID: 3}}, s.q.Operations())
}

func (s *QueueTestSuite) TestFlush_SendsInOrderAndClears() {
	a := merge(0)
	b := requests.SetFrozen{SheetID: 0, Dimension: requests.Rows, Count: 1}
	s.q.EnqueueStructural(a)
	s.q.EnqueueStructural(b)

	result, err := s.q.Flush(s.ctx, s.fake, "doc-1", requests.UserEntered)
	s.Require().NoError(err)
	s.Require().Len(s.fake.BatchUpdateCalls, 1)
	s.Empty(s.fake.BatchUpdateValuesCalls)

	want := []*sheets.Request{a.ToRequest(), b.ToRequest()}
	if diff := cmp.Diff(want, s.fake.BatchUpdateCalls[0].Requests); diff != "" {
		s.Failf("unexpected requests", "(-want +got):\n%s", diff)
	}
	s.Len(result.Replies, 2)
	s.Empty(result.Responses)
	s.NotEmpty(result.BatchID)

	structural, values := s.q.Len()
	s.Zero(structural)
	s.Zero(values)
}

func (s *QueueTestSuite) TestFlush_OnlyValues() {
	s.q.EnqueueValueWrite(write("Sheet1!A1:A1"))

	result, err := s.q.Flush(s.ctx, s.fake, "doc-1", requests.Raw)
	s.Require().NoError(err)
	s.Empty(s.fake.BatchUpdateCalls)
	s.Require().Len(s.fake.BatchUpdateValuesCalls, 1)
	s.Equal("RAW", s.fake.BatchUpdateValuesCalls[0].ValueInputOption)
	s.Equal("Sheet1!A1:A1", s.fake.BatchUpdateValuesCalls[0].Data[0].Range)
	s.Empty(result.Replies)
	s.Len(result.Responses, 1)
}

func (s *QueueTestSuite) TestFlush_DefaultInputOption() {
	s.q.EnqueueValueWrite(write("Sheet1!B2:B2"))

	_, err := s.q.Flush(s.ctx, s.fake, "doc-1", "")
	s.Require().NoError(err)
	s.Equal("USER_ENTERED", s.fake.BatchUpdateValuesCalls[0].ValueInputOption)
}

func (s *QueueTestSuite) TestFlush_Empty() {
	result, err := s.q.Flush(s.ctx, s.fake, "doc-1", requests.UserEntered)
	s.Require().NoError(err)
	s.Empty(s.fake.BatchUpdateCalls)
	s.Empty(s.fake.BatchUpdateValuesCalls)
	s.NotNil(result.Replies)
	s.NotNil(result.Responses)
}

func (s *QueueTestSuite) TestFlush_StructuralFailureClearsBoth() {
	cause := errors.New("backend unavailable")
	s.fake.BatchUpdateErr = cause
	s.q.EnqueueStructural(merge(0))
	s.q.EnqueueValueWrite(write("Sheet1!A1:A1"))

	_, err := s.q.Flush(s.ctx, s.fake, "doc-1", requests.UserEntered)
	s.Require().Error(err)
	s.ErrorIs(err, cause)

	var callErr *remote.CallError
	s.Require().ErrorAs(err, &callErr)
	s.Equal(remote.MethodBatchUpdate, callErr.Method)

	s.Empty(s.fake.BatchUpdateValuesCalls, "value batch must not be sent after a structural failure")
	structural, values := s.q.Len()
	s.Zero(structural)
	s.Zero(values)

	// The lost entries are not replayed by the next flush.
	s.fake.BatchUpdateErr = nil
	_, err = s.q.Flush(s.ctx, s.fake, "doc-1", requests.UserEntered)
	s.Require().NoError(err)
	s.Len(s.fake.BatchUpdateCalls, 1)
}

func (s *QueueTestSuite) TestFlush_ValueFailureKeepsStructuralReplies() {
	s.fake.BatchUpdateValuesErr = errors.New("quota exceeded")
	s.q.EnqueueStructural(merge(0))
	s.q.EnqueueValueWrite(write("Sheet1!A1:A1"))

	result, err := s.q.Flush(s.ctx, s.fake, "doc-1", requests.UserEntered)
	var callErr *remote.CallError
	s.Require().ErrorAs(err, &callErr)
	s.Equal(remote.MethodBatchUpdateValues, callErr.Method)
	s.Len(result.Replies, 1)

	structural, values := s.q.Len()
	s.Zero(structural)
	s.Zero(values)
}

func (s *QueueTestSuite) TestDiscard() {
	s.q.EnqueueStructural(merge(0))
	s.q.EnqueueValueWrite(write("Sheet1!A1:A1"))
	s.q.EnqueueValueWrite(write("Sheet1!A2:A2"))

	s.Equal(3, s.q.Discard())
	s.Empty(s.q.Operations())
	s.Empty(s.q.ValueWrites())
}

type panickingUpdater struct{ queue.Updater }

func (panickingUpdater) BatchUpdate(context.Context, string, *sheets.BatchUpdateSpreadsheetRequest) (*sheets.BatchUpdateSpreadsheetResponse, error) {
	panic("transport exploded")
}

func (s *QueueTestSuite) TestFlush_PanicStillClears() {
	s.q.EnqueueStructural(merge(0))
	s.Panics(func() {
		_, _ = s.q.Flush(s.ctx, panickingUpdater{}, "doc-1", requests.UserEntered)
	})
	structural, _ := s.q.Len()
	s.Zero(structural)
}
