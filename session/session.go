package session

import (
	"context"
	"fmt"

	"go.alis.build/alog"
	"go.alis.build/sheets/queue"
	"go.alis.build/sheets/remote"
	"go.alis.build/sheets/requests"
	"go.alis.build/utils/maps"
	"google.golang.org/api/sheets/v4"
)

const (
	// DefaultRowCount is the row count of sheets added without an explicit size.
	DefaultRowCount = 100
	// DefaultColumnCount is the column count of sheets added without an explicit size.
	DefaultColumnCount = 100
)

// Options for the New method.
type Options struct {
	// ValueInputOption is used by FlushNow and AddSheet. Defaults to USER_ENTERED.
	ValueInputOption requests.ValueInputOption
}

// Option is a functional option for the New method.
type Option func(*Options)

// WithValueInputOption sets how values written by FlushNow and AddSheet are interpreted.
func WithValueInputOption(opt requests.ValueInputOption) Option {
	return func(opts *Options) {
		opts.ValueInputOption = opt
	}
}

// Session batches edits to one document.
type Session struct {
	service       remote.Service
	spreadsheetID string
	options       Options

	title string
	// directory maps sheet titles to ids in document order. It is replaced, never mutated,
	// so Sheets handed out earlier keep a consistent view.
	directory *maps.OrderedMap[string, int64]
	// current is the title of the selected sheet, empty when the document has no sheets.
	current string
	queue   *queue.Queue
}

// New opens a Session on the document and loads its sheets.
func New(ctx context.Context, service remote.Service, spreadsheetID string, opts ...Option) (*Session, error) {
	options := Options{ValueInputOption: requests.UserEntered}
	for _, opt := range opts {
		opt(&options)
	}

	s := &Session{
		service:       service,
		spreadsheetID: spreadsheetID,
		options:       options,
		directory:     maps.NewOrderedMap[string, int64](),
		queue:         queue.New(),
	}
	if err := s.Refresh(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// SpreadsheetID returns the id of the document.
func (s *Session) SpreadsheetID() string {
	return s.spreadsheetID
}

// Title returns the document title as of the last Refresh.
func (s *Session) Title() string {
	return s.title
}

// Refresh reloads the sheet directory from the document and selects its first sheet.
//
// Pending operations are discarded, not sent. Call ExecuteQueue first to keep them.
func (s *Session) Refresh(ctx context.Context) error {
	doc, err := s.service.Get(ctx, s.spreadsheetID)
	if err != nil {
		alog.Errorf(ctx, "refresh %s: %v", s.spreadsheetID, err)
		return &remote.CallError{Method: remote.MethodGet, Err: err}
	}

	directory := maps.NewOrderedMap[string, int64]()
	for _, sheet := range doc.Sheets {
		if sheet.Properties == nil {
			continue
		}
		directory.Set(sheet.Properties.Title, sheet.Properties.SheetId)
	}
	if doc.Properties != nil {
		s.title = doc.Properties.Title
	}
	s.directory = directory
	s.current = ""
	if titles := directory.Keys(); len(titles) > 0 {
		s.current = titles[0]
	}

	if n := s.queue.Discard(); n > 0 {
		alog.Warnf(ctx, "refresh %s discarded %d pending entries", s.spreadsheetID, n)
	}
	alog.Debugf(ctx, "refreshed %s: %d sheets, current sheet %q", s.spreadsheetID, directory.Len(), s.current)
	return nil
}

// SelectSheetByTitle makes the named sheet current. It reports false and leaves the
// selection unchanged when no sheet has that title.
func (s *Session) SelectSheetByTitle(title string) bool {
	if _, ok := s.directory.Get(title); !ok {
		return false
	}
	s.current = title
	return true
}

// Sheet returns a context bound to the named sheet.
func (s *Session) Sheet(title string) (*Sheet, bool) {
	id, ok := s.directory.Get(title)
	if !ok {
		return nil, false
	}
	return &Sheet{session: s, title: title, id: id}, true
}

// SheetByTitle is like Sheet but returns an error wrapping ErrSheetNotFound.
func (s *Session) SheetByTitle(title string) (*Sheet, error) {
	sheet, ok := s.Sheet(title)
	if !ok {
		return nil, fmt.Errorf("%w: %q in %s", ErrSheetNotFound, title, s.spreadsheetID)
	}
	return sheet, nil
}

// Current returns the selected sheet, or nil when the document has none.
func (s *Session) Current() *Sheet {
	if s.current == "" {
		return nil
	}
	sheet, _ := s.Sheet(s.current)
	return sheet
}

// Sheets returns every sheet in document order.
func (s *Session) Sheets() []*Sheet {
	list := make([]*Sheet, 0, s.directory.Len())
	s.directory.Range(func(_ int, title string, id int64) bool {
		list = append(list, &Sheet{session: s, title: title, id: id})
		return true
	})
	return list
}

func (s *Session) currentSheet() (*Sheet, error) {
	sheet := s.Current()
	if sheet == nil {
		return nil, fmt.Errorf("%w in %s", ErrNoSheetSelected, s.spreadsheetID)
	}
	return sheet, nil
}

// Pending returns the number of queued structural operations and value writes.
func (s *Session) Pending() (structural int, values int) {
	return s.queue.Len()
}

// ExecuteQueue sends every pending entry. Values are interpreted according to inputOption,
// USER_ENTERED when empty. The queue is empty afterwards, also when an error is returned.
func (s *Session) ExecuteQueue(ctx context.Context, inputOption requests.ValueInputOption) (*queue.Result, error) {
	return s.queue.Flush(ctx, s.service, s.spreadsheetID, inputOption)
}

// FlushNow is ExecuteQueue with the input option the Session was opened with.
func (s *Session) FlushNow(ctx context.Context) (*queue.Result, error) {
	return s.ExecuteQueue(ctx, s.options.ValueInputOption)
}

// PrepareAddSheet queues the creation of a sheet. Zero sizes default to DefaultRowCount and
// DefaultColumnCount. The returned position indexes the flush replies.
func (s *Session) PrepareAddSheet(title string, rows, columns int64) int {
	if rows == 0 {
		rows = DefaultRowCount
	}
	if columns == 0 {
		columns = DefaultColumnCount
	}
	return s.queue.EnqueueStructural(requests.AddSheet{Title: title, RowCount: rows, ColumnCount: columns})
}

// PrepareDeleteSheet queues the removal of the sheet with the given id.
func (s *Session) PrepareDeleteSheet(sheetID int64) {
	s.queue.EnqueueStructural(requests.DeleteSheet{SheetID: sheetID})
}

// AddSheet creates a sheet, sending it together with everything already queued, and selects
// it. The returned Sheet carries the id assigned by the remote service.
//
// When the sheet was created but the value writes sent along with it failed, the sheet is
// still registered and selected, and both the Sheet and the error are returned.
func (s *Session) AddSheet(ctx context.Context, title string, rows, columns int64) (*Sheet, error) {
	position := s.PrepareAddSheet(title, rows, columns)
	result, flushErr := s.FlushNow(ctx)

	properties := addedSheet(result, position)
	if properties == nil {
		if flushErr != nil {
			return nil, flushErr
		}
		return nil, fmt.Errorf("%w: addSheet %q in batch %s", ErrMissingReply, title, result.BatchID)
	}

	directory := maps.NewOrderedMap[string, int64]()
	s.directory.Range(func(_ int, t string, id int64) bool {
		directory.Set(t, id)
		return true
	})
	directory.Set(properties.Title, properties.SheetId)
	s.directory = directory
	s.current = properties.Title

	alog.Infof(ctx, "added sheet %q with id %d to %s", properties.Title, properties.SheetId, s.spreadsheetID)
	return &Sheet{session: s, title: properties.Title, id: properties.SheetId}, flushErr
}

// addedSheet returns the properties in the addSheet reply at position, or nil.
func addedSheet(result *queue.Result, position int) *sheets.SheetProperties {
	if result == nil || position >= len(result.Replies) {
		return nil
	}
	reply := result.Replies[position]
	if reply == nil || reply.AddSheet == nil {
		return nil
	}
	return reply.AddSheet.Properties
}
