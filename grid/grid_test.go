package grid

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridRange_ToAPI(t *testing.T) {
	tests := []struct {
		name  string
		input GridRange
		want  string
	}{
		{
			name: "BoundedRange",
			input: GridRange{
				SheetID:          7,
				StartRowIndex:    Index(2),
				EndRowIndex:      Index(4),
				StartColumnIndex: 0,
				EndColumnIndex:   2,
			},
			want: `{"sheetId":7,"startRowIndex":2,"endRowIndex":4,"startColumnIndex":0,"endColumnIndex":2}`,
		},
		{
			name: "OpenEnd",
			input: GridRange{
				SheetID:          7,
				StartRowIndex:    Index(4),
				StartColumnIndex: 0,
				EndColumnIndex:   2,
			},
			want: `{"sheetId":7,"startRowIndex":4,"startColumnIndex":0,"endColumnIndex":2}`,
		},
		{
			name: "OpenStartOnFirstSheet",
			input: GridRange{
				SheetID:          0,
				EndRowIndex:      Index(10),
				StartColumnIndex: 1,
				EndColumnIndex:   3,
			},
			want: `{"sheetId":0,"endRowIndex":10,"startColumnIndex":1,"endColumnIndex":3}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.input.ToAPI())
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}

func TestGridRange_String(t *testing.T) {
	g := GridRange{SheetID: 3, StartRowIndex: Index(1), StartColumnIndex: 0, EndColumnIndex: 4}
	assert.Equal(t, "sheet 3 rows [1, *) columns [0, 4)", g.String())
}

func TestSourceRange(t *testing.T) {
	t.Run("SingleCell", func(t *testing.T) {
		s := NewSourceRange(3, 2)
		assert.Equal(t, SourceRange{StartRowIndex: 2, StartColumnIndex: 1, EndRowIndex: 3, EndColumnIndex: 2}, s)
	})

	t.Run("Widened", func(t *testing.T) {
		got, err := json.Marshal(NewSourceRange(1, 1).To(5, 2).ToAPI(0))
		require.NoError(t, err)
		assert.JSONEq(t, `{"sheetId":0,"startRowIndex":0,"endRowIndex":5,"startColumnIndex":0,"endColumnIndex":2}`, string(got))
	})

	t.Run("ToDoesNotMutate", func(t *testing.T) {
		s := NewSourceRange(1, 1)
		_ = s.To(9, 9)
		assert.Equal(t, int64(1), s.EndRowIndex)
	})
}

func TestOverlayPosition_ToAPI(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		got, err := json.Marshal(OverlayPosition{}.ToAPI(12))
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"overlayPosition": {
				"anchorCell": {"sheetId": 12, "rowIndex": 0, "columnIndex": 0},
				"offsetXPixels": 0,
				"offsetYPixels": 0
			}
		}`, string(got))
	})

	t.Run("Sized", func(t *testing.T) {
		p := OverlayPosition{RowIndex: 4, ColumnIndex: 6, OffsetXPixels: 10, OffsetYPixels: 20, WidthPixels: 600, HeightPixels: 371}
		got, err := json.Marshal(p.ToAPI(1))
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"overlayPosition": {
				"anchorCell": {"sheetId": 1, "rowIndex": 4, "columnIndex": 6},
				"offsetXPixels": 10,
				"offsetYPixels": 20,
				"widthPixels": 600,
				"heightPixels": 371
			}
		}`, string(got))
	})
}
