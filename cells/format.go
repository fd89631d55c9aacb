package cells

import (
	"strings"

	"google.golang.org/api/sheets/v4"
	"google.golang.org/genproto/googleapis/type/color"
	"google.golang.org/protobuf/types/known/fieldmaskpb"
)

// FormatOption sets one property of a cell format.
type FormatOption func(*sheets.CellFormat)

// Format returns a cell format with every option applied in order.
func Format(opts ...FormatOption) *sheets.CellFormat {
	f := &sheets.CellFormat{}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func textFormat(f *sheets.CellFormat) *sheets.TextFormat {
	if f.TextFormat == nil {
		f.TextFormat = &sheets.TextFormat{}
	}
	return f.TextFormat
}

// Bold renders the text in bold.
func Bold() FormatOption {
	return func(f *sheets.CellFormat) {
		textFormat(f).Bold = true
	}
}

// Italic renders the text in italics.
func Italic() FormatOption {
	return func(f *sheets.CellFormat) {
		textFormat(f).Italic = true
	}
}

// FontSize sets the font size in points.
func FontSize(points int64) FormatOption {
	return func(f *sheets.CellFormat) {
		textFormat(f).FontSize = points
	}
}

// FontFamily sets the font, for example "Roboto Mono".
func FontFamily(family string) FormatOption {
	return func(f *sheets.CellFormat) {
		textFormat(f).FontFamily = family
	}
}

// TextColor sets the foreground color of the text.
func TextColor(c *color.Color) FormatOption {
	return func(f *sheets.CellFormat) {
		textFormat(f).ForegroundColor = Color(c)
	}
}

// Background sets the cell background color.
func Background(c *color.Color) FormatOption {
	return func(f *sheets.CellFormat) {
		f.BackgroundColor = Color(c)
	}
}

// HorizontalAlignment sets LEFT, CENTER or RIGHT alignment.
func HorizontalAlignment(alignment string) FormatOption {
	return func(f *sheets.CellFormat) {
		f.HorizontalAlignment = alignment
	}
}

// VerticalAlignment sets TOP, MIDDLE or BOTTOM alignment.
func VerticalAlignment(alignment string) FormatOption {
	return func(f *sheets.CellFormat) {
		f.VerticalAlignment = alignment
	}
}

// Wrap sets the wrap strategy, for example WRAP or CLIP.
func Wrap(strategy string) FormatOption {
	return func(f *sheets.CellFormat) {
		f.WrapStrategy = strategy
	}
}

// NumberPattern formats numbers with a pattern such as "$#,##0.00".
//
// https://developers.google.com/sheets/api/guides/formats
func NumberPattern(pattern string) FormatOption {
	return func(f *sheets.CellFormat) {
		f.NumberFormat = &sheets.NumberFormat{Type: "NUMBER", Pattern: pattern}
	}
}

// DatePattern formats date serials with a pattern such as "yyyy-mm-dd".
func DatePattern(pattern string) FormatOption {
	return func(f *sheets.CellFormat) {
		f.NumberFormat = &sheets.NumberFormat{Type: "DATE", Pattern: pattern}
	}
}

// Fields joins field paths into the comma separated mask the Sheets API expects.
// Duplicate paths and paths covered by a parent path are dropped.
func Fields(paths ...string) string {
	mask := &fieldmaskpb.FieldMask{Paths: paths}
	mask.Normalize()
	return strings.Join(mask.GetPaths(), ",")
}

// FormatFields returns the mask of the userEnteredFormat properties set on f, so that
// applying f leaves every other property of the target cells untouched.
func FormatFields(f *sheets.CellFormat) string {
	if f == nil {
		return "userEnteredFormat"
	}
	var paths []string
	add := func(set bool, name string) {
		if set {
			paths = append(paths, "userEnteredFormat."+name)
		}
	}
	add(f.BackgroundColor != nil, "backgroundColor")
	add(f.TextFormat != nil, "textFormat")
	add(f.HorizontalAlignment != "", "horizontalAlignment")
	add(f.VerticalAlignment != "", "verticalAlignment")
	add(f.WrapStrategy != "", "wrapStrategy")
	add(f.NumberFormat != nil, "numberFormat")
	add(f.Borders != nil, "borders")
	add(f.Padding != nil, "padding")
	add(f.TextDirection != "", "textDirection")
	add(f.TextRotation != nil, "textRotation")
	if len(paths) == 0 {
		return "userEnteredFormat"
	}
	return Fields(paths...)
}
