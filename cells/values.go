package cells

import (
	"time"

	"google.golang.org/api/sheets/v4"
	"google.golang.org/genproto/googleapis/type/color"
	"google.golang.org/genproto/googleapis/type/date"
)

// epoch is day zero of spreadsheet date serials.
var epoch = time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)

// DateSerial converts a calendar date to the number of days since 30 December 1899, the
// value a spreadsheet stores for a date.
func DateSerial(d *date.Date) float64 {
	t := time.Date(int(d.GetYear()), time.Month(d.GetMonth()), int(d.GetDay()), 0, 0, 0, 0, time.UTC)
	return t.Sub(epoch).Hours() / 24
}

// TimeSerial converts t to a date serial including the time of day as a fraction.
func TimeSerial(t time.Time) float64 {
	return t.Sub(epoch.In(t.Location())).Hours() / 24
}

// Formula returns text the remote service evaluates as a formula when written with the
// USER_ENTERED input option.
func Formula(expression string) string {
	if len(expression) > 0 && expression[0] == '=' {
		return expression
	}
	return "=" + expression
}

// Color converts a google.type.Color to the Sheets color representation. A nil color maps
// to nil.
func Color(c *color.Color) *sheets.Color {
	if c == nil {
		return nil
	}
	out := &sheets.Color{
		Red:   float64(c.GetRed()),
		Green: float64(c.GetGreen()),
		Blue:  float64(c.GetBlue()),
	}
	if c.GetAlpha() != nil {
		out.Alpha = float64(c.GetAlpha().GetValue())
		out.ForceSendFields = []string{"Alpha"}
	}
	return out
}
