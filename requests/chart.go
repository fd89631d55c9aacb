package requests

import (
	"go.alis.build/sheets/grid"
	"go.alis.build/utils"
	"google.golang.org/api/sheets/v4"
)

// AddPieChart places a pie chart on a sheet. Domain and Series are read from the same sheet
// the chart is placed on.
type AddPieChart struct {
	SheetID  int64
	Title    string
	Domain   grid.SourceRange
	Series   grid.SourceRange
	Position grid.OverlayPosition
	// LegendPosition defaults to RIGHT_LEGEND.
	LegendPosition   string
	ThreeDimensional bool
}

func (AddPieChart) isOperation() {}

func (AddPieChart) Kind() string { return "addChart" }

func (o AddPieChart) ToRequest() *sheets.Request {
	legend := o.LegendPosition
	if legend == "" {
		legend = "RIGHT_LEGEND"
	}
	return &sheets.Request{
		AddChart: &sheets.AddChartRequest{
			Chart: &sheets.EmbeddedChart{
				Spec: &sheets.ChartSpec{
					Title: o.Title,
					PieChart: &sheets.PieChartSpec{
						LegendPosition:   legend,
						ThreeDimensional: o.ThreeDimensional,
						Domain:           chartData(o.SheetID, o.Domain),
						Series:           chartData(o.SheetID, o.Series),
						ForceSendFields:  []string{"ThreeDimensional"},
					},
				},
				Position: o.Position.ToAPI(o.SheetID),
			},
		},
	}
}

// AddBasicChart places a bar, column, line, area or scatter chart on a sheet.
type AddBasicChart struct {
	SheetID int64
	Title   string
	// ChartType is the remote BasicChartType, for example "COLUMN" or "LINE".
	ChartType string
	Domain    grid.SourceRange
	Series    []grid.SourceRange
	Position  grid.OverlayPosition
	// LegendPosition defaults to BOTTOM_LEGEND.
	LegendPosition string
	// HeaderCount is the number of leading rows in the data that are headers.
	HeaderCount int64
}

func (AddBasicChart) isOperation() {}

func (AddBasicChart) Kind() string { return "addChart" }

func (o AddBasicChart) ToRequest() *sheets.Request {
	legend := o.LegendPosition
	if legend == "" {
		legend = "BOTTOM_LEGEND"
	}
	return &sheets.Request{
		AddChart: &sheets.AddChartRequest{
			Chart: &sheets.EmbeddedChart{
				Spec: &sheets.ChartSpec{
					Title: o.Title,
					BasicChart: &sheets.BasicChartSpec{
						ChartType:      o.ChartType,
						LegendPosition: legend,
						HeaderCount:    o.HeaderCount,
						Domains: []*sheets.BasicChartDomain{
							{Domain: chartData(o.SheetID, o.Domain)},
						},
						Series: utils.Transform(o.Series, func(s grid.SourceRange) *sheets.BasicChartSeries {
							return &sheets.BasicChartSeries{Series: chartData(o.SheetID, s)}
						}),
					},
				},
				Position: o.Position.ToAPI(o.SheetID),
			},
		},
	}
}

func chartData(sheetID int64, s grid.SourceRange) *sheets.ChartData {
	return &sheets.ChartData{
		SourceRange: &sheets.ChartSourceRange{
			Sources: []*sheets.GridRange{s.ToAPI(sheetID)},
		},
	}
}
