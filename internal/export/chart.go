package export

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/piwi3910/CrateCraft/internal/model"
)

// ExportChart renders an HTML page with one bar chart per metric (price,
// dead space, board count) across every evaluated design. Shortlisted
// designs are highlighted.
func ExportChart(w io.Writer, result model.CrateResult, opts ...Option) error {
	if len(result.Designs) == 0 {
		return fmt.Errorf("no designs to chart")
	}
	o := newOptions(opts)

	ids := make([]string, len(result.Designs))
	for i, d := range result.Designs {
		ids[i] = d.ID
	}

	page := components.NewPage()
	page.PageTitle = "Crate designs " + o.reportID
	page.AddCharts(
		metricBar("Price", o.reportID, ids, result, func(d model.CrateDesign) float64 { return d.TotalPrice }),
		metricBar("Dead space", o.reportID, ids, result, func(d model.CrateDesign) float64 { return d.DeadSpace() }),
		metricBar("Boards", o.reportID, ids, result, func(d model.CrateDesign) float64 { return float64(d.BoardCount) }),
	)

	if err := page.Render(w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

const highlightColor = "#E4572E"

func metricBar(title, reportID string, ids []string, result model.CrateResult, value func(model.CrateDesign) float64) *charts.Bar {
	items := make([]opts.BarData, len(result.Designs))
	for i, d := range result.Designs {
		item := opts.BarData{Name: d.ID, Value: value(d)}
		if _, ok := result.Shortlist.Get(d.ID); ok {
			item.ItemStyle = &opts.ItemStyle{Color: highlightColor}
		}
		items[i] = item
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: "Report " + reportID}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(ids).AddSeries(title, items)
	return bar
}
