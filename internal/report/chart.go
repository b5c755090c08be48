package report

import (
	"fmt"
	"io"

	"influencerMDP/domain"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// RenderComparison writes an HTML page with two charts: engagement and cost
// per strategy, and the MDP's remaining budget after each step.
func RenderComparison(w io.Writer, cmp domain.Comparison, steps []domain.SelectionStep) error {
	strategies := make([]string, 0, len(cmp.Results))
	engagement := make([]opts.BarData, 0, len(cmp.Results))
	cost := make([]opts.BarData, 0, len(cmp.Results))
	for _, s := range cmp.Results {
		strategies = append(strategies, s.Strategy)
		engagement = append(engagement, opts.BarData{Value: s.TotalEngagement})
		cost = append(cost, opts.BarData{Value: s.TotalCost})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Strategy comparison",
			Subtitle: fmt.Sprintf("budget %.2f, horizon %d", cmp.Budget, cmp.Horizon),
		}),
	)
	bar.SetXAxis(strategies).
		AddSeries("engagement", engagement).
		AddSeries("cost", cost)

	page := components.NewPage()
	page.AddCharts(bar)

	if len(steps) > 0 {
		labels := make([]string, 0, len(steps))
		remaining := make([]opts.LineData, 0, len(steps))
		for _, st := range steps {
			labels = append(labels, fmt.Sprintf("%d", st.Step))
			remaining = append(remaining, opts.LineData{Value: st.BudgetAfter})
		}

		line := charts.NewLine()
		line.SetGlobalOptions(
			charts.WithTitleOpts(opts.Title{
				Title: "MDP budget remaining",
			}),
		)
		line.SetXAxis(labels).AddSeries("budget", remaining)
		page.AddCharts(line)
	}

	if err := page.Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
