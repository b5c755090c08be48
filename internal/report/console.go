// Package report renders plans and comparisons for people: a console
// table, a JSON dump and an HTML chart.
package report

import (
	"fmt"
	"io"

	"influencerMDP/domain"

	"github.com/logrusorgru/aurora"
)

type Console struct {
	w  io.Writer
	au aurora.Aurora
}

// NewConsole writes to w; color adds ANSI escapes.
func NewConsole(w io.Writer, color bool) *Console {
	return &Console{w: w, au: aurora.NewAurora(color)}
}

// Plan prints one line per step and the summary. Steps that earned the
// diversity bonus are highlighted.
func (c *Console) Plan(steps []domain.SelectionStep, summary domain.SelectionSummary) {
	fmt.Fprintln(c.w, c.au.Bold(fmt.Sprintf("%-4s %-20s %-12s %10s %12s %12s %10s", "step", "influencer", "group", "cost", "engagement", "reward", "budget")))

	for _, st := range steps {
		if st.Action != "select" {
			fmt.Fprintln(c.w, c.au.Faint(fmt.Sprintf("%-4d %-20s %-12s %10s %12s %12s %10.2f", st.Step, "-", "-", "-", "-", "0", st.BudgetAfter)))
			continue
		}

		line := fmt.Sprintf("%-4d %-20s %-12s %10.2f %12.1f %12.1f %10.2f",
			st.Step, truncate(st.Username, 20), truncate(st.Group, 12), st.Cost, st.Engagement, st.Reward, st.BudgetAfter)
		if st.Bonus > 0 {
			fmt.Fprintln(c.w, c.au.Green(line))
		} else {
			fmt.Fprintln(c.w, line)
		}
	}

	c.Summary(summary)
}

func (c *Console) Summary(s domain.SelectionSummary) {
	covered := c.au.Red("no")
	if s.DiversityCovered {
		covered = c.au.Green("yes")
	}

	fmt.Fprintf(c.w, "%s  selected=%d engagement=%.1f reward=%.1f cost=%.2f utilization=%.1f%% groups=%d covered=%s\n",
		c.au.Cyan(fmt.Sprintf("%-7s", s.Strategy)),
		s.NumSelected, s.TotalEngagement, s.TotalReward, s.TotalCost, s.BudgetUtilization*100, s.Diversity, covered)
}

// Comparison prints one summary line per strategy.
func (c *Console) Comparison(cmp domain.Comparison) {
	fmt.Fprintln(c.w, c.au.Bold(fmt.Sprintf("budget=%.2f horizon=%d", cmp.Budget, cmp.Horizon)))
	for _, s := range cmp.Results {
		c.Summary(s)
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "~"
}
