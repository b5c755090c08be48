//go:build !integration

package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"influencerMDP/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleComparison() (domain.Comparison, []domain.SelectionStep) {
	steps := []domain.SelectionStep{
		{Step: 0, Action: "select", InfluencerID: 2, Username: "bo", Group: "Black", Cost: 80, Engagement: 500, Bonus: 500000, Reward: 500500, BudgetBefore: 150, BudgetAfter: 70},
		{Step: 1, Action: "none", BudgetBefore: 70, BudgetAfter: 70},
	}
	cmp := domain.Comparison{
		Budget:  150,
		Horizon: 2,
		Results: []domain.SelectionSummary{
			{Strategy: domain.StrategyMDP, TotalEngagement: 500, TotalReward: 500500, TotalCost: 80, NumSelected: 1, Diversity: 1, DiversityCovered: true},
			{Strategy: domain.StrategyGreedy, TotalEngagement: 1000, TotalReward: 1000, TotalCost: 125, NumSelected: 1, Diversity: 1},
			{Strategy: domain.StrategyRandom, TotalEngagement: 1000, TotalReward: 1000, TotalCost: 125, NumSelected: 1, Diversity: 1},
		},
	}
	return cmp, steps
}

func TestConsolePlan(t *testing.T) {
	cmp, steps := sampleComparison()
	var buf bytes.Buffer

	NewConsole(&buf, false).Plan(steps, cmp.Results[0])

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[1], "bo")
	assert.Contains(t, lines[1], "80.00")
	assert.Contains(t, lines[2], "70.00")
	assert.Contains(t, lines[3], "covered=yes")
	assert.NotContains(t, out, "\x1b[")
}

func TestConsoleColor(t *testing.T) {
	cmp, _ := sampleComparison()
	var buf bytes.Buffer

	NewConsole(&buf, true).Comparison(cmp)
	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "greedy")
}

func TestWriteJSON(t *testing.T) {
	cmp, steps := sampleComparison()
	path := filepath.Join(t.TempDir(), "out", "results.json")

	require.NoError(t, WriteJSON(path, NewResults(cmp, steps)))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var got Results
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Len(t, got.Strategies, 3)
	assert.Equal(t, 500500.0, got.Strategies[domain.StrategyMDP].TotalReward)
	assert.Len(t, got.Steps, 2)
}

func TestRenderComparison(t *testing.T) {
	cmp, steps := sampleComparison()
	var buf bytes.Buffer

	require.NoError(t, RenderComparison(&buf, cmp, steps))

	html := buf.String()
	assert.Contains(t, html, "<html")
	assert.Contains(t, html, "Strategy comparison")
	assert.Contains(t, html, "MDP budget remaining")
	assert.Contains(t, html, "greedy")
}
