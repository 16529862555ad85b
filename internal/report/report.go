// Package report renders analysis results as terminal text. Nothing here
// computes; every function formats a result value it is handed.
package report

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/nconklindev/hitlisten/internal/analysis"
	"github.com/nconklindev/hitlisten/internal/power"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const (
	okMarker   = "✓"
	warnMarker = "⚠"
	midMarker  = "○"
	badMarker  = "✗"
)

// DisplayName flattens line breaks kept in group labels.
func DisplayName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(BorderStyle).
		Headers(headers...)
}

// GroupSizes renders the sorted group sizes with threshold markers and,
// optionally, each group's share of the total.
func GroupSizes(a analysis.SizeAnalysis, showPercentages bool) string {
	showPercentages = showPercentages && a.Total > 0

	headers := []string{"", "Group", "n"}
	if showPercentages {
		headers = append(headers, "Share")
	}
	t := newTable(headers...)
	for _, g := range a.Sorted {
		marker := GoodStyle.Render(okMarker)
		if g.Size.Value < a.Threshold {
			marker = WarnStyle.Render(warnMarker)
		}
		row := []string{marker, DisplayName(g.Name), strconv.Itoa(g.Size.Value)}
		if showPercentages {
			row = append(row, fmt.Sprintf("%.1f%%", float64(g.Size.Value)/float64(a.Total)*100))
		}
		t.Row(row...)
	}
	t.StyleFunc(func(row, col int) lipgloss.Style {
		switch {
		case row == table.HeaderRow:
			return HeaderStyle
		case col >= 2:
			return NumberStyle
		default:
			return CellStyle
		}
	})

	var s strings.Builder
	s.WriteString(TitleStyle.Render("Group sizes"))
	s.WriteString("\n")
	s.WriteString(t.Render())
	s.WriteString("\n")
	s.WriteString(FooterStyle.Render(fmt.Sprintf("Total: n = %d", a.Total)))
	s.WriteString("\n")
	s.WriteString(FooterStyle.Render(fmt.Sprintf("Groups with n < %d: %d", a.Threshold, len(a.SmallGroups))))
	s.WriteString("\n")
	s.WriteString(FooterStyle.Render(fmt.Sprintf("Groups with n ≥ %d: %d", a.Threshold, len(a.Sorted)-len(a.SmallGroups))))
	if skipped := len(a.Sizes) - len(a.Sorted); skipped > 0 {
		s.WriteString("\n")
		s.WriteString(FooterStyle.Render(fmt.Sprintf("Groups without a size: %d", skipped)))
	}
	return s.String()
}

func ratingCell(r power.Rating) string {
	switch r {
	case power.Good:
		return GoodStyle.Render(okMarker + " Good")
	case power.Acceptable:
		return WarnStyle.Render(midMarker + " Acceptable")
	default:
		return BadStyle.Render(badMarker + " Insufficient")
	}
}

// Power renders per-group power, highest first, with the summary statistics.
func Power(r power.Result) string {
	groups := append([]power.GroupPower(nil), r.Groups...)
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Power > groups[j].Power
	})

	t := newTable("Group", "n", "Power", "Rating")
	for _, g := range groups {
		t.Row(DisplayName(g.Name), strconv.Itoa(g.Size), percent(g.Power), ratingCell(g.Rating))
	}
	t.StyleFunc(func(row, col int) lipgloss.Style {
		switch {
		case row == table.HeaderRow:
			return HeaderStyle
		case col == 1 || col == 2:
			return NumberStyle
		default:
			return CellStyle
		}
	})

	var s strings.Builder
	s.WriteString(TitleStyle.Render(fmt.Sprintf("Power analysis (d = %.2f, α = %.2f)", r.EffectSize, r.Alpha)))
	s.WriteString("\n")
	s.WriteString(t.Render())
	s.WriteString("\n")
	s.WriteString(FooterStyle.Render("Mean power: " + percent(r.Mean)))
	s.WriteString("\n")
	s.WriteString(FooterStyle.Render("Min power:  " + percent(r.Min)))
	s.WriteString("\n")
	s.WriteString(FooterStyle.Render("Max power:  " + percent(r.Max)))
	return s.String()
}

// Comparison renders the original-vs-aggregated summary.
func Comparison(c analysis.Comparison) string {
	t := newTable("", "Original", "Aggregated")
	t.Row("Groups", strconv.Itoa(c.Original.Groups), strconv.Itoa(c.Aggregated.Groups))
	t.Row(fmt.Sprintf("n < %d", c.Threshold), countPct(c.Original.Small, c.Original.SmallPct), countPct(c.Aggregated.Small, c.Aggregated.SmallPct))
	t.Row(fmt.Sprintf("n ≥ %d", c.Threshold), countPct(c.Original.Large, c.Original.LargePct), countPct(c.Aggregated.Large, c.Aggregated.LargePct))
	t.Row("Smallest", "n = "+strconv.Itoa(c.Original.Smallest), "n = "+strconv.Itoa(c.Aggregated.Smallest))
	t.Row("Largest", "n = "+strconv.Itoa(c.Original.Largest), "n = "+strconv.Itoa(c.Aggregated.Largest))
	t.StyleFunc(func(row, col int) lipgloss.Style {
		switch {
		case row == table.HeaderRow:
			return HeaderStyle
		case col > 0:
			return NumberStyle
		default:
			return CellStyle
		}
	})

	var s strings.Builder
	s.WriteString(TitleStyle.Render("Original vs. aggregated"))
	s.WriteString("\n")
	s.WriteString(t.Render())
	s.WriteString("\n")
	s.WriteString(GoodStyle.Render(fmt.Sprintf("%s Improvement: %d groups brought to n ≥ %d", okMarker, c.Improvement, c.Threshold)))
	s.WriteString("\n")
	s.WriteString(GoodStyle.Render(fmt.Sprintf("%s Reduction: %d groups merged", okMarker, c.Reduction)))
	return s.String()
}

func percent(p float64) string {
	return fmt.Sprintf("%.1f%%", p*100)
}

func countPct(n int, pct float64) string {
	return fmt.Sprintf("%d (%.0f%%)", n, pct)
}
