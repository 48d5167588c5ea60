package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yusufkecer/health-tracker/internal/dashboard"
)

func (m Model) renderDashboard(d dashboard.Model) string {
	switch d.Status {
	case dashboard.StatusLoading:
		return m.spinner.View() + " " + m.styles.Muted.Render("Loading your health dashboard...")
	case dashboard.StatusUnauthenticated:
		return strings.Join([]string{
			m.styles.Heading.Render("Welcome to HealthTracker"),
			m.styles.Muted.Render("Please sign in to access your health dashboard"),
			"",
			"Sign In: " + d.LoginURL,
		}, "\n")
	}

	var b strings.Builder
	b.WriteString(m.styles.Heading.Render(d.Greeting))
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("Here's your health overview for today"))
	b.WriteString("\n\n")

	cards := make([]string, len(d.Metrics))
	for i, c := range d.Metrics {
		cards[i] = m.renderCard(c)
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	b.WriteString("\n")

	b.WriteString(m.styles.Panel.Render(m.renderTrends(d.Chart)))
	b.WriteString("\n")
	b.WriteString(m.styles.Panel.Render(m.renderInsights(d.Insights)))
	b.WriteString("\n")
	b.WriteString(m.styles.Panel.Render(strings.Join([]string{
		m.styles.Heading.Render("Recent Activity"),
		"No recent health records found.",
		m.styles.Muted.Render("Start tracking your health by adding your first record!"),
	}, "\n")))
	return b.String()
}

func (m Model) renderCard(c dashboard.Card) string {
	title := lipgloss.NewStyle().Foreground(accentColors[c.Color]).Render(c.Title)
	value := lipgloss.NewStyle().Bold(true).Render(c.Value)
	if c.Unit != "" {
		value += " " + m.styles.Muted.Render(c.Unit)
	}
	trend := lipgloss.NewStyle().Foreground(trendColors[c.TrendColor()]).
		Render(trendGlyphs[c.TrendIcon()] + " " + c.Change)
	return m.styles.Card.Render(title + "\n" + value + "\n" + trend + " " + m.styles.Muted.Render("from last week"))
}

// renderTrends lists the chart series by tick, one row per date.
func (m Model) renderTrends(c dashboard.Chart) string {
	var b strings.Builder
	b.WriteString(m.styles.Heading.Render("Health Trends"))
	b.WriteString("\n")
	if len(c.Lines) == 0 {
		return b.String()
	}

	header := fmt.Sprintf("%-10s", "Date")
	for _, l := range c.Lines {
		header += fmt.Sprintf("  %-18s", l.Name)
	}
	b.WriteString(m.styles.Muted.Render(header))

	for i, tick := range c.XTicks {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%-10s", tick.Label))
		for _, l := range c.Lines {
			if i < len(l.Values) {
				b.WriteString(fmt.Sprintf("  %-18s", formatValue(l.Values[i])))
			}
		}
	}
	return b.String()
}

func (m Model) renderInsights(items []dashboard.InsightItem) string {
	var b strings.Builder
	b.WriteString(m.styles.Heading.Render("AI Health Insights"))
	for _, in := range items {
		badge := lipgloss.NewStyle().Foreground(priorityColors[in.Priority]).Render("[" + string(in.Priority) + "]")
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Bold(true).Render(in.Title) + " " + badge)
		b.WriteString("\n")
		b.WriteString(m.styles.Muted.Render(in.Description))
	}
	return b.String()
}

func formatValue(v float64) string {
	return strings.TrimSuffix(fmt.Sprintf("%.1f", v), ".0")
}
