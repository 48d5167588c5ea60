package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/yusufkecer/health-tracker/internal/dashboard"
	"github.com/yusufkecer/health-tracker/internal/domain"
)

type Styles struct {
	Brand     lipgloss.Style
	Muted     lipgloss.Style
	Heading   lipgloss.Style
	NavItem   lipgloss.Style
	NavActive lipgloss.Style
	Sidebar   lipgloss.Style
	Card      lipgloss.Style
	Panel     lipgloss.Style
	Notice    lipgloss.Style
	Help      lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Brand:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2563EB")),
		Muted:     lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")),
		Heading:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#111827")),
		NavItem:   lipgloss.NewStyle().Foreground(lipgloss.Color("#4B5563")).PaddingLeft(1),
		NavActive: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1D4ED8")).Background(lipgloss.Color("#EFF6FF")).PaddingLeft(1),
		Sidebar:   lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, true, false, false).BorderForeground(lipgloss.Color("#E5E7EB")).PaddingRight(2).Width(28),
		Card:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#E5E7EB")).Padding(0, 1).Width(30),
		Panel:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#E5E7EB")).Padding(0, 1),
		Notice:    lipgloss.NewStyle().Foreground(lipgloss.Color("#B45309")),
		Help:      lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF")),
	}
}

var trendColors = map[string]lipgloss.Color{
	"green": lipgloss.Color("#16A34A"),
	"red":   lipgloss.Color("#DC2626"),
	"gray":  lipgloss.Color("#4B5563"),
}

var accentColors = map[dashboard.Color]lipgloss.Color{
	dashboard.ColorBlue:   lipgloss.Color("#2563EB"),
	dashboard.ColorGreen:  lipgloss.Color("#16A34A"),
	dashboard.ColorRed:    lipgloss.Color("#DC2626"),
	dashboard.ColorYellow: lipgloss.Color("#CA8A04"),
}

var priorityColors = map[domain.Priority]lipgloss.Color{
	domain.PriorityHigh:   lipgloss.Color("#B91C1C"),
	domain.PriorityMedium: lipgloss.Color("#A16207"),
	domain.PriorityLow:    lipgloss.Color("#15803D"),
}

var trendGlyphs = map[string]string{
	"trending-up":   "↗",
	"trending-down": "↘",
	"minus":         "–",
}
