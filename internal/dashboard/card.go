package dashboard

import "github.com/yusufkecer/health-tracker/internal/domain"

type Color string

const (
	ColorBlue   Color = "blue"
	ColorGreen  Color = "green"
	ColorRed    Color = "red"
	ColorYellow Color = "yellow"
)

// Card is one metric tile. Trend is an input; nothing here derives it.
type Card struct {
	Title  string
	Value  string
	Unit   string
	Trend  domain.Trend
	Change string
	Icon   string
	Color  Color
}

func (c Card) Display() string {
	if c.Unit == "" {
		return c.Value
	}
	return c.Value + " " + c.Unit
}

func (c Card) TrendIcon() string {
	switch c.Trend {
	case domain.TrendUp:
		return "trending-up"
	case domain.TrendDown:
		return "trending-down"
	default:
		return "minus"
	}
}

// TrendColor is green for up, red for down, gray otherwise.
func (c Card) TrendColor() string {
	switch c.Trend {
	case domain.TrendUp:
		return "green"
	case domain.TrendDown:
		return "red"
	default:
		return "gray"
	}
}

func (c Card) TrendClass() string {
	return "text-" + c.TrendColor() + "-600"
}

func (c Card) BadgeClass() string {
	switch c.Color {
	case ColorGreen:
		return "text-green-600 bg-green-50"
	case ColorRed:
		return "text-red-600 bg-red-50"
	case ColorYellow:
		return "text-yellow-600 bg-yellow-50"
	default:
		return "text-blue-600 bg-blue-50"
	}
}

func PriorityClass(p domain.Priority) string {
	switch p {
	case domain.PriorityHigh:
		return "bg-red-100 text-red-700"
	case domain.PriorityMedium:
		return "bg-yellow-100 text-yellow-700"
	default:
		return "bg-green-100 text-green-700"
	}
}
