package dashboard

import (
	"fmt"
	"math"
	"strings"
)

const (
	chartWidth   = 600
	chartHeight  = 256
	marginLeft   = 40
	marginRight  = 16
	marginTop    = 16
	marginBottom = 32
	yTickCount   = 4
)

type Point struct {
	X, Y float64
}

type ChartLine struct {
	Name   string
	Stroke string
	Points []Point
	Values []float64
}

// Polyline formats the points for an SVG points attribute.
func (l ChartLine) Polyline() string {
	parts := make([]string, len(l.Points))
	for i, p := range l.Points {
		parts[i] = fmt.Sprintf("%.1f,%.1f", p.X, p.Y)
	}
	return strings.Join(parts, " ")
}

type Tick struct {
	Pos   float64
	Label string
}

type Chart struct {
	Width, Height int
	Left, Right   float64
	Top, Bottom   float64
	Max           float64
	Lines         []ChartLine
	XTicks        []Tick
	YTicks        []Tick
}

// BuildChart lays out the weight and heart-rate lines on a shared 0-based
// Y axis.
func BuildChart(series []SeriesPoint) Chart {
	c := Chart{
		Width:  chartWidth,
		Height: chartHeight,
		Left:   marginLeft,
		Right:  chartWidth - marginRight,
		Top:    marginTop,
		Bottom: chartHeight - marginBottom,
	}

	var peak float64
	for _, p := range series {
		peak = math.Max(peak, math.Max(p.Weight, p.HeartRate))
	}
	step := niceStep(peak / yTickCount)
	c.Max = step * yTickCount

	for i := 0; i <= yTickCount; i++ {
		v := step * float64(i)
		c.YTicks = append(c.YTicks, Tick{Pos: c.y(v), Label: formatTick(v)})
	}

	weight := ChartLine{Name: "Weight (kg)", Stroke: "#2563EB"}
	heart := ChartLine{Name: "Heart Rate (bpm)", Stroke: "#10B981"}
	for i, p := range series {
		x := c.x(i, len(series))
		c.XTicks = append(c.XTicks, Tick{Pos: x, Label: p.Date.Format("1/2/2006")})
		weight.Points = append(weight.Points, Point{X: x, Y: c.y(p.Weight)})
		weight.Values = append(weight.Values, p.Weight)
		heart.Points = append(heart.Points, Point{X: x, Y: c.y(p.HeartRate)})
		heart.Values = append(heart.Values, p.HeartRate)
	}
	c.Lines = []ChartLine{weight, heart}
	return c
}

func (c Chart) x(i, n int) float64 {
	if n <= 1 {
		return (c.Left + c.Right) / 2
	}
	return c.Left + float64(i)*(c.Right-c.Left)/float64(n-1)
}

func (c Chart) y(v float64) float64 {
	if c.Max == 0 {
		return c.Bottom
	}
	return c.Bottom - v/c.Max*(c.Bottom-c.Top)
}

// niceStep rounds raw up to 1, 2, 2.5 or 5 times a power of ten.
func niceStep(raw float64) float64 {
	if raw <= 0 {
		return 1
	}
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	for _, m := range []float64{1, 2, 2.5, 5, 10} {
		if raw <= m*mag {
			return m * mag
		}
	}
	return 10 * mag
}

func formatTick(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%d", int(v))
	}
	return fmt.Sprintf("%.1f", v)
}
