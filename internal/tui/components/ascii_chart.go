package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/juros/internal/domain"
	"github.com/rgehrsitz/juros/internal/tui/tuistyles"
)

// DataSeries represents a single line in a chart
type DataSeries struct {
	Name   string
	Points []float64
	Color  lipgloss.Color
}

// ASCIIChart displays a simple line chart
type ASCIIChart struct {
	Title      string
	Series     []*DataSeries
	Width      int
	Height     int
	ShowLegend bool
	XAxisLabel string

	// FormatValue renders Y-axis ticks
	FormatValue func(float64) string
}

// NewASCIIChart creates a new ASCII chart
func NewASCIIChart(title string) *ASCIIChart {
	return &ASCIIChart{
		Title:       title,
		Width:       60,
		Height:      10,
		ShowLegend:  true,
		FormatValue: func(v float64) string { return fmt.Sprintf("%.0f", v) },
	}
}

// AddSeries adds a data series to the chart
func (c *ASCIIChart) AddSeries(name string, points []float64, color lipgloss.Color) *ASCIIChart {
	c.Series = append(c.Series, &DataSeries{
		Name:   name,
		Points: points,
		Color:  color,
	})
	return c
}

// WithSize sets the chart dimensions
func (c *ASCIIChart) WithSize(width, height int) *ASCIIChart {
	c.Width = width
	c.Height = height
	return c
}

// WithLocale formats Y-axis ticks as compact amounts in loc's currency
func (c *ASCIIChart) WithLocale(loc domain.Locale) *ASCIIChart {
	c.FormatValue = func(v float64) string { return CompactMoney(loc, v) }
	return c
}

// WithXAxisLabel sets the caption under the X axis
func (c *ASCIIChart) WithXAxisLabel(label string) *ASCIIChart {
	c.XAxisLabel = label
	return c
}

const yAxisWidth = 10

// Render returns the styled chart
func (c *ASCIIChart) Render() string {
	if !c.hasData() {
		return tuistyles.InfoStyle.Render("No data to display")
	}

	var content strings.Builder
	if c.Title != "" {
		content.WriteString(lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorPrimary).Render(c.Title))
		content.WriteString("\n")
	}

	lo, hi := c.bounds()
	content.WriteString(c.renderGrid(lo, hi))

	if c.XAxisLabel != "" {
		content.WriteString(lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).Italic(true).
			Render(strings.Repeat(" ", yAxisWidth+3) + c.XAxisLabel))
	}

	if c.ShowLegend && len(c.Series) > 1 {
		content.WriteString("\n")
		content.WriteString(c.renderLegend())
	}
	return content.String()
}

func (c *ASCIIChart) hasData() bool {
	for _, s := range c.Series {
		if len(s.Points) > 0 {
			return true
		}
	}
	return false
}

// bounds returns the Y range over all series, widened when flat
func (c *ASCIIChart) bounds() (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range c.Series {
		for _, p := range s.Points {
			if math.IsNaN(p) || math.IsInf(p, 0) {
				continue
			}
			lo = math.Min(lo, p)
			hi = math.Max(hi, p)
		}
	}
	if math.IsInf(lo, 1) {
		return 0, 1
	}
	if hi == lo {
		pad := math.Max(math.Abs(hi)*0.1, 1)
		return lo - pad, hi + pad
	}
	return lo, hi
}

func (c *ASCIIChart) renderGrid(lo, hi float64) string {
	chartWidth := c.Width - yAxisWidth - 3
	if chartWidth < 2 {
		chartWidth = 2
	}
	height := c.Height
	if height < 2 {
		height = 2
	}

	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", chartWidth))
	}

	toY := func(v float64) int {
		f := (v - lo) / (hi - lo)
		if math.IsNaN(f) {
			f = 0
		}
		f = math.Max(0, math.Min(1, f))
		return height - 1 - int(math.Round(f*float64(height-1)))
	}
	toX := func(i, n int) int {
		if n <= 1 {
			return 0
		}
		return int(math.Round(float64(i) / float64(n-1) * float64(chartWidth-1)))
	}

	for idx, s := range c.Series {
		char := seriesChar(idx)
		n := len(s.Points)
		for i, p := range s.Points {
			x, y := toX(i, n), toY(p)
			if i > 0 {
				drawLine(grid, toX(i-1, n), toY(s.Points[i-1]), x, y, char)
			}
			if y >= 0 && y < height {
				grid[y][x] = char
			}
		}
	}

	axis := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).Width(yAxisWidth).Align(lipgloss.Right)
	var out strings.Builder
	for i, row := range grid {
		tick := ""
		if i == 0 || i == height-1 || i == height/2 {
			tick = c.FormatValue(hi - float64(i)/float64(height-1)*(hi-lo))
		}
		out.WriteString(axis.Render(tick))
		out.WriteString(" │ ")
		out.WriteString(c.colorRow(row))
		out.WriteString("\n")
	}
	out.WriteString(strings.Repeat(" ", yAxisWidth))
	out.WriteString(" └")
	out.WriteString(strings.Repeat("─", chartWidth+1))
	out.WriteString("\n")
	return out.String()
}

// colorRow paints each series character in its series color
func (c *ASCIIChart) colorRow(row []rune) string {
	var b strings.Builder
	for _, r := range row {
		styled := false
		for idx, s := range c.Series {
			if r == seriesChar(idx) {
				b.WriteString(lipgloss.NewStyle().Foreground(s.Color).Render(string(r)))
				styled = true
				break
			}
		}
		if !styled {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func seriesChar(index int) rune {
	chars := []rune{'●', '·', '▲', '♦'}
	return chars[index%len(chars)]
}

// drawLine connects two grid cells using Bresenham's algorithm
func drawLine(grid [][]rune, x0, y0, x1, y1 int, char rune) {
	dx, dy := abs(x1-x0), abs(y1-y0)
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	x, y := x0, y0
	for {
		if y >= 0 && y < len(grid) && x >= 0 && x < len(grid[y]) && grid[y][x] == ' ' {
			grid[y][x] = char
		}
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

func (c *ASCIIChart) renderLegend() string {
	items := make([]string, 0, len(c.Series))
	for i, s := range c.Series {
		symbol := lipgloss.NewStyle().Foreground(s.Color).Render(string(seriesChar(i)))
		items = append(items, symbol+" "+s.Name)
	}
	return lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).
		Render(strings.Repeat(" ", yAxisWidth+3) + strings.Join(items, " • "))
}

// Downsample keeps at most n points, always including the first and last
func Downsample(points []float64, n int) []float64 {
	if n <= 1 || len(points) <= n {
		return points
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = points[i*(len(points)-1)/(n-1)]
	}
	return out
}

// CompactMoney formats an axis tick: "R$ 1,6K", "$2.5M", "R$ 950"
func CompactMoney(loc domain.Locale, v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	var num string
	switch {
	case v >= 1e12:
		num = fmt.Sprintf("%.1e", v)
	case v >= 1e6:
		num = fmt.Sprintf("%.1fM", v/1e6)
	case v >= 1e3:
		num = fmt.Sprintf("%.1fK", v/1e3)
	default:
		num = fmt.Sprintf("%.0f", v)
	}
	num = strings.Replace(num, ".", loc.Decimal, 1)
	space := ""
	if loc.SymbolSpace {
		space = " "
	}
	return sign + loc.Symbol + space + num
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
