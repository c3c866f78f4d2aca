package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/juros/internal/domain"
	"github.com/rgehrsitz/juros/internal/output"
	"github.com/rgehrsitz/juros/internal/tui/tuistyles"
)

// ShareBar shows which fraction of a whole one part makes up
type ShareBar struct {
	Label  string
	Share  float64
	Width  int
	Locale domain.Locale
}

// NewShareBar creates a bar for part/whole; a zero or non-finite ratio renders empty
func NewShareBar(label string, part, whole float64, loc domain.Locale) *ShareBar {
	share := 0.0
	if whole != 0 {
		share = part / whole
	}
	if math.IsNaN(share) || math.IsInf(share, 0) {
		share = 0
	}
	return &ShareBar{Label: label, Share: share, Width: 30, Locale: loc}
}

// WithWidth sets the bar width
func (p *ShareBar) WithWidth(width int) *ShareBar {
	p.Width = width
	return p
}

// Filled returns how many cells of the bar are filled
func (p *ShareBar) Filled() int {
	if p.Width <= 0 {
		return 0
	}
	return int(math.Round(float64(p.Width) * math.Max(0, math.Min(1, math.Abs(p.Share)))))
}

// Render returns the styled bar with its percentage
func (p *ShareBar) Render() string {
	filled := p.Filled()
	empty := max(p.Width-filled, 0)

	barStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorSuccess)
	if p.Share < 0 {
		barStyle = lipgloss.NewStyle().Foreground(tuistyles.ColorDanger)
	}
	emptyStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorBorder)

	var b strings.Builder
	if p.Label != "" {
		b.WriteString(tuistyles.MetricLabelStyle.Render(p.Label))
		b.WriteString(" ")
	}
	b.WriteString("[")
	b.WriteString(barStyle.Render(strings.Repeat("█", filled)))
	b.WriteString(emptyStyle.Render(strings.Repeat("░", empty)))
	b.WriteString("] ")
	b.WriteString(lipgloss.NewStyle().Foreground(tuistyles.ColorPrimary).Bold(true).
		Render(output.Percent(p.Locale, p.Share, 1)))
	return b.String()
}
