package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/juros/internal/domain"
	"github.com/rgehrsitz/juros/internal/output"
	"github.com/rgehrsitz/juros/internal/tui/tuistyles"
)

// MetricCard displays one amount with its label and an optional note
type MetricCard struct {
	Label string
	Value string
	Note  string
	Width int

	// Sign colors the value: >0 positive, <0 negative, 0 neutral
	Sign int
}

// NewMetricCard creates a card for a preformatted value
func NewMetricCard(label, value string) *MetricCard {
	return &MetricCard{
		Label: label,
		Value: value,
		Width: 24,
	}
}

// NewMoneyCard creates a card for an amount in the locale's currency
func NewMoneyCard(label string, loc domain.Locale, amount float64) *MetricCard {
	return NewMetricCard(label, output.Money(loc, amount))
}

// WithNote adds a muted line under the value
func (m *MetricCard) WithNote(note string) *MetricCard {
	m.Note = note
	return m
}

// WithSign colors the value by sign
func (m *MetricCard) WithSign(amount float64) *MetricCard {
	switch {
	case amount > 0:
		m.Sign = 1
	case amount < 0:
		m.Sign = -1
	default:
		m.Sign = 0
	}
	return m
}

// WithWidth sets the card width
func (m *MetricCard) WithWidth(width int) *MetricCard {
	m.Width = width
	return m
}

// Render returns the bordered card
func (m *MetricCard) Render() string {
	label := tuistyles.MetricLabelStyle.Render(m.Label)

	valueStyle := tuistyles.MetricValueStyle
	if m.Sign != 0 {
		valueStyle = tuistyles.MetricTrendStyle(m.Sign > 0).Bold(true)
	}
	content := label + "\n" + valueStyle.Render(m.Value)

	if m.Note != "" {
		content += "\n" + tuistyles.SubtitleStyle.Render(m.Note)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(tuistyles.ColorBorder).
		Padding(0, 1).
		Width(m.Width).
		Render(content)
}

// RenderCompact returns "Label: value" without a border
func (m *MetricCard) RenderCompact() string {
	return fmt.Sprintf("%s %s",
		tuistyles.MetricLabelStyle.Render(m.Label+":"),
		tuistyles.MetricValueStyle.Render(m.Value))
}

// MetricGrid lays cards out in rows of the given number of columns
func MetricGrid(cards []*MetricCard, columns int) string {
	if len(cards) == 0 {
		return ""
	}
	if columns <= 0 {
		columns = len(cards)
	}

	var rows, current []string
	for i, card := range cards {
		current = append(current, card.Render())
		if (i+1)%columns == 0 || i == len(cards)-1 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, current...))
			current = nil
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
