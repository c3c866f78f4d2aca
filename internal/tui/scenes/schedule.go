package scenes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/juros/internal/domain"
	"github.com/rgehrsitz/juros/internal/output"
	"github.com/rgehrsitz/juros/internal/tui/tuistyles"
)

// ScheduleModel is the scrollable month-by-month ledger
type ScheduleModel struct {
	rows   []domain.MonthlyBalance
	locale domain.Locale
	offset int
	width  int
	height int
}

// NewScheduleModel creates an empty ledger scene
func NewScheduleModel(loc domain.Locale) *ScheduleModel {
	return &ScheduleModel{locale: loc, height: 24}
}

// SetSchedule replaces the ledger, keeping the scroll position when possible
func (m *ScheduleModel) SetSchedule(rows []domain.MonthlyBalance) {
	m.rows = rows
	m.clamp()
}

// SetSize updates the scene dimensions
func (m *ScheduleModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.clamp()
}

// Offset returns the index of the first visible row
func (m *ScheduleModel) Offset() int { return m.offset }

// visibleRows leaves room for the title, header, footer and status bar
func (m *ScheduleModel) visibleRows() int {
	n := m.height - 8
	if n < 3 {
		n = 3
	}
	return n
}

func (m *ScheduleModel) clamp() {
	maxOffset := len(m.rows) - m.visibleRows()
	if m.offset > maxOffset {
		m.offset = maxOffset
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// Update handles scrolling keys
func (m *ScheduleModel) Update(msg tea.Msg) (*ScheduleModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	page := m.visibleRows()
	switch {
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("up", "k"))):
		m.offset--
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("down", "j"))):
		m.offset++
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("pgup"))):
		m.offset -= page
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("pgdown", " "))):
		m.offset += page
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("home", "g"))):
		m.offset = 0
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("end", "G"))):
		m.offset = len(m.rows)
	}
	m.clamp()
	return m, nil
}

// View renders the visible slice of the ledger
func (m *ScheduleModel) View() string {
	if len(m.rows) == 0 {
		return tuistyles.InfoStyle.Render("Nenhum mês para exibir: o período é zero.")
	}

	var sb strings.Builder
	sb.WriteString(tuistyles.TableHeaderStyle.Render(
		fmt.Sprintf("%5s %16s %14s %14s %16s", "Mês", "Saldo inicial", "Juros", "Aporte", "Saldo final")))
	sb.WriteString("\n")

	end := m.offset + m.visibleRows()
	if end > len(m.rows) {
		end = len(m.rows)
	}
	for _, r := range m.rows[m.offset:end] {
		sb.WriteString(tuistyles.TableCellStyle.Render(fmt.Sprintf("%5d %16s %14s %14s %16s",
			r.Month,
			output.Money(m.locale, r.Opening),
			output.Money(m.locale, r.Interest),
			output.Money(m.locale, r.Contribution),
			output.Money(m.locale, r.Closing))))
		sb.WriteString("\n")
	}

	sb.WriteString(tuistyles.SubtitleStyle.Render(
		fmt.Sprintf("meses %d-%d de %d", m.offset+1, end, len(m.rows))))
	return sb.String()
}
