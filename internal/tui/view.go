package tui

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/juros/internal/domain"
	"github.com/rgehrsitz/juros/internal/output"
	"github.com/rgehrsitz/juros/internal/tui/components"
)

// View renders the current state of the application
func (m Model) View() string {
	var content string
	switch m.currentScene {
	case SceneCalculator:
		content = m.renderCalculator()
	case SceneSchedule:
		content = m.scheduleModel.View()
	case SceneHelp:
		content = m.renderHelp()
	default:
		content = "Tela desconhecida"
	}

	return AppStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTitleBar(),
		content,
		m.renderStatusBar(),
	))
}

func (m Model) renderTitleBar() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		TitleStyle.Render("juros · calculadora de juros compostos"),
		SubtitleStyle.Render(m.currentScene.String()),
	)
}

func (m Model) renderStatusBar() string {
	return StatusBarStyle.Render(m.help.View(m.keys))
}

func (m Model) renderCalculator() string {
	form := BorderStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		TitleStyle.Render("Meu cálculo"),
		m.renderTextField(FieldPrincipal, m.locale.Symbol),
		m.renderTextField(FieldContribution, m.locale.Symbol),
		m.renderTextField(FieldRate, "%"),
		m.renderToggle(FieldRateBasis, basisLabel(m.rateBasis), basisLabel(m.rateBasis.Toggle())),
		m.renderTextField(FieldDuration, ""),
		m.renderToggle(FieldDurationUnit, unitLabel(m.durationUnit), unitLabel(m.durationUnit.Toggle())),
	))

	res := m.result
	cards := components.MetricGrid([]*components.MetricCard{
		components.NewMoneyCard("Valor final", m.locale, res.FinalValue),
		components.NewMoneyCard("Total investido", m.locale, res.TotalContributed),
		components.NewMoneyCard("Total em juros", m.locale, res.TotalInterest).WithSign(res.TotalInterest),
	}, 3)

	share := components.NewShareBar("Juros no valor final", res.TotalInterest, res.FinalValue, m.locale).
		WithWidth(24).
		Render()

	rows := []string{TitleStyle.Render("Resultado"), cards, share, SubtitleStyle.Render(m.rateNote())}
	if warning := resultWarning(res); warning != "" {
		rows = append(rows, WarningStyle.Render(warning))
	}
	summary := lipgloss.JoinVertical(lipgloss.Left, rows...)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, form, " ", summary),
		m.renderChart(),
	)
}

func (m Model) renderTextField(f Field, unit string) string {
	i, _ := inputIndex(f)
	label := ParameterLabelStyle.Render(f.String())
	if m.focus == f {
		label = FocusedLabelStyle.Render(f.String())
	}
	line := label + m.inputs[i].View()
	if unit != "" {
		line += " " + SubtitleStyle.Render(unit)
	}
	return line
}

func (m Model) renderToggle(f Field, current, other string) string {
	label := ParameterLabelStyle.Render(f.String())
	style := ToggleStyle
	if m.focus == f {
		label = FocusedLabelStyle.Render(f.String())
		style = FocusedToggleStyle
	}
	return label + style.Render("‹ "+current+" ›") + SubtitleStyle.Render(" "+other)
}

// resultWarning explains a NaN or infinite result
func resultWarning(res domain.CalculationResult) string {
	switch {
	case res.Finite():
		return ""
	case math.IsNaN(res.MonthlyRate):
		return "Resultado indefinido: a taxa anual precisa ser maior que -100%."
	default:
		return "Resultado fora do limite numérico: reduza a taxa ou o período."
	}
}

func (m Model) rateNote() string {
	return "taxa efetiva mensal " + output.Percent(m.locale, m.result.MonthlyRate, 4) +
		" · " + strconv.Itoa(m.result.TotalMonths) + " meses"
}

func (m Model) renderChart() string {
	if m.result.TotalMonths == 0 {
		return InfoStyle.Render("Informe um período para ver a evolução do saldo.")
	}

	width := m.width - 6
	if width > 90 {
		width = 90
	}
	if width < 30 {
		width = 30
	}
	points := width - 14

	return components.NewASCIIChart("Evolução do saldo").
		WithSize(width, 8).
		WithLocale(m.locale).
		WithXAxisLabel("mês 0 → mês "+strconv.Itoa(m.result.TotalMonths)).
		AddSeries("Saldo", components.Downsample(m.balances, points), ColorChartLine1).
		AddSeries("Investido", components.Downsample(m.contributed, points), ColorChartLine2).
		Render()
}

func (m Model) renderHelp() string {
	var sb strings.Builder
	sb.WriteString("Os valores são recalculados a cada tecla.\n")
	sb.WriteString("Textos que não começam com um número contam como zero.\n\n")
	for _, group := range m.keys.FullHelp() {
		for _, b := range group {
			h := b.Help()
			sb.WriteString(HelpKeyStyle.Render(padRight(h.Key, 14)))
			sb.WriteString(HelpDescStyle.Render(h.Desc))
			sb.WriteString("\n")
		}
	}
	return BorderStyle.Render(strings.TrimRight(sb.String(), "\n"))
}

func basisLabel(b domain.RateBasis) string {
	if b.Normalize() == domain.RateMonthly {
		return "mensal"
	}
	return "anual"
}

func unitLabel(u domain.DurationUnit) string {
	if u.Normalize() == domain.DurationYears {
		return "anos"
	}
	return "meses"
}

func padRight(s string, n int) string {
	if w := lipgloss.Width(s); w < n {
		return s + strings.Repeat(" ", n-w)
	}
	return s
}
