package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/juros/internal/calculation"
	"github.com/rgehrsitz/juros/internal/config"
	"github.com/rgehrsitz/juros/internal/domain"
	"github.com/rgehrsitz/juros/internal/tui/scenes"
)

// text input slots, in form order
const (
	inputPrincipal = iota
	inputContribution
	inputRate
	inputDuration
	inputCount
)

// Model is the calculator form plus the last result computed from it
type Model struct {
	// Navigation
	currentScene  Scene
	previousScene Scene

	// Terminal dimensions
	width  int
	height int

	locale   domain.Locale
	defaults domain.CalculationInput

	// Form state
	inputs       [inputCount]textinput.Model
	rateBasis    domain.RateBasis
	durationUnit domain.DurationUnit
	focus        Field

	// Derived from the form on every change
	result      domain.CalculationResult
	balances    []float64
	contributed []float64

	scheduleModel *scenes.ScheduleModel

	keys keyMap
	help help.Model
}

// NewModel creates a form seeded with defaults, rendering amounts in loc
func NewModel(defaults domain.CalculationInput, loc domain.Locale) Model {
	if loc.Tag == "" {
		loc = domain.DefaultLocale
	}
	m := Model{
		currentScene:  SceneCalculator,
		width:         80,
		height:        24,
		locale:        loc,
		defaults:      defaults,
		scheduleModel: scenes.NewScheduleModel(loc),
		keys:          defaultKeyMap(),
		help:          help.New(),
	}
	m.help.Styles.ShortKey = StatusKeyStyle
	m.help.Styles.ShortDesc = HelpDescStyle

	m.inputs[inputPrincipal] = newInput("1000", 15)
	m.inputs[inputContribution] = newInput("0", 15)
	m.inputs[inputRate] = newInput("5", 10)
	// four digits keep the ledger bounded at 9999 years
	m.inputs[inputDuration] = newInput("120", 4)

	m.load(defaults)
	m.focus = FieldPrincipal
	m.inputs[inputPrincipal].Focus()
	m.recalculate()
	return m
}

func newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = limit + 1
	return ti
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// load copies a calculation input into the form fields
func (m *Model) load(in domain.CalculationInput) {
	text := config.TextInputFrom(in)
	m.inputs[inputPrincipal].SetValue(text.Principal)
	m.inputs[inputContribution].SetValue(text.MonthlyContribution)
	m.inputs[inputRate].SetValue(text.Rate)
	m.inputs[inputDuration].SetValue(text.Duration)
	m.rateBasis = text.RateBasis
	m.durationUnit = text.DurationUnit
}

// Text returns the raw form state
func (m Model) Text() config.TextInput {
	return config.TextInput{
		Principal:           m.inputs[inputPrincipal].Value(),
		MonthlyContribution: m.inputs[inputContribution].Value(),
		Rate:                m.inputs[inputRate].Value(),
		Duration:            m.inputs[inputDuration].Value(),
		RateBasis:           m.rateBasis,
		DurationUnit:        m.durationUnit,
	}
}

// Result returns the result for the current form state
func (m Model) Result() domain.CalculationResult { return m.result }

// Focus returns the focused field
func (m Model) Focus() Field { return m.focus }

// CurrentScene returns the visible scene
func (m Model) CurrentScene() Scene { return m.currentScene }

// recalculate derives the result and chart series from the current snapshot
func (m *Model) recalculate() {
	in := m.Text().Input()
	m.result = calculation.Calculate(in)

	rows := calculation.Schedule(in)
	m.scheduleModel.SetSchedule(rows)

	m.balances = make([]float64, 0, len(rows)+1)
	m.contributed = make([]float64, 0, len(rows)+1)
	m.balances = append(m.balances, in.Principal)
	m.contributed = append(m.contributed, in.Principal)
	for _, r := range rows {
		m.balances = append(m.balances, r.Closing)
		m.contributed = append(m.contributed, r.ContributedToDate)
	}
}

// inputIndex maps a text field to its input slot
func inputIndex(f Field) (int, bool) {
	switch f {
	case FieldPrincipal:
		return inputPrincipal, true
	case FieldContribution:
		return inputContribution, true
	case FieldRate:
		return inputRate, true
	case FieldDuration:
		return inputDuration, true
	}
	return 0, false
}

// setFocus moves focus to f, blurring the previous text input
func (m *Model) setFocus(f Field) tea.Cmd {
	f = (f%fieldCount + fieldCount) % fieldCount
	if i, ok := inputIndex(m.focus); ok {
		m.inputs[i].Blur()
	}
	m.focus = f
	if i, ok := inputIndex(f); ok {
		return m.inputs[i].Focus()
	}
	return nil
}
