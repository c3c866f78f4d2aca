package tui

// Scene represents the screens of the calculator
type Scene int

const (
	SceneCalculator Scene = iota
	SceneSchedule
	SceneHelp
)

func (s Scene) String() string {
	switch s {
	case SceneCalculator:
		return "Calculadora"
	case SceneSchedule:
		return "Tabela mensal"
	case SceneHelp:
		return "Ajuda"
	}
	return "Desconhecida"
}

// Field identifies a focusable form element, in tab order
type Field int

const (
	FieldPrincipal Field = iota
	FieldContribution
	FieldRate
	FieldRateBasis
	FieldDuration
	FieldDurationUnit
	fieldCount
)

// IsToggle reports whether the field flips between two values instead of taking text
func (f Field) IsToggle() bool {
	return f == FieldRateBasis || f == FieldDurationUnit
}

func (f Field) String() string {
	switch f {
	case FieldPrincipal:
		return "Valor inicial"
	case FieldContribution:
		return "Valor mensal"
	case FieldRate:
		return "Taxa de juros"
	case FieldRateBasis:
		return "Taxa"
	case FieldDuration:
		return "Período"
	case FieldDurationUnit:
		return "Período em"
	}
	return ""
}

// Message types for the Bubble Tea update cycle

// NavigateMsg switches to a different scene
type NavigateMsg struct {
	Scene Scene
}

// ResetMsg restores every field to its default value
type ResetMsg struct{}
