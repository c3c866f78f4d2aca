package tui

import "github.com/rgehrsitz/juros/internal/tui/tuistyles"

// Re-export styles from tuistyles so the components package can share them
var (
	ColorChartLine1 = tuistyles.ColorChartLine1
	ColorChartLine2 = tuistyles.ColorChartLine2

	AppStyle            = tuistyles.AppStyle
	TitleStyle          = tuistyles.TitleStyle
	SubtitleStyle       = tuistyles.SubtitleStyle
	StatusBarStyle      = tuistyles.StatusBarStyle
	StatusKeyStyle      = tuistyles.StatusKeyStyle
	BorderStyle         = tuistyles.BorderStyle
	ParameterLabelStyle = tuistyles.ParameterLabelStyle
	FocusedLabelStyle   = tuistyles.FocusedLabelStyle
	ToggleStyle         = tuistyles.ToggleStyle
	FocusedToggleStyle  = tuistyles.FocusedToggleStyle
	HelpKeyStyle        = tuistyles.HelpKeyStyle
	HelpDescStyle       = tuistyles.HelpDescStyle
	InfoStyle           = tuistyles.InfoStyle
	WarningStyle        = tuistyles.MetricNegativeStyle
)
