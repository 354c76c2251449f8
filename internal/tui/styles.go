package tui

import "github.com/rgehrsitz/nettogo/internal/tui/tuistyles"

// Re-export styles from tuistyles to avoid import cycles
var (
	TitleStyle     = tuistyles.TitleStyle
	SubtitleStyle  = tuistyles.SubtitleStyle
	StatusBarStyle = tuistyles.StatusBarStyle
	StatusKeyStyle = tuistyles.StatusKeyStyle
	ErrorStyle     = tuistyles.ErrorStyle
	InfoStyle      = tuistyles.InfoStyle
)
