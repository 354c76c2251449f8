package tui

// Pane identifies which part of the screen receives keyboard input
type Pane int

const (
	PaneForm Pane = iota
	PaneResults
)

// String returns a human-readable name for a pane
func (p Pane) String() string {
	switch p {
	case PaneForm:
		return "Form"
	case PaneResults:
		return "Results"
	default:
		return "Unknown"
	}
}

// QuitMsg signals the application should exit
type QuitMsg struct{}
