// Package tuimsg defines the messages scenes send to the root model.
package tuimsg

import (
	"github.com/rgehrsitz/nettogo/internal/scenario"
)

// ScenarioSubmittedMsg carries a completed entry form
type ScenarioSubmittedMsg struct {
	Draft scenario.Draft
}

// ScenarioRemovedMsg asks for the scenario with ID to be removed
type ScenarioRemovedMsg struct {
	ID int
}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}
