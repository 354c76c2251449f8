// Package tui is an interactive gross-to-net calculator: an entry form and a
// table that re-evaluates every scenario whenever the list changes.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/nettogo/internal/calculation"
	"github.com/rgehrsitz/nettogo/internal/domain"
	"github.com/rgehrsitz/nettogo/internal/scenario"
	"github.com/rgehrsitz/nettogo/internal/tui/scenes"
)

// Model represents the entire application state
type Model struct {
	pane Pane

	// Terminal dimensions
	width  int
	height int

	engine     *calculation.Engine
	collection *scenario.Collection
	results    []domain.Result

	formModel    *scenes.FormModel
	resultsModel *scenes.ResultsModel

	// Last problem with user input, cleared by the next successful action
	err    error
	status string
}

// NewModel creates a model over engine. initial scenarios, if any, are
// added to the list in order.
func NewModel(engine *calculation.Engine, initial []scenario.Draft) (Model, error) {
	defaultYear := 0
	if years := engine.Constants.Years(); len(years) > 0 {
		defaultYear = years[0]
	}

	m := Model{
		pane:         PaneForm,
		engine:       engine,
		collection:   scenario.NewCollection(engine.Constants),
		formModel:    scenes.NewFormModel(defaultYear),
		resultsModel: scenes.NewResultsModel(),
		width:        100,
		height:       30,
	}
	m.formModel.SetActive(true)

	for _, d := range initial {
		if _, err := m.collection.Add(d); err != nil {
			return Model{}, err
		}
	}
	m.recalculate()
	return m, nil
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	return nil
}

// Results returns the current evaluation of every scenario
func (m Model) Results() []domain.Result {
	return m.results
}

// Scenarios returns the scenarios in display order
func (m Model) Scenarios() []domain.Scenario {
	return m.collection.List()
}

// Err returns the last input error shown to the user
func (m Model) Err() error {
	return m.err
}

// recalculate evaluates every scenario again. Scenarios are independent,
// so a failing one only affects its own row.
func (m *Model) recalculate() {
	m.results = m.engine.EvaluateAll(m.collection.List())
	m.resultsModel.SetResults(m.results)
}

func (m *Model) setPane(p Pane) {
	m.pane = p
	m.formModel.SetActive(p == PaneForm)
	m.resultsModel.SetActive(p == PaneResults)
}
