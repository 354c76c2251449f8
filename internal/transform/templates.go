package transform

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rgehrsitz/nettogo/internal/domain"

	"github.com/shopspring/decimal"
)

// TemplateRegistry manages built-in scenario templates
type TemplateRegistry struct {
	templates map[string]Template
}

// Template represents a named collection of transforms
type Template struct {
	Name        string
	Description string
	Transforms  []ScenarioTransform
}

// NewTemplateRegistry creates an empty template registry
func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{
		templates: make(map[string]Template),
	}
}

// Register adds a template to the registry
func (tr *TemplateRegistry) Register(t Template) {
	tr.templates[strings.ToLower(t.Name)] = t
}

// Get retrieves a template by name (case-insensitive)
func (tr *TemplateRegistry) Get(name string) (Template, bool) {
	t, ok := tr.templates[strings.ToLower(name)]
	return t, ok
}

// List returns all registered template names, sorted
func (tr *TemplateRegistry) List() []string {
	names := make([]string, 0, len(tr.templates))
	for name := range tr.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CreateBuiltInTemplates creates a template registry with common salary questions
func CreateBuiltInTemplates() *TemplateRegistry {
	registry := NewTemplateRegistry()

	for _, pct := range []int64{3, 5, 10} {
		p := decimal.NewFromInt(pct)
		registry.Register(Template{
			Name:        fmt.Sprintf("raise_%dpct", pct),
			Description: fmt.Sprintf("Raise the gross salary by %d%%", pct),
			Transforms:  []ScenarioTransform{&RaiseGross{Percent: p}},
		})
	}

	registry.Register(Template{
		Name:        "first_child",
		Description: "Same salary after the first child (no PV surcharge)",
		Transforms:  []ScenarioTransform{&SetChildren{HasChildren: true}},
	})

	registry.Register(Template{
		Name:        "cheap_insurer",
		Description: "Switch to a health insurer with a 1.0% additional rate",
		Transforms:  []ScenarioTransform{&SetKVRate{Rate: decimal.RequireFromString("1.0")}},
	})

	registry.Register(Template{
		Name:        "next_year",
		Description: "Same scenario one calendar year later",
		Transforms:  []ScenarioTransform{&shiftYear{By: 1}},
	})

	return registry
}

// shiftYear moves the scenario by a number of years relative to its own
type shiftYear struct {
	By int
}

func (t *shiftYear) Apply(base domain.Scenario) (domain.Scenario, error) {
	next := base
	next.Year += t.By
	return next, nil
}

func (t *shiftYear) Name() string        { return "shift_year" }
func (t *shiftYear) Description() string { return fmt.Sprintf("year %+d", t.By) }
func (t *shiftYear) Validate(domain.Scenario) error {
	return nil
}
