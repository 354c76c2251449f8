// Package scenario keeps the ordered list of income scenarios a user is
// comparing. The calculation engine never sees this list, only the
// individual scenarios handed to it.
package scenario

import (
	"fmt"

	"github.com/rgehrsitz/nettogo/internal/domain"
	"github.com/shopspring/decimal"
)

// Draft is a scenario as entered, before it receives an id
type Draft struct {
	Year             int             `yaml:"year" json:"year"`
	GrossMonthly     decimal.Decimal `yaml:"gross_monthly" json:"gross_monthly"`
	Age              int             `yaml:"age" json:"age"`
	AdditionalKVRate decimal.Decimal `yaml:"additional_kv_rate" json:"additional_kv_rate"`
	HasChildren      bool            `yaml:"has_children" json:"has_children"`
}

// DefaultDraft returns the values a new entry form starts with
func DefaultDraft(year int) Draft {
	return Draft{
		Year:             year,
		GrossMonthly:     decimal.Zero,
		Age:              28,
		AdditionalKVRate: decimal.RequireFromString("1.7"),
	}
}

// Scenario turns the draft into a scenario with the given id
func (d Draft) Scenario(id int) domain.Scenario {
	return domain.Scenario{
		ID:               id,
		Year:             d.Year,
		GrossMonthly:     d.GrossMonthly,
		Age:              d.Age,
		AdditionalKVRate: d.AdditionalKVRate,
		HasChildren:      d.HasChildren,
	}
}

// DraftOf strips the id from s so it can be added to a collection again
func DraftOf(s domain.Scenario) Draft {
	return Draft{
		Year:             s.Year,
		GrossMonthly:     s.GrossMonthly,
		Age:              s.Age,
		AdditionalKVRate: s.AdditionalKVRate,
		HasChildren:      s.HasChildren,
	}
}

// YearChecker reports whether a year is supported
type YearChecker interface {
	Supports(year int) bool
}

// Collection is an ordered list of scenarios keyed by id. Ids increase
// monotonically and are never reused, even after removal.
type Collection struct {
	years   YearChecker
	counter int
	items   []domain.Scenario
}

// NewCollection creates an empty collection. years may be nil to accept any year.
func NewCollection(years YearChecker) *Collection {
	return &Collection{years: years}
}

// Validate checks a draft without adding it
func (c *Collection) Validate(d Draft) error {
	if err := d.Scenario(0).Validate(); err != nil {
		return err
	}
	if c.years != nil && !c.years.Supports(d.Year) {
		return &domain.UnsupportedYearError{Year: d.Year}
	}
	return nil
}

// Add validates the draft, assigns the next id and appends it
func (c *Collection) Add(d Draft) (domain.Scenario, error) {
	if err := c.Validate(d); err != nil {
		return domain.Scenario{}, err
	}
	c.counter++
	s := d.Scenario(c.counter)
	c.items = append(c.items, s)
	return s, nil
}

// Replace swaps the scenario with the given id for a new record built from
// the draft. The new record gets a fresh id and keeps the old position.
func (c *Collection) Replace(id int, d Draft) (domain.Scenario, error) {
	idx := c.indexOf(id)
	if idx < 0 {
		return domain.Scenario{}, fmt.Errorf("scenario %d not found", id)
	}
	if err := c.Validate(d); err != nil {
		return domain.Scenario{}, err
	}
	c.counter++
	s := d.Scenario(c.counter)

	items := make([]domain.Scenario, len(c.items))
	copy(items, c.items)
	items[idx] = s
	c.items = items
	return s, nil
}

// Remove deletes the scenario with the given id
func (c *Collection) Remove(id int) error {
	idx := c.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("scenario %d not found", id)
	}
	return c.RemoveAt(idx)
}

// RemoveAt deletes the scenario at a list position
func (c *Collection) RemoveAt(index int) error {
	if index < 0 || index >= len(c.items) {
		return fmt.Errorf("index %d out of range", index)
	}
	items := make([]domain.Scenario, 0, len(c.items)-1)
	items = append(items, c.items[:index]...)
	items = append(items, c.items[index+1:]...)
	c.items = items
	return nil
}

// Get returns the scenario with the given id
func (c *Collection) Get(id int) (domain.Scenario, bool) {
	idx := c.indexOf(id)
	if idx < 0 {
		return domain.Scenario{}, false
	}
	return c.items[idx], true
}

// List returns a copy of the scenarios in insertion order
func (c *Collection) List() []domain.Scenario {
	out := make([]domain.Scenario, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of scenarios
func (c *Collection) Len() int {
	return len(c.items)
}

func (c *Collection) indexOf(id int) int {
	for i, s := range c.items {
		if s.ID == id {
			return i
		}
	}
	return -1
}
