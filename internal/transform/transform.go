// Package transform derives what-if variants from a base scenario.
package transform

import (
	"fmt"

	"github.com/rgehrsitz/nettogo/internal/domain"
)

// ScenarioTransform defines the interface for all scenario transformations.
// Transforms are composable: each one receives a copy of the previous result,
// so the base scenario is never modified.
type ScenarioTransform interface {
	// Apply returns the modified scenario
	Apply(base domain.Scenario) (domain.Scenario, error)

	// Name returns a short identifier for this transform (e.g., "raise_gross").
	Name() string

	// Description returns a human-readable description of the change
	Description() string

	// Validate checks the transform parameters against base without applying them
	Validate(base domain.Scenario) error
}

// ApplyTransforms applies transforms in order. The result keeps the base's id;
// callers that add it to a collection get a fresh one.
func ApplyTransforms(base domain.Scenario, transforms []ScenarioTransform) (domain.Scenario, error) {
	current := base

	for i, transform := range transforms {
		if transform == nil {
			return domain.Scenario{}, fmt.Errorf("transform at index %d is nil", i)
		}

		if err := transform.Validate(current); err != nil {
			return domain.Scenario{}, fmt.Errorf("transform %s validation failed: %w", transform.Name(), err)
		}

		next, err := transform.Apply(current)
		if err != nil {
			return domain.Scenario{}, fmt.Errorf("transform %s failed: %w", transform.Name(), err)
		}
		if err := next.Validate(); err != nil {
			return domain.Scenario{}, fmt.Errorf("transform %s produced an invalid scenario: %w", transform.Name(), err)
		}

		current = next
	}

	return current, nil
}

// Describe joins the descriptions of transforms for labels and reports
func Describe(transforms []ScenarioTransform) string {
	out := ""
	for i, t := range transforms {
		if i > 0 {
			out += ", "
		}
		out += t.Description()
	}
	return out
}

// TransformError represents an error that occurred during transformation.
type TransformError struct {
	TransformName string
	Operation     string
	Reason        string
	Err           error
}

func (e *TransformError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transform %s (%s): %s: %v", e.TransformName, e.Operation, e.Reason, e.Err)
	}
	return fmt.Sprintf("transform %s (%s): %s", e.TransformName, e.Operation, e.Reason)
}

func (e *TransformError) Unwrap() error {
	return e.Err
}

// NewTransformError creates a new TransformError.
func NewTransformError(transformName, operation, reason string, err error) error {
	return &TransformError{
		TransformName: transformName,
		Operation:     operation,
		Reason:        reason,
		Err:           err,
	}
}
