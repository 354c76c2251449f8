package transform

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// TransformRegistry provides a central registry for all available transforms.
// It enables creation of transforms from string parameters, useful for CLI commands.
type TransformRegistry struct {
	factories map[string]TransformFactory
}

// TransformFactory is a function that creates a transform from parameters.
type TransformFactory func(params map[string]string) (ScenarioTransform, error)

// NewTransformRegistry creates a new registry with all built-in transforms registered.
func NewTransformRegistry() *TransformRegistry {
	registry := &TransformRegistry{
		factories: make(map[string]TransformFactory),
	}

	registry.Register("raise_gross", createRaiseGross)
	registry.Register("set_gross", createSetGross)
	registry.Register("set_age", createSetAge)
	registry.Register("set_children", createSetChildren)
	registry.Register("set_kv_rate", createSetKVRate)
	registry.Register("set_year", createSetYear)

	return registry
}

// Register adds a transform factory to the registry.
func (r *TransformRegistry) Register(name string, factory TransformFactory) {
	r.factories[name] = factory
}

// Create creates a transform by name with the given parameters.
func (r *TransformRegistry) Create(name string, params map[string]string) (ScenarioTransform, error) {
	factory, exists := r.factories[name]
	if !exists {
		return nil, fmt.Errorf("unknown transform: %s", name)
	}

	return factory(params)
}

// List returns the sorted names of all registered transforms.
func (r *TransformRegistry) List() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseTransformSpec parses a transform specification string.
// Format: "transform_name:param1=value1,param2=value2"
// Example: "raise_gross:percent=5,amount=100"
func (r *TransformRegistry) ParseTransformSpec(spec string) (ScenarioTransform, error) {
	parts := strings.SplitN(spec, ":", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid transform spec format, expected 'name:params', got: %s", spec)
	}

	name := strings.TrimSpace(parts[0])
	paramsStr := strings.TrimSpace(parts[1])

	params := make(map[string]string)
	if paramsStr != "" {
		for _, paramPair := range strings.Split(paramsStr, ",") {
			kv := strings.SplitN(paramPair, "=", 2)
			if len(kv) != 2 {
				return nil, fmt.Errorf("invalid parameter format, expected 'key=value', got: %s", paramPair)
			}
			params[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
		}
	}

	return r.Create(name, params)
}

// ParseTransformSpecs parses a chain of specs separated by ";"
func (r *TransformRegistry) ParseTransformSpecs(specs string) ([]ScenarioTransform, error) {
	var transforms []ScenarioTransform
	for _, spec := range strings.Split(specs, ";") {
		spec = strings.TrimSpace(spec)
		if spec == "" {
			continue
		}
		t, err := r.ParseTransformSpec(spec)
		if err != nil {
			return nil, err
		}
		transforms = append(transforms, t)
	}
	if len(transforms) == 0 {
		return nil, fmt.Errorf("no transforms in %q", specs)
	}
	return transforms, nil
}

// Factory functions for each transform

func decimalParam(params map[string]string, key string) (decimal.Decimal, bool, error) {
	raw, ok := params[key]
	if !ok {
		return decimal.Zero, false, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, true, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return d, true, nil
}

func intParam(params map[string]string, transform, key string) (int, error) {
	raw, ok := params[key]
	if !ok {
		return 0, fmt.Errorf("%s requires '%s' parameter", transform, key)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return v, nil
}

func createRaiseGross(params map[string]string) (ScenarioTransform, error) {
	percent, hasPercent, err := decimalParam(params, "percent")
	if err != nil {
		return nil, err
	}
	amount, hasAmount, err := decimalParam(params, "amount")
	if err != nil {
		return nil, err
	}
	if !hasPercent && !hasAmount {
		return nil, fmt.Errorf("raise_gross requires 'percent' or 'amount' parameter")
	}
	return &RaiseGross{Percent: percent, Amount: amount}, nil
}

func createSetGross(params map[string]string) (ScenarioTransform, error) {
	gross, ok, err := decimalParam(params, "gross")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("set_gross requires 'gross' parameter")
	}
	return &SetGross{Gross: gross}, nil
}

func createSetAge(params map[string]string) (ScenarioTransform, error) {
	age, err := intParam(params, "set_age", "age")
	if err != nil {
		return nil, err
	}
	return &SetAge{Age: age}, nil
}

func createSetChildren(params map[string]string) (ScenarioTransform, error) {
	raw, ok := params["children"]
	if !ok {
		return nil, fmt.Errorf("set_children requires 'children' parameter")
	}
	hasChildren, err := strconv.ParseBool(raw)
	if err != nil {
		switch strings.ToLower(raw) {
		case "yes", "y":
			hasChildren = true
		case "no", "n":
			hasChildren = false
		default:
			return nil, fmt.Errorf("invalid children value: %s", raw)
		}
	}
	return &SetChildren{HasChildren: hasChildren}, nil
}

func createSetKVRate(params map[string]string) (ScenarioTransform, error) {
	rate, ok, err := decimalParam(params, "rate")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("set_kv_rate requires 'rate' parameter")
	}
	return &SetKVRate{Rate: rate}, nil
}

func createSetYear(params map[string]string) (ScenarioTransform, error) {
	year, err := intParam(params, "set_year", "year")
	if err != nil {
		return nil, err
	}
	return &SetYear{Year: year}, nil
}
