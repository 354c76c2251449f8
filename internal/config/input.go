package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rgehrsitz/nettogo/internal/constants"
	"github.com/rgehrsitz/nettogo/internal/domain"
	"github.com/rgehrsitz/nettogo/internal/scenario"
	"gopkg.in/yaml.v3"
)

// Configuration is the content of a scenarios file
type Configuration struct {
	// ConstantsFile optionally points to a constants document, relative to the scenarios file
	ConstantsFile string           `yaml:"constants_file,omitempty"`
	Scenarios     []scenario.Draft `yaml:"scenarios"`
}

// InputParser handles parsing of scenario files
type InputParser struct {
	Constants *constants.Table
}

// NewInputParser creates a new input parser that checks years against table
func NewInputParser(table *constants.Table) *InputParser {
	return &InputParser{Constants: table}
}

// LoadFromFile loads and validates a scenarios file
func (ip *InputParser) LoadFromFile(filename string) (*Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var config Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if config.ConstantsFile != "" && !filepath.IsAbs(config.ConstantsFile) {
		config.ConstantsFile = filepath.Join(filepath.Dir(filename), config.ConstantsFile)
	}

	// A constants file named in the scenarios file takes precedence
	if config.ConstantsFile != "" {
		table, err := constants.LoadFromFile(config.ConstantsFile)
		if err != nil {
			return nil, err
		}
		ip.Constants = table
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration. Year support is
// not checked here: an unsupported year fails only its own scenario when
// the batch is evaluated.
func (ip *InputParser) ValidateConfiguration(config *Configuration) error {
	if len(config.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}
	for i, d := range config.Scenarios {
		if err := d.Scenario(0).Validate(); err != nil {
			return fmt.Errorf("scenario %d: %w", i+1, err)
		}
	}
	return nil
}

// ValidateScenario checks a single scenario draft, including the year
func (ip *InputParser) ValidateScenario(d scenario.Draft) error {
	if err := d.Scenario(0).Validate(); err != nil {
		return err
	}
	if ip.Constants != nil && !ip.Constants.Supports(d.Year) {
		return &domain.UnsupportedYearError{Year: d.Year}
	}
	return nil
}

// Collection builds a scenario collection from the configuration, assigning
// ids in file order. Scenarios in unsupported years are kept so the engine
// can report them one by one.
func (ip *InputParser) Collection(config *Configuration) (*scenario.Collection, error) {
	coll := scenario.NewCollection(nil)
	for i, d := range config.Scenarios {
		if _, err := coll.Add(d); err != nil {
			return nil, fmt.Errorf("scenario %d: %w", i+1, err)
		}
	}
	return coll, nil
}
