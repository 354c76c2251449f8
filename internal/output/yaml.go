package output

import (
	"github.com/rgehrsitz/nettogo/internal/domain"
	"gopkg.in/yaml.v3"
)

// YAMLFormatter writes the rows as a YAML document
type YAMLFormatter struct{}

func (YAMLFormatter) Name() string { return "yaml" }

func (YAMLFormatter) Format(results []domain.Result) ([]byte, error) {
	doc := struct {
		Results []Row `yaml:"results"`
	}{Results: Rows(results)}
	return yaml.Marshal(doc)
}
