package output

import (
	"github.com/goccy/go-json"
	"github.com/rgehrsitz/nettogo/internal/domain"
)

// EncodeJSON marshals v, indented by two spaces when pretty is set. Every
// JSON report of the module goes through it.
func EncodeJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// JSONFormatter writes {"results": [...]}
type JSONFormatter struct {
	Pretty bool
}

func (JSONFormatter) Name() string { return "json" }

func (jf JSONFormatter) Format(results []domain.Result) ([]byte, error) {
	doc := struct {
		Results []Row `json:"results"`
	}{Results: Rows(results)}

	data, err := EncodeJSON(doc, jf.Pretty)
	if err != nil {
		return nil, err
	}
	if jf.Pretty {
		data = append(data, '\n')
	}
	return data, nil
}
