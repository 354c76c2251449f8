package compare

import "github.com/rgehrsitz/nettogo/internal/output"

// JSONFormatter formats a comparison set as JSON
type JSONFormatter struct {
	Pretty bool
}

// Format returns the comparison set as a JSON document
func (jf *JSONFormatter) Format(compSet *ComparisonSet) (string, error) {
	data, err := output.EncodeJSON(compSet, jf.Pretty)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
