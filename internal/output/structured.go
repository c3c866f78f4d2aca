package output

import (
	"encoding/json"

	"github.com/rgehrsitz/juros/internal/domain"
	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes v, indented by two spaces when pretty is set.
// NaN and infinite floats are rejected by encoding/json with an error.
func MarshalJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// JSONFormatter emits the raw scenario set as JSON
type JSONFormatter struct {
	Pretty bool // If true, format with indentation
}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(results *domain.ScenarioSet) ([]byte, error) {
	data, err := MarshalJSON(results, j.Pretty)
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// YAMLFormatter emits the raw scenario set as YAML
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string { return "yaml" }

func (y YAMLFormatter) Format(results *domain.ScenarioSet) ([]byte, error) {
	return yaml.Marshal(results)
}
