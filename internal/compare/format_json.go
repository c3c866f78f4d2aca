package compare

import (
	"fmt"

	"github.com/rgehrsitz/juros/internal/output"
)

// JSONFormatter formats comparison results as JSON
type JSONFormatter struct {
	Pretty bool
}

// Format encodes the comparison set. Locale and ConfigPath travel with it so
// the document carries the same context as the table.
func (jf *JSONFormatter) Format(compSet *ComparisonSet) (string, error) {
	if compSet == nil || compSet.BaseResult == nil {
		return "", fmt.Errorf("comparison set has no base result")
	}
	data, err := output.MarshalJSON(compSet, jf.Pretty)
	if err != nil {
		return "", fmt.Errorf("encode comparison %s: %w", compSet.BaseScenarioName, err)
	}
	return string(data), nil
}
