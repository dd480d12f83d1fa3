package report

import (
	"encoding/json"
	"strings"
)

// JSONReport wraps a result with the tool that produced it
type JSONReport struct {
	Tool   string `json:"tool"`
	Result any    `json:"result"`
}

// generateJSON generates a JSON report
func generateJSON(kind string, v any) ([]byte, error) {
	report := &JSONReport{
		Tool:   strings.ToLower(kind),
		Result: v,
	}

	return json.MarshalIndent(report, "", "  ")
}
