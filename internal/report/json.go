package report

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/ppiankov/idlespectre/internal/analyzer"
	"github.com/ppiankov/idlespectre/internal/inventory"
)

type jsonEnvelope struct {
	Schema    string              `json:"$schema"`
	Tool      string              `json:"tool"`
	Version   string              `json:"version"`
	Timestamp time.Time           `json:"timestamp"`
	Target    Target              `json:"target"`
	Config    ReportConfig        `json:"config"`
	Findings  []inventory.Finding `json:"findings"`
	Summary   analyzer.Summary    `json:"summary"`
	Artifact  string              `json:"artifact,omitempty"`
	Errors    []string            `json:"errors,omitempty"`
}

// Generate writes the spectre/v1 JSON envelope.
func (r *JSONReporter) Generate(data Data) error {
	findings := data.Findings
	if findings == nil {
		findings = []inventory.Finding{}
	}

	env := jsonEnvelope{
		Schema:    "spectre/v1",
		Tool:      data.Tool,
		Version:   data.Version,
		Timestamp: data.Timestamp,
		Target:    data.Target,
		Config:    data.Config,
		Findings:  findings,
		Summary:   data.Summary,
		Artifact:  data.Artifact,
		Errors:    data.Errors,
	}

	enc := json.NewEncoder(r.Writer)
	enc.SetIndent("", "  ")
	if err := enc.Encode(env); err != nil {
		return fmt.Errorf("encode JSON report: %w", err)
	}
	return nil
}
