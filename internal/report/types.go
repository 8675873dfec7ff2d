package report

import (
	"io"
	"time"

	"github.com/ppiankov/idlespectre/internal/analyzer"
	"github.com/ppiankov/idlespectre/internal/inventory"
	"github.com/ppiankov/idlespectre/internal/pricing"
)

// Reporter is the interface for terminal output formatters.
type Reporter interface {
	Generate(data Data) error
}

// Data holds all information needed to generate a scan summary.
type Data struct {
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

// NewData builds report data from an aggregated report.
func NewData(r analyzer.Report) Data {
	return Data{
		Findings: r.Findings,
		Summary:  analyzer.Summarize(r),
	}
}

// Target identifies the account being audited.
type Target struct {
	Type    string `json:"type"`
	URIHash string `json:"uri_hash"`
}

// ReportConfig captures the scan configuration used.
type ReportConfig struct {
	Provider         string        `json:"provider"`
	Region           string        `json:"region"`
	AgeThresholdDays int           `json:"age_threshold_days"`
	Currency         string        `json:"currency"`
	Costs            pricing.Costs `json:"costs"`
}

// TextReporter generates human-readable terminal output.
type TextReporter struct {
	Writer io.Writer
}

// JSONReporter generates spectre/v1 envelope JSON output.
type JSONReporter struct {
	Writer io.Writer
}

// SARIFReporter generates SARIF v2.1.0 output.
type SARIFReporter struct {
	Writer io.Writer
}
