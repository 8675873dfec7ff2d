package analyzer

import (
	"encoding/json"

	"github.com/ppiankov/idlespectre/internal/inventory"
)

// Report is the ordered set of findings produced by one scan. The total is
// always derived from the findings.
type Report struct {
	Findings []inventory.Finding
}

// Summary holds aggregated statistics about a report.
type Summary struct {
	TotalFindings    int            `json:"total_findings"`
	TotalMonthlyCost float64        `json:"total_estimated_monthly_cost"`
	ByResourceType   map[string]int `json:"by_resource_type"`
}

type reportJSON struct {
	Findings         []inventory.Finding `json:"findings"`
	TotalMonthlyCost float64             `json:"total_estimated_monthly_cost"`
}

// MarshalJSON includes the derived total alongside the findings.
func (r Report) MarshalJSON() ([]byte, error) {
	findings := r.Findings
	if findings == nil {
		findings = []inventory.Finding{}
	}
	return json.Marshal(reportJSON{
		Findings:         findings,
		TotalMonthlyCost: r.TotalMonthlyCost(),
	})
}
