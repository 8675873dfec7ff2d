package analyzer

import (
	"github.com/ppiankov/idlespectre/internal/inventory"
)

// Aggregate concatenates classifier outputs in the order given, keeping each
// output's internal order.
func Aggregate(outputs ...[]inventory.Finding) Report {
	n := 0
	for _, out := range outputs {
		n += len(out)
	}

	findings := make([]inventory.Finding, 0, n)
	for _, out := range outputs {
		findings = append(findings, out...)
	}
	return Report{Findings: findings}
}

// TotalMonthlyCost sums the estimated monthly cost of every finding.
func (r Report) TotalMonthlyCost() float64 {
	total := 0.0
	for _, f := range r.Findings {
		total += f.EstimatedMonthlyCost
	}
	return total
}

// Len returns the number of findings.
func (r Report) Len() int {
	return len(r.Findings)
}

// Summarize computes per-type counts and totals for display.
func Summarize(r Report) Summary {
	summary := Summary{
		TotalFindings:    r.Len(),
		TotalMonthlyCost: r.TotalMonthlyCost(),
		ByResourceType:   make(map[string]int),
	}
	for _, f := range r.Findings {
		summary.ByResourceType[string(f.ResourceType)]++
	}
	return summary
}
