package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/ppiankov/idlespectre/internal/analyzer"
	"github.com/ppiankov/idlespectre/internal/pricing"
)

// DefaultArtifactPrefix is where daily CSV reports are stored.
const DefaultArtifactPrefix = "reports/"

var csvHeader = []string{"ResourceType", "ResourceId", "EstimatedMonthlySaving"}

// RenderCSV serializes a report as CSV: a header row, one row per finding,
// a blank separator row and a final Total row.
func RenderCSV(r analyzer.Report) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, f := range r.Findings {
		row := []string{string(f.ResourceType), f.ResourceID, pricing.FormatAmount(f.EstimatedMonthlyCost)}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row %s: %w", f.ResourceID, err)
		}
	}
	if err := w.Write([]string{}); err != nil {
		return nil, fmt.Errorf("write csv separator: %w", err)
	}
	if err := w.Write([]string{"Total", "", pricing.FormatAmount(r.TotalMonthlyCost())}); err != nil {
		return nil, fmt.Errorf("write csv total: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// ArtifactName returns the per-day artifact key, e.g.
// reports/unused_resources_2026-02-28.csv. The date is taken in UTC so a
// rerun on the same day overwrites the same artifact.
func ArtifactName(prefix string, now time.Time) string {
	return fmt.Sprintf("%sunused_resources_%s.csv", prefix, now.UTC().Format(time.DateOnly))
}
