package report

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/ppiankov/idlespectre/internal/pricing"
)

// Generate writes human-readable terminal output.
func (r *TextReporter) Generate(data Data) error {
	tw := tabwriter.NewWriter(r.Writer, 0, 4, 2, ' ', 0)
	w := &errWriter{w: r.Writer}
	currency := data.Config.Currency

	w.println("idlespectre — Unused Resource Report")
	w.println(strings.Repeat("=", 36))
	w.println("")

	if len(data.Findings) == 0 {
		w.println("No unused resources found.")
		w.println("")
		writeTextSummary(w, data)
		return w.err
	}

	w.printf("Found %d unused resources with estimated monthly saving of %s%s\n\n",
		data.Summary.TotalFindings, currency, pricing.FormatAmount(data.Summary.TotalMonthlyCost))

	tw2 := &errWriter{w: tw}
	tw2.printf("TYPE\tRESOURCE\tSAVING/MO\tREASON\n")
	tw2.printf("----\t--------\t---------\t------\n")

	for _, f := range data.Findings {
		tw2.printf("%s\t%s\t%s%s\t%s\n",
			f.ResourceType, f.ResourceID, currency, pricing.FormatAmount(f.EstimatedMonthlyCost), f.Reason)
	}
	if tw2.err != nil {
		return tw2.err
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	w.println("")
	writeTextSummary(w, data)
	return w.err
}

func writeTextSummary(w *errWriter, data Data) {
	w.println("Summary")
	w.println("-------")
	w.printf("Total findings:           %d\n", data.Summary.TotalFindings)
	w.printf("Estimated monthly saving: %s%s\n", data.Config.Currency, pricing.FormatAmount(data.Summary.TotalMonthlyCost))

	if len(data.Summary.ByResourceType) > 0 {
		parts := formatMapSorted(data.Summary.ByResourceType)
		w.printf("By resource type:         %s\n", strings.Join(parts, ", "))
	}
	if data.Artifact != "" {
		w.printf("Report artifact:          %s\n", data.Artifact)
	}

	if len(data.Errors) > 0 {
		w.printf("\nWarnings (%d):\n", len(data.Errors))
		for _, e := range data.Errors {
			w.printf("  - %s\n", e)
		}
	}
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}

func formatMapSorted(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%d", k, m[k]))
	}
	return parts
}
