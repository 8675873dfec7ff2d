// Package notify composes the human-readable scan summary and delivers it.
package notify

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/ppiankov/idlespectre/internal/analyzer"
	"github.com/ppiankov/idlespectre/internal/inventory"
	"github.com/ppiankov/idlespectre/internal/pricing"
)

const (
	Subject       = "AWS Cost Optimization Report"
	NoFindingsMsg = "No unused AWS resources found."
	banner        = "Unused AWS Resources Detected"
	callToAction  = "Action: Please review and remove manually if not required."
)

// Message is a subject/body pair handed to a Notifier.
type Message struct {
	Subject string
	Body    string
}

// Notifier delivers a message to a single pre-configured destination.
type Notifier interface {
	Send(ctx context.Context, msg Message) error
}

// Compose renders the notification for a report. It depends only on the
// report and the currency symbol.
func Compose(r analyzer.Report, currency string) Message {
	if r.Len() == 0 {
		return Message{Subject: Subject, Body: NoFindingsMsg}
	}

	var b strings.Builder
	b.WriteString(banner)
	b.WriteString("\n\n")
	for _, f := range r.Findings {
		b.WriteString(FindingLine(f, currency))
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "\nEstimated Monthly Saving: %s%s\n\n", currency, pricing.FormatAmount(r.TotalMonthlyCost()))
	b.WriteString(callToAction)

	return Message{Subject: Subject, Body: b.String()}
}

// FindingLine formats one finding, e.g. "Volume unattached (30+ days): vol-1 (~₹800)".
// Findings without an estimate carry no cost suffix.
func FindingLine(f inventory.Finding, currency string) string {
	line := fmt.Sprintf("%s %s: %s", f.ResourceType, f.Reason, f.ResourceID)
	if f.EstimatedMonthlyCost > 0 {
		line += fmt.Sprintf(" (~%s%s)", currency, pricing.FormatAmount(f.EstimatedMonthlyCost))
	}
	return line
}

// WriterNotifier prints messages instead of publishing them.
type WriterNotifier struct {
	Writer io.Writer
}

// Send writes the subject, a separator and the body.
func (n *WriterNotifier) Send(_ context.Context, msg Message) error {
	if _, err := fmt.Fprintf(n.Writer, "Subject: %s\n\n%s\n", msg.Subject, msg.Body); err != nil {
		return fmt.Errorf("write notification: %w", err)
	}
	return nil
}
