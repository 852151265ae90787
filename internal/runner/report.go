package runner

import (
	"fmt"
	"strings"

	"github.com/computerscienceiscool/wa-agent/internal/parser"
)

// Status classifies the outcome of one dispatched step.
type Status string

const (
	// StatusSent means the API accepted the message.
	StatusSent Status = "sent"
	// StatusSkipped means dry-run suppressed the step's side effect.
	StatusSkipped Status = "skipped"
	// StatusWaited means the pause ran for its full duration.
	StatusWaited Status = "waited"
	// StatusFailed means the send was attempted and did not succeed.
	StatusFailed Status = "failed"
)

// StepResult records the outcome of one step, in dispatch order.
type StepResult struct {
	Kind      parser.StepKind `json:"kind"`
	Status    Status          `json:"status"`
	Text      string          `json:"text,omitempty"`
	Seconds   float64         `json:"seconds,omitempty"`
	MessageID string          `json:"message_id,omitempty"`
	Error     string          `json:"error,omitempty"`
}

// Report is the final outcome of one run. Once a send has failed, earlier
// sends have already happened; the report records everything, it rolls back
// nothing.
type Report struct {
	DryRun  bool         `json:"dry_run"`
	Results []StepResult `json:"results"`
	Sent    int          `json:"sent"`
	Skipped int          `json:"skipped"`
	Waited  int          `json:"waited"`
	Failed  int          `json:"failed"`
	Success bool         `json:"success"`
}

func (r *Report) add(res StepResult) {
	r.Results = append(r.Results, res)
	switch res.Status {
	case StatusSent:
		r.Sent++
	case StatusSkipped:
		r.Skipped++
	case StatusWaited:
		r.Waited++
	case StatusFailed:
		r.Failed++
	}
}

// Summary renders the human-readable end-of-run banner.
func (r *Report) Summary() string {
	var b strings.Builder

	b.WriteString("=== RUN COMPLETE ===\n")
	fmt.Fprintf(&b, "Steps: %d\n", len(r.Results))
	fmt.Fprintf(&b, "Sent: %d\n", r.Sent)
	if r.DryRun {
		fmt.Fprintf(&b, "Skipped (dry run): %d\n", r.Skipped)
	}
	if r.Waited > 0 {
		fmt.Fprintf(&b, "Waits executed: %d\n", r.Waited)
	}
	if r.Failed > 0 {
		fmt.Fprintf(&b, "Failed: %d\n", r.Failed)
		for i, res := range r.Results {
			if res.Status == StatusFailed {
				fmt.Fprintf(&b, "  step %d: %s\n", i+1, res.Error)
			}
		}
	}
	b.WriteString("=== END ===\n")
	return b.String()
}
