package runner

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/computerscienceiscool/wa-agent/internal/errors"
	"github.com/computerscienceiscool/wa-agent/internal/parser"
	"github.com/computerscienceiscool/wa-agent/internal/whatsapp"
)

// Config carries the per-run settings the dispatcher needs.
type Config struct {
	// Recipient is the normalized destination number (bare digits, country
	// code first, per the Cloud API contract).
	Recipient string
	// DryRun suppresses every network call and every sleep.
	DryRun bool
	// DefaultDelay paces sends when the file has no WAIT directives.
	DefaultDelay time.Duration
}

// Runner walks an InstructionSet exactly once, in order, dispatching each
// step. Send failures are recorded and the run continues; no step can abort
// the sequence.
type Runner struct {
	sender whatsapp.Sender
	out    io.Writer
	sleep  func(time.Duration)
	logger *zap.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithSleep replaces the blocking sleep. Tests record durations instead of
// waiting them out.
func WithSleep(sleep func(time.Duration)) Option {
	return func(r *Runner) {
		if sleep != nil {
			r.sleep = sleep
		}
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New creates a Runner that dispatches through sender and prints step
// progress to out.
func New(sender whatsapp.Sender, out io.Writer, opts ...Option) *Runner {
	r := &Runner{
		sender: sender,
		out:    out,
		sleep:  time.Sleep,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run dispatches every step and always reaches the end of the sequence.
func (r *Runner) Run(ctx context.Context, steps parser.InstructionSet, cfg Config) *Report {
	report := &Report{DryRun: cfg.DryRun}

	// Implicit pacing only applies when the author did not throttle the
	// run themselves with WAIT directives.
	pace := !steps.HasWaits() && cfg.DefaultDelay > 0

	for i, step := range steps {
		switch step.Kind {
		case parser.StepWait:
			r.runWait(step, cfg, report)
		case parser.StepSend:
			r.runSend(ctx, i, step, cfg, report, pace)
		}
	}

	report.Success = report.Failed == 0
	return report
}

func (r *Runner) runWait(step parser.Step, cfg Config, report *Report) {
	fmt.Fprintf(r.out, "[WAIT] %gs\n", step.Seconds)
	if cfg.DryRun {
		report.add(StepResult{Kind: parser.StepWait, Status: StatusSkipped, Seconds: step.Seconds})
		return
	}
	r.sleep(time.Duration(step.Seconds * float64(time.Second)))
	report.add(StepResult{Kind: parser.StepWait, Status: StatusWaited, Seconds: step.Seconds})
}

func (r *Runner) runSend(ctx context.Context, index int, step parser.Step, cfg Config, report *Report, pace bool) {
	fmt.Fprintf(r.out, "[SEND] %s\n", step.Text)
	if cfg.DryRun {
		report.add(StepResult{Kind: parser.StepSend, Status: StatusSkipped, Text: step.Text})
		return
	}

	id, err := r.sender.SendText(ctx, cfg.Recipient, step.Text)
	if err != nil {
		sendErr := &apperrors.SendError{StepIndex: index, Recipient: cfg.Recipient, Err: err}
		r.logger.Warn("send failed", zap.Int("step", index), zap.Error(err))
		fmt.Fprintf(r.out, "[FAIL] %v\n", err)
		report.add(StepResult{Kind: parser.StepSend, Status: StatusFailed, Text: step.Text, Error: sendErr.Error()})
	} else {
		r.logger.Debug("send accepted", zap.Int("step", index), zap.String("message_id", id))
		fmt.Fprintf(r.out, "[OK] id=%s\n", id)
		report.add(StepResult{Kind: parser.StepSend, Status: StatusSent, Text: step.Text, MessageID: id})
	}

	if pace {
		r.sleep(cfg.DefaultDelay)
	}
}
