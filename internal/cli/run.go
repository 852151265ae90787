package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	apperrors "github.com/computerscienceiscool/wa-agent/internal/errors"
	"github.com/computerscienceiscool/wa-agent/internal/parser"
	"github.com/computerscienceiscool/wa-agent/internal/runner"
	"github.com/computerscienceiscool/wa-agent/internal/whatsapp"
)

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	logger := newLogger(cfg.Verbose)
	defer func() { _ = logger.Sync() }()

	text, err := os.ReadFile(cfg.InstructionsFile)
	if err != nil {
		return fmt.Errorf("cannot read instructions file: %w", err)
	}

	steps := parser.NewInstructionParser().Parse(string(text), parser.FormatForPath(cfg.InstructionsFile))
	if len(steps) == 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrNoSteps, cfg.InstructionsFile)
	}

	client := whatsapp.NewClient(cfg.Token, cfg.PhoneNumberID,
		whatsapp.WithAPIVersion(cfg.APIVersion),
		whatsapp.WithTimeout(time.Duration(cfg.TimeoutSeconds)*time.Second),
		whatsapp.WithLogger(logger),
	)

	out := cmd.OutOrStdout()
	run := runner.New(client, out, runner.WithLogger(logger))
	report := run.Run(cmd.Context(), steps, runner.Config{
		Recipient:    cfg.Recipient,
		DryRun:       cfg.DryRun,
		DefaultDelay: time.Duration(cfg.DelaySeconds * float64(time.Second)),
	})

	if cfg.JSONOutput {
		encoded, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("cannot encode report: %w", err)
		}
		fmt.Fprintln(out, string(encoded))
	} else {
		fmt.Fprint(out, report.Summary())
	}

	if !report.Success {
		return fmt.Errorf("%d of %d send steps failed", report.Failed, report.Failed+report.Sent)
	}
	return nil
}
