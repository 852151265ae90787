package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/computerscienceiscool/wa-agent/internal/config"
	apperrors "github.com/computerscienceiscool/wa-agent/internal/errors"
	"github.com/computerscienceiscool/wa-agent/internal/parser"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Parse the instructions file and print the step plan",
	Long:  "Parses the instructions file and prints the resulting step plan without sending anything. Needs no credentials and makes no network calls.",
	RunE:  runCheck,
}

func init() {
	// Add subcommands to root
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg := &config.Config{InstructionsFile: viper.GetString("instructions")}
	if err := cfg.ValidateSource(); err != nil {
		return err
	}

	text, err := os.ReadFile(cfg.InstructionsFile)
	if err != nil {
		return fmt.Errorf("cannot read instructions file: %w", err)
	}

	p := parser.NewInstructionParser()
	steps := p.Parse(string(text), parser.FormatForPath(cfg.InstructionsFile))
	if len(steps) == 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrNoSteps, cfg.InstructionsFile)
	}

	out := cmd.OutOrStdout()
	mode := "paragraph"
	if p.HasDirectives(string(text)) {
		mode = "directive"
	}
	fmt.Fprintf(out, "Mode: %s\n", mode)
	for i, step := range steps {
		switch step.Kind {
		case parser.StepSend:
			fmt.Fprintf(out, "%3d  SEND  %s\n", i+1, step.Text)
		case parser.StepWait:
			fmt.Fprintf(out, "%3d  WAIT  %gs\n", i+1, step.Seconds)
		}
	}
	fmt.Fprintf(out, "\n%d steps (%d sends, %d waits)\n", len(steps), steps.Sends(), steps.Waits())
	return nil
}
