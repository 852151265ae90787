package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/computerscienceiscool/wa-agent/internal/config"
)

// initConfig loads the dotenv file so AutomaticEnv sees its values.
func initConfig() {
	if err := config.LoadDotenv(viper.GetString("dotenv")); err != nil {
		fmt.Printf("Error reading dotenv file: %v\n", err)
	}
}

// buildConfig constructs a config.Config from Viper values and validates it.
func buildConfig() (*config.Config, error) {
	cfg := &config.Config{
		InstructionsFile: viper.GetString("instructions"),
		Recipient:        viper.GetString("to"),
		DryRun:           viper.GetBool("dry-run"),
		DelaySeconds:     viper.GetFloat64("delay-seconds"),
		TimeoutSeconds:   viper.GetInt("timeout-seconds"),
		DotenvFile:       viper.GetString("dotenv"),
		JSONOutput:       viper.GetBool("json"),
		Verbose:          viper.GetBool("verbose"),
		Token:            strings.TrimSpace(viper.GetString("token")),
		PhoneNumberID:    strings.TrimSpace(viper.GetString("phone-number-id")),
		APIVersion:       strings.TrimSpace(viper.GetString("api-version")),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger returns the diagnostic logger for the run. Without --verbose all
// diagnostics are dropped; step progress still goes to stdout.
func newLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
