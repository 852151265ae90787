package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	apperrors "github.com/computerscienceiscool/wa-agent/internal/errors"
)

// Config holds everything one run needs, resolved from flags, environment
// variables, and the optional dotenv file. The core never reads the
// environment directly; the resolved values travel in this struct.
type Config struct {
	InstructionsFile string
	Recipient        string
	DryRun           bool
	DelaySeconds     float64
	TimeoutSeconds   int
	DotenvFile       string
	JSONOutput       bool
	Verbose          bool

	// Cloud API credentials
	Token         string
	PhoneNumberID string
	APIVersion    string
}

var nonDigitPattern = regexp.MustCompile(`\D`)

// NormalizeRecipient converts a human-entered phone number into the bare
// digit form the Cloud API expects. The input must carry a leading + and
// country code.
func NormalizeRecipient(phone string) (string, error) {
	if !strings.HasPrefix(strings.TrimSpace(phone), "+") {
		return "", fmt.Errorf("%w: number must include a leading + and country code, e.g. +14155552671", apperrors.ErrBadRecipient)
	}
	digits := nonDigitPattern.ReplaceAllString(phone, "")
	if len(digits) < 8 || len(digits) > 15 {
		return "", fmt.Errorf("%w: expected 8-15 digits, got %d", apperrors.ErrBadRecipient, len(digits))
	}
	return digits, nil
}

// ValidateSource checks that the instructions file exists and has a
// supported extension.
func (c *Config) ValidateSource() error {
	if c.InstructionsFile == "" {
		return &apperrors.ConfigError{Field: "instructions", Err: fmt.Errorf("missing instructions file path")}
	}
	if _, err := os.Stat(c.InstructionsFile); err != nil {
		return &apperrors.ConfigError{Field: "instructions", Err: fmt.Errorf("%w: %s", apperrors.ErrFileNotFound, c.InstructionsFile)}
	}
	switch strings.ToLower(filepath.Ext(c.InstructionsFile)) {
	case ".txt", ".md":
	default:
		return &apperrors.ConfigError{Field: "instructions", Err: fmt.Errorf("%w: only .txt and .md instruction files are supported", apperrors.ErrUnsupportedFile)}
	}
	return nil
}

// Validate checks the full run configuration and normalizes the recipient in
// place. Credentials are only required outside dry-run; a preview must work
// without any environment setup.
func (c *Config) Validate() error {
	if err := c.ValidateSource(); err != nil {
		return err
	}

	if c.Recipient == "" {
		return &apperrors.ConfigError{Field: "to", Err: fmt.Errorf("missing recipient phone number")}
	}
	digits, err := NormalizeRecipient(c.Recipient)
	if err != nil {
		return &apperrors.ConfigError{Field: "to", Err: err}
	}
	c.Recipient = digits

	if c.DelaySeconds < 0 {
		return &apperrors.ConfigError{Field: "delay-seconds", Err: fmt.Errorf("must be non-negative")}
	}
	if c.TimeoutSeconds <= 0 {
		return &apperrors.ConfigError{Field: "timeout-seconds", Err: fmt.Errorf("must be positive")}
	}

	if !c.DryRun {
		if c.Token == "" {
			return &apperrors.ConfigError{Field: "token", Err: fmt.Errorf("%w: WHATSAPP_TOKEN", apperrors.ErrMissingCredential)}
		}
		if c.PhoneNumberID == "" {
			return &apperrors.ConfigError{Field: "phone-number-id", Err: fmt.Errorf("%w: WHATSAPP_PHONE_NUMBER_ID", apperrors.ErrMissingCredential)}
		}
	}
	return nil
}
