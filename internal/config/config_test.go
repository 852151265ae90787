package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/computerscienceiscool/wa-agent/internal/errors"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNormalizeRecipient(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "plain", input: "+14155552671", want: "14155552671"},
		{name: "formatted", input: "+1 (415) 555-2671", want: "14155552671"},
		{name: "with dashes", input: "+44-20-7946-0958", want: "442079460958"},
		{name: "missing plus", input: "14155552671", wantErr: true},
		{name: "too short", input: "+1234567", wantErr: true},
		{name: "too long", input: "+1234567890123456", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeRecipient(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, apperrors.ErrBadRecipient))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidate_DryRunNeedsNoCredentials(t *testing.T) {
	cfg := &Config{
		InstructionsFile: writeTempFile(t, "steps.txt", "SEND: hi"),
		Recipient:        "+14155552671",
		DryRun:           true,
		DelaySeconds:     1,
		TimeoutSeconds:   30,
	}

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "14155552671", cfg.Recipient, "recipient should be normalized in place")
}

func TestValidate_MissingCredentials(t *testing.T) {
	cfg := &Config{
		InstructionsFile: writeTempFile(t, "steps.txt", "SEND: hi"),
		Recipient:        "+14155552671",
		DelaySeconds:     1,
		TimeoutSeconds:   30,
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrMissingCredential))

	var cfgErr *apperrors.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "token", cfgErr.Field)

	cfg.Token = "tok"
	err = cfg.Validate()
	require.Error(t, err)
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "phone-number-id", cfgErr.Field)

	cfg.PhoneNumberID = "12345"
	require.NoError(t, cfg.Validate())
}

func TestValidateSource(t *testing.T) {
	t.Run("missing path", func(t *testing.T) {
		cfg := &Config{}
		require.Error(t, cfg.ValidateSource())
	})

	t.Run("file not found", func(t *testing.T) {
		cfg := &Config{InstructionsFile: filepath.Join(t.TempDir(), "nope.txt")}
		err := cfg.ValidateSource()
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrFileNotFound))
	})

	t.Run("unsupported extension", func(t *testing.T) {
		cfg := &Config{InstructionsFile: writeTempFile(t, "steps.pdf", "x")}
		err := cfg.ValidateSource()
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrUnsupportedFile))
	})

	t.Run("markdown accepted", func(t *testing.T) {
		cfg := &Config{InstructionsFile: writeTempFile(t, "steps.md", "x")}
		require.NoError(t, cfg.ValidateSource())
	})
}

func TestValidate_NegativeDelay(t *testing.T) {
	cfg := &Config{
		InstructionsFile: writeTempFile(t, "steps.txt", "SEND: hi"),
		Recipient:        "+14155552671",
		DryRun:           true,
		DelaySeconds:     -1,
		TimeoutSeconds:   30,
	}

	require.Error(t, cfg.Validate())
}
