package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotenv(t *testing.T) {
	path := writeTempFile(t, ".env", "WHATSAPP_TOKEN=file-token\nWHATSAPP_PHONE_NUMBER_ID=98765\n")

	// Register cleanup, then clear so the file values are visible.
	t.Setenv("WHATSAPP_TOKEN", "")
	t.Setenv("WHATSAPP_PHONE_NUMBER_ID", "")
	os.Unsetenv("WHATSAPP_TOKEN")
	os.Unsetenv("WHATSAPP_PHONE_NUMBER_ID")

	require.NoError(t, LoadDotenv(path))

	assert.Equal(t, "file-token", os.Getenv("WHATSAPP_TOKEN"))
	assert.Equal(t, "98765", os.Getenv("WHATSAPP_PHONE_NUMBER_ID"))
}

func TestLoadDotenv_EnvironmentWins(t *testing.T) {
	path := writeTempFile(t, ".env", "WHATSAPP_TOKEN=file-token\n")

	t.Setenv("WHATSAPP_TOKEN", "env-token")

	require.NoError(t, LoadDotenv(path))

	assert.Equal(t, "env-token", os.Getenv("WHATSAPP_TOKEN"))
}

func TestLoadDotenv_MissingFileIsFine(t *testing.T) {
	require.NoError(t, LoadDotenv(filepath.Join(t.TempDir(), "absent.env")))
	require.NoError(t, LoadDotenv(""))
}
