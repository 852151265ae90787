package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigError(t *testing.T) {
	wrapped := fmt.Errorf("%w: WHATSAPP_TOKEN", ErrMissingCredential)
	err := &ConfigError{Field: "token", Err: wrapped}

	assert.Contains(t, err.Error(), "token")
	assert.Contains(t, err.Error(), "WHATSAPP_TOKEN")
	assert.True(t, errors.Is(err, ErrMissingCredential))
}

func TestSendError(t *testing.T) {
	cause := fmt.Errorf("HTTP 500")
	err := &SendError{StepIndex: 2, Recipient: "14155552671", Err: cause}

	assert.Contains(t, err.Error(), "step 2")
	assert.Contains(t, err.Error(), "14155552671")
	assert.True(t, errors.Is(err, cause))
}
