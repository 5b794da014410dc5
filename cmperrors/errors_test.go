package cmperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectionError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("dial tcp: connection refused")
		err := &ConnectionError{
			Context:  Context{Operation: "connect", Component: "cwmp", Attempt: 2},
			Endpoint: "https://acs.example.com/cwmp",
			Severity: SeverityHigh,
			Cause:    cause,
		}
		assert.Equal(t, "connection error to https://acs.example.com/cwmp [cwmp.connect (attempt 2)]: dial tcp: connection refused", err.Error())
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &ConnectionError{}
		assert.Equal(t, "connection error", err.Error())
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &ConnectionError{Cause: cause}
		assert.Equal(t, cause, err.Unwrap())
	})

	t.Run("Is matches ErrConnection", func(t *testing.T) {
		err := &ConnectionError{}
		assert.True(t, errors.Is(err, ErrConnection))
		assert.False(t, errors.Is(err, ErrTimeout))
	})

	t.Run("As extracts ConnectionError", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", &ConnectionError{Endpoint: "acs:7547"})
		var connErr *ConnectionError
		require.True(t, errors.As(err, &connErr))
		assert.Equal(t, "acs:7547", connErr.Endpoint)
	})

	t.Run("Retryable is true", func(t *testing.T) {
		err := &ConnectionError{}
		assert.True(t, IsRetryable(err))
	})
}

func TestAuthenticationError(t *testing.T) {
	t.Run("Error message with auth type", func(t *testing.T) {
		err := &AuthenticationError{AuthType: "digest"}
		assert.Equal(t, "authentication error (digest)", err.Error())
	})

	t.Run("Is matches ErrAuthentication", func(t *testing.T) {
		err := &AuthenticationError{}
		assert.True(t, errors.Is(err, ErrAuthentication))
	})

	t.Run("Retryable is false", func(t *testing.T) {
		err := &AuthenticationError{}
		assert.False(t, IsRetryable(err))
	})
}

func TestTimeoutError(t *testing.T) {
	t.Run("Error message with deadline", func(t *testing.T) {
		err := &TimeoutError{Deadline: "5s"}
		assert.Equal(t, "timeout error after 5s", err.Error())
	})

	t.Run("Is matches ErrTimeout", func(t *testing.T) {
		err := &TimeoutError{}
		assert.True(t, errors.Is(err, ErrTimeout))
	})

	t.Run("Retryable is true", func(t *testing.T) {
		err := &TimeoutError{}
		assert.True(t, IsRetryable(err))
	})
}

func TestProtocolError(t *testing.T) {
	t.Run("Retryable reflects Transient flag", func(t *testing.T) {
		assert.True(t, IsRetryable(&ProtocolError{Transient: true}))
		assert.False(t, IsRetryable(&ProtocolError{Transient: false}))
	})

	t.Run("Is matches ErrProtocol", func(t *testing.T) {
		err := &ProtocolError{}
		assert.True(t, errors.Is(err, ErrProtocol))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with path and field", func(t *testing.T) {
		err := &ValidationError{
			Path:    "Device.WiFi.Radio.1.Channel",
			Field:   "value",
		}
		assert.Equal(t, "validation error at Device.WiFi.Radio.1.Channel.value", err.Error())
	})

	t.Run("Is matches ErrValidation", func(t *testing.T) {
		err := &ValidationError{}
		assert.True(t, errors.Is(err, ErrValidation))
	})

	t.Run("Retryable is false", func(t *testing.T) {
		err := &ValidationError{}
		assert.False(t, IsRetryable(err))
	})
}

func TestConfigurationError(t *testing.T) {
	t.Run("Error message with option and value", func(t *testing.T) {
		err := &ConfigurationError{Option: "batch_size", Value: -1}
		assert.Equal(t, "configuration error for batch_size (value: -1)", err.Error())
	})

	t.Run("Is matches ErrConfiguration", func(t *testing.T) {
		err := &ConfigurationError{}
		assert.True(t, errors.Is(err, ErrConfiguration))
	})

	t.Run("Retryable is false", func(t *testing.T) {
		err := &ConfigurationError{}
		assert.False(t, IsRetryable(err))
	})
}

func TestIsRetryable_PlainError(t *testing.T) {
	assert.False(t, IsRetryable(errors.New("plain error")))
}

func TestSeverityString(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{SeverityLow, "low"},
		{SeverityMedium, "medium"},
		{SeverityHigh, "high"},
		{SeverityCritical, "critical"},
		{Severity(99), "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.severity.String())
	}
}
