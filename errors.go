package slogtint

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArguments is returned by a wrapped EmitFunc that received no record.
	ErrInvalidArguments = errors.New("invalid arguments")
	// ErrConfiguration is matched by every *ConfigurationError.
	ErrConfiguration = errors.New("configuration error")
)

// ConfigurationError reports a profile or config entry that cannot be used.
type ConfigurationError struct {
	Key   string
	Value string
	Err   error
}

func (e *ConfigurationError) Error() string {
	msg := "slogtint: " + ErrConfiguration.Error()
	if e.Key != "" {
		msg += fmt.Sprintf(" at %q", e.Key)
	}
	if e.Value != "" {
		msg += fmt.Sprintf(" (value %q)", e.Value)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

func configErrorf(key, value, format string, a ...any) *ConfigurationError {
	return &ConfigurationError{Key: key, Value: value, Err: fmt.Errorf(format, a...)}
}
