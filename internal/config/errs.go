package config

import "fmt"

// MissingConfigError reports a required environment key with no value.
type MissingConfigError struct {
	Key string
}

func (e *MissingConfigError) Error() string {
	return fmt.Sprintf("required configuration key %s is not set", e.Key)
}

func NewMissingConfigError(key string) *MissingConfigError {
	return &MissingConfigError{Key: key}
}

// InvalidConfigError reports a key whose value fails type coercion, format
// parsing, or a cross-field constraint.
type InvalidConfigError struct {
	Key    string
	Reason string
	Err    error
}

func (e *InvalidConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid configuration key %s: %s: %v", e.Key, e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid configuration key %s: %s", e.Key, e.Reason)
}

func (e *InvalidConfigError) Unwrap() error {
	return e.Err
}

func NewInvalidConfigError(key string, reason string, err error) *InvalidConfigError {
	return &InvalidConfigError{Key: key, Reason: reason, Err: err}
}
