package formation

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is matched by every ConfigError via errors.Is.
var ErrInvalidConfig = errors.New("formation: invalid configuration")

// ConfigError reports a setup parameter that cannot produce a working formation.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("formation: invalid %s: %s", e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

func configErrorf(field, format string, args ...any) *ConfigError {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
