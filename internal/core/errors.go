package core

import "fmt"

// ConfigError indicates configuration from which no valid assignment can be
// produced: an empty roster, an eligible pool emptied by exclusions, an
// empty task catalog, or a malformed schedule. A ConfigError always aborts
// the run before any history mutation.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "invalid configuration: " + e.Reason
}

func configErrorf(format string, args ...any) *ConfigError {
	return &ConfigError{Reason: fmt.Sprintf(format, args...)}
}
