// Copyright 2025 Abydos Authors.
// All rights reserved.

package dist

import "fmt"

// ConfigError describes an invalid distance configuration, e.g. a negative
// cost or an unknown layout or metric name. Constructors return it before
// any distance is computed.
type ConfigError struct{ msg string }

func (e *ConfigError) Error() string { return e.msg }

func configErrorf(format string, args ...interface{}) *ConfigError {
	return &ConfigError{fmt.Sprintf(format, args...)}
}

// UnsupportedRuneError is returned by Typo methods when a rune in either
// input cannot be located on the configured keyboard layout.
type UnsupportedRuneError struct {
	Rune   rune
	Layout string
}

func (e *UnsupportedRuneError) Error() string {
	return fmt.Sprintf("rune %q not on %s layout", e.Rune, e.Layout)
}
