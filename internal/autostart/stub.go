//go:build !linux

package autostart

import (
	"errors"
	"fmt"
)

// Enabled reports false on non-Linux platforms.
// Autostart entries are only managed on Linux via XDG.
func Enabled() bool {
	return false
}

// SetEnabled is unsupported on non-Linux platforms.
func SetEnabled(_ bool) error {
	return fmt.Errorf("autostart: %w", errors.ErrUnsupported)
}
