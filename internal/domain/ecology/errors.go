package ecology

import (
	"errors"
	"fmt"
	"strings"

	"ecosim/internal/domain/world"
)

var (
	ErrConfiguration = errors.New("invalid world configuration")
	ErrOutOfBounds   = errors.New("coordinate outside grid")
)

// ConfigError describes why a map, legend or policy was rejected. Row and
// Column are -1 when the problem is not tied to a map cell.
type ConfigError struct {
	Reason string
	Row    int
	Column int
}

func (e *ConfigError) Error() string {
	var b strings.Builder
	b.WriteString(ErrConfiguration.Error())
	b.WriteString(": ")
	if e.Row >= 0 {
		fmt.Fprintf(&b, "row %d: ", e.Row)
	}
	if e.Column >= 0 {
		fmt.Fprintf(&b, "column %d: ", e.Column)
	}
	b.WriteString(e.Reason)
	return b.String()
}

func (e *ConfigError) Unwrap() error {
	return ErrConfiguration
}

func configErr(format string, args ...any) *ConfigError {
	return &ConfigError{Reason: fmt.Sprintf(format, args...), Row: -1, Column: -1}
}

func configErrAt(row, col int, format string, args ...any) *ConfigError {
	return &ConfigError{Reason: fmt.Sprintf(format, args...), Row: row, Column: col}
}

// OutOfBoundsError is the panic value raised by Grid when a caller skips the
// Inside check.
type OutOfBoundsError struct {
	At     world.Point
	Width  int
	Height int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("%s: %s not within %dx%d", ErrOutOfBounds, e.At, e.Width, e.Height)
}

func (e *OutOfBoundsError) Unwrap() error {
	return ErrOutOfBounds
}
