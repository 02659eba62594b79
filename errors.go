package orientschema

import (
	"errors"
	"fmt"
	"strings"
)

// Standard sentinel errors for schema compilation.
var (
	// ErrUnsupported is returned when a command or modifier has no
	// equivalent in the target dialect.
	ErrUnsupported = errors.New("orientschema: unsupported in this dialect")

	// ErrInvalidBlueprint is returned when a blueprint violates the caller
	// contract (empty class name, unknown type tag, malformed command).
	ErrInvalidBlueprint = errors.New("orientschema: invalid blueprint")

	// ErrInvalidConfig is returned when a grammar option is rejected.
	ErrInvalidConfig = errors.New("orientschema: invalid configuration")
)

// UnsupportedError reports a command or modifier the dialect cannot express.
type UnsupportedError struct {
	Dialect string // Target dialect name
	Kind    string // "command" or "modifier"
	Name    string // Command kind or modifier name
}

// Error returns the error string.
func (e *UnsupportedError) Error() string {
	if e.Dialect != "" {
		return fmt.Sprintf("orientschema: %s %q is not supported by the %s dialect", e.Kind, e.Name, e.Dialect)
	}
	return fmt.Sprintf("orientschema: %s %q is not supported", e.Kind, e.Name)
}

// Is reports whether the target error matches UnsupportedError.
// This allows errors.Is(unsupportedErr, ErrUnsupported) to return true.
func (e *UnsupportedError) Is(err error) bool {
	return err == ErrUnsupported
}

// NewUnsupportedCommand returns an UnsupportedError for a command kind.
func NewUnsupportedCommand(dialect, name string) *UnsupportedError {
	return &UnsupportedError{Dialect: dialect, Kind: "command", Name: name}
}

// NewUnsupportedModifier returns an UnsupportedError for a column modifier.
func NewUnsupportedModifier(dialect, name string) *UnsupportedError {
	return &UnsupportedError{Dialect: dialect, Kind: "modifier", Name: name}
}

// IsUnsupported returns true if the error is an UnsupportedError.
func IsUnsupported(err error) bool {
	if err == nil {
		return false
	}
	var e *UnsupportedError
	return errors.As(err, &e) || errors.Is(err, ErrUnsupported)
}

// ValidationError represents a malformed blueprint, class or column.
type ValidationError struct {
	Class   string // Class name, if known
	Column  string // Column name (if applicable)
	Message string
}

// Error returns the error string.
func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("orientschema: invalid blueprint")
	switch {
	case e.Class != "" && e.Column != "":
		b.WriteString(" ")
		b.WriteString(e.Class)
		b.WriteString(".")
		b.WriteString(e.Column)
	case e.Class != "":
		b.WriteString(" ")
		b.WriteString(e.Class)
	case e.Column != "":
		b.WriteString(" column ")
		b.WriteString(e.Column)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// Is reports whether the target matches ErrInvalidBlueprint.
func (e *ValidationError) Is(err error) bool {
	return err == ErrInvalidBlueprint
}

// NewValidationError returns a new ValidationError.
func NewValidationError(class, column, message string) *ValidationError {
	return &ValidationError{Class: class, Column: column, Message: message}
}

// IsValidationError returns true if the error is a ValidationError.
func IsValidationError(err error) bool {
	if err == nil {
		return false
	}
	var e *ValidationError
	return errors.As(err, &e)
}

// ConfigError represents a rejected grammar option.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("orientschema: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("orientschema: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches ErrInvalidConfig.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{Option: option, Value: value, Message: message}
}

// IsConfigError returns true if the error is a ConfigError.
func IsConfigError(err error) bool {
	if err == nil {
		return false
	}
	var e *ConfigError
	return errors.As(err, &e)
}

// AggregateError represents multiple errors collected during validation.
type AggregateError struct {
	Errors []error
}

// Error returns the error string.
func (e *AggregateError) Error() string {
	if len(e.Errors) == 0 {
		return "orientschema: no errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	var sb strings.Builder
	sb.WriteString("orientschema: multiple errors:")
	for i, err := range e.Errors {
		fmt.Fprintf(&sb, "\n  [%d] %v", i+1, err)
	}
	return sb.String()
}

// Unwrap returns the collected errors so errors.Is and errors.As
// inspect each of them.
func (e *AggregateError) Unwrap() []error {
	return e.Errors
}

// NewAggregateError returns a new AggregateError if there are errors,
// otherwise returns nil.
func NewAggregateError(errs ...error) error {
	var filtered []error
	for _, err := range errs {
		if err != nil {
			filtered = append(filtered, err)
		}
	}
	if len(filtered) == 0 {
		return nil
	}
	if len(filtered) == 1 {
		return filtered[0]
	}
	return &AggregateError{Errors: filtered}
}
