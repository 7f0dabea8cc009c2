// Package errors provides a categorized error type (SvurlError) used at the
// boundary between the set store and the CLI for reporting and exit codes.
package errors

import (
	stdErrors "errors"
	"fmt"
)

// ErrorCategory classifies an SvurlError.
type ErrorCategory string

const (
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"
	CategoryRange      ErrorCategory = "range"
	CategoryState      ErrorCategory = "state"
	CategoryFileSystem ErrorCategory = "filesystem"
	CategoryExternal   ErrorCategory = "external"
	CategoryInternal   ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops execution
	SeverityError   ErrorSeverity = "error"   // Operation aborted
	SeverityWarning ErrorSeverity = "warning" // Reported, no state changed
)

// ContextFields carries structured context for SvurlError
type ContextFields map[string]any

// SvurlError is a structured error with category, severity and context
type SvurlError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

func (e *SvurlError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

func (e *SvurlError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *SvurlError) WithContext(key string, value any) *SvurlError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

func New(category ErrorCategory, severity ErrorSeverity, message string) *SvurlError {
	return &SvurlError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *SvurlError {
	return &SvurlError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

// As finds the first SvurlError in err's chain.
func As(err error) (*SvurlError, bool) {
	var se *SvurlError
	if stdErrors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// IsCategory checks if an error belongs to a specific category
func IsCategory(err error, category ErrorCategory) bool {
	if se, ok := As(err); ok {
		return se.Category == category
	}
	return false
}

// GetCategory extracts the category from an error, or returns CategoryInternal if not an SvurlError
func GetCategory(err error) ErrorCategory {
	if se, ok := As(err); ok {
		return se.Category
	}
	return CategoryInternal
}

// IsFatal reports whether err must stop the process.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	if se, ok := As(err); ok {
		return se.Severity == SeverityFatal
	}
	return true
}
