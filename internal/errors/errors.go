// Package errors provides centralized error definitions and error handling utilities
// for pitwall. It defines domain-specific errors, semantic error types,
// error constructors with context wrapping, and error classification helpers.
//
// # Error Types
//
// Domain-specific errors represent errors from specific subsystems:
//   - LoadError: a dashboard slice failed to load (the LoadFailure state)
//   - SourceError: a data source failed to produce a payload
//
// Semantic errors represent common error conditions:
//   - ValidationError: invalid input or payload
//   - TimeoutError: operation timed out
//
// # Usage
//
//	err := errors.NewSourceError("request failed", cause).WithEndpoint("/api/telemetry_data")
//	loadErr := errors.NewLoadError("telemetry", err)
//
//	if errors.Is(loadErr, errors.ErrSourceUnavailable) { ... }
//
//	var le *errors.LoadError
//	if errors.As(err, &le) { ... }
//
//	if errors.IsRetryable(err) { ... }
package errors

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Severity represents the severity level of an error.
type Severity int

const (
	// SeverityDebug is for errors that are useful for debugging but not critical.
	SeverityDebug Severity = iota
	// SeverityInfo is for informational errors that don't indicate a problem.
	SeverityInfo
	// SeverityWarning is for errors that might indicate a problem but aren't critical.
	SeverityWarning
	// SeverityError is for errors that indicate a real problem.
	SeverityError
	// SeverityCritical is for errors that require immediate attention.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// -----------------------------------------------------------------------------
// Sentinel Errors
// -----------------------------------------------------------------------------

// Load-related sentinel errors
var (
	// ErrLoadFailed indicates that a dashboard slice could not be loaded.
	ErrLoadFailed = New("load failed")
	// ErrInvalidPayload indicates that a source returned data that failed validation.
	ErrInvalidPayload = New("invalid payload")
	// ErrSourceUnavailable indicates that the data source could not be reached.
	ErrSourceUnavailable = New("data source unavailable")
)

// General sentinel errors
var (
	// ErrTimeout indicates that an operation timed out.
	ErrTimeout = New("operation timed out")
	// ErrCanceled indicates that an operation was canceled.
	ErrCanceled = New("operation canceled")
	// ErrInvalidInput indicates that input validation failed.
	ErrInvalidInput = New("invalid input")
)

// -----------------------------------------------------------------------------
// Base Error Interface
// -----------------------------------------------------------------------------

// PitwallError is the base interface for all pitwall errors.
type PitwallError interface {
	error

	// Unwrap returns the underlying error, if any.
	Unwrap() error

	// Is reports whether this error matches the target error.
	Is(target error) bool

	// Severity returns the severity level of this error.
	Severity() Severity

	// IsRetryable returns true if the error is transient and the operation
	// may succeed on retry.
	IsRetryable() bool

	// IsUserFacing returns true if the error message is safe to display
	// to end users.
	IsUserFacing() bool
}

// -----------------------------------------------------------------------------
// Base Error Implementation
// -----------------------------------------------------------------------------

type baseError struct {
	message    string
	cause      error
	severity   Severity
	retryable  bool
	userFacing bool
}

func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

func (e *baseError) Unwrap() error {
	return e.cause
}

func (e *baseError) Is(target error) bool {
	if e.cause != nil {
		return errors.Is(e.cause, target)
	}
	return false
}

func (e *baseError) Severity() Severity {
	return e.severity
}

func (e *baseError) IsRetryable() bool {
	return e.retryable
}

func (e *baseError) IsUserFacing() bool {
	return e.userFacing
}

// -----------------------------------------------------------------------------
// Domain-Specific Errors
// -----------------------------------------------------------------------------

// LoadError is the LoadFailure(slice, cause) state of a dashboard slice.
// Retryability, severity and user-facing status are inherited from the
// cause: transport failures and timeouts can be retried, invalid payloads
// cannot, and a cause from outside this package is never shown verbatim.
//
// Example:
//
//	err := errors.NewLoadError("aerodynamic", cause)
//	fmt.Println(err) // "load error [slice=aerodynamic]: load failed: <cause>"
type LoadError struct {
	baseError
	Slice string
}

// NewLoadError creates a new LoadError for the named slice.
func NewLoadError(slice string, cause error) *LoadError {
	return &LoadError{
		baseError: baseError{
			message:    ErrLoadFailed.Error(),
			cause:      cause,
			severity:   loadSeverity(cause),
			retryable:  !Is(cause, ErrInvalidPayload),
			userFacing: cause == nil || IsUserFacing(cause),
		},
		Slice: slice,
	}
}

func loadSeverity(cause error) Severity {
	if cause == nil {
		return SeverityError
	}
	return GetSeverity(cause)
}

// Error returns the formatted error message.
func (e *LoadError) Error() string {
	prefix := "load error"
	if e.Slice != "" {
		prefix = fmt.Sprintf("load error [slice=%s]", e.Slice)
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *LoadError) Is(target error) bool {
	if _, ok := target.(*LoadError); ok {
		return true
	}
	if target == ErrLoadFailed {
		return true
	}
	return e.baseError.Is(target)
}

// SourceError represents a failure inside a data source.
//
// Example:
//
//	err := errors.NewSourceError("unexpected status", nil).
//		WithSource("http").WithEndpoint("/api/aerodynamic_data").WithStatusCode(503)
type SourceError struct {
	baseError
	Source     string
	Endpoint   string
	StatusCode int
}

// NewSourceError creates a new SourceError. Source errors are retryable by
// default since they usually come from the transport.
func NewSourceError(message string, cause error) *SourceError {
	return &SourceError{
		baseError: baseError{
			message:    message,
			cause:      cause,
			severity:   SeverityError,
			retryable:  true,
			userFacing: true,
		},
	}
}

// WithSource sets the source kind (simulated, file, http).
func (e *SourceError) WithSource(kind string) *SourceError {
	e.Source = kind
	return e
}

// WithEndpoint sets the endpoint or path the source was reading.
func (e *SourceError) WithEndpoint(endpoint string) *SourceError {
	e.Endpoint = endpoint
	return e
}

// WithStatusCode records an HTTP status code.
func (e *SourceError) WithStatusCode(code int) *SourceError {
	e.StatusCode = code
	return e
}

// WithRetryable sets whether the error is retryable.
func (e *SourceError) WithRetryable(r bool) *SourceError {
	e.retryable = r
	return e
}

// Error returns the formatted error message.
func (e *SourceError) Error() string {
	var parts []string
	if e.Source != "" {
		parts = append(parts, fmt.Sprintf("source=%s", e.Source))
	}
	if e.Endpoint != "" {
		parts = append(parts, fmt.Sprintf("endpoint=%s", e.Endpoint))
	}
	if e.StatusCode != 0 {
		parts = append(parts, fmt.Sprintf("status=%d", e.StatusCode))
	}

	prefix := "source error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("source error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *SourceError) Is(target error) bool {
	if _, ok := target.(*SourceError); ok {
		return true
	}
	if target == ErrSourceUnavailable {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Semantic Errors
// -----------------------------------------------------------------------------

// ValidationError represents invalid input or an invalid payload.
//
// Example:
//
//	err := errors.NewValidationError("duplicate event id").WithField("events[1].id").WithValue(2)
type ValidationError struct {
	baseError
	Field string
	Value any
}

// NewValidationError creates a new ValidationError.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		baseError: baseError{
			message:    message,
			severity:   SeverityWarning,
			retryable:  false,
			userFacing: true,
		},
	}
}

// WithField adds a field name to the error context.
func (e *ValidationError) WithField(field string) *ValidationError {
	e.Field = field
	return e
}

// WithValue adds the invalid value to the error context.
func (e *ValidationError) WithValue(value any) *ValidationError {
	e.Value = value
	return e
}

// WithCause adds a cause to the error.
func (e *ValidationError) WithCause(cause error) *ValidationError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *ValidationError) Error() string {
	var parts []string
	if e.Field != "" {
		parts = append(parts, fmt.Sprintf("field=%s", e.Field))
	}
	if e.Value != nil {
		parts = append(parts, fmt.Sprintf("value=%v", e.Value))
	}

	prefix := "validation error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("validation error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *ValidationError) Is(target error) bool {
	if _, ok := target.(*ValidationError); ok {
		return true
	}
	if target == ErrInvalidInput || target == ErrInvalidPayload {
		return true
	}
	return e.baseError.Is(target)
}

// TimeoutError represents an operation that timed out.
//
// Example:
//
//	err := errors.NewTimeoutError("GET /api/telemetry_data", 5*time.Second)
//	fmt.Println(err) // "timeout error: GET /api/telemetry_data (timeout: 5s)"
type TimeoutError struct {
	baseError
	Operation string
	Duration  time.Duration
}

// NewTimeoutError creates a new TimeoutError.
func NewTimeoutError(operation string, duration time.Duration) *TimeoutError {
	return &TimeoutError{
		baseError: baseError{
			message:    operation,
			severity:   SeverityWarning,
			retryable:  true,
			userFacing: true,
		},
		Operation: operation,
		Duration:  duration,
	}
}

// WithCause adds a cause to the error.
func (e *TimeoutError) WithCause(cause error) *TimeoutError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *TimeoutError) Error() string {
	base := fmt.Sprintf("timeout error: %s (timeout: %s)", e.Operation, e.Duration)
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", base, e.cause)
	}
	return base
}

// Is checks if this error matches the target.
func (e *TimeoutError) Is(target error) bool {
	if _, ok := target.(*TimeoutError); ok {
		return true
	}
	if target == ErrTimeout {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Error Classification Helpers
// -----------------------------------------------------------------------------

// IsRetryable returns true if the error represents a transient condition
// that may succeed on retry.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	var pitwallErr PitwallError
	if As(err, &pitwallErr) {
		return pitwallErr.IsRetryable()
	}

	return Is(err, ErrTimeout) || Is(err, context.DeadlineExceeded)
}

// IsUserFacing returns true if the error message is safe to display to end users.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}

	var pitwallErr PitwallError
	if As(err, &pitwallErr) {
		return pitwallErr.IsUserFacing()
	}
	return false
}

// GetSeverity returns the severity level of the error.
// Returns SeverityError for errors that don't implement PitwallError.
func GetSeverity(err error) Severity {
	if err == nil {
		return SeverityDebug
	}

	var pitwallErr PitwallError
	if As(err, &pitwallErr) {
		return pitwallErr.Severity()
	}

	return SeverityError
}

// IsCanceled reports whether err stems from a canceled context or an
// explicit cancellation. Canceled loads are discarded, not failed.
func IsCanceled(err error) bool {
	return err != nil && (Is(err, context.Canceled) || Is(err, ErrCanceled))
}

// -----------------------------------------------------------------------------
// Convenience Constructors
// -----------------------------------------------------------------------------

// Wrap wraps an error with additional context message.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted context message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
