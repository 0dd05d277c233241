// Package errors provides the error types shared by all estimators in the
// library.
//
// The types follow Go 1.13+ error conventions: every constructor returns an
// error that supports errors.Is / errors.As, and ModelError wraps an
// underlying cause. Stack traces are captured via cockroachdb/errors, so
// logging an error with %+v prints the full trace.
package errors

import (
	"fmt"

	cockroachErrors "github.com/cockroachdb/errors"
)

// Sentinel errors for common failure conditions. Compare with errors.Is.
var (
	// ErrEmptyData indicates that an operation received no data.
	ErrEmptyData = cockroachErrors.New("empty data")

	// ErrNotFitted indicates usage of a model before training.
	ErrNotFitted = cockroachErrors.New("model is not fitted")

	// ErrNotImplemented indicates a documented unsupported code path.
	ErrNotImplemented = cockroachErrors.New("not implemented")
)

// ValueError indicates an invalid parameter or input value.
type ValueError struct {
	Op      string // operation that rejected the value
	Message string
}

// NewValueError creates a ValueError for the given operation.
func NewValueError(op, message string) *ValueError {
	return &ValueError{Op: op, Message: message}
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// DimensionError indicates mismatched input dimensions.
type DimensionError struct {
	Op       string // operation that detected the mismatch
	Expected int
	Got      int
	Axis     int // axis along which the mismatch occurred (0 = rows)
}

// NewDimensionError creates a DimensionError for the given operation.
func NewDimensionError(op string, expected, got, axis int) *DimensionError {
	return &DimensionError{Op: op, Expected: expected, Got: got, Axis: axis}
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s: dimension mismatch on axis %d: expected %d, got %d",
		e.Op, e.Axis, e.Expected, e.Got)
}

// NotFittedError indicates that a model method requiring training was
// called before Fit.
type NotFittedError struct {
	ModelName string
	Method    string
}

// NewNotFittedError creates a NotFittedError for a model/method pair.
func NewNotFittedError(modelName, method string) *NotFittedError {
	return &NotFittedError{ModelName: modelName, Method: method}
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("%s.%s: model is not fitted; call Fit first",
		e.ModelName, e.Method)
}

// Is reports a match against the ErrNotFitted sentinel.
func (e *NotFittedError) Is(target error) bool {
	return target == ErrNotFitted
}

// NotImplementedError indicates a code path that is intentionally
// unsupported, as opposed to one that failed.
type NotImplementedError struct {
	Op     string
	Reason string
}

// NewNotImplementedError creates a NotImplementedError for the operation.
func NewNotImplementedError(op, reason string) *NotImplementedError {
	return &NotImplementedError{Op: op, Reason: reason}
}

func (e *NotImplementedError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s: not implemented", e.Op)
	}
	return fmt.Sprintf("%s: not implemented: %s", e.Op, e.Reason)
}

// Is reports a match against the ErrNotImplemented sentinel.
func (e *NotImplementedError) Is(target error) bool {
	return target == ErrNotImplemented
}

// ModelError wraps a lower-level failure with the operation that was in
// progress when it occurred.
type ModelError struct {
	Op      string
	Message string
	Err     error // underlying cause, may be nil
}

// NewModelError creates a ModelError wrapping cause.
func NewModelError(op, message string, cause error) *ModelError {
	return &ModelError{Op: op, Message: message, Err: cause}
}

func (e *ModelError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ModelError) Unwrap() error {
	return e.Err
}

// Recover converts a panic in the surrounding function into an error,
// preserving the panic value and capturing a stack trace. Use as:
//
//	func (m *Model) Fit(X, y mat.Matrix) (err error) {
//	    defer errors.Recover(&err, "Model.Fit")
//	    ...
//	}
func Recover(err *error, op string) {
	if r := recover(); r != nil {
		if perr, ok := r.(error); ok {
			*err = cockroachErrors.Wrapf(perr, "%s: panic during operation", op)
			return
		}
		*err = cockroachErrors.Newf("%s: panic during operation: %v", op, r)
	}
}
