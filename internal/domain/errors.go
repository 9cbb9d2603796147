package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrInvalidCategory     = errors.New("invalid category")
	ErrUnsupportedCategory = errors.New("unsupported category")
	ErrUnknownUnit         = errors.New("unknown unit")
	ErrInvalidValue        = errors.New("invalid value")
	ErrNotFound            = errors.New("not found")
	ErrInvalidConfig       = errors.New("invalid config")
	ErrExecution           = errors.New("execution error")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindInvalidCategory     ErrorKind = "invalid_category"
	KindUnsupportedCategory ErrorKind = "unsupported_category"
	KindUnknownUnit         ErrorKind = "unknown_unit"
	KindInvalidValue        ErrorKind = "invalid_value"
	KindNotFound            ErrorKind = "not_found"
	KindInvalidConfig       ErrorKind = "invalid_config"
	KindExecution           ErrorKind = "execution"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// InvalidCategoryError reports a category name outside the declared set.
func InvalidCategoryError(op, name string) error {
	return &OpError{
		Op:   op,
		Kind: KindInvalidCategory,
		Err:  fmt.Errorf("%q: %w", name, ErrInvalidCategory),
	}
}

// UnsupportedCategoryError reports a declared category that has no unit data.
func UnsupportedCategoryError(op string, c Category) error {
	return &OpError{
		Op:   op,
		Kind: KindUnsupportedCategory,
		Err:  fmt.Errorf("%s: %w", c, ErrUnsupportedCategory),
	}
}

// UnknownUnitError reports a unit name that is not part of the category's unit list.
func UnknownUnitError(op string, c Category, unit string) error {
	return &OpError{
		Op:   op,
		Kind: KindUnknownUnit,
		Err:  fmt.Errorf("%q is not a %s unit: %w", unit, c, ErrUnknownUnit),
	}
}
