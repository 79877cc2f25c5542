// Package errdefs provides useful error types such as 'MultiError'.
package errdefs

import (
	"fmt"
	"strings"
)

// MultiError aggregates multiple errors into a single error value.
//
// The zero value of MultiError is ready for use.
//
// NOTE: MultiError is not safe for concurrent use and needs to be wrapped in a lock to be shared safely between
// threads.
type MultiError struct {
	errs []error

	// Prefix will be printed before the errors in this MultiError.
	Prefix string
	// Separator will separate the errors in this MultiError.
	// If omitted, defaults to "; ".
	Separator string
	// OutputCap limits the number of errors printed by 'Error', the remaining errors are summarized by a count. A value
	// of zero prints every error.
	OutputCap int
}

// Add adds a new error to this MultiError.
//
// NOTE: Adding another MultiError adds its errors rather than the MultiError itself, this also means that adding a
// MultiError to itself doesn't result in a loop when printing it.
func (m *MultiError) Add(err error) {
	if err == nil {
		return
	}

	if other, ok := err.(*MultiError); ok {
		m.errs = append(m.errs, other.Errors()...)
		return
	}

	m.errs = append(m.errs, err)
}

func (m *MultiError) Error() string {
	if len(m.errs) == 0 {
		return ""
	}

	errs := m.errs
	if m.OutputCap > 0 && len(errs) > m.OutputCap {
		errs = errs[:m.OutputCap]
	}

	errStr := strings.Builder{}

	if m.Prefix != "" {
		errStr.WriteString(m.Prefix)
	}

	sep := m.Separator
	if sep == "" {
		sep = "; "
	}

	for _, err := range errs[:len(errs)-1] {
		errStr.WriteString(err.Error())
		errStr.WriteString(sep)
	}

	errStr.WriteString(errs[len(errs)-1].Error())

	if omitted := len(m.errs) - len(errs); omitted > 0 {
		errStr.WriteString(sep)
		errStr.WriteString(fmt.Sprintf("and %d more", omitted))
	}

	return errStr.String()
}

// Errors returns the full list of errors accumulated by this MultiError, or nil if there are none.
//
// NOTE: Callers must not modify the returned slice.
func (m *MultiError) Errors() []error {
	return m.errs
}

// Unwrap returns the accumulated errors, allowing 'errors.Is' and 'errors.As' to inspect each of them.
func (m *MultiError) Unwrap() []error {
	return m.errs
}

// ErrOrNil returns this MultiError if it has at least one error, or nil otherwise.
// The intended use case is the following:
//
//	return foo, errs.ErrOrNil()
//
// instead of:
//
//	if len(errs.Errors()) > 0 {
//		return nil, errs
//	}
//
//	return foo, nil
func (m *MultiError) ErrOrNil() error {
	if len(m.errs) > 0 {
		return m
	}

	return nil
}
