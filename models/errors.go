package models

import (
	"errors"
	"fmt"
)

var (
	// ErrInput marks a source that cannot be read: missing, unreadable, or with a bad header.
	ErrInput = errors.New("input error")
	// ErrFormat marks a cell that cannot be converted to its typed value.
	ErrFormat = errors.New("format error")
)

// InputError reports a source that could not be loaded.
type InputError struct {
	Source string
	Column string // set when a required header column is missing
	Err    error
}

func (e *InputError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("%s: %s: missing column %q", ErrInput, e.Source, e.Column)
	}
	return fmt.Sprintf("%s: %s: %v", ErrInput, e.Source, e.Err)
}

func (e *InputError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInput}
	}
	return []error{ErrInput, e.Err}
}

// FormatError reports a cell that failed conversion during normalization.
type FormatError struct {
	Source string
	Line   int
	Column string
	Value  string
	Err    error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: %s line %d: column %q: cannot parse %q: %v",
		ErrFormat, e.Source, e.Line, e.Column, e.Value, e.Err)
}

func (e *FormatError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrFormat}
	}
	return []error{ErrFormat, e.Err}
}
