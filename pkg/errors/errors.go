// SPDX-License-Identifier: MIT

// Package errors defines the error taxonomy used across the pipeline
// (spec §7): distinct, typed error kinds rather than ad hoc
// fmt.Errorf strings, so callers can switch on kind with errors.As
// instead of parsing messages.
package errors

import "errors"

// base carries a human-readable message plus an optional wrapped cause.
// Every error kind in this package embeds it.
type base struct {
	message string
	err     error
}

func (b base) error() string {
	if b.err == nil {
		return b.message
	}
	return b.message + ": " + b.err.Error()
}

// Unwrap exposes the wrapped cause to errors.Is/errors.As.
func (b base) Unwrap() error {
	return b.err
}

func newBase(message string, errs ...error) base {
	return base{message: message, err: errors.Join(errs...)}
}
