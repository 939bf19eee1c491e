// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package installer

import (
	"errors"
	"fmt"
)

// ErrorKind classifies fatal installer errors for exit-code mapping.
type ErrorKind int

const (
	// KindUsage covers invalid command-line parameters and generic errors.
	KindUsage ErrorKind = iota

	// KindEnvironment covers a missing required environment variable or a
	// plugin manager binary that is not on the search path.
	KindEnvironment

	// KindValidation covers an installed version that does not match the
	// expected one.
	KindValidation

	// KindInternal covers programming errors, such as an empty plugin name
	// reaching the install primitive.
	KindInternal
)

// Process exit codes.
const (
	ExitOK       = 0
	ExitUsage    = 1
	ExitInternal = 2

	// ExitEnvironment is the value the original script's "exit -1" produced
	// after the shell's modulo-256 wrap.
	ExitEnvironment = 255
)

// FatalError aborts the whole run. It is never retried and never tallied.
type FatalError struct {
	Kind ErrorKind
	Err  error
}

func (e *FatalError) Error() string {
	return e.Err.Error()
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

// ExitCode returns the process exit code for the error kind.
func (e *FatalError) ExitCode() int {
	switch e.Kind {
	case KindEnvironment, KindValidation:
		return ExitEnvironment
	case KindInternal:
		return ExitInternal
	default:
		return ExitUsage
	}
}

func fatalf(kind ErrorKind, format string, a ...interface{}) *FatalError {
	return &FatalError{Kind: kind, Err: fmt.Errorf(format, a...)}
}

// ExitCodeForError maps any error returned by the command layer to a process
// exit code. Unclassified errors, including flag-parsing errors, exit with 1.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitOK
	}
	var fatal *FatalError
	if errors.As(err, &fatal) {
		return fatal.ExitCode()
	}
	return ExitUsage
}
