package cmd

import (
	"errors"
	"fmt"

	"github.com/haystacksec/kustodian/pkg/grc"
	"github.com/haystacksec/kustodian/pkg/templates"
)

// Exit codes form the CLI's external contract: unknown identifiers,
// bad flag combinations and output write failures are distinguishable
// by code.
const (
	exitOK                = 0
	exitError             = 1
	exitUnknownIdentifier = 2
	exitInvalidFlags      = 3
	exitOutputWrite       = 4
)

type invalidFlagsError struct {
	reason string
}

func (e *invalidFlagsError) Error() string {
	return e.reason
}

func invalidFlags(format string, args ...interface{}) error {
	return &invalidFlagsError{reason: fmt.Sprintf(format, args...)}
}

type outputWriteError struct {
	err error
}

func (e *outputWriteError) Error() string {
	return fmt.Sprintf("failed to write output: %s", e.err)
}

func (e *outputWriteError) Unwrap() error {
	return e.err
}

func exitCode(err error) int {
	var unknownTemplate *templates.UnknownTemplateError
	var unknownControl *grc.UnknownControlError
	var unknownFamily *grc.UnknownFamilyError
	var badFlags *invalidFlagsError
	var badWrite *outputWriteError

	switch {
	case errors.As(err, &unknownTemplate),
		errors.As(err, &unknownControl),
		errors.As(err, &unknownFamily):
		return exitUnknownIdentifier
	case errors.As(err, &badFlags):
		return exitInvalidFlags
	case errors.As(err, &badWrite):
		return exitOutputWrite
	}

	return exitError
}
