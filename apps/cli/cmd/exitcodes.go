package cmd

import (
	"context"
	"errors"
	"net"

	"github.com/abdul-hamid-achik/quest/packages/core/parser"
	"github.com/abdul-hamid-achik/quest/packages/core/quest"
	"github.com/abdul-hamid-achik/quest/packages/http"
)

// Exit codes for quest CLI
const (
	// ExitSuccess indicates the command completed
	ExitSuccess = 0

	// ExitRequestFailed indicates a non-2xx response with --fail, or any
	// other unclassified failure
	ExitRequestFailed = 1

	// ExitParseError indicates the quest file could not be loaded or validated
	ExitParseError = 2

	// ExitConfigError indicates a settings or resolution error
	ExitConfigError = 3

	// ExitNetworkError indicates a network/connection error
	ExitNetworkError = 4

	// ExitUsageError indicates invalid CLI usage
	ExitUsageError = 64
)

// exitError carries an explicit exit code.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

func usageError(err error) error {
	return &exitError{code: ExitUsageError, err: err}
}

func configError(err error) error {
	return &exitError{code: ExitConfigError, err: err}
}

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}

	var parseErr *parser.ParseError
	if errors.As(err, &parseErr) {
		return ExitParseError
	}

	var resolveErr *quest.ResolveError
	switch {
	case errors.As(err, &resolveErr),
		errors.Is(err, quest.ErrQuestNotFound),
		errors.Is(err, quest.ErrMissingEnvVar),
		errors.Is(err, quest.ErrUnresolvedPlaceholder),
		errors.Is(err, quest.ErrMalformedPlaceholder),
		errors.Is(err, http.ErrInvalidURL):
		return ExitConfigError
	}

	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return ExitNetworkError
	}

	return ExitRequestFailed
}
