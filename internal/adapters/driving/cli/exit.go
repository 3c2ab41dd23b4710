package cli

import (
	"errors"

	"github.com/custodia-labs/wiki-push/internal/core/domain"
)

// Process exit statuses.
const (
	ExitOK             = 0
	ExitFailure        = 1
	ExitUsage          = 2
	ExitArgs           = 3
	ExitMissingOptions = 4
	ExitSession        = 5
	ExitScan           = 6
	ExitParentNotFound = 7
	ExitPagesFailed    = 8
)

// ExitError carries an explicit exit status.
type ExitError struct {
	Code int
	Err  error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

func exitWith(code int, err error) error {
	return &ExitError{Code: code, Err: err}
}

// ExitCode maps an error returned by a command to the process exit status.
func ExitCode(err error) int {
	var exitErr *ExitError
	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &exitErr):
		return exitErr.Code
	case errors.Is(err, domain.ErrSession):
		return ExitSession
	case errors.Is(err, domain.ErrScan):
		return ExitScan
	case errors.Is(err, domain.ErrParentNotFound):
		return ExitParentNotFound
	case errors.Is(err, domain.ErrPageCreation),
		errors.Is(err, domain.ErrRead),
		errors.Is(err, domain.ErrRender):
		return ExitPagesFailed
	case errors.Is(err, domain.ErrInvalidInput):
		return ExitUsage
	default:
		return ExitFailure
	}
}
