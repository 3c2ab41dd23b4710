package sites

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"
)

// Common Google Sites errors.
var (
	// ErrUnauthorized indicates invalid or expired credentials.
	ErrUnauthorized = errors.New("sites: unauthorised (invalid credentials)")

	// ErrForbidden indicates the account may not edit the site.
	ErrForbidden = errors.New("sites: forbidden (insufficient permissions)")

	// ErrNotFound indicates the site or entry does not exist.
	ErrNotFound = errors.New("sites: resource not found")

	// ErrConflict indicates an entry with the same page name already exists.
	ErrConflict = errors.New("sites: entry already exists")

	// ErrRateLimited indicates the request quota was exceeded.
	ErrRateLimited = errors.New("sites: rate limit exceeded")
)

// IsUnauthorized returns true if the error indicates invalid credentials.
func IsUnauthorized(err error) bool {
	return hasCode(err, ErrUnauthorized, http.StatusUnauthorized)
}

// IsForbidden returns true if the error indicates insufficient permissions.
func IsForbidden(err error) bool {
	return hasCode(err, ErrForbidden, http.StatusForbidden)
}

// IsNotFound returns true if the error indicates a missing resource.
func IsNotFound(err error) bool {
	return hasCode(err, ErrNotFound, http.StatusNotFound)
}

// IsConflict returns true if the error indicates a duplicate entry.
func IsConflict(err error) bool {
	return hasCode(err, ErrConflict, http.StatusConflict)
}

// IsRateLimited returns true if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	return hasCode(err, ErrRateLimited, http.StatusTooManyRequests)
}

func hasCode(err, sentinel error, code int) bool {
	if errors.Is(err, sentinel) {
		return true
	}
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code == code
	}
	return false
}

// WrapError classifies a googleapi.Error under one of the sentinels above.
// The original error stays in the chain so its message is still reported.
func WrapError(err error) error {
	if err == nil {
		return nil
	}

	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return err
	}

	var sentinel error
	switch gerr.Code {
	case http.StatusUnauthorized:
		sentinel = ErrUnauthorized
	case http.StatusForbidden:
		sentinel = ErrForbidden
	case http.StatusNotFound:
		sentinel = ErrNotFound
	case http.StatusConflict:
		sentinel = ErrConflict
	case http.StatusTooManyRequests:
		sentinel = ErrRateLimited
	default:
		return err
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}
