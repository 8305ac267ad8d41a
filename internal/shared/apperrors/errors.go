package apperrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for conditions controllers branch on.
var (
	// ErrNotFound is returned when a catalog lookup matches nothing.
	ErrNotFound = errors.New("not found")

	// ErrUnsupported is returned for operations with no configured backend,
	// e.g. an unknown notification method.
	ErrUnsupported = errors.New("unsupported operation")
)

// AuthError means the credential exchange with the upstream provider failed.
// It is not recoverable by a synthetic fallback: every live call needs the
// credential, so in live mode it propagates to the caller.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("upstream authentication failed: %v", e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }

// UpstreamError means a call made with a valid credential failed. Components
// normally swallow it and serve synthetic data; it only surfaces when strict
// upstream error reporting is enabled.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %s failed: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// IsAuth reports whether err is (or wraps) an AuthError.
func IsAuth(err error) bool {
	var ae *AuthError
	return errors.As(err, &ae)
}

// IsUpstream reports whether err is (or wraps) an UpstreamError.
func IsUpstream(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue)
}
