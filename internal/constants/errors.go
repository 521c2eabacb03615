package constants

import "errors"

// Configuration errors.
var (
	ErrNoEndpointConfigured = errors.New("no endpoint configured, use --endpoint or ESIG_ENDPOINT")
	ErrNoUsernameConfigured = errors.New("no username configured, use --username or ESIG_USERNAME")
	ErrPasswordRequired     = errors.New("password is required")
)

// Validation errors.
var (
	ErrInvalidActive       = errors.New("invalid value for --active")
	ErrInvalidOutputFormat = errors.New("invalid output format")
	ErrInvalidStatusArg    = errors.New("status must be Pending or Revoked")
	ErrOutputFileRequired  = errors.New("--output-file flag is required")
)

// ErrNilRequest is returned by the transport for a nil request.
var ErrNilRequest = errors.New("request is nil")
